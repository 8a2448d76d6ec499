// Package cobblerrepo persists Cobbler order lines with GORM.
// Only the customization is stored; price and special instructions are
// recomputed by the model after loading.
package cobblerrepo

import (
	"time"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// CobblerDTO is the row layout of the cobblers table.
type CobblerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fruit        int       `gorm:"type:smallint;not null"`
	WithIceCream bool      `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;index"`
}

// TableName overrides GORM's default naming.
func (CobblerDTO) TableName() string {
	return "cobblers"
}

func fromDomain(cobbler *menu.Cobbler) CobblerDTO {
	return CobblerDTO{
		ID:           cobbler.ID().Raw(),
		Fruit:        int(cobbler.Fruit()),
		WithIceCream: cobbler.WithIceCream(),
	}
}

// ToDomain rebuilds a Cobbler from a stored row. Query handlers use it to
// derive price and instructions through the model.
func ToDomain(dto CobblerDTO) (*menu.Cobbler, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	return menu.RestoreCobbler(id, menu.FruitFilling(dto.Fruit), dto.WithIceCream)
}
