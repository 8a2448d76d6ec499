package cobblerrepo

import (
	"context"
	"errors"
	"time"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCobblerRepository implements ports.CobblerRepository using GORM.
type GormCobblerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCobblerRepository creates a new GORM cobbler repository.
func NewGormCobblerRepository(db *gorm.DB, tracker aggregateTracker) *GormCobblerRepository {
	return &GormCobblerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order line.
func (r *GormCobblerRepository) Add(ctx context.Context, aggregate *menu.Cobbler) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the customization of an existing order line. All columns are
// written so that false and Cherry (zero values) are not skipped.
func (r *GormCobblerRepository) Update(ctx context.Context, aggregate *menu.Cobbler) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CobblerDTO{}).
		Where("id = ?", dto.ID).
		Select("fruit", "with_ice_cream", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cobbler", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order line by ID.
func (r *GormCobblerRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Cobbler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CobblerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cobbler", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Remove deletes an order line by ID.
func (r *GormCobblerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CobblerDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cobbler", id.String())
	}

	return nil
}

// RemoveUntouchedSince deletes order lines last written before t.
func (r *GormCobblerRepository) RemoveUntouchedSince(ctx context.Context, t time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", t).Delete(&CobblerDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
