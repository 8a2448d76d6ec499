package queries

import (
	"context"
	"database/sql"
	"errors"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCobblerQueryHandler reads a single order line.
type GetCobblerQueryHandler struct {
	db *gorm.DB
}

// NewGetCobblerQueryHandler creates a handler bound to db.
func NewGetCobblerQueryHandler(db *gorm.DB) GetCobblerQueryHandler {
	return GetCobblerQueryHandler{db: db}
}

// Handle returns the order line, or errs.ObjectNotFoundError when it does not exist.
func (h GetCobblerQueryHandler) Handle(
	ctx context.Context,
	query GetCobblerQuery,
) (GetCobblerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCobblerQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fruit,
			with_ice_cream
		FROM cobblers
		WHERE id = ?
	`, query.CobblerID().Raw()).Row()

	cobbler, err := scanCobbler(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCobblerQueryResponse{}, errs.NewObjectNotFoundError("cobbler", query.CobblerID().String())
		}
		return GetCobblerQueryResponse{}, err
	}

	return NewGetCobblerQueryResponse(cobbler), nil
}

// scanCobbler reads one (id, fruit, with_ice_cream) row and restores the
// Cobbler it describes.
func scanCobbler(scan func(dest ...any) error) (*menu.Cobbler, error) {
	var (
		rawID        uuid.UUID
		fruit        int
		withIceCream bool
	)

	if err := scan(&rawID, &fruit, &withIceCream); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromRaw(rawID)
	if err != nil {
		return nil, err
	}

	return menu.RestoreCobbler(id, menu.FruitFilling(fruit), withIceCream)
}
