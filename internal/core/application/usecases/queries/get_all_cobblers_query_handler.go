package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCobblersQueryHandler lists order lines.
type GetAllCobblersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCobblersQueryHandler creates a handler bound to db.
func NewGetAllCobblersQueryHandler(db *gorm.DB) GetAllCobblersQueryHandler {
	return GetAllCobblersQueryHandler{db: db}
}

// Handle returns all order lines ordered by id. An empty table yields an
// empty, non-nil slice.
func (h GetAllCobblersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCobblersQuery,
) ([]GetCobblerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fruit,
			with_ice_cream
		FROM cobblers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cobblers := make([]GetCobblerQueryResponse, 0)
	for rows.Next() {
		cobbler, scanErr := scanCobbler(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		cobblers = append(cobblers, NewGetCobblerQueryResponse(cobbler))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cobblers, nil
}
