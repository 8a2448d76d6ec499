package queries

import (
	"errors"

	"pointofsale/internal/pkg/guard"
)

var (
	ErrGetAllCobblersQueryIsNotConstructed = errors.New(
		"GetAllCobblersQuery must be created via NewGetAllCobblersQuery constructor",
	)
)

// GetAllCobblersQuery lists every open order line.
type GetAllCobblersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCobblersQuery creates the parameterless listing query.
func NewGetAllCobblersQuery() GetAllCobblersQuery {
	return GetAllCobblersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCobblersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCobblersQueryIsNotConstructed)
}
