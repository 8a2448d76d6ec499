// Package queries contains read operations over Cobbler order lines.
// Query handlers read rows directly and rebuild each line through the model,
// so the price and special instructions they report always match what the
// Cobbler itself computes.
package queries

import (
	"errors"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/guard"
)

var (
	ErrGetCobblerQueryIsNotConstructed = errors.New(
		"GetCobblerQuery must be created via NewGetCobblerQuery constructor",
	)
)

// GetCobblerQuery retrieves one order line for display.
//
// Example:
//
//	query, err := NewGetCobblerQuery(id)
//	if err != nil {
//	    return err
//	}
//
//	cobbler, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cobbler: %w", err)
//	}
//	fmt.Printf("%s cobbler $%.2f\n", cobbler.Fruit, cobbler.Price())
type GetCobblerQuery struct {
	cobblerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCobblerQuery creates a query for the given order line.
func NewGetCobblerQuery(cobblerID kernel.UUID) (GetCobblerQuery, error) {
	if err := cobblerID.Validate(); err != nil {
		return GetCobblerQuery{}, err
	}

	return GetCobblerQuery{
		cobblerID: cobblerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CobblerID returns the identifier of the requested line.
func (q GetCobblerQuery) CobblerID() kernel.UUID {
	return q.cobblerID
}

// Validate ensures the query was created through the constructor.
func (q GetCobblerQuery) Validate() error {
	return q.guard.Validate(ErrGetCobblerQueryIsNotConstructed)
}

var _ menu.OrderItem = GetCobblerQueryResponse{}

// GetCobblerQueryResponse is the read model of an order line. It satisfies
// menu.OrderItem, so it can be printed without rebuilding the Cobbler.
type GetCobblerQueryResponse struct {
	ID           kernel.UUID
	Fruit        menu.FruitFilling
	WithIceCream bool

	price        float64
	instructions []string
}

// NewGetCobblerQueryResponse captures the current state of cobbler,
// including its derived price and special instructions.
func NewGetCobblerQueryResponse(cobbler *menu.Cobbler) GetCobblerQueryResponse {
	return GetCobblerQueryResponse{
		ID:           cobbler.ID(),
		Fruit:        cobbler.Fruit(),
		WithIceCream: cobbler.WithIceCream(),
		price:        cobbler.Price(),
		instructions: cobbler.SpecialInstructions(),
	}
}

// Price returns the price computed by the Cobbler when it was read.
func (r GetCobblerQueryResponse) Price() float64 {
	return r.price
}

// SpecialInstructions returns a copy of the instructions computed when the
// Cobbler was read. The result is never nil.
func (r GetCobblerQueryResponse) SpecialInstructions() []string {
	return append(make([]string, 0, len(r.instructions)), r.instructions...)
}
