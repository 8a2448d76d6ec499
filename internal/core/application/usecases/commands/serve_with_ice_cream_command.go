package commands

import (
	"errors"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/pkg/guard"
)

var (
	ErrServeWithIceCreamCommandIsNotConstructed = errors.New(
		"ServeWithIceCreamCommand must be created via NewServeWithIceCreamCommand constructor",
	)
)

// ServeWithIceCreamCommand adds or holds the ice cream of a Cobbler.
type ServeWithIceCreamCommand struct {
	cobblerID    kernel.UUID
	withIceCream bool

	guard guard.ConstructorGuard
}

// NewServeWithIceCreamCommand validates the order line id. Both ice cream
// choices are always allowed.
func NewServeWithIceCreamCommand(cobblerID kernel.UUID, withIceCream bool) (ServeWithIceCreamCommand, error) {
	if err := cobblerID.Validate(); err != nil {
		return ServeWithIceCreamCommand{}, err
	}

	return ServeWithIceCreamCommand{
		cobblerID:    cobblerID,
		withIceCream: withIceCream,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ServeWithIceCreamCommand) Validate() error {
	return c.guard.Validate(ErrServeWithIceCreamCommandIsNotConstructed)
}

// CobblerID returns the order line to customize.
func (c ServeWithIceCreamCommand) CobblerID() kernel.UUID {
	return c.cobblerID
}

// WithIceCream returns the requested ice cream choice.
func (c ServeWithIceCreamCommand) WithIceCream() bool {
	return c.withIceCream
}
