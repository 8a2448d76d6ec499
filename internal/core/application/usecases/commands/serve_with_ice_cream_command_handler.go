package commands

import (
	"context"

	"pointofsale/internal/core/domain/model/menu"
)

// ServeWithIceCreamCommandHandler applies an ice cream choice to a stored Cobbler.
type ServeWithIceCreamCommandHandler struct {
	uowFactory CobblerUoWFactory
}

// NewServeWithIceCreamCommandHandler creates a handler for ice cream choices.
func NewServeWithIceCreamCommandHandler(uowFactory CobblerUoWFactory) ServeWithIceCreamCommandHandler {
	return ServeWithIceCreamCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the ice cream choice and returns the announced properties.
func (h *ServeWithIceCreamCommandHandler) Handle(ctx context.Context, cmd ServeWithIceCreamCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return customizeCobbler(ctx, h.uowFactory, cmd.CobblerID(), func(c *menu.Cobbler) {
		c.SetWithIceCream(cmd.WithIceCream())
	})
}
