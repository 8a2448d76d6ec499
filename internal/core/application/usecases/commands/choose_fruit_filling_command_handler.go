package commands

import (
	"context"

	"pointofsale/internal/core/domain/model/menu"
)

// ChooseFruitFillingCommandHandler applies a filling choice to a stored Cobbler.
type ChooseFruitFillingCommandHandler struct {
	uowFactory CobblerUoWFactory
}

// NewChooseFruitFillingCommandHandler creates a handler for filling choices.
func NewChooseFruitFillingCommandHandler(uowFactory CobblerUoWFactory) ChooseFruitFillingCommandHandler {
	return ChooseFruitFillingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the filling and returns the properties the Cobbler announced,
// so the storefront knows which bound fields to refresh.
func (h *ChooseFruitFillingCommandHandler) Handle(ctx context.Context, cmd ChooseFruitFillingCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return customizeCobbler(ctx, h.uowFactory, cmd.CobblerID(), func(c *menu.Cobbler) {
		c.SetFruit(cmd.Fruit())
	})
}
