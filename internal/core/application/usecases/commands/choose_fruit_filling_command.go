package commands

import (
	"errors"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/guard"
)

var (
	ErrChooseFruitFillingCommandIsNotConstructed = errors.New(
		"ChooseFruitFillingCommand must be created via NewChooseFruitFillingCommand constructor",
	)
)

// ChooseFruitFillingCommand is what the storefront's Cherry, Blueberry and
// Peach buttons send for the Cobbler currently being customized.
//
// Example:
//
//	cmd, err := NewChooseFruitFillingCommand(cobblerID, menu.Peach)
//	if err != nil {
//	    return err
//	}
//	changed, err := handler.Handle(ctx, cmd) // ["Fruit", "SpecialInstructions"]
type ChooseFruitFillingCommand struct {
	cobblerID kernel.UUID
	fruit     menu.FruitFilling

	guard guard.ConstructorGuard
}

// NewChooseFruitFillingCommand validates the order line id and the filling.
func NewChooseFruitFillingCommand(cobblerID kernel.UUID, fruit menu.FruitFilling) (ChooseFruitFillingCommand, error) {
	cmd := ChooseFruitFillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCobblerID(cobblerID),
		cmd.setFruit(fruit),
	); err != nil {
		return ChooseFruitFillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChooseFruitFillingCommand) Validate() error {
	return c.guard.Validate(ErrChooseFruitFillingCommandIsNotConstructed)
}

// CobblerID returns the order line to customize.
func (c ChooseFruitFillingCommand) CobblerID() kernel.UUID {
	return c.cobblerID
}

// Fruit returns the chosen filling.
func (c ChooseFruitFillingCommand) Fruit() menu.FruitFilling {
	return c.fruit
}

func (c *ChooseFruitFillingCommand) setCobblerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cobblerID = id
	return nil
}

func (c *ChooseFruitFillingCommand) setFruit(fruit menu.FruitFilling) error {
	if err := fruit.Validate(); err != nil {
		return err
	}

	c.fruit = fruit
	return nil
}
