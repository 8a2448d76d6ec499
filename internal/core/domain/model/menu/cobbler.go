package menu

import (
	"errors"

	"pointofsale/internal/core/domain/model/kernel"
)

// Property names announced to PropertyChanged subscribers.
const (
	PropertyFruit               = "Fruit"
	PropertyWithIceCream        = "WithIceCream"
	PropertySpecialInstructions = "SpecialInstructions"
	PropertyPrice               = "Price"
)

const (
	PriceWithIceCream    = 5.32
	PriceWithoutIceCream = 4.25

	InstructionHoldIceCream = "Hold Ice Cream"
)

var (
	// ErrCobblerIsNotConstructed is returned by Validate for a Cobbler that was
	// not built by NewCobbler or RestoreCobbler.
	ErrCobblerIsNotConstructed = errors.New("Cobbler must be created via NewCobbler or RestoreCobbler")
)

var (
	_ OrderItem                      = (*Cobbler)(nil)
	_ kernel.PropertyChangedNotifier = (*Cobbler)(nil)
)

// Cobbler is a dessert order line. Its fruit filling and ice cream choice are
// freely changed while the order is entered; price and special instructions
// follow from the ice cream choice.
//
// A Cobbler is owned by a single order-entry context and is not safe for
// concurrent use.
type Cobbler struct {
	id           kernel.UUID
	fruit        FruitFilling
	withIceCream bool

	changed       kernel.PropertyChanged
	isConstructed bool
}

// NewCobbler starts a new order line: Cherry filling, served with ice cream.
func NewCobbler() *Cobbler {
	return &Cobbler{
		id:            kernel.NewUUID(),
		fruit:         Cherry,
		withIceCream:  true,
		isConstructed: true,
	}
}

// RestoreCobbler rebuilds an order line read back from storage. Unlike the
// setters it validates the filling, since stored data is not trusted. No
// notifications are raised.
func RestoreCobbler(id kernel.UUID, fruit FruitFilling, withIceCream bool) (*Cobbler, error) {
	if err := errors.Join(id.Validate(), fruit.Validate()); err != nil {
		return nil, err
	}

	return &Cobbler{
		id:            id,
		fruit:         fruit,
		withIceCream:  withIceCream,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cobbler was built through NewCobbler or RestoreCobbler.
func (c *Cobbler) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCobblerIsNotConstructed
	}
	return nil
}

// IsEqual compares order lines by identity.
func (c *Cobbler) IsEqual(other *Cobbler) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the order line identifier.
func (c *Cobbler) ID() kernel.UUID {
	return c.id
}

// Fruit returns the current filling.
func (c *Cobbler) Fruit() FruitFilling {
	return c.fruit
}

// SetFruit changes the filling and announces Fruit and SpecialInstructions.
func (c *Cobbler) SetFruit(fruit FruitFilling) {
	c.fruit = fruit
	c.changed.Notify(c, PropertyFruit)
	c.changed.Notify(c, PropertySpecialInstructions)
}

// WithIceCream reports whether the Cobbler is served with ice cream.
func (c *Cobbler) WithIceCream() bool {
	return c.withIceCream
}

// SetWithIceCream changes the ice cream choice and announces WithIceCream and
// SpecialInstructions.
func (c *Cobbler) SetWithIceCream(withIceCream bool) {
	c.withIceCream = withIceCream
	c.changed.Notify(c, PropertyWithIceCream)
	c.changed.Notify(c, PropertySpecialInstructions)
}

// Price returns PriceWithIceCream or PriceWithoutIceCream.
func (c *Cobbler) Price() float64 {
	if c.withIceCream {
		return PriceWithIceCream
	}
	return PriceWithoutIceCream
}

// SpecialInstructions is empty when served with ice cream, otherwise it holds
// InstructionHoldIceCream.
func (c *Cobbler) SpecialInstructions() []string {
	instructions := make([]string, 0, 1)
	if !c.withIceCream {
		instructions = append(instructions, InstructionHoldIceCream)
	}
	return instructions
}

// Subscribe registers h for property-changed notifications of this Cobbler.
func (c *Cobbler) Subscribe(h kernel.PropertyChangedHandler) func() {
	return c.changed.Subscribe(h)
}
