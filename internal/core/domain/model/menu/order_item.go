package menu

// OrderItem is what checkout and display need from anything on an order line.
type OrderItem interface {
	// Price is the current non-negative price of the item.
	Price() float64

	// SpecialInstructions lists deviations from the default preparation for
	// the kitchen. An empty list means no special handling. Each call returns
	// a new slice.
	SpecialInstructions() []string
}
