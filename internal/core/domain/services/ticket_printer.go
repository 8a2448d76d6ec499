package services

import (
	"fmt"
	"strings"

	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/errs"
)

// TicketPrinter renders order lines for the kitchen. It only relies on the
// menu.OrderItem capability, so any sellable item can be printed.
//
// Example output for a cobbler with the ice cream held:
//
//	Peach Cobbler $4.25
//	  - Hold Ice Cream
type TicketPrinter struct{}

// NewTicketPrinter creates a TicketPrinter.
func NewTicketPrinter() TicketPrinter {
	return TicketPrinter{}
}

// Print returns the ticket text for item under the given display name: a
// heading line with the price, then one indented line per special
// instruction. There is no trailing newline.
func (p TicketPrinter) Print(name string, item menu.OrderItem) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if item == nil {
		return "", errs.NewValueIsRequiredError("item")
	}
	// A typed nil such as (*menu.Cobbler)(nil) passes the check above.
	if v, ok := item.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s $%.2f", name, item.Price())
	for _, instruction := range item.SpecialInstructions() {
		fmt.Fprintf(&b, "\n  - %s", instruction)
	}
	return b.String(), nil
}
