package commands

import (
	"errors"
	"fmt"
	"time"

	"pointofsale/internal/pkg/errs"
	"pointofsale/internal/pkg/guard"
)

var (
	ErrDiscardStaleCobblersCommandIsNotConstructed = errors.New(
		"DiscardStaleCobblersCommand must be created via NewDiscardStaleCobblersCommand constructor",
	)
)

// DiscardStaleCobblersCommand removes order lines abandoned mid-entry, i.e.
// not changed for longer than OlderThan.
type DiscardStaleCobblersCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewDiscardStaleCobblersCommand requires a positive age.
func NewDiscardStaleCobblersCommand(olderThan time.Duration) (DiscardStaleCobblersCommand, error) {
	if olderThan <= 0 {
		return DiscardStaleCobblersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not greater than 0", olderThan),
		)
	}

	return DiscardStaleCobblersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DiscardStaleCobblersCommand) Validate() error {
	return c.guard.Validate(ErrDiscardStaleCobblersCommandIsNotConstructed)
}

// OlderThan returns the age after which an untouched order line is discarded.
func (c DiscardStaleCobblersCommand) OlderThan() time.Duration {
	return c.olderThan
}
