package commands

import (
	"errors"

	"pointofsale/internal/pkg/guard"
)

var (
	ErrStartCobblerCommandIsNotConstructed = errors.New(
		"StartCobblerCommand must be created via NewStartCobblerCommand constructor",
	)
)

// StartCobblerCommand opens a new Cobbler order line with the default
// customization (Cherry, served with ice cream).
//
// Example:
//
//	handler := NewStartCobblerCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, NewStartCobblerCommand())
//	if err != nil {
//	    return fmt.Errorf("failed to start cobbler: %w", err)
//	}
type StartCobblerCommand struct {
	guard guard.ConstructorGuard
}

// NewStartCobblerCommand creates the parameterless start command.
func NewStartCobblerCommand() StartCobblerCommand {
	return StartCobblerCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c StartCobblerCommand) Validate() error {
	return c.guard.Validate(ErrStartCobblerCommandIsNotConstructed)
}
