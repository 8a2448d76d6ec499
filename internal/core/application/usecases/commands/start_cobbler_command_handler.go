package commands

import (
	"context"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
)

// StartCobblerCommandHandler creates and persists new Cobbler order lines.
type StartCobblerCommandHandler struct {
	uowFactory CobblerUoWFactory
}

// NewStartCobblerCommandHandler creates a handler for starting order lines.
func NewStartCobblerCommandHandler(uowFactory CobblerUoWFactory) StartCobblerCommandHandler {
	return StartCobblerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new default Cobbler and returns its identifier.
func (h *StartCobblerCommandHandler) Handle(ctx context.Context, cmd StartCobblerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cobbler := menu.NewCobbler()
	if err := uow.CobblerRepository().Add(ctx, cobbler); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return cobbler.ID(), nil
}
