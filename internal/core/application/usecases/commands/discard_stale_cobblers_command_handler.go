package commands

import (
	"context"
	"time"
)

// DiscardStaleCobblersCommandHandler deletes abandoned order lines.
type DiscardStaleCobblersCommandHandler struct {
	uowFactory CobblerUoWFactory
	now        func() time.Time
}

// NewDiscardStaleCobblersCommandHandler creates a handler that measures age
// against the wall clock.
func NewDiscardStaleCobblersCommandHandler(uowFactory CobblerUoWFactory) DiscardStaleCobblersCommandHandler {
	return NewDiscardStaleCobblersCommandHandlerWithClock(uowFactory, time.Now)
}

// NewDiscardStaleCobblersCommandHandlerWithClock creates a handler that
// measures age against now.
func NewDiscardStaleCobblersCommandHandlerWithClock(
	uowFactory CobblerUoWFactory,
	now func() time.Time,
) DiscardStaleCobblersCommandHandler {
	return DiscardStaleCobblersCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle removes every order line untouched since now - OlderThan and returns
// how many were removed.
func (h *DiscardStaleCobblersCommandHandler) Handle(ctx context.Context, cmd DiscardStaleCobblersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CobblerRepository().RemoveUntouchedSince(ctx, h.now().Add(-cmd.OlderThan()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
