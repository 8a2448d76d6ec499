package commands

import (
	"context"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
)

// customizeCobbler loads a Cobbler inside a unit of work, applies change,
// persists it, and returns the property names the Cobbler announced while
// change ran, in announcement order.
func customizeCobbler(
	ctx context.Context,
	uowFactory CobblerUoWFactory,
	id kernel.UUID,
	change func(*menu.Cobbler),
) ([]string, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CobblerRepository()
	cobbler, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := make([]string, 0, 2)
	unsubscribe := cobbler.Subscribe(func(_ any, name string) {
		changed = append(changed, name)
	})
	change(cobbler)
	unsubscribe()

	if err = repo.Update(ctx, cobbler); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return changed, nil
}
