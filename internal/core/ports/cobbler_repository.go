// Package ports defines the persistence contracts of the point-of-sale core.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"
	"time"

	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
)

// CobblerRepository stores Cobbler order lines while an order is entered.
// Derived values (price, special instructions) are never stored; they are
// recomputed by the model after Get.
type CobblerRepository interface {
	// Add persists a new order line. The cobbler must be valid.
	Add(ctx context.Context, cobbler *menu.Cobbler) error

	// Update persists the current fruit and ice cream choice of an existing line.
	Update(ctx context.Context, cobbler *menu.Cobbler) error

	// Get loads an order line. Returns errs.ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.Cobbler, error)

	// Remove deletes an order line. Returns errs.ObjectNotFoundError if it does not exist.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveUntouchedSince deletes every order line whose last Add or Update
	// happened before t and reports how many were deleted.
	RemoveUntouchedSince(ctx context.Context, t time.Time) (int64, error)
}
