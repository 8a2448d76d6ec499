// Package commands contains the operations that change order lines.
// Every command follows the same pattern: constructor validation, a unit of
// work per Handle call, and persistence through ports.CobblerRepository.
package commands

import (
	"context"

	"pointofsale/internal/core/ports"
)

// Unit of Work interfaces narrowed to what command handlers use.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CobblerRepoFactory provides the cobbler repository bound to a transaction.
	CobblerRepoFactory interface {
		CobblerRepository() ports.CobblerRepository
	}

	// CobblerUoW manages transactions for cobbler order lines.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.CobblerRepository()
	//   // ... load, customize, update
	//
	//   err = uow.Commit(ctx)
	CobblerUoW interface {
		TxManager
		CobblerRepoFactory
	}

	// CobblerUoWFactory creates a new CobblerUoW per command.
	CobblerUoWFactory interface {
		Create() CobblerUoW
	}
)
