package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command so concurrent requests
// never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Callers Begin, defer
// Rollback, and Commit on success.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It returns an error when no
	// transaction is active, which deferred callers ignore.
	Rollback(ctx context.Context) error

	// CobblerRepository returns a repository bound to the current transaction.
	CobblerRepository() CobblerRepository
}
