// Package storage defines the persistence interfaces the application depends
// on. It abstracts record storage and transaction management so concrete
// backends (PostgreSQL in production, mocks in tests) stay interchangeable.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage bundles every domain-specific storage capability the service
// uses. Concrete backends implement it once; narrower interfaces exist for
// callers that only need a slice of it.
type AllStorage interface {
	ScanStorage
	ProfileStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// offers the same capabilities as AllStorage plus transaction control, and
// becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the non-transactional storage handle with the ability to start
// transactions and manage the backend's lifecycle.
type Storage interface {
	AllStorage

	// Close releases the backend's resources, e.g. the connection pool. The
	// handle must not be used afterwards.
	Close() error

	// Begin opens a transaction and returns a handle scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, runs cb against it, then commits on nil
	// and rolls back on error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
