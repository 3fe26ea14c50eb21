package repository

import "context"

// RepositoryFactory creates repository instances that are bound to a single
// transaction. Use cases receive it inside TransactionManager.Execute so that
// multi-step operations commit or roll back atomically.
type RepositoryFactory interface {
	AuthorRepo() AuthorRepository
	StartupRepo() StartupRepository
}

// TransactionManager runs a unit of work within one storage transaction.
type TransactionManager interface {
	// Execute runs fn inside a transaction. A non-nil error from fn rolls the
	// transaction back and is returned unchanged.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
