package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
type RepositoryFactory interface {
	NewListingRepository() ListingRepository
	NewRecipientRepository() RecipientRepository
	NewDeliveryLogRepository() DeliveryLogRepository
}

// TransactionManager runs multi-step repository work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
