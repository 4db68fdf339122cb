package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
)

// TransactionRepository holds the currently loaded transaction table
type TransactionRepository interface {
	// Replace discards the whole table and stores the given transactions
	// Used once per ingestion; custom categorization work is not carried over
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Replace(ctx context.Context, transactions []entity.Transaction) error

	// List returns every transaction ordered by id
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]entity.Transaction, error)

	// GetByID retrieves a transaction by its ingestion id
	//
	// Possible errors:
	// - ErrNotFound: If no transaction has that id (message carries a sample of valid ids)
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Update stores the category and custom name of an existing transaction
	//
	// Possible errors:
	// - ErrNotFound: If no transaction has that id
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// UpdateMany stores category and custom name changes for several transactions at once
	//
	// Possible errors:
	// - ErrNotFound: If any transaction id is unknown (nothing is written)
	// - ErrDatabaseConnection: If database connection fails
	UpdateMany(ctx context.Context, transactions []entity.Transaction) error
}
