package repository

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// MemoryTransactionRepository keeps the loaded table in process memory.
// Values are copied on the way in and out; callers never share its storage.
type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []entity.Transaction
	index        map[uint64]int
}

// NewMemoryTransactionRepository creates an empty in-memory repository
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{
		index: make(map[uint64]int),
	}
}

// Replace discards the current table and stores a copy of transactions
func (r *MemoryTransactionRepository) Replace(ctx context.Context, transactions []entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	table := make([]entity.Transaction, len(transactions))
	copy(table, transactions)

	index := make(map[uint64]int, len(table))
	for i, t := range table {
		index[t.ID] = i
	}

	r.mu.Lock()
	r.transactions = table
	r.index = index
	r.mu.Unlock()
	return nil
}

// List returns a copy of the table ordered by id
func (r *MemoryTransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// GetByID returns a copy of the transaction with the given id
func (r *MemoryTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, r.notFound(id)
	}
	t := r.transactions[i]
	return &t, nil
}

// Update stores the category and custom name of one transaction
func (r *MemoryTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[transaction.ID]
	if !ok {
		return r.notFound(transaction.ID)
	}
	r.transactions[i].Recategorize(transaction.Category, transaction.CustomName)
	return nil
}

// UpdateMany applies several category changes; unknown ids abort before any write
func (r *MemoryTransactionRepository) UpdateMany(ctx context.Context, transactions []entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range transactions {
		if _, ok := r.index[t.ID]; !ok {
			return r.notFound(t.ID)
		}
	}
	for _, t := range transactions {
		r.transactions[r.index[t.ID]].Recategorize(t.Category, t.CustomName)
	}
	return nil
}

// notFound must be called with the lock held
func (r *MemoryTransactionRepository) notFound(id uint64) error {
	limit := len(r.transactions)
	if limit > errs.MaxSampleIDs {
		limit = errs.MaxSampleIDs
	}
	sample := make([]uint64, limit)
	for i := 0; i < limit; i++ {
		sample[i] = r.transactions[i].ID
	}
	return errs.NewNotFoundError(id, sample)
}
