package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/model"
)

// insertBatchSize bounds the rows sent per INSERT during Replace
const insertBatchSize = 500

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(t entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category.String(),
		CustomName:  t.CustomName,
	}
}

// modelToEntity converts a transaction model to an entity
func modelToEntity(m model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    entity.Category(m.Category),
		CustomName:  m.CustomName,
	}
}

// Replace deletes every stored row and inserts the new table in one database transaction
func (r *TransactionRepository) Replace(ctx context.Context, transactions []entity.Transaction) error {
	r.logger.Debug("Replacing transaction table", map[string]any{
		"count": len(transactions),
	})

	models := make([]model.Transaction, len(transactions))
	for i, t := range transactions {
		models[i] = entityToModel(t)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Transaction{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(&models, insertBatchSize).Error
	})
	if err != nil {
		r.logger.Error("Failed to replace transaction table", map[string]any{
			"count": len(transactions),
			"error": err.Error(),
		})
		return r.errorClassifier.Wrap(err, "replace")
	}

	r.logger.Info("Transaction table replaced", map[string]any{
		"count": len(transactions),
	})
	return nil
}

// List returns every stored transaction ordered by id
func (r *TransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	var models []model.Transaction
	if err := r.db.WithContext(ctx).Order("id asc").Find(&models).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Wrap(err, "list")
	}

	transactions := make([]entity.Transaction, len(models))
	for i, m := range models {
		transactions[i] = modelToEntity(m)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by its ingestion id
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Transaction not found", map[string]any{
				"id": id,
			})
			return nil, r.notFound(ctx, id)
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"id":    id,
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap(result.Error, "get")
	}

	t := modelToEntity(m)
	return &t, nil
}

// Update stores the category and custom name of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.updateCategory(ctx, r.db.WithContext(ctx), *transaction)
}

// UpdateMany applies every change or none of them
func (r *TransactionRepository) UpdateMany(ctx context.Context, transactions []entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range transactions {
			if err := r.updateCategory(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TransactionRepository) updateCategory(ctx context.Context, db *gorm.DB, t entity.Transaction) error {
	// A map is used so an empty custom name is written rather than skipped
	result := db.Model(&model.Transaction{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"category":    t.Category.String(),
			"custom_name": t.CustomName,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"id":    t.ID,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error, "update")
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"id": t.ID,
		})
		return r.notFound(ctx, t.ID)
	}
	return nil
}

// notFound builds a NotFoundError carrying the lowest stored ids
func (r *TransactionRepository) notFound(ctx context.Context, id uint64) error {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Order("id asc").
		Limit(errs.MaxSampleIDs).
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Warn("Failed to sample transaction ids", map[string]any{
			"error": err.Error(),
		})
	}
	return errs.NewNotFoundError(id, ids)
}
