// Package expense implements the operations offered on a loaded bank statement:
// ingestion, category overrides, summaries and export.
package expense

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/categorize"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/ingest"
)

// ExportHeader is the column layout written by ExportCSV
var ExportHeader = []string{"id", "Date", "Description", "Amount", "Category", "custom_name"}

// Service ties together ingestion, the transaction store and the write queue
type Service struct {
	repo         persistence.TransactionRepository
	categorizer  *categorize.Categorizer
	normalizer   *ingest.Normalizer
	registry     *Registry
	queue        *WriteQueue
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu      sync.RWMutex
	session *entity.Session
}

// Compile-time interface check
var _ usecase.ExpenseUseCase = (*Service)(nil)

// NewService creates a new expense service and starts its write queue
func NewService(
	repo persistence.TransactionRepository,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queueSize int,
) *Service {
	categorizer := categorize.NewCategorizer()

	return &Service{
		repo:         repo,
		categorizer:  categorizer,
		normalizer:   ingest.NewNormalizer(categorizer),
		registry:     NewRegistry(),
		queue:        NewWriteQueue(logger, queueSize),
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Shutdown waits for queued writes and stops the write queue
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}

// currentSession returns the loaded session or ErrNoData
func (s *Service) currentSession() (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, errs.ErrNoData
	}
	session := *s.session
	return &session, nil
}

// Ingest parses the statement outside the queue, then swaps the table in on it
func (s *Service) Ingest(ctx context.Context, filename string, r io.Reader) (*usecase.IngestResult, error) {
	start := s.timeProvider.Now()

	normalized, err := s.normalizer.Normalize(r)
	if err != nil {
		s.logger.Warn("Rejected statement upload", map[string]any{
			"file":  filename,
			"error": err.Error(),
		})
		return nil, err
	}

	if normalized.DroppedRows > 0 {
		s.logger.Warn("Dropped rows with unparseable amounts", map[string]any{
			"file":         filename,
			"dropped_rows": normalized.DroppedRows,
		})
	}

	var session *entity.Session
	err = s.queue.Submit(ctx, "ingest", func(ctx context.Context) error {
		if err := s.repo.Replace(ctx, normalized.Transactions); err != nil {
			return fmt.Errorf("failed to store transactions: %w", err)
		}

		session = entity.NewSession(filename, len(normalized.Transactions), normalized.DroppedRows, s.timeProvider)

		s.mu.Lock()
		s.session = session
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to load statement", map[string]any{
			"file":  filename,
			"error": err.Error(),
		})
		return nil, err
	}

	result := &usecase.IngestResult{
		TotalTransactions: len(normalized.Transactions),
		Categories:        make(map[string]int),
		DroppedRows:       normalized.DroppedRows,
		Session:           *session,
	}
	for _, t := range normalized.Transactions {
		result.Categories[t.Category.String()]++
		if t.IsUncategorized() {
			result.OtherCount++
		}
	}

	s.logger.Info("Statement loaded", map[string]any{
		"file":         filename,
		"shape":        string(normalized.Shape),
		"transactions": result.TotalTransactions,
		"other_count":  result.OtherCount,
		"duration_ms":  s.timeProvider.Since(start).Std().Milliseconds(),
	})

	return result, nil
}

// ListTransactions returns every transaction ordered by id
func (s *Service) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	if _, err := s.currentSession(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ListUncategorized returns the transactions still filed under Other
func (s *Service) ListUncategorized(ctx context.Context) ([]entity.Transaction, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	other := make([]entity.Transaction, 0)
	for _, t := range transactions {
		if t.IsUncategorized() {
			other = append(other, t)
		}
	}
	return other, nil
}

// UpdateCategory overrides the category and display name of one transaction
func (s *Service) UpdateCategory(ctx context.Context, id uint64, category, customName string) (*entity.Transaction, error) {
	if _, err := s.currentSession(); err != nil {
		return nil, err
	}

	if err := s.validateUpdateCategory(id, category, customName); err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	err := s.queue.Submit(ctx, "update_category", func(ctx context.Context) error {
		tx, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		tx.Recategorize(entity.Category(category), customName)
		if err := s.repo.Update(ctx, tx); err != nil {
			return err
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction category updated", map[string]any{
		"id":          id,
		"category":    category,
		"custom_name": customName,
	})

	return updated, nil
}

// AddCustomCategory files the transaction and every keyword match under a new label
func (s *Service) AddCustomCategory(ctx context.Context, id uint64, name string, keywords []string) (int, error) {
	if _, err := s.currentSession(); err != nil {
		return 0, err
	}

	if err := validateCustomCategory(id, name); err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	keywords = normalizeKeywords(keywords)

	affected := 0
	err := s.queue.Submit(ctx, "add_custom_category", func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}

		transactions, err := s.repo.List(ctx)
		if err != nil {
			return err
		}

		changed := make([]entity.Transaction, 0)
		for i := range transactions {
			t := &transactions[i]
			if t.ID != id && !matchesAny(*t, keywords) {
				continue
			}
			t.Recategorize(entity.Category(name), name)
			changed = append(changed, *t)
		}

		if err := s.repo.UpdateMany(ctx, changed); err != nil {
			return err
		}

		affected = 0
		for _, t := range transactions {
			if t.Category.String() == name {
				affected++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Custom category added", map[string]any{
		"id":             id,
		"category":       name,
		"keywords":       keywords,
		"affected_count": affected,
	})

	return affected, nil
}

func matchesAny(t entity.Transaction, keywords []string) bool {
	for _, k := range keywords {
		if t.DescriptionContains(k) {
			return true
		}
	}
	return false
}

// ExpenseSummary totals expenses per effective label
func (s *Service) ExpenseSummary(ctx context.Context) ([]usecase.CategorySummary, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(transactions)
}

// ListAllCategories returns the predefined labels and those found in the table
func (s *Service) ListAllCategories(ctx context.Context) (*usecase.CategoryListing, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return s.registry.Build(transactions), nil
}

// CategoryRules exposes the keyword rule table
func (s *Service) CategoryRules() []usecase.CategoryRule {
	rules := s.categorizer.Rules()
	out := make([]usecase.CategoryRule, len(rules))
	for i, r := range rules {
		out[i] = usecase.CategoryRule{
			Category: r.Category.String(),
			Keywords: r.Keywords,
		}
	}
	return out
}

// CurrentSession returns metadata about the loaded statement
func (s *Service) CurrentSession(_ context.Context) (*entity.Session, error) {
	return s.currentSession()
}

// ExportCSV writes the loaded table, including overrides, as CSV
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			strconv.FormatUint(t.ID, 10),
			t.Date,
			t.Description,
			t.Amount.String(),
			t.Category.String(),
			t.CustomName,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
