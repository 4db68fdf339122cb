package usecase

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
)

// IngestResult describes a freshly loaded statement
type IngestResult struct {
	TotalTransactions int
	Categories        map[string]int // transactions per assigned category
	OtherCount        int
	DroppedRows       int
	Session           entity.Session
}

// CategorySummary is one row of the expense summary
type CategorySummary struct {
	Category   string
	Amount     decimal.Decimal // Sum of absolute expense amounts, 2 decimal places
	Count      int             // Expense transactions carrying this label
	Percentage decimal.Decimal // Share of all expenses, 1 decimal place
}

// CategoryListing groups the known category labels
type CategoryListing struct {
	Predefined []string
	All        []string
	Custom     []string
}

// CategoryRule is a read-only view of one keyword rule
type CategoryRule struct {
	Category string
	Keywords []string
}

// ExpenseUseCase defines the operations offered on the loaded statement
type ExpenseUseCase interface {
	// Ingest parses a CSV statement and replaces the loaded table with it.
	// On failure the previously loaded table is left untouched.
	Ingest(ctx context.Context, filename string, r io.Reader) (*IngestResult, error)

	// ListTransactions returns every transaction ordered by id
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)

	// ListUncategorized returns the transactions whose category is Other
	ListUncategorized(ctx context.Context) ([]entity.Transaction, error)

	// UpdateCategory overrides the category of one transaction.
	// A custom name is required when the category is not predefined.
	UpdateCategory(ctx context.Context, id uint64, category, customName string) (*entity.Transaction, error)

	// AddCustomCategory assigns a custom category to one transaction and to every
	// transaction whose description contains one of the keywords.
	// Returns the number of transactions now carrying the category.
	AddCustomCategory(ctx context.Context, id uint64, name string, keywords []string) (int, error)

	// ExpenseSummary totals expenses per effective label, largest first
	ExpenseSummary(ctx context.Context) ([]CategorySummary, error)

	// ListAllCategories returns predefined, custom and combined labels
	ListAllCategories(ctx context.Context) (*CategoryListing, error)

	// CategoryRules returns the keyword rules used at ingestion
	CategoryRules() []CategoryRule

	// CurrentSession returns metadata about the loaded statement
	CurrentSession(ctx context.Context) (*entity.Session, error)

	// ExportCSV writes the loaded table as CSV
	ExportCSV(ctx context.Context, w io.Writer) error
}
