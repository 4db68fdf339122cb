package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDescription is used when a statement row has no usable description text
const DefaultDescription = "No description"

// Transaction is one normalized statement row
type Transaction struct {
	ID          uint64          // Sequential id assigned at ingestion, starting at 1
	Date        string          // Raw date text from the statement
	Description string          // Never empty
	Amount      decimal.Decimal // Negative for expenses, positive for income
	Category    Category        // Keyword guess at ingestion, may be overridden
	CustomName  string          // Display override; empty means "use Category"
}

// NewTransaction builds a transaction with a defaulted description and no override
func NewTransaction(id uint64, date, description string, amount decimal.Decimal, category Category) Transaction {
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return Transaction{
		ID:          id,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
	}
}

// EffectiveLabel returns the custom name when set, otherwise the category
func (t Transaction) EffectiveLabel() string {
	if t.CustomName != "" {
		return t.CustomName
	}
	return string(t.Category)
}

// IsExpense reports whether the transaction is money going out
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsUncategorized reports whether the keyword rules found no category
func (t Transaction) IsUncategorized() bool {
	return t.Category == CategoryOther
}

// Recategorize sets both the category and its display override
func (t *Transaction) Recategorize(category Category, customName string) {
	t.Category = category
	t.CustomName = customName
}

// DescriptionContains performs a case-insensitive literal substring match
func (t Transaction) DescriptionContains(keyword string) bool {
	return strings.Contains(strings.ToUpper(t.Description), strings.ToUpper(keyword))
}
