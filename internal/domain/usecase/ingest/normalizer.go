// Package ingest maps bank-statement CSV files onto canonical transactions.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// Recognized column names, matched case-insensitively after trimming
const (
	ColumnDate        = "Date"
	ColumnAmount      = "Amount"
	ColumnDescription = "Description"
	ColumnNarration   = "Narration"
	ColumnTransaction = "Transaction"
	ColumnWithdrawal  = "Withdrawal Amt."
	ColumnDeposit     = "Deposit Amt."
)

// Shape identifies which statement layout was detected
type Shape string

const (
	// ShapeWithdrawalDeposit has separate withdrawal and deposit columns
	ShapeWithdrawalDeposit Shape = "withdrawal_deposit"
	// ShapeSingleAmount has one signed amount column
	ShapeSingleAmount Shape = "single_amount"
)

// Classifier assigns the initial category of a transaction
type Classifier interface {
	Classify(description string) entity.Category
}

// Result is the outcome of normalizing one statement
type Result struct {
	Transactions []entity.Transaction
	Shape        Shape
	Columns      []string
	DroppedRows  int
}

// Normalizer turns raw statement rows into categorized transactions
type Normalizer struct {
	classifier Classifier
}

// NewNormalizer creates a normalizer that seeds categories with the given classifier
func NewNormalizer(classifier Classifier) *Normalizer {
	return &Normalizer{classifier: classifier}
}

// Normalize reads a CSV statement and returns its transactions with ids 1..N.
// Rows whose amount cannot be parsed are dropped before ids are assigned.
func (n *Normalizer) Normalize(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.NewValidationError("file", fmt.Sprintf("failed to read CSV: %v", err))
	}
	if len(records) < 2 {
		return nil, errs.NewValidationError("file", "the uploaded CSV file is empty")
	}

	header := parseHeaders(records[0])
	rows := records[1:]

	// Only a single leading repeat of the header is removed
	if isHeaderRow(rows[0], header) {
		rows = rows[1:]
	}

	cols := newColumnIndex(header)

	var (
		shape       Shape
		amountOf    func(row []string) (decimal.Decimal, bool)
		describedBy string
	)

	switch {
	case cols.has(ColumnWithdrawal) && cols.has(ColumnDeposit):
		shape = ShapeWithdrawalDeposit
		amountOf = func(row []string) (decimal.Decimal, bool) {
			withdrawal := entity.ParseAmountOrZero(cols.value(row, ColumnWithdrawal))
			deposit := entity.ParseAmountOrZero(cols.value(row, ColumnDeposit))
			return deposit.Sub(withdrawal), true
		}
		describedBy = cols.first(ColumnNarration)
	case cols.has(ColumnAmount):
		shape = ShapeSingleAmount
		amountOf = func(row []string) (decimal.Decimal, bool) {
			amount, err := entity.ParseAmount(cols.value(row, ColumnAmount))
			return amount, err == nil
		}
		describedBy = cols.first(ColumnDescription, ColumnNarration, ColumnTransaction)
	default:
		return nil, errs.NewSchemaError(header, fmt.Sprintf(
			"CSV must contain either '%s' column or '%s' and '%s' columns",
			ColumnAmount, ColumnWithdrawal, ColumnDeposit))
	}

	if !cols.has(ColumnDate) {
		return nil, errs.NewSchemaError(header, fmt.Sprintf("CSV must contain a '%s' column", ColumnDate))
	}

	result := &Result{
		Shape:        shape,
		Columns:      header,
		Transactions: make([]entity.Transaction, 0, len(rows)),
	}

	for _, row := range rows {
		amount, ok := amountOf(row)
		if !ok {
			result.DroppedRows++
			continue
		}

		description := ""
		if describedBy != "" {
			description = strings.TrimSpace(cols.value(row, describedBy))
		}

		id := uint64(len(result.Transactions) + 1)
		tx := entity.NewTransaction(
			id,
			strings.TrimSpace(cols.value(row, ColumnDate)),
			description,
			amount,
			entity.CategoryOther,
		)
		tx.Category = n.classifier.Classify(tx.Description)
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

func parseHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

func isHeaderRow(row, header []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i := range row {
		if strings.TrimSpace(row[i]) != header[i] {
			return false
		}
	}
	return true
}
