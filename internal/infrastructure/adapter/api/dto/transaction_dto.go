package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// TransactionResponse is one row of the loaded table.
// Field names follow the statement columns the front-end reads.
type TransactionResponse struct {
	ID          uint64  `json:"id"`
	Date        string  `json:"Date"`
	Description string  `json:"Description"`
	Amount      float64 `json:"Amount"`
	Category    string  `json:"Category"`
	CustomName  string  `json:"custom_name"`
}

// NewTransactionResponse converts a transaction entity for the API
func NewTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Category:    t.Category.String(),
		CustomName:  t.CustomName,
	}
}

// NewTransactionList converts a slice of entities, never returning nil
func NewTransactionList(transactions []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = NewTransactionResponse(t)
	}
	return out
}

// UpdateCategoryRequest is the body of POST /api/update_category
type UpdateCategoryRequest struct {
	ID         json.RawMessage `json:"id"`
	Category   string          `json:"category"`
	CustomName string          `json:"custom_name"`
}

// UpdateCategoryResponse is returned after a successful override
type UpdateCategoryResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// AddCustomCategoryRequest is the body of POST /api/add_custom_category
type AddCustomCategoryRequest struct {
	ID                  json.RawMessage `json:"id"`
	CustomCategory      string          `json:"custom_category"`
	DescriptionKeywords []string        `json:"description_keywords"`
}

// AddCustomCategoryResponse reports how many transactions carry the new category
type AddCustomCategoryResponse struct {
	Message       string `json:"message"`
	AffectedCount int    `json:"affected_count"`
}

// ParseTransactionID accepts a JSON number or a numeric string holding a positive integer
func ParseTransactionID(raw json.RawMessage) (uint64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, domainerr.NewValidationError("id", "transaction ID is required")
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, domainerr.NewValidationError("id", "invalid transaction ID format")
		}
		text = strings.TrimSpace(text)
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Whole numbers written as floats, e.g. 3.0
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, domainerr.NewValidationError("id", "invalid transaction ID format")
		}
		// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold
		if f >= math.MaxInt64 || f <= math.MinInt64 {
			return 0, domainerr.NewValidationError("id", "transaction ID is out of range")
		}
		id = int64(f)
	}

	if id <= 0 {
		return 0, domainerr.NewValidationError("id", "transaction ID must be a positive integer")
	}
	return uint64(id), nil
}
