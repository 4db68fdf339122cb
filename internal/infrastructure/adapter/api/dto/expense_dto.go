package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
)

// UploadResponse is returned after a statement was loaded
type UploadResponse struct {
	Message           string          `json:"message"`
	TotalTransactions int             `json:"total_transactions"`
	Categories        map[string]int  `json:"categories"`
	OtherCount        int             `json:"other_count"`
	DroppedRows       int             `json:"dropped_rows"`
	Session           SessionResponse `json:"session"`
}

// NewUploadResponse converts an ingestion result for the API
func NewUploadResponse(r *usecase.IngestResult) UploadResponse {
	return UploadResponse{
		Message:           "File uploaded successfully",
		TotalTransactions: r.TotalTransactions,
		Categories:        r.Categories,
		OtherCount:        r.OtherCount,
		DroppedRows:       r.DroppedRows,
		Session:           NewSessionResponse(r.Session),
	}
}

// SessionResponse describes the loaded statement
type SessionResponse struct {
	SourceFile       string    `json:"source_file"`
	LoadedAt         time.Time `json:"loaded_at"`
	TransactionCount int       `json:"transaction_count"`
	DroppedRows      int       `json:"dropped_rows"`
}

// NewSessionResponse converts session metadata for the API
func NewSessionResponse(s entity.Session) SessionResponse {
	return SessionResponse{
		SourceFile:       s.SourceFile,
		LoadedAt:         s.LoadedAt,
		TransactionCount: s.TransactionCount,
		DroppedRows:      s.DroppedRows,
	}
}

// SummaryRow is one row of the expense summary
type SummaryRow struct {
	Category         string  `json:"Category"`
	Amount           float64 `json:"Amount"`
	TransactionCount int     `json:"Transaction_Count"`
	Percentage       float64 `json:"Percentage"`
}

// NewSummary converts summary rows for the API
func NewSummary(rows []usecase.CategorySummary) []SummaryRow {
	out := make([]SummaryRow, len(rows))
	for i, r := range rows {
		out[i] = SummaryRow{
			Category:         r.Category,
			Amount:           r.Amount.InexactFloat64(),
			TransactionCount: r.Count,
			Percentage:       r.Percentage.InexactFloat64(),
		}
	}
	return out
}

// CategoriesResponse lists category labels
type CategoriesResponse struct {
	Predefined []string `json:"predefined"`
	All        []string `json:"all"`
	Custom     []string `json:"custom"`
}

// NewCategoriesResponse converts a category listing for the API
func NewCategoriesResponse(l *usecase.CategoryListing) CategoriesResponse {
	return CategoriesResponse{
		Predefined: l.Predefined,
		All:        l.All,
		Custom:     l.Custom,
	}
}

// RuleResponse is one keyword rule
type RuleResponse struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// HealthResponse reports liveness and whether a statement is loaded
type HealthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"data_loaded"`
}
