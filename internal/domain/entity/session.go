package entity

import (
	"time"

	tport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
)

// Session describes the statement currently loaded in the store.
// Every successful ingestion replaces it.
type Session struct {
	SourceFile       string
	LoadedAt         time.Time
	TransactionCount int
	DroppedRows      int
}

// NewSession records a completed ingestion
func NewSession(sourceFile string, transactionCount, droppedRows int, timeProvider tport.TimeProvider) *Session {
	return &Session{
		SourceFile:       sourceFile,
		LoadedAt:         timeProvider.Now(),
		TransactionCount: transactionCount,
		DroppedRows:      droppedRows,
	}
}
