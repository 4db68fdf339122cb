package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for a loaded statement row
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement:false"`
	Date        string          `gorm:"not null;type:text"`    // raw cell text, any length
	Description string          `gorm:"not null;type:text"`
	Amount      decimal.Decimal `gorm:"not null;type:numeric"` // unscaled, keeps every parsed digit
	Category    string          `gorm:"not null;size:255;index"`
	CustomName  string          `gorm:"not null;size:255;default:''"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "statement_transactions"
}
