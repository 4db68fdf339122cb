package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// MaxDecimalPlaces defines the number of decimal places used when reporting money amounts
const MaxDecimalPlaces = 2

// ParseAmount converts a statement cell into a decimal amount.
// Thousands separators (",") and surrounding whitespace are removed before parsing,
// so "1,200.50" becomes 1200.50. Blank cells are reported as invalid.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", errs.ErrValidation)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", errs.ErrValidation, raw)
	}
	return amount, nil
}

// ParseAmountOrZero is the lenient variant used for withdrawal/deposit columns,
// where a blank or malformed cell counts as no movement.
func ParseAmountOrZero(raw string) decimal.Decimal {
	amount, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// RoundAmount rounds to MaxDecimalPlaces, half away from zero
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MaxDecimalPlaces)
}

// FormatAmount renders an amount with exactly two decimal places
// Example: 10.1 becomes "10.10", -500 becomes "-500.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
