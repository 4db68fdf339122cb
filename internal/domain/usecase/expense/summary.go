package expense

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
)

var hundred = decimal.NewFromInt(100)

// Summarize totals and counts the expenses per effective label, summing absolute values.
// Rows are ordered by total descending, equal totals by label. Income is ignored.
func Summarize(transactions []entity.Transaction) ([]usecase.CategorySummary, error) {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	grand := decimal.Zero

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		label := t.EffectiveLabel()
		amount := t.Amount.Abs()
		totals[label] = totals[label].Add(amount)
		counts[label]++
		grand = grand.Add(amount)
	}

	if len(totals) == 0 {
		return nil, errs.ErrEmptyData
	}

	summary := make([]usecase.CategorySummary, 0, len(totals))
	for label, total := range totals {
		summary = append(summary, usecase.CategorySummary{
			Category:   label,
			Amount:     total,
			Count:      counts[label],
			Percentage: total.Div(grand).Mul(hundred).Round(1),
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		if cmp := summary[i].Amount.Cmp(summary[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return summary[i].Category < summary[j].Category
	})

	for i := range summary {
		summary[i].Amount = entity.RoundAmount(summary[i].Amount)
	}

	return summary, nil
}
