package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

func tx(id uint64, amount string, category entity.Category, custom string) entity.Transaction {
	t := entity.NewTransaction(id, "01/06/24", "ROW", decimal.RequireFromString(amount), category)
	t.CustomName = custom
	return t
}

func TestSummarize(t *testing.T) {
	transactions := []entity.Transaction{
		tx(1, "-100.005", entity.CategoryGroceries, ""),
		tx(2, "-50", entity.CategoryRent, ""),
		tx(3, "-49.995", entity.CategoryGroceries, ""),
		tx(4, "5000", entity.CategoryOther, ""),        // income is ignored
		tx(5, "-50", entity.CategoryOther, "Pet Care"), // grouped by custom name
	}

	summary, err := Summarize(transactions)
	require.NoError(t, err)
	require.Len(t, summary, 3)

	assert.Equal(t, "Groceries", summary[0].Category)
	assert.Equal(t, "150", summary[0].Amount.String())
	assert.Equal(t, 2, summary[0].Count)
	assert.Equal(t, "60", summary[0].Percentage.String())

	// Equal totals are ordered by label
	assert.Equal(t, "Pet Care", summary[1].Category)
	assert.Equal(t, "Rent", summary[2].Category)
	assert.Equal(t, "20", summary[2].Percentage.String())
	assert.Equal(t, 1, summary[1].Count)
	assert.Equal(t, 1, summary[2].Count)
}

func TestSummarize_SplitsByCustomName(t *testing.T) {
	summary, err := Summarize([]entity.Transaction{
		tx(1, "-100", entity.CategoryDining, ""),
		tx(2, "-50", entity.CategoryDining, "Coffee"),
		tx(3, "200", entity.CategoryOther, ""),
	})
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Dining", summary[0].Category)
	assert.Equal(t, "100.00", summary[0].Amount.StringFixed(2))
	assert.Equal(t, 1, summary[0].Count)

	assert.Equal(t, "Coffee", summary[1].Category)
	assert.Equal(t, "50.00", summary[1].Amount.StringFixed(2))
	assert.Equal(t, 1, summary[1].Count)
}

func TestSummarize_RoundsToTwoDecimals(t *testing.T) {
	summary, err := Summarize([]entity.Transaction{
		tx(1, "-10.125", entity.CategoryDining, ""),
		tx(2, "-0.001", entity.CategoryDining, ""),
	})
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "10.13", summary[0].Amount.StringFixed(2))
	assert.Equal(t, "100", summary[0].Percentage.String())
}

func TestSummarize_NoExpenses(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []entity.Transaction
	}{
		{"Empty", nil},
		{"OnlyIncome", []entity.Transaction{tx(1, "10", entity.CategoryOther, "")}},
		{"ZeroAmount", []entity.Transaction{tx(1, "0", entity.CategoryOther, "")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := Summarize(tc.transactions)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, errs.ErrEmptyData)
		})
	}
}

func TestSummarize_TotalMatchesExpenses(t *testing.T) {
	transactions := []entity.Transaction{
		tx(1, "-1.11", entity.CategoryGroceries, ""),
		tx(2, "-2.22", entity.CategoryUtilities, ""),
		tx(3, "-3.33", entity.CategoryOther, "Gifts"),
		tx(4, "4.44", entity.CategoryOther, ""),
	}

	summary, err := Summarize(transactions)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, row := range summary {
		sum = sum.Add(row.Amount)
	}
	assert.True(t, decimal.RequireFromString("6.66").Equal(sum))
}
