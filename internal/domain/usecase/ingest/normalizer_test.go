package ingest_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/categorize"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/ingest"
)

func newNormalizer() *ingest.Normalizer {
	return ingest.NewNormalizer(categorize.NewCategorizer())
}

func TestNormalize_WithdrawalDepositShape(t *testing.T) {
	csv := "Date,Narration,Withdrawal Amt.,Deposit Amt.\n" +
		"01/06/24,DMART PURCHASE,\"1,200.50\",\n" +
		"02/06/24,SALARY CREDIT,,\"50,000\"\n" +
		"03/06/24,,abc,\n"

	result, err := newNormalizer().Normalize(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, ingest.ShapeWithdrawalDeposit, result.Shape)
	assert.Equal(t, 0, result.DroppedRows)
	require.Len(t, result.Transactions, 3)

	first := result.Transactions[0]
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, "01/06/24", first.Date)
	assert.True(t, decimal.RequireFromString("-1200.50").Equal(first.Amount))
	assert.Equal(t, entity.CategoryGroceries, first.Category)
	assert.Empty(t, first.CustomName)

	assert.True(t, decimal.NewFromInt(50000).Equal(result.Transactions[1].Amount))

	// Unparseable withdrawal counts as zero and the row is kept
	third := result.Transactions[2]
	assert.True(t, third.Amount.IsZero())
	assert.Equal(t, entity.DefaultDescription, third.Description)
	assert.Equal(t, entity.CategoryOther, third.Category)
}

func TestNormalize_SingleAmountShape(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"2024-06-01,Netflix Subscription,-15.99\n" +
		"2024-06-02,Broken row,n/a\n" +
		"2024-06-03,Uber Trip,\"-1,250\"\n"

	result, err := newNormalizer().Normalize(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, ingest.ShapeSingleAmount, result.Shape)
	assert.Equal(t, 1, result.DroppedRows)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, uint64(1), result.Transactions[0].ID)
	assert.Equal(t, entity.CategoryEntertainment, result.Transactions[0].Category)

	// Ids stay dense after a dropped row
	assert.Equal(t, uint64(2), result.Transactions[1].ID)
	assert.Equal(t, "Uber Trip", result.Transactions[1].Description)
	assert.True(t, decimal.NewFromInt(-1250).Equal(result.Transactions[1].Amount))
	assert.Equal(t, entity.CategoryTransportation, result.Transactions[1].Category)
}

func TestNormalize_DescriptionFallbacks(t *testing.T) {
	testCases := []struct {
		name     string
		csv      string
		expected string
	}{
		{"Narration", "Date,Narration,Amount\n1,ZOMATO,-10\n", "ZOMATO"},
		{"Transaction", "Date,Transaction,Amount\n1,IRCTC,-10\n", "IRCTC"},
		{"DescriptionBeatsNarration", "Date,Narration,Description,Amount\n1,A,B,-10\n", "B"},
		{"NoDescriptionColumn", "Date,Amount\n1,-10\n", entity.DefaultDescription},
		{"BlankCell", "Date,Description,Amount\n1,  ,-10\n", entity.DefaultDescription},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := newNormalizer().Normalize(strings.NewReader(tc.csv))
			require.NoError(t, err)
			require.Len(t, result.Transactions, 1)
			assert.Equal(t, tc.expected, result.Transactions[0].Description)
		})
	}
}

func TestNormalize_ShapePrecedence(t *testing.T) {
	csv := "Date,Narration,Amount,Withdrawal Amt.,Deposit Amt.\n" +
		"1,RENT,999,100,0\n"

	result, err := newNormalizer().Normalize(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, ingest.ShapeWithdrawalDeposit, result.Shape)
	assert.True(t, decimal.NewFromInt(-100).Equal(result.Transactions[0].Amount))
}

func TestNormalize_HeaderHandling(t *testing.T) {
	t.Run("TrimmedCaseInsensitiveColumns", func(t *testing.T) {
		csv := " date , DESCRIPTION ,amount \n1,Swiggy,-20\n"

		result, err := newNormalizer().Normalize(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, entity.CategoryDining, result.Transactions[0].Category)
		assert.Equal(t, []string{"date", "DESCRIPTION", "amount"}, result.Columns)
	})

	t.Run("DuplicateHeaderRowDropped", func(t *testing.T) {
		csv := "Date,Description,Amount\n" +
			"Date,Description,Amount\n" +
			"1,Flipkart,-300\n"

		result, err := newNormalizer().Normalize(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, uint64(1), result.Transactions[0].ID)
		assert.Equal(t, 0, result.DroppedRows)
	})

	t.Run("OnlyFirstDuplicateHeaderDropped", func(t *testing.T) {
		csv := "Date,Description,Amount\n" +
			"Date,Description,Amount\n" +
			"Date,Description,Amount\n" +
			"1,Flipkart,-300\n"

		result, err := newNormalizer().Normalize(strings.NewReader(csv))
		require.NoError(t, err)
		// The second repeat fails amount parsing and is dropped as a bad row
		assert.Equal(t, 1, result.DroppedRows)
		require.Len(t, result.Transactions, 1)
	})

	t.Run("ShortRowsReadAsBlank", func(t *testing.T) {
		csv := "Date,Narration,Withdrawal Amt.,Deposit Amt.\n1,LIC PREMIUM,500\n"

		result, err := newNormalizer().Normalize(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.True(t, decimal.NewFromInt(-500).Equal(result.Transactions[0].Amount))
		assert.Equal(t, entity.CategoryInsurance, result.Transactions[0].Category)
	})
}

func TestNormalize_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		csv      string
		sentinel error
		message  string
	}{
		{"EmptyFile", "", errs.ErrValidation, "the uploaded CSV file is empty"},
		{"HeaderOnly", "Date,Amount\n", errs.ErrValidation, "the uploaded CSV file is empty"},
		{"NoAmountColumns", "Date,Description\n1,x\n", errs.ErrSchema, "CSV must contain either 'Amount' column"},
		{"OnlyWithdrawal", "Date,Withdrawal Amt.\n1,5\n", errs.ErrSchema, "CSV must contain either 'Amount' column"},
		{"NoDateColumn", "Description,Amount\nx,-1\n", errs.ErrSchema, "CSV must contain a 'Date' column"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := newNormalizer().Normalize(strings.NewReader(tc.csv))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestNormalize_SchemaErrorListsColumns(t *testing.T) {
	_, err := newNormalizer().Normalize(strings.NewReader("Memo,Value\nx,1\n"))
	require.Error(t, err)

	var schemaErr *errs.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Memo", "Value"}, schemaErr.Columns)
}
