package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/expense-analyzer/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	t.Run("Keeps provided fields", func(t *testing.T) {
		tx := NewTransaction(1, "01/04/24", "DMART PURCHASE", decimal.NewFromInt(-500), CategoryGroceries)

		assert.Equal(t, uint64(1), tx.ID)
		assert.Equal(t, "01/04/24", tx.Date)
		assert.Equal(t, "DMART PURCHASE", tx.Description)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-500)))
		assert.Equal(t, CategoryGroceries, tx.Category)
		assert.Equal(t, "", tx.CustomName)
	})

	t.Run("Blank description gets placeholder", func(t *testing.T) {
		tx := NewTransaction(2, "01/04/24", "   ", decimal.NewFromInt(10), CategoryOther)
		assert.Equal(t, DefaultDescription, tx.Description)
	})
}

func TestTransaction_EffectiveLabel(t *testing.T) {
	tx := Transaction{Category: CategoryDining}
	assert.Equal(t, "Dining", tx.EffectiveLabel())

	tx.CustomName = "Coffee"
	assert.Equal(t, "Coffee", tx.EffectiveLabel())
	assert.Equal(t, CategoryDining, tx.Category, "category is stored separately from the override")
}

func TestTransaction_Predicates(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromInt(-1), Category: CategoryOther}
	income := Transaction{Amount: decimal.NewFromInt(1), Category: CategoryRent}
	zero := Transaction{Amount: decimal.Zero}

	assert.True(t, expense.IsExpense())
	assert.False(t, income.IsExpense())
	assert.False(t, zero.IsExpense())
	assert.True(t, expense.IsUncategorized())
	assert.False(t, income.IsUncategorized())
}

func TestTransaction_Recategorize(t *testing.T) {
	tx := Transaction{Category: CategoryOther}
	tx.Recategorize(Category("Pet Care"), "Pet Care")

	assert.Equal(t, Category("Pet Care"), tx.Category)
	assert.Equal(t, "Pet Care", tx.CustomName)
}

func TestTransaction_DescriptionContains(t *testing.T) {
	tx := Transaction{Description: "Petsmart store #12"}

	assert.True(t, tx.DescriptionContains("PETSMART"))
	assert.True(t, tx.DescriptionContains("store"))
	assert.False(t, tx.DescriptionContains("VET"))
	assert.False(t, tx.DescriptionContains("pet.mart"), "keywords are literal, not patterns")
}

func TestCategory_IsPredefined(t *testing.T) {
	assert.Len(t, PredefinedCategories(), 15)
	assert.Equal(t, CategoryGroceries, PredefinedCategories()[0])
	assert.Equal(t, CategoryOther, PredefinedCategories()[14])

	assert.True(t, CategoryHomeGarden.IsPredefined())
	assert.False(t, Category("Zzz").IsPredefined())
	assert.False(t, Category("groceries").IsPredefined(), "labels are case-sensitive")

	// Callers cannot mutate the shared list
	list := PredefinedCategories()
	list[0] = "Mutated"
	assert.Equal(t, CategoryGroceries, PredefinedCategories()[0])
}

func TestNewSession(t *testing.T) {
	fixedTime := time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	session := NewSession("statement.csv", 12, 2, mockTime)

	assert.Equal(t, "statement.csv", session.SourceFile)
	assert.Equal(t, fixedTime, session.LoadedAt)
	assert.Equal(t, 12, session.TransactionCount)
	assert.Equal(t, 2, session.DroppedRows)
}
