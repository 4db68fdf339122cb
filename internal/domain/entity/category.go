package entity

// Category is a label partitioning transactions for summary purposes
type Category string

// Predefined categories, in classification priority order with Other last
const (
	CategoryGroceries      Category = "Groceries"
	CategoryUtilities      Category = "Utilities"
	CategoryRent           Category = "Rent"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTransportation Category = "Transportation"
	CategoryDining         Category = "Dining"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryInsurance      Category = "Insurance"
	CategoryInvestment     Category = "Investment"
	CategoryTravel         Category = "Travel"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryHomeGarden     Category = "Home & Garden"
	CategoryOther          Category = "Other"
)

var predefinedCategories = []Category{
	CategoryGroceries,
	CategoryUtilities,
	CategoryRent,
	CategoryEntertainment,
	CategoryTransportation,
	CategoryDining,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryInsurance,
	CategoryInvestment,
	CategoryTravel,
	CategoryPersonalCare,
	CategoryHomeGarden,
	CategoryOther,
}

// PredefinedCategories returns a copy of the closed, ordered list of predefined labels
func PredefinedCategories() []Category {
	out := make([]Category, len(predefinedCategories))
	copy(out, predefinedCategories)
	return out
}

// IsPredefined reports whether the label belongs to the predefined set
func (c Category) IsPredefined() bool {
	for _, p := range predefinedCategories {
		if p == c {
			return true
		}
	}
	return false
}

// String returns the label text
func (c Category) String() string {
	return string(c)
}
