package expense

import (
	"sort"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
)

// Registry knows the predefined labels and discovers custom ones from the table
type Registry struct {
	predefined []string
}

// NewRegistry creates a registry over the predefined categories
func NewRegistry() *Registry {
	categories := entity.PredefinedCategories()
	predefined := make([]string, len(categories))
	for i, c := range categories {
		predefined[i] = c.String()
	}
	return &Registry{predefined: predefined}
}

// Predefined returns the predefined labels in priority order
func (r *Registry) Predefined() []string {
	return append([]string(nil), r.predefined...)
}

// IsPredefined reports whether label is one of the predefined categories
func (r *Registry) IsPredefined(label string) bool {
	return entity.Category(label).IsPredefined()
}

// Build lists the labels in use. All is the sorted union of assigned categories
// and custom names; Custom keeps custom names in first-seen order.
func (r *Registry) Build(transactions []entity.Transaction) *usecase.CategoryListing {
	seen := make(map[string]struct{})
	seenCustom := make(map[string]struct{})
	custom := make([]string, 0)

	for _, t := range transactions {
		seen[t.Category.String()] = struct{}{}

		if t.CustomName == "" {
			continue
		}
		seen[t.CustomName] = struct{}{}
		if _, ok := seenCustom[t.CustomName]; !ok {
			seenCustom[t.CustomName] = struct{}{}
			custom = append(custom, t.CustomName)
		}
	}

	all := make([]string, 0, len(seen))
	for label := range seen {
		all = append(all, label)
	}
	sort.Strings(all)

	return &usecase.CategoryListing{
		Predefined: r.Predefined(),
		All:        all,
		Custom:     custom,
	}
}
