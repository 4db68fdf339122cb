package expense

import (
	"strings"

	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// validateUpdateCategory checks a single-transaction category override
func (s *Service) validateUpdateCategory(id uint64, category, customName string) error {
	if id == 0 {
		return errs.NewValidationError("id", "transaction ID is required")
	}

	if strings.TrimSpace(category) == "" {
		return errs.NewValidationError("category", "category is required")
	}

	if !s.registry.IsPredefined(category) && strings.TrimSpace(customName) == "" {
		return errs.NewValidationError("custom_name", "Custom category name is required for non-predefined categories")
	}

	return nil
}

// validateCustomCategory checks a keyword-driven custom category request
func validateCustomCategory(id uint64, name string) error {
	if id == 0 {
		return errs.NewValidationError("id", "transaction ID is required")
	}

	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("custom_category", "custom category name is required")
	}

	return nil
}

// normalizeKeywords trims keywords and drops blank ones
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
