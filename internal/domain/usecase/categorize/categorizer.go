// Package categorize assigns spending categories to statement descriptions
// using an ordered table of keyword rules.
package categorize

import (
	"strings"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/entity"
)

// Categorizer classifies descriptions against a fixed rule table
type Categorizer struct {
	rules []Rule
}

// NewCategorizer creates a categorizer with the built-in rule table
func NewCategorizer() *Categorizer {
	return &Categorizer{rules: defaultRules}
}

// Classify returns the category of the first rule whose keywords occur in the
// upper-cased description, or Other when nothing matches
func (c *Categorizer) Classify(description string) entity.Category {
	upper := strings.ToUpper(description)

	for _, rule := range c.rules {
		if rule.matches(upper) {
			return rule.Category
		}
	}
	return entity.CategoryOther
}

// Rules returns a deep copy of the rule table in evaluation order
func (c *Categorizer) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, rule := range c.rules {
		out[i] = Rule{
			Category: rule.Category,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return out
}

func (r Rule) matches(upperDescription string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(upperDescription, keyword) {
			return true
		}
	}
	return false
}
