package limit

import (
	"strings"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/matching"
)

// ItemLimitRule caps the quantity of one item for a cohort. Empty fields match any value.
type ItemLimitRule struct {
	Item           string
	EducationLevel string
	StudentType    entity.StudentType
	Gender         entity.Gender
	Max            int
}

// ItemLimitTable looks up per-item maxima by item, education level, student type and gender.
type ItemLimitTable struct {
	rules []ItemLimitRule
}

// NewItemLimitTable builds a table from configuration rules.
func NewItemLimitTable(rules []ItemLimitRule) *ItemLimitTable {
	return &ItemLimitTable{rules: rules}
}

// Cohort is the part of a student profile the table is keyed by.
type Cohort struct {
	EducationLevel string
	StudentType    entity.StudentType
	Gender         entity.Gender
}

// MaxFor returns the maximum quantity of an item for the cohort. The second result is false
// when no rule caps the item. With an unset gender the largest cap across genders applies.
func (t *ItemLimitTable) MaxFor(itemKey string, cohort Cohort) (int, bool) {
	if t == nil {
		return 0, false
	}

	best, bestSpecificity, found := 0, -1, false
	for _, rule := range t.rules {
		if matching.ItemKey(rule.Item) != itemKey {
			continue
		}

		specificity, ok := rule.matches(cohort)
		if !ok {
			continue
		}

		switch {
		case specificity > bestSpecificity:
			best, bestSpecificity, found = rule.Max, specificity, true
		case specificity == bestSpecificity && rule.Max > best:
			best = rule.Max
		}
	}

	return best, found
}

// ItemsFor lists the capped items that apply to the cohort, keyed by item key.
func (t *ItemLimitTable) ItemsFor(cohort Cohort) map[string]ItemAllowance {
	allowances := make(map[string]ItemAllowance)
	if t == nil {
		return allowances
	}

	for _, rule := range t.rules {
		key := matching.ItemKey(rule.Item)
		if _, seen := allowances[key]; seen {
			continue
		}
		if _, ok := rule.matches(cohort); !ok {
			continue
		}
		maxQty, _ := t.MaxFor(key, cohort)
		allowances[key] = ItemAllowance{Item: rule.Item, Max: &maxQty}
	}

	return allowances
}

// matches reports whether the rule applies to the cohort and how many of its fields were specific.
// A gendered rule applies to a student without a gender so the permissive maximum can be shown.
func (r ItemLimitRule) matches(cohort Cohort) (int, bool) {
	specificity := 0

	switch {
	case r.EducationLevel == "" || strings.EqualFold(r.EducationLevel, entity.AllEducationLevels):
	case strings.EqualFold(r.EducationLevel, cohort.EducationLevel):
		specificity++
	default:
		return 0, false
	}

	switch {
	case r.StudentType == "":
	case r.StudentType == cohort.StudentType:
		specificity++
	default:
		return 0, false
	}

	switch {
	case r.Gender == entity.GenderUnset:
	case cohort.Gender == entity.GenderUnset:
	case r.Gender == cohort.Gender:
		specificity++
	default:
		return 0, false
	}

	return specificity, true
}
