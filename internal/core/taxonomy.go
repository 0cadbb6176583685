package core

import "strings"

// CategoryRule binds a category name to the keywords that select it.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// CategoryOther is the fallback for descriptions matching no keyword.
const CategoryOther = "Other"

// Taxonomy is the fixed, ordered category list. Declaration order matters:
// classification returns the first rule with a keyword hit, so a description
// containing both "netflix" and "uber" lands in Entertainment.
var Taxonomy = []CategoryRule{
	{Name: "Food", Keywords: []string{
		"restaurant", "cafe", "coffee", "starbucks", "pizza", "burger",
		"grocery", "supermarket", "bakery", "mcdonald",
	}},
	{Name: "Entertainment", Keywords: []string{
		"netflix", "spotify", "cinema", "movie", "theater", "concert",
		"game", "steam",
	}},
	{Name: "Transportation", Keywords: []string{
		"uber", "lyft", "taxi", "bus", "train", "metro", "fuel",
		"gas station", "parking",
	}},
	{Name: "Bills", Keywords: []string{
		"electric", "water", "internet", "phone", "rent", "insurance",
		"utility", "subscription",
	}},
	{Name: "Shopping", Keywords: []string{
		"amazon", "ebay", "mall", "clothing", "shoes", "store",
	}},
	// Other carries no keywords: it only matches as the exhaustion fallback.
	{Name: CategoryOther},
}

// Classify maps a transaction description to a category. Matching is
// case-insensitive substring containment, not word-boundary matching, so
// "Uberconfident Consulting" still lands in Transportation. That imprecision
// is accepted in exchange for a predictable single-pass lookup.
func Classify(description string) string {
	d := strings.ToLower(description)
	for _, rule := range Taxonomy {
		for _, kw := range rule.Keywords {
			if strings.Contains(d, kw) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

// IsKnownCategory reports whether name is part of the closed category set.
func IsKnownCategory(name string) bool {
	for _, rule := range Taxonomy {
		if rule.Name == name {
			return true
		}
	}
	return false
}

// CategoryNames returns the category names in declaration order.
func CategoryNames() []string {
	names := make([]string, len(Taxonomy))
	for i, rule := range Taxonomy {
		names[i] = rule.Name
	}
	return names
}
