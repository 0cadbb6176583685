package core

import "sort"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary maps category names to summed amounts, sign preserved.
// It is derived data: recomputed from the transaction list on each call,
// never cached.
type Summary map[string]Money

// Summarize groups transactions by category and sums their amounts.
// Transactions without a category fall into CategoryOther. Sums are
// order-independent.
func Summarize(txns []Transaction) Summary {
	s := make(Summary)
	for _, t := range txns {
		cat := t.Category
		if cat == "" {
			cat = CategoryOther
		}
		s[cat] = Money{Cents: s[cat].Cents + t.Amount.Cents}
	}
	return s
}

// Total returns the sum over all categories. It may be negative or zero
// depending on the sign convention of the source data.
func (s Summary) Total() Money {
	var cents int64
	for _, m := range s {
		cents += m.Cents
	}
	return Money{Cents: cents}
}

// Ordered returns the per-category amounts in taxonomy declaration order,
// restricted to categories present in the summary. Categories outside the
// taxonomy (possible when the source file carried its own category column)
// are appended after the known ones.
func (s Summary) Ordered() []CategoryAmount {
	out := make([]CategoryAmount, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, rule := range Taxonomy {
		if m, ok := s[rule.Name]; ok {
			out = append(out, CategoryAmount{Name: rule.Name, Amount: m})
			seen[rule.Name] = true
		}
	}
	var extra []string
	for name := range s {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, CategoryAmount{Name: name, Amount: s[name]})
	}
	return out
}
