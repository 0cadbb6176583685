// Package advice turns spending summaries and user profiles into
// fixed-threshold budget suggestions.
package advice

import (
	"fmt"

	"bilancio/internal/core"
)

// Share thresholds, compared strictly: exactly 30% or exactly 10% of total
// spending resolves to the moderate message.
const (
	overspendPct   = 30.0
	wellManagedPct = 10.0
)

// NoDataMessage is emitted instead of suggestions when the summary has no
// spending to reason about.
const NoDataMessage = "No spending data available, so no suggestions."

// Suggestion is one per-category observation.
type Suggestion struct {
	Category string
	Percent  float64
	Message  string
}

// ForSummary computes each category's share of total spending and attaches
// the matching message. Shares are computed on the raw signed sums, so a
// uniformly negative sign convention still yields positive percentages.
// A zero total returns nil: callers should print NoDataMessage instead.
func ForSummary(s core.Summary) []Suggestion {
	total := s.Total()
	if total.IsZero() {
		return nil
	}

	var out []Suggestion
	for _, ca := range s.Ordered() {
		pct := float64(ca.Amount.Cents) / float64(total.Cents) * 100
		out = append(out, Suggestion{
			Category: ca.Name,
			Percent:  pct,
			Message:  messageFor(ca.Name, pct),
		})
	}
	return out
}

func messageFor(category string, pct float64) string {
	switch {
	case pct > overspendPct:
		return fmt.Sprintf("You are spending too much on %s (%.1f%% of total). Consider cutting back.", category, pct)
	case pct < wellManagedPct:
		return fmt.Sprintf("%s spending is well-managed (%.1f%% of total).", category, pct)
	default:
		return fmt.Sprintf("%s spending is moderate (%.1f%% of total).", category, pct)
	}
}
