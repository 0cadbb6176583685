// Package report renders spending summaries as console text and as a pie
// chart artifact.
package report

import (
	"fmt"
	"io"

	"bilancio/internal/advice"
	"bilancio/internal/core"
)

// WriteSummary prints each category with its summed amount formatted to two
// decimals, in taxonomy declaration order, followed by a total line.
func WriteSummary(w io.Writer, s core.Summary, symbol string) {
	fmt.Fprintln(w, "Spending by category:")
	for _, ca := range s.Ordered() {
		fmt.Fprintf(w, "  %s: %s\n", ca.Name, ca.Amount.Format(symbol))
	}
	fmt.Fprintf(w, "Total: %s\n", s.Total().Format(symbol))
}

// WriteSuggestions prints budget suggestions, or the no-data message when
// the advisor produced none.
func WriteSuggestions(w io.Writer, suggestions []advice.Suggestion) {
	fmt.Fprintln(w, "Budget suggestions:")
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "  %s\n", advice.NoDataMessage)
		return
	}
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s\n", s.Message)
	}
}

// WriteProfileAdvice prints the personalized advice lines.
func WriteProfileAdvice(w io.Writer, lines []string) {
	fmt.Fprintln(w, "Personal advice:")
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
}
