package advice

import (
	"fmt"

	"bilancio/internal/core"
)

// Savings rate below this share of income triggers the increase suggestion.
const savingsRatePct = 20.0

// ForProfile derives advice lines from the interview answers. The savings
// rate is only computed when income is positive; the debt reminder is flat
// with no computation; the stated goal is always echoed back.
func ForProfile(p core.UserProfile) []string {
	var lines []string

	if p.IncomeCents > 0 {
		rate := float64(p.SavingsGoalCents) / float64(p.IncomeCents) * 100
		if rate < savingsRatePct {
			lines = append(lines, fmt.Sprintf(
				"Your savings goal is %.1f%% of income. Consider increasing it toward %.0f%%.",
				rate, savingsRatePct))
		} else {
			lines = append(lines, fmt.Sprintf(
				"Great job! Your savings goal is %.1f%% of income.", rate))
		}
	} else {
		lines = append(lines, "No income provided, skipping savings-rate analysis.")
	}

	if p.DebtCents > 0 {
		lines = append(lines, "You have outstanding debt. Prioritize repaying it to reduce interest costs.")
	}

	if p.FinancialGoal != "" {
		lines = append(lines, fmt.Sprintf("Your stated financial goal: %s", p.FinancialGoal))
	}

	return lines
}
