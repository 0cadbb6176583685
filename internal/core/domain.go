package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Money is a signed amount in cents. Bank exports usually record
	// expenses as negative amounts; the sign is preserved end to end.
	Money struct {
		Cents int64
	}

	// Transaction is one row of financial activity.
	Transaction struct {
		Date        time.Time // zero when the source has no date column
		Description string
		Amount      Money
		Category    string
	}

	// UserProfile holds the answers collected during the interview.
	UserProfile struct {
		IncomeCents      int64
		SavingsGoalCents int64
		DebtCents        int64
		FinancialGoal    string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCategory  = errors.New("unknown category")
)

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if t.Category != "" && !IsKnownCategory(t.Category) {
		return ErrUnknownCategory
	}
	return nil
}

// Abs returns the magnitude of the amount, used for chart proportions.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// IsZero reports whether the amount is exactly zero cents.
func (m Money) IsZero() bool {
	return m.Cents == 0
}
