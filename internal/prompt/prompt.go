// Package prompt implements console prompting with uniform
// validation-with-retry. Every question, whether a file path or a numeric
// answer, is re-asked up to a fixed attempt limit instead of recursing or
// failing hard on the first bad input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bilancio/internal/core"
)

// ErrAttemptsExhausted is returned when the user keeps giving invalid input.
var ErrAttemptsExhausted = errors.New("too many invalid attempts")

// Prompter asks questions on out and reads answers from in. Keeping the
// streams injectable makes the interview logic testable without a console.
type Prompter struct {
	in       *bufio.Scanner
	out      io.Writer
	attempts int
}

// New creates a Prompter. attempts is the per-question retry budget and
// must be at least 1.
func New(in io.Reader, out io.Writer, attempts int) *Prompter {
	if attempts < 1 {
		attempts = 1
	}
	return &Prompter{
		in:       bufio.NewScanner(in),
		out:      out,
		attempts: attempts,
	}
}

// AskString asks for a non-empty free-text answer.
func (p *Prompter) AskString(question string) (string, error) {
	for i := 0; i < p.attempts; i++ {
		fmt.Fprintf(p.out, "%s ", question)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Please enter a value.")
	}
	return "", ErrAttemptsExhausted
}

// AskAmount asks for a non-negative decimal amount and returns it in cents.
func (p *Prompter) AskAmount(question string) (core.Money, error) {
	for i := 0; i < p.attempts; i++ {
		fmt.Fprintf(p.out, "%s ", question)
		line, err := p.readLine()
		if err != nil {
			return core.Money{}, err
		}
		cents, err := core.ParseSignedDecimalToCents(line)
		if err == nil && cents >= 0 {
			return core.Money{Cents: cents}, nil
		}
		fmt.Fprintln(p.out, "Please enter a non-negative number, e.g. 1250.50.")
	}
	return core.Money{}, ErrAttemptsExhausted
}

// AskExistingPath asks for a path to a readable file, re-prompting while
// the file cannot be found.
func (p *Prompter) AskExistingPath(question string) (string, error) {
	for i := 0; i < p.attempts; i++ {
		fmt.Fprintf(p.out, "%s ", question)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			if _, err := os.Stat(line); err == nil {
				return line, nil
			}
		}
		fmt.Fprintf(p.out, "File not found: %s\n", line)
	}
	return "", ErrAttemptsExhausted
}

// CollectProfile runs the four-question interview.
func (p *Prompter) CollectProfile() (core.UserProfile, error) {
	income, err := p.AskAmount("What is your monthly income?")
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("ask income: %w", err)
	}
	goal, err := p.AskAmount("How much do you want to save each month?")
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("ask savings goal: %w", err)
	}
	debt, err := p.AskAmount("How much debt do you currently have?")
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("ask debt: %w", err)
	}
	financialGoal, err := p.AskString("What is your main financial goal?")
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("ask financial goal: %w", err)
	}

	return core.UserProfile{
		IncomeCents:      income.Cents,
		SavingsGoalCents: goal.Cents,
		DebtCents:        debt.Cents,
		FinancialGoal:    financialGoal,
	}, nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
