// Package csvio loads delimited transaction files into the core domain.
//
// The loader normalizes header names (lower-case, trimmed), requires a
// description column and synthesizes a category column through the supplied
// classifier when the source file has none.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"bilancio/internal/core"
)

// ErrMissingDescription is returned when no description column exists after
// header normalization. This is a validation failure of the source file.
var ErrMissingDescription = errors.New("input file has no description column")

// Classify maps a transaction description to a category name.
type Classify func(description string) string

var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006"}

// Load reads a comma-separated file with a header row and returns its
// transactions. Recognized columns after normalization: description
// (required), amount, category, date; anything else is ignored. When the
// file carries its own category column the stored values are kept verbatim
// and classify is never invoked.
func Load(path string, classify Classify) ([]core.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	return Parse(f, classify)
}

// Parse reads transactions from r. See Load for column semantics.
func Parse(r io.Reader, classify Classify) ([]core.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingDescription
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	descIdx, ok := cols["description"]
	if !ok {
		return nil, ErrMissingDescription
	}
	amountIdx, hasAmount := cols["amount"]
	categoryIdx, hasCategory := cols["category"]
	dateIdx, hasDate := cols["date"]

	var txns []core.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if descIdx >= len(record) {
			continue
		}

		desc := strings.TrimSpace(record[descIdx])
		if desc == "" {
			slog.Warn("Skipping row with empty description", "line", line)
			continue
		}

		t := core.Transaction{Description: desc}

		if hasAmount && amountIdx < len(record) {
			cents, err := core.ParseSignedDecimalToCents(record[amountIdx])
			if err != nil {
				slog.Warn("Unparsable amount, recording as zero",
					"line", line, "amount", record[amountIdx])
			} else {
				t.Amount = core.Money{Cents: cents}
			}
		}

		if hasDate && dateIdx < len(record) {
			t.Date = parseDate(record[dateIdx])
		}

		if hasCategory {
			// Pre-categorized source: keep the value verbatim and never
			// consult the classifier. Empty cells aggregate under Other.
			if categoryIdx < len(record) {
				t.Category = strings.TrimSpace(record[categoryIdx])
			}
		} else {
			t.Category = classify(desc)
		}

		txns = append(txns, t)
	}

	return txns, nil
}

// indexColumns maps normalized header names to their positions. The first
// occurrence wins when a name repeats.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}
