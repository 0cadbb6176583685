package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bilancio/internal/core"
)

func TestParseClassifiesWhenCategoryMissing(t *testing.T) {
	in := strings.NewReader(
		"Date,Description,Amount\n" +
			"2025-01-02,Starbucks Coffee,-4.50\n" +
			"2025-01-03,Uber trip,-12.00\n" +
			"2025-01-04,Mystery payee,-1.00\n")

	txns, err := Parse(in, core.Classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	if txns[0].Category != "Food" || txns[1].Category != "Transportation" || txns[2].Category != "Other" {
		t.Fatalf("unexpected categories: %s, %s, %s",
			txns[0].Category, txns[1].Category, txns[2].Category)
	}
	if txns[0].Amount.Cents != -450 {
		t.Fatalf("expected -450 cents, got %d", txns[0].Amount.Cents)
	}
	if txns[0].Date.IsZero() {
		t.Fatal("expected date parsed")
	}
}

func TestParseKeepsExistingCategories(t *testing.T) {
	in := strings.NewReader(
		"description,amount,category\n" +
			"Starbucks Coffee,-4.50,Bills\n")

	calls := 0
	classify := func(string) string { calls++; return "Food" }

	txns, err := Parse(in, classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if calls != 0 {
		t.Fatalf("classifier invoked %d times on pre-categorized input", calls)
	}
	if txns[0].Category != "Bills" {
		t.Fatalf("expected stored category kept verbatim, got %q", txns[0].Category)
	}
}

func TestParseRoundTripSummary(t *testing.T) {
	raw := "description,amount\nStarbucks Coffee,-4.50\nUber trip,-12.00\n"
	fresh, err := Parse(strings.NewReader(raw), core.Classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	// Same data with the assigned categories written back into the file.
	pre := "description,amount,category\n" +
		"Starbucks Coffee,-4.50,Food\n" +
		"Uber trip,-12.00,Transportation\n"
	stored, err := Parse(strings.NewReader(pre), core.Classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sa, sb := core.Summarize(fresh), core.Summarize(stored)
	if len(sa) != len(sb) {
		t.Fatalf("summary sizes differ: %d vs %d", len(sa), len(sb))
	}
	for cat, m := range sa {
		if sb[cat] != m {
			t.Fatalf("category %s differs: %d vs %d", cat, m.Cents, sb[cat].Cents)
		}
	}
}

func TestParseNormalizesHeaders(t *testing.T) {
	in := strings.NewReader(" DESCRIPTION , Amount \nCoffee shop,-2.00\n")
	txns, err := Parse(in, core.Classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(txns) != 1 || txns[0].Amount.Cents != -200 {
		t.Fatalf("unexpected result: %+v", txns)
	}
}

func TestParseMissingDescriptionColumn(t *testing.T) {
	in := strings.NewReader("date,amount\n2025-01-01,-1.00\n")
	if _, err := Parse(in, core.Classify); err != ErrMissingDescription {
		t.Fatalf("expected ErrMissingDescription, got %v", err)
	}
}

func TestParseToleratesBadRows(t *testing.T) {
	in := strings.NewReader(
		"description,amount\n" +
			",-1.00\n" + // empty description: skipped
			"Coffee,not-a-number\n" + // bad amount: zero
			"Coffee\n") // ragged row: no amount cell
	txns, err := Parse(in, core.Classify)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	for _, tr := range txns {
		if tr.Amount.Cents != 0 {
			t.Fatalf("expected zero amount, got %d", tr.Amount.Cents)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv"), core.Classify); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txns.csv")
	content := "description,amount\nNetflix,-15.99\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	txns, err := Load(path, core.Classify)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(txns) != 1 || txns[0].Category != "Entertainment" {
		t.Fatalf("unexpected result: %+v", txns)
	}
}
