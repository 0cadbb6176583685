package core

import "testing"

func txn(desc string, cents int64, cat string) Transaction {
	return Transaction{Description: desc, Amount: Money{Cents: cents}, Category: cat}
}

func TestSummarize(t *testing.T) {
	txns := []Transaction{
		txn("coffee", -500, "Food"),
		txn("groceries", -4500, "Food"),
		txn("rent", -45000, "Bills"),
		txn("refund", 1000, "Shopping"),
	}
	s := Summarize(txns)
	if got := s["Food"].Cents; got != -5000 {
		t.Fatalf("Food: expected -5000, got %d", got)
	}
	if got := s["Bills"].Cents; got != -45000 {
		t.Fatalf("Bills: expected -45000, got %d", got)
	}
	if got := s["Shopping"].Cents; got != 1000 {
		t.Fatalf("Shopping: expected 1000, got %d", got)
	}
	if got := s.Total().Cents; got != -49000 {
		t.Fatalf("total: expected -49000, got %d", got)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a := []Transaction{
		txn("coffee", -500, "Food"),
		txn("rent", -45000, "Bills"),
		txn("groceries", -4500, "Food"),
	}
	b := []Transaction{a[2], a[0], a[1]}

	sa, sb := Summarize(a), Summarize(b)
	if len(sa) != len(sb) {
		t.Fatalf("summaries differ in size: %d vs %d", len(sa), len(sb))
	}
	for cat, m := range sa {
		if sb[cat] != m {
			t.Fatalf("category %s: %d vs %d", cat, m.Cents, sb[cat].Cents)
		}
	}
}

func TestSummarizeUncategorizedFallsBackToOther(t *testing.T) {
	s := Summarize([]Transaction{txn("mystery", -100, "")})
	if got := s[CategoryOther].Cents; got != -100 {
		t.Fatalf("expected -100 under %s, got %d", CategoryOther, got)
	}
}

func TestSummaryOrdered(t *testing.T) {
	s := Summary{
		"Bills": {Cents: -45000},
		"Food":  {Cents: -5000},
		"Zed":   {Cents: -1}, // category from a source file outside the taxonomy
	}
	got := s.Ordered()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Name != "Food" || got[1].Name != "Bills" || got[2].Name != "Zed" {
		t.Fatalf("unexpected order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := txn("coffee", -500, "Food")
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := txn("", -500, "Food").Validate(); err != ErrEmptyDescription {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if err := txn("coffee", -500, "Groceries").Validate(); err != ErrUnknownCategory {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	// Empty category is allowed pre-classification.
	if err := txn("coffee", -500, "").Validate(); err != nil {
		t.Fatalf("expected ok for empty category, got %v", err)
	}
}
