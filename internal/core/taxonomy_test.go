package core

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"Starbucks Coffee", "Food"},
		{"STARBUCKS COFFEE #1234", "Food"},
		{"Netflix subscription", "Entertainment"}, // Entertainment declared before Bills
		{"Uber trip downtown", "Transportation"},
		{"Monthly rent payment", "Bills"},
		{"Amazon order", "Shopping"},
		{"Mystery payee", "Other"},
		{"", "Other"},
		// Declaration order wins when keywords from two categories match.
		{"netflix and uber bundle", "Entertainment"},
		// Substring containment, not word-boundary matching.
		{"Uberconfident Consulting LLC", "Transportation"},
	}
	for _, tc := range cases {
		if got := Classify(tc.desc); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestTaxonomyOrderAndFallback(t *testing.T) {
	names := CategoryNames()
	want := []string{"Food", "Entertainment", "Transportation", "Bills", "Shopping", "Other"}
	if len(names) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], names[i])
		}
	}

	// Other must stay keyword-free so it only matches as the fallback.
	last := Taxonomy[len(Taxonomy)-1]
	if last.Name != CategoryOther || len(last.Keywords) != 0 {
		t.Fatalf("expected keyword-free %q as last rule, got %+v", CategoryOther, last)
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory("Food") || !IsKnownCategory("Other") {
		t.Fatal("expected taxonomy names to be known")
	}
	if IsKnownCategory("Groceries") {
		t.Fatal("expected unknown name to be rejected")
	}
}

func TestClassifierMemoization(t *testing.T) {
	c := NewClassifier()
	for i := 0; i < 3; i++ {
		if got := c.Classify("Starbucks Coffee"); got != "Food" {
			t.Fatalf("expected Food, got %q", got)
		}
	}
	// Normalized key: case and surrounding whitespace must not split entries.
	if got := c.Classify("  STARBUCKS COFFEE "); got != "Food" {
		t.Fatalf("expected Food, got %q", got)
	}
	if got := c.Classify("unknown merchant"); got != CategoryOther {
		t.Fatalf("expected %q, got %q", CategoryOther, got)
	}
}
