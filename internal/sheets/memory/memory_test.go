package memory

import (
	"context"
	"testing"

	"bilancio/internal/core"
)

func TestStoreAppend(t *testing.T) {
	s := New()
	ref, err := s.Append(context.Background(), core.Transaction{
		Description: "Starbucks Coffee",
		Amount:      core.Money{Cents: -450},
		Category:    "Food",
	})
	if err != nil || ref != "mem:1" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}

	ref, _ = s.Append(context.Background(), core.Transaction{
		Description: "Uber trip",
		Amount:      core.Money{Cents: -1200},
		Category:    "Transportation",
	})
	if ref != "mem:2" {
		t.Fatalf("expected mem:2, got %q", ref)
	}

	rows := s.Rows()
	if len(rows) != 2 || rows[0].Category != "Food" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestStoreAppendRejectsInvalid(t *testing.T) {
	s := New()
	if _, err := s.Append(context.Background(), core.Transaction{}); err == nil {
		t.Fatal("expected validation error for empty description")
	}
	if len(s.Rows()) != 0 {
		t.Fatal("expected nothing stored after rejection")
	}
}
