package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"bilancio/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAppendAndGetTransaction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	importID, err := repo.CreateImport(ctx, "txns.csv")
	if err != nil {
		t.Fatalf("create import: %v", err)
	}

	in := core.Transaction{
		Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: "Starbucks Coffee",
		Amount:      core.Money{Cents: -450},
		Category:    "Food",
	}
	id, err := repo.AppendTransaction(ctx, importID, in)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetTransaction(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != in.Description || got.AmountCents != -450 || got.Category != "Food" {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.SyncStatus != SyncPending {
		t.Fatalf("expected pending status, got %q", got.SyncStatus)
	}
	if !got.Date.Equal(in.Date) {
		t.Fatalf("expected date %v, got %v", in.Date, got.Date)
	}
}

func TestAppendTransactionWithoutDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	importID, _ := repo.CreateImport(ctx, "txns.csv")
	id, err := repo.AppendTransaction(ctx, importID, core.Transaction{
		Description: "Mystery payee",
		Amount:      core.Money{Cents: -100},
		Category:    "Other",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetTransaction(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Date.IsZero() {
		t.Fatalf("expected zero date, got %v", got.Date)
	}
}

func TestSyncStatusTransitions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	importID, _ := repo.CreateImport(ctx, "txns.csv")
	a, _ := repo.AppendTransaction(ctx, importID, core.Transaction{
		Description: "a", Amount: core.Money{Cents: -1}, Category: "Other"})
	b, _ := repo.AppendTransaction(ctx, importID, core.Transaction{
		Description: "b", Amount: core.Money{Cents: -2}, Category: "Other"})

	pending, err := repo.GetPendingSync(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != a {
		t.Fatalf("expected [a b] pending, got %+v", pending)
	}

	if err := repo.MarkSynced(ctx, a); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	if err := repo.MarkSyncError(ctx, b); err != nil {
		t.Fatalf("mark error: %v", err)
	}

	pending, _ = repo.GetPendingSync(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("expected no pending rows, got %+v", pending)
	}

	got, _ := repo.GetTransaction(ctx, a)
	if got.SyncStatus != SyncDone {
		t.Fatalf("expected synced, got %q", got.SyncStatus)
	}
	got, _ = repo.GetTransaction(ctx, b)
	if got.SyncStatus != SyncError {
		t.Fatalf("expected error status, got %q", got.SyncStatus)
	}
}

func TestMarkSyncedUnknownID(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.MarkSynced(context.Background(), 999); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCategorySumsMatchesInMemorySummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	txns := []core.Transaction{
		{Description: "coffee", Amount: core.Money{Cents: -500}, Category: "Food"},
		{Description: "groceries", Amount: core.Money{Cents: -4500}, Category: "Food"},
		{Description: "rent", Amount: core.Money{Cents: -45000}, Category: "Bills"},
	}

	importID, _ := repo.CreateImport(ctx, "txns.csv")
	for _, tr := range txns {
		if _, err := repo.AppendTransaction(ctx, importID, tr); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sums, err := repo.CategorySums(ctx, importID)
	if err != nil {
		t.Fatalf("category sums: %v", err)
	}

	want := core.Summarize(txns)
	if len(sums) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(sums))
	}
	for _, ca := range sums {
		if want[ca.Name].Cents != ca.Amount.Cents {
			t.Fatalf("category %s: expected %d, got %d",
				ca.Name, want[ca.Name].Cents, ca.Amount.Cents)
		}
	}
}
