// Package worker exports stored transactions to a spreadsheet, driven by
// AMQP sync messages with a periodic sweep as backup for lost messages.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"bilancio/internal/amqp"
	"bilancio/internal/sheets"
	"bilancio/internal/storage"
)

// TransactionStore is the slice of the storage layer the worker needs.
type TransactionStore interface {
	GetTransaction(ctx context.Context, id int64) (storage.StoredTransaction, error)
	GetPendingSync(ctx context.Context, limit int) ([]storage.StoredTransaction, error)
	MarkSynced(ctx context.Context, id int64) error
	MarkSyncError(ctx context.Context, id int64) error
}

type SyncWorker struct {
	store     TransactionStore
	sheet     sheets.RowAppender
	batchSize int
}

func NewSyncWorker(store TransactionStore, sheet sheets.RowAppender, batchSize int) *SyncWorker {
	return &SyncWorker{
		store:     store,
		sheet:     sheet,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"import_id", msg.ImportID)

	st, err := w.store.GetTransaction(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	// Rows already exported (e.g. picked up by the sweep first) are skipped
	// so redelivered messages don't duplicate sheet rows.
	if st.SyncStatus == storage.SyncDone {
		slog.DebugContext(ctx, "Transaction already synced, skipping", "id", st.ID)
		return nil
	}

	return w.export(ctx, st)
}

// ProcessPending exports up to one batch of transactions that still await
// sync. This is the backup path for lost AMQP messages and the only path
// when AMQP is disabled.
func (w *SyncWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.store.GetPendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending transactions: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending transactions", "count", len(pending))

	for _, st := range pending {
		if err := w.export(ctx, st); err != nil {
			slog.ErrorContext(ctx, "Failed to sync transaction", "id", st.ID, "error", err)
		}
	}
	return nil
}

func (w *SyncWorker) export(ctx context.Context, st storage.StoredTransaction) error {
	ref, err := w.sheet.Append(ctx, st.Core())
	if err != nil {
		if markErr := w.store.MarkSyncError(ctx, st.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", st.ID, "error", markErr)
		}
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.store.MarkSynced(ctx, st.ID); err != nil {
		// The export itself worked; don't propagate the bookkeeping failure.
		slog.ErrorContext(ctx, "Failed to mark as synced", "id", st.ID, "error", err)
	}

	slog.InfoContext(ctx, "Synced transaction to sheet",
		"id", st.ID,
		"sheets_ref", ref,
		"category", st.Category,
		"amount_cents", st.AmountCents)

	return nil
}
