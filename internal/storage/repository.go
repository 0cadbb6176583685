// Package storage persists imported transactions in SQLite. Each import run
// gets its own batch row; transactions carry a sync status consumed by the
// sheet-sync worker.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bilancio/internal/core"

	_ "modernc.org/sqlite"
)

// Sync status values for stored transactions.
const (
	SyncPending = "pending"
	SyncDone    = "synced"
	SyncError   = "error"
)

const dateLayout = "2006-01-02"

// StoredTransaction is a transaction row with its database identity.
type StoredTransaction struct {
	ID          int64
	ImportID    int64
	Date        time.Time // zero when the source row had no date
	Description string
	AmountCents int64
	Category    string
	SyncStatus  string
}

// Core converts the stored row back into the domain type.
func (st StoredTransaction) Core() core.Transaction {
	return core.Transaction{
		Date:        st.Date,
		Description: st.Description,
		Amount:      core.Money{Cents: st.AmountCents},
		Category:    st.Category,
	}
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateImport records a new import batch and returns its ID.
func (r *SQLiteRepository) CreateImport(ctx context.Context, sourceFile string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO imports (source_file) VALUES (?)`, sourceFile)
	if err != nil {
		return 0, fmt.Errorf("create import: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("import id: %w", err)
	}

	slog.InfoContext(ctx, "Import batch created", "import_id", id, "source_file", sourceFile)
	return id, nil
}

// AppendTransaction stores one categorized transaction under an import
// batch with sync status pending.
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, importID int64, t core.Transaction) (int64, error) {
	var occurredOn any
	if !t.Date.IsZero() {
		occurredOn = t.Date.Format(dateLayout)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (import_id, occurred_on, description, amount_cents, category)
		 VALUES (?, ?, ?, ?, ?)`,
		importID, occurredOn, t.Description, t.Amount.Cents, t.Category)
	if err != nil {
		return 0, fmt.Errorf("append transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction id: %w", err)
	}
	return id, nil
}

// GetTransaction retrieves a single stored transaction by ID.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (StoredTransaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, import_id, occurred_on, description, amount_cents, category, sync_status
		 FROM transactions WHERE id = ?`, id)
	return scanTransaction(row)
}

// GetPendingSync returns up to limit transactions awaiting sheet sync,
// oldest first.
func (r *SQLiteRepository) GetPendingSync(ctx context.Context, limit int) ([]StoredTransaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, import_id, occurred_on, description, amount_cents, category, sync_status
		 FROM transactions WHERE sync_status = ? ORDER BY id LIMIT ?`,
		SyncPending, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending sync: %w", err)
	}
	defer rows.Close()

	var out []StoredTransaction
	for rows.Next() {
		st, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// MarkSynced marks a transaction as successfully exported.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	return r.setSyncStatus(ctx, id, SyncDone)
}

// MarkSyncError marks a transaction as failed to export.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	return r.setSyncStatus(ctx, id, SyncError)
}

func (r *SQLiteRepository) setSyncStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET sync_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("set sync status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CategorySums returns the per-category totals of an import batch computed
// in SQL, a durable counterpart of core.Summarize.
func (r *SQLiteRepository) CategorySums(ctx context.Context, importID int64) ([]core.CategoryAmount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount_cents)
		 FROM transactions WHERE import_id = ?
		 GROUP BY category ORDER BY category`, importID)
	if err != nil {
		return nil, fmt.Errorf("category sums: %w", err)
	}
	defer rows.Close()

	var out []core.CategoryAmount
	for rows.Next() {
		var ca core.CategoryAmount
		if err := rows.Scan(&ca.Name, &ca.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		out = append(out, ca)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (StoredTransaction, error) {
	var (
		st         StoredTransaction
		occurredOn sql.NullString
	)
	if err := row.Scan(&st.ID, &st.ImportID, &occurredOn, &st.Description,
		&st.AmountCents, &st.Category, &st.SyncStatus); err != nil {
		return StoredTransaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	if occurredOn.Valid {
		if d, err := time.Parse(dateLayout, occurredOn.String); err == nil {
			st.Date = d
		}
	}
	return st, nil
}
