// Package sheets defines the outbound port for exporting categorized
// transactions to a spreadsheet-like destination.
package sheets

import (
	"context"

	"bilancio/internal/core"
)

// RowAppender appends one categorized transaction as a spreadsheet row and
// returns an opaque row reference.
type RowAppender interface {
	Append(ctx context.Context, t core.Transaction) (rowRef string, err error)
}
