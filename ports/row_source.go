package ports

import (
	"context"

	"paydash/domain/ledger"
)

// RowSource is a fetch collaborator that produces one raw row-set per
// call. Implementations report absence with ledger.ErrNoData (wrapped or
// bare); the caller decides whether to try the next source or fall back
// to demonstration data. Sources never retry internally.
type RowSource interface {
	// Name identifies the source in logs and refresh reports
	Name() string

	// Fetch retrieves the current row-set. The returned row-set is a
	// fresh value the caller owns outright.
	Fetch(ctx context.Context) (*ledger.RowSet, error)
}
