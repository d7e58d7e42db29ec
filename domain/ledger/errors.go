package ledger

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// ErrNoData signals that a source produced no usable row-set. It is the
	// explicit absence signal the caller reacts to (next source, demo data);
	// it never aborts a refresh cycle.
	ErrNoData = errors.New("no rows available from source")

	// ErrEmptySheet marks a sheet that was reachable but carried only a
	// header row (or nothing at all)
	ErrEmptySheet = errors.New("sheet contains no data rows")
)
