package ports

import (
	"context"
	"time"

	"paydash/domain/core"
)

// RefreshLogEntry is the durable record of one completed refresh cycle:
// which sources answered, how much data came back and what the headline
// totals were. Datasets themselves are never persisted.
type RefreshLogEntry struct {
	ID                 core.RefreshID `db:"id"`
	PaymentSource      string         `db:"payment_source"`
	ProposalSource     string         `db:"proposal_source"`
	PaymentRecords     int            `db:"payment_records"`
	ProposalRecords    int            `db:"proposal_records"`
	TotalFinalAmount   float64        `db:"total_final_amount"`
	TotalPendingAmount float64        `db:"total_pending_amount"`
	TotalProposalValue float64        `db:"total_proposal_value"`
	DurationMillis     int64          `db:"duration_ms"`
	FetchedAt          time.Time      `db:"fetched_at"`
}

// RefreshLogRepository persists refresh audit entries
type RefreshLogRepository interface {
	Record(ctx context.Context, entry *RefreshLogEntry) error
	Recent(ctx context.Context, limit int) ([]*RefreshLogEntry, error)
}
