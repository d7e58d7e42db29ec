// Package postgres persists refresh audit entries. The dashboard works
// without a database; this adapter is wired only when DATABASE_URL is
// configured.
package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"paydash/internal/errors"
	"paydash/ports"
)

const refreshLogSchema = `
CREATE TABLE IF NOT EXISTS refresh_log (
	id                   UUID PRIMARY KEY,
	payment_source       TEXT NOT NULL,
	proposal_source      TEXT NOT NULL,
	payment_records      INTEGER NOT NULL,
	proposal_records     INTEGER NOT NULL,
	total_final_amount   DOUBLE PRECISION NOT NULL,
	total_pending_amount DOUBLE PRECISION NOT NULL,
	total_proposal_value DOUBLE PRECISION NOT NULL,
	duration_ms          BIGINT NOT NULL,
	fetched_at           TIMESTAMPTZ NOT NULL
)`

// RefreshLogRepositoryImpl implements RefreshLogRepository for PostgreSQL
type RefreshLogRepositoryImpl struct {
	db *sqlx.DB
}

// Connect opens a PostgreSQL connection and ensures the refresh_log
// table exists
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if _, err := db.Exec(refreshLogSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ensure refresh_log table")
	}
	log.Printf("[Postgres] connected, refresh_log table ready")
	return db, nil
}

// NewRefreshLogRepository creates a PostgreSQL refresh log repository
func NewRefreshLogRepository(db *sqlx.DB) ports.RefreshLogRepository {
	return &RefreshLogRepositoryImpl{db: db}
}

// Record inserts one refresh audit entry
func (r *RefreshLogRepositoryImpl) Record(ctx context.Context, entry *ports.RefreshLogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO refresh_log (id, payment_source, proposal_source, payment_records, proposal_records,
			total_final_amount, total_pending_amount, total_proposal_value, duration_ms, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, entry.ID, entry.PaymentSource, entry.ProposalSource, entry.PaymentRecords, entry.ProposalRecords,
		entry.TotalFinalAmount, entry.TotalPendingAmount, entry.TotalProposalValue, entry.DurationMillis, entry.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to record refresh: %w", err)
	}
	return nil
}

// Recent returns the most recent refresh entries, newest first
func (r *RefreshLogRepositoryImpl) Recent(ctx context.Context, limit int) ([]*ports.RefreshLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []*ports.RefreshLogEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, payment_source, proposal_source, payment_records, proposal_records,
			total_final_amount, total_pending_amount, total_proposal_value, duration_ms, fetched_at
		FROM refresh_log
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh log: %w", err)
	}
	return entries, nil
}
