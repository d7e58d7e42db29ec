package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"paydash/domain/core"
	"paydash/domain/ledger"
	"paydash/internal"
	"paydash/internal/insight"
	"paydash/ports"
)

// Snapshot is the complete result of one refresh cycle. It is immutable:
// a new refresh builds a new snapshot and swaps it in wholesale.
type Snapshot struct {
	ID               core.SnapshotID         `json:"id"`
	FetchedAt        time.Time               `json:"fetched_at"`
	Duration         time.Duration           `json:"duration"`
	PaymentSource    string                  `json:"payment_source"`
	ProposalSource   string                  `json:"proposal_source"`
	Payments         ledger.PaymentDataset   `json:"payments"`
	Proposals        ledger.ProposalDataset  `json:"proposals"`
	PaymentInsights  insight.PaymentSummary  `json:"payment_insights"`
	ProposalInsights insight.ProposalSummary `json:"proposal_insights"`
}

// RefreshService runs the fetch -> reconcile -> normalize -> aggregate
// cycle and holds the latest snapshot for the presentation layers. The
// two datasets are independent, so their fetch+process legs run
// concurrently.
type RefreshService struct {
	paymentSources  []ports.RowSource
	proposalSources []ports.RowSource
	payments        *PaymentProcessor
	proposals       *ProposalProcessor
	refreshLog      ports.RefreshLogRepository // nil disables audit logging
	timeout         time.Duration

	mu      sync.RWMutex
	current *Snapshot
}

// NewRefreshService creates a refresh service. Sources are tried in the
// given order per dataset; the first non-empty row-set wins. refreshLog
// may be nil.
func NewRefreshService(paymentSources, proposalSources []ports.RowSource, refreshLog ports.RefreshLogRepository, timeout time.Duration) *RefreshService {
	return &RefreshService{
		paymentSources:  paymentSources,
		proposalSources: proposalSources,
		payments:        NewPaymentProcessor(),
		proposals:       NewProposalProcessor(),
		refreshLog:      refreshLog,
		timeout:         timeout,
	}
}

// Current returns the latest snapshot, or nil before the first refresh
func (s *RefreshService) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh runs one full cycle and swaps the new snapshot in. Source
// failures inside a leg degrade to an empty dataset; only context
// cancellation aborts the cycle.
func (s *RefreshService) Refresh(ctx context.Context) (*Snapshot, error) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot := &Snapshot{
		ID:        core.SnapshotID(core.NewID()),
		FetchedAt: started,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, source, err := fetchFirst(gctx, s.paymentSources)
		if err != nil {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			internal.DefaultLogger.Warn("[Refresh] no payment data from any source: %v", err)
			rows = &ledger.RowSet{}
			source = "none"
		}
		snapshot.Payments = s.payments.Process(*rows)
		snapshot.PaymentSource = source
		snapshot.PaymentInsights = insight.SummarizePayments(snapshot.Payments)
		return nil
	})

	g.Go(func() error {
		rows, source, err := fetchFirst(gctx, s.proposalSources)
		if err != nil {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			// Proposals have no demo fallback; an unreachable sheet is
			// an empty dataset, exactly like the dashboard behaved.
			internal.DefaultLogger.Warn("[Refresh] no proposal data from any source: %v", err)
			rows = &ledger.RowSet{}
			source = "none"
		}
		snapshot.Proposals = s.proposals.Process(*rows)
		snapshot.ProposalSource = source
		snapshot.ProposalInsights = insight.SummarizeProposals(snapshot.Proposals)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot.Duration = time.Since(started)

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	internal.DefaultLogger.Info("[Refresh] snapshot %s: %d payment rows (%s), %d proposal rows (%s) in %s",
		snapshot.ID, snapshot.Payments.Len(), snapshot.PaymentSource,
		snapshot.Proposals.Len(), snapshot.ProposalSource, snapshot.Duration)

	s.recordRefresh(snapshot)

	return snapshot, nil
}

// RunAutoRefresh refreshes on the given interval until the context ends.
// The first refresh fires immediately.
func (s *RefreshService) RunAutoRefresh(ctx context.Context, interval time.Duration) {
	if _, err := s.Refresh(ctx); err != nil {
		internal.DefaultLogger.Error("[Refresh] initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				internal.DefaultLogger.Error("[Refresh] scheduled refresh failed: %v", err)
			}
		}
	}
}

// fetchFirst walks the source list in order and returns the first
// non-empty row-set. This is the caller-side fallback policy: sources
// themselves never retry.
func fetchFirst(ctx context.Context, sources []ports.RowSource) (*ledger.RowSet, string, error) {
	for _, src := range sources {
		rows, err := src.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", ctx.Err()
			}
			internal.DefaultLogger.Warn("[Refresh] source %s failed: %v", src.Name(), err)
			continue
		}
		if rows.IsEmpty() {
			internal.DefaultLogger.Warn("[Refresh] source %s returned no rows", src.Name())
			continue
		}
		return rows, src.Name(), nil
	}
	return nil, "", ledger.ErrNoData
}

func (s *RefreshService) recordRefresh(snapshot *Snapshot) {
	if s.refreshLog == nil {
		return
	}

	entry := &ports.RefreshLogEntry{
		ID:                 core.RefreshID(core.NewID()),
		PaymentSource:      snapshot.PaymentSource,
		ProposalSource:     snapshot.ProposalSource,
		PaymentRecords:     snapshot.Payments.Len(),
		ProposalRecords:    snapshot.Proposals.Len(),
		TotalFinalAmount:   snapshot.PaymentInsights.TotalFinalAmount,
		TotalPendingAmount: snapshot.PaymentInsights.TotalPending,
		TotalProposalValue: snapshot.ProposalInsights.TotalValue,
		DurationMillis:     snapshot.Duration.Milliseconds(),
		FetchedAt:          snapshot.FetchedAt,
	}

	// Audit logging must never hold up or fail a refresh
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.refreshLog.Record(ctx, entry); err != nil && !errors.Is(err, context.Canceled) {
		internal.DefaultLogger.Warn("[Refresh] failed to record refresh log: %v", err)
	}
}
