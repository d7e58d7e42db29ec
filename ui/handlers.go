package ui

import (
	"log"
	"net/http"

	"paydash/adapters/export"
	"paydash/internal/insight"
	"paydash/internal/pipeline"
)

type dashboardView struct {
	Snapshot         *pipeline.Snapshot
	PaymentInsights  insight.PaymentSummary
	ProposalInsights insight.ProposalSummary
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	snapshot := a.refresher.Current()
	if snapshot == nil {
		a.renderTemplate(w, "dashboard.html", dashboardView{})
		return
	}

	a.renderTemplate(w, "dashboard.html", dashboardView{
		Snapshot:         snapshot,
		PaymentInsights:  snapshot.PaymentInsights,
		ProposalInsights: snapshot.ProposalInsights,
	})
}

func (a *App) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if _, err := a.refresher.Refresh(r.Context()); err != nil {
		log.Printf("[UI] manual refresh failed: %v", err)
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleDownloadPayments(w http.ResponseWriter, r *http.Request) {
	snapshot := a.refresher.Current()
	if snapshot == nil {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payments.csv"`)
	if err := export.WritePayments(w, snapshot.Payments); err != nil {
		log.Printf("[UI] payment export failed: %v", err)
	}
}

func (a *App) handleDownloadProposals(w http.ResponseWriter, r *http.Request) {
	snapshot := a.refresher.Current()
	if snapshot == nil {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="proposals.csv"`)
	if err := export.WriteProposals(w, snapshot.Proposals); err != nil {
		log.Printf("[UI] proposal export failed: %v", err)
	}
}
