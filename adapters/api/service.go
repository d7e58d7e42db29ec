// Package api exposes the refreshed datasets and their summaries as a
// JSON API, for programmatic consumers that bypass the dashboard UI.
package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paydash/internal/pipeline"
	"paydash/ports"
)

// Service is the JSON API surface over the latest snapshot
type Service struct {
	engine     *gin.Engine
	refresher  *pipeline.RefreshService
	refreshLog ports.RefreshLogRepository // nil when no database is configured
}

// NewService creates the API service. ginMode is one of gin's mode
// strings (debug, release, test); refreshLog may be nil.
func NewService(refresher *pipeline.RefreshService, refreshLog ports.RefreshLogRepository, ginMode string) *Service {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	s := &Service{
		engine:     gin.Default(),
		refresher:  refresher,
		refreshLog: refreshLog,
	}
	s.setupRoutes()
	return s
}

func (s *Service) setupRoutes() {
	s.engine.GET("/api/health", s.handleHealth)
	s.engine.GET("/api/snapshot", s.handleSnapshot)
	s.engine.GET("/api/payments", s.handlePayments)
	s.engine.GET("/api/proposals", s.handleProposals)
	s.engine.GET("/api/insights/payments", s.handlePaymentInsights)
	s.engine.GET("/api/insights/proposals", s.handleProposalInsights)
	s.engine.POST("/api/refresh", s.handleRefresh)
	s.engine.GET("/api/refresh/log", s.handleRefreshLog)
}

// Start runs the API server on the given port. Blocks until the server
// exits.
func (s *Service) Start(port string) error {
	log.Printf("[API] listening on :%s", port)
	return s.engine.Run(":" + port)
}

// Handler exposes the underlying router for tests
func (s *Service) Handler() http.Handler {
	return s.engine
}

func (s *Service) handleHealth(c *gin.Context) {
	snapshot := s.refresher.Current()
	status := gin.H{"status": "ok", "has_snapshot": snapshot != nil}
	if snapshot != nil {
		status["fetched_at"] = snapshot.FetchedAt
		status["payment_source"] = snapshot.PaymentSource
		status["proposal_source"] = snapshot.ProposalSource
	}
	c.JSON(http.StatusOK, status)
}

func (s *Service) handleSnapshot(c *gin.Context) {
	snapshot := s.refresher.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Service) handlePayments(c *gin.Context) {
	snapshot := s.refresher.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"source":  snapshot.PaymentSource,
		"records": snapshot.Payments.Records,
		"report":  snapshot.Payments.Report,
	})
}

func (s *Service) handleProposals(c *gin.Context) {
	snapshot := s.refresher.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"source":  snapshot.ProposalSource,
		"records": snapshot.Proposals.Records,
		"report":  snapshot.Proposals.Report,
	})
}

func (s *Service) handlePaymentInsights(c *gin.Context) {
	snapshot := s.refresher.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot.PaymentInsights)
}

func (s *Service) handleProposalInsights(c *gin.Context) {
	snapshot := s.refresher.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot.ProposalInsights)
}

func (s *Service) handleRefresh(c *gin.Context) {
	snapshot, err := s.refresher.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id":      snapshot.ID,
		"payment_source":   snapshot.PaymentSource,
		"proposal_source":  snapshot.ProposalSource,
		"payment_records":  snapshot.Payments.Len(),
		"proposal_records": snapshot.Proposals.Len(),
		"duration_ms":      snapshot.Duration.Milliseconds(),
	})
}

func (s *Service) handleRefreshLog(c *gin.Context) {
	if s.refreshLog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh log not configured"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := s.refreshLog.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
