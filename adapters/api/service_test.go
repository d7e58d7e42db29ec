package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydash/domain/ledger"
	"paydash/internal/pipeline"
	"paydash/ports"
)

type fixedSource struct {
	rows *ledger.RowSet
}

func (s *fixedSource) Name() string { return "fixed" }

func (s *fixedSource) Fetch(ctx context.Context) (*ledger.RowSet, error) {
	return s.rows, nil
}

func newTestService(t *testing.T, refreshed bool) *Service {
	t.Helper()

	source := &fixedSource{rows: &ledger.RowSet{
		Headers: []string{"final_amount", "payment_received", "work_status"},
		Rows: []ledger.RawRow{
			{"final_amount": "100", "payment_received": "40", "work_status": "completed"},
		},
	}}

	refresher := pipeline.NewRefreshService([]ports.RowSource{source}, nil, nil, 5*time.Second)
	if refreshed {
		_, err := refresher.Refresh(context.Background())
		require.NoError(t, err)
	}

	return NewService(refresher, nil, "test")
}

func getJSON(t *testing.T, svc *Service, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthBeforeFirstRefresh(t *testing.T) {
	code, body := getJSON(t, newTestService(t, false), "/api/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["has_snapshot"])
}

func TestSnapshotUnavailableBeforeFirstRefresh(t *testing.T) {
	code, _ := getJSON(t, newTestService(t, false), "/api/snapshot")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestPaymentsEndpoint(t *testing.T) {
	code, body := getJSON(t, newTestService(t, true), "/api/payments")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "fixed", body["source"])
	records, ok := body["records"].([]interface{})
	require.True(t, ok)
	require.Len(t, records, 1)

	first := records[0].(map[string]interface{})
	assert.Equal(t, "Completed", first["work_status"])
	assert.InDelta(t, 60.0, first["pending_amount"], 0.001)
}

func TestPaymentInsightsEndpoint(t *testing.T) {
	code, body := getJSON(t, newTestService(t, true), "/api/insights/payments")
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 100.0, body["total_final_amount"], 0.001)
	assert.InDelta(t, 60.0, body["total_pending"], 0.001)
}

func TestRefreshEndpoint(t *testing.T) {
	svc := newTestService(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fixed", body["payment_source"])
	assert.InDelta(t, 1.0, body["payment_records"], 0.001)
}

func TestRefreshLogNotConfigured(t *testing.T) {
	code, _ := getJSON(t, newTestService(t, true), "/api/refresh/log")
	assert.Equal(t, http.StatusNotFound, code)
}
