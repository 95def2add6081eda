package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/codespaces-dashboard/internal/aggregator"
	"github.com/kurihiro0119/codespaces-dashboard/internal/collector"
	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage/memory"
)

var (
	generatedAt = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	fixedNow    = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	testSite    = Site{Environment: "GitHub Codespaces", Organization: "Demo Organization"}
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

func setupTestRouter(t *testing.T) (*gin.Engine, storage.Storage) {
	t.Helper()

	metrics, err := collector.NewSampleCollector(collector.WithSeed(42)).
		CollectDailyMetrics(context.Background(), generatedAt, collector.DefaultDays)
	require.NoError(t, err)

	store, err := memory.NewMemoryStorage(metrics, generatedAt)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h := NewHandler(aggregator.NewAggregator(store, aggregator.DefaultHourlyRate), testSite)
	h.now = func() time.Time { return fixedNow }

	router, err := SetupRoutes(h)
	require.NoError(t, err)
	return router, store
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	router, store := setupTestRouter(t)

	w := get(router, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var stats domain.SummaryStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	metrics, err := store.GetDailyMetrics(context.Background())
	require.NoError(t, err)
	want, err := aggregator.Summarize(metrics, aggregator.DefaultHourlyRate)
	require.NoError(t, err)
	assert.Equal(t, *want, stats)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"total_commits", "avg_daily_commits", "total_prs", "avg_developers", "total_compute_hours", "cost_estimate"} {
		assert.Contains(t, raw, key)
	}
}

func TestGetStats_StableAcrossRequests(t *testing.T) {
	router, _ := setupTestRouter(t)

	first := get(router, "/api/stats")
	second := get(router, "/api/stats")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetTrends(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/api/trends")
	require.Equal(t, http.StatusOK, w.Code)

	var rollups []domain.WeeklyRollup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rollups))
	require.Len(t, rollups, 5)
	assert.Equal(t, "2026-09-19", rollups[0].WeekStart.String())
	assert.Equal(t, "2026-10-17", rollups[4].WeekStart.String())
	assert.Equal(t, 2, rollups[4].Days)
}

func TestGetDaily(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/api/daily")
	require.Equal(t, http.StatusOK, w.Code)

	var metrics []domain.DailyMetric
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	require.Len(t, metrics, 30)
	assert.Equal(t, "2026-10-18", metrics[29].Date.String())
}

func TestGetGovernance(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/api/governance")
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot domain.GovernanceSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.True(t, fixedNow.Equal(snapshot.Compliance.LastAudit))
	assert.Equal(t, 15, snapshot.Compliance.TotalCodespaces)
	assert.Equal(t, 5000.0, snapshot.CostControls.MonthlyBudget)
	assert.Equal(t, []string{"2-core", "4-core", "8-core"}, snapshot.Policies.MachineTypes)
}

func TestHealthCheck(t *testing.T) {
	router, store := setupTestRouter(t)

	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "healthy", raw["status"])
	assert.Equal(t, "GitHub Codespaces", raw["environment"])
	assert.Equal(t, "Demo Organization", raw["organization"])
	assert.Equal(t, store.Info().ID, raw["dataset_id"])

	ts, ok := raw["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(parsed))
}

func TestDashboard(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Demo Organization")
	assert.Contains(t, w.Body.String(), "2026-09-19 to 2026-10-18")
}

func TestStaticAssets(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/static/dashboard.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/stats")

	assert.Equal(t, http.StatusNotFound, get(router, "/static/missing.js").Code)
}

func TestNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/api/unknown")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	w = get(router, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404 page not found", w.Body.String())
}

func TestStorageFailureIsInternalError(t *testing.T) {
	router, store := setupTestRouter(t)
	require.NoError(t, store.Close())

	for _, path := range []string{"/api/stats", "/api/trends", "/api/daily"} {
		w := get(router, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR", path)
	}

	// Static payloads do not depend on the series.
	assert.Equal(t, http.StatusOK, get(router, "/health").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/governance").Code)
}

func TestRespondError_PlainError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"unexpected"}}`, w.Body.String())
}
