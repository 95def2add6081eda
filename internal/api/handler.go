package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kurihiro0119/codespaces-dashboard/internal/aggregator"
	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
	apperrors "github.com/kurihiro0119/codespaces-dashboard/internal/errors"
	"github.com/kurihiro0119/codespaces-dashboard/internal/governance"
)

// Site holds the fixed labels reported by the health endpoint and the page title
type Site struct {
	Environment  string
	Organization string
}

// Handler handles API requests
type Handler struct {
	aggregator aggregator.Aggregator
	site       Site
	now        func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(agg aggregator.Aggregator, site Site) *Handler {
	return &Handler{
		aggregator: agg,
		site:       site,
		now:        time.Now,
	}
}

// Dashboard renders the dashboard page
// GET /
func (h *Handler) Dashboard(c *gin.Context) {
	info := h.aggregator.DatasetInfo()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Organization": h.site.Organization,
		"Environment":  h.site.Environment,
		"Start":        info.Start.String(),
		"End":          info.End.String(),
	})
}

// GetStats returns the whole-period summary
// GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	summary, err := h.aggregator.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrends returns the weekly rollups in date order
// GET /api/trends
func (h *Handler) GetTrends(c *gin.Context) {
	rollups, err := h.aggregator.WeeklyRollup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rollups)
}

// GetDaily returns the raw daily series
// GET /api/daily
func (h *Handler) GetDaily(c *gin.Context) {
	metrics, err := h.aggregator.DailyMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetGovernance returns the governance snapshot audited now
// GET /api/governance
func (h *Handler) GetGovernance(c *gin.Context) {
	c.JSON(http.StatusOK, governance.Snapshot(h.now()))
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	info := h.aggregator.DatasetInfo()
	c.JSON(http.StatusOK, domain.HealthStatus{
		Status:       domain.HealthStatusHealthy,
		Timestamp:    h.now(),
		Environment:  h.site.Environment,
		Organization: h.site.Organization,
		DatasetID:    info.ID,
		GeneratedAt:  info.GeneratedAt,
	})
}

// NotFound answers unknown API paths with a JSON error and anything else with
// the framework's plain 404
func (h *Handler) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") {
		respondError(c, apperrors.NewNotFoundError("route "+path))
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		status := http.StatusInternalServerError
		if appErr.Code == apperrors.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrCodeInternal,
			"message": err.Error(),
		},
	})
}
