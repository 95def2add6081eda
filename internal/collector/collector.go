package collector

import (
	"context"
	"time"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

// Collector defines the interface for producing the daily activity series
type Collector interface {
	// CollectDailyMetrics returns one record per calendar day for the given
	// number of days ending at end (inclusive), sorted by date ascending
	CollectDailyMetrics(ctx context.Context, end time.Time, days int) ([]domain.DailyMetric, error)
}

// DefaultDays is the length of the trailing window served by the dashboard
const DefaultDays = 30
