package aggregator

import (
	"context"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
	apperrors "github.com/kurihiro0119/codespaces-dashboard/internal/errors"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage"
)

// DefaultHourlyRate is the dollar cost of one compute hour
const DefaultHourlyRate = 0.18

// Aggregator defines the interface for aggregating metrics
type Aggregator interface {
	// Summarize computes whole-period totals and averages
	Summarize(ctx context.Context) (*domain.SummaryStats, error)

	// WeeklyRollup aggregates the series into consecutive seven-day windows
	WeeklyRollup(ctx context.Context) ([]domain.WeeklyRollup, error)

	// DailyMetrics returns the underlying series
	DailyMetrics(ctx context.Context) ([]domain.DailyMetric, error)

	// DatasetInfo describes the underlying series
	DatasetInfo() domain.DatasetInfo
}

// aggregator implements the Aggregator interface
type aggregator struct {
	storage    storage.Storage
	hourlyRate float64
}

// NewAggregator creates a new aggregator
func NewAggregator(storage storage.Storage, hourlyRate float64) Aggregator {
	return &aggregator{
		storage:    storage,
		hourlyRate: hourlyRate,
	}
}

// Summarize computes whole-period totals and averages
func (a *aggregator) Summarize(ctx context.Context) (*domain.SummaryStats, error) {
	metrics, err := a.DailyMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(metrics, a.hourlyRate)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to summarize metrics", err)
	}
	return summary, nil
}

// WeeklyRollup aggregates the series into consecutive seven-day windows
func (a *aggregator) WeeklyRollup(ctx context.Context) ([]domain.WeeklyRollup, error) {
	metrics, err := a.DailyMetrics(ctx)
	if err != nil {
		return nil, err
	}

	rollups, err := WeeklyRollup(metrics)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to roll up metrics", err)
	}
	return rollups, nil
}

// DailyMetrics returns the underlying series
func (a *aggregator) DailyMetrics(ctx context.Context) ([]domain.DailyMetric, error) {
	metrics, err := a.storage.GetDailyMetrics(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load daily metrics", err)
	}
	return metrics, nil
}

// DatasetInfo describes the underlying series
func (a *aggregator) DatasetInfo() domain.DatasetInfo {
	return a.storage.Info()
}
