package storage

import (
	"context"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

// Storage is the abstract interface for the read-only metric snapshot
type Storage interface {
	// GetDailyMetrics returns a copy of the daily series, sorted by date ascending
	GetDailyMetrics(ctx context.Context) ([]domain.DailyMetric, error)

	// Info describes the snapshot
	Info() domain.DatasetInfo

	// Connection management
	Close() error
}
