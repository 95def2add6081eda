package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kurihiro0119/codespaces-dashboard/internal/collector"
	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage"
)

// ErrClosed is returned by reads after Close
var ErrClosed = errors.New("memory storage is closed")

// memoryStorage implements the Storage interface over a series fixed at
// construction. Nothing is mutated after NewMemoryStorage returns except the
// closed flag, so reads need no locking.
type memoryStorage struct {
	metrics []domain.DailyMetric
	info    domain.DatasetInfo
	closed  chan struct{}
	once    sync.Once
}

// NewMemoryStorage creates a snapshot of metrics generated at generatedAt.
// The series must be non-empty, sorted and free of gaps.
func NewMemoryStorage(metrics []domain.DailyMetric, generatedAt time.Time) (storage.Storage, error) {
	if len(metrics) == 0 {
		return nil, errors.New("cannot create storage from an empty series")
	}
	for i := 1; i < len(metrics); i++ {
		want := metrics[i-1].Date.AddDays(1)
		if !metrics[i].Date.Same(want) {
			return nil, fmt.Errorf("series is not consecutive at index %d: got %s, want %s", i, metrics[i].Date, want)
		}
	}

	snapshot := make([]domain.DailyMetric, len(metrics))
	copy(snapshot, metrics)

	return &memoryStorage{
		metrics: snapshot,
		info: domain.DatasetInfo{
			ID:          uuid.New().String(),
			GeneratedAt: generatedAt,
			Start:       snapshot[0].Date,
			End:         snapshot[len(snapshot)-1].Date,
			Days:        len(snapshot),
		},
		closed: make(chan struct{}),
	}, nil
}

// NewFromCollector collects days of metrics ending at now and snapshots them
func NewFromCollector(ctx context.Context, c collector.Collector, now time.Time, days int) (storage.Storage, error) {
	metrics, err := c.CollectDailyMetrics(ctx, now, days)
	if err != nil {
		return nil, fmt.Errorf("failed to collect daily metrics: %w", err)
	}
	return NewMemoryStorage(metrics, now)
}

// GetDailyMetrics returns a copy of the series
func (s *memoryStorage) GetDailyMetrics(ctx context.Context) ([]domain.DailyMetric, error) {
	select {
	case <-s.closed:
		return nil, ErrClosed
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.DailyMetric, len(s.metrics))
	copy(out, s.metrics)
	return out, nil
}

// Info describes the snapshot
func (s *memoryStorage) Info() domain.DatasetInfo {
	return s.info
}

// Close releases the snapshot. Calling it twice is a no-op.
func (s *memoryStorage) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}
