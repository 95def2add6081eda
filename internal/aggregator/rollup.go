package aggregator

import (
	"errors"

	"github.com/montanaflynn/stats"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

// WeekLength is the number of daily records per rollup window
const WeekLength = 7

// ErrEmptySeries is returned when there is nothing to aggregate
var ErrEmptySeries = errors.New("no daily metrics to aggregate")

// Summarize computes totals and averages over metrics. Averages of counts and
// hours are rounded to 2 places, the developer average to 1 place. The cost
// estimate is derived from the rounded hour total it is reported alongside.
func Summarize(metrics []domain.DailyMetric, hourlyRate float64) (*domain.SummaryStats, error) {
	if len(metrics) == 0 {
		return nil, ErrEmptySeries
	}

	t := sumWindow(metrics)

	avgCommits, err := stats.Mean(t.commitSeries)
	if err != nil {
		return nil, err
	}
	avgDevelopers, err := stats.Mean(t.developerSeries)
	if err != nil {
		return nil, err
	}
	totalHours, err := stats.Sum(t.hourSeries)
	if err != nil {
		return nil, err
	}

	totalHours = round(totalHours, 2)

	return &domain.SummaryStats{
		TotalCommits:      t.commits,
		AvgDailyCommits:   round(avgCommits, 2),
		TotalPRs:          t.pullRequests,
		AvgDevelopers:     round(avgDevelopers, 1),
		TotalComputeHours: totalHours,
		CostEstimate:      round(totalHours*hourlyRate, 2),
	}, nil
}

// WeeklyRollup partitions metrics into consecutive windows of WeekLength
// records, the last one possibly shorter, preserving date order.
func WeeklyRollup(metrics []domain.DailyMetric) ([]domain.WeeklyRollup, error) {
	if len(metrics) == 0 {
		return nil, ErrEmptySeries
	}

	windows := Windows(metrics, WeekLength)
	rollups := make([]domain.WeeklyRollup, 0, len(windows))
	for _, window := range windows {
		t := sumWindow(window)

		avgDevelopers, err := stats.Mean(t.developerSeries)
		if err != nil {
			return nil, err
		}
		hours, err := stats.Sum(t.hourSeries)
		if err != nil {
			return nil, err
		}

		rollups = append(rollups, domain.WeeklyRollup{
			WeekStart:        window[0].Date,
			Days:             len(window),
			Commits:          t.commits,
			PullRequests:     t.pullRequests,
			CodeReviews:      t.codeReviews,
			ActiveDevelopers: round(avgDevelopers, 1),
			ComputeHours:     round(hours, 2),
		})
	}

	return rollups, nil
}

// Windows splits metrics into consecutive chunks of at most size records.
// The chunks share the backing array of metrics.
func Windows(metrics []domain.DailyMetric, size int) [][]domain.DailyMetric {
	if size < 1 || len(metrics) == 0 {
		return nil
	}

	windows := make([][]domain.DailyMetric, 0, (len(metrics)+size-1)/size)
	for start := 0; start < len(metrics); start += size {
		end := min(start+size, len(metrics))
		windows = append(windows, metrics[start:end:end])
	}
	return windows
}

// totals holds exact integer sums and the float series fed to stats
type totals struct {
	commits      int
	pullRequests int
	codeReviews  int

	commitSeries    stats.Float64Data
	developerSeries stats.Float64Data
	hourSeries      stats.Float64Data
}

func sumWindow(metrics []domain.DailyMetric) totals {
	t := totals{
		commitSeries:    make(stats.Float64Data, 0, len(metrics)),
		developerSeries: make(stats.Float64Data, 0, len(metrics)),
		hourSeries:      make(stats.Float64Data, 0, len(metrics)),
	}
	for _, m := range metrics {
		t.commits += m.Commits
		t.pullRequests += m.PullRequests
		t.codeReviews += m.CodeReviews
		t.commitSeries = append(t.commitSeries, float64(m.Commits))
		t.developerSeries = append(t.developerSeries, float64(m.ActiveDevelopers))
		t.hourSeries = append(t.hourSeries, m.ComputeHours)
	}
	return t
}

// round rounds half away from zero. stats.Round only fails on NaN, which the
// generator never produces.
func round(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}
