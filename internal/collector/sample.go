package collector

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

// Distribution selects how daily activity counts are drawn
type Distribution string

const (
	// DistributionPoisson draws commits, pull requests and code reviews from
	// Poisson distributions with means 5, 2 and 3
	DistributionPoisson Distribution = "poisson"
	// DistributionUniform draws them uniformly from [0,11), [0,5) and [0,7)
	DistributionUniform Distribution = "uniform"
)

// ParseDistribution validates a distribution name
func ParseDistribution(s string) (Distribution, error) {
	switch d := Distribution(s); d {
	case DistributionPoisson, DistributionUniform:
		return d, nil
	default:
		return "", fmt.Errorf("unknown distribution %q (want %q or %q)", s, DistributionPoisson, DistributionUniform)
	}
}

// Bounds shared by both distributions.
const (
	minActiveDevelopers = 10
	maxActiveDevelopers = 25 // exclusive
	minComputeHours     = 20.0
	maxComputeHours     = 100.0 // exclusive
)

const (
	commitsMean      = 5.0
	pullRequestsMean = 2.0
	codeReviewsMean  = 3.0

	commitsUniformMax      = 11
	pullRequestsUniformMax = 5
	codeReviewsUniformMax  = 7
)

// SampleCollector generates synthetic daily metrics. It is not safe for
// concurrent use; the series is generated once at startup.
type SampleCollector struct {
	rng          *rand.Rand
	distribution Distribution
}

// Option configures a SampleCollector
type Option func(*SampleCollector)

// WithSeed makes generation reproducible. A zero seed keeps system entropy.
func WithSeed(seed uint64) Option {
	return func(c *SampleCollector) {
		if seed == 0 {
			return
		}
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSource uses src for all random draws
func WithSource(src rand.Source) Option {
	return func(c *SampleCollector) {
		c.rng = rand.New(src)
	}
}

// WithDistribution sets the distribution of the count fields
func WithDistribution(d Distribution) Option {
	return func(c *SampleCollector) {
		c.distribution = d
	}
}

// NewSampleCollector creates a new sample collector
func NewSampleCollector(opts ...Option) *SampleCollector {
	c := &SampleCollector{
		distribution: DistributionPoisson,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// CollectDailyMetrics generates the trailing series ending at end
func (c *SampleCollector) CollectDailyMetrics(ctx context.Context, end time.Time, days int) ([]domain.DailyMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	if _, err := ParseDistribution(string(c.distribution)); err != nil {
		return nil, err
	}

	last := domain.NewDay(end)
	metrics := make([]domain.DailyMetric, 0, days)
	for i := days - 1; i >= 0; i-- {
		metrics = append(metrics, c.sample(last.AddDays(-i)))
	}

	return metrics, nil
}

func (c *SampleCollector) sample(day domain.Day) domain.DailyMetric {
	m := domain.DailyMetric{
		Date:             day,
		ActiveDevelopers: minActiveDevelopers + c.rng.IntN(maxActiveDevelopers-minActiveDevelopers),
		ComputeHours:     minComputeHours + c.rng.Float64()*(maxComputeHours-minComputeHours),
	}

	switch c.distribution {
	case DistributionUniform:
		m.Commits = c.rng.IntN(commitsUniformMax)
		m.PullRequests = c.rng.IntN(pullRequestsUniformMax)
		m.CodeReviews = c.rng.IntN(codeReviewsUniformMax)
	default:
		m.Commits = c.poisson(commitsMean)
		m.PullRequests = c.poisson(pullRequestsMean)
		m.CodeReviews = c.poisson(codeReviewsMean)
	}

	return m
}

// poisson draws from a Poisson distribution by multiplying uniforms until the
// product drops below e^-lambda. Fine for the small means used here.
func (c *SampleCollector) poisson(lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := c.rng.Float64()
	for p > limit {
		k++
		p *= c.rng.Float64()
	}
	return k
}
