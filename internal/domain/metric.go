package domain

import "time"

// DailyMetric represents one day of developer activity
type DailyMetric struct {
	Date             Day     `json:"date"`
	Commits          int     `json:"commits"`
	PullRequests     int     `json:"pull_requests"`
	CodeReviews      int     `json:"code_reviews"`
	ActiveDevelopers int     `json:"active_developers"`
	ComputeHours     float64 `json:"compute_hours"`
}

// SummaryStats represents whole-period totals and averages over the daily series
type SummaryStats struct {
	TotalCommits      int     `json:"total_commits"`
	AvgDailyCommits   float64 `json:"avg_daily_commits"`
	TotalPRs          int     `json:"total_prs"`
	AvgDevelopers     float64 `json:"avg_developers"`
	TotalComputeHours float64 `json:"total_compute_hours"`
	CostEstimate      float64 `json:"cost_estimate"`
}

// WeeklyRollup represents the aggregation of up to seven consecutive days
type WeeklyRollup struct {
	WeekStart        Day     `json:"week_start"`
	Days             int     `json:"days"`
	Commits          int     `json:"commits"`
	PullRequests     int     `json:"pull_requests"`
	CodeReviews      int     `json:"code_reviews"`
	ActiveDevelopers float64 `json:"active_developers"`
	ComputeHours     float64 `json:"compute_hours"`
}

// DatasetInfo describes the generated series held for the process lifetime
type DatasetInfo struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Start       Day       `json:"start"`
	End         Day       `json:"end"`
	Days        int       `json:"days"`
}
