package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderStats(w io.Writer, s *domain.SummaryStats) {
	fmt.Fprintf(w, "\nSummary Statistics\n\n")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Commits", fmt.Sprintf("%d", s.TotalCommits)})
	table.Append([]string{"Avg Daily Commits", fmt.Sprintf("%.2f", s.AvgDailyCommits)})
	table.Append([]string{"Total Pull Requests", fmt.Sprintf("%d", s.TotalPRs)})
	table.Append([]string{"Avg Active Developers", fmt.Sprintf("%.1f", s.AvgDevelopers)})
	table.Append([]string{"Total Compute Hours", fmt.Sprintf("%.2f", s.TotalComputeHours)})
	table.Append([]string{"Cost Estimate", fmt.Sprintf("$%.2f", s.CostEstimate)})
	table.Render()
}

func renderTrends(w io.Writer, rollups []domain.WeeklyRollup) {
	fmt.Fprintf(w, "\nWeekly Trends\n\n")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Week Of", "Days", "Commits", "PRs", "Reviews", "Avg Devs", "Hours"})
	for _, r := range rollups {
		table.Append([]string{
			r.WeekStart.String(),
			fmt.Sprintf("%d", r.Days),
			fmt.Sprintf("%d", r.Commits),
			fmt.Sprintf("%d", r.PullRequests),
			fmt.Sprintf("%d", r.CodeReviews),
			fmt.Sprintf("%.1f", r.ActiveDevelopers),
			fmt.Sprintf("%.2f", r.ComputeHours),
		})
	}
	table.Render()
}

func renderDaily(w io.Writer, metrics []domain.DailyMetric) {
	fmt.Fprintf(w, "\nDaily Metrics\n\n")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Commits", "PRs", "Reviews", "Devs", "Hours"})
	for _, m := range metrics {
		table.Append([]string{
			m.Date.String(),
			fmt.Sprintf("%d", m.Commits),
			fmt.Sprintf("%d", m.PullRequests),
			fmt.Sprintf("%d", m.CodeReviews),
			fmt.Sprintf("%d", m.ActiveDevelopers),
			fmt.Sprintf("%.2f", m.ComputeHours),
		})
	}
	table.Render()
}

func renderGovernance(w io.Writer, g *domain.GovernanceSnapshot) {
	fmt.Fprintf(w, "\nPolicies\n\n")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Value"})
	table.Append([]string{"Machine Types", strings.Join(g.Policies.MachineTypes, ", ")})
	table.Append([]string{"Idle Timeout", fmt.Sprintf("%d minutes", g.Policies.IdleTimeoutMinutes)})
	table.Append([]string{"Max Retention", fmt.Sprintf("%d days", g.Policies.MaxRetentionDays)})
	table.Append([]string{"SSO Required", yesNo(g.Policies.RequireSSO)})
	table.Append([]string{"Allowed Extensions", strings.Join(g.Policies.AllowedExtensions, ", ")})
	table.Render()

	fmt.Fprintf(w, "\nCompliance (last audit %s)\n\n", g.Compliance.LastAudit.Local().Format(timestampLayout))
	table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Codespaces", fmt.Sprintf("%d", g.Compliance.TotalCodespaces)})
	table.Append([]string{"Active Codespaces", fmt.Sprintf("%d", g.Compliance.ActiveCodespaces)})
	table.Append([]string{"Compliant Codespaces", fmt.Sprintf("%d", g.Compliance.CompliantCodespaces)})
	table.Append([]string{"Policy Violations", fmt.Sprintf("%d", g.Compliance.PolicyViolations)})
	table.Append([]string{"Compliance Rate", fmt.Sprintf("%.1f%%", g.Compliance.ComplianceRate)})
	table.Render()

	fmt.Fprintf(w, "\nCost Controls\n\n")
	table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Monthly Budget", fmt.Sprintf("$%.2f", g.CostControls.MonthlyBudget)})
	table.Append([]string{"Current Spend", fmt.Sprintf("$%.2f", g.CostControls.CurrentSpend)})
	table.Append([]string{"Projected Spend", fmt.Sprintf("$%.2f", g.CostControls.ProjectedSpend)})
	table.Append([]string{"Per User Limit", fmt.Sprintf("$%.2f", g.CostControls.PerUserLimit)})
	table.Append([]string{"Budget Used", budgetColor(g.CostControls.BudgetUsedPercent)})
	table.Render()
}

func renderHealth(w io.Writer, h *domain.HealthStatus) {
	status := h.Status
	if status == domain.HealthStatusHealthy {
		status = green(status)
	} else {
		status = red(status)
	}

	fmt.Fprintf(w, "Status:       %s\n", status)
	fmt.Fprintf(w, "Timestamp:    %s\n", h.Timestamp.Local().Format(timestampLayout))
	fmt.Fprintf(w, "Environment:  %s\n", h.Environment)
	fmt.Fprintf(w, "Organization: %s\n", h.Organization)
	if h.DatasetID != "" {
		fmt.Fprintf(w, "Dataset:      %s (generated %s)\n", h.DatasetID, h.GeneratedAt.Local().Format(timestampLayout))
	}
}

func budgetColor(percent float64) string {
	s := fmt.Sprintf("%.1f%%", percent)
	switch {
	case percent > 80:
		return red(s)
	case percent > 50:
		return yellow(s)
	default:
		return green(s)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
