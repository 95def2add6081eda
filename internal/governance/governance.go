// Package governance builds the illustrative policy and budget snapshot shown
// on the dashboard. All figures are constants; only the audit time moves.
package governance

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

var (
	machineTypes      = []string{"2-core", "4-core", "8-core"}
	allowedExtensions = []string{
		"ms-python.python",
		"ms-python.vscode-pylance",
		"github.copilot",
	}
)

const (
	idleTimeoutMinutes = 30
	maxRetentionDays   = 7
	requireSSO         = true

	totalCodespaces     = 15
	activeCodespaces    = 8
	compliantCodespaces = 15
	policyViolations    = 0

	monthlyBudget  = 5000.0
	currentSpend   = 1234.56
	projectedSpend = 2890.45
	perUserLimit   = 500.0
)

// Snapshot returns the governance figures audited at now.
func Snapshot(now time.Time) *domain.GovernanceSnapshot {
	return &domain.GovernanceSnapshot{
		Policies: domain.GovernancePolicies{
			MachineTypes:       append([]string(nil), machineTypes...),
			IdleTimeoutMinutes: idleTimeoutMinutes,
			MaxRetentionDays:   maxRetentionDays,
			RequireSSO:         requireSSO,
			AllowedExtensions:  append([]string(nil), allowedExtensions...),
		},
		Compliance: domain.ComplianceStatus{
			TotalCodespaces:     totalCodespaces,
			ActiveCodespaces:    activeCodespaces,
			CompliantCodespaces: compliantCodespaces,
			PolicyViolations:    policyViolations,
			ComplianceRate:      percent(compliantCodespaces, totalCodespaces),
			LastAudit:           now,
		},
		CostControls: domain.CostControls{
			MonthlyBudget:     monthlyBudget,
			CurrentSpend:      currentSpend,
			ProjectedSpend:    projectedSpend,
			PerUserLimit:      perUserLimit,
			BudgetUsedPercent: percent(currentSpend, monthlyBudget),
		},
	}
}

// percent returns part/whole as a percentage rounded to 1 place, 0 when whole is 0.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	r, err := stats.Round(part/whole*100, 1)
	if err != nil {
		return 0
	}
	return r
}
