package domain

import "time"

// GovernanceSnapshot represents the illustrative policy, compliance and budget figures
type GovernanceSnapshot struct {
	Policies     GovernancePolicies `json:"policies"`
	Compliance   ComplianceStatus   `json:"compliance"`
	CostControls CostControls       `json:"cost_controls"`
}

// GovernancePolicies represents the configured workspace policy limits
type GovernancePolicies struct {
	MachineTypes       []string `json:"machine_types"`
	IdleTimeoutMinutes int      `json:"idle_timeout_minutes"`
	MaxRetentionDays   int      `json:"max_retention_days"`
	RequireSSO         bool     `json:"require_sso"`
	AllowedExtensions  []string `json:"allowed_extensions"`
}

// ComplianceStatus represents workspace compliance counters
type ComplianceStatus struct {
	TotalCodespaces     int       `json:"total_codespaces"`
	ActiveCodespaces    int       `json:"active_codespaces"`
	CompliantCodespaces int       `json:"compliant_codespaces"`
	PolicyViolations    int       `json:"policy_violations"`
	ComplianceRate      float64   `json:"compliance_rate"`
	LastAudit           time.Time `json:"last_audit"`
}

// CostControls represents budget figures in dollars
type CostControls struct {
	MonthlyBudget     float64 `json:"monthly_budget"`
	CurrentSpend      float64 `json:"current_spend"`
	ProjectedSpend    float64 `json:"projected_spend"`
	PerUserLimit      float64 `json:"per_user_limit"`
	BudgetUsedPercent float64 `json:"budget_used_percent"`
}
