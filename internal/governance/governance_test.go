package governance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	s := Snapshot(now)

	assert.Equal(t, []string{"2-core", "4-core", "8-core"}, s.Policies.MachineTypes)
	assert.Equal(t, 30, s.Policies.IdleTimeoutMinutes)
	assert.Equal(t, 7, s.Policies.MaxRetentionDays)
	assert.True(t, s.Policies.RequireSSO)
	assert.Len(t, s.Policies.AllowedExtensions, 3)

	assert.Equal(t, 15, s.Compliance.TotalCodespaces)
	assert.Equal(t, 8, s.Compliance.ActiveCodespaces)
	assert.Equal(t, 0, s.Compliance.PolicyViolations)
	assert.Equal(t, 100.0, s.Compliance.ComplianceRate)
	assert.Equal(t, now, s.Compliance.LastAudit)

	assert.Equal(t, 5000.0, s.CostControls.MonthlyBudget)
	assert.Equal(t, 1234.56, s.CostControls.CurrentSpend)
	assert.Equal(t, 24.7, s.CostControls.BudgetUsedPercent)
}

func TestSnapshot_OnlyAuditTimeChanges(t *testing.T) {
	a := Snapshot(time.Unix(0, 0))
	b := Snapshot(time.Unix(3600, 0))

	assert.NotEqual(t, a.Compliance.LastAudit, b.Compliance.LastAudit)
	b.Compliance.LastAudit = a.Compliance.LastAudit
	assert.Equal(t, a, b)
}

func TestSnapshot_DoesNotShareSlices(t *testing.T) {
	a := Snapshot(time.Now())
	a.Policies.MachineTypes[0] = "64-core"

	assert.Equal(t, "2-core", Snapshot(time.Now()).Policies.MachineTypes[0])
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(1, 0))
	assert.Equal(t, 33.3, percent(1, 3))
	assert.Equal(t, 66.7, percent(2, 3))
}
