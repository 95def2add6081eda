package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay_TruncatesToMidnight(t *testing.T) {
	d := NewDay(time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(t, "2026-03-14", d.String())
}

func TestDay_AddDays(t *testing.T) {
	d := NewDay(time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-03-01", d.AddDays(2).String())
	assert.Equal(t, "2026-01-31", d.AddDays(-27).String())
	assert.True(t, d.AddDays(0).Same(d))
}

func TestDay_AddDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	d := NewDay(time.Date(2026, 3, 7, 12, 0, 0, 0, loc))

	next := d.AddDays(1)
	assert.Equal(t, "2026-03-08", next.String())
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, "2026-03-09", next.AddDays(1).String())
}

func TestDay_JSON(t *testing.T) {
	d := NewDay(time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local))

	b, err := json.Marshal(struct {
		Date Day `json:"date"`
	}{Date: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-18"}`, string(b))

	var decoded struct {
		Date Day `json:"date"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.True(t, decoded.Date.Same(d))
}

func TestDay_UnmarshalInvalid(t *testing.T) {
	var d Day
	err := json.Unmarshal([]byte(`"18/10/2026"`), &d)
	assert.Error(t, err)
}
