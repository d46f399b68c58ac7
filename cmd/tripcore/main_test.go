package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

const prefsYAML = `pace: balanced
trip_length: 7
destination:
  name: Costa Rica
  country_code: CR
selected_activities:
  - kind: surf
    priority: must-do
    target_days: 4
  - kind: snorkel
    priority: must-do
`

const schedulePrefsJSON = `{
  "pace": "balanced",
  "trip_length": 3,
  "selected_activities": [
    {"kind": "surf", "priority": "must-do", "target_days": 3},
    {"kind": "yoga", "priority": "nice-to-have"}
  ]
}`

const itineraryYAML = `days:
  - day: 1
    activities:
      - id: a
        name: Surf lesson
        kind: surf
        start_time: "08:00"
        end_time: "10:00"
      - id: b
        name: Snorkel trip
        kind: snorkel
        start_time: "09:30"
        end_time: "11:00"
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTradeoffsCmd(t *testing.T) {
	prefs := writeFixture(t, "prefs.yaml", prefsYAML)

	out, err := execute(t, "tradeoffs", "--prefs", prefs)
	require.NoError(t, err)

	var report models.TradeoffReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotEmpty(t, report.Detected)
	assert.Equal(t, models.TradeoffCalmWaterVsSurf, report.Detected[0].Type)
}

func TestResolveCmd(t *testing.T) {
	prefs := writeFixture(t, "prefs.yaml", prefsYAML)

	out, err := execute(t, "resolve", "--prefs", prefs, "--tradeoff", "calm_water_vs_surf", "--option", "reduce_surf_days")
	require.NoError(t, err)

	var updated models.TripPreferences
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	require.Len(t, updated.ResolvedTradeoffs, 1)
	assert.Equal(t, 2, updated.SelectedActivities[0].TargetDays)

	_, err = execute(t, "resolve", "--prefs", prefs, "--tradeoff", "calm_water_vs_surf", "--option", "teleport")
	assert.ErrorIs(t, err, models.ErrUnknownOption)
}

func TestAreasCmd(t *testing.T) {
	prefs := writeFixture(t, "prefs.yaml", prefsYAML)

	out, err := execute(t, "areas", "--prefs", prefs)
	require.NoError(t, err)

	var report models.DiscoveryReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, models.DiscoveryCurated, report.Mode)
	assert.NotEmpty(t, report.Areas)
	assert.False(t, report.GeoValidated)

	empty := writeFixture(t, "empty.yaml", "pace: chill\n")
	_, err = execute(t, "areas", "--prefs", empty)
	assert.ErrorIs(t, err, models.ErrNoDestination)
}

func TestScheduleCmd_JSONFixture(t *testing.T) {
	prefs := writeFixture(t, "prefs.json", schedulePrefsJSON)

	out, err := execute(t, "schedule", "--prefs", prefs)
	require.NoError(t, err)

	var res models.ScheduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Itinerary.Days, 3)
	assert.Empty(t, res.Unplaced)
}

func TestCheckCmd(t *testing.T) {
	prefs := writeFixture(t, "prefs.yaml", prefsYAML)
	itinerary := writeFixture(t, "itinerary.yaml", itineraryYAML)

	out, err := execute(t, "check", "--prefs", prefs, "--itinerary", itinerary)
	require.NoError(t, err)

	var res models.QualityCheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Passed)
	assert.Contains(t, res.MustResolve, "timing-overlap-day-1-1")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing required flag", []string{"tradeoffs"}},
		{"missing file", []string{"schedule", "--prefs", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"nothing to seed", []string{"seed"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestLoadFixture_BadYAML(t *testing.T) {
	path := writeFixture(t, "bad.yaml", "pace: [unterminated\n")
	var prefs models.TripPreferences
	assert.Error(t, loadFixture(path, &prefs))
}
