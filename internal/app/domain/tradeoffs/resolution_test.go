package tradeoffs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

var resolvedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestApplyResolution_AppendsHistoryWithoutMutatingInput(t *testing.T) {
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{niceToHave(models.ActivityNightlife), mustDo(models.ActivityBeach, 2)},
		Party:              models.TravelParty{Adults: 2, Children: 1},
		ResolvedTradeoffs: []models.ResolvedTradeoff{
			{TradeoffID: "earlier", ChosenOptionID: models.CustomOptionID},
		},
	}

	out := ApplyResolution(prefs, string(models.TradeoffNightlifeWithKids), "drop_nightlife", "", resolvedAt)

	require.Len(t, out.ResolvedTradeoffs, 2)
	assert.Equal(t, models.ResolvedTradeoff{
		TradeoffID:     string(models.TradeoffNightlifeWithKids),
		ChosenOptionID: "drop_nightlife",
		ResolvedAt:     resolvedAt,
	}, out.ResolvedTradeoffs[1])
	require.Len(t, out.SelectedActivities, 1)
	assert.Equal(t, models.ActivityBeach, out.SelectedActivities[0].Kind)

	assert.Len(t, prefs.ResolvedTradeoffs, 1)
	assert.Len(t, prefs.SelectedActivities, 2)
}

func TestApplyResolution_Transforms(t *testing.T) {
	base := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{
			mustDo(models.ActivitySurf, 5),
			mustDo(models.ActivitySnorkel, 2),
			mustDo(models.ActivityBeach, 1),
			mustDo(models.ActivityHike, 2),
			mustDo(models.ActivityNightlife, 1),
		},
		HardNos:         []string{"no long drives", "cruise ships"},
		VibePreferences: []string{"party", "authentic"},
		MaxBases:        3,
		BasePreference:  models.BasePreferenceSingle,
		MustVisitAreas:  []string{"Ubud", "Canggu", "Amed", "Lovina"},
		Pace:            models.PaceChill,
	}

	priorityOf := func(p models.TripPreferences, kind models.ActivityKind) models.Priority {
		for _, a := range p.SelectedActivities {
			if a.Kind == kind {
				return a.Priority
			}
		}
		return ""
	}

	tests := []struct {
		tradeoff models.TradeoffType
		option   string
		check    func(t *testing.T, p models.TripPreferences)
	}{
		{models.TradeoffCalmWaterVsSurf, "reduce_surf_days", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, 2, p.SelectedActivities[0].TargetDays)
		}},
		{models.TradeoffCalmWaterVsSurf, "split_bases", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, 3, p.MaxBases)
			assert.Equal(t, models.BasePreferenceFlexible, p.BasePreference)
		}},
		{models.TradeoffCalmWaterVsSurf, "drop_calm_water", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PriorityNiceToHave, priorityOf(p, models.ActivitySnorkel))
			assert.Equal(t, models.PriorityMustDo, priorityOf(p, models.ActivitySurf))
		}},
		{models.TradeoffSingleBaseVsManyAreas, "day_trips", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, 1, p.MaxBases)
		}},
		{models.TradeoffSingleBaseVsManyAreas, "trim_areas", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, []string{"Ubud", "Canggu"}, p.MustVisitAreas)
		}},
		{models.TradeoffNightlifeWithKids, "demote_nightlife", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PriorityNiceToHave, priorityOf(p, models.ActivityNightlife))
		}},
		{models.TradeoffNoLongDrivesVsBases, "close_bases", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, 2, p.MaxBases)
		}},
		{models.TradeoffNoLongDrivesVsBases, "accept_drives", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, []string{"cruise ships"}, p.HardNos)
		}},
		{models.TradeoffBeachVsAdventure, "demote_adventure", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PriorityNiceToHave, priorityOf(p, models.ActivityHike))
			assert.Equal(t, models.PriorityMustDo, priorityOf(p, models.ActivityBeach))
		}},
		{models.TradeoffBeachVsAdventure, "demote_beach", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PriorityNiceToHave, priorityOf(p, models.ActivityBeach))
		}},
		{models.TradeoffYoungKidsVsPartyVibe, "drop_party_vibe", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, []string{"authentic"}, p.VibePreferences)
		}},
		{models.TradeoffYoungKidsVsPartyVibe, "family_lively", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, []string{"authentic", "family-friendly"}, p.VibePreferences)
		}},
		{models.TradeoffPaceVsActivityLoad, "increase_pace", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PaceBalanced, p.Pace)
		}},
		{models.TradeoffPaceVsActivityLoad, "reduce_targets", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, 4, p.SelectedActivities[0].TargetDays)
			assert.Equal(t, 1, p.SelectedActivities[2].TargetDays)
		}},
		{models.TradeoffPaceVsActivityLoad, "demote_last_must_do", func(t *testing.T, p models.TripPreferences) {
			assert.Equal(t, models.PriorityNiceToHave, priorityOf(p, models.ActivityNightlife))
			assert.Equal(t, models.PriorityMustDo, priorityOf(p, models.ActivityHike))
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.tradeoff)+"/"+tc.option, func(t *testing.T) {
			out := ApplyResolution(base, string(tc.tradeoff), tc.option, "", resolvedAt)
			tc.check(t, out)
			require.Len(t, out.ResolvedTradeoffs, 1)
			// the shared fixture stays untouched
			assert.Equal(t, 5, base.SelectedActivities[0].TargetDays)
			assert.Equal(t, []string{"party", "authentic"}, base.VibePreferences)
		})
	}
}

func TestApplyResolution_UnknownOnlyRecordsHistory(t *testing.T) {
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{mustDo(models.ActivitySurf, 4)},
		MaxBases:           2,
	}

	for _, tc := range []struct{ tradeoff, option, text string }{
		{string(models.TradeoffCalmWaterVsSurf), models.CustomOptionID, "surf dawn, snorkel noon"},
		{string(models.TradeoffCalmWaterVsSurf), "teleport", ""},
		{"no_such_tradeoff", "reduce_surf_days", ""},
	} {
		out := ApplyResolution(prefs, tc.tradeoff, tc.option, tc.text, resolvedAt)
		require.Len(t, out.ResolvedTradeoffs, 1)
		assert.Equal(t, tc.text, out.ResolvedTradeoffs[0].CustomText)
		assert.Equal(t, prefs.SelectedActivities, out.SelectedActivities)
		assert.Equal(t, prefs.MaxBases, out.MaxBases)
	}
}
