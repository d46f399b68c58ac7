package areas

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultKnowledgeBase(), DefaultParams(), zap.NewNop())
}

func assertRanked(t *testing.T, areas []models.AreaCandidate) {
	t.Helper()
	for i, a := range areas {
		assert.GreaterOrEqual(t, a.OverallScore, 0.0, a.Name)
		assert.LessOrEqual(t, a.OverallScore, 1.0, a.Name)
		if i > 0 {
			assert.GreaterOrEqual(t, areas[i-1].OverallScore, a.OverallScore)
		}
	}
}

func TestDiscoverAreas_Curated(t *testing.T) {
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{
			{Kind: models.ActivitySurf, Priority: models.PriorityMustDo, TargetDays: 4},
		},
		VibePreferences: []string{"laid-back"},
		TripLength:      7,
		Destination:     models.DestinationContext{Name: "Costa Rica", CountryCode: "CR"},
	}

	res := newTestEngine().DiscoverAreas(context.Background(), prefs, nil)

	assert.Equal(t, models.DiscoveryCurated, res.Mode)
	assert.False(t, res.LowConfidence)
	require.Len(t, res.Areas, 6)
	assertRanked(t, res.Areas)

	// surf towns with a laid-back vibe outrank the rest
	top := map[string]bool{res.Areas[0].ID: true, res.Areas[1].ID: true}
	assert.True(t, top["nosara"])
	assert.True(t, top["santa-teresa"])
	for _, a := range res.Areas {
		assert.Equal(t, models.SourceCurated, a.Source)
		assert.InDelta(t, 0.5, a.BudgetFitScore, 1e-9)
	}
}

func TestDiscoverAreas_ResultBounds(t *testing.T) {
	e := newTestEngine()
	for _, tc := range []struct {
		trip int
		want int
	}{
		{0, 6}, // default seven nights
		{1, 5},
		{7, 6},
		{12, 8},
		{30, 8}, // Bali has eight curated areas
	} {
		prefs := models.TripPreferences{
			SelectedActivities: []models.ActivityIntent{{Kind: models.ActivitySnorkel, Priority: models.PriorityMustDo}},
			TripLength:         tc.trip,
			Destination:        models.DestinationContext{Name: "Bali, Indonesia"},
		}
		res := e.DiscoverAreas(context.Background(), prefs, nil)
		assert.Len(t, res.Areas, tc.want, "trip=%d", tc.trip)
		assertRanked(t, res.Areas)
	}
}

func TestDiscoverAreas_EvidenceOnly(t *testing.T) {
	evidence := []models.Evidence{
		models.NewKnowledgeEvidence(models.KnowledgeNote{
			Text:      "Weligama has a gentle beginner break.",
			Sentiment: 0.8,
			Areas: []models.MentionedArea{
				{Name: "weligama", Type: models.AreaTown, BestFor: []string{"surf", "beach"}, NotIdealFor: []string{"snorkel"}},
				{Name: "Mirissa"},
			},
		}),
		models.NewKnowledgeEvidence(models.KnowledgeNote{
			Text:      "Mirissa for whales.",
			Sentiment: 0.6,
			Areas:     []models.MentionedArea{{Name: "Mirissa", BestFor: []string{"beach"}}},
			SpecificActivity: &models.SpecificActivityNote{
				Activity: "blue whale watching", Note: "Boats leave at dawn.", Season: "November to April",
			},
		}),
		models.NewSocialEvidence(models.SocialMention{
			Source: "r/srilanka", Quote: "Weligama was the best week of my life", Areas: []string{"Weligama"}, Upvotes: 120, Sentiment: 0.9,
		}),
		{Kind: models.EvidenceSocial},
	}
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{
			{Kind: models.ActivitySurf, Priority: models.PriorityMustDo},
			{Kind: models.ActivityCustom, Label: "whale watching", Priority: models.PriorityNiceToHave},
		},
		TripLength:  10,
		Destination: models.DestinationContext{Name: "Sri Lanka", CountryCode: "LK"},
	}

	res := newTestEngine().DiscoverAreas(context.Background(), prefs, evidence)

	assert.Equal(t, models.DiscoveryEvidence, res.Mode)
	assert.True(t, res.LowConfidence)
	require.Len(t, res.Areas, 2, "universe exhausted, nothing to pad with")

	byID := map[string]models.AreaCandidate{}
	for _, a := range res.Areas {
		byID[a.ID] = a
	}
	weligama := byID["weligama"]
	assert.Equal(t, "Weligama", weligama.Name)
	assert.Equal(t, models.AreaTown, weligama.Type)
	assert.Equal(t, models.SourceKnowledge, weligama.Source)
	assert.Len(t, weligama.Evidence, 2)
	assert.Equal(t, []string{"surf", "beach"}, weligama.BestFor)

	mirissa := byID["mirissa"]
	assert.Equal(t, "blue whale watching", mirissa.MatchedActivity)
	assert.Contains(t, mirissa.Description, "Boats leave at dawn.")
	assert.Len(t, mirissa.Evidence, 2)
}

func TestDiscoverAreas_PadsFromCountryTable(t *testing.T) {
	evidence := []models.Evidence{
		models.NewSocialEvidence(models.SocialMention{Quote: "Stay in Alfama", Areas: []string{"Alfama"}}),
		models.NewSocialEvidence(models.SocialMention{Quote: "Sintra day trip", Areas: []string{"Sintra"}}),
	}
	prefs := models.TripPreferences{
		TripLength:  4,
		Destination: models.DestinationContext{Name: "Lisbon", CountryCode: "PT"},
	}

	res := newTestEngine().DiscoverAreas(context.Background(), prefs, evidence)

	require.Len(t, res.Areas, 5)
	assert.Equal(t, models.DiscoveryEvidence, res.Mode)

	ids := map[string]models.AreaSource{}
	for _, a := range res.Areas {
		_, dup := ids[a.ID]
		assert.False(t, dup, "duplicate %s", a.ID)
		ids[a.ID] = a.Source
	}
	assert.Equal(t, models.SourceSocial, ids["alfama"])
	assert.Equal(t, models.SourceSocial, ids["sintra"], "padding never duplicates an evidence area")
	assert.Equal(t, models.SourcePadding, ids["lisbon"])
	assert.Equal(t, models.SourcePadding, ids["ericeira"])
	assert.Equal(t, models.SourcePadding, ids["comporta"])
}

func TestDiscoverAreas_NoData(t *testing.T) {
	prefs := models.TripPreferences{Destination: models.DestinationContext{Name: "Atlantis"}}
	res := newTestEngine().DiscoverAreas(context.Background(), prefs, nil)
	assert.Equal(t, models.DiscoveryNone, res.Mode)
	assert.True(t, res.LowConfidence)
	assert.Empty(t, res.Areas)
}

func TestCuratedKnowledgeBase_Lookup(t *testing.T) {
	kb := DefaultKnowledgeBase()
	tests := []struct {
		query string
		want  string
	}{
		{"Costa Rica", "Costa Rica"},
		{"costa rica", "Costa Rica"},
		{"Maui, Hawaii", "Hawaii"},
		{"Bali", "Bali"},
		{"Southern Portugal coast", "Portugal"},
		{"Rica", "Costa Rica"},
		{"Lisbon", ""},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			d, ok := kb.Lookup(tc.query)
			assert.Equal(t, tc.want != "", ok)
			assert.Equal(t, tc.want, d.Name)
		})
	}

	// words of four letters or fewer never match on their own
	short := NewCuratedKnowledgeBase([]Destination{{Name: "Gulf Shores"}}, 4)
	_, ok := short.Lookup("Gulf of Mexico")
	assert.False(t, ok)
	_, ok = short.Lookup("Shores of Alabama")
	assert.True(t, ok)

	assert.Len(t, kb.AreasForCountry("pt"), 8)
	assert.Empty(t, kb.AreasForCountry(""))
	assert.NotEmpty(t, kb.SpecificActivities("Hawaii"))
	assert.Nil(t, kb.SpecificActivities("Atlantis"))
}

func TestLoadParamsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_distance_km: 80\nweights:\n  base: 0.3\n"), 0o600))

	p, err := LoadParamsFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 80, p.MaxDistanceKm, 1e-9)
	assert.InDelta(t, 0.3, p.Weights.Base, 1e-9)
	assert.InDelta(t, 0.5, p.Weights.ActivityFit, 1e-9, "unset keys keep defaults")
	assert.Equal(t, 5, p.MinResults)

	_, err = LoadParamsFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("max_distance_km: [nope"), 0o600))
	p, err = LoadParamsFile(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultParams(), p)
}
