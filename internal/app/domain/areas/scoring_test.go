package areas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

func intents(kinds ...models.ActivityKind) []models.ActivityIntent {
	out := make([]models.ActivityIntent, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, models.ActivityIntent{Kind: k, Priority: models.PriorityMustDo})
	}
	return out
}

func TestActivityFit(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name        string
		bestFor     []string
		selected    []models.ActivityIntent
		wantFit     float64
		wantMatches int
	}{
		{"primary strength saturates", []string{"surf", "beach"}, intents(models.ActivitySurf), 1, 1},
		{"secondary strength", []string{"beach", "yoga", "surf"}, intents(models.ActivitySurf), 1, 1},
		{"diluted by unmatched activities", []string{"beach", "surf"}, intents(models.ActivitySurf, models.ActivityHike, models.ActivityKayak, models.ActivitySwim), 1.5/4 + 0.2, 1},
		{"non-primary match diluted", []string{"beach", "yoga", "surf"}, intents(models.ActivitySurf, models.ActivityHike, models.ActivityKayak, models.ActivitySwim), 1.0/4 + 0.2, 1},
		{"nothing matched", []string{"beach"}, intents(models.ActivitySurf), 0.1, 0},
		{"no activities selected", []string{"beach"}, nil, 0.5, 0},
		{"tag spelling normalised", []string{"Whale Watching"}, intents(models.ActivityWhaleWatching), 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fit, matches := p.activityFit(tc.bestFor, tc.selected)
			assert.InDelta(t, tc.wantFit, fit, 1e-9)
			assert.Equal(t, tc.wantMatches, matches)
		})
	}
}

func TestConflictPenalty_OnlyTopTwoActivities(t *testing.T) {
	p := DefaultParams()

	// surf-first user, area not ideal for snorkel
	assert.Zero(t, p.conflictPenalty([]string{"snorkel"}, intents(models.ActivitySurf)))
	fit, _ := p.activityFit([]string{"surf", "beach"}, intents(models.ActivitySurf))
	assert.GreaterOrEqual(t, fit, 1.0)

	assert.Zero(t, p.conflictPenalty([]string{"snorkel"}, intents(models.ActivitySurf, models.ActivityHike, models.ActivitySnorkel)))
	assert.InDelta(t, 0.2, p.conflictPenalty([]string{"snorkel"}, intents(models.ActivitySurf, models.ActivitySnorkel)), 1e-9)
	assert.InDelta(t, 0.2, p.conflictPenalty([]string{"snorkel", "surf"}, intents(models.ActivitySurf, models.ActivitySnorkel)), 1e-9, "penalty does not stack")
}

func TestVibeMatch(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 0.5, p.vibeMatch([]string{"quiet"}, nil), 1e-9)
	assert.InDelta(t, 0.5, p.vibeMatch([]string{"Quiet", "nature"}, []string{"quiet", "party"}), 1e-9)
	assert.InDelta(t, 1, p.vibeMatch([]string{"family-friendly"}, []string{"family friendly"}), 1e-9)
	assert.Zero(t, p.vibeMatch(nil, []string{"party"}))
}

func TestEvidenceBonusAndConfidence(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 0.06, p.evidenceBonus(3), 1e-9)
	assert.InDelta(t, 0.1, p.evidenceBonus(12), 1e-9)

	assert.InDelta(t, 0.8, p.confidence(models.SourceCurated, nil), 1e-9)
	ev := []models.Evidence{
		models.NewKnowledgeEvidence(models.KnowledgeNote{Sentiment: 1}),
		models.NewSocialEvidence(models.SocialMention{Sentiment: 0}),
	}
	assert.InDelta(t, 0.65, p.confidence(models.SourceKnowledge, ev), 1e-9)
	assert.InDelta(t, 0.45, p.confidence(models.SourceSocial, []models.Evidence{
		models.NewSocialEvidence(models.SocialMention{Sentiment: -0.5}),
	}), 1e-9)
}

func TestSuggestedNights(t *testing.T) {
	tests := []struct {
		matches, trip, want int
	}{
		{3, 10, 4},
		{3, 6, 3},
		{2, 12, 3},
		{1, 7, 2},
		{0, 7, 2},
		{0, 1, 1},
		{5, 1, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, suggestedNights(tc.matches, tc.trip), "matches=%d trip=%d", tc.matches, tc.trip)
	}
}

func TestResultCount(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 5, p.resultCount(1))
	assert.Equal(t, 6, p.resultCount(7))
	assert.Equal(t, 6, p.resultCount(8))
	assert.Equal(t, 7, p.resultCount(9))
	assert.Equal(t, 10, p.resultCount(30))
}

func TestScoreArea_SpecificActivityFromKeywordTable(t *testing.T) {
	p := DefaultParams()
	kb := DefaultKnowledgeBase()
	d, ok := kb.Lookup("Costa Rica")
	require.True(t, ok)

	var uvita models.KnowledgeArea
	for _, a := range d.Areas {
		if a.Name == "Uvita" {
			uvita = a
		}
	}
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{
			{Kind: models.ActivityBeach, Priority: models.PriorityMustDo},
			{Kind: models.ActivityCustom, Label: "see humpback whales", Priority: models.PriorityMustDo},
		},
		TripLength: 8,
	}

	c := p.scoreArea(&universeArea{area: uvita, source: models.SourceCurated}, prefs, d.Specific)

	assert.Equal(t, "uvita", c.ID)
	assert.Equal(t, "whale_watching", c.MatchedActivity)
	assert.Equal(t, "whale_watching", c.BestFor[0])
	assert.Len(t, c.BestFor, len(uvita.BestFor), "reordered, never dropped")
	assert.True(t, strings.HasPrefix(c.Description, "Humpback whales"))
	assert.Contains(t, c.Description, "Best season: July to October")

	// beach matched at index 1: 1.5/2 + 0.2 = 0.95
	assert.InDelta(t, 0.95, c.ActivityFitScore, 1e-9)
	assert.InDelta(t, 0.5*0.95+0.1*0.5+0.2*0.8+0.3, c.OverallScore, 1e-9)
	// two matches over eight nights: min(3, 8/3)
	assert.Equal(t, 2, c.SuggestedNights)

	// the table is not mutated
	assert.Equal(t, "whale_watching", uvita.BestFor[0])
	assert.Equal(t, "Quiet southern Pacific town beside Marino Ballena National Park.", uvita.Description)
}

func TestScoreArea_SpecificActivityFromAttachedNote(t *testing.T) {
	p := DefaultParams()
	ua := &universeArea{
		area: models.KnowledgeArea{
			Name:    "Mirissa",
			BestFor: []string{"beach", "surf"},
		},
		source: models.SourceKnowledge,
		specific: []models.SpecificActivityNote{
			{Activity: "blue whale watching", Note: "Blue whales pass close to shore."},
		},
	}
	prefs := models.TripPreferences{
		SelectedActivities: []models.ActivityIntent{
			{Kind: models.ActivityCustom, Label: "whale watching", Priority: models.PriorityMustDo},
		},
	}

	c := p.scoreArea(ua, prefs, nil)
	assert.Equal(t, "blue whale watching", c.MatchedActivity)
	assert.Equal(t, []string{"blue whale watching", "beach", "surf"}, c.BestFor)
	assert.Equal(t, "Blue whales pass close to shore.", c.Description)
	// fit 0.1 unmatched, vibe 0.5, base 0.6, bonus 0.3
	assert.InDelta(t, 0.5*0.1+0.1*0.5+0.2*0.6+0.3, c.OverallScore, 1e-9)
}

func TestScoreArea_OverallClampedToZero(t *testing.T) {
	p := DefaultParams()
	p.ConflictPenalty = 5
	ua := &universeArea{
		area:   models.KnowledgeArea{Name: "Nowhere", NotIdealFor: []string{"surf"}},
		source: models.SourceSocial,
	}
	c := p.scoreArea(ua, models.TripPreferences{SelectedActivities: intents(models.ActivitySurf)}, nil)
	assert.Zero(t, c.OverallScore)
}
