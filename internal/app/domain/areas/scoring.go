package areas

import (
	"fmt"
	"math"
	"strings"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func indexOfTag(tags []string, tag string) int {
	want := models.NormalizeTag(tag)
	if want == "" {
		return -1
	}
	for i, t := range tags {
		if models.NormalizeTag(t) == want {
			return i
		}
	}
	return -1
}

func intentTag(in models.ActivityIntent) string {
	if in.Kind == models.ActivityCustom || in.Kind == "" {
		return in.Label
	}
	return string(in.Kind)
}

// activityFit scores how well bestFor covers the selected activities and
// returns the number of matched activities.
func (p Params) activityFit(bestFor []string, intents []models.ActivityIntent) (float64, int) {
	if len(intents) == 0 {
		return p.NoActivitiesFit, 0
	}
	weight := 0.0
	matched := 0
	for _, in := range intents {
		idx := indexOfTag(bestFor, intentTag(in))
		if idx < 0 {
			continue
		}
		matched++
		weight += p.MatchPoint
		if idx < p.PrimaryStrengths {
			weight += p.PrimaryBonus
		}
	}
	if matched == 0 {
		return p.UnmatchedFit, 0
	}
	return math.Min(1, weight/float64(len(intents))+p.MatchedFitBoost), matched
}

// conflictPenalty applies when one of the first ConflictTopN selected
// activities is listed in notIdealFor. Later activities are not checked.
func (p Params) conflictPenalty(notIdealFor []string, intents []models.ActivityIntent) float64 {
	for i, in := range intents {
		if i >= p.ConflictTopN {
			break
		}
		if indexOfTag(notIdealFor, intentTag(in)) >= 0 {
			return p.ConflictPenalty
		}
	}
	return 0
}

func (p Params) vibeMatch(vibeTags, wanted []string) float64 {
	if len(wanted) == 0 {
		return p.NoVibeMatch
	}
	hits := 0
	for _, v := range wanted {
		if indexOfTag(vibeTags, v) >= 0 {
			hits++
		}
	}
	return float64(hits) / float64(len(wanted))
}

func (p Params) evidenceBonus(mentions int) float64 {
	return math.Min(p.EvidenceBonusCap, p.EvidencePerMention*float64(mentions))
}

// confidence is the source confidence nudged by the mean evidence sentiment.
func (p Params) confidence(source models.AreaSource, evidence []models.Evidence) float64 {
	var base float64
	switch source {
	case models.SourceCurated:
		base = p.CuratedConfidence
	case models.SourceKnowledge:
		base = p.KnowledgeConfidence
	case models.SourceSocial:
		base = p.SocialConfidence
	default:
		base = p.PadScore
	}
	if len(evidence) == 0 {
		return clamp01(base)
	}
	sum := 0.0
	for _, ev := range evidence {
		sum += ev.Common().Sentiment
	}
	return clamp01(base + p.SentimentWeight*sum/float64(len(evidence)))
}

// suggestedNights sizes the stay from the number of matches, bounded by the
// trip length.
func suggestedNights(matches, tripLength int) int {
	var nights int
	switch {
	case matches >= 3:
		nights = min(4, tripLength/2)
	case matches >= 1:
		nights = min(3, tripLength/3)
	default:
		nights = 2
	}
	nights = min(nights, tripLength)
	return max(1, nights)
}

// resultCount returns how many areas a trip of tripLength nights should see.
func (p Params) resultCount(tripLength int) int {
	n := int(math.Ceil(float64(tripLength)/2)) + 2
	return max(p.MinResults, min(p.MaxResults, n))
}

type specificMatch struct {
	activity string
	note     string
	season   string
}

// specificTexts returns the free text of every selected activity, the form
// keyword tables are matched against.
func specificTexts(intents []models.ActivityIntent) []string {
	var out []string
	for _, in := range intents {
		t := strings.ReplaceAll(in.Text(), "_", " ")
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}

// findSpecific looks for a keyword-table entry or an attached note that
// matches one of texts for the area. The keyword table wins.
func findSpecific(area string, texts []string, table []models.SpecificActivityEntry, notes []models.SpecificActivityNote) (specificMatch, bool) {
	for _, text := range texts {
		folded := textutil.Fold(text)
		for _, entry := range table {
			if !mentions(entry.Areas, area) {
				continue
			}
			for _, kw := range entry.Keywords {
				if kw != "" && strings.Contains(folded, textutil.Fold(kw)) {
					return specificMatch{activity: entry.Activity, note: entry.Note, season: entry.Season}, true
				}
			}
		}
	}
	for _, text := range texts {
		for _, n := range notes {
			if textutil.ContainsEither(strings.ReplaceAll(n.Activity, "_", " "), text) {
				return specificMatch{activity: n.Activity, note: n.Note, season: n.Season}, true
			}
		}
	}
	return specificMatch{}, false
}

func (m specificMatch) describe(description string) string {
	prefix := m.note
	if m.season != "" {
		prefix = fmt.Sprintf("%s Best season: %s.", m.note, m.season)
	}
	if description == "" {
		return prefix
	}
	return prefix + " " + description
}

// promote moves tag to the front of tags, adding it when absent.
func promote(tags []string, tag string) []string {
	out := make([]string, 0, len(tags)+1)
	out = append(out, tag)
	for _, t := range tags {
		if models.NormalizeTag(t) != models.NormalizeTag(tag) {
			out = append(out, t)
		}
	}
	return out
}

// scoreArea turns a universe entry into a scored candidate.
func (p Params) scoreArea(ua *universeArea, prefs models.TripPreferences, table []models.SpecificActivityEntry) models.AreaCandidate {
	a := ua.area
	bestFor := append([]string(nil), a.BestFor...)
	fit, matches := p.activityFit(bestFor, prefs.SelectedActivities)
	penalty := p.conflictPenalty(a.NotIdealFor, prefs.SelectedActivities)
	vibe := p.vibeMatch(a.VibeTags, prefs.VibePreferences)
	conf := p.confidence(ua.source, ua.evidence)
	evBonus := p.evidenceBonus(len(ua.evidence))

	c := models.AreaCandidate{
		ID:               textutil.Slugify(a.Name),
		Name:             a.Name,
		Type:             a.Type,
		Description:      a.Description,
		Center:           a.Center,
		Source:           ua.source,
		ActivityFitScore: fit,
		VibeFitScore:     vibe,
		BudgetFitScore:   p.BudgetFit,
		ConfidenceScore:  conf,
		BestFor:          bestFor,
		NotIdealFor:      append([]string(nil), a.NotIdealFor...),
		VibeTags:         append([]string(nil), a.VibeTags...),
		Evidence:         append([]models.Evidence(nil), ua.evidence...),
	}

	specific := 0.0
	if m, ok := findSpecific(a.Name, specificTexts(prefs.SelectedActivities), table, ua.specific); ok {
		specific = p.SpecificBonus
		matches++
		c.Description = m.describe(c.Description)
		c.BestFor = promote(c.BestFor, m.activity)
		c.MatchedActivity = m.activity
	}

	c.OverallScore = clamp01(p.Weights.ActivityFit*fit +
		p.Weights.VibeMatch*vibe +
		p.Weights.Base*conf +
		specific + evBonus - penalty)
	c.SuggestedNights = suggestedNights(matches, prefs.EffectiveTripLength())
	return c
}

// padCandidate builds a flat-scored candidate for an untouched curated area.
func (p Params) padCandidate(a models.KnowledgeArea, tripLength int) models.AreaCandidate {
	return models.AreaCandidate{
		ID:               textutil.Slugify(a.Name),
		Name:             a.Name,
		Type:             a.Type,
		Description:      a.Description,
		Center:           a.Center,
		Source:           models.SourcePadding,
		ActivityFitScore: p.PadScore,
		VibeFitScore:     p.PadScore,
		BudgetFitScore:   p.BudgetFit,
		ConfidenceScore:  p.PadScore,
		OverallScore:     clamp01(p.PadScore),
		BestFor:          append([]string(nil), a.BestFor...),
		NotIdealFor:      append([]string(nil), a.NotIdealFor...),
		VibeTags:         append([]string(nil), a.VibeTags...),
		SuggestedNights:  suggestedNights(0, tripLength),
	}
}
