// Package tradeoffs finds structurally incompatible preference combinations
// and applies the resolution a traveller picks for them.
package tradeoffs

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-tripcore/internal/app/domain/effort"
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

// Thresholds used by the predicates.
type Thresholds struct {
	HeavySurfDays       int `yaml:"heavy_surf_days"`
	ManyAreas           int `yaml:"many_areas"`
	ShortTripNights     int `yaml:"short_trip_nights"`
	YoungChildAge       int `yaml:"young_child_age"`
	MultiBaseMinimum    int `yaml:"multi_base_minimum"`
	ReducedSurfDays     int `yaml:"reduced_surf_days"`
	TrimmedAreas        int `yaml:"trimmed_areas"`
	ResolvedBaseCeiling int `yaml:"resolved_base_ceiling"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HeavySurfDays:       3,
		ManyAreas:           3,
		ShortTripNights:     7,
		YoungChildAge:       6,
		MultiBaseMinimum:    2,
		ReducedSurfDays:     2,
		TrimmedAreas:        2,
		ResolvedBaseCeiling: 2,
	}
}

var calmWaterKinds = []models.ActivityKind{
	models.ActivitySwim, models.ActivitySnorkel, models.ActivityDive, models.ActivityKayak,
}

var adventureKinds = []models.ActivityKind{
	models.ActivityHike, models.ActivityTrek, models.ActivityMultiDayTrek, models.ActivityAdventure,
}

var beachKinds = []models.ActivityKind{models.ActivityBeach, models.ActivityRelax}

var partyVibes = []string{"lively", "party", "nightlife"}

var drivePhrases = []string{"long drive", "driving", "road trip", "car journey"}

// predicate inspects preferences and returns a tradeoff when it applies.
type predicate func(d *Detector, p models.TripPreferences) (models.Tradeoff, bool)

// Detector runs every conflict predicate over a set of preferences.
type Detector struct {
	thresholds Thresholds
	effort     *effort.Model
	predicates []predicate
}

// NewDetector builds a Detector. A nil effort model uses the default one.
func NewDetector(t Thresholds, m *effort.Model) *Detector {
	if m == nil {
		m = effort.Default()
	}
	return &Detector{
		thresholds: t,
		effort:     m,
		predicates: []predicate{
			detectCalmWaterVsSurf,
			detectSingleBaseVsManyAreas,
			detectNightlifeWithKids,
			detectNoLongDrivesVsMultiBase,
			detectBeachVsAdventure,
			detectYoungKidsVsPartyVibe,
			detectPaceVsActivityLoad,
		},
	}
}

var defaultDetector = NewDetector(DefaultThresholds(), nil)

// Detect returns every tradeoff present in p, in predicate order.
func (d *Detector) Detect(p models.TripPreferences) []models.Tradeoff {
	out := []models.Tradeoff{}
	for _, pred := range d.predicates {
		if t, ok := pred(d, p); ok {
			out = append(out, t)
		}
	}
	return out
}

// DetectTradeoffs runs the default detector.
func DetectTradeoffs(p models.TripPreferences) []models.Tradeoff {
	return defaultDetector.Detect(p)
}

// WithDetected returns a copy of p whose detection history also holds every
// newly detected tradeoff. Entries already recorded are kept as they are.
func (d *Detector) WithDetected(p models.TripPreferences) models.TripPreferences {
	out := p.Clone()
	seen := make(map[string]bool, len(out.DetectedTradeoffs))
	for _, t := range out.DetectedTradeoffs {
		seen[t.ID] = true
	}
	for _, t := range d.Detect(p) {
		if !seen[t.ID] {
			out.DetectedTradeoffs = append(out.DetectedTradeoffs, t)
			seen[t.ID] = true
		}
	}
	return out
}

// Unresolved returns the detected tradeoffs with no resolution history entry.
func Unresolved(p models.TripPreferences) []models.Tradeoff {
	resolved := make(map[string]bool, len(p.ResolvedTradeoffs))
	for _, r := range p.ResolvedTradeoffs {
		resolved[r.TradeoffID] = true
	}
	out := []models.Tradeoff{}
	for _, t := range p.DetectedTradeoffs {
		if !resolved[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func newTradeoff(kind models.TradeoffType, title, description string, conflicts []string, options ...models.ResolutionOption) models.Tradeoff {
	options = append(options, models.ResolutionOption{
		ID:          models.CustomOptionID,
		Label:       "Something else",
		Description: "Describe how you would like to handle this and we will plan around it.",
		Impact:      "Your note is passed to the planner as written.",
	})
	return models.Tradeoff{
		ID:          string(kind),
		Type:        kind,
		Title:       title,
		Description: description,
		Conflicts:   conflicts,
		Options:     options,
	}
}

func findActivity(p models.TripPreferences, kind models.ActivityKind) (models.ActivityIntent, bool) {
	for _, a := range p.SelectedActivities {
		if a.Kind == kind {
			return a, true
		}
	}
	return models.ActivityIntent{}, false
}

func needsCalmWater(a models.ActivityIntent) bool {
	if a.Kind == models.ActivitySurf {
		return false
	}
	if a.RequiresCalmWater {
		return true
	}
	for _, k := range calmWaterKinds {
		if a.Kind == k {
			return true
		}
	}
	return false
}

func mustDoOf(p models.TripPreferences, kinds []models.ActivityKind) []models.ActivityIntent {
	var out []models.ActivityIntent
	for _, a := range p.SelectedActivities {
		if !a.IsMustDo() {
			continue
		}
		for _, k := range kinds {
			if a.Kind == k {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func prefersSingleBase(p models.TripPreferences) bool {
	return p.BasePreference == models.BasePreferenceSingle || p.MaxBases == 1
}

func requestedBases(p models.TripPreferences) int {
	if len(p.MustVisitAreas) > p.MaxBases {
		return len(p.MustVisitAreas)
	}
	return p.MaxBases
}

func isDriveHardNo(s string) bool {
	folded := textutil.Fold(s)
	for _, phrase := range drivePhrases {
		if strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}

func isPartyVibe(v string) bool {
	folded := textutil.Fold(v)
	for _, pv := range partyVibes {
		if strings.Contains(folded, pv) {
			return true
		}
	}
	return false
}

func detectCalmWaterVsSurf(d *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	surf, ok := findActivity(p, models.ActivitySurf)
	if !ok || surf.TargetDays < d.thresholds.HeavySurfDays {
		return models.Tradeoff{}, false
	}
	var calm []string
	for _, a := range p.SelectedActivities {
		if needsCalmWater(a) {
			calm = append(calm, a.Text())
		}
	}
	if len(calm) == 0 {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffCalmWaterVsSurf,
		"Surf breaks vs. calm water",
		"Beaches with consistent surf rarely have the calm, clear water that swimming and snorkelling need.",
		[]string{
			fmt.Sprintf("Surf on %d days", surf.TargetDays),
			fmt.Sprintf("Calm water for %s", strings.Join(calm, ", ")),
		},
		models.ResolutionOption{
			ID:          "reduce_surf_days",
			Label:       "Surf fewer days",
			Description: fmt.Sprintf("Keep surfing to %d days and base yourself near calm bays.", d.thresholds.ReducedSurfDays),
			Impact:      "More time for snorkelling and swimming.",
		},
		models.ResolutionOption{
			ID:          "split_bases",
			Label:       "Split the trip",
			Description: "Stay in a surf town first, then move to a calm-water base.",
			Impact:      "Adds one transfer day.",
		},
		models.ResolutionOption{
			ID:          "drop_calm_water",
			Label:       "Prioritise surf",
			Description: "Make calm-water activities optional and stay on the surf coast.",
			Impact:      "Calm-water activities become nice-to-have.",
		},
	), true
}

func detectSingleBaseVsManyAreas(d *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	if !prefersSingleBase(p) {
		return models.Tradeoff{}, false
	}
	if len(p.MustVisitAreas) < d.thresholds.ManyAreas || p.EffectiveTripLength() > d.thresholds.ShortTripNights {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffSingleBaseVsManyAreas,
		"One base vs. many areas",
		"Seeing several areas on a short trip from a single base means long day trips.",
		[]string{
			"Prefers a single base",
			fmt.Sprintf("Wants to visit %d areas in %d nights", len(p.MustVisitAreas), p.EffectiveTripLength()),
		},
		models.ResolutionOption{
			ID:          "day_trips",
			Label:       "One base, day trips",
			Description: "Stay in one place and visit the other areas as day trips.",
			Impact:      "Some days include 1-3 hours of travel.",
		},
		models.ResolutionOption{
			ID:          "two_bases",
			Label:       "Allow two bases",
			Description: "Split the stay between two well-placed bases.",
			Impact:      "One transfer, shorter day trips.",
		},
		models.ResolutionOption{
			ID:          "trim_areas",
			Label:       "Focus on fewer areas",
			Description: fmt.Sprintf("Keep the first %d areas and skip the rest.", d.thresholds.TrimmedAreas),
			Impact:      "Less ground covered, more time in each place.",
		},
	), true
}

func detectNightlifeWithKids(_ *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	if !p.HasActivity(models.ActivityNightlife) || !p.Party.HasChildren() {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffNightlifeWithKids,
		"Nightlife with children",
		"Late nights out are hard to combine with travelling children.",
		[]string{"Nightlife selected", "Travelling with children"},
		models.ResolutionOption{
			ID:          "drop_nightlife",
			Label:       "Skip nightlife",
			Description: "Remove nightlife from the plan.",
			Impact:      "Evenings stay family focused.",
		},
		models.ResolutionOption{
			ID:          "demote_nightlife",
			Label:       "Nightlife if it works out",
			Description: "Keep nightlife as a nice-to-have.",
			Impact:      "Only scheduled when evenings are free.",
		},
		models.ResolutionOption{
			ID:          "adults_night_out",
			Label:       "Adults' night out",
			Description: "Plan one evening with childcare arranged.",
			Impact:      "Requires a babysitter or kids club.",
		},
	), true
}

func detectNoLongDrivesVsMultiBase(d *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	var driveNo string
	for _, h := range p.HardNos {
		if isDriveHardNo(h) {
			driveNo = h
			break
		}
	}
	if driveNo == "" || requestedBases(p) < d.thresholds.MultiBaseMinimum {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffNoLongDrivesVsBases,
		"No long drives vs. several bases",
		"Moving between bases usually means a few hours on the road.",
		[]string{
			fmt.Sprintf("Hard no: %q", driveNo),
			fmt.Sprintf("%d bases requested", requestedBases(p)),
		},
		models.ResolutionOption{
			ID:          "single_base",
			Label:       "Stay in one base",
			Description: "Pick one base and avoid transfers altogether.",
			Impact:      "No long drives, fewer areas.",
		},
		models.ResolutionOption{
			ID:          "close_bases",
			Label:       "Two nearby bases",
			Description: fmt.Sprintf("Cap the trip at %d bases that are close together.", d.thresholds.ResolvedBaseCeiling),
			Impact:      "One short transfer.",
		},
		models.ResolutionOption{
			ID:          "accept_drives",
			Label:       "Accept some driving",
			Description: "Drop the no-long-drives rule for transfer days.",
			Impact:      "Transfers of 3+ hours become possible.",
		},
	), true
}

func detectBeachVsAdventure(_ *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	beach := mustDoOf(p, beachKinds)
	adventure := mustDoOf(p, adventureKinds)
	if len(beach) == 0 || len(adventure) == 0 {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffBeachVsAdventure,
		"Beach time vs. adventure",
		"Relaxed beach areas and hiking country are often far apart.",
		[]string{
			fmt.Sprintf("Must-do: %s", beach[0].Text()),
			fmt.Sprintf("Must-do: %s", adventure[0].Text()),
		},
		models.ResolutionOption{
			ID:          "demote_adventure",
			Label:       "Beach first",
			Description: "Keep beach time as the priority; adventure becomes optional.",
			Impact:      "Hiking only where it fits near the coast.",
		},
		models.ResolutionOption{
			ID:          "demote_beach",
			Label:       "Adventure first",
			Description: "Prioritise hiking; beach time becomes optional.",
			Impact:      "Bases chosen for trail access.",
		},
		models.ResolutionOption{
			ID:          "alternate_days",
			Label:       "Alternate days",
			Description: "Keep both and alternate active and rest days.",
			Impact:      "Needs an area that offers both.",
		},
	), true
}

func detectYoungKidsVsPartyVibe(d *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	if !p.Party.HasYoungChildren(d.thresholds.YoungChildAge) {
		return models.Tradeoff{}, false
	}
	var vibe string
	for _, v := range p.VibePreferences {
		if isPartyVibe(v) {
			vibe = v
			break
		}
	}
	if vibe == "" {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffYoungKidsVsPartyVibe,
		"Young children vs. party vibe",
		"Lively party areas tend to be loud late at night, which is tough with young children.",
		[]string{"Travelling with young children", fmt.Sprintf("Vibe: %s", vibe)},
		models.ResolutionOption{
			ID:          "drop_party_vibe",
			Label:       "Quieter areas",
			Description: "Remove the party vibe from the search.",
			Impact:      "Areas ranked for calm evenings.",
		},
		models.ResolutionOption{
			ID:          "family_lively",
			Label:       "Lively but family friendly",
			Description: "Look for areas with energy during the day and quiet nights.",
			Impact:      "Party vibe replaced with family-friendly.",
		},
		models.ResolutionOption{
			ID:          "keep_vibe",
			Label:       "Keep the vibe",
			Description: "Stay somewhere lively and pick quiet accommodation.",
			Impact:      "Some noise at night is likely.",
		},
	), true
}

func detectPaceVsActivityLoad(d *Detector, p models.TripPreferences) (models.Tradeoff, bool) {
	days := p.EffectiveTripLength()
	pace := p.EffectivePace()
	demand := d.effort.TotalDemand(p.SelectedActivities, days)
	capacity := d.effort.DailyBudget(pace) * float64(days)
	if demand <= capacity {
		return models.Tradeoff{}, false
	}
	return newTradeoff(models.TradeoffPaceVsActivityLoad,
		"Pace vs. must-do list",
		"The must-do activities need more energy than the chosen pace allows across the trip.",
		[]string{
			fmt.Sprintf("%s pace allows %.1f effort points over %d days", pace, capacity, days),
			fmt.Sprintf("Must-do activities need %.1f points", demand),
		},
		models.ResolutionOption{
			ID:          "increase_pace",
			Label:       "Pick up the pace",
			Description: "Move to the next faster pace.",
			Impact:      "Fuller days.",
		},
		models.ResolutionOption{
			ID:          "reduce_targets",
			Label:       "Fewer repeat days",
			Description: "Reduce each repeated must-do by one day.",
			Impact:      "Less repetition, same variety.",
		},
		models.ResolutionOption{
			ID:          "demote_last_must_do",
			Label:       "Make one optional",
			Description: "Turn the last must-do into a nice-to-have.",
			Impact:      "One activity only if time allows.",
		},
	), true
}
