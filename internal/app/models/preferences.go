package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Pace string

const (
	PaceChill    Pace = "chill"
	PaceBalanced Pace = "balanced"
	PacePacked   Pace = "packed"
)

type Priority string

const (
	PriorityMustDo     Priority = "must-do"
	PriorityNiceToHave Priority = "nice-to-have"
)

type BasePreference string

const (
	BasePreferenceSingle   BasePreference = "single"
	BasePreferenceFlexible BasePreference = "flexible"
	BasePreferenceMultiple BasePreference = "multiple"
)

// DefaultTripLength is used whenever preferences carry no usable trip length.
const DefaultTripLength = 7

// ActivityIntent is one activity the traveller selected.
type ActivityIntent struct {
	Kind     ActivityKind `json:"kind" yaml:"kind"`
	Label    string       `json:"label,omitempty" yaml:"label,omitempty"` // free text for custom activities
	Priority Priority     `json:"priority" yaml:"priority"`
	// TargetDays is the number of distinct days requested; 0 means unspecified.
	TargetDays        int  `json:"target_days,omitempty" yaml:"target_days,omitempty"`
	RequiresCalmWater bool `json:"requires_calm_water,omitempty" yaml:"requires_calm_water,omitempty"`
}

// IsMustDo reports whether the intent is a must-do.
func (a ActivityIntent) IsMustDo() bool {
	return a.Priority == PriorityMustDo
}

// Text returns the free-text label when present, otherwise the kind.
func (a ActivityIntent) Text() string {
	if strings.TrimSpace(a.Label) != "" {
		return a.Label
	}
	return string(a.Kind)
}

// Targets returns TargetDays with the implicit minimum of one day.
func (a ActivityIntent) Targets() int {
	if a.TargetDays <= 0 {
		return 1
	}
	return a.TargetDays
}

type BudgetRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type DestinationContext struct {
	Name        string `json:"name" yaml:"name"`
	Center      LatLng `json:"center" yaml:"center"`
	CountryCode string `json:"country_code" yaml:"country_code"`
}

type TravelParty struct {
	Adults    int   `json:"adults" yaml:"adults"`
	Children  int   `json:"children" yaml:"children"`
	ChildAges []int `json:"child_ages,omitempty" yaml:"child_ages,omitempty"`
}

// HasChildren reports whether anyone under 18 is travelling.
func (p TravelParty) HasChildren() bool {
	return p.Children > 0 || len(p.ChildAges) > 0
}

// HasYoungChildren reports whether a child younger than maxAge is travelling.
// When ages are unknown but children are present the party is treated as young.
func (p TravelParty) HasYoungChildren(maxAge int) bool {
	if len(p.ChildAges) == 0 {
		return p.Children > 0
	}
	for _, age := range p.ChildAges {
		if age < maxAge {
			return true
		}
	}
	return false
}

// TripPreferences is the trip-level intent of one planning session. It is
// treated as a value: every transformation returns a new copy.
type TripPreferences struct {
	SessionID          uuid.UUID          `json:"session_id" yaml:"session_id"`
	SelectedActivities []ActivityIntent   `json:"selected_activities" yaml:"selected_activities"`
	HardNos            []string           `json:"hard_nos,omitempty" yaml:"hard_nos,omitempty"`
	VibePreferences    []string           `json:"vibe_preferences,omitempty" yaml:"vibe_preferences,omitempty"`
	Pace               Pace               `json:"pace" yaml:"pace"`
	TripLength         int                `json:"trip_length" yaml:"trip_length"` // nights
	MaxBases           int                `json:"max_bases,omitempty" yaml:"max_bases,omitempty"`
	BasePreference     BasePreference     `json:"base_preference,omitempty" yaml:"base_preference,omitempty"`
	MustVisitAreas     []string           `json:"must_visit_areas,omitempty" yaml:"must_visit_areas,omitempty"`
	BudgetPerNight     BudgetRange        `json:"budget_per_night" yaml:"budget_per_night"`
	Destination        DestinationContext `json:"destination" yaml:"destination"`
	Party              TravelParty        `json:"party" yaml:"party"`
	WantsPlannedDining bool               `json:"wants_planned_dining,omitempty" yaml:"wants_planned_dining,omitempty"`
	DetectedTradeoffs  []Tradeoff         `json:"detected_tradeoffs,omitempty" yaml:"detected_tradeoffs,omitempty"`
	ResolvedTradeoffs  []ResolvedTradeoff `json:"resolved_tradeoffs,omitempty" yaml:"resolved_tradeoffs,omitempty"`
}

// EffectiveTripLength returns TripLength or DefaultTripLength when unset.
func (p TripPreferences) EffectiveTripLength() int {
	if p.TripLength <= 0 {
		return DefaultTripLength
	}
	return p.TripLength
}

// EffectivePace returns Pace or balanced when unset or unknown.
func (p TripPreferences) EffectivePace() Pace {
	switch p.Pace {
	case PaceChill, PaceBalanced, PacePacked:
		return p.Pace
	default:
		return PaceBalanced
	}
}

// HasActivity reports whether any selected activity has one of the kinds.
func (p TripPreferences) HasActivity(kinds ...ActivityKind) bool {
	for _, a := range p.SelectedActivities {
		for _, k := range kinds {
			if a.Kind == k {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy so callers can derive new preferences without
// touching the receiver.
func (p TripPreferences) Clone() TripPreferences {
	out := p
	out.SelectedActivities = append([]ActivityIntent(nil), p.SelectedActivities...)
	out.HardNos = append([]string(nil), p.HardNos...)
	out.VibePreferences = append([]string(nil), p.VibePreferences...)
	out.MustVisitAreas = append([]string(nil), p.MustVisitAreas...)
	out.Party.ChildAges = append([]int(nil), p.Party.ChildAges...)
	out.DetectedTradeoffs = make([]Tradeoff, len(p.DetectedTradeoffs))
	for i, t := range p.DetectedTradeoffs {
		out.DetectedTradeoffs[i] = t.Clone()
	}
	out.ResolvedTradeoffs = append([]ResolvedTradeoff(nil), p.ResolvedTradeoffs...)
	return out
}

// ResolvedTradeoff is one append-only history entry.
type ResolvedTradeoff struct {
	TradeoffID     string    `json:"tradeoff_id" yaml:"tradeoff_id"`
	ChosenOptionID string    `json:"chosen_option_id" yaml:"chosen_option_id"`
	CustomText     string    `json:"custom_text,omitempty" yaml:"custom_text,omitempty"`
	ResolvedAt     time.Time `json:"resolved_at" yaml:"resolved_at"`
}
