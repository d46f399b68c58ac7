package models

import (
	"fmt"
	"strings"
)

// ActivityKind names a category of activity. Unknown values are allowed and
// are treated as custom activities by the effort model.
type ActivityKind string

const (
	ActivitySurf          ActivityKind = "surf"
	ActivitySnorkel       ActivityKind = "snorkel"
	ActivitySwim          ActivityKind = "swim"
	ActivityDive          ActivityKind = "dive"
	ActivityBeach         ActivityKind = "beach"
	ActivityRelax         ActivityKind = "relax"
	ActivityHike          ActivityKind = "hike"
	ActivityTrek          ActivityKind = "trek"
	ActivityMultiDayTrek  ActivityKind = "multi_day_trek"
	ActivityAdventure     ActivityKind = "adventure"
	ActivityWildlife      ActivityKind = "wildlife"
	ActivityWhaleWatching ActivityKind = "whale_watching"
	ActivityKayak         ActivityKind = "kayak"
	ActivityRafting       ActivityKind = "rafting"
	ActivityZipline       ActivityKind = "zipline"
	ActivityYoga          ActivityKind = "yoga"
	ActivitySpa           ActivityKind = "spa"
	ActivityCultural      ActivityKind = "cultural"
	ActivityFoodTour      ActivityKind = "food_tour"
	ActivityMeal          ActivityKind = "meal"
	ActivityDinner        ActivityKind = "dinner"
	ActivitySunset        ActivityKind = "sunset"
	ActivityNightlife     ActivityKind = "nightlife"
	ActivityShopping      ActivityKind = "shopping"
	ActivityFishing       ActivityKind = "fishing"
	ActivityTransfer      ActivityKind = "transfer"
	ActivityCustom        ActivityKind = "custom"
)

// NormalizeTag folds tag spellings ("Whale Watching", "whale-watching") to
// the ActivityKind form ("whale_watching").
func NormalizeTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

type TimeBlock string

const (
	BlockEarlyMorning TimeBlock = "early-morning"
	BlockMorning      TimeBlock = "morning"
	BlockMidday       TimeBlock = "midday"
	BlockAfternoon    TimeBlock = "afternoon"
	BlockEvening      TimeBlock = "evening"
	BlockNight        TimeBlock = "night"
)

// ScheduledActivity is an activity placed on a day.
type ScheduledActivity struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
	Kind          ActivityKind `json:"kind" yaml:"kind"`
	Day           int          `json:"day" yaml:"day"`
	TimeBlock     TimeBlock    `json:"time_block,omitempty" yaml:"time_block,omitempty"`
	StartTime     string       `json:"start_time" yaml:"start_time"` // HH:MM
	EndTime       string       `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	DurationHours float64      `json:"duration_hours,omitempty" yaml:"duration_hours,omitempty"`
	EffortCost    float64      `json:"effort_cost,omitempty" yaml:"effort_cost,omitempty"`
}

// StartMinutes returns the start time in minutes after midnight.
func (a ScheduledActivity) StartMinutes() (int, bool) {
	return ParseClock(a.StartTime)
}

// EndMinutes returns EndTime, or StartTime plus DurationHours when EndTime is empty.
func (a ScheduledActivity) EndMinutes() (int, bool) {
	if a.EndTime != "" {
		return ParseClock(a.EndTime)
	}
	start, ok := a.StartMinutes()
	if !ok {
		return 0, false
	}
	return start + int(a.DurationHours*60), true
}

// ParseClock parses "HH:MM" into minutes after midnight. "24:00" is accepted.
func ParseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

type ItineraryDay struct {
	Day           int                 `json:"day" yaml:"day"` // 1-based
	Base          string              `json:"base,omitempty" yaml:"base,omitempty"`
	IsTransferDay bool                `json:"is_transfer_day,omitempty" yaml:"is_transfer_day,omitempty"`
	Activities    []ScheduledActivity `json:"activities" yaml:"activities"`
}

// HasTransfer reports whether the day is flagged as a transfer day or holds a transfer activity.
func (d ItineraryDay) HasTransfer() bool {
	if d.IsTransferDay {
		return true
	}
	for _, a := range d.Activities {
		if a.Kind == ActivityTransfer {
			return true
		}
	}
	return false
}

type Stay struct {
	Base   string `json:"base" yaml:"base"`
	Nights int    `json:"nights" yaml:"nights"`
}

// Itinerary is a finalized day-by-day schedule produced downstream of area discovery.
type Itinerary struct {
	Days  []ItineraryDay `json:"days" yaml:"days"`
	Stays []Stay         `json:"stays,omitempty" yaml:"stays,omitempty"`
}

// PlannedActivity is one slot of an activity distribution.
type PlannedActivity struct {
	Kind       ActivityKind `json:"kind"`
	Label      string       `json:"label,omitempty"`
	Priority   Priority     `json:"priority"`
	EffortCost float64      `json:"effort_cost"`
	Overflow   bool         `json:"overflow,omitempty"`
}

// Slot is a free time range returned by the slot finder.
type Slot struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Block TimeBlock `json:"block"`
}
