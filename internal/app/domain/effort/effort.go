// Package effort models the physical and logistical intensity of activities
// and fits them into pace-appropriate days.
package effort

import (
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

// Params holds the effort model tunables.
type Params struct {
	DailyBudgets        map[models.Pace]float64 `yaml:"daily_budgets"`
	MustDoOverflow      float64                 `yaml:"must_do_overflow"`
	LongDurationHours   float64                 `yaml:"long_duration_hours"`
	LongDurationFactor  float64                 `yaml:"long_duration_factor"`
	ShortDurationHours  float64                 `yaml:"short_duration_hours"`
	ShortDurationFactor float64                 `yaml:"short_duration_factor"`
	DefaultCost         float64                 `yaml:"default_cost"`
	DefaultDuration     float64                 `yaml:"default_duration_hours"`
}

// DefaultParams returns the production tunables.
func DefaultParams() Params {
	return Params{
		DailyBudgets: map[models.Pace]float64{
			models.PaceChill:    3,
			models.PaceBalanced: 4,
			models.PacePacked:   5,
		},
		MustDoOverflow:      1,
		LongDurationHours:   4,
		LongDurationFactor:  1.5,
		ShortDurationHours:  1,
		ShortDurationFactor: 0.5,
		DefaultCost:         1,
		DefaultDuration:     2,
	}
}

// effortCosts is the static cost, in effort points, of each activity kind.
var effortCosts = map[models.ActivityKind]float64{
	models.ActivitySunset:        0.5,
	models.ActivityMeal:          0.5,
	models.ActivityDinner:        0.5,
	models.ActivityRelax:         0.5,
	models.ActivitySpa:           0.5,
	models.ActivityYoga:          1,
	models.ActivityBeach:         1,
	models.ActivitySwim:          1,
	models.ActivityShopping:      1,
	models.ActivityCultural:      1.5,
	models.ActivityFoodTour:      1.5,
	models.ActivitySnorkel:       1.5,
	models.ActivityFishing:       1.5,
	models.ActivityWildlife:      1.5,
	models.ActivityWhaleWatching: 1.5,
	models.ActivityNightlife:     1.5,
	models.ActivityKayak:         2,
	models.ActivitySurf:          2,
	models.ActivityZipline:       2,
	models.ActivityTransfer:      2,
	models.ActivityDive:          2.5,
	models.ActivityHike:          2.5,
	models.ActivityAdventure:     2.5,
	models.ActivityRafting:       3,
	models.ActivityTrek:          3,
	models.ActivityMultiDayTrek:  4,
}

// Model evaluates effort with a fixed set of Params.
type Model struct {
	params Params
}

// NewModel builds a Model. Missing budgets fall back to the defaults.
func NewModel(p Params) *Model {
	def := DefaultParams()
	if p.DailyBudgets == nil {
		p.DailyBudgets = def.DailyBudgets
	}
	if p.DefaultCost <= 0 {
		p.DefaultCost = def.DefaultCost
	}
	if p.DefaultDuration <= 0 {
		p.DefaultDuration = def.DefaultDuration
	}
	return &Model{params: p}
}

var defaultModel = NewModel(DefaultParams())

// Default returns the model built from DefaultParams.
func Default() *Model {
	return defaultModel
}

// Params returns a copy of the model's tunables.
func (m *Model) Params() Params {
	return m.params
}

// BaseCost returns the unscaled cost for kind. Unknown kinds cost DefaultCost.
func (m *Model) BaseCost(kind models.ActivityKind) float64 {
	if cost, ok := effortCosts[models.ActivityKind(models.NormalizeTag(string(kind)))]; ok {
		return cost
	}
	return m.params.DefaultCost
}

// ActivityCost returns the effort cost of kind, scaled for long or short
// durations. durationHours <= 0 means unspecified.
func (m *Model) ActivityCost(kind models.ActivityKind, durationHours float64) float64 {
	cost := m.BaseCost(kind)
	switch {
	case durationHours > m.params.LongDurationHours:
		cost *= m.params.LongDurationFactor
	case durationHours > 0 && durationHours < m.params.ShortDurationHours:
		cost *= m.params.ShortDurationFactor
	}
	return cost
}

// DayEffort sums the effort of the activities of one day.
func (m *Model) DayEffort(activities []models.ScheduledActivity) float64 {
	total := 0.0
	for _, a := range activities {
		total += m.ActivityCost(a.Kind, activityDuration(a))
	}
	return total
}

// DailyBudget returns the point budget for pace; unknown paces get balanced.
func (m *Model) DailyBudget(pace models.Pace) float64 {
	if budget, ok := m.params.DailyBudgets[pace]; ok {
		return budget
	}
	return m.params.DailyBudgets[models.PaceBalanced]
}

// CanAdd reports whether kind fits on a day holding existing. allowOverflow
// extends the budget by the must-do overflow allowance.
func (m *Model) CanAdd(existing []models.ScheduledActivity, kind models.ActivityKind, pace models.Pace, durationHours float64, allowOverflow bool) bool {
	limit := m.DailyBudget(pace)
	if allowOverflow {
		limit += m.params.MustDoOverflow
	}
	return m.DayEffort(existing)+m.ActivityCost(kind, durationHours) <= limit
}

// activityDuration prefers DurationHours and falls back to the start/end span.
func activityDuration(a models.ScheduledActivity) float64 {
	if a.DurationHours > 0 {
		return a.DurationHours
	}
	start, okStart := a.StartMinutes()
	end, okEnd := a.EndMinutes()
	if okStart && okEnd && end > start {
		return float64(end-start) / 60
	}
	return 0
}

// GetActivityEffortCost returns the effort cost of kind using the default model.
func GetActivityEffortCost(kind models.ActivityKind, durationHours float64) float64 {
	return defaultModel.ActivityCost(kind, durationHours)
}

// CalculateDayEffort sums a day's effort using the default model.
func CalculateDayEffort(activities []models.ScheduledActivity) float64 {
	return defaultModel.DayEffort(activities)
}

// DailyBudget returns the default budget for pace.
func DailyBudget(pace models.Pace) float64 {
	return defaultModel.DailyBudget(pace)
}

// CanAddActivity reports whether kind fits on a day using the default model.
func CanAddActivity(existing []models.ScheduledActivity, kind models.ActivityKind, pace models.Pace, durationHours float64, allowOverflow bool) bool {
	return defaultModel.CanAdd(existing, kind, pace, durationHours, allowOverflow)
}
