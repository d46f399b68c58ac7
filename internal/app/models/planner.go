package models

// TradeoffReport is the outcome of a detection pass. Preferences carries the
// newly detected tradeoffs appended to DetectedTradeoffs.
type TradeoffReport struct {
	Preferences TripPreferences `json:"preferences"`
	Detected    []Tradeoff      `json:"detected"`
	Unresolved  []Tradeoff      `json:"unresolved"`
}

// DiscoverOptions selects the optional validation passes run after scoring.
type DiscoverOptions struct {
	ValidateGeo    bool `json:"validate_geo" yaml:"validate_geo"`
	ValidateHotels bool `json:"validate_hotels" yaml:"validate_hotels"`
}

type DiscoveryReport struct {
	DiscoveryResult
	Rejected       []RejectedArea  `json:"rejected_areas,omitempty"`
	Excluded       []AreaCandidate `json:"excluded_areas,omitempty"`
	GeoValidated   bool            `json:"geo_validated"`
	HotelValidated bool            `json:"hotel_validated"`
	Cached         bool            `json:"cached"`
}

// Clone returns a deep copy of r, so cached reports stay untouched by callers.
func (r DiscoveryReport) Clone() DiscoveryReport {
	r.Areas = cloneAreas(r.Areas)
	r.Excluded = cloneAreas(r.Excluded)
	if r.Rejected != nil {
		rejected := make([]RejectedArea, len(r.Rejected))
		for i, ra := range r.Rejected {
			ra.Area = ra.Area.Clone()
			rejected[i] = ra
		}
		r.Rejected = rejected
	}
	return r
}

// ScheduleResult is a draft itinerary built from the activity distribution.
type ScheduleResult struct {
	Itinerary   Itinerary         `json:"itinerary"`
	Unplaced    []PlannedActivity `json:"unplaced,omitempty"`
	DailyBudget float64           `json:"daily_budget"`
	TotalDemand float64           `json:"total_demand"`
	DayEffort   []float64         `json:"day_effort"`
}

type TradeoffsRequest struct {
	Preferences TripPreferences `json:"preferences" yaml:"preferences"`
}

type ResolveRequest struct {
	Preferences TripPreferences `json:"preferences" yaml:"preferences"`
	TradeoffID  string          `json:"tradeoff_id" yaml:"tradeoff_id" binding:"required"`
	OptionID    string          `json:"option_id" yaml:"option_id" binding:"required"`
	CustomText  string          `json:"custom_text,omitempty" yaml:"custom_text,omitempty"`
}

type DiscoverRequest struct {
	Preferences TripPreferences `json:"preferences" yaml:"preferences"`
	Evidence    []Evidence      `json:"evidence,omitempty" yaml:"evidence,omitempty"`
	Options     DiscoverOptions `json:"options" yaml:"options"`
}

type ScheduleRequest struct {
	Preferences TripPreferences `json:"preferences" yaml:"preferences"`
}

type QualityRequest struct {
	Itinerary   Itinerary       `json:"itinerary" yaml:"itinerary"`
	Preferences TripPreferences `json:"preferences" yaml:"preferences"`
}
