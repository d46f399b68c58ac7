package models

import "slices"

type AreaType string

const (
	AreaTown         AreaType = "town"
	AreaBeach        AreaType = "beach"
	AreaRegion       AreaType = "region"
	AreaNeighborhood AreaType = "neighborhood"
)

// AreaSource records where an area in the scoring universe came from.
type AreaSource string

const (
	SourceCurated   AreaSource = "curated"
	SourceKnowledge AreaSource = "knowledge"
	SourceSocial    AreaSource = "social"
	SourcePadding   AreaSource = "padding"
)

type GeoValidation string

const (
	GeoVerified   GeoValidation = "verified"
	GeoUnverified GeoValidation = "unverified"
	GeoRejected   GeoValidation = "rejected"
)

// KnowledgeArea is a curated knowledge-base entry for a named sub-area.
type KnowledgeArea struct {
	Name            string   `json:"name" yaml:"name"`
	Type            AreaType `json:"type" yaml:"type"`
	Description     string   `json:"description" yaml:"description"`
	Center          LatLng   `json:"center" yaml:"center"`
	Characteristics []string `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	BestFor         []string `json:"best_for" yaml:"best_for"`
	NotIdealFor     []string `json:"not_ideal_for,omitempty" yaml:"not_ideal_for,omitempty"`
	VibeTags        []string `json:"vibe_tags,omitempty" yaml:"vibe_tags,omitempty"`
}

// SpecificActivityEntry maps activity keywords to the areas of a destination
// known for them.
type SpecificActivityEntry struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Activity string   `json:"activity" yaml:"activity"`
	Areas    []string `json:"areas" yaml:"areas"`
	Note     string   `json:"note" yaml:"note"`
	Season   string   `json:"season,omitempty" yaml:"season,omitempty"`
}

// AreaCandidate is a scored sub-region proposed as a trip base.
type AreaCandidate struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             AreaType   `json:"type"`
	Description      string     `json:"description"`
	Center           LatLng     `json:"center"`
	Source           AreaSource `json:"source"`
	ActivityFitScore float64    `json:"activity_fit_score"`
	VibeFitScore     float64    `json:"vibe_fit_score"`
	BudgetFitScore   float64    `json:"budget_fit_score"`
	ConfidenceScore  float64    `json:"confidence_score"`
	OverallScore     float64    `json:"overall_score"`
	BestFor          []string   `json:"best_for"`
	NotIdealFor      []string   `json:"not_ideal_for,omitempty"`
	VibeTags         []string   `json:"vibe_tags,omitempty"`
	Evidence         []Evidence `json:"evidence,omitempty"`
	SuggestedNights  int        `json:"suggested_nights"`
	MatchedActivity  string     `json:"matched_activity,omitempty"`

	HotelCount           *int          `json:"hotel_count,omitempty"`
	LowHotelInventory    bool          `json:"low_hotel_inventory,omitempty"`
	NeedsHotelIndexing   bool          `json:"needs_hotel_indexing,omitempty"`
	GeoValidation        GeoValidation `json:"geo_validation,omitempty"`
	DistanceFromCenterKm *float64      `json:"distance_from_center_km,omitempty"`
	ResolvedCenter       *LatLng       `json:"resolved_center,omitempty"`
}

// Clone returns a copy sharing no slices or pointers with a.
func (a AreaCandidate) Clone() AreaCandidate {
	a.BestFor = slices.Clone(a.BestFor)
	a.NotIdealFor = slices.Clone(a.NotIdealFor)
	a.VibeTags = slices.Clone(a.VibeTags)
	a.Evidence = slices.Clone(a.Evidence)
	if a.HotelCount != nil {
		n := *a.HotelCount
		a.HotelCount = &n
	}
	if a.DistanceFromCenterKm != nil {
		d := *a.DistanceFromCenterKm
		a.DistanceFromCenterKm = &d
	}
	if a.ResolvedCenter != nil {
		c := *a.ResolvedCenter
		a.ResolvedCenter = &c
	}
	return a
}

func cloneAreas(areas []AreaCandidate) []AreaCandidate {
	if areas == nil {
		return nil
	}
	out := make([]AreaCandidate, len(areas))
	for i, a := range areas {
		out[i] = a.Clone()
	}
	return out
}

// RejectedArea is an area removed by geographic validation.
type RejectedArea struct {
	Area       AreaCandidate `json:"area"`
	Reason     string        `json:"reason"`
	DistanceKm float64       `json:"distance_km"`
}

type GeoValidationResult struct {
	Areas    []AreaCandidate `json:"areas"`
	Rejected []RejectedArea  `json:"rejected_areas"`
}

type HotelValidationResult struct {
	Areas    []AreaCandidate `json:"areas"`
	Excluded []AreaCandidate `json:"excluded,omitempty"`
}

// DiscoveryMode describes which universe the ranked areas came from.
type DiscoveryMode string

const (
	DiscoveryCurated  DiscoveryMode = "curated"
	DiscoveryEvidence DiscoveryMode = "evidence"
	DiscoveryNone     DiscoveryMode = "none"
)

type DiscoveryResult struct {
	Areas []AreaCandidate `json:"areas"`
	Mode  DiscoveryMode   `json:"mode"`
	// LowConfidence is set when no curated entry matched the destination and
	// scores rest on evidence alone.
	LowConfidence bool `json:"low_confidence"`
}
