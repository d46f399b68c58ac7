package areas

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the coefficients of the aggregate area score.
type Weights struct {
	ActivityFit float64 `yaml:"activity_fit"`
	VibeMatch   float64 `yaml:"vibe_match"`
	Base        float64 `yaml:"base"`
}

// Params holds every tunable of area discovery and its validation passes.
type Params struct {
	Weights Weights `yaml:"weights"`

	// activity fit
	PrimaryStrengths    int     `yaml:"primary_strengths"`
	MatchPoint          float64 `yaml:"match_point"`
	PrimaryBonus        float64 `yaml:"primary_bonus"`
	MatchedFitBoost     float64 `yaml:"matched_fit_boost"`
	UnmatchedFit        float64 `yaml:"unmatched_fit"`
	NoActivitiesFit     float64 `yaml:"no_activities_fit"`
	ConflictTopN        int     `yaml:"conflict_top_n"`
	ConflictPenalty     float64 `yaml:"conflict_penalty"`
	NoVibeMatch         float64 `yaml:"no_vibe_match"`
	SpecificBonus       float64 `yaml:"specific_bonus"`
	EvidencePerMention  float64 `yaml:"evidence_per_mention"`
	EvidenceBonusCap    float64 `yaml:"evidence_bonus_cap"`
	BudgetFit           float64 `yaml:"budget_fit"`
	SentimentWeight     float64 `yaml:"sentiment_weight"`
	CuratedConfidence   float64 `yaml:"curated_confidence"`
	KnowledgeConfidence float64 `yaml:"knowledge_confidence"`
	SocialConfidence    float64 `yaml:"social_confidence"`

	// destination lookup
	MinWordLength int `yaml:"min_word_length"`

	// selection
	MinResults int     `yaml:"min_results"`
	MaxResults int     `yaml:"max_results"`
	PadScore   float64 `yaml:"pad_score"`

	// geographic validation
	MaxDistanceKm float64 `yaml:"max_distance_km"`

	// inventory validation
	BoundingBoxDelta   float64 `yaml:"bounding_box_delta"`
	MinHotelRating     float64 `yaml:"min_hotel_rating"`
	CountryFallbackCap int     `yaml:"country_fallback_cap"`
	HealthyHotelCount  int     `yaml:"healthy_hotel_count"`
	MinSurvivingAreas  int     `yaml:"min_surviving_areas"`
}

func DefaultParams() Params {
	return Params{
		Weights: Weights{
			ActivityFit: 0.5,
			VibeMatch:   0.1,
			Base:        0.2,
		},
		PrimaryStrengths:    2,
		MatchPoint:          1,
		PrimaryBonus:        0.5,
		MatchedFitBoost:     0.2,
		UnmatchedFit:        0.1,
		NoActivitiesFit:     0.5,
		ConflictTopN:        2,
		ConflictPenalty:     0.2,
		NoVibeMatch:         0.5,
		SpecificBonus:       0.3,
		EvidencePerMention:  0.02,
		EvidenceBonusCap:    0.1,
		BudgetFit:           0.5,
		SentimentWeight:     0.1,
		CuratedConfidence:   0.8,
		KnowledgeConfidence: 0.6,
		SocialConfidence:    0.5,

		MinWordLength: 4,

		MinResults: 5,
		MaxResults: 10,
		PadScore:   0.3,

		MaxDistanceKm: 150,

		BoundingBoxDelta:   0.1,
		MinHotelRating:     3.5,
		CountryFallbackCap: 10,
		HealthyHotelCount:  2,
		MinSurvivingAreas:  2,
	}
}

// LoadParamsFile reads a YAML file over the defaults; keys absent from the
// file keep their default value. On error the defaults are returned.
func LoadParamsFile(path string) (Params, error) {
	p := DefaultParams()
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params file: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return DefaultParams(), fmt.Errorf("unmarshal params: %w", err)
	}
	return p, nil
}
