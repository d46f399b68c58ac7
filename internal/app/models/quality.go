package models

import "github.com/google/uuid"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type CheckCategory string

const (
	CategoryActivityCoverage CheckCategory = "activity_coverage"
	CategoryIntensity        CheckCategory = "intensity_budget"
	CategoryLogistics        CheckCategory = "logistics"
	CategoryTiming           CheckCategory = "timing"
	CategoryHardNo           CheckCategory = "hard_no"
	CategoryDining           CheckCategory = "dining"
	CategoryRealism          CheckCategory = "timing_realism"
)

type QualityCheckItem struct {
	ID          string        `json:"id"`
	Category    CheckCategory `json:"category"`
	Severity    Severity      `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Impact      string        `json:"impact,omitempty"`
	Suggestion  string        `json:"suggestion,omitempty"`
	Day         int           `json:"day,omitempty"`
}

// QualityCheckResult is the outcome of the quality gate. Passed is true iff
// no item has error severity.
type QualityCheckResult struct {
	RunID           uuid.UUID          `json:"run_id"`
	Passed          bool               `json:"passed"`
	Score           int                `json:"score"`
	Checks          []QualityCheckItem `json:"checks"`
	Summary         string             `json:"summary"`
	MustResolve     []string           `json:"must_resolve"`
	Recommendations []string           `json:"recommendations"`
}
