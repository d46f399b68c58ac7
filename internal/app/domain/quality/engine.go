// Package quality scores a finished itinerary and blocks finalization while
// error-severity issues remain.
package quality

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/domain/effort"
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
)

const (
	startScore         = 100
	errorPenalty       = 15
	warningPenalty     = 5
	infoPenalty        = 1
	maxRecommendations = 5
)

type check func(e *Engine, it models.Itinerary, prefs models.TripPreferences) []models.QualityCheckItem

// checks run in this order; items keep it in the result.
var checks = []check{
	(*Engine).checkActivityCoverage,
	(*Engine).checkIntensity,
	(*Engine).checkLogistics,
	(*Engine).checkTiming,
	(*Engine).checkHardNos,
	(*Engine).checkDining,
	(*Engine).checkRealism,
}

var categoryOrder = []models.CheckCategory{
	models.CategoryHardNo,
	models.CategoryActivityCoverage,
	models.CategoryTiming,
	models.CategoryIntensity,
	models.CategoryLogistics,
	models.CategoryDining,
	models.CategoryRealism,
}

var recommendations = map[models.CheckCategory]string{
	models.CategoryHardNo:           "Remove or replace activities that conflict with your hard nos.",
	models.CategoryActivityCoverage: "Make room for every must-do activity on the requested number of days.",
	models.CategoryTiming:           "Re-space activities so none overlap and connections have some slack.",
	models.CategoryIntensity:        "Rebalance effort so each day fits the chosen pace.",
	models.CategoryLogistics:        "Cut down on moves between bases.",
	models.CategoryDining:           "Book dinners for the evenings that have none.",
	models.CategoryRealism:          "Keep arrival mornings and departure afternoons light.",
}

type Engine struct {
	effort *effort.Model
	logger *zap.Logger
	newID  func() uuid.UUID
}

// NewEngine builds a quality engine. A nil effort model uses the defaults.
func NewEngine(m *effort.Model, log *zap.Logger) *Engine {
	if m == nil {
		m = effort.Default()
	}
	return &Engine{effort: m, logger: logger.OrNop(log), newID: uuid.New}
}

// RunQualityChecks runs every check over the itinerary. Passed is true iff no
// item has error severity, independent of the score.
func (e *Engine) RunQualityChecks(ctx context.Context, it models.Itinerary, prefs models.TripPreferences) models.QualityCheckResult {
	_, span := otel.Tracer("QualityCheck").Start(ctx, "RunQualityChecks", trace.WithAttributes(
		attribute.Int("itinerary.days", len(it.Days)),
		attribute.String("preferences.pace", string(prefs.EffectivePace())),
	))
	defer span.End()

	l := e.logger.With(zap.String("method", "RunQualityChecks"))

	items := []models.QualityCheckItem{}
	for _, c := range checks {
		items = append(items, c(e, it, prefs)...)
	}
	uniqueIDs(items)

	errs, warns, infos := countSeverities(items)
	res := models.QualityCheckResult{
		RunID:           e.newID(),
		Passed:          errs == 0,
		Score:           Score(errs, warns, infos),
		Checks:          items,
		MustResolve:     []string{},
		Recommendations: recommend(items),
	}
	for _, it := range items {
		if it.Severity == models.SeverityError {
			res.MustResolve = append(res.MustResolve, it.ID)
		}
	}
	res.Summary = summarize(res.Passed, res.Score, errs, warns, infos)

	span.SetAttributes(
		attribute.Int("quality.score", res.Score),
		attribute.Bool("quality.passed", res.Passed),
		attribute.Int("quality.errors", errs),
	)
	l.Info("Quality checks complete",
		zap.String("run_id", res.RunID.String()),
		zap.Bool("passed", res.Passed),
		zap.Int("score", res.Score),
		zap.Int("errors", errs),
		zap.Int("warnings", warns),
		zap.Int("infos", infos))

	return res
}

// Score is 100 less 15 per error, 5 per warning and 1 per info, floored at 0.
func Score(errors, warnings, infos int) int {
	s := startScore - errorPenalty*errors - warningPenalty*warnings - infoPenalty*infos
	return max(0, s)
}

func countSeverities(items []models.QualityCheckItem) (errs, warns, infos int) {
	for _, it := range items {
		switch it.Severity {
		case models.SeverityError:
			errs++
		case models.SeverityWarning:
			warns++
		case models.SeverityInfo:
			infos++
		}
	}
	return errs, warns, infos
}

// uniqueIDs suffixes repeated ids so each item can be referenced.
func uniqueIDs(items []models.QualityCheckItem) {
	seen := map[string]int{}
	for i := range items {
		id := items[i].ID
		seen[id]++
		if n := seen[id]; n > 1 {
			items[i].ID = fmt.Sprintf("%s-%d", id, n)
		}
	}
}

// recommend returns one line per affected category, categories with errors
// first, capped at maxRecommendations.
func recommend(items []models.QualityCheckItem) []string {
	worst := map[models.CheckCategory]int{}
	for _, it := range items {
		rank := severityRank(it.Severity)
		if rank > worst[it.Category] {
			worst[it.Category] = rank
		}
	}
	out := []string{}
	seen := map[string]bool{}
	for rank := 3; rank >= 1; rank-- {
		for _, c := range categoryOrder {
			if worst[c] != rank {
				continue
			}
			r := recommendations[c]
			if r == "" || seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, r)
			if len(out) == maxRecommendations {
				return out
			}
		}
	}
	return out
}

func severityRank(s models.Severity) int {
	switch s {
	case models.SeverityError:
		return 3
	case models.SeverityWarning:
		return 2
	case models.SeverityInfo:
		return 1
	default:
		return 0
	}
}

func summarize(passed bool, score, errs, warns, infos int) string {
	switch {
	case errs+warns+infos == 0:
		return "Itinerary passed every quality check."
	case passed:
		return fmt.Sprintf("Itinerary can be finalized (score %d): %d warnings and %d suggestions to review.", score, warns, infos)
	default:
		return fmt.Sprintf("Itinerary is blocked (score %d): %d errors must be resolved, plus %d warnings and %d suggestions.", score, errs, warns, infos)
	}
}
