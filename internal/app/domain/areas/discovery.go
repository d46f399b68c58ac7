// Package areas ranks candidate sub-areas of a destination against a
// traveller's preferences and cross-checks them against geography and hotel
// inventory.
package areas

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

type Engine struct {
	kb     KnowledgeBase
	params Params
	logger *zap.Logger
}

// NewEngine builds a discovery engine. A nil knowledge base uses the curated
// default tables.
func NewEngine(kb KnowledgeBase, params Params, log *zap.Logger) *Engine {
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}
	return &Engine{kb: kb, params: params, logger: logger.OrNop(log)}
}

func (e *Engine) Params() Params {
	return e.params
}

// DiscoverAreas ranks the area universe of the destination. The result holds
// between MinResults and MaxResults areas whenever any area data exists.
// Destinations unknown to the knowledge base are scored from evidence alone
// and flagged LowConfidence.
func (e *Engine) DiscoverAreas(ctx context.Context, prefs models.TripPreferences, evidence []models.Evidence) models.DiscoveryResult {
	_, span := otel.Tracer("AreaDiscovery").Start(ctx, "DiscoverAreas", trace.WithAttributes(
		attribute.String("destination.name", prefs.Destination.Name),
		attribute.Int("evidence.count", len(evidence)),
		attribute.Int("activities.count", len(prefs.SelectedActivities)),
	))
	defer span.End()

	l := e.logger.With(zap.String("method", "DiscoverAreas"), zap.String("destination", prefs.Destination.Name))

	universe, curated := resolveUniverse(e.kb, prefs.Destination.Name, evidence)
	table := e.kb.SpecificActivities(prefs.Destination.Name)

	scored := make([]models.AreaCandidate, 0, len(universe))
	for _, ua := range universe {
		scored = append(scored, e.params.scoreArea(ua, prefs, table))
	}

	mode := models.DiscoveryNone
	switch {
	case curated:
		mode = models.DiscoveryCurated
	case len(scored) > 0:
		mode = models.DiscoveryEvidence
	}

	if len(scored) < e.params.MinResults {
		before := len(scored)
		scored = e.pad(scored, prefs)
		if padded := len(scored) - before; padded > 0 {
			l.Debug("Padded area universe from curated country table", zap.Int("padded", padded))
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})
	if limit := e.params.resultCount(prefs.EffectiveTripLength()); len(scored) > limit {
		scored = scored[:limit]
	}

	result := models.DiscoveryResult{
		Areas:         scored,
		Mode:          mode,
		LowConfidence: mode != models.DiscoveryCurated,
	}

	span.SetAttributes(
		attribute.String("discovery.mode", string(mode)),
		attribute.Int("areas.count", len(scored)),
	)
	l.Info("Areas discovered",
		zap.String("mode", string(mode)),
		zap.Int("universe", len(universe)),
		zap.Int("returned", len(scored)),
		zap.Bool("low_confidence", result.LowConfidence))

	return result
}

// pad appends untouched curated areas of the destination's country until the
// floor is met or the table is exhausted.
func (e *Engine) pad(scored []models.AreaCandidate, prefs models.TripPreferences) []models.AreaCandidate {
	country := prefs.Destination.CountryCode
	if country == "" {
		if d, ok := e.kb.Lookup(prefs.Destination.Name); ok {
			country = d.CountryCode
		}
	}
	have := make(map[string]bool, len(scored))
	for _, c := range scored {
		have[c.ID] = true
	}
	for _, a := range e.kb.AreasForCountry(country) {
		if len(scored) >= e.params.MinResults {
			break
		}
		id := textutil.Slugify(a.Name)
		if have[id] {
			continue
		}
		have[id] = true
		scored = append(scored, e.params.padCandidate(a, prefs.EffectiveTripLength()))
	}
	return scored
}
