package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/domain/areas"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/effort"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/quality"
	"github.com/FACorreiaa/go-tripcore/internal/app/domain/tradeoffs"
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/cache"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

const defaultDiscoveryTTL = 10 * time.Minute

// PlannerService runs the planning pipeline for the HTTP and CLI hosts.
type PlannerService interface {
	Tradeoffs(ctx context.Context, prefs models.TripPreferences) models.TradeoffReport
	Resolve(ctx context.Context, prefs models.TripPreferences, tradeoffID, optionID, customText string) (models.TripPreferences, error)
	Discover(ctx context.Context, prefs models.TripPreferences, evidence []models.Evidence, opts models.DiscoverOptions) (models.DiscoveryReport, error)
	Schedule(ctx context.Context, prefs models.TripPreferences) models.ScheduleResult
	Check(ctx context.Context, itinerary models.Itinerary, prefs models.TripPreferences) models.QualityCheckResult
}

var _ PlannerService = (*PlannerServiceImpl)(nil)

// PlannerDeps wires the engines and collaborators. Nil engines use their
// defaults; a nil Geocoder or HotelInventory disables that validation pass.
type PlannerDeps struct {
	Areas    *areas.Engine
	Detector *tradeoffs.Detector
	Effort   *effort.Model
	Quality  *quality.Engine
	Geocoder areas.Geocoder
	Hotels   areas.HotelInventory
	// Params builds the default area engine when Areas is nil.
	Params   *areas.Params
	CacheTTL time.Duration
	Clock    func() time.Time
}

type PlannerServiceImpl struct {
	areas     *areas.Engine
	detector  *tradeoffs.Detector
	effort    *effort.Model
	quality   *quality.Engine
	geo       *areas.GeoValidator
	hotels    *areas.HotelValidator
	discovery *gocache.Cache
	now       func() time.Time
	logger    *zap.Logger
}

func NewPlannerService(deps PlannerDeps, log *zap.Logger) *PlannerServiceImpl {
	log = logger.OrNop(log)

	params := areas.DefaultParams()
	if deps.Params != nil {
		params = *deps.Params
	}
	if deps.Areas == nil {
		deps.Areas = areas.NewEngine(nil, params, log)
	}
	params = deps.Areas.Params()
	if deps.Effort == nil {
		deps.Effort = effort.Default()
	}
	if deps.Detector == nil {
		deps.Detector = tradeoffs.NewDetector(tradeoffs.DefaultThresholds(), deps.Effort)
	}
	if deps.Quality == nil {
		deps.Quality = quality.NewEngine(deps.Effort, log)
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = defaultDiscoveryTTL
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	s := &PlannerServiceImpl{
		areas:     deps.Areas,
		detector:  deps.Detector,
		effort:    deps.Effort,
		quality:   deps.Quality,
		discovery: gocache.New(deps.CacheTTL, 2*deps.CacheTTL),
		now:       deps.Clock,
		logger:    log,
	}
	if deps.Geocoder != nil {
		s.geo = areas.NewGeoValidator(deps.Geocoder, params, log)
	}
	if deps.Hotels != nil {
		s.hotels = areas.NewHotelValidator(deps.Hotels, params, log)
	}
	return s
}

func countRequest(ctx context.Context, op string) {
	metrics.Get().PlannerRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}

// Tradeoffs detects conflicts and records them on a copy of prefs.
func (s *PlannerServiceImpl) Tradeoffs(ctx context.Context, prefs models.TripPreferences) models.TradeoffReport {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Tradeoffs", trace.WithAttributes(
		attribute.String("session.id", prefs.SessionID.String()),
	))
	defer span.End()
	countRequest(ctx, "tradeoffs")

	detected := s.detector.Detect(prefs)
	updated := s.detector.WithDetected(prefs)
	unresolved := tradeoffs.Unresolved(updated)

	for _, t := range detected {
		metrics.Get().TradeoffsDetectedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(t.Type))))
	}
	span.SetAttributes(
		attribute.Int("tradeoffs.detected", len(detected)),
		attribute.Int("tradeoffs.unresolved", len(unresolved)),
	)
	s.logger.Info("Tradeoffs detected",
		zap.String("method", "Tradeoffs"),
		zap.Int("detected", len(detected)),
		zap.Int("unresolved", len(unresolved)))

	return models.TradeoffReport{Preferences: updated, Detected: detected, Unresolved: unresolved}
}

// Resolve validates the choice against the recorded tradeoffs before applying it.
func (s *PlannerServiceImpl) Resolve(ctx context.Context, prefs models.TripPreferences, tradeoffID, optionID, customText string) (models.TripPreferences, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("tradeoff.id", tradeoffID),
		attribute.String("option.id", optionID),
	))
	defer span.End()
	countRequest(ctx, "resolve")

	l := s.logger.With(zap.String("method", "Resolve"), zap.String("tradeoff_id", tradeoffID), zap.String("option_id", optionID))

	var found *models.Tradeoff
	for i := range prefs.DetectedTradeoffs {
		if prefs.DetectedTradeoffs[i].ID == tradeoffID {
			found = &prefs.DetectedTradeoffs[i]
			break
		}
	}
	if found == nil {
		err := fmt.Errorf("tradeoff %q: %w", tradeoffID, models.ErrUnknownTradeoff)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown tradeoff")
		l.Warn("Resolution for unknown tradeoff")
		return prefs, err
	}
	if _, ok := found.Option(optionID); !ok && !tradeoffs.IsKnownOption(found.Type, optionID) {
		err := fmt.Errorf("option %q for %q: %w", optionID, tradeoffID, models.ErrUnknownOption)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown option")
		l.Warn("Resolution with unknown option")
		return prefs, err
	}
	if optionID == models.CustomOptionID && strings.TrimSpace(customText) == "" {
		return prefs, fmt.Errorf("custom resolution needs text: %w", models.ErrValidation)
	}

	out := s.detector.ApplyResolution(prefs, tradeoffID, optionID, customText, s.now())
	l.Info("Tradeoff resolved")
	return out, nil
}

func (s *PlannerServiceImpl) discoveryKey(prefs models.TripPreferences, evidence []models.Evidence, opts models.DiscoverOptions) string {
	// history and session do not affect discovery
	keyed := prefs
	keyed.SessionID = uuid.Nil
	keyed.DetectedTradeoffs = nil
	keyed.ResolvedTradeoffs = nil
	return cache.NewCacheKeyBuilder(s.logger).
		AddDestination(prefs.Destination.Name).
		AddPreferences(keyed).
		AddEvidence(evidence).
		Add("options", opts).
		BuildOrDefault()
}

// Discover ranks areas and runs the requested validation passes. Results are
// cached per preferences, evidence and options.
func (s *PlannerServiceImpl) Discover(ctx context.Context, prefs models.TripPreferences, evidence []models.Evidence, opts models.DiscoverOptions) (models.DiscoveryReport, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Discover", trace.WithAttributes(
		attribute.String("destination.name", prefs.Destination.Name),
		attribute.Bool("validate.geo", opts.ValidateGeo),
		attribute.Bool("validate.hotels", opts.ValidateHotels),
	))
	defer span.End()
	countRequest(ctx, "discover")

	l := s.logger.With(zap.String("method", "Discover"), zap.String("destination", prefs.Destination.Name))

	if strings.TrimSpace(prefs.Destination.Name) == "" {
		span.SetStatus(codes.Error, "missing destination")
		return models.DiscoveryReport{}, models.ErrNoDestination
	}

	key := s.discoveryKey(prefs, evidence, opts)
	if key != "" {
		if cached, ok := s.discovery.Get(key); ok {
			report := cached.(models.DiscoveryReport).Clone()
			report.Cached = true
			metrics.Get().DiscoveryCacheHits.Add(ctx, 1)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			l.Debug("Discovery served from cache")
			return report, nil
		}
	}

	res := s.areas.DiscoverAreas(ctx, prefs, evidence)
	report := models.DiscoveryReport{DiscoveryResult: res}

	if opts.ValidateGeo && s.geo != nil {
		geo := s.geo.ValidateAreasGeographically(ctx, report.Areas, prefs.Destination)
		report.Areas = geo.Areas
		report.Rejected = geo.Rejected
		report.GeoValidated = true
		if n := len(geo.Rejected); n > 0 {
			metrics.Get().AreasRejectedTotal.Add(ctx, int64(n), metric.WithAttributes(attribute.String("reason", "distance")))
		}
	} else if opts.ValidateGeo {
		l.Warn("Geographic validation requested without a geocoder")
	}

	if opts.ValidateHotels && s.hotels != nil {
		hotels := s.hotels.ValidateAreasWithHotels(ctx, report.Areas, prefs.Destination)
		report.Areas = hotels.Areas
		report.Excluded = hotels.Excluded
		report.HotelValidated = true
		if n := len(hotels.Excluded); n > 0 {
			metrics.Get().AreasRejectedTotal.Add(ctx, int64(n), metric.WithAttributes(attribute.String("reason", "no_hotels")))
		}
	} else if opts.ValidateHotels {
		l.Warn("Hotel validation requested without an inventory")
	}

	metrics.Get().AreasDiscoveredTotal.Add(ctx, int64(len(report.Areas)),
		metric.WithAttributes(attribute.String("mode", string(report.Mode))))
	span.SetAttributes(
		attribute.Int("areas.count", len(report.Areas)),
		attribute.String("discovery.mode", string(report.Mode)),
	)

	if key != "" {
		s.discovery.Set(key, report.Clone(), gocache.DefaultExpiration)
	}
	l.Info("Areas discovered",
		zap.Int("areas", len(report.Areas)),
		zap.Int("rejected", len(report.Rejected)),
		zap.Int("excluded", len(report.Excluded)),
		zap.String("mode", string(report.Mode)))
	return report, nil
}

func plannedName(p models.PlannedActivity) string {
	if strings.TrimSpace(p.Label) != "" {
		return textutil.DisplayName(p.Label)
	}
	return textutil.DisplayName(strings.ReplaceAll(string(p.Kind), "_", " "))
}

// Schedule distributes the selected activities over the trip and places each
// one in the first free preferred time block of its day.
func (s *PlannerServiceImpl) Schedule(ctx context.Context, prefs models.TripPreferences) models.ScheduleResult {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Schedule", trace.WithAttributes(
		attribute.Int("trip.length", prefs.EffectiveTripLength()),
		attribute.String("trip.pace", string(prefs.EffectivePace())),
	))
	defer span.End()
	countRequest(ctx, "schedule")

	length := prefs.EffectiveTripLength()
	pace := prefs.EffectivePace()
	plan := s.effort.Distribute(prefs.SelectedActivities, length, pace)

	res := models.ScheduleResult{
		DailyBudget: s.effort.DailyBudget(pace),
		TotalDemand: s.effort.TotalDemand(prefs.SelectedActivities, length),
		DayEffort:   make([]float64, length),
	}
	for d := 0; d < length; d++ {
		day := models.ItineraryDay{Day: d + 1, Activities: []models.ScheduledActivity{}}
		for i, p := range plan[d] {
			slot, ok := s.effort.FindSlot(day.Activities, p.Kind, 0)
			if !ok {
				res.Unplaced = append(res.Unplaced, p)
				continue
			}
			day.Activities = append(day.Activities, models.ScheduledActivity{
				ID:         fmt.Sprintf("day-%d-%d", d+1, i+1),
				Name:       plannedName(p),
				Kind:       p.Kind,
				Day:        d + 1,
				TimeBlock:  slot.Block,
				StartTime:  slot.Start,
				EndTime:    slot.End,
				EffortCost: p.EffortCost,
			})
		}
		sort.SliceStable(day.Activities, func(a, b int) bool {
			return day.Activities[a].StartTime < day.Activities[b].StartTime
		})
		res.DayEffort[d] = s.effort.DayEffort(day.Activities)
		res.Itinerary.Days = append(res.Itinerary.Days, day)
	}

	span.SetAttributes(attribute.Int("activities.unplaced", len(res.Unplaced)))
	s.logger.Info("Schedule drafted",
		zap.String("method", "Schedule"),
		zap.Int("days", length),
		zap.Int("unplaced", len(res.Unplaced)))
	return res
}

// Check runs the quality gate over an itinerary.
func (s *PlannerServiceImpl) Check(ctx context.Context, itinerary models.Itinerary, prefs models.TripPreferences) models.QualityCheckResult {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Check")
	defer span.End()
	countRequest(ctx, "check")

	res := s.quality.RunQualityChecks(ctx, itinerary, prefs)
	metrics.Get().QualityScore.Record(ctx, int64(res.Score), metric.WithAttributes(attribute.Bool("passed", res.Passed)))
	return res
}
