package areas

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/geo"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
)

// HotelInventory counts bookable hotels.
type HotelInventory interface {
	// CountByName matches the name against hotel name, region and city.
	CountByName(ctx context.Context, name string, minRating float64) (int, error)
	CountInBox(ctx context.Context, box models.BoundingBox, minRating float64) (int, error)
	CountByCountry(ctx context.Context, countryCode string) (int, error)
}

type HotelValidator struct {
	inventory HotelInventory
	params    Params
	logger    *zap.Logger
}

func NewHotelValidator(inv HotelInventory, params Params, log *zap.Logger) *HotelValidator {
	return &HotelValidator{inventory: inv, params: params, logger: logger.OrNop(log)}
}

// ValidateAreasWithHotels attaches a hotel count to every area. Areas with a
// healthy count are kept, a single hotel keeps the area flagged
// LowHotelInventory and none excludes it. When exclusions would leave fewer
// than MinSurvivingAreas, the excluded areas come back flagged for indexing.
func (v *HotelValidator) ValidateAreasWithHotels(ctx context.Context, areas []models.AreaCandidate, dest models.DestinationContext) models.HotelValidationResult {
	ctx, span := otel.Tracer("AreaDiscovery").Start(ctx, "ValidateAreasWithHotels", trace.WithAttributes(
		attribute.String("destination.name", dest.Name),
		attribute.Int("areas.count", len(areas)),
	))
	defer span.End()

	l := v.logger.With(zap.String("method", "ValidateAreasWithHotels"), zap.String("destination", dest.Name))

	counted := make([]models.AreaCandidate, len(areas))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range areas {
		g.Go(func() error {
			n := v.countHotels(gctx, l, a, dest.CountryCode)
			a.HotelCount = &n
			counted[i] = a
			return nil
		})
	}
	_ = g.Wait()

	result := models.HotelValidationResult{
		Areas:    []models.AreaCandidate{},
		Excluded: []models.AreaCandidate{},
	}
	for _, a := range counted {
		switch n := *a.HotelCount; {
		case n >= v.params.HealthyHotelCount:
			result.Areas = append(result.Areas, a)
		case n > 0:
			a.LowHotelInventory = true
			result.Areas = append(result.Areas, a)
		default:
			result.Excluded = append(result.Excluded, a)
		}
	}

	if len(result.Excluded) > 0 && len(result.Areas) < v.params.MinSurvivingAreas {
		l.Warn("Too few areas with hotels, re-admitting excluded areas",
			zap.Int("surviving", len(result.Areas)),
			zap.Int("excluded", len(result.Excluded)))
		for _, a := range result.Excluded {
			a.LowHotelInventory = true
			a.NeedsHotelIndexing = true
			result.Areas = append(result.Areas, a)
		}
		result.Excluded = []models.AreaCandidate{}
	}

	span.SetAttributes(attribute.Int("areas.excluded", len(result.Excluded)))
	l.Info("Hotel validation complete",
		zap.Int("kept", len(result.Areas)),
		zap.Int("excluded", len(result.Excluded)))
	return result
}

// countHotels runs the name, bounding box and country strategies in turn and
// stops at the first non-zero count. The country count is capped since it
// only signals that hotels exist somewhere nearby. Errors count as zero.
func (v *HotelValidator) countHotels(ctx context.Context, l *zap.Logger, a models.AreaCandidate, countryCode string) int {
	n, err := v.inventory.CountByName(ctx, a.Name, v.params.MinHotelRating)
	if err != nil {
		l.Warn("Hotel name lookup failed", zap.String("area", a.Name), zap.Error(err))
		n = 0
	}
	if n > 0 {
		return n
	}

	if geo.HasValidCoordinates(a.Center) {
		box := geo.BoundingBoxAround(a.Center, v.params.BoundingBoxDelta)
		n, err = v.inventory.CountInBox(ctx, box, v.params.MinHotelRating)
		if err != nil {
			l.Warn("Hotel bounding box lookup failed", zap.String("area", a.Name), zap.Error(err))
			n = 0
		}
		if n > 0 {
			return n
		}
	}

	if countryCode == "" {
		return 0
	}
	n, err = v.inventory.CountByCountry(ctx, countryCode)
	if err != nil {
		l.Warn("Hotel country lookup failed", zap.String("area", a.Name), zap.Error(err))
		return 0
	}
	return min(n, v.params.CountryFallbackCap)
}
