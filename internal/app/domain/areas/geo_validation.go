package areas

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/geo"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
)

// Geocoder resolves a free-text place query to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (models.LatLng, error)
}

type GeoValidator struct {
	geocoder Geocoder
	params   Params
	logger   *zap.Logger
}

func NewGeoValidator(g Geocoder, params Params, log *zap.Logger) *GeoValidator {
	return &GeoValidator{geocoder: g, params: params, logger: logger.OrNop(log)}
}

type geoOutcome struct {
	area     models.AreaCandidate
	rejected bool
	distance float64
}

// ValidateAreasGeographically geocodes every area and rejects the ones lying
// further than MaxDistanceKm from the destination center. Areas that cannot
// be geocoded are kept as unverified. Without a usable destination center
// the areas are returned unmodified.
func (v *GeoValidator) ValidateAreasGeographically(ctx context.Context, areas []models.AreaCandidate, dest models.DestinationContext) models.GeoValidationResult {
	ctx, span := otel.Tracer("AreaDiscovery").Start(ctx, "ValidateAreasGeographically", trace.WithAttributes(
		attribute.String("destination.name", dest.Name),
		attribute.Int("areas.count", len(areas)),
	))
	defer span.End()

	l := v.logger.With(zap.String("method", "ValidateAreasGeographically"), zap.String("destination", dest.Name))

	result := models.GeoValidationResult{
		Areas:    append([]models.AreaCandidate(nil), areas...),
		Rejected: []models.RejectedArea{},
	}
	if !geo.HasValidCoordinates(dest.Center) {
		l.Debug("Destination has no usable center, skipping geographic validation")
		span.SetAttributes(attribute.Bool("geo.skipped", true))
		return result
	}

	outcomes := make([]geoOutcome, len(areas))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range areas {
		g.Go(func() error {
			outcomes[i] = v.validateOne(gctx, l, a, dest)
			return nil
		})
	}
	_ = g.Wait()

	result.Areas = result.Areas[:0]
	for _, o := range outcomes {
		if o.rejected {
			result.Rejected = append(result.Rejected, models.RejectedArea{
				Area:       o.area,
				Reason:     fmt.Sprintf("%.0f km from %s, beyond the %.0f km limit", o.distance, dest.Name, v.params.MaxDistanceKm),
				DistanceKm: o.distance,
			})
			continue
		}
		result.Areas = append(result.Areas, o.area)
	}

	span.SetAttributes(attribute.Int("areas.rejected", len(result.Rejected)))
	l.Info("Geographic validation complete",
		zap.Int("kept", len(result.Areas)),
		zap.Int("rejected", len(result.Rejected)))
	return result
}

func (v *GeoValidator) validateOne(ctx context.Context, l *zap.Logger, a models.AreaCandidate, dest models.DestinationContext) geoOutcome {
	query := fmt.Sprintf("%s, %s", a.Name, dest.Name)
	point, err := v.geocoder.Geocode(ctx, query)
	if err != nil || !geo.HasValidCoordinates(point) {
		l.Warn("Could not geocode area, keeping it unverified", zap.String("area", a.Name), zap.Error(err))
		a.GeoValidation = models.GeoUnverified
		return geoOutcome{area: a}
	}

	distance := geo.DistanceKm(dest.Center, point)
	a.ResolvedCenter = &point
	a.DistanceFromCenterKm = &distance
	if distance > v.params.MaxDistanceKm {
		l.Warn("Area lies outside the destination radius",
			zap.String("area", a.Name),
			zap.Float64("distance_km", distance))
		a.GeoValidation = models.GeoRejected
		return geoOutcome{area: a, rejected: true, distance: distance}
	}
	a.GeoValidation = models.GeoVerified
	return geoOutcome{area: a, distance: distance}
}
