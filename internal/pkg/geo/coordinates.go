package geo

import (
	"math"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

const earthRadiusKm = 6371.0

// ValidateCoordinates checks if latitude and longitude are valid
// Latitude must be between -90 and 90
// Longitude must be between -180 and 180
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// HasValidCoordinates checks if a point is usable as a reference location
func HasValidCoordinates(p models.LatLng) bool {
	// Check for zero values (often indicates missing data)
	if p.IsZero() {
		return false
	}
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}

	return ValidateCoordinates(p.Lat, p.Lng)
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula.
func DistanceKm(a, b models.LatLng) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// BoundingBoxAround returns a box of +/- delta degrees around p.
func BoundingBoxAround(p models.LatLng, delta float64) models.BoundingBox {
	return models.BoundingBox{
		MinLat: p.Lat - delta,
		MaxLat: p.Lat + delta,
		MinLng: p.Lng - delta,
		MaxLng: p.Lng + delta,
	}
}

// CalculateCenterPoint calculates the center point of multiple coordinates
// Returns the center point or the fallback if no valid coordinates exist
func CalculateCenterPoint(points []models.LatLng, fallback models.LatLng) models.LatLng {
	var latSum, lngSum float64
	n := 0
	for _, p := range points {
		if !HasValidCoordinates(p) {
			continue
		}
		latSum += p.Lat
		lngSum += p.Lng
		n++
	}

	if n == 0 {
		return fallback
	}
	return models.LatLng{Lat: latSum / float64(n), Lng: lngSum / float64(n)}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
