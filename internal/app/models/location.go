package models

// LatLng is a WGS84 coordinate pair. The zero value means "unknown".
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat" db:"lat"`
	Lng float64 `json:"lng" yaml:"lng" db:"lng"`
}

// IsZero reports whether both components are unset.
func (l LatLng) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// BoundingBox is an axis-aligned lat/lng rectangle.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}
