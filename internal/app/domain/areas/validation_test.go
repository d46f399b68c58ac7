package areas

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (models.LatLng, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(models.LatLng), args.Error(1)
}

// MockHotelInventory is a mock implementation of the HotelInventory interface
type MockHotelInventory struct {
	mock.Mock
}

func (m *MockHotelInventory) CountByName(ctx context.Context, name string, minRating float64) (int, error) {
	args := m.Called(ctx, name, minRating)
	return args.Int(0), args.Error(1)
}

func (m *MockHotelInventory) CountInBox(ctx context.Context, box models.BoundingBox, minRating float64) (int, error) {
	args := m.Called(ctx, box, minRating)
	return args.Int(0), args.Error(1)
}

func (m *MockHotelInventory) CountByCountry(ctx context.Context, countryCode string) (int, error) {
	args := m.Called(ctx, countryCode)
	return args.Int(0), args.Error(1)
}

func candidate(name string, center models.LatLng) models.AreaCandidate {
	return models.AreaCandidate{ID: name, Name: name, Center: center, OverallScore: 0.7}
}

func TestValidateAreasGeographically(t *testing.T) {
	dest := models.DestinationContext{Name: "Guanacaste", Center: models.LatLng{Lat: 10, Lng: -85}}
	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", mock.Anything, "Near, Guanacaste").Return(models.LatLng{Lat: 10.1, Lng: -85.1}, nil)
	geocoder.On("Geocode", mock.Anything, "Far, Guanacaste").Return(models.LatLng{Lat: 14, Lng: -87}, nil)
	geocoder.On("Geocode", mock.Anything, "Unknown, Guanacaste").Return(models.LatLng{}, errors.New("no results"))

	v := NewGeoValidator(geocoder, DefaultParams(), zap.NewNop())
	res := v.ValidateAreasGeographically(context.Background(), []models.AreaCandidate{
		candidate("Near", models.LatLng{}),
		candidate("Far", models.LatLng{}),
		candidate("Unknown", models.LatLng{}),
	}, dest)

	require.Len(t, res.Areas, 2)
	assert.Equal(t, "Near", res.Areas[0].Name)
	assert.Equal(t, models.GeoVerified, res.Areas[0].GeoValidation)
	require.NotNil(t, res.Areas[0].DistanceFromCenterKm)
	assert.InDelta(t, 15.6, *res.Areas[0].DistanceFromCenterKm, 0.5)
	assert.Equal(t, &models.LatLng{Lat: 10.1, Lng: -85.1}, res.Areas[0].ResolvedCenter)
	assert.InDelta(t, 0.7, res.Areas[0].OverallScore, 1e-9, "score untouched")

	assert.Equal(t, "Unknown", res.Areas[1].Name)
	assert.Equal(t, models.GeoUnverified, res.Areas[1].GeoValidation)
	assert.Nil(t, res.Areas[1].DistanceFromCenterKm)

	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "Far", res.Rejected[0].Area.Name)
	assert.Greater(t, res.Rejected[0].DistanceKm, 150.0)
	assert.Contains(t, res.Rejected[0].Reason, "150 km")
	geocoder.AssertExpectations(t)
}

func TestValidateAreasGeographically_NoCenterSkipsPass(t *testing.T) {
	geocoder := new(MockGeocoder)
	v := NewGeoValidator(geocoder, DefaultParams(), zap.NewNop())
	areas := []models.AreaCandidate{candidate("A", models.LatLng{}), candidate("B", models.LatLng{})}

	res := v.ValidateAreasGeographically(context.Background(), areas, models.DestinationContext{Name: "Somewhere"})

	assert.Equal(t, areas, res.Areas)
	assert.Empty(t, res.Rejected)
	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

// barrier blocks every caller until n calls are in flight at once.
type barrier struct {
	n       int
	mu      sync.Mutex
	active  int
	peak    int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, release: make(chan struct{})}
}

func (b *barrier) wait() error {
	b.mu.Lock()
	b.active++
	if b.active > b.peak {
		b.peak = b.active
	}
	if b.active == b.n {
		close(b.release)
	}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.active--
		b.mu.Unlock()
	}()
	select {
	case <-b.release:
		return nil
	case <-time.After(2 * time.Second):
		return errors.New("calls were not all in flight")
	}
}

type barrierGeocoder struct{ *barrier }

func (g barrierGeocoder) Geocode(context.Context, string) (models.LatLng, error) {
	if err := g.wait(); err != nil {
		return models.LatLng{}, err
	}
	return models.LatLng{Lat: 10.05, Lng: -85.05}, nil
}

type barrierInventory struct{ *barrier }

func (i barrierInventory) CountByName(context.Context, string, float64) (int, error) {
	if err := i.wait(); err != nil {
		return 0, err
	}
	return 3, nil
}

func (barrierInventory) CountInBox(context.Context, models.BoundingBox, float64) (int, error) {
	return 0, nil
}

func (barrierInventory) CountByCountry(context.Context, string) (int, error) {
	return 0, nil
}

func manyCandidates(n int) []models.AreaCandidate {
	out := make([]models.AreaCandidate, n)
	for i := range out {
		out[i] = candidate(fmt.Sprintf("Area %d", i), models.LatLng{})
	}
	return out
}

func TestValidateAreasGeographically_OneCallPerArea(t *testing.T) {
	const n = 12
	b := newBarrier(n)
	v := NewGeoValidator(barrierGeocoder{b}, DefaultParams(), zap.NewNop())
	dest := models.DestinationContext{Name: "Guanacaste", Center: models.LatLng{Lat: 10, Lng: -85}}

	res := v.ValidateAreasGeographically(context.Background(), manyCandidates(n), dest)

	assert.Equal(t, n, b.peak)
	require.Len(t, res.Areas, n)
	for _, a := range res.Areas {
		assert.Equal(t, models.GeoVerified, a.GeoValidation, a.Name)
	}
}

func TestValidateAreasWithHotels_OneCallPerArea(t *testing.T) {
	const n = 12
	b := newBarrier(n)
	v := NewHotelValidator(barrierInventory{b}, DefaultParams(), zap.NewNop())

	res := v.ValidateAreasWithHotels(context.Background(), manyCandidates(n), models.DestinationContext{Name: "Guanacaste", CountryCode: "CR"})

	assert.Equal(t, n, b.peak)
	require.Len(t, res.Areas, n)
	for _, a := range res.Areas {
		require.NotNil(t, a.HotelCount)
		assert.Equal(t, 3, *a.HotelCount, a.Name)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValidateAreasWithHotels_Cascade(t *testing.T) {
	p := DefaultParams()
	inv := new(MockHotelInventory)
	dest := models.DestinationContext{Name: "Costa Rica", CountryCode: "CR"}

	// name match
	inv.On("CountByName", mock.Anything, "Tamarindo", p.MinHotelRating).Return(12, nil)
	// bounding box fallback
	inv.On("CountByName", mock.Anything, "Nosara", p.MinHotelRating).Return(0, nil)
	inv.On("CountInBox", mock.Anything, mock.MatchedBy(func(b models.BoundingBox) bool {
		return near(b.MinLat, 9.9) && near(b.MaxLat, 10.1) && near(b.MinLng, -85.75) && near(b.MaxLng, -85.55)
	}), p.MinHotelRating).Return(1, nil)
	// country fallback after a failed name lookup, capped
	inv.On("CountByName", mock.Anything, "Hidden Cove", p.MinHotelRating).Return(0, errors.New("timeout"))
	inv.On("CountByCountry", mock.Anything, "CR").Return(400, nil)

	v := NewHotelValidator(inv, p, zap.NewNop())
	res := v.ValidateAreasWithHotels(context.Background(), []models.AreaCandidate{
		candidate("Tamarindo", models.LatLng{}),
		candidate("Nosara", models.LatLng{Lat: 10, Lng: -85.65}),
		candidate("Hidden Cove", models.LatLng{}),
	}, dest)

	require.Len(t, res.Areas, 3)
	assert.Empty(t, res.Excluded)

	tamarindo, nosara, hidden := res.Areas[0], res.Areas[1], res.Areas[2]
	assert.Equal(t, 12, *tamarindo.HotelCount)
	assert.False(t, tamarindo.LowHotelInventory)
	assert.Equal(t, 1, *nosara.HotelCount)
	assert.True(t, nosara.LowHotelInventory)
	assert.Equal(t, p.CountryFallbackCap, *hidden.HotelCount)
	assert.False(t, hidden.LowHotelInventory)

	inv.AssertNumberOfCalls(t, "CountByCountry", 1)
	inv.AssertExpectations(t)
}

func TestValidateAreasWithHotels_ExcludesEmptyAreas(t *testing.T) {
	inv := new(MockHotelInventory)
	inv.On("CountByName", mock.Anything, "Busy", mock.Anything).Return(5, nil)
	inv.On("CountByName", mock.Anything, "Quiet", mock.Anything).Return(2, nil)
	inv.On("CountByName", mock.Anything, "Ghost Town", mock.Anything).Return(0, nil)
	inv.On("CountInBox", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	v := NewHotelValidator(inv, DefaultParams(), zap.NewNop())
	res := v.ValidateAreasWithHotels(context.Background(), []models.AreaCandidate{
		candidate("Busy", models.LatLng{}),
		candidate("Ghost Town", models.LatLng{Lat: 10.6, Lng: -85.2}),
		candidate("Quiet", models.LatLng{}),
	}, models.DestinationContext{Name: "Nowhere"})

	require.Len(t, res.Areas, 2)
	assert.Equal(t, "Busy", res.Areas[0].Name)
	assert.Equal(t, "Quiet", res.Areas[1].Name)
	assert.False(t, res.Areas[1].LowHotelInventory)

	require.Len(t, res.Excluded, 1)
	assert.Equal(t, "Ghost Town", res.Excluded[0].Name)
	assert.Equal(t, 0, *res.Excluded[0].HotelCount)
	inv.AssertNotCalled(t, "CountByCountry", mock.Anything, mock.Anything)
}

func TestValidateAreasWithHotels_Leniency(t *testing.T) {
	inv := new(MockHotelInventory)
	inv.On("CountByName", mock.Anything, "Busy", mock.Anything).Return(3, nil)
	inv.On("CountByName", mock.Anything, "Empty", mock.Anything).Return(0, nil)

	v := NewHotelValidator(inv, DefaultParams(), zap.NewNop())
	res := v.ValidateAreasWithHotels(context.Background(), []models.AreaCandidate{
		candidate("Busy", models.LatLng{}),
		candidate("Empty", models.LatLng{}),
	}, models.DestinationContext{Name: "Nowhere"})

	require.Len(t, res.Areas, 2)
	assert.Empty(t, res.Excluded)
	empty := res.Areas[1]
	assert.Equal(t, "Empty", empty.Name)
	assert.True(t, empty.LowHotelInventory)
	assert.True(t, empty.NeedsHotelIndexing)
	assert.False(t, res.Areas[0].NeedsHotelIndexing)
	inv.AssertNotCalled(t, "CountByCountry", mock.Anything, mock.Anything)
}
