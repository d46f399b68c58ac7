package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

// MockPlannerService is a mock implementation of the PlannerService interface
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) Tradeoffs(ctx context.Context, prefs models.TripPreferences) models.TradeoffReport {
	args := m.Called(ctx, prefs)
	return args.Get(0).(models.TradeoffReport)
}

func (m *MockPlannerService) Resolve(ctx context.Context, prefs models.TripPreferences, tradeoffID, optionID, customText string) (models.TripPreferences, error) {
	args := m.Called(ctx, prefs, tradeoffID, optionID, customText)
	return args.Get(0).(models.TripPreferences), args.Error(1)
}

func (m *MockPlannerService) Discover(ctx context.Context, prefs models.TripPreferences, evidence []models.Evidence, opts models.DiscoverOptions) (models.DiscoveryReport, error) {
	args := m.Called(ctx, prefs, evidence, opts)
	return args.Get(0).(models.DiscoveryReport), args.Error(1)
}

func (m *MockPlannerService) Schedule(ctx context.Context, prefs models.TripPreferences) models.ScheduleResult {
	args := m.Called(ctx, prefs)
	return args.Get(0).(models.ScheduleResult)
}

func (m *MockPlannerService) Check(ctx context.Context, itinerary models.Itinerary, prefs models.TripPreferences) models.QualityCheckResult {
	args := m.Called(ctx, itinerary, prefs)
	return args.Get(0).(models.QualityCheckResult)
}

func setupRouter(svc *MockPlannerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPlannerHandler(svc, zap.NewNop())
	r.GET("/health", h.Health)
	g := r.Group("/api/v1/planner")
	g.POST("/tradeoffs", h.DetectTradeoffs)
	g.POST("/tradeoffs/resolve", h.ResolveTradeoff)
	g.POST("/areas", h.DiscoverAreas)
	g.POST("/schedule", h.Schedule)
	g.POST("/quality", h.CheckQuality)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrBadRequest, http.StatusBadRequest},
		{models.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("tradeoff %q: %w", "x", models.ErrUnknownTradeoff), http.StatusNotFound},
		{models.ErrUnknownOption, http.StatusUnprocessableEntity},
		{models.ErrValidation, http.StatusUnprocessableEntity},
		{models.ErrNoDestination, http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestHealth(t *testing.T) {
	w := do(setupRouter(new(MockPlannerService)), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDetectTradeoffs(t *testing.T) {
	svc := new(MockPlannerService)
	svc.On("Tradeoffs", mock.Anything, mock.MatchedBy(func(p models.TripPreferences) bool {
		return p.Pace == models.PaceChill && len(p.SelectedActivities) == 1
	})).Return(models.TradeoffReport{
		Detected:   []models.Tradeoff{{ID: "pace_vs_activity_load", Type: models.TradeoffPaceVsActivityLoad}},
		Unresolved: []models.Tradeoff{{ID: "pace_vs_activity_load", Type: models.TradeoffPaceVsActivityLoad}},
	})

	body := `{"preferences":{"pace":"chill","selected_activities":[{"kind":"surf","priority":"must-do","target_days":5}]}}`
	w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/tradeoffs", body)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.TradeoffReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Detected, 1)
	assert.Equal(t, models.TradeoffPaceVsActivityLoad, got.Detected[0].Type)
	svc.AssertExpectations(t)
}

func TestDetectTradeoffs_BadBody(t *testing.T) {
	svc := new(MockPlannerService)
	w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/tradeoffs", `{"preferences":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Tradeoffs", mock.Anything, mock.Anything)
}

func TestResolveTradeoff(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCall   bool
	}{
		{
			name:       "applied",
			body:       `{"tradeoff_id":"calm_water_vs_surf","option_id":"reduce_surf_days"}`,
			wantStatus: http.StatusOK,
			wantCall:   true,
		},
		{
			name:       "unknown tradeoff",
			body:       `{"tradeoff_id":"nope","option_id":"custom"}`,
			err:        models.ErrUnknownTradeoff,
			wantStatus: http.StatusNotFound,
			wantCall:   true,
		},
		{
			name:       "unknown option",
			body:       `{"tradeoff_id":"calm_water_vs_surf","option_id":"teleport"}`,
			err:        models.ErrUnknownOption,
			wantStatus: http.StatusUnprocessableEntity,
			wantCall:   true,
		},
		{
			name:       "missing option id",
			body:       `{"tradeoff_id":"calm_water_vs_surf"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockPlannerService)
			svc.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(models.TripPreferences{Pace: models.PaceBalanced}, tc.err)

			w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/tradeoffs/resolve", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantCall {
				svc.AssertNumberOfCalls(t, "Resolve", 1)
			} else {
				svc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDiscoverAreas(t *testing.T) {
	svc := new(MockPlannerService)
	svc.On("Discover", mock.Anything, mock.Anything, mock.Anything, models.DiscoverOptions{ValidateHotels: true}).
		Return(models.DiscoveryReport{
			DiscoveryResult: models.DiscoveryResult{
				Mode:  models.DiscoveryCurated,
				Areas: []models.AreaCandidate{{Name: "Nosara"}},
			},
			HotelValidated: true,
		}, nil)

	body := `{"preferences":{"destination":{"name":"Costa Rica"}},"options":{"validate_hotels":true}}`
	w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/areas", body)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.DiscoveryReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.HotelValidated)
	require.Len(t, got.Areas, 1)
	assert.Equal(t, "Nosara", got.Areas[0].Name)
}

func TestDiscoverAreas_NoDestination(t *testing.T) {
	svc := new(MockPlannerService)
	svc.On("Discover", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(models.DiscoveryReport{}, models.ErrNoDestination)

	w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/areas", `{"preferences":{}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "destination name is required")
}

func TestDiscoverAreas_InternalErrorHidden(t *testing.T) {
	svc := new(MockPlannerService)
	svc.On("Discover", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(models.DiscoveryReport{}, fmt.Errorf("connection refused"))

	w := do(setupRouter(svc), http.MethodPost, "/api/v1/planner/areas", `{"preferences":{"destination":{"name":"Bali"}}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestScheduleAndQuality(t *testing.T) {
	svc := new(MockPlannerService)
	svc.On("Schedule", mock.Anything, mock.Anything).Return(models.ScheduleResult{DailyBudget: 4})
	svc.On("Check", mock.Anything, mock.MatchedBy(func(it models.Itinerary) bool {
		return len(it.Days) == 1
	}), mock.Anything).Return(models.QualityCheckResult{Passed: false, Score: 85, MustResolve: []string{"timing-overlap-day-1-1"}})

	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/api/v1/planner/schedule", `{"preferences":{"trip_length":3}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"daily_budget":4`)

	w = do(r, http.MethodPost, "/api/v1/planner/quality", `{"itinerary":{"days":[{"day":1,"activities":[]}]},"preferences":{}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.QualityCheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Passed)
	assert.Equal(t, 85, got.Score)
	svc.AssertExpectations(t)
}
