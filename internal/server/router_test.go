package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/services"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/cache"
	"github.com/FACorreiaa/go-tripcore/internal/routes"
)

func TestSetupRouter(t *testing.T) {
	deps := routes.Dependencies{
		Planner:   services.NewPlannerService(services.PlannerDeps{}, zap.NewNop()),
		Admission: cache.NewAdmission(1, time.Minute, 10, time.Now, zap.NewNop()),
	}
	r := SetupRouter("tripcore-test", deps, zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	body := `{"preferences":{"pace":"balanced","trip_length":7,"selected_activities":[{"kind":"surf","priority":"must-do","target_days":4},{"kind":"snorkel","priority":"must-do"}]}}`
	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/tradeoffs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w = post()
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "calm_water_vs_surf")

	w = post()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code, "health is not rate limited")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, zap.NewNop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
