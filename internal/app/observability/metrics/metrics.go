package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the planner's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	PlannerRequestsTotal   metric.Int64Counter
	AreasDiscoveredTotal   metric.Int64Counter
	AreasRejectedTotal     metric.Int64Counter
	TradeoffsDetectedTotal metric.Int64Counter
	DiscoveryCacheHits     metric.Int64Counter
	QualityScore           metric.Int64Histogram
	RateLimitedTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
// Before a provider is installed the instruments are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("tripcore")
		m := &AppMetrics{}

		m.HTTPRequestsTotal = counter(meter, "http_requests_total", "Total number of HTTP requests completed", "{request}")
		m.PlannerRequestsTotal = counter(meter, "planner_requests_total", "Planner operations by name", "{request}")
		m.AreasDiscoveredTotal = counter(meter, "areas_discovered_total", "Area candidates returned by discovery", "{area}")
		m.AreasRejectedTotal = counter(meter, "areas_rejected_total", "Area candidates removed by a validation pass", "{area}")
		m.TradeoffsDetectedTotal = counter(meter, "tradeoffs_detected_total", "Tradeoffs detected by type", "{tradeoff}")
		m.DiscoveryCacheHits = counter(meter, "discovery_cache_hits_total", "Discovery results served from cache", "{hit}")
		m.RateLimitedTotal = counter(meter, "rate_limited_total", "Requests refused by admission control", "{request}")

		var err error
		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.QualityScore, err = meter.Int64Histogram(
			"quality_score",
			metric.WithDescription("Quality check score of finalized itineraries"),
			metric.WithUnit("{point}"),
			metric.WithExplicitBucketBoundaries(0, 25, 50, 70, 85, 95, 100),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quality_score: %v", err)
		}

		appMetrics = m
	})
}

func counter(meter metric.Meter, name, description, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
	return c
}

// Get returns the instruments, creating them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
