// Package metrics exposes the Prometheus collectors of the badge service.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BadgesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "badgeofshame_badges_served_total",
		Help: "Badges served, by resolution outcome",
	}, []string{"outcome"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "badgeofshame_cache_lookups_total",
		Help: "Cache lookups, by result",
	}, []string{"result"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "badgeofshame_upstream_request_duration_seconds",
		Help: "Latency of upstream API calls",
	}, []string{"call"})
)

// ObserveUpstream records the time elapsed since start for call.
func ObserveUpstream(call string, start time.Time) {
	UpstreamDuration.WithLabelValues(call).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
