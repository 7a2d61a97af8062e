// Package observability exposes the prometheus collectors of the forecast service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	refreshCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_forecast_refresh_total",
			Help: "Forecast refresh attempts by result",
		},
		[]string{"result"},
	)

	conversionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_unit_conversions_total",
			Help: "Temperature values converted, by target unit",
		},
		[]string{"unit"},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_request_duration_seconds",
			Help:    "Duration of forecast provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "result"},
	)
)

func init() {
	prometheus.MustRegister(refreshCounter, conversionCounter, providerDuration)
}

// RecordRefresh counts one refresh attempt. result is "ok", "error" or "skipped".
func RecordRefresh(result string) {
	refreshCounter.WithLabelValues(result).Inc()
}

// RecordConversions adds n converted temperature values.
func RecordConversions(unit string, n int) {
	if n <= 0 {
		return
	}
	conversionCounter.WithLabelValues(unit).Add(float64(n))
}

// ObserveProvider records the duration of one provider call.
func ObserveProvider(provider string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	providerDuration.WithLabelValues(provider, result).Observe(time.Since(start).Seconds())
}
