// Package metrics holds the Prometheus collectors for the sleep bot.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	SleepRecordsLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sleep_records_logged_total",
			Help: "Sleep records written, by whether they replaced an existing date",
		},
		[]string{"replaced"},
	)
	AchievementsGranted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achievements_granted_total",
			Help: "Badges granted, by badge name",
		},
		[]string{"badge"},
	)
	AdviceServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_served_total",
			Help: "Personal advice returned, by rule",
		},
		[]string{"kind"},
	)
)

// Register registers every collector with reg. Call once from main.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		RateLimited,
		SleepRecordsLogged,
		AchievementsGranted,
		AdviceServed,
	)
}
