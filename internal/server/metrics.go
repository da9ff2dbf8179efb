package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seadream",
		Subsystem: "backend",
		Name:      "generate_requests_total",
		Help:      "Total generate requests, by status.",
	}, []string{"status"})

	generateDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "seadream",
		Subsystem: "backend",
		Name:      "generate_duration_seconds",
		Help:      "Generate request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	likeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seadream",
		Subsystem: "backend",
		Name:      "like_toggles_total",
		Help:      "Total like toggles, by outcome.",
	}, []string{"outcome"})

	storedSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "seadream",
		Subsystem: "backend",
		Name:      "stored_sessions",
		Help:      "Number of sessions in the history document.",
	})
)
