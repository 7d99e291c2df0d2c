package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var solverDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "tristrike_solver_duration_seconds",
	Help:    "Time spent searching for the computer's move",
	Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
})
