package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tristrike_rounds_started_total",
		Help: "Rounds started by mode",
	}, []string{"mode"})

	roundsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tristrike_rounds_finished_total",
		Help: "Rounds finished by result",
	}, []string{"result"})
)
