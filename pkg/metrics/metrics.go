package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InstructionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_instructions_total",
			Help: "Total number of executed program instructions",
		},
		[]string{"program", "instruction", "status"},
	)

	InstructionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arcade_instruction_duration_seconds",
			Help:    "Duration of program instruction execution",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"program", "instruction"},
	)

	EventsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_events_emitted_total",
			Help: "Total number of events appended to the event log",
		},
		[]string{"program", "instruction"},
	)
)
