package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	editorOpens = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendor_dashboard",
			Subsystem: "editor",
			Name:      "sessions_opened_total",
			Help:      "Total number of edit sessions opened",
		},
	)

	editorOpensFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendor_dashboard",
			Subsystem: "editor",
			Name:      "session_opens_failed_total",
			Help:      "Total number of edit session loads that failed",
		},
	)

	editorSaves = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendor_dashboard",
			Subsystem: "editor",
			Name:      "saves_total",
			Help:      "Total number of successful order saves",
		},
	)

	editorSavesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendor_dashboard",
			Subsystem: "editor",
			Name:      "saves_failed_total",
			Help:      "Total number of failed order saves",
		},
	)

	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendor_dashboard",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders placed through the dashboard",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		editorOpens,
		editorOpensFailed,
		editorSaves,
		editorSavesFailed,
		ordersPlaced,
	)
}
