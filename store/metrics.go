package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rewritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safetynet_store_rewrites_total",
		Help: "Number of full rewrites of the backing document.",
	})
	reloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safetynet_store_reloads_total",
		Help: "Number of reloads triggered by external changes to the backing document.",
	})
)
