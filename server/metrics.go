package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Route query outcomes used as the label of routeQueries.
const (
	outcomeFound   = "found"
	outcomeNoRoute = "no_route"
	outcomeInvalid = "invalid"
)

var (
	// routeQueries counts POST /api/route requests by outcome.
	routeQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spherenav",
		Name:      "route_queries_total",
		Help:      "Route queries served, labeled by outcome.",
	}, []string{"outcome"})

	// routeDuration observes end-to-end route query latency in seconds.
	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "spherenav",
		Name:      "route_query_duration_seconds",
		Help:      "Route query latency.",
		Buckets:   prometheus.DefBuckets,
	})
)
