// Command spherenav loads a YAML route network, builds its vertex graph, and
// prints the minimum-cost route between two coordinates.
//
// Usage:
//
//	spherenav -network routes.yaml -from-lat 54.35 -from-lng 18.6667 \
//	          -to-lat 52.25 -to-lng 21.0
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/astrorover/spherenav/pathfind"
	"github.com/astrorover/spherenav/routefile"
	"github.com/astrorover/spherenav/sphere"
)

func main() {
	var (
		networkPath = flag.String("network", "", "path to the YAML route network file (required)")
		fromLat     = flag.Float64("from-lat", 0, "start latitude, degrees")
		fromLng     = flag.Float64("from-lng", 0, "start longitude, degrees")
		toLat       = flag.Float64("to-lat", 0, "finish latitude, degrees")
		toLng       = flag.Float64("to-lng", 0, "finish longitude, degrees")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *networkPath == "" {
		log.Error("missing required -network flag")
		flag.Usage()
		os.Exit(2)
	}

	network, err := routefile.Load(*networkPath)
	if err != nil {
		log.Error("load network", "path", *networkPath, "err", err)
		os.Exit(1)
	}

	graph, err := network.Build()
	if err != nil {
		log.Error("build graph", "err", err)
		os.Exit(1)
	}
	log.Info("graph built",
		"body", graph.Body().String(),
		"nodes", graph.NodeCount(),
		"connections", len(network.Connections),
	)

	start := sphere.NewPoint(*fromLat, *fromLng)
	finish := sphere.NewPoint(*toLat, *toLng)

	path, found := pathfind.FindShortestPath(start, finish, graph)
	if !found {
		fmt.Println("no route")

		return
	}

	radius := graph.Body().RadiusKm()
	var total float64
	for i, seg := range path {
		cost := seg.Cost(radius)
		total += cost
		fmt.Printf("%3d. %s  %.3f km\n", i+1, seg, cost)
	}
	fmt.Printf("total: %.3f km over %d segments\n", total, len(path))
}
