// Command spherenav-server builds a vertex graph from a YAML route network
// once at startup and serves route queries over HTTP.
//
// Usage:
//
//	spherenav-server -network routes.yaml -addr :8080
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/astrorover/spherenav/routefile"
	"github.com/astrorover/spherenav/server"
)

func main() {
	var (
		networkPath = flag.String("network", "", "path to the YAML route network file (required)")
		addr        = flag.String("addr", ":8080", "listen address")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

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

	// The graph is built once and never mutated afterwards, so handler
	// goroutines read it without locking.
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

	router := mux.NewRouter()
	server.NewHandler(graph, log).RegisterRoutes(router)

	log.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Error("serve", "err", err)
		os.Exit(1)
	}
}
