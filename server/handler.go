package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/astrorover/spherenav/pathfind"
	"github.com/astrorover/spherenav/sphere"
	"github.com/astrorover/spherenav/vertexgraph"
)

// Handler serves route queries against one immutable graph.
type Handler struct {
	graph    *vertexgraph.Graph
	validate *validator.Validate
	log      *slog.Logger
}

// NewHandler returns a Handler for the given built graph.
// A nil logger falls back to slog.Default().
func NewHandler(graph *vertexgraph.Graph, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}

	return &Handler{
		graph:    graph,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes mounts the API on the given router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/route", h.CalculateRoute).Methods(http.MethodPost)
	r.HandleFunc("/api/bodies", h.ListBodies).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// CalculateRoute handles POST /api/route.
func (h *Handler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	defer func() { routeDuration.Observe(time.Since(started).Seconds()) }()

	// 1) Decode and validate the payload. Validation failures are the
	//    caller-level InvalidParameter kind, never a core error.
	req, err := h.decodeRouteRequest(r)
	if err != nil {
		routeQueries.WithLabelValues(outcomeInvalid).Inc()
		h.log.Warn("rejected route request", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	start := req.Start.toPoint()
	finish := req.Finish.toPoint()

	// 2) Query the core. Absence of a route is a normal result.
	path, found := pathfind.FindShortestPath(start, finish, h.graph)

	resp := routeResponse{
		Found: found,
		Body:  h.graph.Body().String(),
	}
	if found {
		routeQueries.WithLabelValues(outcomeFound).Inc()
		radius := h.graph.Body().RadiusKm()
		resp.Segments = make([]segmentJSON, len(path))
		for i, seg := range path {
			cost := seg.Cost(radius)
			resp.Segments[i] = segmentJSON{
				Start:  pointJSON{Lat: seg.Start.Lat, Lng: seg.Start.Lng},
				Finish: pointJSON{Lat: seg.Finish.Lat, Lng: seg.Finish.Lng},
				CostKm: cost,
			}
			resp.TotalKm += cost
		}
	} else {
		routeQueries.WithLabelValues(outcomeNoRoute).Inc()
	}

	h.log.Info("route query",
		"start", start.String(),
		"finish", finish.String(),
		"found", found,
		"segments", len(resp.Segments),
		"elapsed", time.Since(started),
	)
	writeJSON(w, http.StatusOK, resp)
}

// ListBodies handles GET /api/bodies.
func (h *Handler) ListBodies(w http.ResponseWriter, _ *http.Request) {
	bodies := sphere.Bodies()
	out := make([]bodyJSON, len(bodies))
	for i, b := range bodies {
		out[i] = bodyJSON{Name: b.String(), RadiusKm: b.RadiusKm()}
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeRouteRequest decodes and validates a route payload, mapping every
// failure to ErrInvalidParameter.
func (h *Handler) decodeRouteRequest(r *http.Request) (*routeRequest, error) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body: %v", ErrInvalidParameter, err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	return &req, nil
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
