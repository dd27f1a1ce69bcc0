// Package routes exposes the planner over HTTP.
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/monitoring"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planlog"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planning"
)

// Planner is the subset of planning.Planner served by the handlers.
type Planner interface {
	Plan(ctx context.Context, req planning.PlanRequest) (planning.PlanResult, error)
	Assign(ctx context.Context, req planning.AssignRequest) (*model.RouteAssignment, error)
}

type errorBody struct {
	Error string `json:"error"`
}

// NewOptimizeHandler returns an HTTP handler computing a route via
// POST /api/routes/optimize. Bodies larger than maxBody bytes are rejected
// when maxBody is positive.
func NewOptimizeHandler(p Planner, maxBody int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req planning.PlanRequest
		if !decode(w, r, maxBody, &req) {
			return
		}
		res, err := p.Plan(r.Context(), req)
		switch {
		case errors.Is(err, planning.ErrInvalidDepot):
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
			return
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, res)
	})
}

// NewAssignHandler returns an HTTP handler choosing a vehicle and driver via
// POST /api/assignments. It answers 404 when no pair is compatible.
func NewAssignHandler(p Planner, maxBody int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req planning.AssignRequest
		if !decode(w, r, maxBody, &req) {
			return
		}
		best, err := p.Assign(r.Context(), req)
		switch {
		case errors.Is(err, planning.ErrNoAssignment):
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
			return
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, best)
	})
}

// Options tunes the mounted handlers.
type Options struct {
	MaxBodyBytes int64
	// Store serves /api/plans/logs when set.
	Store    planlog.Store
	Token    string
	Reporter monitoring.Reporter
}

// Register mounts the planner handlers on mux.
func Register(mux *http.ServeMux, p Planner, opts Options) {
	rep := monitoring.OrNop(opts.Reporter)
	mux.Handle("/api/routes/optimize", Reporting(NewOptimizeHandler(p, opts.MaxBodyBytes), rep, "optimize"))
	mux.Handle("/api/assignments", Reporting(NewAssignHandler(p, opts.MaxBodyBytes), rep, "assignments"))
	if opts.Store != nil {
		mux.Handle("/api/plans/logs", Reporting(NewLogHandler(opts.Store, opts.Token), rep, "plan_logs"))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decode(w http.ResponseWriter, r *http.Request, maxBody int64, v any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorBody{Error: err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
