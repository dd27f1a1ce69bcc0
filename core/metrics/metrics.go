package metrics

import (
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// RouteResult summarizes one route computation.
type RouteResult struct {
	RouteID         string
	Category        model.VehicleCategory
	Stops           int
	Feasible        bool
	DistanceKm      float64
	DurationMinutes int
	Breaks          int
	Elapsed         time.Duration
}

// AssignmentResult summarizes one vehicle/driver pairing search.
type AssignmentResult struct {
	RequestID  string
	Found      bool
	TotalScore float64
	Candidates int
	Elapsed    time.Duration
}

// PlanningSink records planner activity for observability.
type PlanningSink interface {
	RecordRoute(r RouteResult) error
	RecordAssignment(a AssignmentResult) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordRoute(RouteResult) error           { return nil }
func (NopSink) RecordAssignment(AssignmentResult) error { return nil }
