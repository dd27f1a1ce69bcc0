package events

import (
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// Event is anything published on the planner bus.
type Event interface {
	Kind() string
}

// RouteOptimized is published after every route computation.
type RouteOptimized struct {
	RouteID    string
	Category   model.VehicleCategory
	Stops      int
	DistanceKm float64
	Duration   int
	Feasible   bool
	Breaks     int
	Violations []string
	Elapsed    time.Duration
	At         time.Time
}

func (RouteOptimized) Kind() string { return "route_optimized" }

// AssignmentSearched is published after every pairing search. VehicleID and
// DriverID are empty when no pair was found.
type AssignmentSearched struct {
	RequestID  string
	Found      bool
	VehicleID  string
	DriverID   string
	TotalScore float64
	Candidates int
	Elapsed    time.Duration
	At         time.Time
}

func (AssignmentSearched) Kind() string { return "assignment_searched" }
