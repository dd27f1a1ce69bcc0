package scenarios

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planning"
)

// Outcome holds what the planner produced for a scenario.
type Outcome struct {
	Route      *planning.PlanResult   `json:"route,omitempty"`
	Assignment *model.RouteAssignment `json:"assignment,omitempty"`
}

// Run plays sc against a planner built over defaults. A scenario with a
// Now pins the clock used for document expiry checks.
func Run(ctx context.Context, sc *Scenario, defaults model.RouteConstraints, opts ...planning.Option) (*Outcome, error) {
	if sc.Now != nil {
		now := *sc.Now
		opts = append(opts, planning.WithClock(func() time.Time { return now }))
	}
	p := planning.NewPlanner(defaults, opts...)

	var out Outcome
	distance := 0.0
	if sc.HasRoute() {
		res, err := p.Plan(ctx, sc.PlanRequest())
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		out.Route = &res
		distance = res.Route.TotalDistanceKm
	}
	if sc.HasAssignment() {
		best, err := p.Assign(ctx, sc.AssignRequest(distance))
		if err != nil && !errors.Is(err, planning.ErrNoAssignment) {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		out.Assignment = best
	}
	return &out, nil
}

// Check compares an outcome with the scenario expectations and returns one
// message per mismatch.
func Check(sc *Scenario, o *Outcome) []string {
	var diffs []string
	exp := sc.Expected
	if r := o.Route; r != nil {
		route := r.Route
		if exp.Feasible != nil && route.Feasible != *exp.Feasible {
			diffs = append(diffs, fmt.Sprintf("feasible: got %t, want %t (violations: %s)",
				route.Feasible, *exp.Feasible, strings.Join(route.Violations, "; ")))
		}
		if len(exp.Order) > 0 {
			got := make([]string, len(route.Stops))
			for i, s := range route.Stops {
				got[i] = s.ID
			}
			if !slices.Equal(got, exp.Order) {
				diffs = append(diffs, fmt.Sprintf("order: got %v, want %v", got, exp.Order))
			}
		}
		if exp.Breaks != nil && route.Compliance != nil && route.Compliance.BreakCount() != *exp.Breaks {
			diffs = append(diffs, fmt.Sprintf("breaks: got %d, want %d", route.Compliance.BreakCount(), *exp.Breaks))
		}
		if route.Score < exp.MinScore {
			diffs = append(diffs, fmt.Sprintf("score: got %d, want at least %d", route.Score, exp.MinScore))
		}
		for _, want := range exp.Violations {
			if !slices.ContainsFunc(route.Violations, func(v string) bool { return strings.Contains(v, want) }) {
				diffs = append(diffs, fmt.Sprintf("violation containing %q not found", want))
			}
		}
	}

	if !sc.HasAssignment() {
		return diffs
	}
	a := o.Assignment
	switch {
	case exp.NoAssignment && a != nil:
		diffs = append(diffs, fmt.Sprintf("assignment: got %s/%s, want none", a.Vehicle.ID, a.Driver.ID))
	case !exp.NoAssignment && a == nil && (exp.VehicleID != "" || exp.DriverID != ""):
		diffs = append(diffs, "assignment: got none")
	case a != nil:
		if exp.VehicleID != "" && a.Vehicle.ID != exp.VehicleID {
			diffs = append(diffs, fmt.Sprintf("vehicle: got %s, want %s", a.Vehicle.ID, exp.VehicleID))
		}
		if exp.DriverID != "" && a.Driver.ID != exp.DriverID {
			diffs = append(diffs, fmt.Sprintf("driver: got %s, want %s", a.Driver.ID, exp.DriverID))
		}
	}
	return diffs
}
