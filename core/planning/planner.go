package planning

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/compat"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/events"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/logger"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/routing"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/internal/eventbus"
)

var (
	// ErrInvalidDepot is returned when the depot has no usable coordinates.
	ErrInvalidDepot = errors.New("depot location is invalid")
	// ErrNoAssignment is returned when no active vehicle/driver pair scores above zero.
	ErrNoAssignment = errors.New("no compatible vehicle and driver")
)

// PlanRequest asks for one optimized route.
type PlanRequest struct {
	Depot           model.Depot            `json:"depot" yaml:"depot"`
	Stops           []model.Stop           `json:"stops" yaml:"stops"`
	Constraints     model.RouteConstraints `json:"constraints" yaml:"constraints"`
	VehicleCategory model.VehicleCategory  `json:"vehicleCategory" yaml:"vehicle_category"`
}

// PlanResult is an optimized route tagged with the identifier used in
// events and logs.
type PlanResult struct {
	RouteID string               `json:"routeId"`
	Route   model.OptimizedRoute `json:"route"`
}

// AssignRequest asks for the best vehicle/driver pair for a route.
type AssignRequest struct {
	Vehicles            []model.Vehicle        `json:"vehicles" yaml:"vehicles"`
	Drivers             []model.Driver         `json:"drivers" yaml:"drivers"`
	Constraints         model.RouteConstraints `json:"constraints" yaml:"constraints"`
	StopConstraints     []model.StopConstraint `json:"stopConstraints" yaml:"stop_constraints"`
	EstimatedDistanceKm float64                `json:"estimatedDistanceKm" yaml:"estimated_distance_km"`
}

// BatchResult holds the outcome of one request of a batch.
type BatchResult struct {
	Index  int
	Result PlanResult
	Err    error
}

// Planner wires the sequencer and the compatibility scorer behind a
// context-aware API and publishes an event for every computation.
type Planner struct {
	defaults    model.RouteConstraints
	sequencer   *routing.Sequencer
	log         logger.Logger
	bus         *eventbus.TypedBus[events.Event]
	now         func() time.Time
	concurrency int
}

// Option customizes a Planner.
type Option func(*Planner)

func WithLogger(l logger.Logger) Option { return func(p *Planner) { p.log = l } }

// WithBus publishes planner events on b.
func WithBus(b *eventbus.TypedBus[events.Event]) Option { return func(p *Planner) { p.bus = b } }

// WithClock overrides the wall clock used for document expiry checks.
func WithClock(now func() time.Time) Option { return func(p *Planner) { p.now = now } }

// WithConcurrency bounds the routes PlanBatch computes in parallel.
func WithConcurrency(n int) Option { return func(p *Planner) { p.concurrency = n } }

// NewPlanner creates a planner whose requests are merged over defaults.
func NewPlanner(defaults model.RouteConstraints, opts ...Option) *Planner {
	p := &Planner{
		defaults:    defaults.WithDefaults(),
		sequencer:   routing.NewSequencer(),
		log:         logger.NopLogger{},
		now:         time.Now,
		concurrency: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(p)
	}
	if p.concurrency < 1 {
		p.concurrency = 1
	}
	return p
}

// Defaults returns the constraints applied under every request.
func (p *Planner) Defaults() model.RouteConstraints { return p.defaults }

// Plan sequences the stops of req.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return PlanResult{}, err
	}
	if !req.Depot.Location.Valid() {
		return PlanResult{}, fmt.Errorf("plan: %w", ErrInvalidDepot)
	}
	constraints := p.defaults.Merge(req.Constraints)
	category := req.VehicleCategory
	if category == "" && constraints.VehicleType != nil {
		category = *constraints.VehicleType
	}

	started := time.Now()
	route := p.sequencer.Optimize(req.Stops, req.Depot, constraints, category)
	elapsed := time.Since(started)
	res := PlanResult{RouteID: uuid.NewString(), Route: route}

	breaks := 0
	if route.Compliance != nil {
		breaks = route.Compliance.BreakCount()
	}
	p.log.Infow("route optimized", map[string]any{
		"route_id":    res.RouteID,
		"category":    string(category),
		"stops":       len(route.Stops),
		"distance_km": route.TotalDistanceKm,
		"feasible":    route.Feasible,
		"score":       route.Score,
	})
	for _, v := range route.Violations {
		p.log.Warnf("route %s: %s", res.RouteID, v)
	}
	p.publish(events.RouteOptimized{
		RouteID:    res.RouteID,
		Category:   category,
		Stops:      len(route.Stops),
		DistanceKm: route.TotalDistanceKm,
		Duration:   route.TotalDurationMinutes,
		Feasible:   route.Feasible,
		Breaks:     breaks,
		Violations: route.Violations,
		Elapsed:    elapsed,
		At:         p.now(),
	})
	return res, nil
}

// Assign finds the best vehicle/driver pair for req.
func (p *Planner) Assign(ctx context.Context, req AssignRequest) (*model.RouteAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	constraints := p.defaults.Merge(req.Constraints)
	scorer := compat.NewScorer(p.now())

	started := time.Now()
	best := scorer.FindBestAssignment(req.Vehicles, req.Drivers, constraints, req.StopConstraints, req.EstimatedDistanceKm)
	ev := events.AssignmentSearched{
		RequestID:  uuid.NewString(),
		Found:      best != nil,
		Candidates: len(req.Vehicles) * len(req.Drivers),
		Elapsed:    time.Since(started),
		At:         p.now(),
	}
	if best != nil {
		ev.VehicleID = best.Vehicle.ID
		ev.DriverID = best.Driver.ID
		ev.TotalScore = best.TotalScore
	}
	p.publish(ev)

	if best == nil {
		p.log.Infow("no assignment found", map[string]any{
			"request_id": ev.RequestID,
			"vehicles":   len(req.Vehicles),
			"drivers":    len(req.Drivers),
		})
		return nil, ErrNoAssignment
	}
	p.log.Infow("assignment found", map[string]any{
		"request_id": ev.RequestID,
		"vehicle_id": ev.VehicleID,
		"driver_id":  ev.DriverID,
		"score":      ev.TotalScore,
	})
	return best, nil
}

// PlanBatch plans every request with bounded parallelism. Results keep the
// order of reqs.
func (p *Planner) PlanBatch(ctx context.Context, reqs []PlanRequest) []BatchResult {
	out := make([]BatchResult, len(reqs))
	wp := pool.New().WithMaxGoroutines(p.concurrency)
	for i, req := range reqs {
		i, req := i, req
		wp.Go(func() {
			res, err := p.Plan(ctx, req)
			out[i] = BatchResult{Index: i, Result: res, Err: err}
		})
	}
	wp.Wait()
	return out
}

func (p *Planner) publish(ev events.Event) {
	if p.bus != nil {
		p.bus.Publish(ev)
	}
}
