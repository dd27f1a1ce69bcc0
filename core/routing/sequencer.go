// Package routing orders the stops of a single route with a greedy,
// time-window and priority aware heuristic, then times the result against
// the driving-time regulation.
package routing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/rse"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/speed"
)

// Scoring constants of the greedy selection.
const (
	UrgencyPenalty   = -200.0
	MaxWaitPenalty   = 60
	LatenessPerMin   = 2
	DistancePerKm    = 10.0
	OnTimeShare      = 50.0
	DistanceShare    = 50.0
	DistancePenalty  = 20.0
	perfectScore     = 100.0
	maxCandidateTerm = 100.0
)

// Sequencer computes OptimizedRoutes. It holds no per-call state and is
// safe for concurrent use.
type Sequencer struct {
	rse rse.Engine
}

// NewSequencer returns a sequencer using the regulation limits.
func NewSequencer() *Sequencer {
	return &Sequencer{rse: rse.NewEngine()}
}

// NewSequencerWithEngine returns a sequencer checking routes with e.
func NewSequencerWithEngine(e rse.Engine) *Sequencer {
	return &Sequencer{rse: e}
}

type weights struct {
	timeWindow float64
	priority   float64
	distance   float64
}

// weightsFor scales the time-window and priority terms relative to their
// defaults; the distance term takes its weight as is.
func weightsFor(c model.RouteConstraints) weights {
	return weights{
		timeWindow: c.TimeWindowWeight / model.DefaultTimeWindowWeight,
		priority:   c.PriorityWeight / model.DefaultPriorityWeight,
		distance:   c.DistanceWeight,
	}
}

type candidate struct {
	pos      int
	index    int
	km       float64
	travel   int
	arrival  model.Clock
	wait     int
	onTime   bool
	score    float64
	assigned bool
}

// Optimize orders stops into a route leaving from and returning to depot.
// Stops without a usable location are left out. The input slice is not
// modified and the returned route shares no memory with it.
func (s *Sequencer) Optimize(stops []model.Stop, depot model.Depot, constraints model.RouteConstraints, category model.VehicleCategory) model.OptimizedRoute {
	c := constraints.WithDefaults()
	start := c.Start()

	valid := make([]model.Stop, 0, len(stops))
	for _, st := range stops {
		if st.HasValidLocation() {
			valid = append(valid, st)
		}
	}

	route := model.OptimizedRoute{
		Stops:           []model.Stop{},
		Arrivals:        []model.StopArrival{},
		StartTime:       start,
		EndTime:         start,
		Feasible:        true,
		Violations:      []string{},
		Warnings:        []string{},
		VehicleCategory: category,
		AverageSpeedKmh: speed.AverageSpeed(category),
	}
	if len(valid) == 0 {
		return route
	}

	w := weightsFor(c)
	remaining := make([]int, len(valid))
	for i := range remaining {
		remaining[i] = i
	}

	now := start
	from := depot.Location
	legs := make([]float64, 0, len(valid)+1)
	for len(remaining) > 0 {
		var best candidate
		for pos, idx := range remaining {
			cand := evaluate(valid[idx], from, now, category, w)
			cand.pos, cand.index = pos, idx
			if !best.assigned || cand.score > best.score || (cand.score == best.score && idx < best.index) {
				best = cand
				best.assigned = true
			}
		}

		stop := valid[best.index].Clone()
		arrival := best.arrival.Add(best.wait)
		departure := arrival.Add(nonNegative(stop.ServiceDurationMin))
		route.Stops = append(route.Stops, stop)
		route.Arrivals = append(route.Arrivals, model.StopArrival{
			StopID:                 stop.ID,
			Address:                stop.Address,
			Sequence:               len(route.Arrivals) + 1,
			EstimatedArrival:       arrival,
			EstimatedDeparture:     departure,
			IsOnTime:               best.onTime,
			WaitTime:               best.wait,
			DistanceFromPreviousKm: round2(best.km),
			TravelMinutes:          best.travel,
		})
		legs = append(legs, best.km)

		now = departure
		from = *stop.Location

		last := len(remaining) - 1
		remaining[best.pos] = remaining[last]
		remaining = remaining[:last]
	}

	backKm := Haversine(from, depot.Location)
	backMinutes := speed.TravelTime(backKm, category)
	legs = append(legs, backKm)

	route.TotalDistanceKm = round2(floats.Sum(legs))
	route.EndTime = now.Add(backMinutes)
	route.EstimatedFuelCost = speed.FuelCost(route.TotalDistanceKm, category, c.FuelPricePerLiter)

	compliance := s.rse.Check(segmentsFor(route, depot, backMinutes), start, category.IsHeavy())
	route.Compliance = &compliance
	route.TotalDurationMinutes = compliance.ElapsedMinutes()

	for i, a := range route.Arrivals {
		if !a.IsOnTime {
			route.Violations = append(route.Violations, fmt.Sprintf("Late arrival at %s: %s (window %s)",
				route.Stops[i].Label(), a.EstimatedArrival, route.Stops[i].WindowString()))
		}
	}
	if route.TotalDistanceKm > c.MaxDistanceKm {
		route.Violations = append(route.Violations, fmt.Sprintf("Total distance %.2f km exceeds the maximum of %.0f km",
			route.TotalDistanceKm, c.MaxDistanceKm))
	}
	route.Violations = append(route.Violations, compliance.Violations...)

	route.Warnings = append(route.Warnings, compliance.Warnings...)
	if route.TotalDurationMinutes > c.MaxDurationMinutes {
		route.Warnings = append(route.Warnings, fmt.Sprintf("Route duration %d min exceeds the maximum of %d min",
			route.TotalDurationMinutes, c.MaxDurationMinutes))
	}
	if route.EndTime > c.End() {
		route.Warnings = append(route.Warnings, fmt.Sprintf("Route returns to depot at %s, after the end of day %s",
			route.EndTime, c.End()))
	}
	if len(route.Stops) > c.MaxStops {
		route.Warnings = append(route.Warnings, fmt.Sprintf("%d stops exceed the maximum of %d per route",
			len(route.Stops), c.MaxStops))
	}

	route.Score = routeScore(route.OnTimeCount(), len(route.Stops), route.TotalDistanceKm, c.MaxDistanceKm)
	route.Feasible = len(route.Violations) == 0
	return route
}

func evaluate(stop model.Stop, from model.GeoPoint, now model.Clock, category model.VehicleCategory, w weights) candidate {
	km := Haversine(from, *stop.Location)
	travel := speed.TravelTime(km, category)
	arrival := now.Add(travel)

	tw, wait, onTime := windowScore(stop, arrival)
	score := tw*w.timeWindow + stop.Priority.Score()*w.priority + distanceScore(km)*w.distance
	if !onTime {
		score += UrgencyPenalty
	}
	return candidate{km: km, travel: travel, arrival: arrival, wait: wait, onTime: onTime, score: score}
}

// windowScore rates an arrival against the stop's delivery window. Arriving
// early costs one point per minute of waiting, capped at 60; arriving late
// costs two points per minute, capped at 100, and misses the window.
func windowScore(stop model.Stop, arrival model.Clock) (score float64, wait int, onTime bool) {
	if stop.TimeWindowStart != nil && arrival < *stop.TimeWindowStart {
		wait = int(*stop.TimeWindowStart - arrival)
		return perfectScore - float64(min(wait, MaxWaitPenalty)), wait, true
	}
	if stop.TimeWindowEnd != nil && arrival > *stop.TimeWindowEnd {
		delay := int(arrival - *stop.TimeWindowEnd)
		return perfectScore - math.Min(float64(LatenessPerMin*delay), maxCandidateTerm), 0, false
	}
	return perfectScore, 0, true
}

func distanceScore(km float64) float64 {
	return perfectScore - math.Min(DistancePerKm*km, maxCandidateTerm)
}

// segmentsFor turns the ordered route into regulation segments: one per
// stop, plus the drive back to the depot.
func segmentsFor(route model.OptimizedRoute, depot model.Depot, backMinutes int) []rse.Segment {
	segs := make([]rse.Segment, 0, len(route.Arrivals)+1)
	for i, a := range route.Arrivals {
		segs = append(segs, rse.Segment{
			DrivingMinutes:      a.TravelMinutes,
			WaitMinutes:         a.WaitTime,
			StopDurationMinutes: nonNegative(route.Stops[i].ServiceDurationMin),
			Location:            route.Stops[i].Label(),
		})
	}
	back := depot.Address
	if back == "" {
		back = "depot"
	}
	return append(segs, rse.Segment{DrivingMinutes: backMinutes, Location: back})
}

func routeScore(onTime, n int, distanceKm, maxDistanceKm float64) int {
	if n == 0 {
		return 0
	}
	v := OnTimeShare*float64(onTime)/float64(n) + math.Max(0, DistanceShare-DistancePenalty*(distanceKm/maxDistanceKm))
	return int(math.Max(0, math.Min(perfectScore, speed.RoundHalfUp(v))))
}

func round2(x float64) float64 {
	return speed.RoundHalfUp(x*100) / 100
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
