package metrics

import (
	"context"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/events"
	coremetrics "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/logger"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/internal/eventbus"
)

// StartEventCollector subscribes to bus and records planner events in sink.
// It stops when ctx is canceled or the bus is closed; the returned channel
// is closed once the collector has exited.
func StartEventCollector(ctx context.Context, bus *eventbus.TypedBus[events.Event], sink coremetrics.PlanningSink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := record(sink, ev); err != nil {
					log.Warnf("record %s: %v", ev.Kind(), err)
				}
			}
		}
	}()
	return done
}

func record(sink coremetrics.PlanningSink, ev events.Event) error {
	switch e := ev.(type) {
	case events.RouteOptimized:
		return sink.RecordRoute(coremetrics.RouteResult{
			RouteID:         e.RouteID,
			Category:        e.Category,
			Stops:           e.Stops,
			Feasible:        e.Feasible,
			DistanceKm:      e.DistanceKm,
			DurationMinutes: e.Duration,
			Breaks:          e.Breaks,
			Elapsed:         e.Elapsed,
		})
	case events.AssignmentSearched:
		return sink.RecordAssignment(coremetrics.AssignmentResult{
			RequestID:  e.RequestID,
			Found:      e.Found,
			TotalScore: e.TotalScore,
			Candidates: e.Candidates,
			Elapsed:    e.Elapsed,
		})
	}
	return nil
}
