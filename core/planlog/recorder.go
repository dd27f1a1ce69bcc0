package planlog

import (
	"context"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/events"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/logger"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/internal/eventbus"
)

// FromEvent converts a planner event into a record.
func FromEvent(ev events.Event) (Record, bool) {
	switch e := ev.(type) {
	case events.RouteOptimized:
		return Record{
			Timestamp:  e.At,
			Kind:       KindRoute,
			ID:         e.RouteID,
			Category:   e.Category,
			Stops:      e.Stops,
			DistanceKm: e.DistanceKm,
			Feasible:   e.Feasible,
			Breaks:     e.Breaks,
			Violations: e.Violations,
		}, true
	case events.AssignmentSearched:
		return Record{
			Timestamp: e.At,
			Kind:      KindAssignment,
			ID:        e.RequestID,
			Feasible:  e.Found,
			VehicleID: e.VehicleID,
			DriverID:  e.DriverID,
			Score:     e.TotalScore,
		}, true
	}
	return Record{}, false
}

// StartRecorder appends every planner event published on bus to store until
// ctx is canceled or the bus is closed. The returned channel is closed once
// the recorder has exited.
func StartRecorder(ctx context.Context, bus *eventbus.TypedBus[events.Event], store Store, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || store == nil {
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
				rec, ok := FromEvent(ev)
				if !ok {
					continue
				}
				if err := store.Append(context.WithoutCancel(ctx), rec); err != nil {
					log.Warnf("plan log append %s: %v", rec.ID, err)
				}
			}
		}
	}()
	return done
}
