package planning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/events"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/internal/eventbus"
)

var (
	fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	depot    = model.Depot{Address: "Depot", Location: model.GeoPoint{Lat: 48.8566, Lng: 2.3522}}
)

func stop(id string, dLat float64) model.Stop {
	return model.Stop{
		ID:                 id,
		Address:            id + " street",
		Location:           &model.GeoPoint{Lat: depot.Location.Lat + dLat, Lng: depot.Location.Lng},
		ServiceDurationMin: 10,
	}
}

func days(n int) *time.Time {
	t := fixedNow.AddDate(0, 0, n)
	return &t
}

func newPlanner(opts ...Option) *Planner {
	return NewPlanner(model.RouteConstraints{}, append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func receive(t *testing.T, sub <-chan events.Event) events.Event {
	t.Helper()
	select {
	case ev := <-sub:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return nil
	}
}

func TestPlan_PublishesRouteOptimized(t *testing.T) {
	bus := eventbus.NewTyped[events.Event]()
	defer bus.Close()
	sub := bus.Subscribe()
	p := newPlanner(WithBus(bus))

	res, err := p.Plan(context.Background(), PlanRequest{
		Depot:           depot,
		Stops:           []model.Stop{stop("a", 0.05), stop("b", 0.1)},
		VehicleCategory: model.CategoryUtilitaire,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RouteID)
	assert.Len(t, res.Route.Stops, 2)
	assert.True(t, res.Route.Feasible)

	ev, ok := receive(t, sub).(events.RouteOptimized)
	require.True(t, ok)
	assert.Equal(t, res.RouteID, ev.RouteID)
	assert.Equal(t, 2, ev.Stops)
	assert.Equal(t, model.CategoryUtilitaire, ev.Category)
	assert.Equal(t, res.Route.TotalDistanceKm, ev.DistanceKm)
	assert.Equal(t, fixedNow, ev.At)
}

func TestPlan_MergesDefaultsAndVehicleType(t *testing.T) {
	p := NewPlanner(model.RouteConstraints{MaxStops: 1})
	assert.Equal(t, 1, p.Defaults().MaxStops)
	assert.Equal(t, model.DefaultMaxDistanceKm, int(p.Defaults().MaxDistanceKm))

	porteur := model.CategoryPorteur
	res, err := p.Plan(context.Background(), PlanRequest{
		Depot:       depot,
		Stops:       []model.Stop{stop("a", 0.05), stop("b", 0.1)},
		Constraints: model.RouteConstraints{VehicleType: &porteur},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryPorteur, res.Route.VehicleCategory)
	assert.Contains(t, res.Route.Warnings, "2 stops exceed the maximum of 1 per route")
}

func TestPlan_Errors(t *testing.T) {
	p := newPlanner()

	_, err := p.Plan(context.Background(), PlanRequest{Depot: model.Depot{Location: model.GeoPoint{Lat: 95}}})
	assert.ErrorIs(t, err, ErrInvalidDepot)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Plan(ctx, PlanRequest{Depot: depot})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.Assign(ctx, AssignRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssign(t *testing.T) {
	bus := eventbus.NewTyped[events.Event]()
	defer bus.Close()
	sub := bus.Subscribe()
	p := newPlanner(WithBus(bus))

	req := AssignRequest{
		Vehicles: []model.Vehicle{
			{ID: "v-off", Status: model.StatusInactive, Category: model.CategoryUtilitaire, FuelType: model.FuelDiesel},
			{ID: "v1", Status: model.StatusActive, Category: model.CategoryUtilitaire, FuelType: model.FuelDiesel},
		},
		Drivers: []model.Driver{
			{ID: "d1", Status: model.StatusActive, HireDate: days(-3650), CQCCardExpiry: days(400), LicenseExpiry: days(2000)},
		},
		Constraints:         model.RouteConstraints{MaxDistanceKm: 200},
		EstimatedDistanceKm: 100,
	}
	best, err := p.Assign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "v1", best.Vehicle.ID)
	assert.Equal(t, "d1", best.Driver.ID)

	ev, ok := receive(t, sub).(events.AssignmentSearched)
	require.True(t, ok)
	assert.True(t, ev.Found)
	assert.Equal(t, "v1", ev.VehicleID)
	assert.Equal(t, 2, ev.Candidates)
	assert.Equal(t, best.TotalScore, ev.TotalScore)
}

func TestAssign_NoCandidate(t *testing.T) {
	bus := eventbus.NewTyped[events.Event]()
	defer bus.Close()
	sub := bus.Subscribe()
	p := newPlanner(WithBus(bus))

	_, err := p.Assign(context.Background(), AssignRequest{
		Vehicles: []model.Vehicle{{ID: "v1", Status: model.StatusMaintenance}},
		Drivers:  []model.Driver{{ID: "d1", Status: model.StatusActive}},
	})
	assert.ErrorIs(t, err, ErrNoAssignment)

	ev, ok := receive(t, sub).(events.AssignmentSearched)
	require.True(t, ok)
	assert.False(t, ev.Found)
	assert.Empty(t, ev.VehicleID)
}

func TestPlanBatch_KeepsOrder(t *testing.T) {
	p := newPlanner(WithConcurrency(2))
	reqs := []PlanRequest{
		{Depot: depot, Stops: []model.Stop{stop("a", 0.05)}},
		{Depot: model.Depot{Location: model.GeoPoint{Lng: 200}}},
		{Depot: depot, Stops: []model.Stop{stop("b", 0.1), stop("c", 0.2)}},
		{Depot: depot},
	}
	out := p.PlanBatch(context.Background(), reqs)
	require.Len(t, out, len(reqs))

	for i, r := range out {
		assert.Equal(t, i, r.Index)
	}
	require.NoError(t, out[0].Err)
	assert.Len(t, out[0].Result.Route.Stops, 1)
	assert.ErrorIs(t, out[1].Err, ErrInvalidDepot)
	require.NoError(t, out[2].Err)
	assert.Len(t, out[2].Result.Route.Stops, 2)
	require.NoError(t, out[3].Err)
	assert.Empty(t, out[3].Result.Route.Stops)
	assert.NotEqual(t, out[0].Result.RouteID, out[2].Result.RouteID)
}

func TestNewPlanner_ConcurrencyFloor(t *testing.T) {
	p := NewPlanner(model.RouteConstraints{}, WithConcurrency(0))
	assert.Equal(t, 1, p.concurrency)
}
