package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planning"
)

type stubPlanner struct {
	planReq planning.PlanRequest
	plan    planning.PlanResult
	planErr error
	assign  *model.RouteAssignment
	err     error
}

func (s *stubPlanner) Plan(_ context.Context, req planning.PlanRequest) (planning.PlanResult, error) {
	s.planReq = req
	return s.plan, s.planErr
}

func (s *stubPlanner) Assign(context.Context, planning.AssignRequest) (*model.RouteAssignment, error) {
	return s.assign, s.err
}

func serve(h http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestOptimizeHandler(t *testing.T) {
	stub := &stubPlanner{plan: planning.PlanResult{RouteID: "r1", Route: model.OptimizedRoute{Feasible: true, Score: 100}}}
	h := NewOptimizeHandler(stub, 0)

	rr := serve(h, http.MethodPost, `{
		"depot": {"address": "Depot", "location": {"lat": 48.85, "lng": 2.35}},
		"stops": [{"id": "s1", "address": "A", "location": {"lat": 48.9, "lng": 2.3}, "timeWindowEnd": "10:30", "serviceDurationMin": 15, "priority": "HIGH"}],
		"constraints": {"startTime": "07:00"},
		"vehicleCategory": "PORTEUR"
	}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var out planning.PlanResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "r1", out.RouteID)
	assert.Equal(t, 100, out.Route.Score)

	req := stub.planReq
	require.Len(t, req.Stops, 1)
	assert.Equal(t, model.MustClock("10:30"), *req.Stops[0].TimeWindowEnd)
	assert.Equal(t, model.PriorityHigh, req.Stops[0].Priority)
	assert.Equal(t, model.MustClock("07:00"), req.Constraints.Start())
	assert.Equal(t, model.CategoryPorteur, req.VehicleCategory)
}

func TestOptimizeHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		err    error
		limit  int64
		status int
	}{
		{"method", http.MethodGet, "", nil, 0, http.StatusMethodNotAllowed},
		{"malformed", http.MethodPost, "{", nil, 0, http.StatusBadRequest},
		{"bad clock", http.MethodPost, `{"constraints": {"startTime": "25:00"}}`, nil, 0, http.StatusBadRequest},
		{"too large", http.MethodPost, `{"depot": {"address": "a very long address"}}`, nil, 10, http.StatusRequestEntityTooLarge},
		{"invalid depot", http.MethodPost, `{}`, planning.ErrInvalidDepot, 0, http.StatusUnprocessableEntity},
		{"internal", http.MethodPost, `{}`, errors.New("boom"), 0, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOptimizeHandler(&stubPlanner{planErr: tt.err}, tt.limit)
			rr := serve(h, tt.method, tt.body)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestAssignHandler(t *testing.T) {
	stub := &stubPlanner{assign: &model.RouteAssignment{
		Vehicle:    model.Vehicle{ID: "v1"},
		Driver:     model.Driver{ID: "d1"},
		TotalScore: 92.5,
	}}
	rr := serve(NewAssignHandler(stub, 1<<20), http.MethodPost, `{"vehicles": [{"id": "v1", "status": "ACTIVE"}], "drivers": [{"id": "d1", "status": "ACTIVE"}]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var out model.RouteAssignment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "v1", out.Vehicle.ID)
	assert.InDelta(t, 92.5, out.TotalScore, 1e-9)

	rr = serve(NewAssignHandler(&stubPlanner{err: planning.ErrNoAssignment}, 0), http.MethodPost, `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no compatible vehicle and driver")
}

func TestRegister_WithPlanner(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, planning.NewPlanner(model.RouteConstraints{}), Options{MaxBodyBytes: 1 << 20})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/routes/optimize", "application/json", strings.NewReader(`{
		"depot": {"location": {"lat": 48.85, "lng": 2.35}},
		"stops": [{"id": "s1", "location": {"lat": 48.95, "lng": 2.35}, "serviceDurationMin": 10}],
		"vehicleCategory": "UTILITAIRE"
	}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out planning.PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Route.Arrivals, 1)
	assert.True(t, out.Route.Feasible)

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
