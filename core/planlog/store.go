// Package planlog keeps a queryable history of planner decisions.
package planlog

import (
	"context"
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// Kinds of records.
const (
	KindRoute      = "route"
	KindAssignment = "assignment"
)

// Record captures one route computation or assignment search.
type Record struct {
	Timestamp  time.Time             `json:"timestamp"`
	Kind       string                `json:"kind"`
	ID         string                `json:"id"`
	Category   model.VehicleCategory `json:"category,omitempty"`
	Stops      int                   `json:"stops,omitempty"`
	DistanceKm float64               `json:"distance_km,omitempty"`
	Feasible   bool                  `json:"feasible"`
	Breaks     int                   `json:"breaks,omitempty"`
	Violations []string              `json:"violations,omitempty"`
	VehicleID  string                `json:"vehicle_id,omitempty"`
	DriverID   string                `json:"driver_id,omitempty"`
	Score      float64               `json:"score,omitempty"`
}

// Query filters records. Zero fields match everything.
type Query struct {
	Start     time.Time
	End       time.Time
	Kind      string
	Category  model.VehicleCategory
	VehicleID string
	// Infeasible keeps only routes with violations.
	Infeasible bool
}

// Matches reports whether r passes every filter of q.
func (q Query) Matches(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Kind != "" && r.Kind != q.Kind {
		return false
	}
	if q.Category != "" && r.Category != q.Category {
		return false
	}
	if q.VehicleID != "" && r.VehicleID != q.VehicleID {
		return false
	}
	if q.Infeasible && (r.Kind != KindRoute || r.Feasible) {
		return false
	}
	return true
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
