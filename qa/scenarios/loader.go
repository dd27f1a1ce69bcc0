package scenarios

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planning"
)

// Expected lists the checks run against a scenario outcome. Unset fields
// are not checked.
type Expected struct {
	Feasible     *bool    `yaml:"feasible,omitempty"`
	Order        []string `yaml:"order,omitempty"`
	Breaks       *int     `yaml:"breaks,omitempty"`
	MinScore     int      `yaml:"min_score,omitempty"`
	Violations   []string `yaml:"violations,omitempty"`
	VehicleID    string   `yaml:"vehicle_id,omitempty"`
	DriverID     string   `yaml:"driver_id,omitempty"`
	NoAssignment bool     `yaml:"no_assignment,omitempty"`
}

// Scenario is a reproducible planning case: a route to sequence, a fleet to
// assign, or both.
type Scenario struct {
	Name                string                 `yaml:"name"`
	Description         string                 `yaml:"description,omitempty"`
	Now                 *time.Time             `yaml:"now,omitempty"`
	Depot               model.Depot            `yaml:"depot"`
	VehicleCategory     model.VehicleCategory  `yaml:"vehicle_category"`
	Constraints         model.RouteConstraints `yaml:"constraints"`
	Stops               []model.Stop           `yaml:"stops"`
	Vehicles            []model.Vehicle        `yaml:"vehicles,omitempty"`
	Drivers             []model.Driver         `yaml:"drivers,omitempty"`
	StopConstraints     []model.StopConstraint `yaml:"stop_constraints,omitempty"`
	EstimatedDistanceKm float64                `yaml:"estimated_distance_km,omitempty"`
	Expected            Expected               `yaml:"expected"`
}

// HasRoute reports whether the scenario sequences stops.
func (s *Scenario) HasRoute() bool { return len(s.Stops) > 0 }

// HasAssignment reports whether the scenario searches a vehicle/driver pair.
func (s *Scenario) HasAssignment() bool { return len(s.Vehicles) > 0 || len(s.Drivers) > 0 }

// PlanRequest returns the routing part of the scenario.
func (s *Scenario) PlanRequest() planning.PlanRequest {
	return planning.PlanRequest{
		Depot:           s.Depot,
		Stops:           s.Stops,
		Constraints:     s.Constraints,
		VehicleCategory: s.VehicleCategory,
	}
}

// AssignRequest returns the assignment part of the scenario for a route of
// distanceKm, used when the scenario gives no estimate of its own.
func (s *Scenario) AssignRequest(distanceKm float64) planning.AssignRequest {
	if s.EstimatedDistanceKm > 0 {
		distanceKm = s.EstimatedDistanceKm
	}
	return planning.AssignRequest{
		Vehicles:            s.Vehicles,
		Drivers:             s.Drivers,
		Constraints:         s.Constraints,
		StopConstraints:     s.StopConstraints,
		EstimatedDistanceKm: distanceKm,
	}
}

// Validate checks that the scenario can be run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario name is required")
	}
	if !s.HasRoute() && !s.HasAssignment() {
		return fmt.Errorf("scenario %s: no stops, vehicles or drivers", s.Name)
	}
	if s.HasRoute() && !s.Depot.Location.Valid() {
		return fmt.Errorf("scenario %s: %w", s.Name, planning.ErrInvalidDepot)
	}
	if s.VehicleCategory != "" && !s.VehicleCategory.IsValid() {
		return fmt.Errorf("scenario %s: unknown vehicle category %q", s.Name, s.VehicleCategory)
	}
	return nil
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	out := make([]*Scenario, 0, len(files))
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
