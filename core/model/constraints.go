package model

// Default constraint values applied by WithDefaults.
const (
	DefaultMaxDistanceKm      = 1000
	DefaultMaxDurationMinutes = 600
	DefaultMaxStops           = 50
	DefaultPriorityWeight     = 0.3
	DefaultTimeWindowWeight   = 0.4
	DefaultDistanceWeight     = 0.3
	DefaultFuelPricePerLiter  = 1.85
)

var (
	DefaultStartTime = MustClock("08:00")
	DefaultEndTime   = MustClock("18:00")
)

// RouteConstraints bounds a single route computation. Zero fields are
// treated as unset and replaced by WithDefaults.
type RouteConstraints struct {
	MaxDistanceKm          float64          `json:"maxDistanceKm,omitempty" yaml:"max_distance_km,omitempty"`
	MaxDurationMinutes     int              `json:"maxDurationMinutes,omitempty" yaml:"max_duration_minutes,omitempty"`
	StartTime              *Clock           `json:"startTime,omitempty" yaml:"start_time,omitempty"`
	EndTime                *Clock           `json:"endTime,omitempty" yaml:"end_time,omitempty"`
	MaxStops               int              `json:"maxStops,omitempty" yaml:"max_stops,omitempty"`
	RequireRefrigeration   bool             `json:"requireRefrigeration,omitempty" yaml:"require_refrigeration,omitempty"`
	RequireLiftgate        bool             `json:"requireLiftgate,omitempty" yaml:"require_liftgate,omitempty"`
	RequiredCertifications []string         `json:"requiredCertifications,omitempty" yaml:"required_certifications,omitempty"`
	VehicleType            *VehicleCategory `json:"vehicleType,omitempty" yaml:"vehicle_type,omitempty"`
	PriorityWeight         float64          `json:"priorityWeight,omitempty" yaml:"priority_weight,omitempty"`
	TimeWindowWeight       float64          `json:"timeWindowWeight,omitempty" yaml:"time_window_weight,omitempty"`
	DistanceWeight         float64          `json:"distanceWeight,omitempty" yaml:"distance_weight,omitempty"`
	FuelPricePerLiter      float64          `json:"fuelPricePerLiter,omitempty" yaml:"fuel_price_per_liter,omitempty"`
}

// DefaultConstraints returns the documented defaults.
func DefaultConstraints() RouteConstraints {
	return RouteConstraints{}.WithDefaults()
}

// WithDefaults returns a copy of c where every unset field holds its
// documented default. The receiver is not modified.
func (c RouteConstraints) WithDefaults() RouteConstraints {
	out := c
	if out.MaxDistanceKm <= 0 {
		out.MaxDistanceKm = DefaultMaxDistanceKm
	}
	if out.MaxDurationMinutes <= 0 {
		out.MaxDurationMinutes = DefaultMaxDurationMinutes
	}
	if out.MaxStops <= 0 {
		out.MaxStops = DefaultMaxStops
	}
	if out.StartTime == nil {
		st := DefaultStartTime
		out.StartTime = &st
	}
	if out.EndTime == nil {
		et := DefaultEndTime
		out.EndTime = &et
	}
	if out.PriorityWeight <= 0 {
		out.PriorityWeight = DefaultPriorityWeight
	}
	if out.TimeWindowWeight <= 0 {
		out.TimeWindowWeight = DefaultTimeWindowWeight
	}
	if out.DistanceWeight <= 0 {
		out.DistanceWeight = DefaultDistanceWeight
	}
	if out.FuelPricePerLiter <= 0 {
		out.FuelPricePerLiter = DefaultFuelPricePerLiter
	}
	if c.RequiredCertifications != nil {
		out.RequiredCertifications = append([]string(nil), c.RequiredCertifications...)
	}
	return out
}

// Merge overlays the set fields of o onto c. It is used to apply per-request
// overrides on top of configured defaults.
func (c RouteConstraints) Merge(o RouteConstraints) RouteConstraints {
	out := c
	if o.MaxDistanceKm > 0 {
		out.MaxDistanceKm = o.MaxDistanceKm
	}
	if o.MaxDurationMinutes > 0 {
		out.MaxDurationMinutes = o.MaxDurationMinutes
	}
	if o.StartTime != nil {
		out.StartTime = o.StartTime
	}
	if o.EndTime != nil {
		out.EndTime = o.EndTime
	}
	if o.MaxStops > 0 {
		out.MaxStops = o.MaxStops
	}
	out.RequireRefrigeration = c.RequireRefrigeration || o.RequireRefrigeration
	out.RequireLiftgate = c.RequireLiftgate || o.RequireLiftgate
	if len(o.RequiredCertifications) > 0 {
		out.RequiredCertifications = append([]string(nil), o.RequiredCertifications...)
	}
	if o.VehicleType != nil {
		out.VehicleType = o.VehicleType
	}
	if o.PriorityWeight > 0 {
		out.PriorityWeight = o.PriorityWeight
	}
	if o.TimeWindowWeight > 0 {
		out.TimeWindowWeight = o.TimeWindowWeight
	}
	if o.DistanceWeight > 0 {
		out.DistanceWeight = o.DistanceWeight
	}
	if o.FuelPricePerLiter > 0 {
		out.FuelPricePerLiter = o.FuelPricePerLiter
	}
	return out
}

// Start returns the configured start time or the default.
func (c RouteConstraints) Start() Clock {
	if c.StartTime == nil {
		return DefaultStartTime
	}
	return *c.StartTime
}

// End returns the configured end time or the default.
func (c RouteConstraints) End() Clock {
	if c.EndTime == nil {
		return DefaultEndTime
	}
	return *c.EndTime
}

// RequiresCertification reports whether name is listed in RequiredCertifications.
func (c RouteConstraints) RequiresCertification(name string) bool {
	for _, r := range c.RequiredCertifications {
		if r == name {
			return true
		}
	}
	return false
}

// StopConstraint carries the physical and staffing needs of a single stop.
type StopConstraint struct {
	StopID               string   `json:"stopId" yaml:"stop_id"`
	MaxParcelWeightKg    float64  `json:"maxParcelWeightKg,omitempty" yaml:"max_parcel_weight_kg,omitempty"`
	MaxParcelVolumeM3    float64  `json:"maxParcelVolumeM3,omitempty" yaml:"max_parcel_volume_m3,omitempty"`
	RequireRefrigeration bool     `json:"requireRefrigeration,omitempty" yaml:"require_refrigeration,omitempty"`
	RequireLiftgate      bool     `json:"requireLiftgate,omitempty" yaml:"require_liftgate,omitempty"`
	MinDriverExperience  int      `json:"minDriverExperience,omitempty" yaml:"min_driver_experience,omitempty"`
	ProhibitedDriverIDs  []string `json:"prohibitedDriverIds,omitempty" yaml:"prohibited_driver_ids,omitempty"`
}
