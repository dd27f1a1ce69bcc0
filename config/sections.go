package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// RoutingConfig holds the constraint defaults merged under every request.
type RoutingConfig struct {
	MaxDistanceKm      float64 `json:"max_distance_km"`
	MaxDurationMinutes int     `json:"max_duration_minutes"`
	MaxStops           int     `json:"max_stops"`
	// StartTime and EndTime are "HH:MM".
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	PriorityWeight    float64 `json:"priority_weight"`
	TimeWindowWeight  float64 `json:"time_window_weight"`
	DistanceWeight    float64 `json:"distance_weight"`
	FuelPricePerLiter float64 `json:"fuel_price_per_liter"`
}

// SetDefaults applies the documented constraint defaults.
func (c *RoutingConfig) SetDefaults() {
	d := model.DefaultConstraints()
	if c.MaxDistanceKm == 0 {
		c.MaxDistanceKm = d.MaxDistanceKm
	}
	if c.MaxDurationMinutes == 0 {
		c.MaxDurationMinutes = d.MaxDurationMinutes
	}
	if c.MaxStops == 0 {
		c.MaxStops = d.MaxStops
	}
	if c.StartTime == "" {
		c.StartTime = d.Start().String()
	}
	if c.EndTime == "" {
		c.EndTime = d.End().String()
	}
	if c.PriorityWeight == 0 {
		c.PriorityWeight = d.PriorityWeight
	}
	if c.TimeWindowWeight == 0 {
		c.TimeWindowWeight = d.TimeWindowWeight
	}
	if c.DistanceWeight == 0 {
		c.DistanceWeight = d.DistanceWeight
	}
	if c.FuelPricePerLiter == 0 {
		c.FuelPricePerLiter = d.FuelPricePerLiter
	}
}

// Validate checks ranges and time formats.
func (c RoutingConfig) Validate() error {
	if c.MaxDistanceKm < 0 || c.MaxDurationMinutes < 0 || c.MaxStops < 0 {
		return errors.New("limits must not be negative")
	}
	if c.PriorityWeight < 0 || c.TimeWindowWeight < 0 || c.DistanceWeight < 0 {
		return errors.New("weights must not be negative")
	}
	if c.FuelPricePerLiter < 0 {
		return errors.New("fuel_price_per_liter must not be negative")
	}
	_, err := c.Constraints()
	return err
}

// Constraints converts the section into route constraints.
func (c RoutingConfig) Constraints() (model.RouteConstraints, error) {
	start, err := model.ParseClock(c.StartTime)
	if err != nil {
		return model.RouteConstraints{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := model.ParseClock(c.EndTime)
	if err != nil {
		return model.RouteConstraints{}, fmt.Errorf("end_time: %w", err)
	}
	if end <= start {
		return model.RouteConstraints{}, fmt.Errorf("end_time %s must be after start_time %s", end, start)
	}
	return model.RouteConstraints{
		MaxDistanceKm:      c.MaxDistanceKm,
		MaxDurationMinutes: c.MaxDurationMinutes,
		MaxStops:           c.MaxStops,
		StartTime:          &start,
		EndTime:            &end,
		PriorityWeight:     c.PriorityWeight,
		TimeWindowWeight:   c.TimeWindowWeight,
		DistanceWeight:     c.DistanceWeight,
		FuelPricePerLiter:  c.FuelPricePerLiter,
	}.WithDefaults(), nil
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr               string `json:"addr"`
	ReadTimeoutSeconds int    `json:"read_timeout_seconds"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `json:"max_body_bytes"`
	// Token, when set, must be sent as "Bearer <token>" to read the plan log.
	Token string `json:"token"`
}

func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 10
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 1 << 20
	}
}

func (c HTTPConfig) Validate() error {
	if c.ReadTimeoutSeconds < 0 || c.MaxBodyBytes < 0 {
		return errors.New("timeouts and limits must not be negative")
	}
	return nil
}

// PlannerConfig tunes the planning service.
type PlannerConfig struct {
	// BatchConcurrency bounds the routes computed in parallel by a batch.
	BatchConcurrency int `json:"batch_concurrency"`
}

func (c *PlannerConfig) SetDefaults() {
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = runtime.NumCPU()
	}
}

func (c PlannerConfig) Validate() error {
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be at least 1, got %d", c.BatchConcurrency)
	}
	return nil
}

// SentryConfig defines settings for Sentry error monitoring. An empty DSN
// disables it.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
}

func (c SentryConfig) Validate() error {
	if c.TracesSampleRate < 0 || c.TracesSampleRate > 1 {
		return fmt.Errorf("traces_sample_rate must be within [0, 1], got %g", c.TracesSampleRate)
	}
	return nil
}
