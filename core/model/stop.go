package model

import (
	"fmt"
	"math"
	"strings"
)

// Priority ranks how urgent a stop is when the sequencer picks the next one.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// Score returns the priority bonus used by the greedy sequencer.
func (p Priority) Score() float64 {
	switch p {
	case PriorityHigh:
		return 50
	case PriorityLow:
		return 0
	default:
		return 25
	}
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Valid reports whether both coordinates are finite and inside their range.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Stop is a delivery or pickup point supplied by the caller.
// Location may be nil when the address could not be geocoded.
type Stop struct {
	ID                 string    `json:"id" yaml:"id"`
	Location           *GeoPoint `json:"location,omitempty" yaml:"location,omitempty"`
	Address            string    `json:"address" yaml:"address"`
	TimeWindowStart    *Clock    `json:"timeWindowStart,omitempty" yaml:"time_window_start,omitempty"`
	TimeWindowEnd      *Clock    `json:"timeWindowEnd,omitempty" yaml:"time_window_end,omitempty"`
	ServiceDurationMin int       `json:"serviceDurationMin" yaml:"service_duration_min"`
	Priority           Priority  `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// HasValidLocation reports whether the stop can be placed on a map.
func (s Stop) HasValidLocation() bool {
	return s.Location != nil && s.Location.Valid()
}

// HasWindow reports whether any bound of the delivery window is set.
func (s Stop) HasWindow() bool {
	return s.TimeWindowStart != nil || s.TimeWindowEnd != nil
}

// Clone returns a copy of the stop that shares no pointers with s.
func (s Stop) Clone() Stop {
	if s.Location != nil {
		loc := *s.Location
		s.Location = &loc
	}
	if s.TimeWindowStart != nil {
		c := *s.TimeWindowStart
		s.TimeWindowStart = &c
	}
	if s.TimeWindowEnd != nil {
		c := *s.TimeWindowEnd
		s.TimeWindowEnd = &c
	}
	return s
}

// Label returns the address, falling back to the identifier.
func (s Stop) Label() string {
	if strings.TrimSpace(s.Address) != "" {
		return s.Address
	}
	return s.ID
}

// WindowString formats the delivery window for messages.
func (s Stop) WindowString() string {
	start, end := "--:--", "--:--"
	if s.TimeWindowStart != nil {
		start = s.TimeWindowStart.String()
	}
	if s.TimeWindowEnd != nil {
		end = s.TimeWindowEnd.String()
	}
	return fmt.Sprintf("%s-%s", start, end)
}

// Depot is the fixed start and end location of a route.
type Depot struct {
	Address  string   `json:"address" yaml:"address"`
	Location GeoPoint `json:"location" yaml:"location"`
}
