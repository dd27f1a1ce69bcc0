package model

import (
	"strings"
	"time"
)

// Status is the lifecycle state shared by vehicles and drivers.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusInactive    Status = "INACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusOnLeave     Status = "ON_LEAVE"
)

// FuelType is the energy source of a vehicle.
type FuelType string

const (
	FuelDiesel   FuelType = "DIESEL"
	FuelGasoline FuelType = "ESSENCE"
	FuelElectric FuelType = "ELECTRIQUE"
	FuelHybrid   FuelType = "HYBRIDE"
	FuelGNV      FuelType = "GNV"
)

// IsElectric reports whether the fuel type is battery electric. Both the
// French and English spellings are accepted.
func (f FuelType) IsElectric() bool {
	switch strings.ToUpper(string(f)) {
	case string(FuelElectric), "ELECTRIC":
		return true
	}
	return false
}

// Vehicle is a fleet vehicle as supplied by the caller.
type Vehicle struct {
	ID                  string          `json:"id" yaml:"id"`
	Registration        string          `json:"registration,omitempty" yaml:"registration,omitempty"`
	Status              Status          `json:"status" yaml:"status"`
	Category            VehicleCategory `json:"category" yaml:"category"`
	FuelType            FuelType        `json:"fuelType" yaml:"fuel_type"`
	NextMaintenanceDate *time.Time      `json:"nextMaintenanceDate,omitempty" yaml:"next_maintenance_date,omitempty"`
	InsuranceExpiryDate *time.Time      `json:"insuranceExpiryDate,omitempty" yaml:"insurance_expiry_date,omitempty"`
	HasRefrigeration    bool            `json:"hasRefrigeration,omitempty" yaml:"has_refrigeration,omitempty"`
	HasLiftgate         bool            `json:"hasLiftgate,omitempty" yaml:"has_liftgate,omitempty"`
}

// Driver is a fleet driver as supplied by the caller.
type Driver struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name,omitempty" yaml:"name,omitempty"`
	Status        Status     `json:"status" yaml:"status"`
	HireDate      *time.Time `json:"hireDate,omitempty" yaml:"hire_date,omitempty"`
	CQCCardExpiry *time.Time `json:"cqcCardExpiry,omitempty" yaml:"cqc_card_expiry,omitempty"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty" yaml:"license_expiry,omitempty"`
}

// VehicleCompatibility scores how well a vehicle fits a route.
type VehicleCompatibility struct {
	VehicleID string   `json:"vehicleId"`
	Score     int      `json:"score"`
	Reasons   []string `json:"reasons"`
}

// DriverCompatibility scores how well a driver fits a route.
type DriverCompatibility struct {
	DriverID       string   `json:"driverId"`
	Score          int      `json:"score"`
	Reasons        []string `json:"reasons"`
	RemainingHours float64  `json:"remainingHours"`
}

// RouteAssignment is the best vehicle/driver pairing for a route.
type RouteAssignment struct {
	Vehicle    Vehicle              `json:"vehicle"`
	Driver     Driver               `json:"driver"`
	VehicleFit VehicleCompatibility `json:"vehicleFit"`
	DriverFit  DriverCompatibility  `json:"driverFit"`
	TotalScore float64              `json:"totalScore"`
	Warnings   []string             `json:"warnings"`
}
