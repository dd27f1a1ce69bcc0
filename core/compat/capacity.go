package compat

import "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"

// Capacity is the payload a vehicle category can carry.
type Capacity struct {
	MaxWeightKg float64
	MaxVolumeM3 float64
}

// DefaultCapacity applies to categories missing from the table.
var DefaultCapacity = Capacity{MaxWeightKg: 1000, MaxVolumeM3: 10}

var capacities = map[model.VehicleCategory]Capacity{
	model.CategoryVoiture:         {MaxWeightKg: 500, MaxVolumeM3: 2},
	model.CategoryUtilitaireLeger: {MaxWeightKg: 1200, MaxVolumeM3: 12},
	model.CategoryUtilitaire:      {MaxWeightKg: 3000, MaxVolumeM3: 20},
	model.CategoryPorteur:         {MaxWeightKg: 10000, MaxVolumeM3: 40},
	model.CategoryTracteur:        {MaxWeightKg: 25000, MaxVolumeM3: 90},
	model.CategorySemiRemorque:    {MaxWeightKg: 25000, MaxVolumeM3: 90},
	model.CategoryFrigorifique:    {MaxWeightKg: 8000, MaxVolumeM3: 35},
	model.CategoryCiterne:         {MaxWeightKg: 20000, MaxVolumeM3: 30},
	model.CategoryBenne:           {MaxWeightKg: 15000, MaxVolumeM3: 20},
}

// CapacityFor returns the payload limits of c.
func CapacityFor(c model.VehicleCategory) Capacity {
	if cp, ok := capacities[c]; ok {
		return cp
	}
	return DefaultCapacity
}

// Autonomy in km on a full tank or charge.
const (
	ElectricAutonomyKm = 200
	FuelAutonomyKm     = 800
)
