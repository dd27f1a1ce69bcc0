// Package speed holds the static speed and fuel consumption assumptions per
// vehicle category and derives travel times and fuel costs from them.
package speed

import (
	"math"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// Blend weights applied to the urban, suburban and highway speeds.
const (
	UrbanShare    = 0.35
	SuburbanShare = 0.35
	HighwayShare  = 0.30
)

// Profile describes the typical speeds and consumption of a category.
type Profile struct {
	UrbanKmh       float64 `json:"urbanKmh"`
	SuburbanKmh    float64 `json:"suburbanKmh"`
	HighwayKmh     float64 `json:"highwayKmh"`
	LitersPer100Km float64 `json:"litersPer100Km"`
}

// DefaultProfile is used for unknown categories.
var DefaultProfile = Profile{UrbanKmh: 30, SuburbanKmh: 55, HighwayKmh: 100, LitersPer100Km: 12}

var profiles = map[model.VehicleCategory]Profile{
	model.CategoryVoiture:         {UrbanKmh: 35, SuburbanKmh: 60, HighwayKmh: 110, LitersPer100Km: 6.5},
	model.CategoryUtilitaireLeger: {UrbanKmh: 32, SuburbanKmh: 55, HighwayKmh: 100, LitersPer100Km: 9},
	model.CategoryUtilitaire:      {UrbanKmh: 30, SuburbanKmh: 52, HighwayKmh: 95, LitersPer100Km: 12},
	model.CategoryPorteur:         {UrbanKmh: 28, SuburbanKmh: 50, HighwayKmh: 85, LitersPer100Km: 25},
	model.CategoryTracteur:        {UrbanKmh: 25, SuburbanKmh: 48, HighwayKmh: 80, LitersPer100Km: 32},
	model.CategorySemiRemorque:    {UrbanKmh: 25, SuburbanKmh: 45, HighwayKmh: 80, LitersPer100Km: 34},
	model.CategoryFrigorifique:    {UrbanKmh: 28, SuburbanKmh: 50, HighwayKmh: 85, LitersPer100Km: 28},
	model.CategoryCiterne:         {UrbanKmh: 25, SuburbanKmh: 45, HighwayKmh: 80, LitersPer100Km: 33},
	model.CategoryBenne:           {UrbanKmh: 25, SuburbanKmh: 45, HighwayKmh: 75, LitersPer100Km: 35},
}

// ProfileFor returns the profile of the category, or DefaultProfile when
// the category is unknown.
func ProfileFor(c model.VehicleCategory) Profile {
	if p, ok := profiles[c]; ok {
		return p
	}
	return DefaultProfile
}

// AverageSpeed returns the blended average speed in km/h.
func AverageSpeed(c model.VehicleCategory) float64 {
	p := ProfileFor(c)
	return p.UrbanKmh*UrbanShare + p.SuburbanKmh*SuburbanShare + p.HighwayKmh*HighwayShare
}

// TravelTime returns the driving time in whole minutes for the distance.
func TravelTime(distanceKm float64, c model.VehicleCategory) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(RoundHalfUp(distanceKm / AverageSpeed(c) * 60))
}

// FuelCost estimates the fuel cost of the distance, rounded to cents.
func FuelCost(distanceKm float64, c model.VehicleCategory, pricePerLiter float64) float64 {
	if distanceKm <= 0 || pricePerLiter <= 0 {
		return 0
	}
	liters := distanceKm * ProfileFor(c).LitersPer100Km / 100
	return RoundHalfUp(liters*pricePerLiter*100) / 100
}

// RoundHalfUp rounds x to the nearest integer, halves going up.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
