package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	c := DefaultConstraints()

	assert.Equal(t, 1000.0, c.MaxDistanceKm)
	assert.Equal(t, 600, c.MaxDurationMinutes)
	assert.Equal(t, 50, c.MaxStops)
	assert.Equal(t, 0.3, c.PriorityWeight)
	assert.Equal(t, 0.4, c.TimeWindowWeight)
	assert.Equal(t, 0.3, c.DistanceWeight)
	assert.Equal(t, 1.85, c.FuelPricePerLiter)
	assert.Equal(t, MustClock("08:00"), c.Start())
	assert.Equal(t, MustClock("18:00"), c.End())
}

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	start := MustClock("06:30")
	in := RouteConstraints{MaxDistanceKm: 250, StartTime: &start, RequiredCertifications: []string{"CQC"}}
	out := in.WithDefaults()

	assert.Equal(t, 250.0, out.MaxDistanceKm)
	assert.Equal(t, start, out.Start())
	assert.True(t, out.RequiresCertification("CQC"))
	assert.False(t, out.RequiresCertification("ADR"))

	out.RequiredCertifications[0] = "ADR"
	assert.Equal(t, "CQC", in.RequiredCertifications[0], "receiver must not be aliased")
}

func TestMerge(t *testing.T) {
	base := DefaultConstraints()
	base.RequireLiftgate = true
	cat := CategoryPorteur
	end := MustClock("20:00")

	out := base.Merge(RouteConstraints{MaxStops: 12, VehicleType: &cat, EndTime: &end, RequireRefrigeration: true})

	assert.Equal(t, 12, out.MaxStops)
	assert.Equal(t, 1000.0, out.MaxDistanceKm)
	assert.Equal(t, end, out.End())
	assert.True(t, out.RequireLiftgate)
	assert.True(t, out.RequireRefrigeration)
	if assert.NotNil(t, out.VehicleType) {
		assert.Equal(t, CategoryPorteur, *out.VehicleType)
	}
}

func TestCategoryAndPriority(t *testing.T) {
	assert.True(t, CategoryTracteur.IsHeavy())
	assert.False(t, CategoryUtilitaireLeger.IsHeavy())
	assert.True(t, CategoryBenne.IsValid())
	assert.False(t, VehicleCategory("TRAM").IsValid())

	assert.Equal(t, 50.0, PriorityHigh.Score())
	assert.Equal(t, 25.0, PriorityNormal.Score())
	assert.Equal(t, 25.0, Priority("").Score())
	assert.Equal(t, 0.0, PriorityLow.Score())
}

func TestStopHelpers(t *testing.T) {
	end := MustClock("11:00")
	s := Stop{ID: "s1", TimeWindowEnd: &end, Location: &GeoPoint{Lat: 91, Lng: 2}}

	assert.False(t, s.HasValidLocation())
	assert.True(t, s.HasWindow())
	assert.Equal(t, "s1", s.Label())
	assert.Equal(t, "--:---11:00", s.WindowString())
	assert.True(t, FuelType("electric").IsElectric())
	assert.False(t, FuelDiesel.IsElectric())
}
