// Package compat scores how well vehicles and drivers fit a route and picks
// the best pairing.
//
// Scores start at 100 and lose points for every unmet requirement; they are
// clamped to [0, 100]. Reasons prefixed with "✓" are satisfied requirements,
// reasons prefixed with "⚠" are the ones that cost points.
package compat

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// Deductions applied by the scorer.
const (
	InactivePenalty        = 50
	RefrigerationPenalty   = 100
	LiftgatePenalty        = 30
	CategoryPenalty        = 40
	CapacityPenalty        = 100
	AutonomyPenalty        = 10
	MaintenancePenalty     = 15
	InsurancePenalty       = 15
	ExpiredDocPenalty      = 100
	ExpiringDocPenalty     = 20
	ExperiencePenalty      = 30
	ProhibitedPenalty      = 100
	OvertimePenalty        = 30
	maintenanceWarningDays = 7
	insuranceWarningDays   = 14
	documentWarningDays    = 30
	autonomyMargin         = 1.5
	averageRouteSpeedKmh   = 50.0
	hoursPerStop           = 0.5
	dailyDrivingHours      = 9.0
)

const (
	okMark   = "✓ "
	warnMark = "⚠ "
)

// Scorer evaluates candidates at a fixed instant so that results are
// reproducible.
type Scorer struct {
	now time.Time
}

// NewScorer returns a scorer comparing expiry dates against now.
func NewScorer(now time.Time) *Scorer {
	return &Scorer{now: now}
}

// Now returns the instant the scorer compares dates against.
func (s *Scorer) Now() time.Time { return s.now }

type card struct {
	score   int
	reasons []string
}

func (c *card) ok(format string, args ...any) {
	c.reasons = append(c.reasons, okMark+fmt.Sprintf(format, args...))
}

func (c *card) deduct(points int, format string, args ...any) {
	c.score -= points
	c.reasons = append(c.reasons, warnMark+fmt.Sprintf(format, args...))
}

func (c *card) final() int {
	return max(0, min(100, c.score))
}

// ScoreVehicle rates v against the route and its stops.
func (s *Scorer) ScoreVehicle(v model.Vehicle, constraints model.RouteConstraints, stops []model.StopConstraint) model.VehicleCompatibility {
	c := constraints.WithDefaults()
	sc := &card{score: 100, reasons: []string{}}

	if v.Status != model.StatusActive {
		sc.deduct(InactivePenalty, "Vehicle status is %s", statusOrUnknown(v.Status))
	}

	needCold, needLift := c.RequireRefrigeration, c.RequireLiftgate
	var maxWeight, maxVolume float64
	for _, st := range stops {
		needCold = needCold || st.RequireRefrigeration
		needLift = needLift || st.RequireLiftgate
		maxWeight = math.Max(maxWeight, st.MaxParcelWeightKg)
		maxVolume = math.Max(maxVolume, st.MaxParcelVolumeM3)
	}

	if needCold {
		if v.HasRefrigeration {
			sc.ok("Refrigerated unit available")
		} else {
			sc.deduct(RefrigerationPenalty, "Refrigeration required but not available")
		}
	}
	if needLift {
		if v.HasLiftgate {
			sc.ok("Liftgate available")
		} else {
			sc.deduct(LiftgatePenalty, "Liftgate required but not available")
		}
	}
	if c.VehicleType != nil && *c.VehicleType != v.Category {
		sc.deduct(CategoryPenalty, "Category %s does not match required %s", v.Category, *c.VehicleType)
	}

	capa := CapacityFor(v.Category)
	if maxWeight > capa.MaxWeightKg {
		sc.deduct(CapacityPenalty, "Parcel weight %.0f kg exceeds capacity of %.0f kg", maxWeight, capa.MaxWeightKg)
	}
	if maxVolume > capa.MaxVolumeM3 {
		sc.deduct(CapacityPenalty, "Parcel volume %.1f m3 exceeds capacity of %.1f m3", maxVolume, capa.MaxVolumeM3)
	}

	autonomy := FuelAutonomyKm
	if v.FuelType.IsElectric() {
		autonomy = ElectricAutonomyKm
	}
	if float64(autonomy) < autonomyMargin*c.MaxDistanceKm {
		sc.deduct(AutonomyPenalty, "Autonomy of %d km is short of %.0f km", autonomy, autonomyMargin*c.MaxDistanceKm)
	}

	if v.NextMaintenanceDate != nil {
		if days := s.daysUntil(*v.NextMaintenanceDate); days <= maintenanceWarningDays {
			sc.deduct(MaintenancePenalty, "Maintenance due %s", dueIn(days))
		}
	}
	if v.InsuranceExpiryDate != nil {
		if days := s.daysUntil(*v.InsuranceExpiryDate); days <= insuranceWarningDays {
			sc.deduct(InsurancePenalty, "Insurance expires %s", dueIn(days))
		}
	}

	return model.VehicleCompatibility{VehicleID: v.ID, Score: sc.final(), Reasons: sc.reasons}
}

// ScoreDriver rates d for a route of estimatedDistanceKm serving stops.
func (s *Scorer) ScoreDriver(d model.Driver, constraints model.RouteConstraints, stops []model.StopConstraint, estimatedDistanceKm float64) model.DriverCompatibility {
	sc := &card{score: 100, reasons: []string{}}

	if d.Status != model.StatusActive {
		sc.deduct(InactivePenalty, "Driver status is %s", statusOrUnknown(d.Status))
	}

	switch {
	case d.CQCCardExpiry == nil:
		if constraints.RequiresCertification("CQC") {
			sc.deduct(ExpiredDocPenalty, "CQC card required but missing")
		}
	case d.CQCCardExpiry.Before(s.now):
		sc.deduct(ExpiredDocPenalty, "CQC card expired on %s", d.CQCCardExpiry.Format(time.DateOnly))
	default:
		if days := s.daysUntil(*d.CQCCardExpiry); days <= documentWarningDays {
			sc.deduct(ExpiringDocPenalty, "CQC card expires %s", dueIn(days))
		} else {
			sc.ok("CQC card valid")
		}
	}

	if d.LicenseExpiry != nil {
		if d.LicenseExpiry.Before(s.now) {
			sc.deduct(ExpiredDocPenalty, "Driving licence expired on %s", d.LicenseExpiry.Format(time.DateOnly))
		} else if days := s.daysUntil(*d.LicenseExpiry); days <= documentWarningDays {
			sc.deduct(ExpiringDocPenalty, "Driving licence expires %s", dueIn(days))
		}
	}

	required := 0
	prohibited := false
	for _, st := range stops {
		required = max(required, st.MinDriverExperience)
		for _, id := range st.ProhibitedDriverIDs {
			if id == d.ID {
				prohibited = true
			}
		}
	}
	if required > 0 {
		if years := s.yearsSince(d.HireDate); years < required {
			sc.deduct(ExperiencePenalty, "Experience of %d years is below the required %d", years, required)
		} else {
			sc.ok("Experience of %d years", years)
		}
	}
	if prohibited {
		sc.deduct(ProhibitedPenalty, "Driver is not allowed at one of the stops")
	}

	hours := estimatedDistanceKm/averageRouteSpeedKmh + hoursPerStop*float64(len(stops))
	remaining := dailyDrivingHours - hours
	if remaining < 0 {
		sc.deduct(OvertimePenalty, "Route needs %.1f h, over the %.0f h daily budget", hours, dailyDrivingHours)
	}

	return model.DriverCompatibility{
		DriverID:       d.ID,
		Score:          sc.final(),
		Reasons:        sc.reasons,
		RemainingHours: math.Round(remaining*10) / 10,
	}
}

// FindBestAssignment tries every active vehicle with every active driver and
// returns the pair with the highest mean score. Pairs where either side
// scores 0 are never chosen; nil means no usable pair exists. On equal
// scores the pair met first wins.
func (s *Scorer) FindBestAssignment(vehicles []model.Vehicle, drivers []model.Driver, constraints model.RouteConstraints, stops []model.StopConstraint, estimatedDistanceKm float64) *model.RouteAssignment {
	vehicleFits := make([]model.VehicleCompatibility, len(vehicles))
	for i, v := range vehicles {
		vehicleFits[i] = s.ScoreVehicle(v, constraints, stops)
	}
	driverFits := make([]model.DriverCompatibility, len(drivers))
	for i, d := range drivers {
		driverFits[i] = s.ScoreDriver(d, constraints, stops, estimatedDistanceKm)
	}

	var best *model.RouteAssignment
	for i, vf := range vehicleFits {
		if vf.Score <= 0 || vehicles[i].Status != model.StatusActive {
			continue
		}
		for j, df := range driverFits {
			if df.Score <= 0 || drivers[j].Status != model.StatusActive {
				continue
			}
			total := float64(vf.Score+df.Score) / 2
			if best != nil && total <= best.TotalScore {
				continue
			}
			best = &model.RouteAssignment{
				Vehicle:    vehicles[i],
				Driver:     drivers[j],
				VehicleFit: vf,
				DriverFit:  df,
				TotalScore: total,
			}
		}
	}
	if best != nil {
		best.Warnings = warnings(best.VehicleFit.Reasons, best.DriverFit.Reasons)
	}
	return best
}

func warnings(groups ...[]string) []string {
	out := []string{}
	for _, reasons := range groups {
		for _, r := range reasons {
			if strings.HasPrefix(r, warnMark) {
				out = append(out, r)
			}
		}
	}
	return out
}

// daysUntil counts started days from now to t; past dates are negative.
func (s *Scorer) daysUntil(t time.Time) int {
	return int(math.Ceil(t.Sub(s.now).Hours() / 24))
}

func (s *Scorer) yearsSince(t *time.Time) int {
	if t == nil {
		return 0
	}
	return int(math.Floor(s.now.Sub(*t).Hours() / 24 / 365.25))
}

func dueIn(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return "today"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

func statusOrUnknown(s model.Status) string {
	if s == "" {
		return "UNKNOWN"
	}
	return string(s)
}
