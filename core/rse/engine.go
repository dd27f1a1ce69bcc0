// Package rse enforces the EU driving-time rules for heavy vehicles: at most
// 4h30 of continuous driving before a break of at least 45 minutes, and at
// most 9h of driving per day.
//
// The engine turns an ordered list of drive segments into a timeline of
// DRIVING, BREAK and SERVICE periods. Breaks are inserted where the
// continuous driving budget runs out; a stop long enough to count as a
// break is consumed as one instead of synthesizing a new break.
package rse

import (
	"fmt"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// Regulation limits, in minutes.
const (
	MaxContinuousDriving = 270
	MinBreak             = 45
	MaxDailyDriving      = 540
	// ServiceAsBreakAfter is the continuous driving above which a long
	// enough service stop also counts as the regulatory break.
	ServiceAsBreakAfter = 180
)

// Segment is one leg of a route: driving to a location, then optionally
// waiting for its delivery window and staying there. Waiting neither adds to
// nor resets continuous driving.
type Segment struct {
	DrivingMinutes      int
	WaitMinutes         int
	StopDurationMinutes int
	Location            string
}

// Engine checks timelines against the limits it carries.
type Engine struct {
	MaxContinuous       int
	BreakMinutes        int
	MaxDaily            int
	ServiceBreakTrigger int
}

// NewEngine returns an engine configured with the regulation limits.
func NewEngine() Engine {
	return Engine{
		MaxContinuous:       MaxContinuousDriving,
		BreakMinutes:        MinBreak,
		MaxDaily:            MaxDailyDriving,
		ServiceBreakTrigger: ServiceAsBreakAfter,
	}
}

type timeline struct {
	clock   model.Clock
	periods []model.DrivingPeriod
}

func (t *timeline) wait(minutes int, loc string) {
	t.add(model.PeriodService, minutes, "Waiting at "+loc+" for the delivery window")
}

func (t *timeline) add(typ model.PeriodType, minutes int, desc string) {
	if minutes <= 0 {
		return
	}
	end := t.clock.Add(minutes)
	t.periods = append(t.periods, model.DrivingPeriod{
		Type:            typ,
		Start:           t.clock,
		End:             end,
		DurationMinutes: minutes,
		Description:     desc,
	})
	t.clock = end
}

// Check builds the timeline for segments starting at start. Light vehicles
// are not subject to the regulation and are always compliant.
func (e Engine) Check(segments []Segment, start model.Clock, heavy bool) model.ComplianceResult {
	e = e.withDefaults()
	tl := &timeline{clock: start, periods: make([]model.DrivingPeriod, 0, 2*len(segments))}
	res := model.ComplianceResult{Warnings: []string{}, Violations: []string{}}
	if heavy {
		e.checkHeavy(segments, tl, &res)
	} else {
		for i, seg := range segments {
			loc := locationOf(seg, i)
			drive := nonNegative(seg.DrivingMinutes)
			tl.add(model.PeriodDriving, drive, "Driving to "+loc)
			tl.wait(nonNegative(seg.WaitMinutes), loc)
			tl.add(model.PeriodService, nonNegative(seg.StopDurationMinutes), "Service at "+loc)
			res.TotalDrivingTime += drive
		}
	}
	res.Periods = tl.periods
	res.IsCompliant = len(res.Violations) == 0
	return res
}

func (e Engine) checkHeavy(segments []Segment, tl *timeline, res *model.ComplianceResult) {
	accumulated := 0
	for i, seg := range segments {
		loc := locationOf(seg, i)
		drive := nonNegative(seg.DrivingMinutes)
		wait := nonNegative(seg.WaitMinutes)
		stop := nonNegative(seg.StopDurationMinutes)

		if accumulated+drive <= e.MaxContinuous {
			tl.add(model.PeriodDriving, drive, "Driving to "+loc)
			accumulated += drive
			res.TotalDrivingTime += drive
			tl.wait(wait, loc)
			if stop > 0 {
				if stop >= e.BreakMinutes && accumulated > e.ServiceBreakTrigger {
					tl.add(model.PeriodBreak, stop, fmt.Sprintf("Service at %s counted as break (%d min)", loc, stop))
					res.TotalBreakTime += stop
					accumulated = 0
				} else {
					tl.add(model.PeriodService, stop, "Service at "+loc)
				}
			}
		} else {
			stopUsed := false
			for accumulated+drive > e.MaxContinuous {
				budget := e.MaxContinuous - accumulated
				tl.add(model.PeriodDriving, budget, "Driving towards "+loc)
				res.TotalDrivingTime += budget
				drive -= budget
				if !stopUsed && stop >= e.BreakMinutes {
					tl.add(model.PeriodBreak, stop, fmt.Sprintf("Stop at %s used as break (%d min)", loc, stop))
					res.TotalBreakTime += stop
					stopUsed = true
				} else {
					tl.add(model.PeriodBreak, e.BreakMinutes, fmt.Sprintf("Mandatory break (%d min) on the way to %s", e.BreakMinutes, loc))
					res.TotalBreakTime += e.BreakMinutes
					res.BreakRequired = true
					res.BreakLocation = loc
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"Mandatory %d min break inserted before %s: continuous driving reached the 4h30 limit", e.BreakMinutes, loc))
				}
				accumulated = 0
			}
			tl.add(model.PeriodDriving, drive, "Driving to "+loc)
			accumulated += drive
			res.TotalDrivingTime += drive
			tl.wait(wait, loc)
			if stop > 0 && !stopUsed {
				tl.add(model.PeriodService, stop, "Service at "+loc)
			}
		}

		if res.TotalDrivingTime > e.MaxDaily {
			res.Violations = append(res.Violations, fmt.Sprintf(
				"Daily driving time %s exceeds the %s limit by %d min at %s",
				formatDuration(res.TotalDrivingTime), formatDuration(e.MaxDaily), res.TotalDrivingTime-e.MaxDaily, loc))
		}
	}

	if accumulated >= e.MaxContinuous {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Continuous driving reached %s: a %d min break is due before driving further",
			formatDuration(accumulated), e.BreakMinutes))
	}
}

func (e Engine) withDefaults() Engine {
	d := NewEngine()
	if e.MaxContinuous <= 0 {
		e.MaxContinuous = d.MaxContinuous
	}
	if e.BreakMinutes <= 0 {
		e.BreakMinutes = d.BreakMinutes
	}
	if e.MaxDaily <= 0 {
		e.MaxDaily = d.MaxDaily
	}
	if e.ServiceBreakTrigger <= 0 {
		e.ServiceBreakTrigger = d.ServiceBreakTrigger
	}
	return e
}

func locationOf(seg Segment, i int) string {
	if seg.Location != "" {
		return seg.Location
	}
	return fmt.Sprintf("segment %d", i+1)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// formatDuration renders minutes as "4h30".
func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
