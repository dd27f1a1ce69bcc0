package rse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

func periodTypes(res model.ComplianceResult) []model.PeriodType {
	out := make([]model.PeriodType, 0, len(res.Periods))
	for _, p := range res.Periods {
		out = append(out, p.Type)
	}
	return out
}

// assertTimeline checks the structural properties every timeline must hold.
func assertTimeline(t *testing.T, res model.ComplianceResult, start model.Clock) {
	t.Helper()
	clock := start
	continuous := 0
	for i, p := range res.Periods {
		assert.Equalf(t, clock, p.Start, "period %d is not contiguous", i)
		assert.Equal(t, p.Start.Add(p.DurationMinutes), p.End)
		assert.Positive(t, p.DurationMinutes)
		clock = p.End
		switch p.Type {
		case model.PeriodDriving:
			continuous += p.DurationMinutes
			assert.LessOrEqualf(t, continuous, MaxContinuousDriving, "period %d drives past the limit", i)
		case model.PeriodBreak:
			assert.GreaterOrEqual(t, p.DurationMinutes, MinBreak)
			continuous = 0
		}
	}
}

func TestCheck_LightVehicleAlwaysCompliant(t *testing.T) {
	segs := []Segment{
		{DrivingMinutes: 60, StopDurationMinutes: 10, Location: "A"},
		{DrivingMinutes: 500, Location: "B"},
	}
	res := NewEngine().Check(segs, model.MustClock("08:00"), false)

	assert.True(t, res.IsCompliant)
	assert.Empty(t, res.Violations)
	assert.Empty(t, res.Warnings)
	assert.False(t, res.BreakRequired)
	assert.Equal(t, 560, res.TotalDrivingTime)
	assert.Equal(t, 0, res.TotalBreakTime)
	assert.Equal(t, []model.PeriodType{model.PeriodDriving, model.PeriodService, model.PeriodDriving}, periodTypes(res))
	assert.Equal(t, 570, res.ElapsedMinutes())
}

func TestCheck_InsertsBreakAfterFourThirty(t *testing.T) {
	start := model.MustClock("08:00")
	res := NewEngine().Check([]Segment{{DrivingMinutes: 300, Location: "Lyon"}}, start, true)

	require.Len(t, res.Periods, 3)
	assert.Equal(t, []model.PeriodType{model.PeriodDriving, model.PeriodBreak, model.PeriodDriving}, periodTypes(res))
	assert.Equal(t, 270, res.Periods[0].DurationMinutes)
	assert.Equal(t, 45, res.Periods[1].DurationMinutes)
	assert.Equal(t, model.MustClock("12:30"), res.Periods[1].Start)
	assert.Equal(t, 30, res.Periods[2].DurationMinutes)

	assert.True(t, res.IsCompliant)
	assert.True(t, res.BreakRequired)
	assert.Equal(t, "Lyon", res.BreakLocation)
	assert.Equal(t, 300, res.TotalDrivingTime)
	assert.Equal(t, 45, res.TotalBreakTime)
	assert.Equal(t, 345, res.ElapsedMinutes())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "4h30")
	assertTimeline(t, res, start)
}

func TestCheck_LongServiceCountsAsBreak(t *testing.T) {
	start := model.MustClock("06:00")
	segs := []Segment{
		{DrivingMinutes: 200, StopDurationMinutes: 45, Location: "A"},
		{DrivingMinutes: 200, Location: "B"},
	}
	res := NewEngine().Check(segs, start, true)

	assert.Equal(t, []model.PeriodType{model.PeriodDriving, model.PeriodBreak, model.PeriodDriving}, periodTypes(res))
	assert.False(t, res.BreakRequired)
	assert.Equal(t, 45, res.TotalBreakTime)
	assert.Empty(t, res.Warnings)
	assert.True(t, res.IsCompliant)
	assertTimeline(t, res, start)
}

func TestCheck_ShortDrivingKeepsServiceAsService(t *testing.T) {
	res := NewEngine().Check([]Segment{{DrivingMinutes: 120, StopDurationMinutes: 60, Location: "A"}}, 0, true)

	assert.Equal(t, []model.PeriodType{model.PeriodDriving, model.PeriodService}, periodTypes(res))
	assert.Equal(t, 0, res.TotalBreakTime)
}

func TestCheck_StopUsedAsBreakWhenBudgetRunsOut(t *testing.T) {
	start := model.MustClock("07:00")
	segs := []Segment{
		{DrivingMinutes: 200, Location: "A"},
		{DrivingMinutes: 100, StopDurationMinutes: 60, Location: "B"},
	}
	res := NewEngine().Check(segs, start, true)

	assert.Equal(t, []model.PeriodType{
		model.PeriodDriving, model.PeriodDriving, model.PeriodBreak, model.PeriodDriving,
	}, periodTypes(res))
	assert.Equal(t, 70, res.Periods[1].DurationMinutes)
	assert.Equal(t, 60, res.Periods[2].DurationMinutes)
	assert.False(t, res.BreakRequired)
	assert.Equal(t, 300, res.TotalDrivingTime)
	assertTimeline(t, res, start)
}

func TestCheck_DailyLimitViolation(t *testing.T) {
	start := model.MustClock("05:00")
	segs := []Segment{
		{DrivingMinutes: 270, StopDurationMinutes: 45, Location: "A"},
		{DrivingMinutes: 270, StopDurationMinutes: 45, Location: "B"},
		{DrivingMinutes: 60, Location: "C"},
	}
	res := NewEngine().Check(segs, start, true)

	assert.False(t, res.IsCompliant)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "by 60 min")
	assert.Contains(t, res.Violations[0], "C")
	assert.Equal(t, 600, res.TotalDrivingTime)
	assertTimeline(t, res, start)
}

func TestCheck_DailyLimitReportedPerSegment(t *testing.T) {
	segs := []Segment{
		{DrivingMinutes: 270, StopDurationMinutes: 45, Location: "A"},
		{DrivingMinutes: 270, StopDurationMinutes: 45, Location: "B"},
		{DrivingMinutes: 30, StopDurationMinutes: 10, Location: "C"},
		{DrivingMinutes: 40, Location: "Depot"},
	}
	res := NewEngine().Check(segs, 0, true)

	require.Len(t, res.Violations, 2)
	assert.Contains(t, res.Violations[0], "by 30 min at C")
	assert.Contains(t, res.Violations[1], "by 70 min at Depot")
	assert.False(t, res.IsCompliant)
}

func TestCheck_WaitIsPartOfTheTimeline(t *testing.T) {
	segs := []Segment{
		{DrivingMinutes: 20, WaitMinutes: 40, StopDurationMinutes: 10, Location: "A"},
		{DrivingMinutes: 20, Location: "Depot"},
	}
	start := model.MustClock("08:00")

	for _, heavy := range []bool{false, true} {
		res := NewEngine().Check(segs, start, heavy)

		assert.Equal(t, []model.PeriodType{
			model.PeriodDriving, model.PeriodService, model.PeriodService, model.PeriodDriving,
		}, periodTypes(res))
		assert.Contains(t, res.Periods[1].Description, "Waiting at A")
		assert.Equal(t, model.MustClock("09:00"), res.Periods[2].Start)
		assert.Equal(t, 90, res.ElapsedMinutes())
		assert.Equal(t, 40, res.TotalDrivingTime)
		assert.Zero(t, res.TotalBreakTime)
		assertTimeline(t, res, start)
	}
}

func TestCheck_WaitDoesNotResetContinuousDriving(t *testing.T) {
	segs := []Segment{
		{DrivingMinutes: 200, WaitMinutes: 60, Location: "A"},
		{DrivingMinutes: 100, Location: "B"},
	}
	res := NewEngine().Check(segs, 0, true)

	assert.Equal(t, 1, res.BreakCount())
	assert.True(t, res.BreakRequired)
	assert.Equal(t, "B", res.BreakLocation)
	assertTimeline(t, res, 0)
}

func TestCheck_VeryLongSegmentGetsSeveralBreaks(t *testing.T) {
	res := NewEngine().Check([]Segment{{DrivingMinutes: 600, Location: "Far"}}, 0, true)

	assert.Equal(t, []model.PeriodType{
		model.PeriodDriving, model.PeriodBreak, model.PeriodDriving, model.PeriodBreak, model.PeriodDriving,
	}, periodTypes(res))
	assert.Equal(t, 2, res.BreakCount())
	assert.Len(t, res.Warnings, 2)
	assert.False(t, res.IsCompliant)
	assertTimeline(t, res, 0)
}

func TestCheck_WarnsWhenEndingAtTheLimit(t *testing.T) {
	res := NewEngine().Check([]Segment{{DrivingMinutes: 270, Location: "A"}}, 0, true)

	assert.Equal(t, 0, res.BreakCount())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "break is due")
	assert.True(t, res.IsCompliant)
}

func TestCheck_MixedRouteHoldsInvariants(t *testing.T) {
	start := model.MustClock("08:00")
	segs := []Segment{
		{DrivingMinutes: 95, StopDurationMinutes: 15, Location: "A"},
		{DrivingMinutes: 130, StopDurationMinutes: 20},
		{DrivingMinutes: 110, StopDurationMinutes: 30, Location: "C"},
		{DrivingMinutes: 0, StopDurationMinutes: 10, Location: "D"},
		{DrivingMinutes: 140, Location: "Depot"},
	}
	res := NewEngine().Check(segs, start, true)

	assertTimeline(t, res, start)
	assert.Equal(t, 475, res.TotalDrivingTime)
	assert.GreaterOrEqual(t, res.BreakCount(), 1)
	assert.Equal(t, res.TotalDrivingTime+res.TotalBreakTime+75, res.ElapsedMinutes())
	assert.True(t, res.IsCompliant)
}

func TestCheck_EmptyInput(t *testing.T) {
	res := NewEngine().Check(nil, model.MustClock("08:00"), true)

	assert.True(t, res.IsCompliant)
	assert.Empty(t, res.Periods)
	assert.NotNil(t, res.Violations)
	assert.NotNil(t, res.Warnings)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "4h30", formatDuration(270))
	assert.Equal(t, "9h00", formatDuration(540))
}
