package model

// PeriodType classifies a slice of a driver's day.
type PeriodType string

const (
	PeriodDriving PeriodType = "DRIVING"
	PeriodBreak   PeriodType = "BREAK"
	PeriodRest    PeriodType = "REST"
	PeriodService PeriodType = "SERVICE"
)

// DrivingPeriod is one contiguous entry of a compliance timeline.
type DrivingPeriod struct {
	Type            PeriodType `json:"type"`
	Start           Clock      `json:"start"`
	End             Clock      `json:"end"`
	DurationMinutes int        `json:"durationMinutes"`
	Description     string     `json:"description"`
}

// ComplianceResult is the outcome of a driving-time regulation check.
type ComplianceResult struct {
	IsCompliant      bool            `json:"isCompliant"`
	Periods          []DrivingPeriod `json:"periods"`
	TotalDrivingTime int             `json:"totalDrivingTime"`
	TotalBreakTime   int             `json:"totalBreakTime"`
	BreakRequired    bool            `json:"breakRequired"`
	BreakLocation    string          `json:"breakLocation,omitempty"`
	Warnings         []string        `json:"warnings"`
	Violations       []string        `json:"violations"`
}

// ElapsedMinutes returns the sum of all period durations.
func (r ComplianceResult) ElapsedMinutes() int {
	total := 0
	for _, p := range r.Periods {
		total += p.DurationMinutes
	}
	return total
}

// BreakCount returns the number of BREAK periods in the timeline.
func (r ComplianceResult) BreakCount() int {
	n := 0
	for _, p := range r.Periods {
		if p.Type == PeriodBreak {
			n++
		}
	}
	return n
}

// StopArrival annotates a sequenced stop with its computed schedule.
type StopArrival struct {
	StopID                 string  `json:"stopId"`
	Address                string  `json:"address"`
	Sequence               int     `json:"sequence"`
	EstimatedArrival       Clock   `json:"estimatedArrival"`
	EstimatedDeparture     Clock   `json:"estimatedDeparture"`
	IsOnTime               bool    `json:"isOnTime"`
	WaitTime               int     `json:"waitTime"`
	DistanceFromPreviousKm float64 `json:"distanceFromPreviousKm"`
	TravelMinutes          int     `json:"travelMinutes"`
}

// OptimizedRoute is the sequencer's output. It is never mutated after
// being returned.
type OptimizedRoute struct {
	Stops                []Stop            `json:"stops"`
	Arrivals             []StopArrival     `json:"arrivals"`
	TotalDistanceKm      float64           `json:"totalDistanceKm"`
	TotalDurationMinutes int               `json:"totalDurationMinutes"`
	StartTime            Clock             `json:"startTime"`
	EndTime              Clock             `json:"endTime"`
	Score                int               `json:"score"`
	Feasible             bool              `json:"feasible"`
	Violations           []string          `json:"violations"`
	Warnings             []string          `json:"warnings"`
	VehicleCategory      VehicleCategory   `json:"vehicleCategory"`
	AverageSpeedKmh      float64           `json:"averageSpeedKmh"`
	EstimatedFuelCost    float64           `json:"estimatedFuelCost"`
	Compliance           *ComplianceResult `json:"compliance,omitempty"`
}

// OnTimeCount returns how many stops are reached within their window.
func (r OptimizedRoute) OnTimeCount() int {
	n := 0
	for _, a := range r.Arrivals {
		if a.IsOnTime {
			n++
		}
	}
	return n
}
