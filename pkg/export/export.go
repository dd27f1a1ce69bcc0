package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
)

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes the stop schedule of the route to w, one row per stop in
// visiting order.
func WriteCSV(w io.Writer, route model.OptimizedRoute) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sequence", "stop_id", "address", "arrival", "departure", "on_time", "wait_min", "distance_km", "travel_min"}); err != nil {
		return err
	}
	for _, a := range route.Arrivals {
		rec := []string{
			strconv.Itoa(a.Sequence),
			a.StopID,
			a.Address,
			a.EstimatedArrival.String(),
			a.EstimatedDeparture.String(),
			strconv.FormatBool(a.IsOnTime),
			strconv.Itoa(a.WaitTime),
			strconv.FormatFloat(a.DistanceFromPreviousKm, 'f', 2, 64),
			strconv.Itoa(a.TravelMinutes),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTimelineCSV writes the driving-time periods of a compliance result.
func WriteTimelineCSV(w io.Writer, periods []model.DrivingPeriod) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"type", "start", "end", "duration_min", "description"}); err != nil {
		return err
	}
	for _, p := range periods {
		rec := []string{
			string(p.Type),
			p.Start.String(),
			p.End.String(),
			strconv.Itoa(p.DurationMinutes),
			p.Description,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
