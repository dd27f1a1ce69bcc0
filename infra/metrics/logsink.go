package metrics

import (
	coremetrics "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/logger"
)

// LogSink writes every record as a structured log line. It is useful when
// no Prometheus scraper is around, e.g. for one-shot CLI runs.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a sink logging through l.
func NewLogSink(l logger.Logger) *LogSink {
	if l == nil {
		l = logger.NopLogger{}
	}
	return &LogSink{log: l}
}

func (s *LogSink) RecordRoute(r coremetrics.RouteResult) error {
	s.log.Infow("route metrics", map[string]any{
		"route_id":    r.RouteID,
		"category":    r.Category.String(),
		"stops":       r.Stops,
		"feasible":    r.Feasible,
		"distance_km": r.DistanceKm,
		"duration":    r.DurationMinutes,
		"breaks":      r.Breaks,
		"elapsed_ms":  r.Elapsed.Milliseconds(),
	})
	return nil
}

func (s *LogSink) RecordAssignment(a coremetrics.AssignmentResult) error {
	s.log.Infow("assignment metrics", map[string]any{
		"request_id":  a.RequestID,
		"found":       a.Found,
		"total_score": a.TotalScore,
		"candidates":  a.Candidates,
		"elapsed_ms":  a.Elapsed.Milliseconds(),
	})
	return nil
}
