package metrics

import "errors"

// MultiSink fans records out to several sinks.
type MultiSink struct {
	Sinks []PlanningSink
}

// NewMultiSink combines sinks.
func NewMultiSink(sinks ...PlanningSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRoute forwards r to every sink. All sinks are tried; their errors
// are joined.
func (m *MultiSink) RecordRoute(r RouteResult) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordRoute(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordAssignment forwards a to every sink.
func (m *MultiSink) RecordAssignment(a AssignmentResult) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordAssignment(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
