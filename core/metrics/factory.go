package metrics

import "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/factory"

var sinkRegistry = factory.NewRegistry[PlanningSink]()

// RegisterSink makes a sink type available to NewSink.
func RegisterSink(name string, f factory.Factory[PlanningSink]) error {
	return sinkRegistry.Register(name, f)
}

// SinkTypes lists the registered sink types.
func SinkTypes() []string { return sinkRegistry.Names() }

// NewSink builds the sinks described by cfgs. No configuration yields a
// NopSink and several yield a MultiSink.
func NewSink(cfgs []factory.ModuleConfig) (PlanningSink, error) {
	switch len(cfgs) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]PlanningSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}
