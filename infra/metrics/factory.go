package metrics

import (
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/factory"
	coremetrics "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/logger"
)

// init registers the built-in sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.PlanningSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.PlanningSink, error) {
		var c struct {
			Namespace string `json:"namespace"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Namespace)
	})

	_ = coremetrics.RegisterSink("log", func(conf map[string]any) (coremetrics.PlanningSink, error) {
		var c struct {
			Component string `json:"component"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Component == "" {
			c.Component = "metrics"
		}
		return NewLogSink(logger.New(c.Component)), nil
	})
}
