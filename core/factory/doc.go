// Package factory instantiates pluggable modules, such as metrics sinks, from
// configuration. A module is described by a type name and a map of raw
// settings; the registered factory decodes the settings into its own typed
// struct with Decode.
//
//	reg := factory.NewRegistry[metrics.PlanningSink]()
//	_ = reg.Register("prometheus", func(conf map[string]any) (metrics.PlanningSink, error) {
//	    var c struct{ Namespace string `json:"namespace"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newSink(c.Namespace)
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "prometheus"})
package factory
