// Package metrics defines the sink interface the planner reports to. Sinks
// such as the Prometheus one in infra/metrics record every optimized route
// and every assignment search; several sinks can be combined with
// NewMultiSink, and NewSink builds the configured set from ModuleConfigs.
package metrics
