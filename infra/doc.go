// Package infra contains technical adapters such as metrics exporters,
// loggers and error reporting. These packages should depend only on the
// interfaces defined in the core packages.
package infra
