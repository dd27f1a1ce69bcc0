// Package monitoring defines how failures are reported to an external
// error tracker.
package monitoring

import (
	"context"
	"time"
)

// Reporter forwards unexpected errors to an error tracker.
type Reporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
	// Flush waits up to timeout for buffered reports and reports whether
	// everything was sent.
	Flush(timeout time.Duration) bool
}

type NopReporter struct{}

func (NopReporter) Report(context.Context, error, map[string]string) {}
func (NopReporter) Flush(time.Duration) bool                         { return true }

// OrNop returns r, or a NopReporter when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}
