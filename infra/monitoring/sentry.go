package monitoring

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/config"
	coremon "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/monitoring"
)

// NewSentryReporter initializes Sentry from cfg. An empty DSN disables
// reporting.
func NewSentryReporter(cfg config.SentryConfig) (coremon.Reporter, error) {
	if cfg.DSN == "" {
		return coremon.NopReporter{}, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		TracesSampleRate: cfg.TracesSampleRate,
		Release:          cfg.Release,
	})
	if err != nil {
		return nil, err
	}
	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

type sentryReporter struct {
	hub *sentry.Hub
}

func (s *sentryReporter) Report(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := s.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		if ctx != nil {
			if deadline, ok := ctx.Deadline(); ok {
				scope.SetExtra("deadline", deadline.Format(time.RFC3339))
			}
		}
		hub.CaptureException(err)
	})
}

func (s *sentryReporter) Flush(timeout time.Duration) bool { return s.hub.Flush(timeout) }
