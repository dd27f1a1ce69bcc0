package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/api/routes"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/config"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/events"
	coremetrics "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
	coremon "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/monitoring"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planlog"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planning"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/logger"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/metrics"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/infra/monitoring"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/internal/eventbus"
)

// Service serves the planner over HTTP and records its activity in the
// configured metrics sinks.
type Service struct {
	Planner  *planning.Planner
	bus      *eventbus.TypedBus[events.Event]
	sink     coremetrics.PlanningSink
	store    planlog.Store
	reporter coremon.Reporter
	server   *http.Server
	log      logger.Logger
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	defaults, err := cfg.Routing.Constraints()
	if err != nil {
		return nil, fmt.Errorf("routing defaults: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	reporter, err := monitoring.NewSentryReporter(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	var store planlog.Store
	if cfg.PlanLog != nil {
		if store, err = planlog.NewStore(*cfg.PlanLog); err != nil {
			return nil, fmt.Errorf("plan log: %w", err)
		}
	}

	bus := eventbus.NewTyped[events.Event]()
	planner := planning.NewPlanner(defaults,
		planning.WithLogger(logger.New("planner")),
		planning.WithBus(bus),
		planning.WithConcurrency(cfg.Planner.BatchConcurrency),
	)

	mux := http.NewServeMux()
	routes.Register(mux, planner, routes.Options{
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Store:        store,
		Token:        cfg.HTTP.Token,
		Reporter:     reporter,
	})
	svc := &Service{
		Planner:  planner,
		bus:      bus,
		sink:     sink,
		store:    store,
		reporter: reporter,
		log:      logg,
		server: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           mux,
			ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
			ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		},
	}
	if cfg.Metrics.HasSink("prometheus") {
		svc.promAddr = cfg.Metrics.PrometheusAddr
	}
	return svc, nil
}

// Run serves the API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	collected := metrics.StartEventCollector(ctx, s.bus, s.sink, logger.New("collector"))
	recorded := planlog.StartRecorder(ctx, s.bus, s.store, logger.New("planlog"))
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		runErr = fmt.Errorf("http server: %w", err)
		s.reporter.Report(ctx, runErr, map[string]string{"component": "http"})
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.log.Warnf("http shutdown: %v", err)
	}
	s.bus.Close()
	<-collected
	<-recorded
	s.reporter.Flush(2 * time.Second)
	return runErr
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	err := s.server.Close()
	if s.store != nil {
		err = errors.Join(err, s.store.Close())
	}
	return err
}
