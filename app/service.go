// Package app wires the configuration into a running assignment service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ajoux/workplan/api/plans"
	"github.com/ajoux/workplan/config"
	"github.com/ajoux/workplan/core/assign"
	"github.com/ajoux/workplan/core/calendar"
	"github.com/ajoux/workplan/core/logger"
	coremetrics "github.com/ajoux/workplan/core/metrics"
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
	infralogger "github.com/ajoux/workplan/infra/logger"
	"github.com/ajoux/workplan/infra/metrics"
	"github.com/ajoux/workplan/infra/notify"
	"github.com/ajoux/workplan/internal/eventbus"
)

// Service owns the HTTP server, the metric sinks and the run notifier, and
// executes assignment runs on request.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	cal      *calendar.Calendar
	sink     coremetrics.Sink
	bus      *eventbus.Bus
	notifier *notify.MQTTNotifier
	srv      *http.Server
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := infralogger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	s := &Service{
		cfg:  cfg,
		log:  logg,
		cal:  calendar.New(cfg.Plan.Holidays, cfg.Plan.Weekend()...),
		sink: sink,
		bus:  eventbus.New(),
	}

	if cfg.Notify.Enabled {
		notifier, err := notify.New(cfg.Notify)
		if err != nil {
			return nil, fmt.Errorf("mqtt notifier: %w", err)
		}
		s.notifier = notifier
		go notifier.Run(s.bus.Subscribe())
	}

	mux := http.NewServeMux()
	mux.Handle("/api/plan/assign", plans.NewAssignHandler(s, infralogger.New("api")))
	if cfg.Metrics.PrometheusEnabled && cfg.Metrics.PrometheusPort == "" {
		mux.Handle("/metrics", promhttp.Handler())
	}
	s.srv = &http.Server{Addr: cfg.Server.Addr, Handler: mux}
	return s, nil
}

// Assign resolves the plan, runs the pipeline over the rows and records the
// outcome. Implements the api/plans Runner interface.
func (s *Service) Assign(rows []model.Row, planLabel string, now time.Time) ([]model.Row, assign.Report, error) {
	cfg, ptype := plan.Resolve(planLabel)
	start := time.Now()
	out, rep, res := assign.Execute(rows, cfg, now, s.cal)

	ev := coremetrics.RunEvent{
		RunID:       res.RunID,
		PlanLabel:   cfg.Label,
		PlanKnown:   ptype != plan.Unknown,
		Rows:        len(rows),
		Tasks:       rep.Tasks,
		Assigned:    rep.Assigned,
		PreAssigned: rep.PreAssigned,
		Unassigned:  rep.Unassigned,
		MeanLoad:    rep.MeanLoad,
		Duration:    time.Since(start),
		Timestamp:   now,
	}
	s.sink.RecordRun(ev)
	s.sink.RecordTasks(res.Events)
	s.bus.Publish(ev)

	s.log.Infof("run %s (%s): %s", rep.RunID, cfg.Label, rep.Message())
	return out, rep, nil
}

// Run serves HTTP until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled && s.cfg.Metrics.PrometheusPort != "" {
		go func() {
			if err := metrics.StartPromServer(s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	s.log.Infof("listening on %s", s.cfg.Server.Addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Close releases the bus and the notifier.
func (s *Service) Close() error {
	s.bus.Close()
	if s.notifier != nil {
		s.notifier.Close()
	}
	return nil
}
