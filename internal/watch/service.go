// Package watch runs inspection rounds periodically and keeps track of how
// the convergence of the nodes evolves over time.
package watch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/pkg/resilience/retry"
	"github.com/gabapcia/chaindiff/internal/pkg/validator"
	"github.com/gabapcia/chaindiff/internal/pkg/x/chflow"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const reportChannelBufferSize = 10

// Schedule tells which views are inspected and how often.
type Schedule struct {
	Kinds        []snapshot.Kind `validate:"required,min=1,dive,oneof=longest-chain longest-chain-tx txs-in-mempool"`
	Interval     time.Duration   `validate:"gt=0"`
	StrictLength bool
}

type Service interface {
	// Start inspects every kind of schedule right away and then once per
	// interval. Reports are delivered on the returned channel, which is
	// closed once the service stops.
	Start(ctx context.Context, schedule Schedule) (<-chan inspect.Report, error)

	// Close stops the rounds and waits for the running one to finish.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	inspector inspect.Service

	retry         retry.Retry
	reportStorage ReportStorage
	notifier      ReportNotifier
	recorder      Recorder
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context, schedule Schedule) (<-chan inspect.Report, error) {
	if err := validator.Validate(schedule); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		reportCh = make(chan inspect.Report, reportChannelBufferSize)
		done     = make(chan struct{})
	)

	s.closeFunc = func() {
		cancel()
		<-done
	}

	go s.run(ctx, schedule, reportCh, done)

	s.isStarted = true
	return reportCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// run executes one round per kind on every tick until ctx is done. It owns
// reportCh and closes it on return.
func (s *service) run(ctx context.Context, schedule Schedule, reportCh chan<- inspect.Report, done chan<- struct{}) {
	defer close(done)
	defer close(reportCh)

	ticker := time.NewTicker(schedule.Interval)
	defer ticker.Stop()

	for {
		for _, kind := range schedule.Kinds {
			report, err := s.round(ctx, kind, schedule.StrictLength)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}

			if !chflow.Send(ctx, reportCh, report) {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *service) inspectWithRetry(ctx context.Context, kind snapshot.Kind) (inspect.Report, error) {
	if s.retry == nil {
		return s.inspector.Inspect(ctx, kind)
	}

	var report inspect.Report
	err := s.retry.Execute(ctx, func() error {
		r, err := s.inspector.Inspect(ctx, kind)
		if err != nil {
			return err
		}

		report = r
		return nil
	})
	return report, err
}

// round inspects kind once, retrying on failure, and hands the report to
// the storage, recorder and notifier.
func (s *service) round(ctx context.Context, kind snapshot.Kind, strictLength bool) (inspect.Report, error) {
	report, err := s.inspectWithRetry(ctx, kind)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error(ctx, "inspection round failed", "report.kind", kind, "error", err)
			s.recorder.RecordFailure(kind)
		}
		return inspect.Report{}, err
	}

	if strictLength {
		report = report.WithStrictLength()
	}

	s.handleReport(ctx, report)
	return report, nil
}

func (s *service) previousReport(ctx context.Context, kind snapshot.Kind) *inspect.Report {
	previous, err := s.reportStorage.LoadLatestReport(ctx, kind)
	if err != nil {
		if !errors.Is(err, ErrNoReportFound) {
			logger.Warn(ctx, "failed to load previous report", "report.kind", kind, "error", err)
		}
		return nil
	}
	return &previous
}

func (s *service) handleReport(ctx context.Context, report inspect.Report) {
	ctx = logger.Derive(ctx, "report.id", report.ID, "report.kind", report.Kind)

	transition := transitionBetween(s.previousReport(ctx, report.Kind), report)
	switch transition {
	case TransitionDiverged:
		logger.Warn(ctx, "nodes diverged", "report.pairs", report.Pairs)
	case TransitionConverged:
		logger.Info(ctx, "nodes converged")
	}

	if err := s.reportStorage.SaveReport(ctx, report); err != nil {
		logger.Error(ctx, "failed to save report", "error", err)
	}

	s.recorder.RecordReport(report)

	if report.Converged() && transition == TransitionNone {
		return
	}

	event := Event{Report: report, Converged: report.Converged(), Transition: transition}
	if err := s.notifier.NotifyReport(ctx, event); err != nil {
		logger.Error(ctx, "failed to notify report", "error", err)
	}
}

type config struct {
	retry         retry.Retry
	reportStorage ReportStorage
	notifier      ReportNotifier
	recorder      Recorder
}

type Option func(*config)

func New(inspector inspect.Service, opts ...Option) *service {
	cfg := config{
		retry:         nil,
		reportStorage: nopReportStorage{},
		notifier:      nopReportNotifier{},
		recorder:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		inspector:     inspector,
		retry:         cfg.retry,
		reportStorage: cfg.reportStorage,
		notifier:      cfg.notifier,
		recorder:      cfg.recorder,
	}
}

// WithRetry retries failed rounds through r. Without it a failed round is
// skipped until the next tick.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

func WithReportStorage(rs ReportStorage) Option {
	return func(c *config) {
		c.reportStorage = rs
	}
}

func WithReportNotifier(n ReportNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}
