// Package inspect runs one comparison round: it collects a view from every
// node, compares the results and summarizes them in a Report.
package inspect

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/chaindiff/internal/convergence"
	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/pkg/validator"
	"github.com/gabapcia/chaindiff/internal/snapshot"

	"github.com/google/uuid"
)

type Service interface {
	// Inspect collects kind from every node and compares consecutive nodes.
	Inspect(ctx context.Context, kind snapshot.Kind) (Report, error)

	// TxCounts collects and compares the longest chain transaction counts.
	TxCounts(ctx context.Context) (CountReport, error)

	// State collects the UTXO state at block and compares it regardless of
	// entry order.
	State(ctx context.Context, block uint64) (Report, error)
}

type inspectRequest struct {
	Kind snapshot.Kind `validate:"required,oneof=longest-chain longest-chain-tx txs-in-mempool"`
}

type service struct {
	collector snapshot.Collector
	dumper    snapshot.Dumper
	now       func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) begin(ctx context.Context, keysAndValues ...any) (context.Context, string, time.Time, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return ctx, "", time.Time{}, fmt.Errorf("generate report id: %w", err)
	}

	ctx = logger.Derive(ctx, append([]any{"report.id", id.String()}, keysAndValues...)...)
	return ctx, id.String(), s.now(), nil
}

func (s *service) Inspect(ctx context.Context, kind snapshot.Kind) (Report, error) {
	if err := validator.Validate(inspectRequest{Kind: kind}); err != nil {
		return Report{}, err
	}

	ctx, id, startedAt, err := s.begin(ctx, "report.kind", kind)
	if err != nil {
		return Report{}, err
	}

	snaps, err := s.collector.Collect(ctx, kind)
	if err != nil {
		return Report{}, fmt.Errorf("collect %s: %w", kind, err)
	}

	if kind == snapshot.KindLongestChainTx && s.dumper != nil {
		if err := s.dumper.Dump(ctx, snaps); err != nil {
			return Report{}, fmt.Errorf("dump snapshots: %w", err)
		}
	}

	report := Report{
		ID:        id,
		Kind:      kind,
		StartedAt: startedAt,
		Nodes:     summarize(snaps),
		Pairs:     convergence.CompareAdjacent(snaps),
		Snapshots: snaps,
	}

	switch kind {
	case snapshot.KindLongestChainTx:
		mempool, err := s.collector.Collect(ctx, snapshot.KindMempool)
		if err != nil {
			return Report{}, fmt.Errorf("collect %s: %w", snapshot.KindMempool, err)
		}
		report.Mempool = summarize(mempool)
	case snapshot.KindMempool:
		report.Memberships = convergence.CompareAdjacentMembership(snaps)
	}

	report.Duration = s.now().Sub(startedAt)
	logger.Info(ctx, "inspection finished",
		"report.converged", report.Converged(),
		"report.duration", report.Duration,
	)
	return report, nil
}

func (s *service) TxCounts(ctx context.Context) (CountReport, error) {
	ctx, id, startedAt, err := s.begin(ctx, "report.kind", "longest-chain-tx-count")
	if err != nil {
		return CountReport{}, err
	}

	counts, err := s.collector.CollectTxCounts(ctx)
	if err != nil {
		return CountReport{}, fmt.Errorf("collect tx counts: %w", err)
	}

	report := CountReport{
		ID:        id,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Counts:    counts,
		Equal:     countsEqual(counts),
	}

	logger.Info(ctx, "tx count inspection finished", "report.converged", report.Equal)
	return report, nil
}

func (s *service) State(ctx context.Context, block uint64) (Report, error) {
	ctx, id, startedAt, err := s.begin(ctx, "report.kind", snapshot.KindState, "report.block", block)
	if err != nil {
		return Report{}, err
	}

	snaps, err := s.collector.CollectState(ctx, block)
	if err != nil {
		return Report{}, fmt.Errorf("collect state at block %d: %w", block, err)
	}

	report := Report{
		ID:          id,
		Kind:        snapshot.KindState,
		Block:       &block,
		StartedAt:   startedAt,
		Duration:    s.now().Sub(startedAt),
		Nodes:       summarize(snaps),
		Memberships: convergence.CompareAdjacentMembership(snaps),
		Snapshots:   snaps,
	}

	logger.Info(ctx, "state inspection finished", "report.converged", report.Converged())
	return report, nil
}

type config struct {
	dumper snapshot.Dumper
}

type Option func(*config)

// WithDumper writes the raw chain transaction snapshots through d on every
// Inspect of snapshot.KindLongestChainTx.
func WithDumper(d snapshot.Dumper) Option {
	return func(c *config) {
		c.dumper = d
	}
}

func New(collector snapshot.Collector, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		collector: collector,
		dumper:    cfg.dumper,
		now:       time.Now,
	}
}
