package snapshot

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNoSources is returned when a collector has no node to query.
var ErrNoSources = errors.New("no sources configured")

// Collector fetches the same view from every source at once and joins the
// results before returning them.
type Collector interface {
	// Collect fetches kind from every source. Snapshots are returned in
	// source order. The first failure cancels the pending fetches and no
	// partial result is returned.
	Collect(ctx context.Context, kind Kind) ([]Snapshot, error)

	// CollectTxCounts fetches the longest chain transaction count of every source.
	CollectTxCounts(ctx context.Context) ([]Count, error)

	// CollectState fetches the UTXO state at block from every source.
	CollectState(ctx context.Context, block uint64) ([]Snapshot, error)
}

type collector struct {
	sources []Source
}

var _ Collector = (*collector)(nil)

// fanOut runs fetch once per source, each in its own goroutine, and waits for
// all of them. Results keep the order of sources.
func fanOut[T any](ctx context.Context, sources []Source, fetch func(context.Context, Source) (T, error)) ([]T, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	results := make([]T, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			result, err := fetch(ctx, source)
			if err != nil {
				return fmt.Errorf("node %s: %w", source.Name(), err)
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *collector) Collect(ctx context.Context, kind Kind) ([]Snapshot, error) {
	return fanOut(ctx, c.sources, func(ctx context.Context, s Source) (Snapshot, error) {
		return s.Fetch(ctx, kind)
	})
}

func (c *collector) CollectTxCounts(ctx context.Context) ([]Count, error) {
	return fanOut(ctx, c.sources, func(ctx context.Context, s Source) (Count, error) {
		value, err := s.TxCount(ctx)
		if err != nil {
			return Count{}, err
		}

		return Count{Node: s.Name(), Value: value}, nil
	})
}

func (c *collector) CollectState(ctx context.Context, block uint64) ([]Snapshot, error) {
	return fanOut(ctx, c.sources, func(ctx context.Context, s Source) (Snapshot, error) {
		return s.State(ctx, block)
	})
}

// NewCollector returns a Collector over the given sources, queried in the
// order they are passed.
func NewCollector(sources ...Source) *collector {
	return &collector{sources: sources}
}
