package inspect

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gabapcia/chaindiff/internal/convergence"
	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/pkg/validator"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	snapshottest "github.com/gabapcia/chaindiff/internal/snapshot/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("error")
}

var startedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(collector snapshot.Collector, opts ...Option) *service {
	svc := New(collector, opts...)

	calls := 0
	svc.now = func() time.Time {
		calls++
		if calls == 1 {
			return startedAt
		}
		return startedAt.Add(150 * time.Millisecond)
	}
	return svc
}

func newSnapshot(t *testing.T, node string, kind snapshot.Kind, body string) snapshot.Snapshot {
	t.Helper()

	records, err := snapshot.DecodeRecords([]byte(body))
	require.NoError(t, err)
	return snapshot.Snapshot{Node: node, Kind: kind, Records: records, Raw: json.RawMessage(body)}
}

func TestService_Inspect(t *testing.T) {
	t.Run("longest chain with a node ahead of its peers", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		snaps := []snapshot.Snapshot{
			newSnapshot(t, "node1", snapshot.KindLongestChain, `[{"id":1},{"id":2}]`),
			newSnapshot(t, "node2", snapshot.KindLongestChain, `[{"id":1},{"id":2},{"id":3}]`),
		}
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChain).Return(snaps, nil)

		report, err := newTestService(collector).Inspect(t.Context(), snapshot.KindLongestChain)

		require.NoError(t, err)
		_, err = uuid.Parse(report.ID)
		assert.NoError(t, err)
		assert.Equal(t, snapshot.KindLongestChain, report.Kind)
		assert.Equal(t, startedAt, report.StartedAt)
		assert.Equal(t, 150*time.Millisecond, report.Duration)
		assert.Equal(t, []NodeSummary{{Node: "node1", Length: 2}, {Node: "node2", Length: 3}}, report.Nodes)
		require.Len(t, report.Pairs, 1)
		assert.True(t, report.Pairs[0].Equal)
		assert.Empty(t, report.Memberships)
		assert.Empty(t, report.Mempool)
		assert.Equal(t, snaps, report.Snapshots)
		assert.True(t, report.Converged())
	})

	t.Run("chain transactions are dumped and paired with mempool lengths", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		dumper := snapshottest.NewDumper(t)

		txs := []snapshot.Snapshot{
			newSnapshot(t, "node1", snapshot.KindLongestChainTx, `[["t1"],["t2"]]`),
			newSnapshot(t, "node2", snapshot.KindLongestChainTx, `[["t1"],["t9"]]`),
		}
		mempool := []snapshot.Snapshot{
			newSnapshot(t, "node1", snapshot.KindMempool, `["m1","m2"]`),
			newSnapshot(t, "node2", snapshot.KindMempool, `[]`),
		}
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChainTx).Return(txs, nil)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindMempool).Return(mempool, nil)
		dumper.EXPECT().Dump(mock.Anything, txs).Return(nil)

		report, err := newTestService(collector, WithDumper(dumper)).Inspect(t.Context(), snapshot.KindLongestChainTx)

		require.NoError(t, err)
		require.Len(t, report.Pairs, 1)
		assert.False(t, report.Pairs[0].Equal)
		assert.Equal(t, 1, report.Pairs[0].Mismatch)
		assert.Equal(t, []NodeSummary{{Node: "node1", Length: 2}, {Node: "node2", Length: 0}}, report.Mempool)
		assert.False(t, report.Converged())
	})

	t.Run("mempool adds membership comparisons", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindMempool).Return([]snapshot.Snapshot{
			newSnapshot(t, "node1", snapshot.KindMempool, `["a","b"]`),
			newSnapshot(t, "node2", snapshot.KindMempool, `["b","a"]`),
		}, nil)

		report, err := newTestService(collector).Inspect(t.Context(), snapshot.KindMempool)

		require.NoError(t, err)
		require.Len(t, report.Memberships, 1)
		assert.True(t, report.Memberships[0].Equal)
		assert.False(t, report.Pairs[0].Equal)
		assert.False(t, report.Converged())
	})

	t.Run("dumper is not used for other kinds", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		dumper := snapshottest.NewDumper(t)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChain).Return([]snapshot.Snapshot{}, nil)

		_, err := newTestService(collector, WithDumper(dumper)).Inspect(t.Context(), snapshot.KindLongestChain)
		assert.NoError(t, err)
	})

	t.Run("collection failure aborts the round", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChain).Return(nil, assert.AnError)

		_, err := newTestService(collector).Inspect(t.Context(), snapshot.KindLongestChain)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "collect longest-chain")
	})

	t.Run("dump failure aborts the round", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		dumper := snapshottest.NewDumper(t)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChainTx).Return([]snapshot.Snapshot{}, nil)
		dumper.EXPECT().Dump(mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := newTestService(collector, WithDumper(dumper)).Inspect(t.Context(), snapshot.KindLongestChainTx)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("mempool failure aborts the chain transactions round", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindLongestChainTx).Return([]snapshot.Snapshot{}, nil)
		collector.EXPECT().Collect(mock.Anything, snapshot.KindMempool).Return(nil, assert.AnError)

		_, err := newTestService(collector).Inspect(t.Context(), snapshot.KindLongestChainTx)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("rejects kinds that need parameters", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)

		_, err := newTestService(collector).Inspect(t.Context(), snapshot.KindState)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_TxCounts(t *testing.T) {
	t.Run("equal counts", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		counts := []snapshot.Count{{Node: "node1", Value: 4}, {Node: "node2", Value: 4}}
		collector.EXPECT().CollectTxCounts(mock.Anything).Return(counts, nil)

		report, err := newTestService(collector).TxCounts(t.Context())

		require.NoError(t, err)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, counts, report.Counts)
		assert.True(t, report.Equal)
	})

	t.Run("different counts", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().CollectTxCounts(mock.Anything).
			Return([]snapshot.Count{{Node: "node1", Value: 4}, {Node: "node2", Value: 5}}, nil)

		report, err := newTestService(collector).TxCounts(t.Context())

		require.NoError(t, err)
		assert.False(t, report.Equal)
	})

	t.Run("collection failure", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().CollectTxCounts(mock.Anything).Return(nil, assert.AnError)

		_, err := newTestService(collector).TxCounts(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_State(t *testing.T) {
	t.Run("compares entries regardless of order", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().CollectState(mock.Anything, uint64(3)).Return([]snapshot.Snapshot{
			newSnapshot(t, "node1", snapshot.KindState, `[["a",0,5,"bob"],["b",0,7,"eve"]]`),
			newSnapshot(t, "node2", snapshot.KindState, `[["b",0,7,"eve"],["a",0,5,"bob"]]`),
		}, nil)

		report, err := newTestService(collector).State(t.Context(), 3)

		require.NoError(t, err)
		assert.Equal(t, snapshot.KindState, report.Kind)
		require.NotNil(t, report.Block)
		assert.Equal(t, uint64(3), *report.Block)
		assert.Empty(t, report.Pairs)
		require.Len(t, report.Memberships, 1)
		assert.True(t, report.Converged())
	})

	t.Run("collection failure", func(t *testing.T) {
		collector := snapshottest.NewCollector(t)
		collector.EXPECT().CollectState(mock.Anything, uint64(9)).Return(nil, assert.AnError)

		_, err := newTestService(collector).State(t.Context(), 9)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "block 9")
	})
}

func TestReport_WithStrictLength(t *testing.T) {
	report := Report{Pairs: []convergence.PairResult{
		{LeftLength: 2, RightLength: 3, Equal: true, Mismatch: convergence.NoMismatch, CommonPrefix: 2},
		{LeftLength: 3, RightLength: 3, Equal: true, Mismatch: convergence.NoMismatch, CommonPrefix: 3},
	}}

	strict := report.WithStrictLength()

	assert.True(t, report.Converged(), "the receiver must be left untouched")
	assert.False(t, strict.Converged())
	assert.False(t, strict.Pairs[0].Equal)
	assert.Equal(t, 2, strict.Pairs[0].Mismatch)
	assert.True(t, strict.Pairs[1].Equal)
}

func TestReport_Converged(t *testing.T) {
	assert.True(t, Report{}.Converged())
	assert.False(t, Report{Memberships: []convergence.MembershipResult{{Equal: false}}}.Converged())
}
