package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("error")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "tx1.json", FileName(snapshot.KindLongestChainTx, 0))
	assert.Equal(t, "tx2.json", FileName(snapshot.KindLongestChainTx, 1))
	assert.Equal(t, "chain3.json", FileName(snapshot.KindLongestChain, 2))
	assert.Equal(t, "mempool1.json", FileName(snapshot.KindMempool, 0))
	assert.Equal(t, "other1.json", FileName(snapshot.Kind("other"), 0))
}

func TestDumper_Dump(t *testing.T) {
	t.Run("writes one compact file per node", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "dumps")

		err := New(dir).Dump(t.Context(), []snapshot.Snapshot{
			{Node: "node1", Kind: snapshot.KindLongestChainTx, Raw: []byte("[\n  [\"a\"],\n  [\"b\"]\n]")},
			{Node: "node2", Kind: snapshot.KindLongestChainTx, Raw: []byte(`[["a"]]`)},
		})
		require.NoError(t, err)

		first, err := os.ReadFile(filepath.Join(dir, "tx1.json"))
		require.NoError(t, err)
		assert.Equal(t, `[["a"],["b"]]`, string(first))

		second, err := os.ReadFile(filepath.Join(dir, "tx2.json"))
		require.NoError(t, err)
		assert.Equal(t, `[["a"]]`, string(second))
	})

	t.Run("keeps invalid bodies as received", func(t *testing.T) {
		dir := t.TempDir()

		err := New(dir).Dump(t.Context(), []snapshot.Snapshot{
			{Node: "node1", Kind: snapshot.KindLongestChain, Raw: []byte("not json")},
		})
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "chain1.json"))
		require.NoError(t, err)
		assert.Equal(t, "not json", string(content))
	})

	t.Run("fails when the directory cannot be created", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		err := New(filepath.Join(file, "sub")).Dump(t.Context(), nil)
		assert.ErrorContains(t, err, "create dump directory")
	})
}
