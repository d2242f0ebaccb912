// Package dump writes the raw bodies of collected snapshots to local files so
// that they can be inspected by hand.
package dump

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

var filePrefixes = map[snapshot.Kind]string{
	snapshot.KindLongestChain:   "chain",
	snapshot.KindLongestChainTx: "tx",
	snapshot.KindMempool:        "mempool",
	snapshot.KindState:          "state",
}

type dumper struct {
	dir string
}

var _ snapshot.Dumper = (*dumper)(nil)

// FileName returns the name of the file holding the i-th snapshot (0-based)
// of a collection, such as tx1.json for the first node.
func FileName(kind snapshot.Kind, i int) string {
	prefix, ok := filePrefixes[kind]
	if !ok {
		prefix = string(kind)
	}
	return fmt.Sprintf("%s%d.json", prefix, i+1)
}

func (d *dumper) Dump(ctx context.Context, snapshots []snapshot.Snapshot) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create dump directory: %w", err)
	}

	for i, snap := range snapshots {
		path := filepath.Join(d.dir, FileName(snap.Kind, i))
		if err := os.WriteFile(path, compact(snap.Raw), 0o644); err != nil {
			return fmt.Errorf("dump %s: %w", snap.Node, err)
		}

		logger.Debug(ctx, "snapshot dumped", "node", snap.Node, "kind", snap.Kind, "path", path)
	}

	return nil
}

func compact(raw []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

// New returns a snapshot.Dumper writing into dir, created on first use.
func New(dir string) *dumper {
	return &dumper{dir: dir}
}
