// Package convergence compares snapshots collected from different nodes and
// tells whether the nodes agree on their contents.
//
// The main comparison is a prefix comparison: two sequences are equal when
// every index both of them hold carries the same JSON record. Trailing
// records of the longer sequence are ignored, so a node that is a few blocks
// ahead of its peer still counts as converged. WithStrictLength turns the
// length difference into a divergence.
package convergence

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gabapcia/chaindiff/internal/snapshot"

	"github.com/google/go-cmp/cmp"
)

// NoMismatch is the mismatch index reported when no differing pair was found.
const NoMismatch = -1

// PairResult is the outcome of comparing the snapshots of two nodes.
type PairResult struct {
	Left         string `json:"left"`
	Right        string `json:"right"`
	LeftLength   int    `json:"left_length"`
	RightLength  int    `json:"right_length"`
	Equal        bool   `json:"equal"`
	Mismatch     int    `json:"mismatch"`      // index of the first differing pair, NoMismatch if none
	CommonPrefix int    `json:"common_prefix"` // number of leading records both nodes agree on
}

// Strict returns a copy of r that also requires both snapshots to have the
// same length. A length difference is reported as a mismatch at the end of
// the shorter snapshot.
func (r PairResult) Strict() PairResult {
	if r.Equal && r.LeftLength != r.RightLength {
		r.Equal = false
		r.Mismatch = r.CommonPrefix
	}
	return r
}

type config struct {
	strictLength bool
}

type Option func(*config)

// WithStrictLength makes Compare report snapshots of different lengths as
// not equal, even when the shorter one is a prefix of the longer one.
func WithStrictLength() Option {
	return func(c *config) {
		c.strictLength = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RecordsEqual reports whether a and b hold the same JSON text once
// insignificant whitespace is removed. Object key order and array order both
// matter; numbers are compared by value, so 1 and 1.0 are equal. Records that
// are not valid JSON are compared byte by byte after compaction.
func RecordsEqual(a, b snapshot.Record) bool {
	ta, errA := tokenize(a)
	tb, errB := tokenize(b)
	if errA == nil && errB == nil {
		return cmp.Equal(ta, tb)
	}

	return bytes.Equal(compact(a), compact(b))
}

// tokenize returns the JSON tokens of raw in document order. Numbers are
// decoded as float64.
func tokenize(raw []byte) ([]json.Token, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	var tokens []json.Token
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return tokens, nil
}

func compact(raw []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return bytes.TrimSpace(raw)
	}
	return buf.Bytes()
}

// PrefixEqual compares a and b over their shared length min(len(a), len(b)).
// It returns true when every pair matches, otherwise false and the index of
// the first differing pair. The mismatch index is NoMismatch when equal.
func PrefixEqual(a, b []snapshot.Record) (bool, int) {
	k := min(len(a), len(b))
	for i := range k {
		if !RecordsEqual(a[i], b[i]) {
			return false, i
		}
	}
	return true, NoMismatch
}

// Compare runs the prefix comparison between two snapshots.
func Compare(left, right snapshot.Snapshot, opts ...Option) PairResult {
	cfg := newConfig(opts)

	equal, mismatch := PrefixEqual(left.Records, right.Records)
	result := PairResult{
		Left:         left.Node,
		Right:        right.Node,
		LeftLength:   left.Len(),
		RightLength:  right.Len(),
		Equal:        equal,
		Mismatch:     mismatch,
		CommonPrefix: min(left.Len(), right.Len()),
	}
	if !equal {
		result.CommonPrefix = mismatch
	}

	if cfg.strictLength {
		return result.Strict()
	}
	return result
}

// CompareAdjacent compares every snapshot with the next one: the first with
// the second, the second with the third, and so on. Fewer than two snapshots
// yield no result.
func CompareAdjacent(snaps []snapshot.Snapshot, opts ...Option) []PairResult {
	if len(snaps) < 2 {
		return nil
	}

	results := make([]PairResult, 0, len(snaps)-1)
	for i := 1; i < len(snaps); i++ {
		results = append(results, Compare(snaps[i-1], snaps[i], opts...))
	}
	return results
}
