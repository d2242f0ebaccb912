// Package snapshot models the views fetched from blockchain nodes and
// collects them from every node at once.
//
// A Snapshot is the ordered sequence of opaque records one node returned for
// one view at one point in time. Records are never interpreted: they are
// compared structurally by the convergence package and otherwise passed
// through untouched.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	// ErrUnknownKind is returned when a view name does not match any Kind.
	ErrUnknownKind = errors.New("unknown snapshot kind")

	// ErrNotASequence is returned when a node answers with a JSON value that
	// is not an array.
	ErrNotASequence = errors.New("response is not a JSON array")
)

// Kind names a sequence view exposed by the node API. Its value is the last
// segment of the endpoint path.
type Kind string

const (
	// KindLongestChain lists the block hashes of the longest chain.
	KindLongestChain Kind = "longest-chain"

	// KindLongestChainTx lists, for every block of the longest chain, the
	// hashes of its transactions.
	KindLongestChainTx Kind = "longest-chain-tx"

	// KindMempool lists the hashes of the pending transactions.
	KindMempool Kind = "txs-in-mempool"

	// KindState lists the UTXO entries at a given height. It is only
	// reachable through Source.State because it needs a block parameter.
	KindState Kind = "state"
)

// Kinds returns the views that can be fetched without parameters, in the
// order the CLI presents them.
func Kinds() []Kind {
	return []Kind{KindLongestChain, KindLongestChainTx, KindMempool}
}

// ParseKind maps a view name to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Path returns the endpoint path serving this view.
func (k Kind) Path() string {
	return "/blockchain/" + string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Record is one opaque element of a snapshot: a block hash, the list of
// transaction hashes of a block, a UTXO tuple, and so on.
type Record = json.RawMessage

// Snapshot is the view one node returned at one point in time.
type Snapshot struct {
	Node      string    // name of the node that served the view
	Kind      Kind      // view the records belong to
	Records   []Record  // decoded top level elements, in node order
	Raw       []byte    // body exactly as received
	FetchedAt time.Time // when the response was received
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Records)
}

// Count is the transaction count reported by one node.
type Count struct {
	Node  string `json:"node"`
	Value int64  `json:"value"`
}

// DecodeRecords splits a JSON array into its elements without interpreting
// them. It returns ErrNotASequence when body holds any other JSON value.
func DecodeRecords(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotASequence
	}

	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}
