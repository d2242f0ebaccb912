package snapshot

import "context"

// Source is one node able to serve the sequence views.
type Source interface {
	// Name identifies the node in reports and logs, typically its host:port.
	Name() string

	// Fetch retrieves the records of the given view as currently seen by the node.
	Fetch(ctx context.Context, kind Kind) (Snapshot, error)

	// TxCount retrieves the number of transactions in the node's longest chain.
	TxCount(ctx context.Context) (int64, error)

	// State retrieves the UTXO entries of the node at the given block height.
	State(ctx context.Context, block uint64) (Snapshot, error)
}

// Dumper persists the raw bodies of a collection for manual inspection.
type Dumper interface {
	Dump(ctx context.Context, snapshots []Snapshot) error
}
