package inspect

import (
	"slices"
	"time"

	"github.com/gabapcia/chaindiff/internal/convergence"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

// NodeSummary is the length of the view served by one node.
type NodeSummary struct {
	Node   string `json:"node"`
	Length int    `json:"length"`
}

// Report is the outcome of one inspection round over every node.
type Report struct {
	ID          string                         `json:"id"`
	Kind        snapshot.Kind                  `json:"kind"`
	Block       *uint64                        `json:"block,omitempty"` // set for state reports only
	StartedAt   time.Time                      `json:"started_at"`
	Duration    time.Duration                  `json:"duration"`
	Nodes       []NodeSummary                  `json:"nodes"`
	Pairs       []convergence.PairResult       `json:"pairs,omitempty"`
	Memberships []convergence.MembershipResult `json:"memberships,omitempty"`
	Mempool     []NodeSummary                  `json:"mempool,omitempty"` // mempool lengths gathered alongside chain transactions
	Snapshots   []snapshot.Snapshot            `json:"-"`
}

// Converged reports whether every comparison of the report found the nodes
// in agreement.
func (r Report) Converged() bool {
	for _, p := range r.Pairs {
		if !p.Equal {
			return false
		}
	}
	for _, m := range r.Memberships {
		if !m.Equal {
			return false
		}
	}
	return true
}

// WithStrictLength returns a copy of r where pairs of different lengths are
// no longer considered equal.
func (r Report) WithStrictLength() Report {
	pairs := slices.Clone(r.Pairs)
	for i := range pairs {
		pairs[i] = pairs[i].Strict()
	}
	r.Pairs = pairs
	return r
}

func summarize(snaps []snapshot.Snapshot) []NodeSummary {
	summaries := make([]NodeSummary, 0, len(snaps))
	for _, s := range snaps {
		summaries = append(summaries, NodeSummary{Node: s.Node, Length: s.Len()})
	}
	return summaries
}

// CountReport is the outcome of comparing the transaction counts of every node.
type CountReport struct {
	ID        string           `json:"id"`
	StartedAt time.Time        `json:"started_at"`
	Duration  time.Duration    `json:"duration"`
	Counts    []snapshot.Count `json:"counts"`
	Equal     bool             `json:"equal"`
}

func countsEqual(counts []snapshot.Count) bool {
	for i := 1; i < len(counts); i++ {
		if counts[i].Value != counts[0].Value {
			return false
		}
	}
	return true
}
