package convergence

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gabapcia/chaindiff/internal/pkg/types"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

// MembershipResult is the outcome of an order-insensitive comparison of two
// snapshots. Nodes serve the mempool and the UTXO state out of hash maps, so
// two converged nodes may list the same records in different orders.
type MembershipResult struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Shared    int    `json:"shared"`
	OnlyLeft  int    `json:"only_left"`
	OnlyRight int    `json:"only_right"`
	Equal     bool   `json:"equal"`
}

// canonicalKey renders a record so that records equal under RecordsEqual
// get the same key.
func canonicalKey(r snapshot.Record) string {
	tokens, err := tokenize(r)
	if err != nil {
		return string(compact(r))
	}

	var b strings.Builder
	for _, tok := range tokens {
		switch v := tok.(type) {
		case json.Delim:
			b.WriteRune(rune(v))
		case string:
			b.WriteString(strconv.Quote(v))
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case bool:
			b.WriteString(strconv.FormatBool(v))
		case nil:
			b.WriteString("null")
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// recordCounts counts how many times every record occurs.
func recordCounts(records []snapshot.Record) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[canonicalKey(r)]++
	}
	return counts
}

// Membership compares the records of left and right regardless of their
// position. Duplicates count: a record listed twice on one side and once on
// the other leaves one occurrence unmatched.
func Membership(left, right snapshot.Snapshot) MembershipResult {
	l, r := recordCounts(left.Records), recordCounts(right.Records)

	keys := types.NewSet[string]()
	for k := range l {
		keys.Add(k)
	}
	for k := range r {
		keys.Add(k)
	}

	result := MembershipResult{Left: left.Node, Right: right.Node}
	for k := range keys.ToIter() {
		result.Shared += min(l[k], r[k])
		result.OnlyLeft += max(l[k]-r[k], 0)
		result.OnlyRight += max(r[k]-l[k], 0)
	}
	result.Equal = result.OnlyLeft == 0 && result.OnlyRight == 0
	return result
}

// CompareAdjacentMembership applies Membership to every snapshot and the next one.
func CompareAdjacentMembership(snaps []snapshot.Snapshot) []MembershipResult {
	if len(snaps) < 2 {
		return nil
	}

	results := make([]MembershipResult, 0, len(snaps)-1)
	for i := 1; i < len(snaps); i++ {
		results = append(results, Membership(snaps[i-1], snaps[i]))
	}
	return results
}
