// Package node implements snapshot.Source on top of the node HTTP API.
package node

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gabapcia/chaindiff/internal/pkg/transport/nodeapi"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

const (
	txCountPath = "/blockchain/longest-chain-tx-count"
	statePath   = "/blockchain/state"
)

// client implements snapshot.Source for a single node.
type client struct {
	name string
	conn nodeapi.Client
	now  func() time.Time
}

// Ensure client implements the snapshot.Source interface at compile time.
var _ snapshot.Source = (*client)(nil)

func (c *client) Name() string {
	return c.name
}

func (c *client) snapshot(kind snapshot.Kind, body json.RawMessage) (snapshot.Snapshot, error) {
	records, err := snapshot.DecodeRecords(body)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%s: %w", kind, err)
	}

	return snapshot.Snapshot{
		Node:      c.name,
		Kind:      kind,
		Records:   records,
		Raw:       body,
		FetchedAt: c.now(),
	}, nil
}

func (c *client) Fetch(ctx context.Context, kind snapshot.Kind) (snapshot.Snapshot, error) {
	body, err := c.conn.Get(ctx, kind.Path(), nil)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	return c.snapshot(kind, body)
}

func (c *client) TxCount(ctx context.Context) (int64, error) {
	body, err := c.conn.Get(ctx, txCountPath, nil)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := json.Unmarshal(body, &count); err != nil {
		return 0, fmt.Errorf("decode tx count: %w", err)
	}
	return count, nil
}

func (c *client) State(ctx context.Context, block uint64) (snapshot.Snapshot, error) {
	query := url.Values{"block": {strconv.FormatUint(block, 10)}}
	body, err := c.conn.Get(ctx, statePath, query)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	return c.snapshot(snapshot.KindState, body)
}

// nameFromURL returns the host:port part of a node address, or the address
// itself when it cannot be parsed.
func nameFromURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}

// NewClient returns a snapshot.Source reading from the node behind conn. The
// node is named after the host of its address.
func NewClient(conn nodeapi.Client) *client {
	return &client{
		name: nameFromURL(conn.BaseURL()),
		conn: conn,
		now:  time.Now,
	}
}
