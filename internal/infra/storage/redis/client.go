// Package redis stores watch reports in Redis.
//
// Every kind owns two keys: the latest report and a bounded history list,
// newest first. See reports.go for the key layout.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// defaultHistorySize is the number of reports kept per kind in the history list.
const defaultHistorySize = 100

// client is the Redis backed watch.ReportStorage.
type client struct {
	conn        *redis.Client
	historySize int64
}

type config struct {
	username    string
	password    string
	db          int
	historySize int64
}

// Option customizes the Redis connection and the report history.
type Option func(*config)

// WithCredentials authenticates the connection. An empty username uses the
// legacy AUTH command with the password only.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithHistorySize caps the history list of every kind. Non-positive sizes
// are ignored.
func WithHistorySize(size int64) Option {
	return func(c *config) {
		if size > 0 {
			c.historySize = size
		}
	}
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and fails when it does not
// answer a PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{historySize: defaultHistorySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	return &client{
		conn:        conn,
		historySize: cfg.historySize,
	}, nil
}
