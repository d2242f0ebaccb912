package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/redis/go-redis/v9"
)

// reportKeyPrefix is the namespace prefix for every report key.
const reportKeyPrefix = "chaindiff"

// latestReportKey returns the key holding the last report of a kind.
//
// Format: "chaindiff:report:<kind>"
func latestReportKey(kind snapshot.Kind) string {
	return fmt.Sprintf("%s:report:%s", reportKeyPrefix, kind)
}

// reportHistoryKey returns the key of the list holding the most recent
// reports of a kind, newest first.
//
// Format: "chaindiff:history:<kind>"
func reportHistoryKey(kind snapshot.Kind) string {
	return fmt.Sprintf("%s:history:%s", reportKeyPrefix, kind)
}

// SaveReport stores report as the latest one of its kind and prepends it to
// the history list, trimmed to the configured size. Both writes happen in a
// single transaction.
func (c *client) SaveReport(ctx context.Context, report inspect.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, latestReportKey(report.Kind), data, 0)
		pipe.LPush(ctx, reportHistoryKey(report.Kind), data)
		pipe.LTrim(ctx, reportHistoryKey(report.Kind), 0, c.historySize-1)
		return nil
	})
	return err
}

// LoadLatestReport returns the last report saved for kind, or
// watch.ErrNoReportFound when there is none.
func (c *client) LoadLatestReport(ctx context.Context, kind snapshot.Kind) (inspect.Report, error) {
	val, err := c.conn.Get(ctx, latestReportKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = watch.ErrNoReportFound
		}

		return inspect.Report{}, err
	}

	var report inspect.Report
	if err := json.Unmarshal(val, &report); err != nil {
		return inspect.Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

// Compile-time assertion to ensure client implements the ReportStorage interface.
var _ watch.ReportStorage = new(client)
