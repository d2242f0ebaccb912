// Package leveldb archives watch reports in a local LevelDB database, for
// setups without a Redis server.
package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/syndtr/goleveldb/leveldb"
)

type store struct {
	db *leveldb.DB
}

// Compile-time assertion to ensure store implements the ReportStorage interface.
var _ watch.ReportStorage = (*store)(nil)

// Open opens, or creates, the database at path.
func Open(path string) (*store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open report archive: %w", err)
	}
	return &store{db: db}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func latestKey(kind snapshot.Kind) []byte {
	return fmt.Appendf(nil, "report/latest/%s", kind)
}

// historyKey orders the archived reports of a kind by id. Report ids are
// UUIDv7, so this is also chronological order.
func historyKey(kind snapshot.Kind, id string) []byte {
	return fmt.Appendf(nil, "report/history/%s/%s", kind, id)
}

// SaveReport archives report and marks it as the latest one of its kind.
func (s *store) SaveReport(_ context.Context, report inspect.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put(latestKey(report.Kind), data)
	batch.Put(historyKey(report.Kind, report.ID), data)
	return s.db.Write(batch, nil)
}

// LoadLatestReport returns the last report saved for kind, or
// watch.ErrNoReportFound when there is none.
func (s *store) LoadLatestReport(_ context.Context, kind snapshot.Kind) (inspect.Report, error) {
	data, err := s.db.Get(latestKey(kind), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			err = watch.ErrNoReportFound
		}
		return inspect.Report{}, err
	}

	var report inspect.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return inspect.Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}
