package watch

import (
	"context"
	"errors"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

// ErrNoReportFound is returned by LoadLatestReport when no report has been
// saved yet for the requested kind.
var ErrNoReportFound = errors.New("no report found for kind")

// ReportStorage persists the latest report of every kind.
type ReportStorage interface {
	// SaveReport records report as the latest one of its kind, overwriting
	// the previous one.
	SaveReport(ctx context.Context, report inspect.Report) error

	// LoadLatestReport returns the last report saved for kind, or
	// ErrNoReportFound.
	LoadLatestReport(ctx context.Context, kind snapshot.Kind) (inspect.Report, error)
}

type nopReportStorage struct{}

var _ ReportStorage = nopReportStorage{}

func (nopReportStorage) SaveReport(context.Context, inspect.Report) error {
	return nil
}

func (nopReportStorage) LoadLatestReport(context.Context, snapshot.Kind) (inspect.Report, error) {
	return inspect.Report{}, ErrNoReportFound
}
