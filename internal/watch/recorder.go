package watch

import (
	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
)

// Recorder tracks the outcome of every round, typically as metrics.
type Recorder interface {
	RecordReport(report inspect.Report)
	RecordFailure(kind snapshot.Kind)
}

type nopRecorder struct{}

var _ Recorder = nopRecorder{}

func (nopRecorder) RecordReport(inspect.Report) {}

func (nopRecorder) RecordFailure(snapshot.Kind) {}
