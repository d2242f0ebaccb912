package watch

import (
	"context"

	"github.com/gabapcia/chaindiff/internal/inspect"
)

// Transition describes how the convergence of a kind changed between two
// consecutive reports.
type Transition string

const (
	TransitionNone      Transition = ""
	TransitionDiverged  Transition = "diverged"
	TransitionConverged Transition = "converged"
)

// transitionBetween compares the latest saved report with the current one.
// A missing previous report counts as converged.
func transitionBetween(previous *inspect.Report, current inspect.Report) Transition {
	wasConverged := previous == nil || previous.Converged()
	isConverged := current.Converged()

	switch {
	case wasConverged && !isConverged:
		return TransitionDiverged
	case !wasConverged && isConverged:
		return TransitionConverged
	default:
		return TransitionNone
	}
}

// Event is published for every divergent report and for every transition.
type Event struct {
	Report     inspect.Report `json:"report"`
	Converged  bool           `json:"converged"`
	Transition Transition     `json:"transition,omitempty"`
}

// ReportNotifier publishes watch events to external consumers.
type ReportNotifier interface {
	NotifyReport(ctx context.Context, event Event) error
}

type nopReportNotifier struct{}

var _ ReportNotifier = nopReportNotifier{}

func (nopReportNotifier) NotifyReport(context.Context, Event) error {
	return nil
}
