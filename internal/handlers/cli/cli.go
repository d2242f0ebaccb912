package cli

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/urfave/cli/v3"
)

// ErrDivergence is returned by the one-shot commands run with
// --fail-on-divergence when the nodes did not converge.
var ErrDivergence = errors.New("nodes have not converged")

const (
	outputFlag           = "output"
	strictFlag           = "strict"
	failOnDivergenceFlag = "fail-on-divergence"
)

// newApp builds the chaindiff command tree.
//
// Every command shares the --output, --strict and --fail-on-divergence flags,
// which may be given before or after the command name.
func newApp(insp inspect.Service, newWatch WatchFactory, metricsHandler http.Handler) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chaindiff",
		Description:           "Compares the chain and mempool views served by a set of blockchain nodes.",
		Usage:                 "chaindiff [command] [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outputFlag,
				Usage: "Report format: text or json",
				Value: outputText,
			},
			&cli.BoolFlag{
				Name:  strictFlag,
				Usage: "Treat nodes whose views differ in length as diverged",
			},
			&cli.BoolFlag{
				Name:  failOnDivergenceFlag,
				Usage: "Exit with an error when the nodes did not converge",
			},
		},
		Commands: []*cli.Command{
			inspectCommand("chain", "Compares the longest chain of every node.", insp, snapshot.KindLongestChain),
			inspectCommand("chain-tx", "Compares the longest chain transactions and reports the mempool lengths.", insp, snapshot.KindLongestChainTx),
			inspectCommand("mempool", "Compares the transactions waiting in the mempool of every node.", insp, snapshot.KindMempool),
			lengthsCommand(insp),
			countCommand(insp),
			stateCommand(insp),
			watchCommand(newWatch, metricsHandler),
		},
	}
}

// WatchFactory builds the watch service together with the storage and
// notifier it reports to. Only the watch command calls it, so one-shot
// commands never connect to those backends.
type WatchFactory func(ctx context.Context) (watch.Service, error)

// Run executes the chaindiff CLI with the process arguments.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - insp: The inspect service used by the one-shot commands.
//   - newWatch: Builds the watch service used by the watch command.
//   - metricsHandler: Served on --metrics-addr by the watch command. May be nil.
func Run(ctx context.Context, insp inspect.Service, newWatch WatchFactory, metricsHandler http.Handler) error {
	return newApp(insp, newWatch, metricsHandler).Run(ctx, os.Args)
}

// printerFor returns the printer selected by --output, writing to the root
// command writer.
func printerFor(c *cli.Command) (*printer, error) {
	return newPrinter(c.Root().Writer, c.String(outputFlag))
}

func checkDivergence(c *cli.Command, converged bool) error {
	if !converged && c.Bool(failOnDivergenceFlag) {
		return ErrDivergence
	}
	return nil
}
