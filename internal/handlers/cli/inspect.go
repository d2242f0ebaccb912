package cli

import (
	"context"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"

	"github.com/urfave/cli/v3"
)

// inspectCommand returns a CLI command that compares one view of every node
// once and prints the report.
//
// Usage example:
//
//	chaindiff chain --output json
func inspectCommand(name, description string, insp inspect.Service, kind snapshot.Kind) *cli.Command {
	return &cli.Command{
		Name:        name,
		Description: description,
		Usage:       "Fetches the " + string(kind) + " view of every node and compares consecutive nodes.",
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := printerFor(c)
			if err != nil {
				return err
			}

			report, err := insp.Inspect(ctx, kind)
			if err != nil {
				return err
			}

			if c.Bool(strictFlag) {
				report = report.WithStrictLength()
			}

			if err := p.Report(report); err != nil {
				return err
			}

			return checkDivergence(c, report.Converged())
		},
	}
}

// lengthsCommand returns a CLI command that prints only the view length of
// every node.
//
// Usage example:
//
//	chaindiff lengths --kind txs-in-mempool
func lengthsCommand(insp inspect.Service) *cli.Command {
	return &cli.Command{
		Name:        "lengths",
		Description: "Prints the length of the view served by every node.",
		Usage:       "Fetches one view of every node and prints the lengths in node order.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "View to fetch (longest-chain, longest-chain-tx, txs-in-mempool)",
				Value: string(snapshot.KindLongestChain),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := printerFor(c)
			if err != nil {
				return err
			}

			kind, err := snapshot.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}

			report, err := insp.Inspect(ctx, kind)
			if err != nil {
				return err
			}

			return p.Lengths(report)
		},
	}
}

// countCommand returns a CLI command that compares the number of transactions
// in the longest chain of every node.
//
// Usage example:
//
//	chaindiff count
func countCommand(insp inspect.Service) *cli.Command {
	return &cli.Command{
		Name:        "count",
		Description: "Compares the number of transactions in the longest chain of every node.",
		Usage:       "Fetches the longest chain transaction count of every node.",
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := printerFor(c)
			if err != nil {
				return err
			}

			report, err := insp.TxCounts(ctx)
			if err != nil {
				return err
			}

			if err := p.Counts(report); err != nil {
				return err
			}

			return checkDivergence(c, report.Equal)
		},
	}
}

// stateCommand returns a CLI command that compares the UTXO state of every
// node at a given block height.
//
// Usage example:
//
//	chaindiff state --block 42
func stateCommand(insp inspect.Service) *cli.Command {
	return &cli.Command{
		Name:        "state",
		Description: "Compares the unspent outputs of every node at a block height.",
		Usage:       "Fetches the state of every node at --block and compares the entries regardless of order.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "block",
				Usage:    "Block height of the state",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := printerFor(c)
			if err != nil {
				return err
			}

			report, err := insp.State(ctx, c.Uint64("block"))
			if err != nil {
				return err
			}

			if err := p.Report(report); err != nil {
				return err
			}

			return checkDivergence(c, report.Converged())
		},
	}
}
