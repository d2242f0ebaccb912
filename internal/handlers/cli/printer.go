package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabapcia/chaindiff/internal/convergence"
	"github.com/gabapcia/chaindiff/internal/inspect"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var ErrUnknownOutput = errors.New("unknown output format")

// printer writes reports to the console either as tables or as indented JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case outputText, outputJSON:
		return &printer{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table(title string, header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.Render()
}

// Report prints the node lengths followed by every pair and membership
// comparison of report.
func (p *printer) Report(report inspect.Report) error {
	if p.format == outputJSON {
		return p.writeJSON(report)
	}

	title := string(report.Kind)
	if report.Block != nil {
		title = fmt.Sprintf("%s at block %d", title, *report.Block)
	}

	mempool := make(map[string]int, len(report.Mempool))
	for _, m := range report.Mempool {
		mempool[m.Node] = m.Length
	}

	header := table.Row{"node", "length"}
	if len(report.Mempool) > 0 {
		header = append(header, "mempool")
	}

	nodes := make([]table.Row, 0, len(report.Nodes))
	for _, n := range report.Nodes {
		row := table.Row{n.Node, n.Length}
		if len(report.Mempool) > 0 {
			row = append(row, mempool[n.Node])
		}
		nodes = append(nodes, row)
	}
	p.table(title, header, nodes)

	if len(report.Pairs) > 0 {
		pairs := make([]table.Row, 0, len(report.Pairs))
		for _, r := range report.Pairs {
			pairs = append(pairs, table.Row{r.Left, r.Right, r.Equal, r.CommonPrefix, mismatchLabel(r.Mismatch)})
		}
		p.table("prefix comparison", table.Row{"left", "right", "equal", "common prefix", "mismatch"}, pairs)
	}

	if len(report.Memberships) > 0 {
		memberships := make([]table.Row, 0, len(report.Memberships))
		for _, m := range report.Memberships {
			memberships = append(memberships, table.Row{m.Left, m.Right, m.Equal, m.Shared, m.OnlyLeft, m.OnlyRight})
		}
		p.table("membership comparison", table.Row{"left", "right", "equal", "shared", "only left", "only right"}, memberships)
	}

	_, err := fmt.Fprintf(p.w, "converged: %t\n", report.Converged())
	return err
}

// Lengths prints the view length of every node on a single line, in node
// order.
func (p *printer) Lengths(report inspect.Report) error {
	if p.format == outputJSON {
		return p.writeJSON(report.Nodes)
	}

	lengths := make([]string, 0, len(report.Nodes))
	for _, n := range report.Nodes {
		lengths = append(lengths, strconv.Itoa(n.Length))
	}

	_, err := fmt.Fprintln(p.w, strings.Join(lengths, " "))
	return err
}

func (p *printer) Counts(report inspect.CountReport) error {
	if p.format == outputJSON {
		return p.writeJSON(report)
	}

	rows := make([]table.Row, 0, len(report.Counts))
	for _, c := range report.Counts {
		rows = append(rows, table.Row{c.Node, c.Value})
	}
	p.table("longest-chain-tx-count", table.Row{"node", "transactions"}, rows)

	_, err := fmt.Fprintf(p.w, "converged: %t\n", report.Equal)
	return err
}

func mismatchLabel(index int) string {
	if index == convergence.NoMismatch {
		return "-"
	}
	return strconv.Itoa(index)
}
