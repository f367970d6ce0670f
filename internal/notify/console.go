package notify

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Alias1177/Scanner/models"
)

// Console renders the ranked scan results as a table on the given writer.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(_ context.Context, results []models.ScanResult) error {
	if len(results) == 0 {
		fmt.Fprintln(c.out, "No signals this scan.")
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Ticker", "Signal", "Pattern", "Conf", "Price", "Stop", "Target")

	for i, r := range results {
		if err := table.Append(
			strconv.Itoa(i+1),
			r.Ticker,
			string(r.Signal),
			r.Pattern,
			fmt.Sprintf("%d%%", r.Confidence),
			fmt.Sprintf("%.2f", r.Price),
			fmt.Sprintf("%.2f", r.StopLoss),
			fmt.Sprintf("%.2f", r.TakeProfit),
		); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	// Reasons are too wide for the table, print the top three under it.
	top := results
	if len(top) > 3 {
		top = top[:3]
	}
	for _, r := range top {
		fmt.Fprintf(c.out, "%s: %s\n", r.Ticker, r.Reason)
	}
	return nil
}
