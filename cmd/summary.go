package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/pipeline"
	"github.com/pable/go-cricket-metrics/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level ball log overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the ball log",
	Long: `Display aggregate statistics about the loaded ball log:
delivery and match counts, date range, boundary totals, and how many
boundaries had a following delivery to analyse.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	res, err := loadResult()
	if err != nil {
		return err
	}
	printSummary(os.Stdout, res)
	return nil
}

func printSummary(w io.Writer, res *pipeline.Result) {
	ov := aggregator.Summarize(res.Deliveries)
	if ov.Deliveries == 0 {
		fmt.Fprintln(w, "The ball log is empty.")
		return
	}

	dateRange := "—"
	if !ov.FirstDate.IsZero() {
		dateRange = fmt.Sprintf("%s → %s", ov.FirstDate.Format("2006-01-02"), ov.LastDate.Format("2006-01-02"))
	}

	fmt.Fprintf(w, "\n=== Ball Log Summary ===\n\n")
	fmt.Fprintf(w, "  Dataset        : %s\n", shortID(res.Hash))
	fmt.Fprintf(w, "  Deliveries     : %d\n", ov.Deliveries)
	fmt.Fprintf(w, "  Matches        : %d\n", ov.Matches)
	fmt.Fprintf(w, "  Innings        : %d\n", ov.Innings)
	fmt.Fprintf(w, "  Date range     : %s\n", dateRange)
	fmt.Fprintf(w, "  Undated rows   : %d\n", ov.Undated)
	fmt.Fprintf(w, "  4s / 6s        : %d / %d\n", ov.Fours, ov.Sixes)
	fmt.Fprintf(w, "  Boundary set   : %d\n", ov.BoundarySet)
	fmt.Fprintf(w, "  Last-ball hits : %d (no next ball, excluded)\n", ov.TerminalHits)

	fmt.Fprintf(w, "\n--- Seasons ---\n\n")
	report.PrintTrendTable(w, res.Trends)
}
