package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	outcomesYear  int
	outcomesType  int
	outcomesTable bool
)

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "Next-ball outcome chart for one year and boundary type",
	Long: `Show what happened on the delivery after a 4 (or 6) in a single year,
as a percentage of all such boundaries that had a following ball, plus the
year's total 4s and 6s.

Example:
  cricmetrics outcomes --year 2023 --type 6`,
	Args: cobra.NoArgs,
	RunE: runOutcomes,
}

func init() {
	outcomesCmd.Flags().IntVar(&outcomesYear, "year", 0, "season to show (default latest)")
	outcomesCmd.Flags().IntVar(&outcomesType, "type", 4, "boundary type: 4 or 6")
	outcomesCmd.Flags().BoolVar(&outcomesTable, "all", false, "print the full outcome table for every year instead")
}

func runOutcomes(cmd *cobra.Command, args []string) error {
	if err := validBoundaryType(outcomesType); err != nil {
		return err
	}
	res, err := loadResult()
	if err != nil {
		return err
	}
	if outcomesTable {
		report.PrintOutcomeTable(os.Stdout, res.Outcomes)
		return nil
	}

	year, err := resolveYear(res, outcomesYear)
	if err != nil {
		return err
	}
	report.PrintOutcomeChart(os.Stdout, res.Outcomes, year, outcomesType)
	report.PrintMetricCards(os.Stdout, res.Trends, year)
	return nil
}
