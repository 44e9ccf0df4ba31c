package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	compareYears []int
	compareType  int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare next-ball outcomes between two years",
	Long: `Show the next-ball outcome distributions of two seasons side by side, with
the change in percentage points and both seasons' boundary totals.

Example:
  cricmetrics compare --years 2008,2023 --type 4`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntSliceVar(&compareYears, "years", nil, "two seasons to compare (default the latest two)")
	compareCmd.Flags().IntVar(&compareType, "type", 4, "boundary type: 4 or 6")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := validBoundaryType(compareType); err != nil {
		return err
	}
	res, err := loadResult()
	if err != nil {
		return err
	}

	years := append([]int(nil), compareYears...)
	if len(years) == 0 {
		years = append(years, res.LatestYears(2)...)
	}
	if len(years) != 2 {
		return fmt.Errorf("need exactly two years to compare, got %v", years)
	}
	for i, y := range years {
		if years[i], err = resolveYear(res, y); err != nil {
			return err
		}
	}

	report.PrintCompareChart(os.Stdout, res.Outcomes, years[0], years[1], compareType)
	fmt.Fprintf(os.Stdout, "\nTotal 4s & 6s in %d vs %d\n\n", years[0], years[1])
	report.PrintMetricCards(os.Stdout, res.Trends, years[0], years[1])
	return nil
}
