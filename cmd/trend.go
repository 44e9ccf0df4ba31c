package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Boundaries hit per year",
	Long:  "Count every valid 4 and 6 per season across the whole ball log.",
	Args:  cobra.NoArgs,
	RunE:  runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	res, err := loadResult()
	if err != nil {
		return err
	}
	if len(res.Trends) == 0 {
		fmt.Println("no boundaries found")
		return nil
	}
	report.PrintTrendTable(os.Stdout, res.Trends)
	return nil
}
