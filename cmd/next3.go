package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var next3Cmd = &cobra.Command{
	Use:   "next3",
	Short: "Average runs in the 3 balls after a boundary, per year",
	Long: `For each boundary with at least three more deliveries left in the innings,
sum the total runs of those three deliveries and average per season.`,
	Args: cobra.NoArgs,
	RunE: runNext3,
}

func runNext3(cmd *cobra.Command, args []string) error {
	res, err := loadResult()
	if err != nil {
		return err
	}
	if len(res.Next3) == 0 {
		fmt.Println("no boundaries with three following deliveries")
		return nil
	}
	report.PrintNext3Table(os.Stdout, res.Next3)
	return nil
}
