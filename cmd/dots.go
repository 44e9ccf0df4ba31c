package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var dotsCmd = &cobra.Command{
	Use:   "dots",
	Short: "Share of boundaries followed by a dot ball, per year",
	Args:  cobra.NoArgs,
	RunE:  runDots,
}

func runDots(cmd *cobra.Command, args []string) error {
	res, err := loadResult()
	if err != nil {
		return err
	}
	if len(res.DotBalls) == 0 {
		fmt.Println("no boundaries with a following delivery")
		return nil
	}
	report.PrintDotBallTable(os.Stdout, res.DotBalls)
	return nil
}
