package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List seasons with boundary data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadResult()
		if err != nil {
			return err
		}
		report.PrintYears(os.Stdout, res.Years)
		return nil
	},
}
