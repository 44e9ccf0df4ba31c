package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List imported ball logs",
	Args:  cobra.NoArgs,
	RunE:  runDatasets,
}

func runDatasets(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	sets, err := db.ListDatasets()
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}
	if len(sets) == 0 {
		fmt.Fprintln(os.Stdout, "No datasets imported yet. Run 'cricmetrics import <file.csv>' to add one.")
		return nil
	}
	report.PrintDatasets(os.Stdout, sets)
	return nil
}
