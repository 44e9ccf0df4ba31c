package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/loader"
)

var importCmd = &cobra.Command{
	Use:   "import <deliveries.csv>",
	Short: "Import a ball-by-ball CSV into the local database",
	Long: `Decode a ball-by-ball CSV and store its rows in the SQLite database so later
runs can use --source db. Only the input rows are stored; every summary is
recomputed on demand.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Reading %s...\n", path)
	log, err := loader.LoadFile(path, loader.Options{Delimiter: cfg.Data.DelimiterRune()})
	if err != nil {
		return fmt.Errorf("load ball log: %w", err)
	}

	exists, err := db.DatasetExists(log.Hash)
	if err != nil {
		return fmt.Errorf("check dataset: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Dataset %s already stored, replacing.\n", shortID(log.Hash))
	}

	if err := db.ImportDeliveries(log); err != nil {
		return fmt.Errorf("import deliveries: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d deliveries as %s\n", len(log.Deliveries), shortID(log.Hash))
	return nil
}
