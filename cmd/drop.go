package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropForce   bool
	dropDataset string
)

// dropCmd deletes the database file or a single imported dataset.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the local database or one imported dataset",
	Long:  "Permanently delete the SQLite database, or with --dataset only the ball log whose hash starts with the given prefix. Re-import your CSV files afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().StringVar(&dropDataset, "dataset", "", "only delete the dataset with this hash prefix")
}

func runDrop(cmd *cobra.Command, args []string) error {
	target := cfg.Store.Path
	if dropDataset != "" {
		target = fmt.Sprintf("dataset %s in %s", dropDataset, cfg.Store.Path)
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", target)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	if dropDataset != "" {
		return dropOneDataset(dropDataset)
	}

	if err := os.Remove(cfg.Store.Path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", cfg.Store.Path)
	return nil
}

func dropOneDataset(prefix string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ds, err := db.GetDatasetByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("find dataset: %w", err)
	}
	if ds == nil {
		fmt.Fprintf(os.Stderr, "No dataset found with hash prefix %q\n", prefix)
		return nil
	}
	if _, err := db.DeleteDataset(ds.Hash); err != nil {
		return fmt.Errorf("delete dataset: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted dataset %s (%d rows)\n", shortID(ds.Hash), ds.Rows)
	return nil
}
