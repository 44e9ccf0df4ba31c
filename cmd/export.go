package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/export"
)

var (
	exportFormat    string
	exportOut       string
	exportRolling   bool
	exportDelivery  bool
	exportTimestamp bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the boundary tables as JSON or YAML",
	Long: `Runs the full pipeline over the configured ball log and writes every summary
table (outcome distribution, dot-ball percentages, boundary trend and next-3
averages) to a file or stdout.

The per-delivery rolling next-3 series and the full sequenced delivery table
(last ball, boundary flag, next ball fields and outcome per row) have one
entry per ball, so they are only included with --rolling and --deliveries.

Example:
  cricmetrics export --format yaml --out ipl.yaml
  cricmetrics export --source db --dataset 3fa2 --rolling > full.json
  cricmetrics export --deliveries --out derived.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportRolling, "rolling", false, "include the per-delivery rolling next-3 series")
	exportCmd.Flags().BoolVar(&exportDelivery, "deliveries", false, "include the sequenced delivery table with derived columns")
	exportCmd.Flags().BoolVar(&exportTimestamp, "timestamp", false, "stamp generated_at into the document")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	res, err := loadResult()
	if err != nil {
		return err
	}

	doc := export.Build(res, export.Options{
		IncludeRolling:    exportRolling,
		IncludeDeliveries: exportDelivery,
		Timestamp:         exportTimestamp,
	})

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, doc, format); err != nil {
		return err
	}
	if exportOut != "" {
		zap.L().Info("exported tables",
			zap.String("path", exportOut),
			zap.String("format", string(format)),
			zap.Int("outcome_rows", len(doc.Outcomes)),
		)
		fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	}
	return nil
}
