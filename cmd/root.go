package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/config"
)

var (
	cfg *config.Config
	v   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "cricmetrics",
	Short: "Cricket boundary next-ball metrics tool",
	Long: `Analyse ball-by-ball cricket logs: what happens on the delivery right after
a 4 or a 6, how that changes year to year, and how many boundaries are hit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("data", "", "path to the ball-by-ball CSV (default IPL.csv)")
	pf.String("delimiter", "", "CSV field delimiter (default ,)")
	pf.String("source", "", "read deliveries from csv or db (default csv)")
	pf.String("dataset", "", "hash prefix of an imported dataset when --source db (default latest)")
	pf.String("db", "", "path to SQLite database (default ~/.cricmetrics/deliveries.db)")
	pf.String("log-level", "", "log level: debug, info, warn, error (default info)")

	for key, flag := range map[string]string{
		"data.path":      "data",
		"data.delimiter": "delimiter",
		"data.source":    "source",
		"data.dataset":   "dataset",
		"store.path":     "db",
		"log.level":      "log-level",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(outcomesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(dotsCmd)
	rootCmd.AddCommand(next3Cmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(inningsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(shellCmd)
}
