package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the imported ball logs",
	Long: `Run an arbitrary SQL query against the imported ball logs and print the
result as a table.

Tables:
  datasets(hash, source, row_count, imported_at)
  deliveries(dataset_hash, seq, match_id, innings, over_no, ball_no, date,
    valid_ball, runs_batter, runs_total, extra_type)

View derived_deliveries adds, per row, the columns the next-ball tables use:
  year, last_ball_no, is_boundary, next_runs_total, next_extra_type,
  next_ball_outcome

date is DD/MM/YYYY text, '' when it did not parse (year is then NULL).

Examples:
  cricmetrics sql "SELECT year, runs_batter, next_ball_outcome, COUNT(*)
    FROM derived_deliveries
    WHERE is_boundary AND ball_no <> last_ball_no AND next_runs_total IS NOT NULL
    GROUP BY 1, 2, 3"
  cricmetrics sql "SELECT extra_type, COUNT(*) FROM deliveries GROUP BY extra_type"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	zap.L().Debug("sql query", zap.String("query", query), zap.Int("rows", len(rows)))
	report.PrintQueryResult(os.Stdout, cols, rows)
	return nil
}
