package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var inningsBoundaries bool

// inningsCmd is the ball-by-ball drill-down for one match.
var inningsCmd = &cobra.Command{
	Use:   "innings <match_id> [innings]",
	Short: "Ball-by-ball drill-down with derived next-ball columns",
	Long: `Print the sequenced deliveries of one match (or one innings of it) with the
derived columns: last ball number of the innings, boundary flag, the next
ball's runs and extra, its outcome label and the forward 3-ball sum.

Example:
  cricmetrics innings 335982 2 --boundaries`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInnings,
}

func init() {
	inningsCmd.Flags().BoolVar(&inningsBoundaries, "boundaries", false, "only show 4s and 6s")
}

// filterInnings keeps the deliveries of one match, optionally one innings
// (0 keeps all) and optionally boundaries only. Order is preserved.
func filterInnings(deliveries []model.Delivery, matchID, innings int, boundariesOnly bool) []model.Delivery {
	var out []model.Delivery
	for _, d := range deliveries {
		if d.MatchID != matchID {
			continue
		}
		if innings != 0 && d.Innings != innings {
			continue
		}
		if boundariesOnly && !d.IsBoundary {
			continue
		}
		out = append(out, d)
	}
	return out
}

// parseInningsArgs reads <match_id> [innings].
func parseInningsArgs(args []string) (matchID, innings int, err error) {
	if matchID, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid match_id %q", args[0])
	}
	if len(args) > 1 {
		if innings, err = strconv.Atoi(args[1]); err != nil || innings <= 0 {
			return 0, 0, fmt.Errorf("invalid innings %q", args[1])
		}
	}
	return matchID, innings, nil
}

func runInnings(cmd *cobra.Command, args []string) error {
	matchID, innings, err := parseInningsArgs(args)
	if err != nil {
		return err
	}
	res, err := loadResult()
	if err != nil {
		return err
	}

	rows := filterInnings(res.Deliveries, matchID, innings, inningsBoundaries)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No deliveries match the given match and innings.")
		return nil
	}
	report.PrintDeliveryTable(os.Stdout, rows)
	return nil
}
