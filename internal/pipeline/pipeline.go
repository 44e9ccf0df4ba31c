// Package pipeline runs the full next-ball analysis over a ball log and
// caches results per distinct input.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/sequence"
)

// Result holds every table derived from one ball log. Callers must treat it
// as read-only; a Result may be shared by the cache.
type Result struct {
	Hash       string
	Deliveries []model.Delivery // sequenced, with derived fields
	Boundaries []model.Delivery // boundary set
	Outcomes   []model.OutcomeRow
	DotBalls   []model.DotBallRow
	Trends     []model.TrendRow
	Rolling    []model.RollingRow
	Next3      []model.Next3AvgRow
	Years      []int
}

// Run sequences the deliveries, derives next-ball fields and computes every
// summary table. The input slice is not modified.
func Run(deliveries []model.Delivery) *Result {
	seq := sequence.Sequence(deliveries)
	derived := sequence.Extract(seq)

	rolling := aggregator.RollingNext3(seq)
	for i := range derived {
		derived[i].Next3Sum = rolling[i].Next3Sum
	}

	boundaries := sequence.BoundarySet(derived)
	outcomes := aggregator.OutcomeDistribution(boundaries)

	res := &Result{
		Deliveries: derived,
		Boundaries: boundaries,
		Outcomes:   outcomes,
		DotBalls:   aggregator.DotBallPercentages(boundaries),
		Trends:     aggregator.TrendCounts(derived),
		Rolling:    rolling,
		Next3:      aggregator.Next3Averages(boundaries),
		Years:      aggregator.Years(outcomes),
	}

	zap.L().Debug("pipeline complete",
		zap.Int("deliveries", len(derived)),
		zap.Int("boundaries", len(boundaries)),
		zap.Int("outcome_rows", len(outcomes)),
		zap.Ints("years", res.Years),
	)
	return res
}

// LatestYears returns up to n of the most recent years with outcome data,
// oldest first.
func (r *Result) LatestYears(n int) []int {
	if n >= len(r.Years) {
		return r.Years
	}
	return r.Years[len(r.Years)-n:]
}

// HasYear reports whether year has outcome data.
func (r *Result) HasYear(year int) bool {
	for _, y := range r.Years {
		if y == year {
			return true
		}
	}
	return false
}
