package aggregator

import (
	"sort"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/sequence"
)

// WindowSize is the number of following deliveries summed by RollingNext3.
const WindowSize = 3

// OutcomeDistribution counts boundary-set rows per (year, boundary type,
// outcome) and expresses each count as a percentage of its (year, boundary
// type) group. Groups without boundaries produce no rows; rows without a year
// or outcome are skipped.
func OutcomeDistribution(boundaries []model.Delivery) []model.OutcomeRow {
	type cellKey struct {
		group   model.GroupKey
		outcome model.Outcome
	}
	cells := make(map[cellKey]int)
	totals := make(map[model.GroupKey]int)

	for _, d := range boundaries {
		if !d.HasYear() || d.Outcome == model.OutcomeNone {
			continue
		}
		g := model.GroupKey{Year: d.Year, RunsBatter: d.RunsBatter}
		cells[cellKey{g, d.Outcome}]++
		totals[g]++
	}

	out := make([]model.OutcomeRow, 0, len(cells))
	for k, n := range cells {
		out = append(out, model.OutcomeRow{
			Year:       k.group.Year,
			RunsBatter: k.group.RunsBatter,
			Outcome:    k.outcome,
			Count:      n,
			Percentage: float64(n) / float64(totals[k.group]) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.RunsBatter != b.RunsBatter {
			return a.RunsBatter < b.RunsBatter
		}
		return a.Outcome.Rank() < b.Outcome.Rank()
	})
	return out
}

// DotBallPercentages returns, per (year, boundary type), the share of
// boundaries followed by a dot ball.
func DotBallPercentages(boundaries []model.Delivery) []model.DotBallRow {
	dots := make(map[model.GroupKey]int)
	totals := make(map[model.GroupKey]int)
	for _, d := range boundaries {
		if !d.HasYear() || d.Outcome == model.OutcomeNone {
			continue
		}
		g := model.GroupKey{Year: d.Year, RunsBatter: d.RunsBatter}
		totals[g]++
		if d.Outcome == model.OutcomeDot {
			dots[g]++
		}
	}

	out := make([]model.DotBallRow, 0, len(totals))
	for _, g := range sortedGroups(totals) {
		out = append(out, model.DotBallRow{
			Year:       g.Year,
			RunsBatter: g.RunsBatter,
			DotBallPct: float64(dots[g]) / float64(totals[g]) * 100,
			Boundaries: totals[g],
		})
	}
	return out
}

// TrendCounts counts every valid 4 and 6 per year over the full ball log,
// regardless of what came next.
func TrendCounts(deliveries []model.Delivery) []model.TrendRow {
	counts := make(map[model.GroupKey]int)
	for _, d := range deliveries {
		if !d.HasYear() || d.ValidBall != 1 || !model.IsBoundaryRuns(d.RunsBatter) {
			continue
		}
		counts[model.GroupKey{Year: d.Year, RunsBatter: d.RunsBatter}]++
	}

	out := make([]model.TrendRow, 0, len(counts))
	for _, g := range sortedGroups(counts) {
		out = append(out, model.TrendRow{Year: g.Year, RunsBatter: g.RunsBatter, Count: counts[g]})
	}
	return out
}

// RollingNext3 returns, for every sequenced delivery in order, the total runs
// of the WindowSize deliveries that follow it in the same innings. Positions
// with fewer than WindowSize deliveries left get a nil sum.
func RollingNext3(sequenced []model.Delivery) []model.RollingRow {
	out := make([]model.RollingRow, len(sequenced))
	for _, p := range sequence.Partitions(sequenced) {
		start, end := p[0], p[1]
		w := newWindow(WindowSize)
		// Walk backwards so the window always holds the deliveries after i.
		for i := end - 1; i >= start; i-- {
			d := sequenced[i]
			out[i] = model.RollingRow{MatchID: d.MatchID, Innings: d.Innings}
			if w.Full() {
				sum := w.Sum()
				out[i].Next3Sum = &sum
			}
			w.Push(d.RunsTotal)
		}
	}
	return out
}

// Next3Averages returns the mean forward 3-ball sum over boundary-set rows
// per (year, boundary type). Rows without a full window are not counted.
func Next3Averages(boundaries []model.Delivery) []model.Next3AvgRow {
	sums := make(map[model.GroupKey]int)
	counts := make(map[model.GroupKey]int)
	for _, d := range boundaries {
		if !d.HasYear() || d.Next3Sum == nil {
			continue
		}
		g := model.GroupKey{Year: d.Year, RunsBatter: d.RunsBatter}
		sums[g] += *d.Next3Sum
		counts[g]++
	}

	out := make([]model.Next3AvgRow, 0, len(counts))
	for _, g := range sortedGroups(counts) {
		out = append(out, model.Next3AvgRow{
			Year:       g.Year,
			RunsBatter: g.RunsBatter,
			AvgNext3:   float64(sums[g]) / float64(counts[g]),
			Samples:    counts[g],
		})
	}
	return out
}

// Lookup returns the percentage for every label in model.OutcomeOrder for
// one year and boundary type. Labels absent from rows are 0.
func Lookup(rows []model.OutcomeRow, year, runsBatter int) map[model.Outcome]float64 {
	out := make(map[model.Outcome]float64, len(model.OutcomeOrder))
	for _, o := range model.OutcomeOrder {
		out[o] = 0
	}
	for _, r := range rows {
		if r.Year == year && r.RunsBatter == runsBatter {
			out[r.Outcome] = r.Percentage
		}
	}
	return out
}

// YearTotals returns the number of 4s and 6s hit in year.
func YearTotals(trend []model.TrendRow, year int) (fours, sixes int) {
	for _, r := range trend {
		if r.Year != year {
			continue
		}
		switch r.RunsBatter {
		case 4:
			fours = r.Count
		case 6:
			sixes = r.Count
		}
	}
	return
}

// Years returns the distinct years present in rows, ascending.
func Years(rows []model.OutcomeRow) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, r := range rows {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		out = append(out, r.Year)
	}
	sort.Ints(out)
	return out
}

func sortedGroups(m map[model.GroupKey]int) []model.GroupKey {
	keys := make([]model.GroupKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].RunsBatter < keys[j].RunsBatter
	})
	return keys
}
