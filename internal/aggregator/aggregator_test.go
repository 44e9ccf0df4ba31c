package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/sequence"
)

// innings builds one innings of clean, valid deliveries with the given
// runs off the bat.
func innings(match, inn, year int, runs ...int) []model.Delivery {
	out := make([]model.Delivery, 0, len(runs))
	for i, r := range runs {
		out = append(out, model.Delivery{
			MatchID: match, Innings: inn, Over: i / 6, BallNo: i + 1,
			Year: year, ValidBall: 1, RunsBatter: r, RunsTotal: r,
		})
	}
	return out
}

func derive(deliveries []model.Delivery) []model.Delivery {
	return sequence.Extract(sequence.Sequence(deliveries))
}

func TestOutcomeDistribution_SixBallInnings(t *testing.T) {
	set := sequence.BoundarySet(derive(innings(1, 1, 2023, 0, 4, 1, 6, 0, 2)))

	rows := OutcomeDistribution(set)
	require.Len(t, rows, 2)
	assert.Equal(t, model.OutcomeRow{Year: 2023, RunsBatter: 4, Outcome: model.OutcomeOne, Count: 1, Percentage: 100}, rows[0])
	assert.Equal(t, model.OutcomeRow{Year: 2023, RunsBatter: 6, Outcome: model.OutcomeDot, Count: 1, Percentage: 100}, rows[1])
}

func TestOutcomeDistribution_PercentagesSumTo100(t *testing.T) {
	var all []model.Delivery
	all = append(all, innings(1, 1, 2019, 4, 0, 4, 1, 4, 2, 6, 6, 4, 3, 6, 0, 1)...)
	all = append(all, innings(1, 2, 2019, 6, 4, 4, 4, 0, 6, 1)...)
	all = append(all, innings(2, 1, 2020, 4, 4, 6, 2, 6, 0)...)
	wide := model.Delivery{MatchID: 2, Innings: 1, Over: 0, BallNo: 7, Year: 2020, RunsTotal: 1, ExtraType: "wides"}
	all = append(all, wide, model.Delivery{MatchID: 2, Innings: 1, Over: 1, BallNo: 8, Year: 2020, ValidBall: 1})

	rows := OutcomeDistribution(sequence.BoundarySet(derive(all)))
	require.NotEmpty(t, rows)

	sums := make(map[model.GroupKey]float64)
	for _, r := range rows {
		sums[model.GroupKey{Year: r.Year, RunsBatter: r.RunsBatter}] += r.Percentage
	}
	for g, s := range sums {
		assert.InDelta(t, 100.0, s, 1e-9, "group %+v", g)
	}
}

func TestOutcomeDistribution_SortedByLabelOrder(t *testing.T) {
	// 4 followed by: 6, 0, 4(other via 5), 1.
	all := innings(1, 1, 2021, 4, 6, 0, 4, 5, 4, 1, 4, 0)
	rows := OutcomeDistribution(sequence.BoundarySet(derive(all)))

	var labels []model.Outcome
	for _, r := range rows {
		if r.RunsBatter == 4 {
			labels = append(labels, r.Outcome)
		}
	}
	assert.Equal(t, []model.Outcome{model.OutcomeDot, model.OutcomeOne, model.OutcomeSix, model.OutcomeOther}, labels)
}

func TestOutcomeDistribution_NullYearExcluded(t *testing.T) {
	all := innings(1, 1, 0, 4, 1, 6, 0)
	rows := OutcomeDistribution(sequence.BoundarySet(derive(all)))
	assert.Empty(t, rows)
}

func TestOutcomeDistribution_Empty(t *testing.T) {
	assert.Empty(t, OutcomeDistribution(nil))
	assert.Empty(t, DotBallPercentages(nil))
	assert.Empty(t, Next3Averages(nil))
	assert.Empty(t, TrendCounts(nil))
}

func TestDotBallPercentages(t *testing.T) {
	// Fours followed by 0, 0, 1, 2 → 50% dots. Sixes followed by 0 → 100%.
	all := innings(1, 1, 2018, 4, 0, 4, 0, 4, 1, 4, 2, 6, 0, 1)
	rows := DotBallPercentages(sequence.BoundarySet(derive(all)))
	require.Len(t, rows, 2)

	assert.Equal(t, 4, rows[0].RunsBatter)
	assert.InDelta(t, 50.0, rows[0].DotBallPct, 1e-9)
	assert.Equal(t, 4, rows[0].Boundaries)
	assert.Equal(t, 6, rows[1].RunsBatter)
	assert.InDelta(t, 100.0, rows[1].DotBallPct, 1e-9)
}

func TestTrendCounts_FullLog(t *testing.T) {
	all := innings(1, 1, 2017, 4, 6, 4) // last 4 is terminal but still counted
	all = append(all, innings(2, 1, 2018, 6, 1)...)
	noBall := model.Delivery{MatchID: 2, Innings: 1, Over: 1, BallNo: 9, Year: 2018, ValidBall: 0, RunsBatter: 4, RunsTotal: 5, ExtraType: "noballs"}
	undated := model.Delivery{MatchID: 3, Innings: 1, BallNo: 1, ValidBall: 1, RunsBatter: 6, RunsTotal: 6}
	all = append(all, noBall, undated)

	rows := TrendCounts(all)
	assert.Equal(t, []model.TrendRow{
		{Year: 2017, RunsBatter: 4, Count: 2},
		{Year: 2017, RunsBatter: 6, Count: 1},
		{Year: 2018, RunsBatter: 6, Count: 1},
	}, rows)

	fours, sixes := YearTotals(rows, 2017)
	assert.Equal(t, 2, fours)
	assert.Equal(t, 1, sixes)
	fours, sixes = YearTotals(rows, 1999)
	assert.Zero(t, fours)
	assert.Zero(t, sixes)
}

func TestRollingNext3(t *testing.T) {
	var all []model.Delivery
	all = append(all, innings(1, 1, 2020, 1, 2, 3, 4, 6)...)
	all = append(all, innings(1, 2, 2020, 1, 1)...)
	seq := sequence.Sequence(all)

	rows := RollingNext3(seq)
	require.Len(t, rows, len(seq))

	want := []*int{intp(9), intp(13), nil, nil, nil, nil, nil}
	for i, r := range rows {
		assert.Equal(t, seq[i].MatchID, r.MatchID)
		assert.Equal(t, seq[i].Innings, r.Innings)
		if want[i] == nil {
			assert.Nil(t, r.Next3Sum, "row %d", i)
			continue
		}
		require.NotNil(t, r.Next3Sum, "row %d", i)
		assert.Equal(t, *want[i], *r.Next3Sum, "row %d", i)
	}
}

func TestNext3Averages(t *testing.T) {
	seq := sequence.Sequence(innings(1, 1, 2022, 4, 1, 1, 1, 4, 2, 2, 2, 4))
	derived := sequence.Extract(seq)
	for i, r := range RollingNext3(seq) {
		derived[i].Next3Sum = r.Next3Sum
	}

	rows := Next3Averages(sequence.BoundarySet(derived))
	require.Len(t, rows, 1)
	// Two fours with full windows: 1+1+1 and 2+2+2.
	assert.Equal(t, 2, rows[0].Samples)
	assert.InDelta(t, 4.5, rows[0].AvgNext3, 1e-9)
}

func TestLookup_AbsentIsZero(t *testing.T) {
	rows := []model.OutcomeRow{
		{Year: 2020, RunsBatter: 4, Outcome: model.OutcomeOne, Count: 3, Percentage: 75},
		{Year: 2020, RunsBatter: 4, Outcome: model.OutcomeOther, Count: 1, Percentage: 25},
		{Year: 2021, RunsBatter: 4, Outcome: model.OutcomeDot, Count: 1, Percentage: 100},
	}
	got := Lookup(rows, 2020, 4)
	assert.Len(t, got, len(model.OutcomeOrder))
	assert.Equal(t, 75.0, got[model.OutcomeOne])
	assert.Equal(t, 25.0, got[model.OutcomeOther])
	assert.Equal(t, 0.0, got[model.OutcomeDot])

	assert.Equal(t, []int{2020, 2021}, Years(rows))
}

func TestWindow(t *testing.T) {
	w := newWindow(3)
	w.Push(1)
	w.Push(2)
	assert.False(t, w.Full())
	w.Push(3)
	assert.True(t, w.Full())
	assert.Equal(t, 6, w.Sum())
	w.Push(10)
	assert.Equal(t, 15, w.Sum())
}

func intp(v int) *int { return &v }
