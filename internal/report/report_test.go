package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/pable/go-cricket-metrics/internal/model"
)

func init() {
	color.NoColor = true
}

var sampleRows = []model.OutcomeRow{
	{Year: 2022, RunsBatter: 4, Outcome: model.OutcomeDot, Count: 2, Percentage: 50},
	{Year: 2022, RunsBatter: 4, Outcome: model.OutcomeOne, Count: 2, Percentage: 50},
	{Year: 2023, RunsBatter: 4, Outcome: model.OutcomeOther, Count: 1, Percentage: 100},
}

func TestPrintOutcomeChart(t *testing.T) {
	var buf bytes.Buffer
	PrintOutcomeChart(&buf, sampleRows, 2022, 4)
	out := buf.String()

	assert.Contains(t, out, "Next Ball Outcome after a 4 in 2022")
	assert.Contains(t, out, " 50.0%")
	// Absent labels render as zero rather than being dropped.
	assert.Contains(t, out, "Other")
	assert.Contains(t, out, "  0.0%")

	// Labels appear in display order.
	assert.Less(t, strings.Index(out, "  0 "), strings.Index(out, "  6 "))
	assert.Less(t, strings.Index(out, "  6 "), strings.Index(out, "Other"))
}

func TestPrintCompareChart(t *testing.T) {
	var buf bytes.Buffer
	PrintCompareChart(&buf, sampleRows, 2022, 2023, 4)
	out := buf.String()
	assert.Contains(t, out, "2022 vs 2023")
	assert.Contains(t, out, "+100.0")
	assert.Contains(t, out, "-50.0")
}

func TestPrintMetricCards(t *testing.T) {
	trend := []model.TrendRow{
		{Year: 2022, RunsBatter: 4, Count: 2017},
		{Year: 2022, RunsBatter: 6, Count: 1062},
	}
	var buf bytes.Buffer
	PrintMetricCards(&buf, trend, 2022, 2030)
	out := buf.String()
	assert.Contains(t, out, "4s in 2022")
	assert.Contains(t, out, "2017")
	assert.Contains(t, out, "1062")
	assert.Contains(t, out, "6s in 2030")
}

func TestPrintTrendTable(t *testing.T) {
	trend := []model.TrendRow{
		{Year: 2008, RunsBatter: 4, Count: 3},
		{Year: 2008, RunsBatter: 6, Count: 1},
		{Year: 2009, RunsBatter: 6, Count: 2},
	}
	var buf bytes.Buffer
	PrintTrendTable(&buf, trend)
	out := buf.String()
	assert.Contains(t, out, "2008")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "100.0%")
}

func TestPrintTablesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintOutcomeTable(&buf, nil)
	PrintDotBallTable(&buf, nil)
	PrintNext3Table(&buf, nil)
	PrintYears(&buf, nil)
	assert.Contains(t, buf.String(), "no years")
}

func TestPrintYears(t *testing.T) {
	var buf bytes.Buffer
	PrintYears(&buf, []int{2019, 2020})
	assert.Equal(t, "2019 2020\n", buf.String())
}

func TestScaledBar(t *testing.T) {
	assert.Equal(t, "", scaledBar(0, 10))
	assert.Equal(t, "", scaledBar(-5, 10))
	assert.Equal(t, 10, utf8.RuneCountInString(scaledBar(100, 10)))
	assert.Equal(t, 10, utf8.RuneCountInString(scaledBar(250, 10)))
	assert.Equal(t, "█████", scaledBar(50, 10))
	assert.Equal(t, "▌", scaledBar(5, 10))
}

func TestPrintDeliveryTable(t *testing.T) {
	next3 := 7
	rows := []model.Delivery{
		{
			MatchID: 335982, Innings: 1, Over: 0, BallNo: 1, LastBallNo: 2,
			ValidBall: 1, RunsBatter: 4, RunsTotal: 4, IsBoundary: true,
			Next: &model.NextBall{RunsTotal: 1, ExtraType: "legbyes"}, Outcome: model.OutcomeOther,
			Next3Sum: &next3,
		},
		{
			MatchID: 335982, Innings: 1, Over: 0, BallNo: 2, LastBallNo: 2,
			ValidBall: 1, RunsBatter: 6, RunsTotal: 6, IsBoundary: true,
		},
	}

	var buf bytes.Buffer
	PrintDeliveryTable(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "335982")
	assert.Contains(t, out, "legbyes")
	assert.Contains(t, out, "Other")
	// The last-ball six is flagged and has no next ball.
	assert.Contains(t, out, "6*")
	assert.Contains(t, out, "—")
}

func TestSixesCardColor(t *testing.T) {
	cSixes.EnableColor()
	t.Cleanup(cSixes.DisableColor)

	assert.Contains(t, cSixes.Sprint("12"), "38;2;249;115;22")
}

func TestPrintQueryResult(t *testing.T) {
	var buf bytes.Buffer
	PrintQueryResult(&buf, []string{"year", "next_ball_outcome"}, [][]string{{"2008", "Other"}, {"2009", "NULL"}})
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "OUTCOME")
	assert.Contains(t, out, "Other")
	assert.Contains(t, out, "(2 rows)")

	buf.Reset()
	PrintQueryResult(&buf, []string{"x"}, nil)
	assert.Contains(t, buf.String(), "(no rows)")
}
