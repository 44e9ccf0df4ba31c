package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/model"
)

// barWidth is the number of cells a 100% bar occupies.
const barWidth = 40

var (
	cFours = color.New(color.FgGreen, color.Bold)
	cSixes = color.RGB(249, 115, 22).Add(color.Bold)
	cTitle = color.New(color.FgCyan, color.Bold)
	cMuted = color.New(color.Faint)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintOutcomeChart draws the next-ball outcome distribution after a
// boundary of runsBatter in year as a horizontal bar chart. Labels without
// data are shown as 0%.
func PrintOutcomeChart(w io.Writer, rows []model.OutcomeRow, year, runsBatter int) {
	cTitle.Fprintf(w, "\nNext Ball Outcome after a %d in %d\n\n", runsBatter, year)
	pct := aggregator.Lookup(rows, year, runsBatter)
	for _, o := range model.OutcomeOrder {
		fmt.Fprintf(w, "  %-5s │ %-*s %5.1f%%\n", o, barWidth, bar(pct[o]), pct[o])
	}
	fmt.Fprintln(w)
}

// PrintCompareChart draws the distributions of two years side by side with
// the change in percentage points.
func PrintCompareChart(w io.Writer, rows []model.OutcomeRow, year1, year2, runsBatter int) {
	cTitle.Fprintf(w, "\nNext Ball Outcome after a %d: %d vs %d\n\n", runsBatter, year1, year2)
	p1 := aggregator.Lookup(rows, year1, runsBatter)
	p2 := aggregator.Lookup(rows, year2, runsBatter)

	half := barWidth / 2
	table := newTable(w)
	table.Header("OUTCOME", strconv.Itoa(year1), "%", strconv.Itoa(year2), "%", "Δ PTS")
	for _, o := range model.OutcomeOrder {
		table.Append(
			o.String(),
			scaledBar(p1[o], half),
			fmt.Sprintf("%.1f%%", p1[o]),
			scaledBar(p2[o], half),
			fmt.Sprintf("%.1f%%", p2[o]),
			fmt.Sprintf("%+.1f", p2[o]-p1[o]),
		)
	}
	table.Render()
}

// PrintMetricCards prints the "Total 4s / Total 6s" cards for each year.
func PrintMetricCards(w io.Writer, trend []model.TrendRow, years ...int) {
	for _, y := range years {
		fours, sixes := aggregator.YearTotals(trend, y)
		fmt.Fprintf(w, "  ┌──────────────────┐ ┌──────────────────┐\n")
		fmt.Fprintf(w, "  │ %-16s │ │ %-16s │\n", fmt.Sprintf("4s in %d", y), fmt.Sprintf("6s in %d", y))
		fmt.Fprint(w, "  │ ")
		cFours.Fprintf(w, "%16d", fours)
		fmt.Fprint(w, " │ │ ")
		cSixes.Fprintf(w, "%16d", sixes)
		fmt.Fprintln(w, " │")
		fmt.Fprintf(w, "  └──────────────────┘ └──────────────────┘\n")
	}
}

// PrintOutcomeTable prints every row of the outcome distribution.
func PrintOutcomeTable(w io.Writer, rows []model.OutcomeRow) {
	table := newTable(w)
	table.Header("YEAR", "BOUNDARY", "NEXT BALL", "COUNT", "PCT")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Year),
			strconv.Itoa(r.RunsBatter),
			r.Outcome.String(),
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.1f%%", r.Percentage),
		)
	}
	table.Render()
}

// PrintTrendTable prints boundary counts per year with a sparkline-style bar
// of the combined total.
func PrintTrendTable(w io.Writer, trend []model.TrendRow) {
	type yearTotals struct{ fours, sixes int }
	var years []int
	byYear := make(map[int]*yearTotals)
	maxTotal := 0
	for _, r := range trend {
		t, ok := byYear[r.Year]
		if !ok {
			t = &yearTotals{}
			byYear[r.Year] = t
			years = append(years, r.Year)
		}
		switch r.RunsBatter {
		case 4:
			t.fours = r.Count
		case 6:
			t.sixes = r.Count
		}
	}
	for _, t := range byYear {
		if n := t.fours + t.sixes; n > maxTotal {
			maxTotal = n
		}
	}

	table := newTable(w)
	table.Header("YEAR", "4s", "6s", "TOTAL", "6s SHARE", "")
	for _, y := range years {
		t := byYear[y]
		total := t.fours + t.sixes
		share := "—"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(t.sixes)/float64(total))
		}
		rel := 0.0
		if maxTotal > 0 {
			rel = 100 * float64(total) / float64(maxTotal)
		}
		table.Append(
			strconv.Itoa(y),
			strconv.Itoa(t.fours),
			strconv.Itoa(t.sixes),
			strconv.Itoa(total),
			share,
			scaledBar(rel, barWidth/2),
		)
	}
	table.Render()
}

// PrintDotBallTable prints the dot-ball-after-boundary share per year.
func PrintDotBallTable(w io.Writer, rows []model.DotBallRow) {
	table := newTable(w)
	table.Header("YEAR", "BOUNDARY", "BOUNDARIES", "DOT NEXT%")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Year),
			strconv.Itoa(r.RunsBatter),
			strconv.Itoa(r.Boundaries),
			fmt.Sprintf("%.1f%%", r.DotBallPct),
		)
	}
	table.Render()
}

// PrintNext3Table prints the average runs scored in the 3 balls after a boundary.
func PrintNext3Table(w io.Writer, rows []model.Next3AvgRow) {
	table := newTable(w)
	table.Header("YEAR", "BOUNDARY", "SAMPLES", "AVG NEXT 3")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Year),
			strconv.Itoa(r.RunsBatter),
			strconv.Itoa(r.Samples),
			fmt.Sprintf("%.2f", r.AvgNext3),
		)
	}
	table.Render()
}

// PrintDeliveryTable prints sequenced deliveries with their derived columns,
// one row per ball. Boundaries are marked in the 4/6 column.
func PrintDeliveryTable(w io.Writer, deliveries []model.Delivery) {
	table := newTable(w)
	table.Header("MATCH", "INN", "OVER", "BALL", "BAT", "TOTAL", "EXTRA", "LAST", "4/6", "NEXT", "NEXT EXTRA", "OUTCOME", "NEXT 3")
	for _, d := range deliveries {
		boundary := ""
		if d.IsBoundary {
			boundary = strconv.Itoa(d.RunsBatter)
			if d.IsTerminal() {
				boundary += "*"
			}
		}
		next, nextExtra := "—", "—"
		if d.Next != nil {
			next = strconv.Itoa(d.Next.RunsTotal)
			nextExtra = d.Next.ExtraType
		}
		next3 := "—"
		if d.Next3Sum != nil {
			next3 = strconv.Itoa(*d.Next3Sum)
		}
		table.Append(
			strconv.Itoa(d.MatchID),
			strconv.Itoa(d.Innings),
			strconv.Itoa(d.Over),
			strconv.Itoa(d.BallNo),
			strconv.Itoa(d.RunsBatter),
			strconv.Itoa(d.RunsTotal),
			d.ExtraType,
			strconv.Itoa(d.LastBallNo),
			boundary,
			next,
			nextExtra,
			d.Outcome.String(),
			next3,
		)
	}
	table.Render()
	cMuted.Fprintln(w, "* boundary on the innings' last ball, excluded from next-ball tables")
}

// PrintQueryResult prints the rows of an ad-hoc query under its column names.
func PrintQueryResult(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		cMuted.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}

// PrintYears lists the years with outcome data on one line.
func PrintYears(w io.Writer, years []int) {
	if len(years) == 0 {
		cMuted.Fprintln(w, "no years with boundary data")
		return
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, " "))
}

// PrintDatasets lists imported ball logs.
func PrintDatasets(w io.Writer, sets []model.Dataset) {
	table := newTable(w)
	table.Header("HASH", "SOURCE", "ROWS", "IMPORTED")
	for _, d := range sets {
		table.Append(shortHash(d.Hash), d.Source, strconv.Itoa(d.Rows), d.ImportedAt)
	}
	table.Render()
}

func bar(pct float64) string {
	return scaledBar(pct, barWidth)
}

// scaledBar renders pct (0–100) as a bar of at most width cells, using
// eighth blocks for the fractional cell.
func scaledBar(pct float64, width int) string {
	if pct <= 0 || math.IsNaN(pct) {
		return ""
	}
	if pct > 100 {
		pct = 100
	}
	eighths := int(math.Round(pct / 100 * float64(width) * 8))
	full, rem := eighths/8, eighths%8
	partial := []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}
	return strings.Repeat("█", full) + partial[rem]
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
