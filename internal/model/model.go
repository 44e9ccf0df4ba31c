package model

import "time"

// ---- Raw rows emitted by the loader ----

// Delivery is one ball bowled. Fields above the derived block come straight
// from the ball log and are never modified after loading.
type Delivery struct {
	MatchID    int
	Innings    int
	Over       int
	BallNo     int
	Date       time.Time // zero if the date column did not parse
	Year       int       // 0 if the date column did not parse
	ValidBall  int       // 1 = counts toward the over
	RunsBatter int
	RunsTotal  int
	ExtraType  string // "" for a clean delivery

	// Derived by the sequence package.
	LastBallNo int       // max BallNo within the delivery's partition
	IsBoundary bool      // valid ball with 4 or 6 off the bat
	Next       *NextBall // successor within the partition, nil if none
	Outcome    Outcome   // classification of Next
	Next3Sum   *int      // runs_total over the next 3 deliveries, nil if fewer remain
}

// NextBall carries the fields of the following delivery that outcome
// classification looks at.
type NextBall struct {
	RunsTotal int
	ExtraType string
}

// PartitionKey identifies one innings of one match.
type PartitionKey struct {
	MatchID int
	Innings int
}

// Key returns the delivery's partition key.
func (d Delivery) Key() PartitionKey {
	return PartitionKey{MatchID: d.MatchID, Innings: d.Innings}
}

// HasYear reports whether the delivery's date parsed.
func (d Delivery) HasYear() bool { return d.Year != 0 }

// IsTerminal reports whether the delivery is the last of its innings: there is
// no successor, or it carries the innings' highest ball number.
//
// The ball-number test reproduces the historical figures. In logs whose
// ball_no restarts every over it also drops mid-innings boundaries that share
// the highest ball number (a 6 off ball 6 of over 0, say) even though a next
// ball exists. Removing it shifts every published percentage.
func (d Delivery) IsTerminal() bool {
	return d.Next == nil || d.BallNo == d.LastBallNo
}

// Row flattens the delivery into its exported form. Fields without a value
// (no date, no successor, no full 3-ball window) are nil.
func (d Delivery) Row() DeliveryRow {
	r := DeliveryRow{
		MatchID:    d.MatchID,
		Innings:    d.Innings,
		Over:       d.Over,
		BallNo:     d.BallNo,
		ValidBall:  d.ValidBall,
		RunsBatter: d.RunsBatter,
		RunsTotal:  d.RunsTotal,
		ExtraType:  d.ExtraType,
		LastBallNo: d.LastBallNo,
		IsBoundary: d.IsBoundary,
		Next3Sum:   d.Next3Sum,
	}
	if !d.Date.IsZero() {
		date := d.Date.Format("02/01/2006")
		r.Date = &date
	}
	if d.HasYear() {
		year := d.Year
		r.Year = &year
	}
	if d.Next != nil {
		runs, extra, outcome := d.Next.RunsTotal, d.Next.ExtraType, d.Outcome
		r.NextRunsTotal, r.NextExtraType, r.NextBallOutcome = &runs, &extra, &outcome
	}
	return r
}

// ---- Outcome labels ----

// Outcome is the label given to the ball after a boundary.
type Outcome string

const (
	OutcomeNone  Outcome = "" // no successor
	OutcomeDot   Outcome = "0"
	OutcomeOne   Outcome = "1"
	OutcomeTwo   Outcome = "2"
	OutcomeThree Outcome = "3"
	OutcomeFour  Outcome = "4"
	OutcomeSix   Outcome = "6"
	OutcomeOther Outcome = "Other"
)

// OutcomeOrder is the display order of the non-null labels.
var OutcomeOrder = []Outcome{
	OutcomeDot, OutcomeOne, OutcomeTwo, OutcomeThree, OutcomeFour, OutcomeSix, OutcomeOther,
}

// Rank returns the position of o in OutcomeOrder, or len(OutcomeOrder) for
// the null label.
func (o Outcome) Rank() int {
	for i, v := range OutcomeOrder {
		if v == o {
			return i
		}
	}
	return len(OutcomeOrder)
}

func (o Outcome) String() string {
	if o == OutcomeNone {
		return "—"
	}
	return string(o)
}

// BoundaryTypes are the runs_batter values that make a boundary.
var BoundaryTypes = []int{4, 6}

// IsBoundaryRuns reports whether runs off the bat count as a boundary.
func IsBoundaryRuns(runs int) bool {
	return runs == 4 || runs == 6
}

// ---- Aggregated tables ----

// GroupKey is a (year, boundary type) pair.
type GroupKey struct {
	Year       int
	RunsBatter int
}

// OutcomeRow is one cell of the next-ball outcome distribution.
type OutcomeRow struct {
	Year       int     `json:"year" yaml:"year"`
	RunsBatter int     `json:"runs_batter" yaml:"runs_batter"`
	Outcome    Outcome `json:"next_ball_outcome" yaml:"next_ball_outcome"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// DotBallRow is the share of boundaries followed by a dot ball.
type DotBallRow struct {
	Year       int     `json:"year" yaml:"year"`
	RunsBatter int     `json:"runs_batter" yaml:"runs_batter"`
	DotBallPct float64 `json:"dot_ball_pct" yaml:"dot_ball_pct"`
	Boundaries int     `json:"boundaries" yaml:"boundaries"`
}

// TrendRow counts boundaries hit in a year.
type TrendRow struct {
	Year       int `json:"year" yaml:"year"`
	RunsBatter int `json:"runs_batter" yaml:"runs_batter"`
	Count      int `json:"count" yaml:"count"`
}

// DeliveryRow is one row of the sequenced and derived delivery table.
type DeliveryRow struct {
	MatchID         int      `json:"match_id" yaml:"match_id"`
	Innings         int      `json:"innings" yaml:"innings"`
	Over            int      `json:"over" yaml:"over"`
	BallNo          int      `json:"ball_no" yaml:"ball_no"`
	Date            *string  `json:"date" yaml:"date"`
	Year            *int     `json:"year" yaml:"year"`
	ValidBall       int      `json:"valid_ball" yaml:"valid_ball"`
	RunsBatter      int      `json:"runs_batter" yaml:"runs_batter"`
	RunsTotal       int      `json:"runs_total" yaml:"runs_total"`
	ExtraType       string   `json:"extra_type" yaml:"extra_type"`
	LastBallNo      int      `json:"last_ball_no" yaml:"last_ball_no"`
	IsBoundary      bool     `json:"is_boundary" yaml:"is_boundary"`
	NextRunsTotal   *int     `json:"next_runs_total" yaml:"next_runs_total"`
	NextExtraType   *string  `json:"next_extra_type" yaml:"next_extra_type"`
	NextBallOutcome *Outcome `json:"next_ball_outcome" yaml:"next_ball_outcome"`
	Next3Sum        *int     `json:"next3_sum" yaml:"next3_sum"`
}

// RollingRow is the forward 3-ball run sum at one delivery.
type RollingRow struct {
	MatchID  int  `json:"match_id" yaml:"match_id"`
	Innings  int  `json:"innings" yaml:"innings"`
	Next3Sum *int `json:"next3_sum" yaml:"next3_sum"`
}

// Next3AvgRow is the mean runs scored in the 3 balls after a boundary.
type Next3AvgRow struct {
	Year       int     `json:"year" yaml:"year"`
	RunsBatter int     `json:"runs_batter" yaml:"runs_batter"`
	AvgNext3   float64 `json:"avg_next3" yaml:"avg_next3"`
	Samples    int     `json:"samples" yaml:"samples"`
}

// Dataset describes an imported ball log.
type Dataset struct {
	Hash       string
	Source     string
	Rows       int
	ImportedAt string
}

// Overview is a high-level description of one ball log.
type Overview struct {
	Deliveries   int
	Matches      int
	Innings      int
	Undated      int
	FirstDate    time.Time
	LastDate     time.Time
	Fours        int
	Sixes        int
	BoundarySet  int
	TerminalHits int // boundaries on the last ball of an innings
}
