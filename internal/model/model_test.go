package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRow(t *testing.T) {
	sum := 9
	d := Delivery{
		MatchID: 1, Innings: 2, Over: 3, BallNo: 4,
		Date: time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC), Year: 2019,
		ValidBall: 1, RunsBatter: 4, RunsTotal: 4,
		LastBallNo: 6, IsBoundary: true,
		Next:     &NextBall{RunsTotal: 1, ExtraType: "wides"},
		Outcome:  OutcomeOther,
		Next3Sum: &sum,
	}

	r := d.Row()
	require.NotNil(t, r.Year)
	assert.Equal(t, 2019, *r.Year)
	require.NotNil(t, r.Date)
	assert.Equal(t, "01/05/2019", *r.Date)
	require.NotNil(t, r.NextRunsTotal)
	assert.Equal(t, 1, *r.NextRunsTotal)
	assert.Equal(t, "wides", *r.NextExtraType)
	assert.Equal(t, OutcomeOther, *r.NextBallOutcome)
	assert.Equal(t, 9, *r.Next3Sum)
	assert.True(t, r.IsBoundary)
	assert.Equal(t, 6, r.LastBallNo)
}

func TestDeliveryRow_NullsForMissingValues(t *testing.T) {
	r := Delivery{MatchID: 1, Innings: 1, BallNo: 1, LastBallNo: 1}.Row()

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	for _, k := range []string{"date", "year", "next_runs_total", "next_extra_type", "next_ball_outcome", "next3_sum"} {
		v, ok := got[k]
		assert.True(t, ok, "column %s present", k)
		assert.Nil(t, v, "column %s null", k)
	}
	assert.Equal(t, false, got["is_boundary"])
	assert.EqualValues(t, 1, got["last_ball_no"])
}

func TestIsTerminal(t *testing.T) {
	next := &NextBall{}
	assert.True(t, Delivery{BallNo: 6, LastBallNo: 6}.IsTerminal())
	assert.True(t, Delivery{BallNo: 3, LastBallNo: 6}.IsTerminal())
	assert.False(t, Delivery{BallNo: 3, LastBallNo: 6, Next: next}.IsTerminal())
	// Highest ball number with a successor still counts as terminal.
	assert.True(t, Delivery{BallNo: 6, LastBallNo: 6, Next: next}.IsTerminal())
}
