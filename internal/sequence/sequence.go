// Package sequence orders a ball log into delivery order and derives the
// per-delivery fields that next-ball analysis needs: last ball of the innings,
// boundary flag, successor data and next-ball outcome.
package sequence

import (
	"sort"

	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Sequence returns a copy of deliveries ordered by (match, innings, over,
// ball). Rows sharing the full key keep their input order. Every row gets the
// highest BallNo of its innings as LastBallNo.
func Sequence(deliveries []model.Delivery) []model.Delivery {
	out := make([]model.Delivery, len(deliveries))
	copy(out, deliveries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.Innings != b.Innings {
			return a.Innings < b.Innings
		}
		if a.Over != b.Over {
			return a.Over < b.Over
		}
		return a.BallNo < b.BallNo
	})

	last := LastBallNumbers(out)
	for i := range out {
		out[i].LastBallNo = last[out[i].Key()]
	}

	zap.L().Debug("sequenced deliveries",
		zap.Int("rows", len(out)),
		zap.Int("partitions", len(last)),
	)
	return out
}

// LastBallNumbers returns the highest BallNo seen in each innings.
func LastBallNumbers(deliveries []model.Delivery) map[model.PartitionKey]int {
	last := make(map[model.PartitionKey]int)
	for _, d := range deliveries {
		k := d.Key()
		if cur, ok := last[k]; !ok || d.BallNo > cur {
			last[k] = d.BallNo
		}
	}
	return last
}

// Partitions splits sequenced deliveries into [start, end) index ranges, one
// per innings, in order.
func Partitions(sequenced []model.Delivery) [][2]int {
	var out [][2]int
	start := 0
	for i := 1; i <= len(sequenced); i++ {
		if i == len(sequenced) || sequenced[i].Key() != sequenced[start].Key() {
			out = append(out, [2]int{start, i})
			start = i
		}
	}
	return out
}
