package sequence

import (
	"github.com/pable/go-cricket-metrics/internal/model"
)

// Extract returns a copy of sequenced deliveries with IsBoundary, Next and
// Outcome filled in. Next only ever points at the following row of the same
// innings; the last row of each innings has no successor.
func Extract(sequenced []model.Delivery) []model.Delivery {
	out := make([]model.Delivery, len(sequenced))
	copy(out, sequenced)

	for i := range out {
		d := &out[i]
		d.IsBoundary = d.ValidBall == 1 && model.IsBoundaryRuns(d.RunsBatter)
		d.Next = nil

		if i+1 < len(out) && out[i+1].Key() == d.Key() {
			d.Next = &model.NextBall{
				RunsTotal: out[i+1].RunsTotal,
				ExtraType: out[i+1].ExtraType,
			}
		}
		d.Outcome = Classify(d.Next)
	}
	return out
}

// BoundarySet returns the boundaries that have a following delivery in
// their innings, i.e. the rows next-ball outcomes are measured over.
func BoundarySet(derived []model.Delivery) []model.Delivery {
	var out []model.Delivery
	for _, d := range derived {
		if d.IsBoundary && !d.IsTerminal() {
			out = append(out, d)
		}
	}
	return out
}
