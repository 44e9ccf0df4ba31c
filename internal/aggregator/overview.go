package aggregator

import (
	"github.com/pable/go-cricket-metrics/internal/model"
)

// Summarize describes a derived delivery table.
func Summarize(derived []model.Delivery) model.Overview {
	var ov model.Overview
	matches := make(map[int]struct{})
	innings := make(map[model.PartitionKey]struct{})

	for _, d := range derived {
		ov.Deliveries++
		matches[d.MatchID] = struct{}{}
		innings[d.Key()] = struct{}{}

		if d.Date.IsZero() {
			ov.Undated++
		} else {
			if ov.FirstDate.IsZero() || d.Date.Before(ov.FirstDate) {
				ov.FirstDate = d.Date
			}
			if d.Date.After(ov.LastDate) {
				ov.LastDate = d.Date
			}
		}

		if !d.IsBoundary {
			continue
		}
		if d.RunsBatter == 4 {
			ov.Fours++
		} else {
			ov.Sixes++
		}
		if d.IsTerminal() {
			ov.TerminalHits++
		} else {
			ov.BoundarySet++
		}
	}
	ov.Matches = len(matches)
	ov.Innings = len(innings)
	return ov
}
