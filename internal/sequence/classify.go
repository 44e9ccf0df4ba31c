package sequence

import (
	"strconv"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Classify labels the delivery after a boundary.
//
//	no successor                       → OutcomeNone
//	0,1,2,3,4 or 6 runs and no extra   → that number
//	anything else (5 runs, any extra)  → OutcomeOther
func Classify(next *model.NextBall) model.Outcome {
	if next == nil {
		return model.OutcomeNone
	}
	if next.ExtraType != "" {
		return model.OutcomeOther
	}
	switch next.RunsTotal {
	case 0, 1, 2, 3, 4, 6:
		return model.Outcome(strconv.Itoa(next.RunsTotal))
	default:
		return model.OutcomeOther
	}
}
