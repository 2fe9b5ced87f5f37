package schedule

import (
	"fmt"

	"github.com/me/takt/pkg/model"
)

// Heuristic orders two jobs at a dispatch stage: it returns true when
// a should be offered its stage-th operation before b. It must be a
// pure function of its arguments; ties fall back to input order via
// the dispatch loop's stable sort, which is part of the heuristic's
// contract, not the scheduler's.
type Heuristic func(a, b *model.Job, stage int) bool

// LongestOp favors the job whose stage-th operation takes longer
// (longest-processing-time-first).
func LongestOp(a, b *model.Job, stage int) bool {
	return a.Ops[stage].Duration > b.Ops[stage].Duration
}

// ShortestOp favors the job whose stage-th operation takes less time.
func ShortestOp(a, b *model.Job, stage int) bool {
	return a.Ops[stage].Duration < b.Ops[stage].Duration
}

// MostWork favors the job with the most processing time remaining
// from this stage onward.
func MostWork(a, b *model.Job, stage int) bool {
	return Remaining(a, stage) > Remaining(b, stage)
}

// InputOrder dispatches jobs in the order they were given.
func InputOrder(a, b *model.Job, stage int) bool {
	return false
}

// Remaining sums a job's operation durations from stage onward.
func Remaining(j *model.Job, stage int) int64 {
	var total int64
	for _, op := range j.Ops[stage:] {
		total += op.Duration
	}
	return total
}

// ByName resolves a built-in heuristic. Recognized names: "lpt"
// (longest operation first, the default), "spt", "mwr" (most work
// remaining), "order".
func ByName(name string) (Heuristic, error) {
	switch name {
	case "", "lpt":
		return LongestOp, nil
	case "spt":
		return ShortestOp, nil
	case "mwr":
		return MostWork, nil
	case "order":
		return InputOrder, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want lpt, spt, mwr, or order)", name)
	}
}
