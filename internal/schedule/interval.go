// Package schedule implements the timeline allocator and the greedy
// stage-by-stage dispatch for job-shop instances. Each machine owns a
// timeline: an ordered partition of [0, +inf) into free and occupied
// intervals. Operations are placed first-fit into the earliest free
// interval that can hold them.
package schedule

import "github.com/me/takt/pkg/model"

const infinity = model.Infinity

// Interval is a closed time span [Start, End] on one machine's
// timeline. Op is nil for a free interval. The final interval of every
// timeline is free with End == model.Infinity, so any finite operation
// can always be placed.
type Interval struct {
	Start, End int64
	Op         *model.Operation
}

// Free returns an unoccupied interval covering [start, end].
func Free(start, end int64) Interval {
	return Interval{Start: start, End: end}
}

// Occupied reports whether the interval holds an operation.
func (iv Interval) Occupied() bool {
	return iv.Op != nil
}

// Includes reports whether t lies inside the interval.
func (iv Interval) Includes(t int64) bool {
	return iv.Start <= t && t <= iv.End
}

// Fits reports whether a block of duration units, starting no earlier
// than from, still ends inside the interval. The block start is
// clipped to max(Start, from).
func (iv Interval) Fits(from, duration int64) bool {
	if iv.End == model.Infinity {
		return true
	}
	start := iv.Start
	if from > start {
		start = from
	}
	return start+duration-1 <= iv.End
}
