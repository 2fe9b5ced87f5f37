package schedule

// Timeline is one machine's ordered partition of time. Intervals are
// contiguous (i.End+1 == next.Start), non-overlapping, and cover
// [0, +inf); the last interval is always free and unbounded.
//
// It is a doubly linked list so that a Slot handle stays valid while
// neighboring intervals are spliced in. The placement code mutates the
// interval a handle points at and inserts on both sides of it; a
// slice-backed timeline would invalidate the handle on growth.
type Timeline struct {
	head, tail *Slot
}

// Slot is a stable handle to one interval in a timeline.
type Slot struct {
	iv         Interval
	prev, next *Slot
}

// Interval returns a copy of the interval under the handle.
func (s *Slot) Interval() Interval {
	return s.iv
}

// Set replaces the interval under the handle in place.
func (s *Slot) Set(iv Interval) {
	s.iv = iv
}

// Next returns the handle of the following interval, or nil past the
// unbounded tail.
func (s *Slot) Next() *Slot {
	return s.next
}

// NewTimeline returns a timeline consisting of the single free
// interval [0, +inf).
func NewTimeline() *Timeline {
	s := &Slot{iv: Free(0, infinity)}
	return &Timeline{head: s, tail: s}
}

// At returns the handle of the first interval containing t. It always
// succeeds for t >= 0: the unbounded tail guarantees coverage.
func (t *Timeline) At(time int64) *Slot {
	for s := t.head; s != nil; s = s.next {
		if s.iv.Includes(time) {
			return s
		}
	}
	// Unreachable while the partition invariant holds.
	return t.tail
}

// InsertBefore splices iv immediately before at. Handles elsewhere in
// the timeline remain valid.
func (t *Timeline) InsertBefore(at *Slot, iv Interval) *Slot {
	s := &Slot{iv: iv, prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = s
	} else {
		t.head = s
	}
	at.prev = s
	return s
}

// InsertAfter splices iv immediately after at.
func (t *Timeline) InsertAfter(at *Slot, iv Interval) *Slot {
	s := &Slot{iv: iv, prev: at, next: at.next}
	if at.next != nil {
		at.next.prev = s
	} else {
		t.tail = s
	}
	at.next = s
	return s
}

// Length is the first unused instant: if the final interval is
// occupied the schedule is packed through its end, otherwise the open
// tail starts at the machine's current makespan contribution.
func (t *Timeline) Length() int64 {
	last := t.tail.iv
	if last.Occupied() {
		return last.End + 1
	}
	return last.Start
}

// Intervals returns the intervals in order. The returned slice is a
// snapshot; mutating it does not affect the timeline.
func (t *Timeline) Intervals() []Interval {
	var ivs []Interval
	for s := t.head; s != nil; s = s.next {
		ivs = append(ivs, s.iv)
	}
	return ivs
}
