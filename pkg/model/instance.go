package model

import (
	"fmt"
	"math"
)

// Infinity is the sentinel end of an unbounded time span.
const Infinity int64 = math.MaxInt64

// StartUnset marks an operation that has not been scheduled yet.
const StartUnset int64 = -1

// Operation is one unit of work: it runs on one machine for a fixed
// duration and belongs to exactly one job. Job is an index into the
// owning Instance's job slice, never a pointer; an operation does not
// own or outlive its job.
type Operation struct {
	Machine  int   `json:"machine" yaml:"machine"`
	Duration int64 `json:"duration" yaml:"duration"`

	// Start is assigned exactly once by the scheduler.
	Start int64 `json:"start" yaml:"-"`

	// Job is stamped by the scheduler at construction.
	Job int `json:"-" yaml:"-"`
}

// Scheduled reports whether the operation has been placed.
func (op *Operation) Scheduled() bool {
	return op.Start != StartUnset
}

// Job is an ordered sequence of operations that must execute in that
// order, possibly on different machines.
type Job struct {
	ID  int         `json:"id"`
	Ops []Operation `json:"ops"`

	// LastEnd is the completion cursor: the first instant after the
	// most recently scheduled operation of this job. It starts at 0
	// and only moves forward.
	LastEnd int64 `json:"-"`
}

// Instance is one job-shop problem: a machine count and an ordered
// list of jobs. Machine ids are 0-based and dense.
type Instance struct {
	Machines int   `json:"machines"`
	Jobs     []Job `json:"jobs"`
}

// Stages returns the common operation count per job. Valid only after
// Validate has passed.
func (in *Instance) Stages() int {
	if len(in.Jobs) == 0 {
		return 0
	}
	return len(in.Jobs[0].Ops)
}

// Validate checks the preconditions the scheduler relies on. The
// scheduler itself never re-checks these: once an instance is
// accepted, every operation is guaranteed placeable.
//
// Rejected here rather than guessed at: jobs with differing operation
// counts, and zero or negative durations.
func (in *Instance) Validate() error {
	if in.Machines <= 0 {
		return fmt.Errorf("machine count must be > 0 (got %d)", in.Machines)
	}
	if len(in.Jobs) == 0 {
		return fmt.Errorf("instance has no jobs")
	}
	stages := len(in.Jobs[0].Ops)
	if stages == 0 {
		return fmt.Errorf("job %d has no operations", in.Jobs[0].ID)
	}
	for j := range in.Jobs {
		job := &in.Jobs[j]
		if len(job.Ops) != stages {
			return fmt.Errorf("job %d has %d operations, want %d (all jobs must have the same count)",
				job.ID, len(job.Ops), stages)
		}
		for o := range job.Ops {
			op := &job.Ops[o]
			if op.Duration < 1 {
				return fmt.Errorf("job %d op %d: duration must be >= 1 (got %d)", job.ID, o, op.Duration)
			}
			if op.Machine < 0 || op.Machine >= in.Machines {
				return fmt.Errorf("job %d op %d: machine %d out of range [0,%d)",
					job.ID, o, op.Machine, in.Machines)
			}
		}
	}
	return nil
}

// Reset clears all scheduling state so the instance can be solved again.
func (in *Instance) Reset() {
	for j := range in.Jobs {
		in.Jobs[j].LastEnd = 0
		for o := range in.Jobs[j].Ops {
			in.Jobs[j].Ops[o].Start = StartUnset
		}
	}
}
