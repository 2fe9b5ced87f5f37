package schedule

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/me/takt/pkg/model"
)

// Scheduler owns one timeline per machine and places a validated
// instance's operations onto them. It is single-threaded: one
// scheduler runs one instance to completion.
type Scheduler struct {
	inst   *model.Instance
	table  []*Timeline
	logger *slog.Logger
}

// New validates the instance, stamps each operation's job index, and
// builds an empty timeline per machine. After New succeeds, placement
// cannot fail: every timeline ends in an unbounded free interval.
func New(inst *model.Instance, logger *slog.Logger) (*Scheduler, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}
	inst.Reset()
	for j := range inst.Jobs {
		for o := range inst.Jobs[j].Ops {
			inst.Jobs[j].Ops[o].Job = j
		}
	}
	table := make([]*Timeline, inst.Machines)
	for m := range table {
		table[m] = NewTimeline()
	}
	return &Scheduler{
		inst:   inst,
		table:  table,
		logger: logger.With("component", "scheduler"),
	}, nil
}

// Place assigns op the earliest feasible start on its machine.
//
// The search is first-fit: starting from the interval containing the
// job's completion cursor, scan forward to the first free interval
// with room for the operation no earlier than the cursor. The chosen
// interval is narrowed in place to the occupied block and free
// intervals are spliced in for any leftover prefix and suffix, so the
// partition invariant survives every call.
func (s *Scheduler) Place(op *model.Operation) {
	job := &s.inst.Jobs[op.Job]
	tl := s.table[op.Machine]
	earliest := job.LastEnd

	slot := tl.At(earliest)
	for slot.Interval().Occupied() || !slot.Interval().Fits(earliest, op.Duration) {
		slot = slot.Next()
	}

	iv := slot.Interval()
	start := iv.Start
	if earliest > start {
		start = earliest
	}
	end := start + op.Duration - 1

	slot.Set(Interval{Start: start, End: end, Op: op})
	if start > iv.Start {
		tl.InsertBefore(slot, Free(iv.Start, start-1))
	}
	if end < iv.End {
		tl.InsertAfter(slot, Free(end+1, iv.End))
	}

	op.Start = start
	job.LastEnd = start + op.Duration

	s.logger.Debug("placed",
		"job", job.ID, "machine", op.Machine,
		"start", start, "duration", op.Duration)
}

// Run dispatches every operation stage by stage: all jobs complete
// stage i before any job begins stage i+1, so the heuristic compares
// priority at the same progress point across jobs. Within a stage,
// jobs are offered their operation in heuristic order; the sort is
// stable, so jobs the heuristic does not separate keep input order.
func (s *Scheduler) Run(h Heuristic) {
	stages := s.inst.Stages()
	jobs := s.inst.Jobs
	order := make([]int, len(jobs))

	for stage := 0; stage < stages; stage++ {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return h(&jobs[order[i]], &jobs[order[j]], stage)
		})
		for _, j := range order {
			s.Place(&jobs[j].Ops[stage])
		}
		s.logger.Debug("stage dispatched", "stage", stage, "jobs", len(order))
	}
	s.logger.Info("schedule complete", "makespan", s.Makespan(),
		"jobs", len(jobs), "machines", s.inst.Machines, "stages", stages)
}

// Timeline returns the timeline of one machine.
func (s *Scheduler) Timeline(machine int) *Timeline {
	return s.table[machine]
}

// Machines returns the machine count.
func (s *Scheduler) Machines() int {
	return s.inst.Machines
}

// Makespan is the completion time of the last-finishing operation:
// the largest Length across all machine timelines.
func (s *Scheduler) Makespan() int64 {
	var longest int64
	for _, tl := range s.table {
		if l := tl.Length(); l > longest {
			longest = l
		}
	}
	return longest
}

// Result snapshots the assigned start times. Safe to call repeatedly;
// it never mutates the schedule.
func (s *Scheduler) Result() *model.Result {
	starts := make([][]int64, len(s.inst.Jobs))
	for j := range s.inst.Jobs {
		row := make([]int64, len(s.inst.Jobs[j].Ops))
		for o := range row {
			row[o] = s.inst.Jobs[j].Ops[o].Start
		}
		starts[j] = row
	}
	return &model.Result{Makespan: s.Makespan(), Starts: starts}
}

// Solve is the one-call path used by the CLI and server: validate,
// dispatch with the heuristic, and return the result.
func Solve(inst *model.Instance, h Heuristic, logger *slog.Logger) (*model.Result, error) {
	s, err := New(inst, logger)
	if err != nil {
		return nil, err
	}
	s.Run(h)
	return s.Result(), nil
}
