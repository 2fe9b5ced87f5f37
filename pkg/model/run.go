package model

import "time"

// Result is the output of one solve: the makespan and, for each job,
// the start time of each of its operations in sequence order.
type Result struct {
	Makespan int64     `json:"makespan"`
	Starts   [][]int64 `json:"starts"`
}

// Run is a persisted solve: the instance it was computed from, the
// heuristic used, and the result.
type Run struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Heuristic string    `json:"heuristic"`
	Machines  int       `json:"machines"`
	Jobs      int       `json:"jobs"`
	Makespan  int64     `json:"makespan"`
	Instance  string    `json:"instance,omitempty"` // canonical text form
	Starts    [][]int64 `json:"starts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
