package dataset

import (
	"fmt"
	"math/rand"

	"github.com/me/takt/pkg/model"
)

// Generate builds a random instance where each job visits every
// machine exactly once in a random order, with durations drawn
// uniformly from [minDur, maxDur]. The same seed reproduces the same
// instance.
func Generate(jobs, machines int, minDur, maxDur int64, seed int64) (*model.Instance, error) {
	if jobs <= 0 || machines <= 0 {
		return nil, fmt.Errorf("jobs and machines must be > 0 (got %d, %d)", jobs, machines)
	}
	if minDur < 1 || maxDur < minDur {
		return nil, fmt.Errorf("invalid duration bounds [%d, %d]", minDur, maxDur)
	}

	rng := rand.New(rand.NewSource(seed))
	inst := &model.Instance{Machines: machines}
	span := maxDur - minDur + 1

	for j := 0; j < jobs; j++ {
		job := model.Job{ID: j, Ops: make([]model.Operation, machines)}
		for i, m := range rng.Perm(machines) {
			job.Ops[i] = model.Operation{
				Machine:  m,
				Duration: minDur + rng.Int63n(span),
				Start:    model.StartUnset,
			}
		}
		inst.Jobs = append(inst.Jobs, job)
	}
	return inst, nil
}
