// Package scripthx compiles user-supplied JavaScript expressions into
// dispatch heuristics using goja. The expression is evaluated once per
// job pair with `a`, `b`, and `stage` in scope and its truthiness
// decides whether job a dispatches before job b, e.g.:
//
//	a.duration > b.duration
//	a.remaining > b.remaining || a.id < b.id
package scripthx

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/me/takt/internal/schedule"
	"github.com/me/takt/pkg/model"
)

// Comparator is a compiled comparison expression. It is not safe for
// concurrent use: one comparator drives one solve, like the scheduler
// it feeds.
type Comparator struct {
	src  string
	prog *goja.Program
	vm   *goja.Runtime
	err  error
}

// Compile parses and compiles the expression. Syntax errors are
// configuration errors and surface here.
func Compile(src string) (*Comparator, error) {
	if src == "" {
		return nil, fmt.Errorf("empty heuristic expression")
	}
	prog, err := goja.Compile("heuristic", src, true)
	if err != nil {
		return nil, fmt.Errorf("compile heuristic %q: %w", src, err)
	}
	return &Comparator{src: src, prog: prog, vm: goja.New()}, nil
}

// Source returns the original expression text.
func (c *Comparator) Source() string {
	return c.src
}

// jobView is what the expression sees for each job: the stage-th
// operation's attributes plus aggregate job state.
func jobView(j *model.Job, stage int) map[string]any {
	return map[string]any{
		"id":        j.ID,
		"machine":   j.Ops[stage].Machine,
		"duration":  j.Ops[stage].Duration,
		"remaining": schedule.Remaining(j, stage),
		"opCount":   len(j.Ops),
	}
}

// Heuristic adapts the comparator to the scheduler's strategy type.
// A runtime error in the expression makes the comparator fall back to
// input order for the rest of the solve; check Err afterwards.
func (c *Comparator) Heuristic() schedule.Heuristic {
	return func(a, b *model.Job, stage int) bool {
		if c.err != nil {
			return false
		}
		if err := c.vm.Set("a", jobView(a, stage)); err != nil {
			c.err = err
			return false
		}
		if err := c.vm.Set("b", jobView(b, stage)); err != nil {
			c.err = err
			return false
		}
		if err := c.vm.Set("stage", stage); err != nil {
			c.err = err
			return false
		}
		v, err := c.vm.RunProgram(c.prog)
		if err != nil {
			c.err = fmt.Errorf("heuristic %q: %w", c.src, err)
			return false
		}
		return v.ToBoolean()
	}
}

// Err reports the first runtime error hit while comparing, if any.
func (c *Comparator) Err() error {
	return c.err
}
