package scripthx

import (
	"testing"

	"github.com/me/takt/internal/logging"
	"github.com/me/takt/internal/schedule"
	"github.com/me/takt/pkg/model"
)

func testInstance() *model.Instance {
	return &model.Instance{
		Machines: 2,
		Jobs: []model.Job{
			{ID: 0, Ops: []model.Operation{{Machine: 0, Duration: 3}, {Machine: 1, Duration: 2}}},
			{ID: 1, Ops: []model.Operation{{Machine: 0, Duration: 2}, {Machine: 1, Duration: 4}}},
		},
	}
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	if _, err := Compile("a.duration >"); err == nil {
		t.Error("Compile accepted a syntax error")
	}
	if _, err := Compile(""); err == nil {
		t.Error("Compile accepted an empty expression")
	}
}

func TestScriptedLongestFirstMatchesBuiltin(t *testing.T) {
	c, err := Compile("a.duration > b.duration")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	scripted, err := schedule.Solve(testInstance(), c.Heuristic(), logging.Discard())
	if err != nil {
		t.Fatalf("scripted solve: %v", err)
	}
	if err := c.Err(); err != nil {
		t.Fatalf("comparator error: %v", err)
	}

	builtin, err := schedule.Solve(testInstance(), schedule.LongestOp, logging.Discard())
	if err != nil {
		t.Fatalf("builtin solve: %v", err)
	}

	if scripted.Makespan != builtin.Makespan {
		t.Errorf("scripted makespan %d != builtin %d", scripted.Makespan, builtin.Makespan)
	}
}

func TestScriptedSeesStageAndRemaining(t *testing.T) {
	c, err := Compile("stage === 0 ? a.remaining > b.remaining : a.id < b.id")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	res, err := schedule.Solve(testInstance(), c.Heuristic(), logging.Discard())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if err := c.Err(); err != nil {
		t.Fatalf("comparator error: %v", err)
	}
	// Job 1 has more remaining work (6 vs 5) so it dispatches first
	// at stage 0 and takes machine 0 at time 0.
	if got := res.Starts[1][0]; got != 0 {
		t.Errorf("job 1 op 0 start = %d, want 0", got)
	}
}

func TestRuntimeErrorFallsBackToInputOrder(t *testing.T) {
	c, err := Compile("a.nope.deeper > 0")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := schedule.Solve(testInstance(), c.Heuristic(), logging.Discard()); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if c.Err() == nil {
		t.Error("expected a recorded runtime error")
	}
}
