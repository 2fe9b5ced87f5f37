// Package render turns a solved schedule into its textual forms: the
// machine-by-machine Gantt chart and the makespan/start-time summary.
// Renderers only read their inputs; calling them repeatedly yields
// identical output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/me/takt/pkg/model"
)

// Summary renders the stable textual result form: first line the
// makespan, then one line per job with its operations' start times in
// sequence order, space-separated.
func Summary(res *model.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", res.Makespan)
	for _, row := range res.Starts {
		for _, start := range row {
			fmt.Fprintf(&b, "%d ", start)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Chart renders a quantized Gantt chart: one row per machine, one
// cell per time unit, occupied cells showing the job id and free
// cells filled with underscores.
func Chart(inst *model.Instance, res *model.Result, color Colorizer) string {
	makespan := int(res.Makespan)
	grid := occupancy(inst, res, makespan)

	cellWidth := digits(makespan)
	if d := digits(len(inst.Jobs)); d > cellWidth {
		cellWidth = d
	}
	leftWidth := digits(inst.Machines)
	emptyCell := strings.Repeat("_", cellWidth) + "|"

	var b strings.Builder

	// Header: the time axis.
	b.WriteString("   " + strings.Repeat(" ", leftWidth))
	for t := 0; t < makespan; t++ {
		fmt.Fprintf(&b, "%0*d ", cellWidth, t)
	}
	b.WriteByte('\n')

	for m := 0; m < inst.Machines; m++ {
		fmt.Fprintf(&b, "%0*d: |", leftWidth, m)
		for t := 0; t < makespan; t++ {
			job := grid[m][t]
			if job == -1 {
				b.WriteString(emptyCell)
			} else {
				cell := fmt.Sprintf("%0*d", cellWidth, job)
				b.WriteString(color(cell, job))
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// occupancy maps every (machine, time) cell to the occupying job id,
// or -1 when idle. Built from assigned start times, so it works for
// freshly solved and persisted runs alike.
func occupancy(inst *model.Instance, res *model.Result, makespan int) [][]int {
	grid := make([][]int, inst.Machines)
	for m := range grid {
		grid[m] = make([]int, makespan)
		for t := range grid[m] {
			grid[m][t] = -1
		}
	}
	for j, row := range res.Starts {
		for o, start := range row {
			op := inst.Jobs[j].Ops[o]
			for t := start; t < start+op.Duration && t < int64(makespan); t++ {
				grid[op.Machine][t] = inst.Jobs[j].ID
			}
		}
	}
	return grid
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	return len(strconv.Itoa(n))
}
