// Package dataset loads job-shop instances from the classic text
// format and from YAML, and generates random instances. It is the
// boundary where inputs are validated; the scheduler assumes a
// well-formed instance.
package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/me/takt/pkg/model"
)

// Load reads an instance from a file, picking the format from the
// extension: .yaml/.yml is parsed as YAML, anything else as the
// classic text format.
func Load(path string) (*model.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(data)
	}
}

// ParseText parses the classic job-shop format:
//
//	<job count> <machine count>
//	<machine> <duration> <machine> <duration> ...   (one line per job)
//
// Blank lines and lines starting with '#' are skipped.
func ParseText(data []byte) (*model.Instance, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line, lineNo, err := nextLine(sc, 0)
	if err != nil {
		return nil, err
	}
	header := strings.Fields(line)
	if len(header) != 2 {
		return nil, fmt.Errorf("line %d: header must be '<jobs> <machines>', got %q", lineNo, line)
	}
	jobCount, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: job count: %w", lineNo, err)
	}
	machines, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: machine count: %w", lineNo, err)
	}

	inst := &model.Instance{Machines: machines}
	for j := 0; j < jobCount; j++ {
		line, lineNo, err = nextLine(sc, lineNo)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", j, err)
		}
		job, err := parseJobLine(line, j, lineNo)
		if err != nil {
			return nil, err
		}
		inst.Jobs = append(inst.Jobs, job)
	}

	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func parseJobLine(line string, id, lineNo int) (model.Job, error) {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return model.Job{}, fmt.Errorf("line %d: job %d has an odd field count %d; want machine/duration pairs",
			lineNo, id, len(fields))
	}
	job := model.Job{ID: id, Ops: make([]model.Operation, 0, len(fields)/2)}
	for i := 0; i < len(fields); i += 2 {
		machine, err := strconv.Atoi(fields[i])
		if err != nil {
			return model.Job{}, fmt.Errorf("line %d: job %d machine: %w", lineNo, id, err)
		}
		duration, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return model.Job{}, fmt.Errorf("line %d: job %d duration: %w", lineNo, id, err)
		}
		job.Ops = append(job.Ops, model.Operation{
			Machine:  machine,
			Duration: duration,
			Start:    model.StartUnset,
		})
	}
	return job, nil
}

// nextLine returns the next non-blank, non-comment line.
func nextLine(sc *bufio.Scanner, lineNo int) (string, int, error) {
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, lineNo, nil
	}
	if err := sc.Err(); err != nil {
		return "", lineNo, err
	}
	return "", lineNo, fmt.Errorf("unexpected end of input at line %d", lineNo)
}

// EncodeText renders an instance in the canonical text format. It is
// the inverse of ParseText and what the store persists.
func EncodeText(inst *model.Instance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", len(inst.Jobs), inst.Machines)
	for _, job := range inst.Jobs {
		for i, op := range job.Ops {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d %d", op.Machine, op.Duration)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
