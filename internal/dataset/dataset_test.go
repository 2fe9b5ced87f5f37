package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const classicText = `# two jobs, two machines
2 2
0 3 1 2
0 2 1 4
`

func TestParseText(t *testing.T) {
	inst, err := ParseText([]byte(classicText))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if inst.Machines != 2 {
		t.Errorf("machines = %d, want 2", inst.Machines)
	}
	if len(inst.Jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(inst.Jobs))
	}
	op := inst.Jobs[1].Ops[1]
	if op.Machine != 1 || op.Duration != 4 {
		t.Errorf("job 1 op 1 = %+v, want machine 1 duration 4", op)
	}
	if op.Start != -1 {
		t.Errorf("parsed operation has start %d, want unset", op.Start)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad header", "two 2\n0 1\n0 1\n"},
		{"missing job line", "2 2\n0 3 1 2\n"},
		{"odd fields", "1 2\n0 3 1\n"},
		{"zero duration", "1 1\n0 0\n"},
		{"machine out of range", "1 1\n1 5\n"},
		{"ragged jobs", "2 2\n0 3 1 2\n0 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseText([]byte(tt.input)); err == nil {
				t.Errorf("ParseText accepted %q", tt.input)
			}
		})
	}
}

func TestEncodeTextRoundTrip(t *testing.T) {
	inst, err := ParseText([]byte(classicText))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	encoded := EncodeText(inst)
	if !strings.HasPrefix(encoded, "2 2\n") {
		t.Errorf("EncodeText header = %q", encoded)
	}
	again, err := ParseText([]byte(encoded))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if EncodeText(again) != encoded {
		t.Error("EncodeText is not a fixed point")
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
machines: 2
jobs:
  - name: first
    ops:
      - {machine: 0, duration: 3}
      - {machine: 1, duration: 2}
  - name: second
    ops:
      - {machine: 0, duration: 2}
      - {machine: 1, duration: 4}
`
	inst, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if inst.Machines != 2 || len(inst.Jobs) != 2 {
		t.Fatalf("got %d machines / %d jobs, want 2/2", inst.Machines, len(inst.Jobs))
	}
	if inst.Jobs[1].Ops[1].Duration != 4 {
		t.Errorf("job 1 op 1 duration = %d, want 4", inst.Jobs[1].Ops[1].Duration)
	}
}

func TestParseYAMLRejectsInvalid(t *testing.T) {
	doc := `
machines: 1
jobs:
  - ops: [{machine: 0, duration: 0}]
`
	if _, err := ParseYAML([]byte(doc)); err == nil {
		t.Error("ParseYAML accepted a zero duration")
	}
}

func TestLoadSniffsByExtension(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "inst.txt")
	if err := os.WriteFile(textPath, []byte(classicText), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "inst.yaml")
	yamlDoc := "machines: 1\njobs:\n  - ops: [{machine: 0, duration: 2}]\n"
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	if inst, err := Load(textPath); err != nil || len(inst.Jobs) != 2 {
		t.Errorf("Load(text) = %v, %v", inst, err)
	}
	if inst, err := Load(yamlPath); err != nil || len(inst.Jobs) != 1 {
		t.Errorf("Load(yaml) = %v, %v", inst, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestGenerate(t *testing.T) {
	inst, err := Generate(5, 3, 1, 9, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := inst.Validate(); err != nil {
		t.Fatalf("generated instance invalid: %v", err)
	}
	if len(inst.Jobs) != 5 || inst.Machines != 3 {
		t.Errorf("got %d jobs / %d machines, want 5/3", len(inst.Jobs), inst.Machines)
	}
	// Each job visits each machine exactly once.
	for _, job := range inst.Jobs {
		seen := make(map[int]bool)
		for _, op := range job.Ops {
			if seen[op.Machine] {
				t.Errorf("job %d visits machine %d twice", job.ID, op.Machine)
			}
			seen[op.Machine] = true
			if op.Duration < 1 || op.Duration > 9 {
				t.Errorf("job %d duration %d outside [1,9]", job.ID, op.Duration)
			}
		}
	}

	// Same seed, same instance.
	again, err := Generate(5, 3, 1, 9, 42)
	if err != nil {
		t.Fatal(err)
	}
	if EncodeText(inst) != EncodeText(again) {
		t.Error("Generate is not deterministic for a fixed seed")
	}
}

func TestGenerateRejectsBadBounds(t *testing.T) {
	if _, err := Generate(0, 3, 1, 9, 1); err == nil {
		t.Error("accepted zero jobs")
	}
	if _, err := Generate(1, 3, 0, 9, 1); err == nil {
		t.Error("accepted zero min duration")
	}
	if _, err := Generate(1, 3, 5, 4, 1); err == nil {
		t.Error("accepted inverted bounds")
	}
}
