package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/me/takt/pkg/model"
)

// yamlInstance is the YAML document shape:
//
//	machines: 3
//	jobs:
//	  - name: polish
//	    ops:
//	      - {machine: 0, duration: 3}
//	      - {machine: 2, duration: 5}
type yamlInstance struct {
	Machines int       `yaml:"machines"`
	Jobs     []yamlJob `yaml:"jobs"`
}

type yamlJob struct {
	Name string `yaml:"name"`
	Ops  []struct {
		Machine  int   `yaml:"machine"`
		Duration int64 `yaml:"duration"`
	} `yaml:"ops"`
}

// ParseYAML parses a YAML instance document and validates it.
func ParseYAML(data []byte) (*model.Instance, error) {
	var doc yamlInstance
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml instance: %w", err)
	}

	inst := &model.Instance{Machines: doc.Machines}
	for j, yj := range doc.Jobs {
		job := model.Job{ID: j, Ops: make([]model.Operation, 0, len(yj.Ops))}
		for _, yop := range yj.Ops {
			job.Ops = append(job.Ops, model.Operation{
				Machine:  yop.Machine,
				Duration: yop.Duration,
				Start:    model.StartUnset,
			})
		}
		inst.Jobs = append(inst.Jobs, job)
	}

	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}
