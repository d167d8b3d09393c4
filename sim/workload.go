package sim

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the on-disk description of one scheduling run.
// Algorithm and Quantum are defaults that CLI flags may override.
type WorkloadSpec struct {
	Algorithm string        `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Quantum   int64         `yaml:"quantum,omitempty" json:"quantum,omitempty"`
	Processes []ProcessSpec `yaml:"processes" json:"processes"`
}

// ProcessSpec is the serialized input form of a Process.
// Nil pointer fields mean "not set".
type ProcessSpec struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Arrival  int64  `yaml:"arrival" json:"arrival"`
	Burst    int64  `yaml:"burst" json:"burst"`
	Priority *int64 `yaml:"priority,omitempty" json:"priority,omitempty"`
	Quantum  *int64 `yaml:"quantum,omitempty" json:"quantum,omitempty"`
}

// LoadWorkloadSpec reads and parses a YAML workload file.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec parses YAML workload bytes with strict field checking,
// so a misspelled key is an error instead of a silently ignored field.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	return &spec, nil
}

// WriteWorkloadSpec serializes spec as YAML to w.
func WriteWorkloadSpec(w io.Writer, spec *WorkloadSpec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("encoding workload: %w", err)
	}
	return encoder.Close()
}

// Validate checks the algorithm name, quantum and every process entry.
func (s *WorkloadSpec) Validate() error {
	if !IsValidAlgorithm(s.Algorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s.Algorithm)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be non-negative, got %d", ErrInvalidInput, s.Quantum)
	}
	cfg := Config{Algorithm: Algorithm(s.Algorithm)}
	return ValidateProcesses(s.Build(), cfg.RequiresPriority())
}

// Build returns fresh Process records for the workload's entries.
func (s *WorkloadSpec) Build() []*Process {
	return ProcessesFromSpecs(s.Processes)
}

// ProcessesFromSpecs builds fresh Process records from specs. Entries without
// an ID are named P1, P2, ... after their position.
func ProcessesFromSpecs(specs []ProcessSpec) []*Process {
	ps := make([]*Process, len(specs))
	for i, spec := range specs {
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		p := NewProcess(id, spec.Arrival, spec.Burst)
		if spec.Priority != nil {
			p.WithPriority(*spec.Priority)
		}
		if spec.Quantum != nil {
			p.WithQuantum(*spec.Quantum)
		}
		ps[i] = p
	}
	return ps
}
