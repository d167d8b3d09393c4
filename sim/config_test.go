package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Requires(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		priority  bool
		quantum   bool
	}{
		{AlgorithmFCFS, false, false},
		{AlgorithmSJF, false, false},
		{AlgorithmSRTF, false, false},
		{AlgorithmPriority, true, false},
		{AlgorithmPriorityPreemptive, true, false},
		{AlgorithmRoundRobin, false, true},
		{"round-robin", false, true},
		{"bogus", false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			cfg := Config{Algorithm: tt.algorithm}
			assert.Equal(t, tt.priority, cfg.RequiresPriority())
			assert.Equal(t, tt.quantum, cfg.RequiresQuantum())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Algorithm: AlgorithmFCFS}.Validate())
	assert.NoError(t, Config{Algorithm: AlgorithmRoundRobin, Quantum: 1}.Validate())
	assert.NoError(t, Config{Algorithm: AlgorithmSJF, TraceLevel: "dispatch"}.Validate())
	assert.ErrorIs(t, Config{Algorithm: AlgorithmRoundRobin}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Config{Algorithm: "bogus"}.Validate(), ErrUnsupportedAlgorithm)
	assert.ErrorIs(t, Config{Algorithm: AlgorithmFCFS, TraceLevel: "all"}.Validate(), ErrInvalidInput)
}

func TestValidateProcesses_NilEntry(t *testing.T) {
	err := ValidateProcesses([]*Process{NewProcess("P1", 0, 1), nil}, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateProcesses_PriorityOnlyWhenRequired(t *testing.T) {
	ps := []*Process{NewProcess("P1", 0, 1)}
	assert.NoError(t, ValidateProcesses(ps, false))
	assert.ErrorIs(t, ValidateProcesses(ps, true), ErrInvalidInput)
}

func TestResolveQuantum(t *testing.T) {
	tests := []struct {
		name     string
		ps       []*Process
		explicit int64
		want     int64
		wantErr  bool
	}{
		{"explicit wins", []*Process{NewProcess("P1", 0, 1).WithQuantum(5)}, 2, 2, false},
		{"first record quantum", []*Process{NewProcess("P1", 0, 1), NewProcess("P2", 0, 1).WithQuantum(3), NewProcess("P3", 0, 1).WithQuantum(7)}, 0, 3, false},
		{"none", []*Process{NewProcess("P1", 0, 1)}, 0, 0, true},
		{"non-positive record quantum", []*Process{NewProcess("P1", 0, 1).WithQuantum(0)}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveQuantum(tt.ps, tt.explicit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakespanBound(t *testing.T) {
	// GIVEN an idle gap before the last arrival
	ps := []*Process{NewProcess("P1", 0, 2), NewProcess("P2", 10, 3)}

	// WHEN bounded
	bound, err := MakespanBound(ps)

	// THEN the bound is the latest arrival plus every burst
	assert.NoError(t, err)
	assert.Equal(t, int64(15), bound)
}

func TestValidateProcesses_MakespanOverflow_Rejected(t *testing.T) {
	tests := []struct {
		name string
		ps   []*Process
	}{
		{"burst sum overflows", []*Process{NewProcess("P1", 0, math.MaxInt64), NewProcess("P2", 0, 1)}},
		{"arrival plus burst overflows", []*Process{NewProcess("P1", math.MaxInt64-1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateProcesses(tt.ps, false), ErrInvalidInput)
			_, err := Run(tt.ps, Config{Algorithm: AlgorithmFCFS})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCheckMakespan(t *testing.T) {
	ps := []*Process{NewProcess("P1", 4_000_000_000_000_000_000, 1)}

	assert.ErrorIs(t, CheckMakespan(ps, 1000), ErrInvalidInput)
	assert.NoError(t, CheckMakespan(ps, 0), "non-positive limit disables the check")
	assert.NoError(t, CheckMakespan([]*Process{NewProcess("P1", 3, 2)}, 5), "bound equal to the limit is allowed")
}
