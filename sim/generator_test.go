package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:         42,
		NumProcesses: 20,
		MaxArrival:   30,
		MinBurst:     1,
		MaxBurst:     9,
		MaxPriority:  5,
		Algorithm:    "srtf",
	}
}

func TestGenerateWorkload_SameSeed_SameWorkload(t *testing.T) {
	a, err := GenerateWorkload(validGeneratorConfig())
	require.NoError(t, err)
	b, err := GenerateWorkload(validGeneratorConfig())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different workloads (-a +b):\n%s", diff)
	}
}

func TestGenerateWorkload_RespectsBounds(t *testing.T) {
	cfg := validGeneratorConfig()
	spec, err := GenerateWorkload(cfg)
	require.NoError(t, err)

	require.Len(t, spec.Processes, cfg.NumProcesses)
	var prevArrival int64
	for i, p := range spec.Processes {
		assert.GreaterOrEqual(t, p.Arrival, prevArrival, "arrivals sorted at %d", i)
		assert.LessOrEqual(t, p.Arrival, cfg.MaxArrival)
		assert.GreaterOrEqual(t, p.Burst, cfg.MinBurst)
		assert.LessOrEqual(t, p.Burst, cfg.MaxBurst)
		require.NotNil(t, p.Priority)
		assert.GreaterOrEqual(t, *p.Priority, int64(1))
		assert.LessOrEqual(t, *p.Priority, cfg.MaxPriority)
		prevArrival = p.Arrival
	}
	assert.Equal(t, "P1", spec.Processes[0].ID)
	assert.NoError(t, spec.Validate())
}

func TestGenerateWorkload_NoPriorities(t *testing.T) {
	cfg := validGeneratorConfig()
	cfg.MaxPriority = 0
	spec, err := GenerateWorkload(cfg)
	require.NoError(t, err)
	for _, p := range spec.Processes {
		assert.Nil(t, p.Priority)
	}
}

func TestGenerateWorkload_PrioritiesDoNotShiftBursts(t *testing.T) {
	withPriority, err := GenerateWorkload(validGeneratorConfig())
	require.NoError(t, err)

	cfg := validGeneratorConfig()
	cfg.MaxPriority = 0
	without, err := GenerateWorkload(cfg)
	require.NoError(t, err)

	for i := range without.Processes {
		assert.Equal(t, withPriority.Processes[i].Arrival, without.Processes[i].Arrival)
		assert.Equal(t, withPriority.Processes[i].Burst, without.Processes[i].Burst)
	}
}

func TestGeneratorConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
	}{
		{"no processes", func(c *GeneratorConfig) { c.NumProcesses = 0 }},
		{"negative max arrival", func(c *GeneratorConfig) { c.MaxArrival = -1 }},
		{"zero min burst", func(c *GeneratorConfig) { c.MinBurst = 0 }},
		{"inverted burst range", func(c *GeneratorConfig) { c.MaxBurst = 0 }},
		{"negative priority", func(c *GeneratorConfig) { c.MaxPriority = -1 }},
		{"negative quantum", func(c *GeneratorConfig) { c.Quantum = -1 }},
		{"bad algorithm", func(c *GeneratorConfig) { c.Algorithm = "lottery" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validGeneratorConfig()
			tt.mutate(&cfg)
			_, err := GenerateWorkload(cfg)
			assert.Error(t, err)
		})
	}
}
