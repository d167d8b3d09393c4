package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentile(t *testing.T) {
	tests := []struct {
		name string
		data []int64
		p    float64
		want float64
	}{
		{"empty", nil, 50, 0},
		{"single", []int64{7}, 99, 7},
		{"median odd", []int64{3, 1, 2}, 50, 2},
		{"median even interpolates", []int64{4, 1, 3, 2}, 50, 2.5},
		{"p0 is min", []int64{9, 5, 7}, 0, 5},
		{"p100 is max", []int64{9, 5, 7}, 100, 9},
		{"p90", []int64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculatePercentile(tt.data, tt.p), 1e-9)
		})
	}
}

func TestCalculatePercentile_DoesNotReorderInput(t *testing.T) {
	data := []int64{3, 1, 2}
	CalculatePercentile(data, 50)
	assert.Equal(t, []int64{3, 1, 2}, data)
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.Equal(t, 2.5, CalculateMean([]int64{1, 2, 3, 4}))
	assert.InDelta(t, 1.0/3.0, CalculateMean([]float64{0, 0, 1}), 1e-12)
}
