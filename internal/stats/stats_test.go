package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 3.0, Median([]float64{3}))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	// Even-count input averages the two middle values.
	assert.Equal(t, 25.0, Median([]float64{10, 20, 30, 1000}))
}

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 10.0, Quantile(values, 1))
	assert.InDelta(t, 5.5, Quantile(values, 0.5), 1e-12)
	// index = 0.9 * 9 = 8.1 -> 9*(0.9) + 10*(0.1)
	assert.InDelta(t, 9.1, Quantile(values, 0.9), 1e-12)
}

func TestQuantileClampsRange(t *testing.T) {
	values := []float64{1, 2, 3}
	assert.Equal(t, 1.0, Quantile(values, -0.5))
	assert.Equal(t, 3.0, Quantile(values, 1.5))
}

func TestPercentileRanksAverageTies(t *testing.T) {
	ranks := PercentileRanks([]float64{1, 2, 2, 3})

	// Ranks 1, avg(2,3)=2.5, 2.5, 4 over n=4.
	assert.InDelta(t, 0.25, ranks[0], 1e-12)
	assert.InDelta(t, 0.625, ranks[1], 1e-12)
	assert.InDelta(t, 0.625, ranks[2], 1e-12)
	assert.InDelta(t, 1.0, ranks[3], 1e-12)
}

func TestPercentileRanksOrderIndependent(t *testing.T) {
	forward := PercentileRanks([]float64{5, 3, 3, 9, 1})
	reversed := PercentileRanks([]float64{1, 9, 3, 3, 5})

	// Same values get the same rank regardless of position.
	assert.Equal(t, forward[0], reversed[4])
	assert.Equal(t, forward[1], reversed[2])
	assert.Equal(t, forward[3], reversed[1])
	assert.Equal(t, forward[4], reversed[0])
}

func TestPercentileRank(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	assert.Equal(t, 0.5, PercentileRank(values, 2))
	assert.Equal(t, 1.0, PercentileRank(values, 10))
	assert.Equal(t, 0.0, PercentileRank(values, 0))
	assert.Equal(t, 0.0, PercentileRank(nil, 1))
}

func TestMeanSum(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Sum(nil))
}
