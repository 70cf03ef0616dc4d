package stats

import "sort"

// PercentileRanks returns the percentile rank of each value within the input
// slice, on a 0-1 scale. Tied values receive the mean of the ranks they
// would occupy (average-rank semantics), so the result is independent of
// input order.
func PercentileRanks(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}

	// Sort index positions by value, then assign average ranks over runs of
	// equal values.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// 1-based ranks i+1 .. j+1 share the average rank.
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg / float64(n)
		}
		i = j + 1
	}

	return ranks
}

// PercentileRank returns the percentile rank (0-1) of a single value: the
// fraction of values less than or equal to it.
func PercentileRank(values []float64, value float64) float64 {
	if len(values) == 0 {
		return 0
	}

	count := 0
	for _, v := range values {
		if v <= value {
			count++
		}
	}

	return float64(count) / float64(len(values))
}
