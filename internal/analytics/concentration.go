// Package analytics computes the dashboard's aggregate statistics. All
// functions are pure: they never mutate their input and depend only on it.
package analytics

import (
	"math"
	"sort"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// capitalDesc returns the recent-capital values sorted descending.
func capitalDesc(records []models.Record) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.RecentCapitalDeployed
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	return values
}

// ConcentrationRatio returns the share of total recent capital held by the
// top floor(p*N) records ranked by recent capital. The ratio is defined as 0
// when the top slice is empty or the total is 0, never NaN.
func ConcentrationRatio(records []models.Record, p float64) float64 {
	values := capitalDesc(records)

	k := int(math.Floor(p * float64(len(values))))
	if k <= 0 {
		return 0
	}
	if k > len(values) {
		k = len(values)
	}

	total := stats.Sum(values)
	if total == 0 {
		return 0
	}

	return stats.Sum(values[:k]) / total
}

// ConcentrationCurve returns the cumulative capital share per rank, records
// sorted descending by recent capital: a non-decreasing sequence ending at
// 1.0 when the total is positive. Returns nil when the total is 0.
func ConcentrationCurve(records []models.Record) []float64 {
	values := capitalDesc(records)

	total := stats.Sum(values)
	if total == 0 {
		return nil
	}

	curve := make([]float64, len(values))
	var cum float64
	for i, v := range values {
		cum += v
		curve[i] = cum / total
	}
	return curve
}
