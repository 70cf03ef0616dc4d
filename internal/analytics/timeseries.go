package analytics

import (
	"time"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// MonthlyBucket is one calendar-month sum of recent capital. Rolling is the
// trailing 3-bucket simple moving average; it stays nil until three buckets
// (including this one) are available.
type MonthlyBucket struct {
	Month   time.Time
	Capital float64
	Rolling *float64
}

const rollingWindow = 3

func monthKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyCapitalFlow groups records into calendar-month buckets by filing
// date and sums recent capital per bucket. Buckets are contiguous from the
// first to the last filing month; months without filings sum to 0.
func MonthlyCapitalFlow(records []models.Record) []MonthlyBucket {
	if len(records) == 0 {
		return nil
	}

	sums := make(map[time.Time]float64)
	var first, last time.Time
	for i, r := range records {
		m := monthKey(r.FilingDate)
		sums[m] += r.RecentCapitalDeployed
		if i == 0 || m.Before(first) {
			first = m
		}
		if i == 0 || m.After(last) {
			last = m
		}
	}

	var buckets []MonthlyBucket
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		buckets = append(buckets, MonthlyBucket{Month: m, Capital: sums[m]})
	}

	for i := range buckets {
		if i < rollingWindow-1 {
			continue
		}
		var sum float64
		for j := i - rollingWindow + 1; j <= i; j++ {
			sum += buckets[j].Capital
		}
		mean := sum / rollingWindow
		buckets[i].Rolling = &mean
	}

	return buckets
}
