// Package filter applies the dashboard's compound predicate to a dataset.
package filter

import (
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// EmptyResultError reports that the filters matched no records. It is
// terminal for the current render cycle; no aggregation or query step runs
// after it.
type EmptyResultError struct {
	Region models.Region
}

func (e *EmptyResultError) Error() string {
	return "no investors matched the selected filters"
}

// Apply keeps records admitted by the conjunction of the sector predicate,
// the bucket predicate, and the score threshold. The result preserves the
// original relative order of surviving records and shares no backing array
// with the input.
func Apply(ds *models.Dataset, fs models.FilterState) (*models.Dataset, error) {
	kept := make([]models.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if !fs.HasSector(r.Sector) {
			continue
		}
		if !fs.HasBucket(r.IntentBucket) {
			continue
		}
		if r.InvestorIntentScore < fs.MinScore {
			continue
		}
		kept = append(kept, r)
	}

	if len(kept) == 0 {
		return nil, &EmptyResultError{Region: ds.Region}
	}

	return &models.Dataset{Region: ds.Region, Records: kept}, nil
}
