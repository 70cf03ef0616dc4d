package models

// FilterState is the active compound predicate, rebuilt from user input on
// every interaction; it has no persistence. Empty sector/bucket sets keep all
// records (OR semantics within a non-empty set). The score threshold is
// always active.
type FilterState struct {
	Sectors  []string       `json:"sectors"`
	Buckets  []IntentBucket `json:"buckets"`
	MinScore float64        `json:"minScore"` // inclusive, range [0,1]
}

// DefaultFilterState mirrors the dashboard's preselected controls: Hot and
// Warm buckets, all sectors, and the configured score threshold.
func DefaultFilterState(minScore float64) FilterState {
	return FilterState{
		Buckets:  []IntentBucket{BucketHot, BucketWarm},
		MinScore: minScore,
	}
}

// HasSector reports whether the sector set admits the given sector.
func (f FilterState) HasSector(sector string) bool {
	if len(f.Sectors) == 0 {
		return true
	}
	for _, s := range f.Sectors {
		if s == sector {
			return true
		}
	}
	return false
}

// HasBucket reports whether the bucket set admits the given bucket.
func (f FilterState) HasBucket(bucket IntentBucket) bool {
	if len(f.Buckets) == 0 {
		return true
	}
	for _, b := range f.Buckets {
		if b == bucket {
			return true
		}
	}
	return false
}
