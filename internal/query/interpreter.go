// Package query interprets a free-text instruction into a deterministic
// sequence of filter/sort/limit transforms over an already-filtered record
// set. It never touches the dashboard's FilterState.
package query

import (
	"sort"
	"strings"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// topK is the truncation size applied by the urgency step.
const topK = 5

// Composite-rank weights over percentile ranks of recent capital, capital
// velocity, and intent score.
const (
	weightCapital  = 0.45
	weightVelocity = 0.35
	weightIntent   = 0.20
)

// step is one named transform in the interpretation pipeline. match decides
// from the scanned features whether the step applies; apply is a pure
// Subset -> Subset function.
type step struct {
	name  string
	match func(f features) bool
	apply func(records []models.Record, f features) []models.Record
}

// steps is the fixed pipeline, in priority order. The match conditions
// encode the override semantics: the composite step claims the ordering when
// both a largeness and a speed keyword are present, in which case the plain
// size and speed sorts do not run.
var steps = []step{
	{
		name:  "sector",
		match: func(f features) bool { return f.sector != "" },
		apply: narrowSector,
	},
	{
		name:  "size-sort",
		match: func(f features) bool { return f.large && !f.fast },
		apply: sortByCapital,
	},
	{
		name:  "speed-sort",
		match: func(f features) bool { return f.fast && !f.large },
		apply: sortByVelocity,
	},
	{
		name:  "composite-rank",
		match: func(f features) bool { return f.large && f.fast },
		apply: sortByComposite,
	},
	{
		name:  "hot-only",
		match: func(f features) bool { return f.hot },
		apply: narrowBucket(models.BucketHot),
	},
	{
		name:  "warm-only",
		match: func(f features) bool { return f.warm },
		apply: narrowBucket(models.BucketWarm),
	},
	{
		name:  "cold-only",
		match: func(f features) bool { return f.cold },
		apply: narrowBucket(models.BucketCold),
	},
	{
		name:  "top-k",
		match: func(f features) bool { return f.urgency },
		apply: truncate,
	},
}

// Result is the outcome of one interpretation.
type Result struct {
	Records []models.Record
	// Applied lists the names of the steps that ran, in order.
	Applied []string
	// Interpreted is false when the query text was empty, in which case
	// Records equals the input unchanged and no summary is produced.
	Interpreted bool
}

// Matched returns the result cardinality.
func (r Result) Matched() int {
	return len(r.Records)
}

// Interpret runs the step pipeline over records. Each step re-derives the
// working set from the prior step's result. The input slice is never
// mutated.
func Interpret(records []models.Record, queryText string) Result {
	if strings.TrimSpace(queryText) == "" {
		return Result{Records: records}
	}

	f := scanQuery(queryText)

	temp := records
	var applied []string
	for _, s := range steps {
		if !s.match(f) {
			continue
		}
		temp = s.apply(temp, f)
		applied = append(applied, s.name)
	}

	return Result{Records: temp, Applied: applied, Interpreted: true}
}

func narrowSector(records []models.Record, f features) []models.Record {
	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Sector), f.sector) {
			kept = append(kept, r)
		}
	}
	return kept
}

func narrowBucket(bucket models.IntentBucket) func([]models.Record, features) []models.Record {
	return func(records []models.Record, _ features) []models.Record {
		kept := make([]models.Record, 0, len(records))
		for _, r := range records {
			if r.IntentBucket == bucket {
				kept = append(kept, r)
			}
		}
		return kept
	}
}

func sortByCapital(records []models.Record, _ features) []models.Record {
	out := clone(records)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].RecentCapitalDeployed > out[b].RecentCapitalDeployed
	})
	return out
}

func sortByVelocity(records []models.Record, _ features) []models.Record {
	out := clone(records)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CapitalVelocity > out[b].CapitalVelocity
	})
	return out
}

func truncate(records []models.Record, _ features) []models.Record {
	if len(records) <= topK {
		return records
	}
	return records[:topK]
}

func clone(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)
	return out
}
