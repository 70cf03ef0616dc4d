package query

import (
	"sort"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// sortByComposite ranks records by a weighted sum of percentile ranks of
// recent capital, capital velocity, and intent score, all computed over the
// working set itself. Ties break on fund name so the final ordering is
// independent of input order.
func sortByComposite(records []models.Record, _ features) []models.Record {
	n := len(records)
	if n == 0 {
		return records
	}

	capitals := make([]float64, n)
	velocities := make([]float64, n)
	intents := make([]float64, n)
	for i, r := range records {
		capitals[i] = r.RecentCapitalDeployed
		velocities[i] = r.CapitalVelocity
		intents[i] = r.InvestorIntentScore
	}

	capRanks := stats.PercentileRanks(capitals)
	velRanks := stats.PercentileRanks(velocities)
	intRanks := stats.PercentileRanks(intents)

	scores := make([]float64, n)
	for i := range records {
		scores[i] = weightCapital*capRanks[i] +
			weightVelocity*velRanks[i] +
			weightIntent*intRanks[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return records[ia].FundName < records[ib].FundName
	})

	out := make([]models.Record, n)
	for i, idx := range order {
		out[i] = records[idx]
	}
	return out
}
