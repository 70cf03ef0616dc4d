package analytics

import (
	"sort"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// RollupByGP groups records by normalized GP name and computes the capital
// sum plus mean intent and velocity per group. Distinct raw names that
// normalize to the same string merge into one group. Groups are returned
// sorted by name for stable output.
func RollupByGP(records []models.Record) []models.GPGroup {
	type accum struct {
		capital    float64
		intents    []float64
		velocities []float64
	}

	groups := make(map[string]*accum)
	for _, r := range records {
		g, ok := groups[r.GPName]
		if !ok {
			g = &accum{}
			groups[r.GPName] = g
		}
		g.capital += r.RecentCapitalDeployed
		g.intents = append(g.intents, r.InvestorIntentScore)
		g.velocities = append(g.velocities, r.CapitalVelocity)
	}

	result := make([]models.GPGroup, 0, len(groups))
	for name, g := range groups {
		result = append(result, models.GPGroup{
			GPName:       name,
			Capital:      g.capital,
			MeanIntent:   stats.Mean(g.intents),
			MeanVelocity: stats.Mean(g.velocities),
		})
	}

	sort.Slice(result, func(a, b int) bool {
		return result[a].GPName < result[b].GPName
	})
	return result
}
