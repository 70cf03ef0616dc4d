package analytics

import (
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// anomalyScoreFloor is the intent-score bound above which a fund with
// below-median recent deployment counts as an anomaly.
const anomalyScoreFloor = 0.75

// FastMoverCount counts records whose capital velocity is at or above the
// q-th quantile of capital velocity over the same record set.
func FastMoverCount(records []models.Record, q float64) int {
	if len(records) == 0 {
		return 0
	}

	velocities := make([]float64, len(records))
	for i, r := range records {
		velocities[i] = r.CapitalVelocity
	}
	threshold := stats.Quantile(velocities, q)

	count := 0
	for _, v := range velocities {
		if v >= threshold {
			count++
		}
	}
	return count
}

// AnomalyCount counts high-intent funds with below-median recent deployment:
// intent score strictly above 0.75 and recent capital strictly below the
// median of the same record set.
func AnomalyCount(records []models.Record) int {
	if len(records) == 0 {
		return 0
	}

	capitals := make([]float64, len(records))
	for i, r := range records {
		capitals[i] = r.RecentCapitalDeployed
	}
	median := stats.Median(capitals)

	count := 0
	for _, r := range records {
		if r.InvestorIntentScore > anomalyScoreFloor && r.RecentCapitalDeployed < median {
			count++
		}
	}
	return count
}
