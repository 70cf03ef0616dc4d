package service

import (
	"fmt"
	"sort"

	"github.com/signaldeck/signaldeck-backend-go/internal/analytics"
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/query"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// founderColumns is the table projection shown under the query box.
var founderColumns = []string{
	models.ColFundName,
	models.ColSector,
	models.ColIntentScore,
	models.ColRecentCapital,
	models.ColWhyThisInvestor,
}

// deploymentColumns back the capital-deployment scatter charts.
var deploymentColumns = []string{
	models.ColFundName,
	models.ColCapitalVelocity,
	models.ColRecentCapital,
	models.ColInvestorCount,
	models.ColIntentBucket,
}

const (
	topShareFraction  = 0.10
	fastMoverQuantile = 0.90
	founderChartLimit = 50
	topFundsLimit     = 20
)

func buildFounder(m *models.RenderModel, records []models.Record, queryText string) {
	res := query.Interpret(records, queryText)
	if res.Interpreted {
		m.QuerySummary = &models.QuerySummary{
			Matched: res.Matched(),
			Message: fmt.Sprintf("SignalDeck suggests prioritizing %d funds.", res.Matched()),
			Applied: res.Applied,
		}
		m.Table = &models.TableProjection{
			Columns: founderColumns,
			Rows:    projectRecords(res.Records, founderColumns),
		}
	}

	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Active Funds Deployment",
		Kind:  "scatter",
		X:     models.ColCapitalVelocity,
		Y:     models.ColRecentCapital,
		Size:  models.ColInvestorCount,
		Color: models.ColIntentBucket,
		Hover: models.ColFundName,
		Rows:  projectRecords(head(res.Records, founderChartLimit), deploymentColumns),
	})
}

func buildInstitutional(m *models.RenderModel, records []models.Record) {
	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Capital Deployment Map",
		Kind:  "scatter",
		X:     models.ColCapitalVelocity,
		Y:     models.ColRecentCapital,
		Size:  models.ColInvestorCount,
		Color: models.ColIntentBucket,
		Hover: models.ColFundName,
		Rows:  projectRecords(records, deploymentColumns),
	})

	topShare := analytics.ConcentrationRatio(records, topShareFraction)
	m.Concentration = &models.ConcentrationStats{
		TopShare:        topShare,
		TopShareDisplay: formatPercent(topShare),
		Curve:           analytics.ConcentrationCurve(records),
	}

	m.GPRollup = analytics.RollupByGP(records)
	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "GP Influence & Capital Concentration",
		Kind:  "scatter",
		X:     "Mean Capital Velocity",
		Y:     "Mean Intent Score",
		Size:  models.ColRecentCapital,
		Hover: models.ColGPName,
		Rows:  projectRollup(m.GPRollup),
	})
}

func buildAdvanced(m *models.RenderModel, records []models.Record) {
	daysMedian := stats.Median(collect(records, func(r models.Record) float64 {
		return float64(r.DaysSinceFiling)
	}))
	momentumMedian := stats.Median(collect(records, func(r models.Record) float64 {
		return r.FundMomentum
	}))

	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Momentum vs Recency",
		Kind:  "scatter",
		X:     models.ColDaysSinceFiling,
		Y:     models.ColFundMomentum,
		Color: models.ColActivelyDeploying,
		Hover: models.ColFundName,
		RefX:  &daysMedian,
		RefY:  &momentumMedian,
		Rows: projectRecords(records, []string{
			models.ColFundName,
			models.ColDaysSinceFiling,
			models.ColFundMomentum,
			models.ColActivelyDeploying,
		}),
	})

	m.MonthlyFlow = monthlyFlow(analytics.MonthlyCapitalFlow(records))
	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Investor Intent Over Time",
		Kind:  "bar+line",
		X:     "Month",
		Y:     models.ColRecentCapital,
		Rows:  projectMonthly(m.MonthlyFlow),
	})

	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Fund Momentum vs Fund Size",
		Kind:  "scatter",
		X:     models.ColTotalFundSize,
		Y:     models.ColFundMomentum,
		Size:  models.ColInvestorCount,
		Color: models.ColCapitalVelocity,
		Hover: models.ColFundName,
		LogX:  true,
		Rows: projectRecords(records, []string{
			models.ColFundName,
			models.ColTotalFundSize,
			models.ColFundMomentum,
			models.ColInvestorCount,
			models.ColCapitalVelocity,
		}),
	})

	m.Charts = append(m.Charts, models.ChartSeries{
		Title: "Capital Velocity vs Time (Top 20 Funds)",
		Kind:  "scatter",
		X:     models.ColFilingDate,
		Y:     models.ColCapitalVelocity,
		Size:  models.ColTotalFundSize,
		Color: models.ColIntentScore,
		Hover: models.ColFundName,
		Rows: projectRecords(topByIntent(records, topFundsLimit), []string{
			models.ColFundName,
			models.ColFilingDate,
			models.ColCapitalVelocity,
			models.ColTotalFundSize,
			models.ColIntentScore,
		}),
	})

	m.TopShare = formatPercent(analytics.ConcentrationRatio(records, topShareFraction))
	fast := analytics.FastMoverCount(records, fastMoverQuantile)
	m.FastMoverCount = &fast
	anomalies := analytics.AnomalyCount(records)
	m.AnomalyCount = &anomalies
}

// topByIntent returns the n records with the highest intent score, ties
// keeping input order.
func topByIntent(records []models.Record, n int) []models.Record {
	out := make([]models.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].InvestorIntentScore > out[b].InvestorIntentScore
	})
	return head(out, n)
}

func collect(records []models.Record, f func(models.Record) float64) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = f(r)
	}
	return values
}

func monthlyFlow(buckets []analytics.MonthlyBucket) []models.MonthlyFlow {
	flow := make([]models.MonthlyFlow, len(buckets))
	for i, b := range buckets {
		flow[i] = models.MonthlyFlow{
			Month:   b.Month.Format("2006-01"),
			Capital: b.Capital,
			Rolling: b.Rolling,
		}
	}
	return flow
}
