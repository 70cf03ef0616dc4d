package service

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/stats"
)

// summaryMetrics computes the headline metrics shown on every view.
func summaryMetrics(records []models.Record) *models.SummaryMetrics {
	active := 0
	var recentTotal float64
	scores := make([]float64, len(records))
	funds := make(map[string]bool)

	for i, r := range records {
		if r.ActivelyDeploying {
			active++
		}
		recentTotal += r.RecentCapitalDeployed
		scores[i] = r.InvestorIntentScore
		funds[r.FundName] = true
	}

	return &models.SummaryMetrics{
		ActiveFunds:       active,
		RecentCapital:     formatCurrency(recentTotal),
		MedianIntentScore: formatScore(stats.Median(scores)),
		UniqueFunds:       len(funds),
	}
}

// projectRecords projects records onto the given display columns.
func projectRecords(records []models.Record, columns []string) []models.TableRow {
	rows := make([]models.TableRow, len(records))
	for i, r := range records {
		row := make(models.TableRow, len(columns))
		for _, col := range columns {
			row[col] = columnValue(r, col)
		}
		rows[i] = row
	}
	return rows
}

func columnValue(r models.Record, col string) interface{} {
	switch col {
	case models.ColFundName:
		return r.FundName
	case models.ColGPName:
		return r.GPName
	case models.ColState:
		return r.State
	case models.ColSector:
		return r.Sector
	case models.ColFilingDate:
		return r.FilingDate.Format("2006-01-02")
	case models.ColIntentBucket:
		return r.IntentBucket.Glyph()
	case models.ColActivelyDeploying:
		return r.ActivelyDeploying
	case models.ColTotalFundSize:
		return r.TotalFundSize
	case models.ColLifetimeCapital:
		return r.LifetimeCapitalDeployed
	case models.ColRecentCapital:
		return r.RecentCapitalDeployed
	case models.ColCapitalVelocity:
		return r.CapitalVelocity
	case models.ColCapitalAccel:
		return r.CapitalAcceleration
	case models.ColFundMomentum:
		return r.FundMomentum
	case models.ColIntentScore:
		return r.InvestorIntentScore
	case models.ColInvestorCount:
		return r.InvestorCount
	case models.ColWhyThisInvestor:
		return r.WhyThisInvestor
	case models.ColDaysSinceFiling:
		return r.DaysSinceFiling
	}
	return nil
}

func projectRollup(groups []models.GPGroup) []models.TableRow {
	rows := make([]models.TableRow, len(groups))
	for i, g := range groups {
		rows[i] = models.TableRow{
			models.ColGPName:        g.GPName,
			"Mean Capital Velocity": g.MeanVelocity,
			"Mean Intent Score":     g.MeanIntent,
			models.ColRecentCapital: g.Capital,
		}
	}
	return rows
}

func projectMonthly(flow []models.MonthlyFlow) []models.TableRow {
	rows := make([]models.TableRow, len(flow))
	for i, b := range flow {
		row := models.TableRow{
			"Month":                 b.Month,
			models.ColRecentCapital: b.Capital,
		}
		if b.Rolling != nil {
			row["3M Rolling Mean"] = *b.Rolling
		}
		rows[i] = row
	}
	return rows
}

func head(records []models.Record, n int) []models.Record {
	if len(records) <= n {
		return records
	}
	return records[:n]
}

// formatCurrency renders a capital total to 0 decimals with grouping.
func formatCurrency(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 0)
}

// formatPercent renders a 0-1 ratio to a 0-decimal percentage.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// formatScore renders a score to 2 decimals.
func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
