package models

import (
	"strings"
	"time"
)

// IntentBucket is the categorical intent label computed upstream from the
// investor intent score. This backend never recomputes it, only filters on it.
type IntentBucket string

const (
	BucketHot  IntentBucket = "Hot"
	BucketWarm IntentBucket = "Warm"
	BucketCold IntentBucket = "Cold"
)

// Buckets returns all intent buckets in display order.
func Buckets() []IntentBucket {
	return []IntentBucket{BucketHot, BucketWarm, BucketCold}
}

// Glyph returns the fixed display form used by the dashboard frontend.
func (b IntentBucket) Glyph() string {
	switch b {
	case BucketHot:
		return "🔥 Hot"
	case BucketWarm:
		return "🟡 Warm"
	case BucketCold:
		return "❄️ Cold"
	}
	return string(b)
}

// ParseIntentBucket accepts both the raw CSV form and the glyph-prefixed
// display form ("Hot", "🔥 Hot").
func ParseIntentBucket(s string) (IntentBucket, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(lower, "hot"):
		return BucketHot, true
	case strings.HasSuffix(lower, "warm"):
		return BucketWarm, true
	case strings.HasSuffix(lower, "cold"):
		return BucketCold, true
	}
	return "", false
}

// Region identifies one per-state dataset.
type Region string

const (
	RegionCA Region = "CA"
	RegionNY Region = "NY"
	RegionMA Region = "MA"
	RegionTX Region = "TX"
)

// Regions returns the fixed region set in selector order.
func Regions() []Region {
	return []Region{RegionCA, RegionNY, RegionMA, RegionTX}
}

// ParseRegion validates a region key.
func ParseRegion(s string) (Region, bool) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Regions() {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// ViewMode selects one of the three dashboard views.
type ViewMode string

const (
	ViewFounder       ViewMode = "founder"
	ViewInstitutional ViewMode = "institutional"
	ViewAdvanced      ViewMode = "advanced"
)

// ParseViewMode validates a view-mode key.
func ParseViewMode(s string) (ViewMode, bool) {
	v := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewFounder, ViewInstitutional, ViewAdvanced:
		return v, true
	}
	return "", false
}

// Record is one fund-filing observation. All derived metrics are precomputed
// upstream and treated as opaque numeric inputs here.
type Record struct {
	FundName          string       `json:"fundName"`
	GPName            string       `json:"gpName"`
	State             string       `json:"state"`
	Sector            string       `json:"sector"`
	FilingDate        time.Time    `json:"filingDate"`
	IntentBucket      IntentBucket `json:"intentBucket"`
	ActivelyDeploying bool         `json:"activelyDeploying"`

	TotalFundSize           float64 `json:"totalFundSize"`
	LifetimeCapitalDeployed float64 `json:"lifetimeCapitalDeployed"`
	RecentCapitalDeployed   float64 `json:"recentCapitalDeployed"`
	CapitalVelocity         float64 `json:"capitalVelocity"`
	CapitalAcceleration     float64 `json:"capitalAcceleration"`
	FundMomentum            float64 `json:"fundMomentum"`
	InvestorIntentScore     float64 `json:"investorIntentScore"`
	InvestorCount           int     `json:"investorCount"`
	DaysSinceFiling         int     `json:"daysSinceFiling"`

	WhyThisInvestor string `json:"whyThisInvestor"`
}

// Dataset is the ordered record collection for exactly one region,
// immutable once loaded.
type Dataset struct {
	Region  Region
	Records []Record
}

// Sectors returns the distinct sector values in first-seen order.
func (d *Dataset) Sectors() []string {
	seen := make(map[string]bool)
	var sectors []string
	for _, r := range d.Records {
		if r.Sector == "" || seen[r.Sector] {
			continue
		}
		seen[r.Sector] = true
		sectors = append(sectors, r.Sector)
	}
	return sectors
}
