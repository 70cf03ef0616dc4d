package models

// Display-column names used for table projections and chart column
// references. These are the canonical names produced by the dataset loader's
// rename mapping.
const (
	ColFundName          = "Fund Name"
	ColGPName            = "GP Name"
	ColState             = "State"
	ColSector            = "Sector"
	ColFilingDate        = "Filing Date"
	ColIntentBucket      = "Intent Bucket"
	ColActivelyDeploying = "Actively Deploying"
	ColTotalFundSize     = "Total Fund Size"
	ColLifetimeCapital   = "Lifetime Capital Deployed"
	ColRecentCapital     = "Recent Capital Deployed"
	ColCapitalVelocity   = "Capital Velocity"
	ColCapitalAccel      = "Capital Acceleration"
	ColFundMomentum      = "Fund Momentum"
	ColIntentScore       = "Investor Intent Score"
	ColInvestorCount     = "Investor Count"
	ColWhyThisInvestor   = "Why This Investor"
	ColDaysSinceFiling   = "Days Since Filing"
)

// TableRow is one record projected onto display columns.
type TableRow map[string]interface{}

// TableProjection is a record subset projected onto a fixed column list.
type TableProjection struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// ChartSeries is a chart-ready series: column references plus the projected
// rows backing them. Rendering semantics belong to the presentation layer.
type ChartSeries struct {
	Title string `json:"title"`
	Kind  string `json:"kind"` // "scatter" or "bar+line"
	X     string `json:"x"`
	Y     string `json:"y"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	Hover string `json:"hover,omitempty"`
	LogX  bool   `json:"logX,omitempty"`

	// Median reference lines for quadrant charts.
	RefX *float64 `json:"refX,omitempty"`
	RefY *float64 `json:"refY,omitempty"`

	Rows []TableRow `json:"rows"`
}

// SummaryMetrics are the scalar headline metrics shown on every view.
// Currency totals carry 0 decimals, medians 2 decimals.
type SummaryMetrics struct {
	ActiveFunds       int    `json:"activeFunds"`
	RecentCapital     string `json:"recentCapital"`
	MedianIntentScore string `json:"medianIntentScore"`
	UniqueFunds       int    `json:"uniqueFunds"`
}

// QuerySummary reports the outcome of one query interpretation.
type QuerySummary struct {
	Matched int      `json:"matched"`
	Message string   `json:"message"`
	Applied []string `json:"applied,omitempty"`
}

// ConcentrationStats carries the capital concentration curve and the
// top-slice share, with the share preformatted to 0-decimal percent.
type ConcentrationStats struct {
	TopShare        float64   `json:"topShare"`
	TopShareDisplay string    `json:"topShareDisplay"`
	Curve           []float64 `json:"curve"`
}

// MonthlyFlow is one calendar-month bucket of recent capital with its
// trailing 3-month rolling mean, absent for the first two buckets.
type MonthlyFlow struct {
	Month   string   `json:"month"` // YYYY-MM
	Capital float64  `json:"capital"`
	Rolling *float64 `json:"rolling,omitempty"`
}

// GPGroup is one per-identity rollup keyed by normalized GP name.
type GPGroup struct {
	GPName       string  `json:"gpName"`
	Capital      float64 `json:"capital"`
	MeanIntent   float64 `json:"meanIntent"`
	MeanVelocity float64 `json:"meanVelocity"`
}

// RenderModel is everything the presentation layer needs for one render
// cycle. Fields are populated per view mode; Notice is set (and everything
// else empty) when the filters matched no records.
type RenderModel struct {
	Region Region   `json:"region"`
	View   ViewMode `json:"view"`
	Notice string   `json:"notice,omitempty"`

	Metrics      *SummaryMetrics  `json:"metrics,omitempty"`
	Table        *TableProjection `json:"table,omitempty"`
	QuerySummary *QuerySummary    `json:"querySummary,omitempty"`
	Charts       []ChartSeries    `json:"charts,omitempty"`

	Concentration  *ConcentrationStats `json:"concentration,omitempty"`
	GPRollup       []GPGroup           `json:"gpRollup,omitempty"`
	MonthlyFlow    []MonthlyFlow       `json:"monthlyFlow,omitempty"`
	TopShare       string              `json:"topShare,omitempty"`
	FastMoverCount *int                `json:"fastMoverCount,omitempty"`
	AnomalyCount   *int                `json:"anomalyCount,omitempty"`
}
