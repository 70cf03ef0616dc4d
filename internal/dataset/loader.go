// Package dataset loads per-region fund-filing CSVs into normalized
// in-memory datasets.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// DatasetFileName is the fixed upstream CSV name inside each region folder.
const DatasetFileName = "SEC_FORMD_2025_VC_INVESTOR_INTENT_FINAL.csv"

// Raw column names produced upstream. Any raw column not listed here is
// dropped from the canonical view.
const (
	colIssuerName        = "issuer_name"
	colIssuerState       = "issuer_state"
	colFundVertical      = "fund_vertical"
	colIntentBucket      = "intent_bucket"
	colActivelyDeploying = "actively_deploying"
	colOfferingTotal     = "offering_amount_total"
	colTotalSold         = "total_amount_sold"
	colDecayedSold       = "decayed_amount_sold"
	colSaleVelocity      = "sale_velocity"
	colSaleAcceleration  = "sale_acceleration"
	colFundMomentum      = "fund_momentum"
	colIntentScore       = "investor_intent_score"
	colRelatedPerson     = "related_person_name"
	colInvestorCount     = "number_of_investors"
	colWhyInvestor       = "why_investor"
	colDaysSinceFiling   = "days_since_filing"
	colFilingDate        = "filing_date"
)

// MissingDataError reports that a region has no backing file. It is a
// terminal, user-visible condition for that region.
type MissingDataError struct {
	Region models.Region
	Path   string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no dataset file for region %s at %s", e.Region, e.Path)
}

// Loader reads per-region CSV files into Datasets.
type Loader struct {
	dataPath string
	manifest map[models.Region]string
	log      *zap.Logger
	onLoad   func(region string, err error)
}

// NewLoader creates a loader rooted at dataPath. The manifest, when
// non-nil, overrides the <dataPath>/<REGION>/<DatasetFileName> convention
// per region.
func NewLoader(dataPath string, manifest map[models.Region]string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		dataPath: dataPath,
		manifest: manifest,
		log:      log,
	}
}

// OnLoad installs an observer invoked after every load attempt, e.g. for
// metrics.
func (l *Loader) OnLoad(fn func(region string, err error)) {
	l.onLoad = fn
}

// FilePath resolves the backing file for a region.
func (l *Loader) FilePath(region models.Region) string {
	if p, ok := l.manifest[region]; ok && p != "" {
		return p
	}
	return filepath.Join(l.dataPath, string(region), DatasetFileName)
}

// Load reads and normalizes the dataset for a region. A missing file yields
// *MissingDataError; rows with malformed filing dates are dropped with a
// warning, never silently coerced.
func (l *Loader) Load(region models.Region) (ds *models.Dataset, err error) {
	if l.onLoad != nil {
		defer func() { l.onLoad(string(region), err) }()
	}

	path := l.FilePath(region)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingDataError{Region: region, Path: path}
		}
		return nil, fmt.Errorf("open dataset for region %s: %w", region, err)
	}
	defer f.Close()

	records, dropped, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset for region %s: %w", region, err)
	}
	if dropped > 0 {
		l.log.Warn("dropped rows with malformed filing dates",
			zap.String("region", string(region)),
			zap.Int("dropped", dropped),
		)
	}

	l.log.Info("dataset loaded",
		zap.String("region", string(region)),
		zap.Int("records", len(records)),
	)

	return &models.Dataset{Region: region, Records: records}, nil
}

// parseCSV reads all rows, applying the raw-to-canonical field mapping and
// the GP-name normalization. Returns the parsed records and the count of
// rows dropped for malformed dates.
func parseCSV(r io.Reader) ([]models.Record, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx[colFilingDate]; !ok {
		return nil, 0, fmt.Errorf("missing required column %q", colFilingDate)
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []models.Record
	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}

		date, err := parseFilingDate(field(row, colFilingDate))
		if err != nil {
			dropped++
			continue
		}

		bucket, _ := models.ParseIntentBucket(field(row, colIntentBucket))

		records = append(records, models.Record{
			FundName:          field(row, colIssuerName),
			GPName:            NormalizeGPName(field(row, colRelatedPerson)),
			State:             field(row, colIssuerState),
			Sector:            field(row, colFundVertical),
			FilingDate:        date,
			IntentBucket:      bucket,
			ActivelyDeploying: parseBool(field(row, colActivelyDeploying)),

			TotalFundSize:           parseFloat(field(row, colOfferingTotal)),
			LifetimeCapitalDeployed: parseFloat(field(row, colTotalSold)),
			RecentCapitalDeployed:   parseFloat(field(row, colDecayedSold)),
			CapitalVelocity:         parseFloat(field(row, colSaleVelocity)),
			CapitalAcceleration:     parseFloat(field(row, colSaleAcceleration)),
			FundMomentum:            parseFloat(field(row, colFundMomentum)),
			InvestorIntentScore:     parseFloat(field(row, colIntentScore)),
			InvestorCount:           parseInt(field(row, colInvestorCount)),
			DaysSinceFiling:         parseInt(field(row, colDaysSinceFiling)),

			WhyThisInvestor: field(row, colWhyInvestor),
		})
	}

	return records, dropped, nil
}

var filingDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

func parseFilingDate(s string) (time.Time, error) {
	for _, layout := range filingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable filing date %q", s)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	// Upstream sometimes emits integer columns as floats ("12.0").
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return int(parseFloat(s))
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y", "1.0":
		return true
	}
	return false
}
