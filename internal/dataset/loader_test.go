package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

const testCSVHeader = "issuer_name,issuer_state,fund_vertical,intent_bucket,actively_deploying," +
	"offering_amount_total,total_amount_sold,decayed_amount_sold,sale_velocity,sale_acceleration," +
	"fund_momentum,investor_intent_score,related_person_name,number_of_investors,why_investor," +
	"days_since_filing,filing_date,unmapped_extra\n"

func writeRegionCSV(t *testing.T, dir string, region models.Region, rows string) {
	t.Helper()
	regionDir := filepath.Join(dir, string(region))
	require.NoError(t, os.MkdirAll(regionDir, 0o755))
	path := filepath.Join(regionDir, DatasetFileName)
	require.NoError(t, os.WriteFile(path, []byte(testCSVHeader+rows), 0o644))
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeRegionCSV(t, dir, models.RegionCA,
		"Alpha Fund,CA,AI,🔥 Hot,1,1000000,500000,250000,1.5,0.2,0.7,0.88,johnSmith,12,Strong recent deployment,30,2025-03-14,ignored\n"+
			"Beta Fund,CA,Fintech,Cold,0,2000000,100000,50000,0.3,-0.1,0.2,0.41,jane_doe,4,Slowing down,120,2025-01-02,ignored\n")

	loader := NewLoader(dir, nil, nil)
	ds, err := loader.Load(models.RegionCA)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, models.RegionCA, ds.Region)

	r := ds.Records[0]
	assert.Equal(t, "Alpha Fund", r.FundName)
	assert.Equal(t, "John Smith", r.GPName)
	assert.Equal(t, "AI", r.Sector)
	assert.Equal(t, models.BucketHot, r.IntentBucket)
	assert.True(t, r.ActivelyDeploying)
	assert.Equal(t, 250000.0, r.RecentCapitalDeployed)
	assert.Equal(t, 1.5, r.CapitalVelocity)
	assert.Equal(t, 0.88, r.InvestorIntentScore)
	assert.Equal(t, 12, r.InvestorCount)
	assert.Equal(t, 30, r.DaysSinceFiling)
	assert.Equal(t, "2025-03-14", r.FilingDate.Format("2006-01-02"))

	assert.Equal(t, models.BucketCold, ds.Records[1].IntentBucket)
	assert.Equal(t, "Jane Doe", ds.Records[1].GPName)
}

func TestLoaderDropsMalformedDates(t *testing.T) {
	dir := t.TempDir()
	writeRegionCSV(t, dir, models.RegionNY,
		"Good Fund,NY,SaaS,Warm,1,1,1,1,1,0,0,0.5,gp,1,why,10,2025-02-01,x\n"+
			"Bad Fund,NY,SaaS,Warm,1,1,1,1,1,0,0,0.5,gp,1,why,10,not-a-date,x\n")

	loader := NewLoader(dir, nil, nil)
	ds, err := loader.Load(models.RegionNY)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Good Fund", ds.Records[0].FundName)
}

func TestLoaderMissingRegion(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil, nil)

	_, err := loader.Load(models.RegionTX)
	var missing *MissingDataError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, models.RegionTX, missing.Region)
}

func TestLoaderManifestOverride(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.csv")
	require.NoError(t, os.WriteFile(custom, []byte(testCSVHeader+
		"Manifest Fund,MA,Health,Hot,1,1,1,1,1,0,0,0.9,gp,1,why,5,2025-04-01,x\n"), 0o644))

	loader := NewLoader(dir, map[models.Region]string{models.RegionMA: custom}, nil)
	ds, err := loader.Load(models.RegionMA)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Manifest Fund", ds.Records[0].FundName)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions:\n  CA: /srv/ca.csv\n  ny: /srv/ny.csv\n"), 0o644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ca.csv", manifest[models.RegionCA])
	assert.Equal(t, "/srv/ny.csv", manifest[models.RegionNY])
}

func TestLoadManifestRejectsUnknownRegion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions:\n  ZZ: /srv/zz.csv\n"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestCacheAvoidsReparsing(t *testing.T) {
	dir := t.TempDir()
	writeRegionCSV(t, dir, models.RegionCA,
		"Alpha Fund,CA,AI,Hot,1,1,1,1,1,0,0,0.9,gp,1,why,5,2025-04-01,x\n")

	loader := NewLoader(dir, nil, nil)
	loads := 0
	loader.OnLoad(func(string, error) { loads++ })

	cache := NewCache(loader)
	first, err := cache.Get(models.RegionCA)
	require.NoError(t, err)
	second, err := cache.Get(models.RegionCA)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)

	// Reload parses again wholesale.
	_, err = cache.Reload(models.RegionCA)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir, nil, nil)
	cache := NewCache(loader)

	_, err := cache.Get(models.RegionCA)
	require.Error(t, err)

	writeRegionCSV(t, dir, models.RegionCA,
		"Alpha Fund,CA,AI,Hot,1,1,1,1,1,0,0,0.9,gp,1,why,5,2025-04-01,x\n")

	ds, err := cache.Get(models.RegionCA)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 1)
}
