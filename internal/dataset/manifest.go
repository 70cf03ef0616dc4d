package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// manifestFile is the on-disk shape of a region manifest:
//
//	regions:
//	  CA: /srv/data/ca/investor_intent.csv
//	  NY: /srv/data/ny/investor_intent.csv
type manifestFile struct {
	Regions map[string]string `yaml:"regions"`
}

// LoadManifest reads an optional YAML manifest mapping regions to dataset
// file paths. Unknown region keys are rejected so typos fail at startup.
func LoadManifest(path string) (map[models.Region]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region manifest: %w", err)
	}

	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse region manifest: %w", err)
	}

	manifest := make(map[models.Region]string, len(mf.Regions))
	for key, p := range mf.Regions {
		region, ok := models.ParseRegion(key)
		if !ok {
			return nil, fmt.Errorf("region manifest: unknown region %q", key)
		}
		manifest[region] = p
	}
	return manifest, nil
}
