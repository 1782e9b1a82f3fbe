package storage

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"onebeat/scout/pkg/intel"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset is the on-disk shape of a full store snapshot. Ids are not part
// of the file format; Replace assigns them from 1 in file order.
type Dataset struct {
	Competitors    []intel.Competitor    `yaml:"competitors"`
	Capabilities   []intel.Capability    `yaml:"capabilities"`
	MarketSegments []intel.MarketSegment `yaml:"marketSegments"`
}

// Seed returns the embedded seed dataset.
func Seed() (*Dataset, error) {
	return parseDataset(seedYAML)
}

// LoadDatasetFile reads and parses a dataset override file from disk.
func LoadDatasetFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	ds, err := parseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %w", path, err)
	}
	return ds, nil
}

func parseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("unmarshaling dataset: %w", err)
	}
	for i, c := range ds.Competitors {
		if err := intel.ValidateCompetitor(c); err != nil {
			return nil, fmt.Errorf("competitor %d (%s): %w", i, c.Name, err)
		}
	}
	for i, c := range ds.Capabilities {
		if err := intel.ValidateCapability(c); err != nil {
			return nil, fmt.Errorf("capability %d (%s): %w", i, c.Name, err)
		}
	}
	for i, s := range ds.MarketSegments {
		if err := intel.ValidateMarketSegment(s); err != nil {
			return nil, fmt.Errorf("market segment %d (%s): %w", i, s.Name, err)
		}
	}
	return &ds, nil
}
