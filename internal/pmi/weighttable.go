package pmi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// TableFile is the on-disk shape of a custom weight/deflator table. It
// names a generation and overrides any subset of that generation's default
// table; unlisted keys keep their defaults, so the aggregation logic never
// changes when a table is swapped.
type TableFile struct {
	Generation string           `yaml:"generation"`
	Classic    *ClassicTable    `yaml:"classic"`
	Calibrated *CalibratedTable `yaml:"calibrated"`
}

// LoadTable reads a YAML weight table and constructs the methodology it
// describes.
func LoadTable(path string) (Methodology, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pmi: read weight table: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable builds a methodology from YAML weight-table bytes.
func ParseTable(raw []byte) (Methodology, error) {
	classic := DefaultClassicTable()
	calibrated := DefaultCalibratedTable()
	f := TableFile{Classic: &classic, Calibrated: &calibrated}

	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("pmi: parse weight table: %w", err)
	}

	switch f.Generation {
	case GenerationClassic:
		return NewClassicWithTable(*f.Classic), nil
	case GenerationCalibrated:
		return NewCalibratedWithTable(*f.Calibrated), nil
	default:
		return nil, fmt.Errorf("pmi: weight table names unknown generation %q", f.Generation)
	}
}
