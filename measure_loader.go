package chinese

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Measure catalogs let a caller declare named measure tables as data:
// an ordered list of scales with divisor, unit logograms and zero
// policy. The loader mirrors the shape used for other declarative
// catalogs in this codebase: read, decode, validate, wrap errors with
// the file path.

type measureCatalogFile struct {
	Measures []measureSpec `yaml:"measures"`
}

type measureSpec struct {
	Name   string      `yaml:"name"`
	Scales []scaleSpec `yaml:"scales"`
}

type scaleSpec struct {
	Divisor     uint64 `yaml:"divisor"`
	Unit        string `yaml:"unit"`
	Traditional string `yaml:"unit_traditional"`
	Zero        string `yaml:"zero"`
}

// LoadMeasureTables decodes a YAML catalog of measure definitions.
func LoadMeasureTables(data []byte) (map[string]*MeasureTable, error) {
	var file measureCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("chinese: decode measure catalog: %w", err)
	}

	tables := make(map[string]*MeasureTable, len(file.Measures))
	for _, spec := range file.Measures {
		if spec.Name == "" {
			return nil, fmt.Errorf("chinese: measure catalog entry without a name")
		}
		if _, exists := tables[spec.Name]; exists {
			return nil, fmt.Errorf("chinese: duplicate measure %q", spec.Name)
		}

		scales := make([]Scale, 0, len(spec.Scales))
		for _, sc := range spec.Scales {
			policy, err := parseZeroPolicy(sc.Zero)
			if err != nil {
				return nil, fmt.Errorf("chinese: measure %q: %w", spec.Name, err)
			}
			traditional := sc.Traditional
			if traditional == "" {
				traditional = sc.Unit
			}
			scales = append(scales, Scale{
				Divisor: sc.Divisor,
				Unit:    Pair{Simplified: sc.Unit, Traditional: traditional},
				Zero:    policy,
			})
		}

		table, err := NewMeasureTable(scales...)
		if err != nil {
			return nil, fmt.Errorf("chinese: measure %q: %w", spec.Name, err)
		}
		tables[spec.Name] = table
	}

	return tables, nil
}

// LoadMeasureTableFiles reads and merges one or more YAML catalogs.
func LoadMeasureTableFiles(paths ...string) (map[string]*MeasureTable, error) {
	merged := make(map[string]*MeasureTable)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("chinese: read %s: %w", path, err)
		}
		tables, err := LoadMeasureTables(data)
		if err != nil {
			return nil, fmt.Errorf("chinese: %s: %w", path, err)
		}
		for name, table := range tables {
			if _, exists := merged[name]; exists {
				return nil, fmt.Errorf("chinese: %s: duplicate measure %q", path, name)
			}
			merged[name] = table
		}
	}
	return merged, nil
}

func parseZeroPolicy(raw string) (ZeroPolicy, error) {
	switch raw {
	case "", "omit":
		return OmitZero, nil
	case "gap":
		return GapZero, nil
	case "keep":
		return KeepZero, nil
	default:
		return OmitZero, fmt.Errorf("unknown zero policy %q", raw)
	}
}
