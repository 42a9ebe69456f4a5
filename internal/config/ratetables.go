package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rpgo/endowment-irr/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/default_rates.yaml
var defaultRatesYAML []byte

// DefaultRateTables returns the embedded illustrative rate schedule.
func DefaultRateTables() (*domain.RateTables, error) {
	tables, err := ParseRateTables(defaultRatesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded rate tables: %w", err)
	}
	return tables, nil
}

// LoadRateTables reads rate tables from filename, or the embedded default when
// filename is empty.
func LoadRateTables(filename string) (*domain.RateTables, error) {
	if filename == "" {
		return DefaultRateTables()
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate tables %s: %w", filename, err)
	}
	return ParseRateTables(data)
}

// ParseRateTables decodes and checks a YAML rate schedule.
func ParseRateTables(data []byte) (*domain.RateTables, error) {
	var tables domain.RateTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rate tables YAML: %w", err)
	}
	if err := ValidateRateTables(&tables); err != nil {
		return nil, fmt.Errorf("rate tables validation failed: %w", err)
	}
	return &tables, nil
}

// ValidateRateTables rejects years outside the policy term. Missing years are
// allowed and resolve to the lookup defaults.
func ValidateRateTables(tables *domain.RateTables) error {
	named := []struct {
		name  string
		table domain.RateTable
	}{
		{"cashback", tables.Cashback},
		{"surrender_per_1000", tables.SurrenderPer1000},
		{"surrender_dividend", tables.SurrenderDividendRates},
		{"death_benefit", tables.DeathBenefit},
	}
	for _, n := range named {
		for year := range n.table {
			if year < 1 || year > domain.PolicyTermYears {
				return fmt.Errorf("%s: policy year %d outside 1..%d", n.name, year, domain.PolicyTermYears)
			}
		}
	}
	return nil
}

// MarshalRateTables renders tables back to YAML.
func MarshalRateTables(tables *domain.RateTables) ([]byte, error) {
	return yaml.Marshal(tables)
}
