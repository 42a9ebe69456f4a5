package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RateTable maps a policy year (1..16) to a rate.
type RateTable map[int]decimal.Decimal

// Lookup returns the rate for year, or zero when the year is absent.
func (rt RateTable) Lookup(year int) decimal.Decimal {
	if rate, ok := rt[year]; ok {
		return rate
	}
	return decimal.Zero
}

// Years returns the populated years in ascending order.
func (rt RateTable) Years() []int {
	years := make([]int, 0, len(rt))
	for y := range rt {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// UnmarshalYAML parses year keys and decimal values from their scalar text.
func (rt *RateTable) UnmarshalYAML(value *yaml.Node) error {
	var raw map[int]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	table := make(RateTable, len(raw))
	for year, text := range raw {
		rate, err := decimal.NewFromString(text)
		if err != nil {
			return fmt.Errorf("year %d: invalid rate %q: %w", year, text, err)
		}
		table[year] = rate
	}
	*rt = table
	return nil
}

// RateTables holds the four product rate schedules. Tables are read-only once loaded.
type RateTables struct {
	Cashback               RateTable `yaml:"cashback" json:"cashback"`
	SurrenderPer1000       RateTable `yaml:"surrender_per_1000" json:"surrender_per_1000"`
	SurrenderDividendRates RateTable `yaml:"surrender_dividend" json:"surrender_dividend"`
	DeathBenefit           RateTable `yaml:"death_benefit" json:"death_benefit"`
}

// CashbackRate returns the cashback rate for year, zero when absent.
func (t *RateTables) CashbackRate(year int) decimal.Decimal {
	return t.Cashback.Lookup(year)
}

// SurrenderPer1000Rate returns the surrender value per 1000 sum assured, zero when absent.
func (t *RateTables) SurrenderPer1000Rate(year int) decimal.Decimal {
	return t.SurrenderPer1000.Lookup(year)
}

// SurrenderDividendRate returns the surrender dividend percentage, zero when absent.
func (t *RateTables) SurrenderDividendRate(year int) decimal.Decimal {
	return t.SurrenderDividendRates.Lookup(year)
}

// DeathBenefitRate returns the death benefit rate for year. A missing year falls
// back to the year 6 plateau rate, and to zero if that is missing too.
func (t *RateTables) DeathBenefitRate(year int) decimal.Decimal {
	if rate, ok := t.DeathBenefit[year]; ok {
		return rate
	}
	return t.DeathBenefit.Lookup(PayingYears)
}
