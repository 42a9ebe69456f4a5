package domain

import (
	"github.com/shopspring/decimal"
)

// Fixed product structure: a 16 year contract with premiums due in the first 6 years.
const (
	PolicyTermYears = 16
	PayingYears     = 6
)

// Product thresholds enforced by the input layer, not by the projection engine.
var (
	MinSumAssured = decimal.NewFromInt(20000)
	MinPremium    = decimal.NewFromInt(20000)
	MaxEntryAge   = 70
)

// DividendBaseFactor is the share of cumulative premium that earns the notional return.
var DividendBaseFactor = decimal.NewFromFloat(0.8)

// PolicyInputs holds the policyholder figures for a single projection run.
// ExpectedReturn and TaxBase are percentages (5 means 5%).
type PolicyInputs struct {
	Age            int             `yaml:"age" json:"age"`
	ExpectedReturn decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	TaxBase        decimal.Decimal `yaml:"tax_base" json:"tax_base"`
	SumAssured     decimal.Decimal `yaml:"sum_assured" json:"sum_assured"`
	Premium        decimal.Decimal `yaml:"premium" json:"premium"`
}

// YearlyRecord is the itemized benefit schedule for one policy year.
type YearlyRecord struct {
	PolicyYear            int             `json:"policy_year"`
	Age                   int             `json:"age"`
	Premium               decimal.Decimal `json:"premium"`
	TaxBenefit            decimal.Decimal `json:"tax_benefit"`
	Cashback              decimal.Decimal `json:"cashback"`
	AccumulatedCashback   decimal.Decimal `json:"accumulated_cashback"`
	SurrenderDividend     decimal.Decimal `json:"surrender_dividend"`
	SurrenderValue        decimal.Decimal `json:"surrender_value"`
	TotalSurrenderBenefit decimal.Decimal `json:"total_surrender_benefit"`
	DeathDividend         decimal.Decimal `json:"death_dividend"`
	DeathBenefit          decimal.Decimal `json:"death_benefit"`
	TotalDeathBenefit     decimal.Decimal `json:"total_death_benefit"`
}

// IsPayingYear reports whether a premium is due in this policy year.
func (yr *YearlyRecord) IsPayingYear() bool {
	return yr.PolicyYear <= PayingYears
}

// RegularInflow is the cash the policyholder receives at the end of the year in
// both scenarios: the cashback plus, optionally, the tax saving on the premium.
func (yr *YearlyRecord) RegularInflow(includeTaxBenefit bool) decimal.Decimal {
	if includeTaxBenefit {
		return yr.Cashback.Add(yr.TaxBenefit)
	}
	return yr.Cashback
}

// ProjectionResult is everything downstream renderers receive from a projection.
type ProjectionResult struct {
	YearlyData      []YearlyRecord  `json:"yearly_data"`
	TotalPremium    decimal.Decimal `json:"total_premium"`
	TotalTaxBenefit decimal.Decimal `json:"total_tax_benefit"`
	TotalCashback   decimal.Decimal `json:"total_cashback"`
	IRRSurrender    IRR             `json:"irr_surrender"`
	IRRDeath        IRR             `json:"irr_death"`
}

// MaturityRecord returns the final policy year, or nil for an empty result.
func (pr *ProjectionResult) MaturityRecord() *YearlyRecord {
	if len(pr.YearlyData) == 0 {
		return nil
	}
	return &pr.YearlyData[len(pr.YearlyData)-1]
}

// MaturityBenefit is the total surrender benefit paid out at the end of the term.
func (pr *ProjectionResult) MaturityBenefit() decimal.Decimal {
	if rec := pr.MaturityRecord(); rec != nil {
		return rec.TotalSurrenderBenefit
	}
	return decimal.Zero
}

// ProjectionReport bundles a result with the inputs that produced it for rendering.
type ProjectionReport struct {
	Inputs                 PolicyInputs     `json:"inputs"`
	IncludeTaxBenefitInIRR bool             `json:"include_tax_benefit_in_irr"`
	Result                 ProjectionResult `json:"result"`
	Assumptions            []string         `json:"assumptions"`
}
