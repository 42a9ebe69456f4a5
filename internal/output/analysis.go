package output

import (
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures shown above the benefit table.
type Summary struct {
	TotalPremium    decimal.Decimal `json:"total_premium"`
	MaturityBenefit decimal.Decimal `json:"maturity_benefit"`
	NetGain         decimal.Decimal `json:"net_gain"`
	TotalTaxBenefit decimal.Decimal `json:"total_tax_benefit"`
	TotalCashback   decimal.Decimal `json:"total_cashback"`
	IRRSurrender    domain.IRR      `json:"irr_surrender"`
	IRRDeath        domain.IRR      `json:"irr_death"`
}

// Summarize extracts the headline figures from a projection result.
// Extracted from the renderers for testability.
func Summarize(result *domain.ProjectionResult) Summary {
	if result == nil {
		return Summary{}
	}
	maturity := result.MaturityBenefit()
	return Summary{
		TotalPremium:    result.TotalPremium,
		MaturityBenefit: maturity,
		NetGain:         maturity.Sub(result.TotalPremium),
		TotalTaxBenefit: result.TotalTaxBenefit,
		TotalCashback:   result.TotalCashback,
		IRRSurrender:    result.IRRSurrender,
		IRRDeath:        result.IRRDeath,
	}
}
