package calculation

import (
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	largeCaseThreshold  = decimal.NewFromInt(500000)
	mediumCaseThreshold = decimal.NewFromInt(100000)
	largeCaseFactor     = decimal.NewFromFloat(0.99)
	mediumCaseFactor    = decimal.NewFromFloat(0.995)
	// Premiums below this map one-to-one onto sum assured.
	mediumCasePremium = decimal.NewFromInt(99500)
	quoteTolerance    = decimal.NewFromFloat(0.01)
)

// PremiumQuote pairs an annual premium with the sum assured it buys.
type PremiumQuote struct {
	SumAssured decimal.Decimal `json:"sum_assured" yaml:"sum_assured"`
	Premium    decimal.Decimal `json:"premium" yaml:"premium"`
}

// PremiumForSumAssured returns the annual premium for a sum assured, applying the
// large-case discounts. Amounts below the product minimum quote as zero.
func PremiumForSumAssured(sumAssured decimal.Decimal) decimal.Decimal {
	switch {
	case sumAssured.LessThan(domain.MinSumAssured):
		return decimal.Zero
	case sumAssured.GreaterThanOrEqual(largeCaseThreshold):
		return sumAssured.Mul(largeCaseFactor).Round(0)
	case sumAssured.GreaterThanOrEqual(mediumCaseThreshold):
		return sumAssured.Mul(mediumCaseFactor).Round(0)
	default:
		return sumAssured
	}
}

// SumAssuredForPremium inverts PremiumForSumAssured. Amounts below the product
// minimum quote as zero.
func SumAssuredForPremium(premium decimal.Decimal) decimal.Decimal {
	if premium.LessThan(domain.MinPremium) {
		return decimal.Zero
	}
	fromLarge := premium.Div(largeCaseFactor)
	if fromLarge.GreaterThanOrEqual(largeCaseThreshold) && fromLarge.Mul(largeCaseFactor).Sub(premium).Abs().LessThan(quoteTolerance) {
		return fromLarge.Round(0)
	}
	fromMedium := premium.Div(mediumCaseFactor)
	if fromMedium.GreaterThanOrEqual(mediumCaseThreshold) && fromMedium.LessThan(largeCaseThreshold) &&
		fromMedium.Mul(mediumCaseFactor).Sub(premium).Abs().LessThan(quoteTolerance) {
		return fromMedium.Round(0)
	}
	if premium.LessThan(mediumCasePremium) {
		return premium.Round(0)
	}
	return premium
}

// QuoteFromSumAssured builds a quote starting from the sum assured.
func QuoteFromSumAssured(sumAssured decimal.Decimal) PremiumQuote {
	return PremiumQuote{SumAssured: sumAssured, Premium: PremiumForSumAssured(sumAssured)}
}

// QuoteFromPremium builds a quote starting from the premium.
func QuoteFromPremium(premium decimal.Decimal) PremiumQuote {
	return PremiumQuote{SumAssured: SumAssuredForPremium(premium), Premium: premium}
}
