package calculation

import (
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne      = decimal.NewFromInt(1)
	decimalHundred  = decimal.NewFromInt(100)
	decimalThousand = decimal.NewFromInt(1000)
)

// ProjectionTotals are the running sums across all policy years.
type ProjectionTotals struct {
	Premium    decimal.Decimal
	TaxBenefit decimal.Decimal
	Cashback   decimal.Decimal
}

// ProjectYears expands the inputs into the 16 yearly benefit records, in policy
// year order. Inputs are not validated; any numeric input yields arithmetically
// consistent output.
func ProjectYears(inputs domain.PolicyInputs, tables *domain.RateTables) ([]domain.YearlyRecord, ProjectionTotals) {
	if tables == nil {
		tables = &domain.RateTables{}
	}
	records := make([]domain.YearlyRecord, 0, domain.PolicyTermYears)
	var totals ProjectionTotals

	growth := decimalOne.Add(inputs.ExpectedReturn.Div(decimalHundred))
	taxRate := inputs.TaxBase.Div(decimalHundred)
	perThousand := inputs.SumAssured.Div(decimalThousand)

	accumulatedCashback := decimal.Zero
	premiumPaidToDate := decimal.Zero

	for year := 1; year <= domain.PolicyTermYears; year++ {
		premium := decimal.Zero
		if year <= domain.PayingYears {
			premium = inputs.Premium
		}
		premiumPaidToDate = premiumPaidToDate.Add(premium)

		taxBenefit := premium.Mul(taxRate)
		cashback := tables.CashbackRate(year).Mul(inputs.SumAssured)

		// Negative compounding never shrinks the dividend base below zero.
		interestFactor := decimal.Max(decimal.Zero, growth.Pow(decimal.NewFromInt(int64(year))).Sub(decimalOne))
		dividendBase := premiumPaidToDate.Mul(domain.DividendBaseFactor).Mul(interestFactor)

		surrenderDividend := decimal.Zero
		if year > domain.PayingYears {
			surrenderDividend = dividendBase.Mul(tables.SurrenderDividendRate(year))
		}
		deathDividend := decimal.Zero
		if year > 1 {
			deathDividend = dividendBase
		}

		surrenderValue := perThousand.Mul(tables.SurrenderPer1000Rate(year))
		if year == domain.PolicyTermYears {
			surrenderValue = decimal.Zero
		}
		deathBenefit := tables.DeathBenefitRate(year).Mul(inputs.SumAssured)

		totalSurrender := accumulatedCashback.Add(cashback).Add(surrenderDividend)
		if year != domain.PolicyTermYears {
			totalSurrender = totalSurrender.Add(surrenderValue)
		}
		// At maturity the death payout supersedes the final cashback.
		totalDeath := accumulatedCashback.Add(deathBenefit).Add(deathDividend)
		if year != domain.PolicyTermYears {
			totalDeath = totalDeath.Add(cashback)
		}

		accumulatedCashback = accumulatedCashback.Add(cashback)
		totals.Premium = totals.Premium.Add(premium)
		totals.TaxBenefit = totals.TaxBenefit.Add(taxBenefit)
		totals.Cashback = totals.Cashback.Add(cashback)

		records = append(records, domain.YearlyRecord{
			PolicyYear:            year,
			Age:                   inputs.Age + year - 1,
			Premium:               premium,
			TaxBenefit:            taxBenefit,
			Cashback:              cashback,
			AccumulatedCashback:   accumulatedCashback,
			SurrenderDividend:     surrenderDividend,
			SurrenderValue:        surrenderValue,
			TotalSurrenderBenefit: totalSurrender,
			DeathDividend:         deathDividend,
			DeathBenefit:          deathBenefit,
			TotalDeathBenefit:     totalDeath,
		})
	}

	return records, totals
}
