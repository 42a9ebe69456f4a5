package calculation

import (
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

// CashflowTimeline holds one amount per point in time. Index 0 is the start of
// policy year 1; index k is the end of policy year k.
type CashflowTimeline []decimal.Decimal

// Float64s converts the timeline for the numeric solver.
func (ct CashflowTimeline) Float64s() []float64 {
	out := make([]float64, len(ct))
	for i, v := range ct {
		out[i] = v.InexactFloat64()
	}
	return out
}

func newTimeline(points int) CashflowTimeline {
	ct := make(CashflowTimeline, points)
	for i := range ct {
		ct[i] = decimal.Zero
	}
	return ct
}

// BuildCashflows assembles the surrender and death timelines from the yearly
// records. Premiums are paid at the start of their year; cashback and the
// optional tax saving arrive at the end of it. The two timelines differ only at
// the final point.
func BuildCashflows(records []domain.YearlyRecord, includeTaxBenefit bool) (surrender, death CashflowTimeline) {
	points := domain.PolicyTermYears + 1
	surrender = newTimeline(points)
	death = newTimeline(points)

	for _, rec := range records {
		y := rec.PolicyYear
		if y < 1 || y >= points {
			continue
		}
		if rec.Premium.IsPositive() {
			surrender[y-1] = surrender[y-1].Sub(rec.Premium)
			death[y-1] = death[y-1].Sub(rec.Premium)
		}
		inflow := rec.RegularInflow(includeTaxBenefit)
		surrender[y] = surrender[y].Add(inflow)
		death[y] = death[y].Add(inflow)
	}

	last := domain.PolicyTermYears
	for _, rec := range records {
		if rec.PolicyYear != last {
			continue
		}
		// Maturity dividend is paid on top of the ordinary cashback.
		surrender[last] = surrender[last].Add(rec.SurrenderDividend)
		// The death payout replaces the regular inflow at maturity.
		death[last] = death[last].
			Sub(rec.RegularInflow(includeTaxBenefit)).
			Add(rec.DeathBenefit).
			Add(rec.DeathDividend)
	}

	return surrender, death
}
