package output

import (
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartPoint is one policy year of the benefit chart.
type ChartPoint struct {
	PolicyYear        int             `json:"policy_year"`
	Age               int             `json:"age"`
	CumulativePremium decimal.Decimal `json:"cumulative_premium"`
	SurrenderBenefit  decimal.Decimal `json:"surrender_benefit"`
	DeathBenefit      decimal.Decimal `json:"death_benefit"`
}

// ChartSeries compares premiums paid so far against what the policy would
// return on surrender or death in each year.
func ChartSeries(result *domain.ProjectionResult) []ChartPoint {
	if result == nil {
		return nil
	}
	points := make([]ChartPoint, 0, len(result.YearlyData))
	paid := decimal.Zero
	for _, yr := range result.YearlyData {
		paid = paid.Add(yr.Premium)
		points = append(points, ChartPoint{
			PolicyYear:        yr.PolicyYear,
			Age:               yr.Age,
			CumulativePremium: paid,
			SurrenderBenefit:  yr.TotalSurrenderBenefit,
			DeathBenefit:      yr.TotalDeathBenefit,
		})
	}
	return points
}
