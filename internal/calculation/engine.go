package calculation

import (
	"fmt"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// CalculationEngine runs projections against a fixed set of rate tables.
// It holds no per-run state and is safe for concurrent use as long as the
// rate tables are not mutated.
type CalculationEngine struct {
	Rates  *domain.RateTables
	Solver *IRRSolver
	Debug  bool // log the itemized schedule and both timelines
	Logger Logger
}

// NewCalculationEngine creates an engine over the given rate tables.
func NewCalculationEngine(rates *domain.RateTables) *CalculationEngine {
	if rates == nil {
		rates = &domain.RateTables{}
	}
	return &CalculationEngine{
		Rates:  rates,
		Solver: NewIRRSolver(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project runs the full pipeline: yearly schedule, both timelines, both IRRs.
func (ce *CalculationEngine) Project(inputs domain.PolicyInputs, includeTaxBenefitInIRR bool) *domain.ProjectionResult {
	records, totals := ProjectYears(inputs, ce.Rates)
	surrender, death := BuildCashflows(records, includeTaxBenefitInIRR)

	solver := ce.Solver
	if solver == nil {
		solver = NewIRRSolver()
	}
	irrSurrender := solver.Solve(surrender)
	irrDeath := solver.Solve(death)

	if ce.Debug {
		for _, rec := range records {
			ce.Logger.Debugf("year %2d age %3d premium %s cashback %s surrender %s death %s",
				rec.PolicyYear, rec.Age, rec.Premium.StringFixed(2), rec.Cashback.StringFixed(2),
				rec.TotalSurrenderBenefit.StringFixed(2), rec.TotalDeathBenefit.StringFixed(2))
		}
		ce.Logger.Debugf("surrender cashflows: %s", formatTimeline(surrender))
		ce.Logger.Debugf("death cashflows:     %s", formatTimeline(death))
	}
	ce.Logger.Debugf("projection age=%d sum_assured=%s premium=%s include_tax=%t irr_surrender=%s irr_death=%s",
		inputs.Age, inputs.SumAssured.StringFixed(2), inputs.Premium.StringFixed(2), includeTaxBenefitInIRR,
		irrSurrender, irrDeath)
	if !irrSurrender.IsDetermined() {
		ce.Logger.Warnf("surrender IRR undetermined for sum_assured=%s premium=%s", inputs.SumAssured.StringFixed(2), inputs.Premium.StringFixed(2))
	}
	if !irrDeath.IsDetermined() {
		ce.Logger.Warnf("death IRR undetermined for sum_assured=%s premium=%s", inputs.SumAssured.StringFixed(2), inputs.Premium.StringFixed(2))
	}

	return &domain.ProjectionResult{
		YearlyData:      records,
		TotalPremium:    totals.Premium,
		TotalTaxBenefit: totals.TaxBenefit,
		TotalCashback:   totals.Cashback,
		IRRSurrender:    irrSurrender,
		IRRDeath:        irrDeath,
	}
}

// BuildReport runs a projection and attaches the inputs and assumption notes for rendering.
func (ce *CalculationEngine) BuildReport(inputs domain.PolicyInputs, includeTaxBenefitInIRR bool) *domain.ProjectionReport {
	result := ce.Project(inputs, includeTaxBenefitInIRR)
	return &domain.ProjectionReport{
		Inputs:                 inputs,
		IncludeTaxBenefitInIRR: includeTaxBenefitInIRR,
		Result:                 *result,
		Assumptions:            GenerateAssumptions(inputs, includeTaxBenefitInIRR),
	}
}

// Project runs a projection without an engine.
func Project(inputs domain.PolicyInputs, rates *domain.RateTables, includeTaxBenefitInIRR bool) *domain.ProjectionResult {
	return NewCalculationEngine(rates).Project(inputs, includeTaxBenefitInIRR)
}

// GenerateAssumptions lists the modeling assumptions behind a projection.
func GenerateAssumptions(inputs domain.PolicyInputs, includeTaxBenefitInIRR bool) []string {
	taxNote := "Tax savings on premiums are shown but excluded from IRR"
	if includeTaxBenefitInIRR {
		taxNote = "Tax savings on premiums are counted as inflows in IRR"
	}
	return []string{
		fmt.Sprintf("Policy term %d years, premiums payable for the first %d years", domain.PolicyTermYears, domain.PayingYears),
		fmt.Sprintf("Expected index return: %s%% annually, compounded on %s%% of premiums paid", inputs.ExpectedReturn.StringFixed(2), domain.DividendBaseFactor.Mul(decimalHundred).StringFixed(0)),
		fmt.Sprintf("Tax deduction rate: %s%%", inputs.TaxBase.StringFixed(2)),
		"Premiums are paid at the start of each policy year; benefits at the end",
		taxNote,
		"Dividends are non-guaranteed illustrations",
	}
}

func formatTimeline(ct CashflowTimeline) string {
	s := "["
	for i, v := range ct {
		if i > 0 {
			s += " "
		}
		s += v.StringFixed(2)
	}
	return s + "]"
}
