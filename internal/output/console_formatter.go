package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// ConsoleFormatter renders the summary, assumptions and the full yearly benefit table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "16/6 ENDOWMENT POLICY PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	writeInputs(&buf, report)
	fmt.Fprintln(&buf)
	writeSummary(&buf, Summarize(&report.Result))
	fmt.Fprintln(&buf)

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "YEARLY BENEFIT SCHEDULE")
	fmt.Fprintln(&buf, strings.Repeat("-", 133))
	fmt.Fprintf(&buf, "%4s %4s %10s %10s %10s %12s | %10s %10s %12s | %10s %12s %12s\n",
		"Year", "Age", "Premium", "Tax", "Cashback", "Accum CB",
		"Surr Div", "Surr Val", "Surr Total",
		"Death Div", "Death Cover", "Death Total")
	fmt.Fprintln(&buf, strings.Repeat("-", 133))
	for _, yr := range report.Result.YearlyData {
		fmt.Fprintf(&buf, "%4d %4d %10s %10s %10s %12s | %10s %10s %12s | %10s %12s %12s\n",
			yr.PolicyYear, yr.Age,
			FormatWhole(yr.Premium), FormatWhole(yr.TaxBenefit), FormatWhole(yr.Cashback), FormatWhole(yr.AccumulatedCashback),
			FormatWhole(yr.SurrenderDividend), FormatWhole(yr.SurrenderValue), FormatWhole(yr.TotalSurrenderBenefit),
			FormatWhole(yr.DeathDividend), FormatWhole(yr.DeathBenefit), FormatWhole(yr.TotalDeathBenefit))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 133))
	return buf.Bytes(), nil
}

// ConsoleLiteFormatter provides a concise console style summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string      { return "console-lite" }
func (c ConsoleLiteFormatter) Extension() string { return "txt" }

func (c ConsoleLiteFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "POLICY PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	writeSummary(&buf, Summarize(&report.Result))
	return buf.Bytes(), nil
}

func writeInputs(buf *bytes.Buffer, report *domain.ProjectionReport) {
	in := report.Inputs
	fmt.Fprintln(buf, "POLICYHOLDER")
	fmt.Fprintf(buf, "  Entry Age:             %d\n", in.Age)
	fmt.Fprintf(buf, "  Sum Assured:           %s\n", FormatAmount(in.SumAssured))
	fmt.Fprintf(buf, "  Annual Premium:        %s\n", FormatAmount(in.Premium))
	fmt.Fprintf(buf, "  Expected Return:       %s\n", FormatPercentage(in.ExpectedReturn))
	fmt.Fprintf(buf, "  Tax Base:              %s\n", FormatPercentage(in.TaxBase))
	fmt.Fprintf(buf, "  Tax Benefit in IRR:    %s\n", yesNo(report.IncludeTaxBenefitInIRR))
}

func writeSummary(buf *bytes.Buffer, s Summary) {
	fmt.Fprintf(buf, "Total Premium:         %s\n", FormatAmount(s.TotalPremium))
	fmt.Fprintf(buf, "Maturity Benefit:      %s\n", FormatAmount(s.MaturityBenefit))
	fmt.Fprintf(buf, "Net Gain:              %s\n", FormatAmount(s.NetGain))
	fmt.Fprintf(buf, "Total Tax Benefit:     %s\n", FormatAmount(s.TotalTaxBenefit))
	fmt.Fprintf(buf, "Total Cashback:        %s\n", FormatAmount(s.TotalCashback))
	fmt.Fprintf(buf, "IRR (Surrender):       %s\n", FormatIRR(s.IRRSurrender))
	fmt.Fprintf(buf, "IRR (Death):           %s\n", FormatIRR(s.IRRDeath))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
