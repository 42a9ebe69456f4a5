package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per projection).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "SumAssured", "Premium", "ExpectedReturn", "TaxBase", "IncludeTaxBenefitInIRR",
		"TotalPremium", "MaturityBenefit", "NetGain", "TotalTaxBenefit", "TotalCashback", "IRRSurrender", "IRRDeath"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	in := report.Inputs
	s := Summarize(&report.Result)
	row := []string{
		strconv.Itoa(in.Age),
		in.SumAssured.StringFixed(2),
		in.Premium.StringFixed(2),
		in.ExpectedReturn.String(),
		in.TaxBase.String(),
		strconv.FormatBool(report.IncludeTaxBenefitInIRR),
		s.TotalPremium.StringFixed(2),
		s.MaturityBenefit.StringFixed(2),
		s.NetGain.StringFixed(2),
		s.TotalTaxBenefit.StringFixed(2),
		s.TotalCashback.StringFixed(2),
		irrCell(s.IRRSurrender),
		irrCell(s.IRRDeath),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// irrCell leaves undetermined rates blank so spreadsheets treat them as missing.
func irrCell(irr domain.IRR) string {
	v, ok := irr.Value()
	if !ok {
		return ""
	}
	return v.StringFixed(2)
}
