package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// CSVDetailedExporter writes one row per policy year including the chart series.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"PolicyYear", "Age", "Premium", "TaxBenefit", "Cashback", "AccumulatedCashback",
		"SurrenderDividend", "SurrenderValue", "TotalSurrenderBenefit",
		"DeathDividend", "DeathBenefit", "TotalDeathBenefit", "CumulativePremium"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	chart := ChartSeries(&report.Result)
	for i, yr := range report.Result.YearlyData {
		row := []string{
			strconv.Itoa(yr.PolicyYear),
			strconv.Itoa(yr.Age),
			yr.Premium.StringFixed(2),
			yr.TaxBenefit.StringFixed(2),
			yr.Cashback.StringFixed(2),
			yr.AccumulatedCashback.StringFixed(2),
			yr.SurrenderDividend.StringFixed(2),
			yr.SurrenderValue.StringFixed(2),
			yr.TotalSurrenderBenefit.StringFixed(2),
			yr.DeathDividend.StringFixed(2),
			yr.DeathBenefit.StringFixed(2),
			yr.TotalDeathBenefit.StringFixed(2),
			chart[i].CumulativePremium.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
