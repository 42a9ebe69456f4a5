package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/endowment-irr/internal/calculation"
	"github.com/rpgo/endowment-irr/internal/config"
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/rpgo/endowment-irr/internal/output"
)

func engineReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	tables, err := config.DefaultRateTables()
	require.NoError(t, err)
	engine := calculation.NewCalculationEngine(tables)
	return engine.BuildReport(domain.PolicyInputs{
		Age:            35,
		ExpectedReturn: decimal.NewFromInt(5),
		TaxBase:        decimal.NewFromInt(10),
		SumAssured:     decimal.NewFromInt(500000),
		Premium:        decimal.NewFromInt(495000),
	}, false)
}

func TestJSONFormatterRoundTripsProjection(t *testing.T) {
	report := engineReport(t)
	out, err := output.JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var doc struct {
		Inputs  domain.PolicyInputs     `json:"inputs"`
		Result  domain.ProjectionResult `json:"result"`
		Summary struct {
			NetGain decimal.Decimal `json:"net_gain"`
		} `json:"summary"`
		Chart []output.ChartPoint `json:"chart"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, 35, doc.Inputs.Age)
	require.Len(t, doc.Result.YearlyData, domain.PolicyTermYears)
	assert.True(t, doc.Result.TotalPremium.Equal(report.Result.TotalPremium))
	assert.Equal(t, report.Result.IRRSurrender.String(), doc.Result.IRRSurrender.String())
	assert.True(t, doc.Summary.NetGain.Equal(report.Result.MaturityBenefit().Sub(report.Result.TotalPremium)))
	assert.Len(t, doc.Chart, domain.PolicyTermYears)
}

func TestCSVSummarizerSingleRow(t *testing.T) {
	report := engineReport(t)
	out, err := output.CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Age,SumAssured,Premium"))
	assert.True(t, strings.HasPrefix(lines[1], "35,500000.00,495000.00,5,10,false,2970000.00"))
}

func TestCSVSummarizerBlankUndeterminedIRR(t *testing.T) {
	report := engineReport(t)
	report.Result.IRRDeath = domain.Undetermined()
	out, err := output.CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(out)), ","))
}

func TestCSVDetailedExporterOneRowPerYear(t *testing.T) {
	report := engineReport(t)
	out, err := output.CSVDetailedExporter{}.Format(report)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, domain.PolicyTermYears+1)
	assert.True(t, strings.HasPrefix(lines[1], "1,35,495000.00,"))
	// cumulative premium stops growing after the paying period
	assert.True(t, strings.HasSuffix(lines[6], ",2970000.00"))
	assert.True(t, strings.HasSuffix(lines[16], ",2970000.00"))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.Render(engineReport(t), "definitely-not-a-format")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	msg := err.Error()
	assert.Contains(t, msg, "unsupported report format")
	assert.Contains(t, msg, "Try one of:")
	assert.Contains(t, msg, "detailed-csv")
}

func TestGenerateReportAllWritesThreeFiles(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReport(engineReport(t), "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	exts := []string{filepath.Ext(paths[0]), filepath.Ext(paths[1]), filepath.Ext(paths[2])}
	assert.Equal(t, []string{".txt", ".csv", ".html"}, exts)
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	paths, err := output.GenerateReport(engineReport(t), "pdf", t.TempDir())
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Empty(t, paths)
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, output.SaveReport(engineReport(t), "json-pretty", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
