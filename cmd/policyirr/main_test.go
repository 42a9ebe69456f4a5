package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/endowment-irr/internal/domain"
)

const policyYAML = `policy:
  age: 30
  expected_return: 5
  tax_base: 20
  sum_assured: 100000
include_tax_benefit_in_irr: false
`

func writePolicy(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(policyYAML), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("POLICYIRR_RATES_FILE", "")
	t.Setenv("ENVIRONMENT", "development")
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProjectConsole(t *testing.T) {
	out, err := run(t, "project", "--config", writePolicy(t))
	require.NoError(t, err)
	assert.Contains(t, out, "16/6 ENDOWMENT POLICY PROJECTION")
	assert.Contains(t, out, "Annual Premium:        99,500.00")
	assert.Contains(t, out, "Total Premium:         597,000.00")
	assert.Contains(t, out, "Tax Benefit in IRR:    no")
}

func TestProjectIncludeTaxFlagOverridesFile(t *testing.T) {
	out, err := run(t, "project", "--config", writePolicy(t), "--include-tax", "--format", "json")
	require.NoError(t, err)
	var doc struct {
		IncludeTax bool                    `json:"include_tax_benefit_in_irr"`
		Result     domain.ProjectionResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.IncludeTax)
	assert.Len(t, doc.Result.YearlyData, domain.PolicyTermYears)
}

func TestProjectWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.csv")
	out, err := run(t, "project", "--config", writePolicy(t), "--format", "detailed-csv", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyTermYears+1, strings.Count(string(data), "\n"))
}

func TestProjectAllWritesIntoDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "project", "--config", writePolicy(t), "--format", "all", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Report written to"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestProjectErrors(t *testing.T) {
	_, err := run(t, "project")
	assert.ErrorContains(t, err, "--config is required")

	_, err = run(t, "project", "--config", writePolicy(t), "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported report format")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("policy:\n  age: 90\n  sum_assured: 100000\n"), 0644))
	_, err = run(t, "project", "--config", bad)
	assert.ErrorContains(t, err, "age must be between 0 and 70")
}

func TestQuote(t *testing.T) {
	out, err := run(t, "quote", "--sum-assured", "500000")
	require.NoError(t, err)
	assert.Contains(t, out, "Annual Premium:  495,000.00")
	assert.Contains(t, out, "Total Premium:   2,970,000.00")

	out, err = run(t, "quote", "--premium", "99500")
	require.NoError(t, err)
	assert.Contains(t, out, "Sum Assured:     100,000.00")

	_, err = run(t, "quote")
	assert.Error(t, err)
	_, err = run(t, "quote", "--premium", "abc")
	assert.ErrorContains(t, err, "invalid --premium")
}

func TestRatesPrintsDefaultTables(t *testing.T) {
	out, err := run(t, "rates")
	require.NoError(t, err)
	assert.Contains(t, out, "cashback:")
	assert.Contains(t, out, "death_benefit:")
}

func TestRatesFlagLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cashback:\n  1: 0.5\n"), 0644))
	out, err := run(t, "rates", "--rates", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0.5")
	assert.NotContains(t, out, "6.4")

	_, err = run(t, "rates", "--rates", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "load rate tables")
}

func TestExampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	_, err := run(t, "example", path)
	require.NoError(t, err)
	out, err := run(t, "project", "--config", path, "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "POLICY PROJECTION SUMMARY")

	_, err = run(t, "example", path)
	assert.ErrorContains(t, err, "already exists")
}
