package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRateTable_LookupMissingYearIsZero(t *testing.T) {
	rt := RateTable{1: decimal.NewFromFloat(0.02)}
	assert.True(t, rt.Lookup(1).Equal(decimal.NewFromFloat(0.02)))
	assert.True(t, rt.Lookup(2).IsZero())
}

func TestRateTables_DeathBenefitFallsBackToYearSix(t *testing.T) {
	tables := RateTables{
		DeathBenefit: RateTable{
			1: decimal.NewFromFloat(1.01),
			6: decimal.NewFromFloat(6.06),
		},
	}

	assert.True(t, tables.DeathBenefitRate(1).Equal(decimal.NewFromFloat(1.01)))
	assert.True(t, tables.DeathBenefitRate(10).Equal(decimal.NewFromFloat(6.06)))
	// Early gaps use the same plateau rate.
	assert.True(t, tables.DeathBenefitRate(3).Equal(decimal.NewFromFloat(6.06)))

	empty := RateTables{}
	assert.True(t, empty.DeathBenefitRate(10).IsZero())
}

func TestRateTable_UnmarshalYAML(t *testing.T) {
	src := "cashback:\n  1: 0.02\n  16: 6.4\ndeath_benefit:\n  6: \"6.06\"\n"
	var tables RateTables
	require.NoError(t, yaml.Unmarshal([]byte(src), &tables))

	assert.Equal(t, []int{1, 16}, tables.Cashback.Years())
	assert.True(t, tables.CashbackRate(16).Equal(decimal.NewFromFloat(6.4)))
	assert.True(t, tables.DeathBenefitRate(12).Equal(decimal.NewFromFloat(6.06)))
	assert.Nil(t, tables.SurrenderPer1000)
}

func TestRateTable_UnmarshalYAML_InvalidRate(t *testing.T) {
	var tables RateTables
	err := yaml.Unmarshal([]byte("cashback:\n  1: abc\n"), &tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year 1")
}

func TestIRR_StringAndJSON(t *testing.T) {
	rate := RateOf(decimal.NewFromFloat(4.5))
	assert.Equal(t, "4.50%", rate.String())
	assert.Equal(t, "N/A", Undetermined().String())

	b, err := json.Marshal(struct {
		A IRR `json:"a"`
		B IRR `json:"b"`
	}{rate, Undetermined()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 4.50, "b": null}`, string(b))

	var back IRR
	require.NoError(t, json.Unmarshal([]byte("4.50"), &back))
	v, ok := back.Value()
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromFloat(4.5)))

	require.NoError(t, json.Unmarshal([]byte("null"), &back))
	assert.False(t, back.IsDetermined())
}

func TestYearlyRecord_RegularInflow(t *testing.T) {
	rec := YearlyRecord{PolicyYear: 2, Cashback: decimal.NewFromInt(2000), TaxBenefit: decimal.NewFromInt(19900)}
	assert.True(t, rec.RegularInflow(false).Equal(decimal.NewFromInt(2000)))
	assert.True(t, rec.RegularInflow(true).Equal(decimal.NewFromInt(21900)))
	assert.True(t, rec.IsPayingYear())
}

func TestProjectionResult_MaturityBenefit(t *testing.T) {
	var empty ProjectionResult
	assert.True(t, empty.MaturityBenefit().IsZero())

	pr := ProjectionResult{YearlyData: []YearlyRecord{
		{PolicyYear: 1, TotalSurrenderBenefit: decimal.NewFromInt(10)},
		{PolicyYear: 2, TotalSurrenderBenefit: decimal.NewFromInt(25)},
	}}
	assert.True(t, pr.MaturityBenefit().Equal(decimal.NewFromInt(25)))
}
