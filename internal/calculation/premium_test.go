package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPremiumForSumAssured(t *testing.T) {
	tests := []struct {
		sumAssured int64
		want       int64
	}{
		{19999, 0},
		{20000, 20000},
		{99999, 99999},
		{100000, 99500},
		{250000, 248750},
		{499999, 497499},
		{500000, 495000},
		{1000000, 990000},
	}
	for _, tt := range tests {
		got := PremiumForSumAssured(decimal.NewFromInt(tt.sumAssured))
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "sum assured %d: expected %d, got %s", tt.sumAssured, tt.want, got)
	}
}

func TestSumAssuredForPremium(t *testing.T) {
	tests := []struct {
		premium int64
		want    int64
	}{
		{19999, 0},
		{20000, 20000},
		{50000, 50000},
		{99500, 100000},
		{248750, 250000},
		{495000, 500000},
		{990000, 1000000},
	}
	for _, tt := range tests {
		got := SumAssuredForPremium(decimal.NewFromInt(tt.premium))
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "premium %d: expected %d, got %s", tt.premium, tt.want, got)
	}
}

func TestQuotes(t *testing.T) {
	q := QuoteFromSumAssured(decimal.NewFromInt(100000))
	assert.True(t, q.Premium.Equal(decimal.NewFromInt(99500)))

	q = QuoteFromPremium(decimal.NewFromInt(99500))
	assert.True(t, q.SumAssured.Equal(decimal.NewFromInt(100000)))
	assert.True(t, q.Premium.Equal(decimal.NewFromInt(99500)))
}
