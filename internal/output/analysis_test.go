package output

import (
	"testing"

	"github.com/rpgo/endowment-irr/internal/domain"
)

func TestSummarize(t *testing.T) {
	s := Summarize(&buildTestReport().Result)
	checks := map[string]struct{ got, want string }{
		"total premium": {s.TotalPremium.String(), "199000"},
		"maturity":      {s.MaturityBenefit.String(), "1344000"},
		"net gain":      {s.NetGain.String(), "1145000"},
		"tax benefit":   {s.TotalTaxBenefit.String(), "39800"},
		"cashback":      {s.TotalCashback.String(), "644000"},
	}
	for name, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", name, c.got, c.want)
		}
	}
	if s.IRRSurrender.String() != "4.56%" || s.IRRDeath.IsDetermined() {
		t.Errorf("unexpected IRRs %s / %s", s.IRRSurrender, s.IRRDeath)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&domain.ProjectionResult{})
	if !s.MaturityBenefit.IsZero() || !s.NetGain.IsZero() {
		t.Errorf("expected zero summary, got %+v", s)
	}
	if Summarize(nil) != (Summary{}) {
		t.Errorf("nil result should summarize to zero value")
	}
}

func TestChartSeriesAccumulatesPremium(t *testing.T) {
	series := ChartSeries(&buildTestReport().Result)
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	wantPaid := []string{"99500", "199000", "199000"}
	for i, p := range series {
		if p.CumulativePremium.String() != wantPaid[i] {
			t.Errorf("point %d cumulative premium = %s, want %s", i, p.CumulativePremium, wantPaid[i])
		}
	}
	if series[1].DeathBenefit.String() != "222318" || series[2].SurrenderBenefit.String() != "1344000" {
		t.Errorf("benefit series not copied from yearly data: %+v", series)
	}
	if ChartSeries(nil) != nil {
		t.Errorf("nil result should give nil series")
	}
}
