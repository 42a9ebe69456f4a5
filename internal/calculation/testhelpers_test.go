package calculation

import (
	"fmt"

	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func sampleInputs() domain.PolicyInputs {
	return domain.PolicyInputs{
		Age:            30,
		ExpectedReturn: d(5),
		TaxBase:        d(20),
		SumAssured:     decimal.NewFromInt(100000),
		Premium:        decimal.NewFromInt(99500),
	}
}

// sampleTables deliberately leaves gaps to exercise lookup defaults.
func sampleTables() *domain.RateTables {
	cashback := domain.RateTable{16: d(6.4)}
	for y := 1; y <= 15; y++ {
		cashback[y] = d(0.02)
	}
	return &domain.RateTables{
		Cashback:               cashback,
		SurrenderPer1000:       domain.RateTable{1: d(200), 10: d(5000), 16: d(7000)},
		SurrenderDividendRates: domain.RateTable{3: d(0.5), 7: d(0.1), 16: d(0.2)},
		DeathBenefit: domain.RateTable{
			1: d(1.01), 2: d(2.02), 3: d(3.03), 4: d(4.04), 5: d(5.05), 6: d(6.06),
		},
	}
}

type recordingLogger struct {
	debug, warn []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {}
