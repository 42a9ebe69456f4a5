package output

import (
	"fmt"

	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatAmount formats a decimal with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	whole := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	s := numberPrinter.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatWhole rounds to whole currency units and groups thousands, the way the
// benefit table is presented to policyholders.
func FormatWhole(amount decimal.Decimal) string {
	return numberPrinter.Sprintf("%d", amount.Round(0).IntPart())
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatIRR renders a solved rate as a percentage and an undetermined one as N/A.
func FormatIRR(irr domain.IRR) string { return irr.String() }
