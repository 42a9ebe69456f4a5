package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IRR is either a rate of return in percent or undetermined. The zero value is
// undetermined.
type IRR struct {
	value      decimal.Decimal
	determined bool
}

// RateOf returns a determined IRR with the given percentage.
func RateOf(percent decimal.Decimal) IRR {
	return IRR{value: percent, determined: true}
}

// Undetermined returns the IRR used when no rate could be solved for.
func Undetermined() IRR {
	return IRR{}
}

// Value returns the percentage and whether it was determined.
func (r IRR) Value() (decimal.Decimal, bool) {
	return r.value, r.determined
}

// IsDetermined reports whether a rate was found.
func (r IRR) IsDetermined() bool { return r.determined }

// String renders the percentage with two decimals, or N/A.
func (r IRR) String() string {
	if !r.determined {
		return "N/A"
	}
	return r.value.StringFixed(2) + "%"
}

// MarshalJSON encodes a determined IRR as a bare number and an undetermined one as null.
func (r IRR) MarshalJSON() ([]byte, error) {
	if !r.determined {
		return []byte("null"), nil
	}
	return []byte(r.value.StringFixed(2)), nil
}

// UnmarshalJSON accepts a number, a quoted number or null.
func (r *IRR) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*r = Undetermined()
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid irr %q: %w", string(data), err)
	}
	*r = RateOf(d)
	return nil
}

// MarshalYAML encodes an undetermined IRR as null.
func (r IRR) MarshalYAML() (interface{}, error) {
	if !r.determined {
		return nil, nil
	}
	return r.value.StringFixed(2), nil
}
