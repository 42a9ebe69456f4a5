package calculation

import (
	"math"

	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
)

// IRRSettings tunes the root finder.
type IRRSettings struct {
	// InitialGuess seeds Newton-Raphson.
	InitialGuess float64
	// MaxNewtonIterations bounds the Newton phase before falling back to bisection.
	MaxNewtonIterations int
	// Tolerance is the rate step below which Newton is considered converged.
	Tolerance float64
	// DerivativeFloor stops Newton when the slope is too flat to divide by.
	DerivativeFloor float64
	// LowerBound is the smallest rate tried; rates at or below -100% are meaningless.
	LowerBound float64
	// UpperBoundLimit caps how far the bisection bracket is widened.
	UpperBoundLimit float64
	// MaxBisectionIterations bounds the fallback phase.
	MaxBisectionIterations int
}

// DefaultIRRSettings mirrors common spreadsheet IRR behavior.
var DefaultIRRSettings = IRRSettings{
	InitialGuess:           0.1,
	MaxNewtonIterations:    100,
	Tolerance:              1e-10,
	DerivativeFloor:        1e-12,
	LowerBound:             -0.99,
	UpperBoundLimit:        1e6,
	MaxBisectionIterations: 300,
}

// IRRSolver finds the internal rate of return of a cash-flow timeline.
type IRRSolver struct {
	Settings IRRSettings
}

// NewIRRSolver creates a solver with the default settings.
func NewIRRSolver() *IRRSolver {
	return &IRRSolver{Settings: DefaultIRRSettings}
}

// CalculateIRR solves with the default settings.
func CalculateIRR(timeline CashflowTimeline) domain.IRR {
	return NewIRRSolver().Solve(timeline)
}

// Solve returns the annual rate in percent rounded to two places, or
// Undetermined when the timeline has fewer than two points, never changes sign,
// or no finite root can be found.
func (s *IRRSolver) Solve(timeline CashflowTimeline) domain.IRR {
	if len(timeline) < 2 {
		return domain.Undetermined()
	}
	hasNegative, hasPositive := false, false
	for _, cf := range timeline {
		if cf.IsNegative() {
			hasNegative = true
		}
		if cf.IsPositive() {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return domain.Undetermined()
	}

	flows := timeline.Float64s()
	rate, ok := s.newton(flows)
	if !ok {
		rate, ok = s.bisect(flows)
	}
	if !ok || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return domain.Undetermined()
	}
	return domain.RateOf(decimal.NewFromFloat(rate * 100).Round(2))
}

// npv returns the net present value at rate and its derivative with respect to rate.
func npv(flows []float64, rate float64) (value, slope float64) {
	base := 1 + rate
	for t, cf := range flows {
		discount := math.Pow(base, float64(t))
		value += cf / discount
		if t > 0 {
			slope -= float64(t) * cf / (discount * base)
		}
	}
	return value, slope
}

func (s *IRRSolver) newton(flows []float64) (float64, bool) {
	rate := s.Settings.InitialGuess
	for i := 0; i < s.Settings.MaxNewtonIterations; i++ {
		value, slope := npv(flows, rate)
		if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(slope) < s.Settings.DerivativeFloor {
			return 0, false
		}
		next := rate - value/slope
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return 0, false
		}
		if math.Abs(next-rate) < s.Settings.Tolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func (s *IRRSolver) bisect(flows []float64) (float64, bool) {
	lo := s.Settings.LowerBound
	loValue, _ := npv(flows, lo)
	if loValue == 0 {
		return lo, true
	}

	hi := 1.0
	hiValue, _ := npv(flows, hi)
	for math.Signbit(loValue) == math.Signbit(hiValue) {
		hi *= 2
		if hi > s.Settings.UpperBoundLimit {
			return 0, false
		}
		hiValue, _ = npv(flows, hi)
	}

	for i := 0; i < s.Settings.MaxBisectionIterations; i++ {
		mid := (lo + hi) / 2
		midValue, _ := npv(flows, mid)
		if midValue == 0 || (hi-lo)/2 < s.Settings.Tolerance {
			return mid, true
		}
		if math.Signbit(midValue) == math.Signbit(loValue) {
			lo, loValue = mid, midValue
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}
