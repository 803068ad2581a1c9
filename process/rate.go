package process

import "math"

// RateFunc is a caller-supplied intensity function ℝ≥0 → ℝ≥0.
//
// Caller obligations, not checked by the library:
//   - pure: no side effects, no shared mutable state, because VariableRate
//     invokes it concurrently from several goroutines;
//   - bounded: VariableRate requires RateFunc(t) ≤ MaxLambda on the whole
//     of [0, tmax]. Verifying that exactly would mean evaluating the
//     function everywhere, so a violated bound is not an error the library
//     can report: it silently skews the output distribution instead.
type RateFunc func(t float64) float64

// ConstantRate returns a RateFunc that is c everywhere.
func ConstantRate(c float64) RateFunc {
	return func(float64) float64 { return c }
}

// SineRate returns a rate oscillating around base with the given amplitude
// and period, clamped at zero. Its tight upper bound is base+amplitude.
func SineRate(base, amplitude, period float64) RateFunc {
	return func(t float64) float64 {
		v := base + amplitude*math.Sin(2*math.Pi*t/period)
		if v < 0 {
			return 0
		}
		return v
	}
}

// Intensity evaluates the conditional intensity of an exponential-kernel
// self-exciting process at time t given a history of marked events:
//
//	λ(t) = lambda0 + Σ_{eᵢ.Time < t} eᵢ.Mark · exp(-decay·(t - eᵢ.Time))
//
// Events without a mark contribute nothing. The sum runs over events
// strictly before t, so evaluating at an event's own time yields the
// pre-jump intensity there.
func Intensity(t, lambda0, decay float64, events []Event) float64 {
	excitation := 0.0
	for _, e := range events {
		if e.HasMark && e.Time < t {
			excitation += e.Mark * math.Exp(-decay*(t-e.Time))
		}
	}
	return lambda0 + excitation
}
