package process

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// VariableRate samples an inhomogeneous Poisson process on [0, Tmax] by
// thinning: candidates are drawn from a homogeneous process of rate
// MaxLambda and each is kept only if a uniform comparison value falls
// under the true rate at its time. The thinning theorem makes the accepted
// subset exactly the target process, provided MaxLambda really dominates
// Rate on all of [0, Tmax] — see RateFunc for the caller obligations.
// The returned slice is NOT sorted by time.
type VariableRate struct {
	Tmax      float64
	Rate      RateFunc
	MaxLambda float64
	// Workers shards the candidate generate-and-test steps across
	// goroutines; Rate is then called concurrently.
	Workers int
}

func (g VariableRate) Validate() error {
	if g.Rate == nil {
		return fmt.Errorf("%w: rate function is nil", ErrInvalidParameter)
	}
	// A bound of zero can only dominate a rate that is identically zero,
	// which makes the whole simulation pointless: reject it up front.
	if g.MaxLambda <= 0 {
		return fmt.Errorf("%w: max lambda must be positive, got %g", ErrInvalidParameter, g.MaxLambda)
	}
	if g.Tmax < 0 {
		return fmt.Errorf("%w: tmax must be non-negative, got %g", ErrInvalidParameter, g.Tmax)
	}
	return nil
}

// Simulate runs one realization of the process, consuming rng. Each
// accepted Event records the comparison value that survived thinning as
// its Intensity, which always lies under the rate curve at Event.Time.
func (g VariableRate) Simulate(rng *rand.Rand) ([]Event, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	mean := g.Tmax * g.MaxLambda
	if mean == 0 {
		return []Event{}, nil
	}

	n := int(distuv.Poisson{Lambda: mean, Src: rng}.Rand())
	candidates := make([]Event, n)
	accepted := make([]bool, n)

	forEachShard(rng, n, g.Workers, func(wrng *rand.Rand, lo, hi int) {
		for i := lo; i < hi; i++ {
			t := wrng.Float64() * g.Tmax
			u := wrng.Float64() * g.MaxLambda
			if u < g.Rate(t) {
				candidates[i] = Event{Time: t, Intensity: u}
				accepted[i] = true
			}
		}
	})

	events := make([]Event, 0, n)
	for i, ok := range accepted {
		if ok {
			events = append(events, candidates[i])
		}
	}
	return events, nil
}
