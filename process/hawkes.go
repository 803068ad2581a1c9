package process

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// ThinnedHawkes simulates an exponential-kernel Hawkes process on
// [0, Tmax] by Ogata-style thinning. The intensity starts at Lambda0,
// jumps by Alpha at every event, and decays toward Lambda0 at rate Decay
// between events:
//
//	λ(t) = Lambda0 + Σ_{tᵢ < t} Alpha · exp(-Decay·(t - tᵢ))
//
// Each step draws a candidate inter-arrival from the current intensity
// upper bound and accepts it with probability λ/bound. The bound is reset
// to the current intensity after every step: post-jump on acceptance,
// decayed-only on rejection. Decay makes the intensity non-increasing
// until the next jump, so the reset value dominates on the next interval;
// changing either branch of that update breaks the domination property
// thinning relies on.
//
// Strictly sequential — each step depends on the previous intensity state.
// Parallelize across runs, never within one.
type ThinnedHawkes struct {
	Tmax    float64
	Decay   float64
	Lambda0 float64
	Alpha   float64
}

func (g ThinnedHawkes) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"tmax", g.Tmax},
		{"decay", g.Decay},
		{"lambda0", g.Lambda0},
		{"alpha", g.Alpha},
	} {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidParameter, p.name, p.v)
		}
	}
	return nil
}

// Simulate runs one realization, consuming rng. Every Event records the
// post-jump intensity and carries Alpha as its mark. Events are emitted in
// strictly increasing time order.
func (g ThinnedHawkes) Simulate(rng *rand.Rand) ([]Event, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Lambda0 == 0 {
		// Nothing can ever trigger: the intensity starts and stays at zero.
		return []Event{}, nil
	}

	// First event arrives as a plain Poisson(Lambda0) inter-arrival.
	s := rng.ExpFloat64() / g.Lambda0
	if s > g.Tmax {
		return []Event{}, nil
	}
	curLambda := g.Lambda0 + g.Alpha
	events := []Event{{Time: s, Intensity: curLambda, Mark: g.Alpha, HasMark: true}}
	lbdaMax := curLambda

	for s < g.Tmax {
		ds := rng.ExpFloat64() / lbdaMax
		// Decay the intensity analytically over [s, s+ds].
		curLambda = g.Lambda0 + (curLambda-g.Lambda0)*math.Exp(-g.Decay*ds)
		s += ds
		if s > g.Tmax {
			break
		}
		if rng.Float64() < curLambda/lbdaMax {
			curLambda += g.Alpha
			events = append(events, Event{Time: s, Intensity: curLambda, Mark: g.Alpha, HasMark: true})
		}
		lbdaMax = curLambda
	}
	return events, nil
}
