package process

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// ExactHawkes simulates an exponential-kernel marked Hawkes process on
// [0, Tmax] with the exact, linear-time decomposition of Dassios and Zhao
// (2013). Instead of thinning, each step inverts the conditional survival
// function in closed form: two uniforms become candidate waiting times for
// the self-excited part (rate decaying at Beta) and the baseline part
// (rate Lambda0), and the earlier applicable one is the true inter-arrival.
// No candidate is ever rejected.
//
// Marks are supplied externally: one value is consumed from Jumps per
// emitted event and added to the intensity. Strictly sequential.
type ExactHawkes struct {
	Tmax    float64
	Beta    float64
	Lambda0 float64
	Jumps   JumpSource
}

func (g ExactHawkes) Validate() error {
	if g.Jumps == nil {
		return fmt.Errorf("%w: jump source is nil", ErrInvalidParameter)
	}
	if g.Tmax < 0 {
		return fmt.Errorf("%w: tmax must be non-negative, got %g", ErrInvalidParameter, g.Tmax)
	}
	// The closed-form waiting times divide by both rates.
	if g.Beta <= 0 {
		return fmt.Errorf("%w: beta must be positive, got %g", ErrInvalidParameter, g.Beta)
	}
	if g.Lambda0 <= 0 {
		return fmt.Errorf("%w: lambda0 must be positive, got %g", ErrInvalidParameter, g.Lambda0)
	}
	return nil
}

// Simulate runs one realization, consuming rng and exactly one mark from
// Jumps per emitted event. Each Event records the decayed (pre-jump)
// intensity at its time and the consumed mark.
//
// If Jumps runs dry before the horizon is reached, Simulate returns the
// events emitted so far together with ErrJumpsExhausted; those partial
// results are valid up to the failing step.
func (g ExactHawkes) Simulate(rng *rand.Rand) ([]Event, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	t := 0.0
	lastLambda := g.Lambda0
	var events []Event

	for t < g.Tmax {
		// U1 drives the self-excited candidate S1, U2 the baseline
		// candidate S2. D < 0 means the excess intensity decays away
		// before S1 can fire, leaving only the baseline clock.
		u1 := rng.Float64()
		s1 := -math.Log(u1) / g.Beta
		d := math.Inf(-1)
		if lastLambda > g.Lambda0 {
			d = 1 + g.Beta*math.Log(u1)/(lastLambda-g.Lambda0)
		}
		s2 := -math.Log(rng.Float64()) / g.Lambda0

		dt := s2
		if d >= 0 && s1 < s2 {
			dt = s1
		}
		t += dt
		lastLambda = g.Lambda0 + (lastLambda-g.Lambda0)*math.Exp(-g.Beta*dt)
		if t > g.Tmax {
			break
		}

		jump, ok := g.Jumps.Next()
		if !ok {
			logrus.Warnf("hawkes: jump source exhausted at t=%.6g after %d events", t, len(events))
			return events, fmt.Errorf("%w: no mark left for event at t=%.6g", ErrJumpsExhausted, t)
		}
		events = append(events, Event{Time: t, Intensity: lastLambda, Mark: jump, HasMark: true})
		lastLambda += jump
	}
	return events, nil
}
