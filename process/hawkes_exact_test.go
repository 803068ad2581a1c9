package process

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestExactHawkes_InvalidParameters_Fail(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bad := []ExactHawkes{
		{Tmax: 5, Beta: 1, Lambda0: 1, Jumps: nil},
		{Tmax: -1, Beta: 1, Lambda0: 1, Jumps: ConstantJumps(0.5)},
		{Tmax: 5, Beta: 0, Lambda0: 1, Jumps: ConstantJumps(0.5)},
		{Tmax: 5, Beta: 1, Lambda0: 0, Jumps: ConstantJumps(0.5)},
	}
	for _, g := range bad {
		if _, err := g.Simulate(rng); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%+v: got %v, want ErrInvalidParameter", g, err)
		}
	}
}

func TestExactHawkes_TimesStrictlyIncreasingWithinHorizon(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := ExactHawkes{Tmax: 40.0, Beta: 1.0, Lambda0: 1.0, Jumps: ConstantJumps(0.5)}
	events, err := g.Simulate(rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events over a 40-unit horizon at baseline 1")
	}
	prev := 0.0
	for i, e := range events {
		if e.Time <= prev {
			t.Fatalf("event %d at %g not after %g", i, e.Time, prev)
		}
		if e.Time > g.Tmax {
			t.Fatalf("event %d at %g beyond horizon %g", i, e.Time, g.Tmax)
		}
		if !e.HasMark || e.Mark != 0.5 {
			t.Fatalf("event %d mark = (%g, %v), want (0.5, true)", i, e.Mark, e.HasMark)
		}
		prev = e.Time
	}
}

func TestExactHawkes_ZeroJumpsMatchPoisson(t *testing.T) {
	// GIVEN every mark is zero the intensity never leaves lambda0, so the
	// process degenerates to homogeneous Poisson(lambda0)
	rng := rand.New(rand.NewSource(42))
	g := ExactHawkes{Tmax: 5.0, Beta: 1.0, Lambda0: 1.0, Jumps: ConstantJumps(0)}

	runs := 10000
	counts := make([]float64, runs)
	for i := range counts {
		events, err := g.Simulate(rng)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		counts[i] = float64(len(events))
	}

	mean, variance := meanAndVariance(counts)
	want := g.Tmax * g.Lambda0
	if math.Abs(mean-want)/want > 0.05 {
		t.Errorf("mean count = %.3f, want ≈ %.1f (within 5%%)", mean, want)
	}
	if math.Abs(variance-want)/want > 0.10 {
		t.Errorf("count variance = %.3f, want ≈ %.1f (within 10%%)", variance, want)
	}
}

func TestExactHawkes_RecordedIntensityMatchesKernelSum(t *testing.T) {
	// The recorded intensity is pre-jump, so it must equal the kernel
	// superposition of the strictly earlier marked events.
	rng := rand.New(rand.NewSource(42))
	jumps := DistJumps{Dist: distuv.Exponential{Rate: 2.0, Src: rand.New(rand.NewSource(7))}}
	g := ExactHawkes{Tmax: 25.0, Beta: 1.5, Lambda0: 1.0, Jumps: jumps}

	events, err := g.Simulate(rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, e := range events {
		want := Intensity(e.Time, g.Lambda0, g.Beta, events[:i])
		if math.Abs(e.Intensity-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("event %d: recorded intensity %.12g, kernel sum gives %.12g", i, e.Intensity, want)
		}
	}
}

func TestExactHawkes_JumpExhaustion_ReturnsPartialResults(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	jumps := NewSliceJumps([]float64{0.4, 0.4, 0.4})
	g := ExactHawkes{Tmax: 100.0, Beta: 1.0, Lambda0: 5.0, Jumps: jumps}

	events, err := g.Simulate(rng)
	if !errors.Is(err, ErrJumpsExhausted) {
		t.Fatalf("got %v, want ErrJumpsExhausted", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d partial events, want one per supplied mark (3)", len(events))
	}
	prev := 0.0
	for i, e := range events {
		if e.Time <= prev || e.Time > g.Tmax {
			t.Fatalf("partial event %d at %g invalid", i, e.Time)
		}
		prev = e.Time
	}
	if jumps.Remaining() != 0 {
		t.Errorf("%d marks left unconsumed, want 0", jumps.Remaining())
	}
}

func TestExactHawkes_GenerousJumpSourceSucceeds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	jumps := NewSliceJumps(make([]float64, 100000))
	g := ExactHawkes{Tmax: 10.0, Beta: 1.0, Lambda0: 2.0, Jumps: jumps}

	events, err := g.Simulate(rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 100000-jumps.Remaining() {
		t.Errorf("consumed %d marks for %d events, want exactly one each",
			100000-jumps.Remaining(), len(events))
	}
}
