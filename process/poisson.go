package process

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformPoisson samples a homogeneous, constant-intensity Poisson process
// on [0, Tmax]. The event count is drawn as Poisson(Tmax·Lambda) and,
// conditional on the count, event times are independent uniforms on
// [0, Tmax] — so the returned slice is NOT sorted by time.
type UniformPoisson struct {
	Tmax   float64
	Lambda float64
	// Workers shards the timestamp draws across goroutines, each with its
	// own derived stream. Values below 2 keep generation on the calling
	// goroutine. The output is deterministic for a fixed (seed, Workers).
	Workers int
}

// Validate fails fast with ErrInvalidParameter before any randomness is
// consumed.
func (g UniformPoisson) Validate() error {
	if g.Lambda < 0 {
		return fmt.Errorf("%w: lambda must be non-negative, got %g", ErrInvalidParameter, g.Lambda)
	}
	if g.Tmax < 0 {
		return fmt.Errorf("%w: tmax must be non-negative, got %g", ErrInvalidParameter, g.Tmax)
	}
	return nil
}

// Simulate runs one realization of the process, consuming rng.
func (g UniformPoisson) Simulate(rng *rand.Rand) ([]Event, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	mean := g.Tmax * g.Lambda
	if mean == 0 {
		return []Event{}, nil
	}

	n := int(distuv.Poisson{Lambda: mean, Src: rng}.Rand())
	events := make([]Event, n)

	forEachShard(rng, n, g.Workers, func(wrng *rand.Rand, lo, hi int) {
		u := distuv.Uniform{Min: 0, Max: g.Tmax, Src: wrng}
		for i := lo; i < hi; i++ {
			events[i] = Event{Time: u.Rand(), Intensity: g.Lambda}
		}
	})
	return events, nil
}

// forEachShard splits [0, n) into contiguous shards and runs fn on each,
// in parallel when workers > 1. Per-shard streams are derived from rng in
// the calling goroutine first, so results do not depend on scheduling.
func forEachShard(rng *rand.Rand, n, workers int, fn func(wrng *rand.Rand, lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(rng, 0, n)
		return
	}

	streams := make([]*rand.Rand, workers)
	for w := range streams {
		streams[w] = deriveStream(rng)
	}

	var wg sync.WaitGroup
	per := n / workers
	rem := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + per
		if w < rem {
			hi++
		}
		wg.Add(1)
		go func(wrng *rand.Rand, lo, hi int) {
			defer wg.Done()
			fn(wrng, lo, hi)
		}(streams[w], lo, hi)
		lo = hi
	}
	wg.Wait()
}
