package process

import "golang.org/x/exp/rand"

// Generator is a single simulation strategy: one call produces one fresh,
// caller-owned realization of a point process, consuming the given stream.
// UniformPoisson, VariableRate, ThinnedHawkes and ExactHawkes all satisfy
// it; callers pick the strategy, nothing is shared between them.
type Generator interface {
	Simulate(rng *rand.Rand) ([]Event, error)
}

var (
	_ Generator = UniformPoisson{}
	_ Generator = VariableRate{}
	_ Generator = ThinnedHawkes{}
	_ Generator = ExactHawkes{}
)
