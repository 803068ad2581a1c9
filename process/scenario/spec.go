// Package scenario loads YAML simulation scenarios and executes replicated
// runs of the process generators, aggregating per-run event counts.
package scenario

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"

	"github.com/point-sim/point-sim/process"
)

// Process names accepted in a scenario file.
const (
	ProcessPoisson       = "poisson"
	ProcessVariableRate  = "variable-rate"
	ProcessHawkesThinned = "hawkes-thinned"
	ProcessHawkesExact   = "hawkes-exact"
)

// Scenario is the top-level simulation configuration.
// Loaded from YAML via Load(path).
type Scenario struct {
	Seed    int64      `yaml:"seed"`
	Runs    int        `yaml:"runs"`
	Workers int        `yaml:"workers,omitempty"`
	Horizon float64    `yaml:"horizon"`
	Process string     `yaml:"process"`
	Params  ParamsSpec `yaml:"params"`
	Rate    *RateSpec  `yaml:"rate,omitempty"`
	Jumps   *JumpSpec  `yaml:"jumps,omitempty"`
}

// ParamsSpec holds the per-generator numeric parameters. Only the fields
// the selected process uses are consulted.
type ParamsSpec struct {
	Lambda    float64 `yaml:"lambda,omitempty"`     // poisson
	MaxLambda float64 `yaml:"max_lambda,omitempty"` // variable-rate bound
	Lambda0   float64 `yaml:"lambda0,omitempty"`    // hawkes baseline
	Decay     float64 `yaml:"decay,omitempty"`      // hawkes kernel decay
	Alpha     float64 `yaml:"alpha,omitempty"`      // hawkes-thinned jump size
}

// RateSpec parameterizes a built-in rate shape for variable-rate scenarios.
type RateSpec struct {
	Shape     string  `yaml:"shape"` // "constant" or "sine"
	Value     float64 `yaml:"value,omitempty"`
	Base      float64 `yaml:"base,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Period    float64 `yaml:"period,omitempty"`
}

// JumpSpec parameterizes the mark source for hawkes-exact scenarios.
type JumpSpec struct {
	Kind   string    `yaml:"kind"` // "constant", "exponential", "uniform", "values"
	Value  float64   `yaml:"value,omitempty"`
	Rate   float64   `yaml:"rate,omitempty"`
	Min    float64   `yaml:"min,omitempty"`
	Max    float64   `yaml:"max,omitempty"`
	Values []float64 `yaml:"values,omitempty"`
}

// Load reads and parses a scenario file. Defaults are applied (one run,
// one worker) but validation is left to Validate so callers can override
// fields from flags first.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if s.Runs == 0 {
		s.Runs = 1
	}
	return &s, nil
}

// Validate checks the scenario's structure: a known process name, the
// sub-specs that process requires, and sane replication settings. The
// numeric generator parameters themselves are validated by the generator's
// own Validate at simulation time.
func (s *Scenario) Validate() error {
	if s.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", s.Runs)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	if s.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %g", s.Horizon)
	}
	switch s.Process {
	case ProcessPoisson, ProcessHawkesThinned:
	case ProcessVariableRate:
		if s.Rate == nil {
			return fmt.Errorf("process %q requires a rate spec", s.Process)
		}
		switch s.Rate.Shape {
		case "constant", "sine":
		default:
			return fmt.Errorf("unknown rate shape %q", s.Rate.Shape)
		}
	case ProcessHawkesExact:
		if s.Jumps == nil {
			return fmt.Errorf("process %q requires a jumps spec", s.Process)
		}
		switch s.Jumps.Kind {
		case "constant", "exponential", "uniform":
		case "values":
			if len(s.Jumps.Values) == 0 {
				return fmt.Errorf("jumps kind %q requires a non-empty values list", s.Jumps.Kind)
			}
		default:
			return fmt.Errorf("unknown jumps kind %q", s.Jumps.Kind)
		}
	default:
		return fmt.Errorf("unknown process %q", s.Process)
	}
	return nil
}

// rateFunc materializes the configured rate shape and its tight upper
// bound. An explicit params.max_lambda overrides the implied bound.
func (s *Scenario) rateFunc() (process.RateFunc, float64) {
	var fn process.RateFunc
	var bound float64
	switch s.Rate.Shape {
	case "constant":
		fn = process.ConstantRate(s.Rate.Value)
		bound = s.Rate.Value
	case "sine":
		fn = process.SineRate(s.Rate.Base, s.Rate.Amplitude, s.Rate.Period)
		bound = s.Rate.Base + s.Rate.Amplitude
	}
	if s.Params.MaxLambda > 0 {
		bound = s.Params.MaxLambda
	}
	return fn, bound
}

// newJumpSource builds a fresh mark source for one replication. Drawn
// kinds get their own stream so mark draws never perturb event times.
func (s *Scenario) newJumpSource(marksRNG *rand.Rand) process.JumpSource {
	switch s.Jumps.Kind {
	case "constant":
		return process.ConstantJumps(s.Jumps.Value)
	case "exponential":
		return process.DistJumps{Dist: distuv.Exponential{Rate: s.Jumps.Rate, Src: marksRNG}}
	case "uniform":
		return process.DistJumps{Dist: distuv.Uniform{Min: s.Jumps.Min, Max: s.Jumps.Max, Src: marksRNG}}
	case "values":
		return process.NewSliceJumps(s.Jumps.Values)
	}
	return nil
}

// NewGenerator builds the generator for one replication. runRNG is the
// replication's own stream; a mark stream is derived from it up front so
// the construction stays deterministic per (seed, run index).
func (s *Scenario) NewGenerator(runRNG *rand.Rand) (process.Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Process {
	case ProcessPoisson:
		return process.UniformPoisson{Tmax: s.Horizon, Lambda: s.Params.Lambda}, nil
	case ProcessVariableRate:
		fn, bound := s.rateFunc()
		return process.VariableRate{Tmax: s.Horizon, Rate: fn, MaxLambda: bound}, nil
	case ProcessHawkesThinned:
		return process.ThinnedHawkes{
			Tmax:    s.Horizon,
			Decay:   s.Params.Decay,
			Lambda0: s.Params.Lambda0,
			Alpha:   s.Params.Alpha,
		}, nil
	case ProcessHawkesExact:
		marksRNG := rand.New(rand.NewSource(runRNG.Uint64()))
		return process.ExactHawkes{
			Tmax:    s.Horizon,
			Beta:    s.Params.Decay,
			Lambda0: s.Params.Lambda0,
			Jumps:   s.newJumpSource(marksRNG),
		}, nil
	}
	return nil, fmt.Errorf("unknown process %q", s.Process)
}
