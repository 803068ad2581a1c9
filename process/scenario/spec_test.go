package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/point-sim/point-sim/process"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesFullScenario(t *testing.T) {
	path := writeScenario(t, `
seed: 42
runs: 100
workers: 4
horizon: 10.0
process: hawkes-exact
params:
  lambda0: 1.0
  decay: 0.8
jumps:
  kind: exponential
  rate: 2.0
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 100, s.Runs)
	assert.Equal(t, 4, s.Workers)
	assert.Equal(t, 10.0, s.Horizon)
	assert.Equal(t, ProcessHawkesExact, s.Process)
	assert.Equal(t, 0.8, s.Params.Decay)
	require.NotNil(t, s.Jumps)
	assert.Equal(t, "exponential", s.Jumps.Kind)
	assert.NoError(t, s.Validate())
}

func TestLoad_DefaultsToOneRun(t *testing.T) {
	path := writeScenario(t, `
process: poisson
horizon: 5.0
params:
  lambda: 2.0
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Runs)
	assert.NoError(t, s.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "process: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       Scenario
		wantErr bool
	}{
		{"poisson ok", Scenario{Runs: 1, Horizon: 5, Process: ProcessPoisson}, false},
		{"unknown process", Scenario{Runs: 1, Process: "renewal"}, true},
		{"zero runs", Scenario{Runs: 0, Process: ProcessPoisson}, true},
		{"negative horizon", Scenario{Runs: 1, Horizon: -1, Process: ProcessPoisson}, true},
		{"variable-rate without rate", Scenario{Runs: 1, Process: ProcessVariableRate}, true},
		{"variable-rate bad shape", Scenario{Runs: 1, Process: ProcessVariableRate,
			Rate: &RateSpec{Shape: "sawtooth"}}, true},
		{"variable-rate sine ok", Scenario{Runs: 1, Horizon: 5, Process: ProcessVariableRate,
			Rate: &RateSpec{Shape: "sine", Base: 1, Amplitude: 0.5, Period: 2}}, false},
		{"hawkes-exact without jumps", Scenario{Runs: 1, Process: ProcessHawkesExact}, true},
		{"hawkes-exact empty values", Scenario{Runs: 1, Process: ProcessHawkesExact,
			Jumps: &JumpSpec{Kind: "values"}}, true},
		{"hawkes-exact constant ok", Scenario{Runs: 1, Horizon: 5, Process: ProcessHawkesExact,
			Params: ParamsSpec{Lambda0: 1, Decay: 1}, Jumps: &JumpSpec{Kind: "constant", Value: 0.3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGenerator_SelectsProcess(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	s := &Scenario{Runs: 1, Horizon: 5, Process: ProcessPoisson, Params: ParamsSpec{Lambda: 2}}
	g, err := s.NewGenerator(rng)
	require.NoError(t, err)
	assert.IsType(t, process.UniformPoisson{}, g)

	s = &Scenario{Runs: 1, Horizon: 5, Process: ProcessHawkesThinned,
		Params: ParamsSpec{Lambda0: 1, Decay: 1, Alpha: 0.5}}
	g, err = s.NewGenerator(rng)
	require.NoError(t, err)
	assert.IsType(t, process.ThinnedHawkes{}, g)

	s = &Scenario{Runs: 1, Horizon: 5, Process: ProcessHawkesExact,
		Params: ParamsSpec{Lambda0: 1, Decay: 1},
		Jumps:  &JumpSpec{Kind: "uniform", Min: 0.1, Max: 0.4}}
	g, err = s.NewGenerator(rng)
	require.NoError(t, err)
	assert.IsType(t, process.ExactHawkes{}, g)
}

func TestNewGenerator_SineBoundImpliedFromShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := &Scenario{Runs: 1, Horizon: 5, Process: ProcessVariableRate,
		Rate: &RateSpec{Shape: "sine", Base: 2, Amplitude: 1, Period: 3}}
	g, err := s.NewGenerator(rng)
	require.NoError(t, err)
	vr, ok := g.(process.VariableRate)
	require.True(t, ok)
	assert.Equal(t, 3.0, vr.MaxLambda)
}
