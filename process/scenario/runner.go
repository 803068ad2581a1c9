package scenario

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/point-sim/point-sim/process"
)

// RunResult is the outcome of one replication. Events are sorted by time.
// Err may accompany partial Events (see process.ErrJumpsExhausted).
type RunResult struct {
	Run    int
	Events []process.Event
	Err    error
}

// Summary aggregates event counts across a scenario's replications.
type Summary struct {
	Runs        int
	Failed      int
	TotalEvents int
	MeanCount   float64
	StdDevCount float64
	MinCount    int
	MaxCount    int
}

// Runner executes a scenario's replications. The sequential generators
// cannot be parallelized within a run, so the Runner parallelizes across
// runs instead: each replication owns its stream and its generator state.
type Runner struct {
	Scenario *Scenario
}

// Run executes all replications and returns one result per run, indexed by
// run number. Per-run streams are derived deterministically from the
// scenario seed before any worker starts, so results are reproducible
// regardless of the worker count.
func (r *Runner) Run() ([]RunResult, error) {
	s := r.Scenario
	if err := s.Validate(); err != nil {
		return nil, err
	}

	prng := process.NewPartitionedRNG(process.NewSimulationKey(s.Seed))
	type job struct {
		run int
		gen process.Generator
		rng *rand.Rand
	}
	jobs := make([]job, s.Runs)
	for i := range jobs {
		runRNG := prng.ForSubsystem(process.SubsystemRun(i))
		gen, err := s.NewGenerator(runRNG)
		if err != nil {
			return nil, err
		}
		jobs[i] = job{run: i, gen: gen, rng: runRNG}
	}

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > s.Runs {
		workers = s.Runs
	}

	results := make([]RunResult, s.Runs)
	ch := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				events, err := j.gen.Simulate(j.rng)
				process.SortEvents(events)
				results[j.run] = RunResult{Run: j.run, Events: events, Err: err}
			}
		}()
	}
	for _, j := range jobs {
		ch <- j
	}
	close(ch)
	wg.Wait()

	return results, nil
}

// Summarize aggregates run results. Runs that failed outright still count
// toward Runs but are excluded from the count statistics, except for
// partial results under jump exhaustion, whose events are valid.
func Summarize(results []RunResult) Summary {
	sum := Summary{Runs: len(results)}
	counts := make([]float64, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			sum.Failed++
			if !errors.Is(res.Err, process.ErrJumpsExhausted) {
				continue
			}
		}
		n := len(res.Events)
		sum.TotalEvents += n
		if len(counts) == 0 || n < sum.MinCount {
			sum.MinCount = n
		}
		if n > sum.MaxCount {
			sum.MaxCount = n
		}
		counts = append(counts, float64(n))
	}
	if len(counts) > 0 {
		sum.MeanCount = stat.Mean(counts, nil)
		sum.StdDevCount = stat.StdDev(counts, nil)
	}
	return sum
}

// Log reports the summary at info level.
func (s Summary) Log() {
	logrus.Infof("completed %d runs (%d failed): %d events total, count mean=%.3f stddev=%.3f min=%d max=%d",
		s.Runs, s.Failed, s.TotalEvents, s.MeanCount, s.StdDevCount, s.MinCount, s.MaxCount)
}
