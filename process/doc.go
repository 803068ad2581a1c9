// Package process simulates temporal point processes on the half-line [0, ∞).
//
// # Reading Guide
//
// Start with these files to understand the package:
//   - event.go: the Event record every generator emits
//   - poisson.go: homogeneous Poisson sampling (the simplest generator)
//   - thinning.go: rejection sampling for bounded time-varying rates
//   - hawkes.go: self-exciting (Hawkes) process via thinning
//   - hawkes_exact.go: exact Hawkes simulation (Dassios–Zhao)
//
// # Generators
//
// Each generator is a parameter struct with a Simulate method taking the
// random stream to consume. Two regimes coexist:
//   - UniformPoisson and VariableRate produce statistically independent
//     events and shard their draws across worker goroutines, each with an
//     independently derived stream.
//   - ThinnedHawkes and ExactHawkes are strictly sequential within one run;
//     parallelism belongs at the replication level (see process/scenario).
//
// Randomness comes from golang.org/x/exp/rand so streams plug directly into
// gonum's distuv distributions. PartitionedRNG derives deterministic,
// isolated streams from a single master seed.
package process
