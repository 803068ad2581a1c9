package process

import "gonum.org/v1/gonum/stat/distuv"

// JumpSource supplies excitation magnitudes (marks) to ExactHawkes, one per
// accepted event. Next returns the next mark and true, or false when the
// source is exhausted. Implementations may be lazy; they are consumed from
// a single goroutine.
type JumpSource interface {
	Next() (float64, bool)
}

// ConstantJumps is an unbounded source yielding the same mark forever.
// ConstantJumps(alpha) reproduces the constant-jump Hawkes variant.
type ConstantJumps float64

func (c ConstantJumps) Next() (float64, bool) {
	return float64(c), true
}

// SliceJumps yields a fixed sequence of marks in order, then reports
// exhaustion. A simulation that outlives its slice fails with
// ErrJumpsExhausted, so size the slice generously.
type SliceJumps struct {
	values []float64
	pos    int
}

// NewSliceJumps creates a SliceJumps over values. The slice is not copied;
// the caller must not mutate it during simulation.
func NewSliceJumps(values []float64) *SliceJumps {
	return &SliceJumps{values: values}
}

func (s *SliceJumps) Next() (float64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// Remaining reports how many marks are left to consume.
func (s *SliceJumps) Remaining() int {
	return len(s.values) - s.pos
}

// DistJumps draws each mark from a distuv distribution, e.g.
// distuv.Exponential or distuv.Uniform. Never exhausts. Give the
// distribution its own Src so mark draws do not perturb the generator's
// event-time stream.
type DistJumps struct {
	Dist distuv.Rander
}

func (d DistJumps) Next() (float64, bool) {
	return d.Dist.Rand(), true
}
