package process

import "sort"

// Event is one occurrence of a simulated point process.
// Events are immutable once produced; a generator hands ownership of the
// whole slice to the caller and keeps no reference to it.
type Event struct {
	// Time is the occurrence time, in [0, tmax] for the run that produced it.
	Time float64
	// Intensity is the process intensity associated with this event. Its
	// exact semantics depend on the generator: the constant rate for
	// UniformPoisson, the accepted comparison value for VariableRate, the
	// post-jump intensity for ThinnedHawkes, and the pre-jump (decayed)
	// intensity for ExactHawkes.
	Intensity float64
	// Mark is the jump/excitation size attached to the event, valid only
	// when HasMark is true. Unmarked generators leave it zero.
	Mark    float64
	HasMark bool
}

// SortEvents orders events in place by ascending time. UniformPoisson and
// VariableRate return their events unsorted; callers that need temporal
// order apply this before consuming the sequence.
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}

// EventTimes extracts the timestamps of a sequence, preserving order.
func EventTimes(events []Event) []float64 {
	times := make([]float64, len(events))
	for i, e := range events {
		times[i] = e.Time
	}
	return times
}
