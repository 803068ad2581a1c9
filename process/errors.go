package process

import "errors"

var (
	// ErrInvalidParameter reports a negative rate, decay, or baseline, or a
	// structurally impossible thinning bound. Detected at call entry, before
	// any randomness is consumed.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrJumpsExhausted reports that ExactHawkes needed a mark and the jump
	// source had none left. The events emitted before exhaustion are still
	// returned alongside this error.
	ErrJumpsExhausted = errors.New("jump source exhausted")
)
