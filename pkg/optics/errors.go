package optics

import "errors"

var (
	// ErrInvalidParameters is returned when an instrument parameter set
	// violates its invariants (non-positive energy, coefficient or
	// brightness, negative energy spread or probe current).
	ErrInvalidParameters = errors.New("optics: invalid instrument parameters")

	// ErrInvalidInput is returned when an angle lies outside (0, pi) or an
	// angle sweep is empty, unordered or contains duplicates.
	ErrInvalidInput = errors.New("optics: invalid input")

	// ErrDivisionByZero is returned when a ratio denominator is zero.
	ErrDivisionByZero = errors.New("optics: division by zero")
)
