package environment

import "github.com/pkg/errors"

var (
	// ErrInvalidLayout is returned when a maze layout is malformed or
	// contradictory
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidParameter is returned when a hyperparameter is outside of
	// its valid range
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfRange signals that a state or action outside of the grid
	// reached an environment or value table. It is never returned, only
	// raised with panic, since it indicates a bug in the caller.
	ErrOutOfRange = errors.New("out of range")
)

// InvalidLayout returns an error wrapping ErrInvalidLayout
func InvalidLayout(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidLayout, format, args...)
}

// InvalidParameter returns an error wrapping ErrInvalidParameter
func InvalidParameter(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// OutOfRange returns an error wrapping ErrOutOfRange, to be used as a
// panic value
func OutOfRange(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
