package dimension

import (
	"errors"
	"fmt"
)

// NotationError reports a dimension notation string that could not be
// parsed: a letter outside the seven-letter alphabet or a malformed
// separator.
type NotationError struct {
	// Notation is the input that failed to parse.
	Notation string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("malformed dimension notation %q: %s", e.Notation, e.Reason)
}

// IsNotationError reports whether err is (or wraps) a *NotationError.
func IsNotationError(err error) bool {
	var ne *NotationError
	return errors.As(err, &ne)
}

// FractionalExponentError reports a Scale call that would have produced
// a non-integer exponent. Fractional dimensional powers are physically
// meaningless, so the operation is rejected rather than truncated.
type FractionalExponentError struct {
	// Base is the axis whose exponent went fractional.
	Base Base

	// Power is the scale factor that was applied.
	Power float64

	// Result is the offending non-integer exponent.
	Result float64
}

func (e *FractionalExponentError) Error() string {
	return fmt.Sprintf("non-integer exponent %v on dimension %s (power %v)", e.Result, e.Base, e.Power)
}

// IsFractionalExponent reports whether err is (or wraps) a
// *FractionalExponentError.
func IsFractionalExponent(err error) bool {
	var fe *FractionalExponentError
	return errors.As(err, &fe)
}
