package quantity

import (
	"errors"
	"fmt"

	"github.com/c360studio/mks/dimension"
)

// ErrEmptySeries is returned by reductions that need at least one element.
var ErrEmptySeries = errors.New("empty series")

// MismatchError reports an operation between two values whose dimensions
// differ. It carries both sides' canonical dimension strings so the
// mismatch can be located from the message alone.
type MismatchError struct {
	// LHS is the left operand's canonical dimension string.
	LHS string

	// RHS is the right operand's canonical dimension string.
	RHS string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("unit mismatch: LHS had units <%s>, RHS had units <%s>", e.LHS, e.RHS)
}

func newMismatch(lhs, rhs dimension.Vector) error {
	return &MismatchError{LHS: lhs.String(), RHS: rhs.String()}
}

// IsMismatch reports whether err is (or wraps) a *MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}
