// Package quantity couples a numeric payload with a dimension vector and
// provides the arithmetic and comparison operations that propagate and
// validate dimensions. Operations that compose dimensions (multiply,
// divide, power) never fail on unit grounds; operations that require
// matching dimensions (add, subtract, compare, convert) fail loudly with
// a *MismatchError instead of producing a wrong number.
//
// A Value is a two-variant result: dimensioned, or bare. Whenever an
// operation cancels all exponents the result is the bare variant, which
// formats, compares, converts and marshals exactly as its plain payload;
// Bare reports which variant a Value is. Values are immutable: every
// operation returns a new Value.
package quantity

import (
	"math"
	"strconv"

	"github.com/c360studio/mks/dimension"
)

// Value is a numeric payload tagged with a dimension vector. The zero
// value is the bare number 0.
type Value struct {
	scalar float64
	dim    dimension.Vector
}

// New builds a Value from a payload and compact dimension notation.
// Empty or "1" notation yields the bare variant.
func New(scalar float64, notation string) (Value, error) {
	dim, err := dimension.Parse(notation)
	if err != nil {
		return Value{}, err
	}
	return Value{scalar: scalar, dim: dim}, nil
}

// MustNew is New but panics on malformed notation. Intended for
// package-level unit and constant definitions.
func MustNew(scalar float64, notation string) Value {
	v, err := New(scalar, notation)
	if err != nil {
		panic(err)
	}
	return v
}

// Make builds a Value from a payload and an already-parsed vector.
func Make(scalar float64, dim dimension.Vector) Value {
	return Value{scalar: scalar, dim: dim}
}

// Scalar wraps a plain number as the bare variant.
func Scalar(f float64) Value {
	return Value{scalar: f}
}

// Float returns the raw payload regardless of dimension.
func (v Value) Float() float64 {
	return v.scalar
}

// Dim returns the dimension vector.
func (v Value) Dim() dimension.Vector {
	return v.dim
}

// Bare returns the payload and true when the value is dimensionless.
// This is the degrade rule: a Value whose exponents all cancelled is
// observably just its payload.
func (v Value) Bare() (float64, bool) {
	if v.dim.IsDimensionless() {
		return v.scalar, true
	}
	return 0, false
}

// IsBare reports whether the value is dimensionless.
func (v Value) IsBare() bool {
	return v.dim.IsDimensionless()
}

// Mul returns the product: payloads multiply, exponents add.
func (v Value) Mul(o Value) Value {
	return Value{scalar: v.scalar * o.scalar, dim: v.dim.Combine(o.dim)}
}

// MulScalar scales the payload by a bare number, dimension unchanged.
func (v Value) MulScalar(f float64) Value {
	return Value{scalar: v.scalar * f, dim: v.dim}
}

// Div returns v divided by o, defined as v times o to the power -1.
func (v Value) Div(o Value) Value {
	inv, err := o.Pow(-1)
	if err != nil {
		// Scaling by -1 keeps every exponent integral.
		panic(err)
	}
	return v.Mul(inv)
}

// Pow raises the value to the given power. A payload of exactly 1 stays
// exactly 1, avoiding float artifacts on unit definitions. Returns a
// *dimension.FractionalExponentError when the scaled exponents are not
// integral.
func (v Value) Pow(power float64) (Value, error) {
	dim, err := v.dim.Scale(power)
	if err != nil {
		return Value{}, err
	}
	scalar := v.scalar
	if scalar != 1 {
		scalar = math.Pow(scalar, power)
	}
	return Value{scalar: scalar, dim: dim}, nil
}

// Add returns the sum. The operands must carry the same dimension;
// otherwise a *MismatchError identifies both sides.
func (v Value) Add(o Value) (Value, error) {
	if v.dim != o.dim {
		return Value{}, newMismatch(v.dim, o.dim)
	}
	return Value{scalar: v.scalar + o.scalar, dim: v.dim}, nil
}

// Sub returns the difference, defined as v plus o times -1.
func (v Value) Sub(o Value) (Value, error) {
	return v.Add(o.MulScalar(-1))
}

// Neg returns the value scaled by -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Abs returns the value with a non-negative payload, dimension unchanged.
func (v Value) Abs() Value {
	return Value{scalar: math.Abs(v.scalar), dim: v.dim}
}

// In expresses the value as a multiple of target and returns the bare
// ratio. This is the explicit exit from the unit system: expressing a
// length in micrometers is v.In(micrometer). It fails with a
// *MismatchError when the two dimensions differ.
func (v Value) In(target Value) (float64, error) {
	r := v.Div(target)
	bare, ok := r.Bare()
	if !ok {
		return 0, newMismatch(v.dim, target.dim)
	}
	return bare, nil
}

// formatScalar renders the payload in shortest round-trip form, with
// negative zero canonicalized to plain 0.
func formatScalar(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
