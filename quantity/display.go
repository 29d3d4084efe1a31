package quantity

import (
	"fmt"
	"strconv"

	"github.com/c360studio/mks/dimension"
)

// Format renders the value for humans in the given style: the payload,
// then the pretty dimension form if there is one. A bare value renders
// as just the payload.
func (v Value) Format(style dimension.Style) string {
	if v.dim.IsDimensionless() {
		return formatScalar(v.scalar)
	}
	return formatScalar(v.scalar) + " " + v.dim.Pretty(style)
}

// FormatPrecision is Format with the payload limited to prec significant
// digits; prec -1 keeps the shortest round-trip form.
func (v Value) FormatPrecision(style dimension.Style, prec int) string {
	scalar := v.scalar
	if scalar == 0 {
		scalar = 0 // drop the sign of negative zero
	}
	s := strconv.FormatFloat(scalar, 'g', prec, 64)
	if v.dim.IsDimensionless() {
		return s
	}
	return s + " " + v.dim.Pretty(style)
}

// String is Format in Unicode style.
func (v Value) String() string {
	return v.Format(dimension.Unicode)
}

// GoString is the diagnostic form: payload and canonical dimension
// string, e.g. quantity.Value(5, MMTT).
func (v Value) GoString() string {
	return fmt.Sprintf("quantity.Value(%s, %s)", formatScalar(v.scalar), v.dim)
}

// Label returns just the pretty dimension form, for use as an axis or
// column label. Empty for bare values.
func (v Value) Label(style dimension.Style) string {
	return v.dim.Pretty(style)
}
