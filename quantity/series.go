package quantity

import (
	"github.com/c360studio/mks/dimension"
)

// Series is an array-like payload sharing one dimension vector: a column
// of same-unit measurements. Reductions re-wrap their scalar result with
// the series' dimension, so a sum of lengths is still a length and the
// minimum of a column of pressures is a pressure.
type Series struct {
	data []float64
	dim  dimension.Vector
}

// NewSeries builds a Series whose elements are each raw value times
// unit. NewSeries(readings, si.Meter) is a column of lengths in meters.
// The slice is copied.
func NewSeries(raw []float64, unit Value) Series {
	data := make([]float64, len(raw))
	for i, f := range raw {
		data[i] = f * unit.scalar
	}
	return Series{data: data, dim: unit.dim}
}

// Collect builds a Series from already-dimensioned values. All values
// must carry the same dimension; otherwise Collect fails with a
// *MismatchError naming the first offender.
func Collect(values ...Value) (Series, error) {
	var s Series
	if len(values) == 0 {
		return s, nil
	}
	s.dim = values[0].dim
	s.data = make([]float64, len(values))
	for i, v := range values {
		if v.dim != s.dim {
			return Series{}, newMismatch(s.dim, v.dim)
		}
		s.data[i] = v.scalar
	}
	return s, nil
}

// Len returns the number of elements.
func (s Series) Len() int {
	return len(s.data)
}

// Dim returns the shared dimension vector.
func (s Series) Dim() dimension.Vector {
	return s.dim
}

// At returns element i as a Value.
func (s Series) At(i int) Value {
	return Value{scalar: s.data[i], dim: s.dim}
}

// Sum returns the total. The sum of an empty series is 0 in the series'
// unit.
func (s Series) Sum() Value {
	total := 0.0
	for _, f := range s.data {
		total += f
	}
	return Value{scalar: total, dim: s.dim}
}

// Mean returns the arithmetic mean, or ErrEmptySeries.
func (s Series) Mean() (Value, error) {
	if len(s.data) == 0 {
		return Value{}, ErrEmptySeries
	}
	return Value{scalar: s.Sum().scalar / float64(len(s.data)), dim: s.dim}, nil
}

// Min returns the smallest element, or ErrEmptySeries. The result's unit
// trivially matches because min picks an existing element.
func (s Series) Min() (Value, error) {
	if len(s.data) == 0 {
		return Value{}, ErrEmptySeries
	}
	min := s.data[0]
	for _, f := range s.data[1:] {
		if f < min {
			min = f
		}
	}
	return Value{scalar: min, dim: s.dim}, nil
}

// Max returns the largest element, or ErrEmptySeries.
func (s Series) Max() (Value, error) {
	if len(s.data) == 0 {
		return Value{}, ErrEmptySeries
	}
	max := s.data[0]
	for _, f := range s.data[1:] {
		if f > max {
			max = f
		}
	}
	return Value{scalar: max, dim: s.dim}, nil
}
