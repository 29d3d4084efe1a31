package dimension

import (
	"math"
	"sort"
	"strings"
)

// integerTolerance bounds how far a scaled exponent may sit from the
// nearest integer before Scale rejects it as fractional.
const integerTolerance = 1e-9

// Dimensionless is the canonical notation for the zero vector.
const Dimensionless = "1"

// Vector is an integer exponent tally over the seven SI base dimensions.
// The zero value is dimensionless. Vectors are comparable: two vectors
// are equal iff all seven exponents match.
type Vector struct {
	exp [NumBases]int
}

// Parse builds a Vector from compact notation: letters before an optional
// "/" carry exponent +1 each, letters after it -1 each, repeated per unit
// of exponent. "MM/TT" is mass²·time⁻². The empty string and "1" are
// dimensionless. Letters outside the seven-letter alphabet or a second
// "/" yield a *NotationError.
func Parse(notation string) (Vector, error) {
	var v Vector
	s := strings.Trim(notation, Dimensionless)
	if s == "" {
		return v, nil
	}

	positive, negative := s, ""
	if i := strings.IndexByte(s, '/'); i >= 0 {
		positive, negative = s[:i], s[i+1:]
		if strings.IndexByte(negative, '/') >= 0 {
			return Vector{}, &NotationError{Notation: notation, Reason: "more than one separator"}
		}
	}

	for i := 0; i < len(positive); i++ {
		b, ok := baseForCode(positive[i])
		if !ok {
			return Vector{}, &NotationError{Notation: notation, Reason: "unknown dimension code " + string(positive[i])}
		}
		v.exp[b]++
	}
	for i := 0; i < len(negative); i++ {
		b, ok := baseForCode(negative[i])
		if !ok {
			return Vector{}, &NotationError{Notation: notation, Reason: "unknown dimension code " + string(negative[i])}
		}
		v.exp[b]--
	}
	return v, nil
}

// MustParse is Parse but panics on malformed notation. It is intended for
// package-level vectors built from literal notation.
func MustParse(notation string) Vector {
	v, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return v
}

// Exponent returns the exponent on the given base dimension.
func (v Vector) Exponent(b Base) int {
	return v.exp[b]
}

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	return v == Vector{}
}

// Combine returns the elementwise sum of the two vectors. This is the
// dimensional effect of multiplying two quantities: exponents add, the
// way log(a*b) = log(a)+log(b).
func (v Vector) Combine(o Vector) Vector {
	var out Vector
	for b := Base(0); b < NumBases; b++ {
		out.exp[b] = v.exp[b] + o.exp[b]
	}
	return out
}

// Scale multiplies every exponent by power. This is the dimensional
// effect of raising a quantity to a power. If any scaled exponent lands
// off an integer the result is physically meaningless and Scale returns
// a *FractionalExponentError.
func (v Vector) Scale(power float64) (Vector, error) {
	var out Vector
	for b := Base(0); b < NumBases; b++ {
		r := float64(v.exp[b]) * power
		n := math.Round(r)
		if math.Abs(r-n) > integerTolerance {
			return Vector{}, &FractionalExponentError{Base: b, Power: power, Result: r}
		}
		out.exp[b] = int(n)
	}
	return out, nil
}

// String returns the canonical machine form: positive-exponent letters
// sorted and repeated per unit of exponent, then "/" and the sorted
// negative-exponent letters if any exist. The zero vector renders as "1".
// The form round-trips through Parse.
func (v Vector) String() string {
	var top, bottom []byte
	for b := Base(0); b < NumBases; b++ {
		switch e := v.exp[b]; {
		case e > 0:
			for i := 0; i < e; i++ {
				top = append(top, codes[b])
			}
		case e < 0:
			for i := 0; i < -e; i++ {
				bottom = append(bottom, codes[b])
			}
		}
	}
	sortBytes(top)
	sortBytes(bottom)
	if len(top) == 0 {
		top = []byte(Dimensionless)
	}
	if len(bottom) == 0 {
		return string(top)
	}
	return string(top) + "/" + string(bottom)
}

func sortBytes(b []byte) {
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
}
