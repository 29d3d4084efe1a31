// Package dimension implements integer exponent vectors over the seven SI
// base dimensions. A Vector records the dimensional composition of a
// physical quantity (length to some power, mass to some power, and so on)
// and supports the algebra those compositions obey: exponents add when
// quantities multiply and scale when quantities are raised to a power.
//
// Vectors are immutable values. Every operation returns a new Vector, and
// two Vectors compare equal with == exactly when all seven exponents match.
package dimension

// Base identifies one of the seven SI base dimensions.
type Base int

const (
	// Length is the L axis, measured in meters.
	Length Base = iota

	// Mass is the M axis, measured in kilograms.
	Mass

	// Time is the T axis, measured in seconds.
	Time

	// Current is the I axis, measured in amperes.
	Current

	// Temperature is the O axis, measured in kelvins.
	Temperature

	// Amount is the N axis, measured in moles.
	Amount

	// LuminousIntensity is the J axis, measured in candelas.
	LuminousIntensity

	// NumBases is the number of base dimensions. It is not itself a Base.
	NumBases
)

// codes holds the single-letter notation code for each base dimension.
var codes = [NumBases]byte{'L', 'M', 'T', 'I', 'O', 'N', 'J'}

// symbols holds the SI unit symbol for each base dimension.
var symbols = [NumBases]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Code returns the notation letter for the base dimension (for example
// 'L' for Length).
func (b Base) Code() byte {
	return codes[b]
}

// Symbol returns the SI unit symbol for the base dimension (for example
// "kg" for Mass).
func (b Base) Symbol() string {
	return symbols[b]
}

// String returns the notation letter as a string.
func (b Base) String() string {
	return string(codes[b])
}

// baseForCode maps a notation letter back to its Base. The second result
// is false for letters outside the seven-letter alphabet.
func baseForCode(c byte) (Base, bool) {
	for b := Base(0); b < NumBases; b++ {
		if codes[b] == c {
			return b, true
		}
	}
	return 0, false
}
