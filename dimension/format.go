package dimension

import (
	"sort"
	"strconv"
	"strings"
)

// Style selects how Pretty renders exponents. A deployment should pick
// one style and use it consistently; both encode the same exponent data.
type Style int

const (
	// Unicode renders exponents with superscript glyphs, e.g. "m.s⁻²".
	Unicode Style = iota

	// ASCII renders exponents with a caret, e.g. "m.s^-2".
	ASCII
)

// superscripts maps the decimal digits and minus sign to their Unicode
// superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

// exponent renders a signed integer exponent in the given style.
func (s Style) exponent(n int) string {
	digits := strconv.Itoa(n)
	if s == ASCII {
		return "^" + digits
	}
	var b strings.Builder
	for _, r := range digits {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}

// Pretty returns the human form of the vector. A vector matching a known
// derived unit renders as that unit's symbol (e.g. "W" for length²·mass·
// time⁻³). Otherwise each nonzero axis renders as its unit symbol, with
// the exponent appended unless it is exactly 1; positive terms come
// first in ascending exponent order, then negative terms in descending
// exponent order, joined with ".". Axes with equal exponents order by
// notation letter, which keeps the output deterministic.
func (v Vector) Pretty(style Style) string {
	if sym, ok := derived[v.String()]; ok {
		return sym
	}

	order := make([]Base, 0, NumBases)
	for b := Base(0); b < NumBases; b++ {
		if v.exp[b] != 0 {
			order = append(order, b)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if v.exp[a] != v.exp[b] {
			return v.exp[a] < v.exp[b]
		}
		return codes[a] < codes[b]
	})

	var positive, negative []string
	for _, b := range order {
		e := v.exp[b]
		switch {
		case e == 1:
			positive = append(positive, symbols[b])
		case e > 1:
			positive = append(positive, symbols[b]+style.exponent(e))
		default:
			negative = append(negative, symbols[b]+style.exponent(e))
		}
	}
	for i, j := 0, len(negative)-1; i < j; i, j = i+1, j-1 {
		negative[i], negative[j] = negative[j], negative[i]
	}
	return strings.Join(append(positive, negative...), ".")
}
