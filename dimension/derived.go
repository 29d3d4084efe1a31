package dimension

// derived maps canonical vector strings to the symbols of the named SI
// derived units recognized by Pretty. The set is small and fixed; lookup
// is by canonical string so recognition is a single map probe.
var derived = map[string]string{
	"LLM/ITTT": "V",  // volt
	"LLM/TTT":  "W",  // watt
	"LLM/TT":   "J",  // joule
	"LM/TT":    "N",  // newton
	"M/LTT":    "Pa", // pascal
	"IT":       "C",  // coulomb
}

// DerivedSymbol returns the derived-unit symbol for the vector, if its
// composition matches one of the recognized derived units.
func (v Vector) DerivedSymbol() (string, bool) {
	sym, ok := derived[v.String()]
	return sym, ok
}

// DerivedUnits returns the recognized derived units as a fresh map from
// symbol to dimension vector.
func DerivedUnits() map[string]Vector {
	out := make(map[string]Vector, len(derived))
	for notation, sym := range derived {
		out[sym] = MustParse(notation)
	}
	return out
}
