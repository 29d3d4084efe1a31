package dimension

import "testing"

func TestPrettyUnicode(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"L", "m"},
		{"LL", "m²"},
		{"MTT", "kg.s²"},
		{"L/T", "m.s⁻¹"},
		{"1/T", "s⁻¹"},
		{"IIM/JLL", "kg.A².cd⁻¹.m⁻²"},
		{"1", ""}, // dimensionless has no pretty form
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			if got := MustParse(tt.notation).Pretty(Unicode); got != tt.want {
				t.Errorf("Pretty(%q) = %q, want %q", tt.notation, got, tt.want)
			}
		})
	}
}

func TestPrettyASCII(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"LL", "m^2"},
		{"L/T", "m.s^-1"},
		{"IIM/JLL", "kg.A^2.cd^-1.m^-2"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.notation).Pretty(ASCII); got != tt.want {
			t.Errorf("Pretty(%q) = %q, want %q", tt.notation, got, tt.want)
		}
	}
}

func TestPrettyDerived(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"LLM/ITTT", "V"},
		{"LLM/TTT", "W"},
		{"LLM/TT", "J"},
		{"LM/TT", "N"},
		{"M/LTT", "Pa"},
		{"IT", "C"},
		{"TI", "C"}, // recognition is by canonical form, not input order
	}
	for _, tt := range tests {
		if got := MustParse(tt.notation).Pretty(Unicode); got != tt.want {
			t.Errorf("Pretty(%q) = %q, want %q", tt.notation, got, tt.want)
		}
	}
}

func TestDerivedSymbol(t *testing.T) {
	if sym, ok := MustParse("LM/TT").DerivedSymbol(); !ok || sym != "N" {
		t.Errorf("DerivedSymbol(LM/TT) = %q, %v; want N, true", sym, ok)
	}
	if _, ok := MustParse("L").DerivedSymbol(); ok {
		t.Error("DerivedSymbol(L) should not match a derived unit")
	}
}

func TestDerivedUnitsRoundTrip(t *testing.T) {
	for sym, v := range DerivedUnits() {
		if got := v.Pretty(Unicode); got != sym {
			t.Errorf("derived unit %s pretty-prints as %q", sym, got)
		}
	}
}
