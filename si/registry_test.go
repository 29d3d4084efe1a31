package si

import (
	"errors"
	"testing"

	"github.com/c360studio/mks/quantity"
)

func TestRegistryContents(t *testing.T) {
	reg := Registry()
	if len(reg) != 16 {
		t.Errorf("expected 16 symbols, got %d", len(reg))
	}
	for _, sym := range []string{"m", "kg", "s", "A", "K", "mol", "cd", "V", "W", "J", "N", "Pa", "C", "R", "F", "Da"} {
		if _, ok := reg[sym]; !ok {
			t.Errorf("registry missing symbol %q", sym)
		}
	}
}

func TestRegistryIsACopy(t *testing.T) {
	reg := Registry()
	delete(reg, "m")
	if _, ok := Lookup("m"); !ok {
		t.Error("mutating a Registry() copy must not affect the package table")
	}
}

func TestBaseUnitPayloads(t *testing.T) {
	for _, sym := range []string{"m", "kg", "s", "A", "K", "mol", "cd", "V", "W", "J", "N", "Pa", "C"} {
		v, ok := Lookup(sym)
		if !ok {
			t.Fatalf("missing unit %q", sym)
		}
		if v.Float() != 1 {
			t.Errorf("unit %q payload = %v, want exactly 1", sym, v.Float())
		}
	}
}

func TestConstantDimensions(t *testing.T) {
	tests := []struct {
		symbol string
		dim    string
	}{
		{"R", "LLM/NOTT"},
		{"F", "IT/N"},
		{"Da", "M"},
	}
	for _, tt := range tests {
		v, ok := Lookup(tt.symbol)
		if !ok {
			t.Fatalf("missing constant %q", tt.symbol)
		}
		if got := v.Dim().String(); got != tt.dim {
			t.Errorf("%s dimension = %q, want %q", tt.symbol, got, tt.dim)
		}
	}
}

func TestDerivedUnitIdentity(t *testing.T) {
	// V·A = J/s, given the unit definitions.
	lhs := Volt.Mul(Ampere)
	rhs := Joule.Div(Second)
	eq, err := lhs.Equal(rhs)
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !eq {
		t.Error("V*A should equal J/s")
	}
}

func TestBind(t *testing.T) {
	ns := map[string]quantity.Value{"x": quantity.Scalar(1)}
	if err := Bind(ns); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if len(ns) != 17 {
		t.Errorf("expected 17 entries after Bind, got %d", len(ns))
	}
	if v := ns["kg"]; v.Dim().String() != "M" {
		t.Errorf("bound kg has dimension %q, want M", v.Dim().String())
	}
}

func TestBindCollision(t *testing.T) {
	ns := map[string]quantity.Value{"J": quantity.Scalar(42)}
	err := Bind(ns)
	if !IsCollision(err) {
		t.Fatalf("Bind error = %v, want CollisionError", err)
	}

	var ce *CollisionError
	if !errors.As(err, &ce) || ce.Symbol != "J" {
		t.Errorf("collision symbol = %v, want J", ce)
	}

	// All-or-nothing: nothing was inserted.
	if len(ns) != 1 {
		t.Errorf("Bind on collision inserted entries: %d", len(ns))
	}
}
