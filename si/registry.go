package si

import (
	"errors"
	"fmt"
	"sort"

	"github.com/c360studio/mks/quantity"
)

// CollisionError reports a Bind target that already defines one of the
// symbols to be inserted. Bind refuses to overwrite so user definitions
// are never silently shadowed.
type CollisionError struct {
	// Symbol is the key that already existed in the target map.
	Symbol string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("symbol %q already defined", e.Symbol)
}

// IsCollision reports whether err is (or wraps) a *CollisionError.
func IsCollision(err error) bool {
	var ce *CollisionError
	return errors.As(err, &ce)
}

// registry is the fixed symbol table. Read-only after init.
var registry = map[string]quantity.Value{
	"m":   Meter,
	"kg":  Kilogram,
	"s":   Second,
	"A":   Ampere,
	"K":   Kelvin,
	"mol": Mole,
	"cd":  Candela,

	"V":  Volt,
	"W":  Watt,
	"J":  Joule,
	"N":  Newton,
	"Pa": Pascal,
	"C":  Coulomb,

	"R":  R,
	"F":  F,
	"Da": Da,
}

// Registry returns a fresh copy of the full symbol table: base units,
// derived units, and constants keyed by their short symbols.
func Registry() map[string]quantity.Value {
	out := make(map[string]quantity.Value, len(registry))
	for sym, v := range registry {
		out[sym] = v
	}
	return out
}

// Symbols returns the registry's symbols in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(registry))
	for sym := range registry {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the quantity bound to a symbol.
func Lookup(symbol string) (quantity.Value, bool) {
	v, ok := registry[symbol]
	return v, ok
}

// Bind inserts every registry symbol into ns. The insert is additive and
// all-or-nothing: if any symbol already exists in ns, Bind returns a
// *CollisionError and ns is left untouched.
func Bind(ns map[string]quantity.Value) error {
	for _, sym := range Symbols() {
		if _, exists := ns[sym]; exists {
			return &CollisionError{Symbol: sym}
		}
	}
	for sym, v := range registry {
		ns[sym] = v
	}
	return nil
}
