package si

import "github.com/c360studio/mks/quantity"

// The seven SI base units, each a quantity of payload 1 on a single axis.
var (
	// Meter is the base unit of length (symbol m).
	Meter = quantity.MustNew(1, "L")

	// Kilogram is the base unit of mass (symbol kg).
	Kilogram = quantity.MustNew(1, "M")

	// Second is the base unit of time (symbol s).
	Second = quantity.MustNew(1, "T")

	// Ampere is the base unit of electric current (symbol A).
	Ampere = quantity.MustNew(1, "I")

	// Kelvin is the base unit of thermodynamic temperature (symbol K).
	Kelvin = quantity.MustNew(1, "O")

	// Mole is the base unit of amount of substance (symbol mol).
	Mole = quantity.MustNew(1, "N")

	// Candela is the base unit of luminous intensity (symbol cd).
	Candela = quantity.MustNew(1, "J")
)

// The recognized derived units. Pretty-printing folds a matching
// dimension vector back into these symbols.
var (
	// Volt is electric potential, kg·m²·A⁻¹·s⁻³ (symbol V).
	Volt = quantity.MustNew(1, "LLM/ITTT")

	// Watt is power, kg·m²·s⁻³ (symbol W).
	Watt = quantity.MustNew(1, "LLM/TTT")

	// Joule is energy, kg·m²·s⁻² (symbol J).
	Joule = quantity.MustNew(1, "LLM/TT")

	// Newton is force, kg·m·s⁻² (symbol N).
	Newton = quantity.MustNew(1, "LM/TT")

	// Pascal is pressure, kg·m⁻¹·s⁻² (symbol Pa).
	Pascal = quantity.MustNew(1, "M/LTT")

	// Coulomb is electric charge, A·s (symbol C).
	Coulomb = quantity.MustNew(1, "IT")
)
