package si

import "github.com/c360studio/mks/quantity"

// Physical constants, as quantities with a nontrivial payload.
var (
	// R is the molar gas constant, 8.3144621 J·K⁻¹·mol⁻¹.
	R = quantity.MustNew(8.3144621, "MLL/NTTO")

	// F is the Faraday constant, 9.64853399e4 C·mol⁻¹.
	F = quantity.MustNew(9.64853399e4, "IT/N")

	// Da is the dalton (unified atomic mass unit), 1.660538921e-27 kg.
	Da = quantity.MustNew(1.660538921e-27, "M")
)
