// Package si defines the named quantities of the MKS system: the seven
// SI base units, the recognized derived units, and a few physical
// constants. Each unit is a quantity.Value with payload 1 and the unit's
// dimension vector, so ordinary arithmetic builds dimensioned values:
//
//	d := si.Meter.MulScalar(3)        // 3 m
//	v := d.Div(si.Second.MulScalar(2)) // 1.5 m.s⁻¹
//
// Registry exposes the full symbol table, and Bind inserts it into a
// caller-owned map with collision protection. All package values are
// pure data, initialized once and safe to share.
package si
