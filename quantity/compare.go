package quantity

// compare checks that the two operands carry the same dimension and
// returns their payloads for numeric comparison. Comparing values of
// different dimensions is a unit error, not false.
func (v Value) compare(o Value) (float64, float64, error) {
	if v.dim != o.dim {
		return 0, 0, newMismatch(v.dim, o.dim)
	}
	return v.scalar, o.scalar, nil
}

// Equal reports whether the two values are numerically equal. Fails with
// a *MismatchError when the dimensions differ.
func (v Value) Equal(o Value) (bool, error) {
	a, b, err := v.compare(o)
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// Less reports whether v is numerically less than o in the same unit.
func (v Value) Less(o Value) (bool, error) {
	a, b, err := v.compare(o)
	if err != nil {
		return false, err
	}
	return a < b, nil
}

// LessEqual reports whether v is at most o in the same unit.
func (v Value) LessEqual(o Value) (bool, error) {
	a, b, err := v.compare(o)
	if err != nil {
		return false, err
	}
	return a <= b, nil
}

// Greater reports whether v is numerically greater than o in the same unit.
func (v Value) Greater(o Value) (bool, error) {
	a, b, err := v.compare(o)
	if err != nil {
		return false, err
	}
	return a > b, nil
}

// GreaterEqual reports whether v is at least o in the same unit.
func (v Value) GreaterEqual(o Value) (bool, error) {
	a, b, err := v.compare(o)
	if err != nil {
		return false, err
	}
	return a >= b, nil
}
