package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/mks/quantity"
)

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"3 * kg", "3 kg"},
		{"2*m * 2*m", "4 m²"},
		{"1 * 2*s * 3", "6 s"},
		{"6 * m * s^-1", "6 m.s⁻¹"},
		{"kg * A^2 / cd / m^2", "1 kg.A².cd⁻¹.m⁻²"},
		{"(2*m*s) / (4*m)", "0.5 s"},
		{"m ** 2", "1 m²"},
		{"2**3", "8"},
		{"s^-1", "1 s⁻¹"},
		{"kg / kg", "1"},
		{"6 * m + 6 * m", "12 m"},
		{"-3 * m", "-3 m"},
		{"1e-6 * m", "1e-06 m"},
		{"1.5", "1.5"},
		{"1 * C", "1 C"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v, err := Eval(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestEvalUnitMismatch(t *testing.T) {
	_, err := Eval("6*m + 2*s")
	assert.True(t, quantity.IsMismatch(err))
}

func TestEvalFractionalPower(t *testing.T) {
	_, err := Eval("m^0.5")
	require.Error(t, err)
	assert.False(t, IsSyntaxError(err), "unit errors must not be reported as syntax errors")
}

func TestEvalSyntaxErrors(t *testing.T) {
	tests := []string{
		"",
		"2 +",
		"(2*m",
		"2 * unknown",
		"2 $ 3",
		"3 m", // implicit multiplication is not supported
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Eval(expr)
			assert.True(t, IsSyntaxError(err), "Eval(%q) error = %v, want SyntaxError", expr, err)
		})
	}
}

func TestEvalEnv(t *testing.T) {
	env := map[string]quantity.Value{
		"mi": quantity.MustNew(1609.344, "L"),
	}
	v, err := EvalEnv("2 * mi", env)
	require.NoError(t, err)
	assert.Equal(t, "3218.688 m", v.String())

	_, err = EvalEnv("2 * kg", env)
	assert.True(t, IsSyntaxError(err), "symbols outside the env must be unknown")
}
