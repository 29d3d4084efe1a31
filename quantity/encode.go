package quantity

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/mks/dimension"
)

// encoded is the wire shape of a Value: the payload and the canonical
// dimension notation, which round-trips through dimension.Parse.
type encoded struct {
	Value float64 `json:"value" yaml:"value"`
	Dim   string  `json:"dim" yaml:"dim"`
}

// MarshalJSON encodes the value as {"value": ..., "dim": "..."}.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(encoded{Value: v.scalar, Dim: v.dim.String()})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var e encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("decode quantity: %w", err)
	}
	dim, err := dimension.Parse(e.Dim)
	if err != nil {
		return err
	}
	*v = Value{scalar: e.Value, dim: dim}
	return nil
}

// MarshalYAML encodes the value in the same value/dim shape as JSON.
func (v Value) MarshalYAML() (interface{}, error) {
	return encoded{Value: v.scalar, Dim: v.dim.String()}, nil
}

// UnmarshalYAML decodes the form produced by MarshalYAML.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var e encoded
	if err := unmarshal(&e); err != nil {
		return fmt.Errorf("decode quantity: %w", err)
	}
	dim, err := dimension.Parse(e.Dim)
	if err != nil {
		return err
	}
	*v = Value{scalar: e.Value, dim: dim}
	return nil
}
