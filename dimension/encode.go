package dimension

import "fmt"

// MarshalText encodes the vector as its canonical notation. Together
// with UnmarshalText this gives Vectors a round-tripping representation
// in JSON and any other text-based codec.
func (v Vector) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes canonical notation produced by MarshalText.
func (v *Vector) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the vector as its canonical notation string.
func (v Vector) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a canonical notation scalar.
func (v *Vector) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var notation string
	if err := unmarshal(&notation); err != nil {
		return fmt.Errorf("decode dimension notation: %w", err)
	}
	return v.UnmarshalText([]byte(notation))
}
