package swipe

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// Optional is a float64 that may be left unspecified, in the manner of
// sql.NullFloat64. Non-finite values count as unspecified.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a specified Optional holding v.
func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

// FromPtr returns Some(*v), or an unspecified Optional for nil.
func FromPtr(v *float64) Optional {
	if v == nil {
		return Optional{}
	}
	return Some(*v)
}

// IsSet returns true if o holds a finite value.
func (o Optional) IsSet() bool {
	return o.Valid && !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0)
}

// Or returns the held value if set, fallback otherwise.
func (o Optional) Or(fallback float64) float64 {
	if o.IsSet() {
		return o.Value
	}
	return fallback
}

// UnmarshalYAML marks the value as specified when the key is present.
func (o *Optional) UnmarshalYAML(value *yaml.Node) error {
	var v float64
	if err := value.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON encodes an unset value as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON decodes null as unspecified.
func (o *Optional) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = FromPtr(v)
	return nil
}
