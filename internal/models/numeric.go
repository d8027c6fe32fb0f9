package models

import (
	"encoding/json"

	"github.com/finpulse/finpulse/internal/common"
)

// ValueKind discriminates the shapes a provider numeric value can take.
type ValueKind int

const (
	KindRaw    ValueKind = iota // non-numeric passthrough
	KindInt                     // integral scalar
	KindFloat                   // floating scalar
	KindFloats                  // homogeneous numeric array
)

// Value is a tagged union over the numeric shapes returned by market data
// providers: integral scalars, floating scalars, numeric arrays, and anything
// else as an opaque passthrough. Providers wrap numbers inconsistently
// (plain, quoted, {raw, fmt} objects), so decoding is deliberately lenient.
type Value struct {
	Kind   ValueKind
	Int    int64
	Float  float64
	Floats []float64
	Raw    json.RawMessage
}

// IntValue builds an integral Value.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue builds a floating Value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// FloatsValue builds an array Value.
func FloatsValue(fs []float64) Value {
	return Value{Kind: KindFloats, Floats: fs}
}

// UnmarshalJSON decodes a provider value into the appropriate variant.
// A JSON number without a fractional part becomes KindInt, any other number
// KindFloat, an all-numeric array KindFloats. Objects of the form
// {"raw": <number>, ...} unwrap to the raw number. Everything else is kept
// verbatim as KindRaw — decoding is total and never fails on shape.
func (v *Value) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		if i, err := num.Int64(); err == nil {
			*v = IntValue(i)
			return nil
		}
		if f, err := num.Float64(); err == nil {
			*v = FloatValue(f)
			return nil
		}
	}

	// JSON null is a no-op into a slice, so require a real array here.
	var floats []float64
	if err := json.Unmarshal(data, &floats); err == nil && floats != nil {
		*v = FloatsValue(floats)
		return nil
	}

	var wrapped struct {
		Raw *json.Number `json:"raw"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Raw != nil {
		if i, err := wrapped.Raw.Int64(); err == nil {
			*v = IntValue(i)
			return nil
		}
		if f, err := wrapped.Raw.Float64(); err == nil {
			*v = FloatValue(f)
			return nil
		}
	}

	*v = Value{Kind: KindRaw, Raw: append(json.RawMessage(nil), data...)}
	return nil
}

// MarshalJSON emits the native form of the value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	case KindFloats:
		return json.Marshal(v.Floats)
	default:
		if len(v.Raw) == 0 {
			return []byte("null"), nil
		}
		return v.Raw, nil
	}
}

// Normalize returns the value with every floating component rounded to the
// given number of decimal places. Integers and raw passthroughs are returned
// unchanged; arrays preserve input order. Normalize is idempotent and total.
func (v Value) Normalize(places int) Value {
	switch v.Kind {
	case KindFloat:
		return FloatValue(common.Round(v.Float, places))
	case KindFloats:
		out := make([]float64, len(v.Floats))
		for i, f := range v.Floats {
			out[i] = common.Round(f, places)
		}
		return FloatsValue(out)
	default:
		return v
	}
}

// Float64 returns the scalar numeric value and true for KindInt and KindFloat.
func (v Value) Float64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Int64 returns the integral value and true for KindInt.
func (v Value) Int64() (int64, bool) {
	if v.Kind == KindInt {
		return v.Int, true
	}
	return 0, false
}

// IsNumeric reports whether the value carries a scalar number.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}
