package fpl

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

var ErrValue = errors.New("invalid stat value")

// Value is a nullable numeric statistic. The upstream api is inconsistent with its
// encoding, some stats are plain numbers, some are decimal strings like "5.2" and any
// of them may be null when unknown.
type Value struct {
	Float float64
	Valid bool
}

// Null is the unknown value.
var Null = Value{} //nolint:gochecknoglobals

func Some(value float64) Value {
	return Value{Float: value, Valid: true}
}

// Transform maps a raw stat onto its display value.
type Transform func(float64) float64

// Tenths converts values that are stored in tenths of a unit, such as costs.
func Tenths(value float64) float64 {
	return value / 10
}

// Map applies the transform to a known value. Unknown values stay unknown.
func (v Value) Map(transform Transform) Value {
	if !v.Valid || transform == nil {
		return v
	}

	return Some(transform(v.Float))
}

func (v Value) String() string {
	if !v.Valid {
		return "?"
	}

	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// Fixed formats the value with a fixed number of decimals.
func (v Value) Fixed(decimals int) string {
	if !v.Valid {
		return "?"
	}

	return strconv.FormatFloat(v.Float, 'f', decimals, 64)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = Null

		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return errors.Join(err, ErrValue)
		}

		if raw == "" {
			*v = Null

			return nil
		}

		parsed, errParse := strconv.ParseFloat(raw, 64)
		if errParse != nil {
			return errors.Join(errParse, ErrValue)
		}

		*v = Some(parsed)

		return nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return errors.Join(err, ErrValue)
	}

	*v = Some(number)

	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid || math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(v.Float, 'f', -1, 64)), nil
}
