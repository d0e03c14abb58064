package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that may be absent. The analytics API sends some
// fields as numeric strings ("15.2") and others as "None" or null, so decoding
// never fails: anything that is not a finite number is treated as absent.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// Float returns the value, or 0 when absent.
func (n Number) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// Or returns the value, or def when absent.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// Positive reports whether the number is present and > 0.
func (n Number) Positive() bool { return n.Valid && n.Value > 0 }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	} else {
		raw = string(data)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = Num(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

// Floats converts a series, substituting 0 for absent points.
func Floats(ns []Number) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = n.Float()
	}
	return out
}

// Nums wraps plain floats as present Numbers.
func Nums(vs []float64) []Number {
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}
	return out
}
