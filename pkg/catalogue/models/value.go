// Package models defines data structures for catalogue extraction.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Value is a scalar cell value: nil (missing), string, int64, float64 or bool.
type Value = interface{}

// FormatValue renders a cell value as text. Missing values render as "".
func FormatValue(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// IDKey returns the canonical identity of a dataset ID value.
// Integral numbers lose their fractional part, so 42, 42.0 and "42" share a key.
func IDKey(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(x)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if k, ok := integralKey(f); ok {
				return k
			}
		}
		return s
	case float64:
		if k, ok := integralKey(x); ok {
			return k
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return FormatValue(v)
	}
}

func integralKey(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}
