// Package coerce converts raw theme document values into primitive types.
//
// Every function accepts any value (including nil) and never fails: a value of
// the wrong underlying type, or no value at all, yields the type's default.
// Booleans count as numbers (true is 1, false is 0), matching property-list
// semantics where both are stored as numeric objects.
package coerce

import (
	"math"
	"strconv"
	"time"
)

// number reports the float64 form of a numeric or boolean raw value.
func number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Bool is false unless raw is a number or boolean whose truthiness is true.
func Bool(raw any) bool {
	n, ok := number(raw)
	return ok && n != 0
}

// String returns raw itself when it is a string and the decimal form of
// numbers. The second result is false when raw has no string form.
func String(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}
		return "0", true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	return "", false
}

// Int truncates numeric values toward zero, else 0.
func Int(raw any) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	n, ok := number(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(math.Trunc(n))
}

// Float returns numeric values as float64, else 0.
func Float(raw any) float64 {
	n, _ := number(raw)
	return n
}

// Duration reads a numeric value as seconds, else 0.
func Duration(raw any) time.Duration {
	n, ok := number(raw)
	if !ok {
		return 0
	}
	return time.Duration(math.Round(n * float64(time.Second)))
}

// IsEmpty is true for an absent string and for a zero-length one.
func IsEmpty(s string, ok bool) bool {
	return !ok || len(s) == 0
}

// Map returns raw as a nested mapping, or nil when it is not one.
func Map(raw any) map[string]any {
	m, _ := raw.(map[string]any)
	return m
}
