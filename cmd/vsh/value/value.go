// Package value implements the dynamic JSON-typed value carried by Objects:
// null, bool, int64, float64, string, arrays, and nested Objects.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Value is the sum type for anything an Object field can hold: nil, bool,
// int64, float64, string, []Value, or Object. It is deliberately not a
// sealed interface — callers type-switch on the concrete Go type.
type Value = interface{}

// ParseJSON decodes raw JSON bytes into a Value tree, preserving the
// integer/float distinction that encoding/json's default interface{}
// decoding collapses (it always produces float64). JSON objects decode to
// Object with their keys in sorted order; the source key order is not kept.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return fromRaw(raw), nil
}

func fromRaw(raw interface{}) Value {
	switch v := raw.(type) {
	case json.Number:
		return numberFromJSON(v)
	case []interface{}:
		out := make([]Value, len(v))
		for i, e := range v {
			out[i] = fromRaw(e)
		}
		return out
	case map[string]interface{}:
		// Plain map decoding loses key order, so keys are sorted to make the
		// result deterministic. This branch handles every object ParseJSON
		// decodes and every nested object Object.UnmarshalJSON decodes; only
		// the top level of Object.UnmarshalJSON keeps source key order.
		obj := NewObject()
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, fromRaw(v[k]))
		}
		return obj
	default:
		return v
	}
}

// numberFromJSON converts a json.Number to int64 when it has no fractional
// or exponent part, else to float64.
func numberFromJSON(n json.Number) Value {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}
	f, _ := n.Float64()
	return f
}

// Stringify renders v the way a shell field is rendered for comparison,
// substring matching, and non-raw interpolation:
//
//	null   -> ""
//	bool   -> "true" / "false"
//	number -> canonical decimal
//	string -> itself
//	other  -> canonical JSON
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		b, err := json.Marshal(toJSONable(v))
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// ParseNumber reports whether s parses as a number and, if so, its value.
// Used by sort/where/min/max/sum for numeric-vs-string coercion.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsIntegral reports whether f has no fractional part and fits an int64,
// used when emitting a computed number (sum) that should look like an
// integer rather than "3.0".
func IsIntegral(f float64) bool {
	return f == float64(int64(f))
}
