package value

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Object is an ordered mapping from string keys to Values. Insertion order
// is observable: it drives default column order when printed and the order
// `enumerate` prepends its index key in. Keys are unique within an Object —
// Set on an existing key overwrites the value in place without moving it.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty Object.
func NewObject() Object {
	return Object{vals: make(map[string]Value)}
}

// NewObjectCap returns an empty Object with room for n keys.
func NewObjectCap(n int) Object {
	return Object{keys: make([]string, 0, n), vals: make(map[string]Value, n)}
}

// Set assigns key=val, appending key to the end of the key order on first
// assignment and leaving the order unchanged on overwrite.
func (o *Object) Set(key string, val Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// Get returns the value at key and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (o Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o Object) Len() int {
	return len(o.keys)
}

// Clone returns a shallow copy with an independent key order and map.
func (o Object) Clone() Object {
	out := NewObjectCap(len(o.keys))
	for _, k := range o.keys {
		out.Set(k, o.vals[k])
	}
	return out
}

// WithIndexPrefix returns a copy with key set first in key order, used by
// `enumerate` to prepend "index" ahead of the object's existing keys.
func (o Object) WithIndexPrefix(key string, val Value) Object {
	out := NewObjectCap(o.Len() + 1)
	out.Set(key, val)
	for _, k := range o.keys {
		out.Set(k, o.vals[k])
	}
	return out
}

// KeySignature returns a value comparable with ==, usable to test whether
// two Objects share the same key order (the printer's table-vs-JSON-lines
// decision).
func (o Object) KeySignature() string {
	var buf bytes.Buffer
	for _, k := range o.keys {
		buf.WriteString(k)
		buf.WriteByte('\x00')
	}
	return buf.String()
}

// MarshalJSON renders the Object as a JSON object, preserving key order
// (Go's encoding/json always emits map keys sorted, so Object implements
// its own encoder instead of being a plain map).
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(toJSONable(o.vals[k]))
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into an Object, preserving the
// int64/float64 distinction (see ParseJSON) and the source order of its
// top-level keys; nested objects decode with their keys sorted.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}

	*o = NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		o.Set(key, fromRaw(raw))
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// CanonicalJSON renders the Object as JSON with its keys sorted, used by
// `uniq`'s whole-object dedup key.
func (o Object) CanonicalJSON() string {
	keys := append([]string(nil), o.keys...)
	sort.Strings(keys)
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		buf.Write(kb)
		buf.WriteByte(':')
		vb, _ := json.Marshal(toJSONable(o.vals[k]))
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.String()
}

// toJSONable converts a Value tree into something encoding/json can marshal
// directly (Object already implements json.Marshaler; []Value and nested
// Objects need their elements converted the same way, but Object itself is
// passed through unchanged so its MarshalJSON runs).
func toJSONable(v Value) interface{} {
	switch x := v.(type) {
	case Object:
		return x
	case []Value:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = toJSONable(e)
		}
		return out
	default:
		return x
	}
}
