package openwrt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an arbitrary JSON value whose shape is not modeled, kept so that
// fields added by newer netifd versions survive a parse/serialize round trip.
//
// The zero Value is null. Numbers are kept as json.Number and are never
// converted through float64.
type Value struct {
	v any // nil, bool, json.Number, string, []Value or map[string]Value
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	switch v.v.(type) {
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []Value:
		return KindArray
	case map[string]Value:
		return KindObject
	default:
		return KindNull
	}
}

func (v Value) IsNull() bool { return v.v == nil }

func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

func (v Value) Number() (json.Number, bool) {
	n, ok := v.v.(json.Number)
	return n, ok
}

// Str returns the string held by v. It is not named String to keep fmt output
// of a Value readable for every kind.
func (v Value) Str() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

func (v Value) Array() ([]Value, bool) {
	a, ok := v.v.([]Value)
	return a, ok
}

func (v Value) Object() (map[string]Value, bool) {
	o, ok := v.v.(map[string]Value)
	return o, ok
}

// Get returns the member key of an object value.
func (v Value) Get(key string) (Value, bool) {
	o, ok := v.v.(map[string]Value)
	if !ok {
		return Value{}, false
	}
	member, ok := o[key]
	return member, ok
}

// String renders the value as compact JSON.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid value: %v>", err)
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	*v = fromRaw(raw)
	return nil
}

func fromRaw(raw any) Value {
	switch t := raw.(type) {
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = fromRaw(item)
		}
		return Value{v: items}
	case map[string]any:
		members := make(map[string]Value, len(t))
		for key, member := range t {
			members[key] = fromRaw(member)
		}
		return Value{v: members}
	default:
		// nil, bool, json.Number, string
		return Value{v: t}
	}
}
