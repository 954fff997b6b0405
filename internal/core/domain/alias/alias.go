/*
Package alias defines the values cached under user-chosen aliases and the
persisted picker state that holds them.
*/
package alias

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the scalar type a caller expects an alias to hold.
type Kind int

const (
	KindString Kind = iota
	KindInt
)

func (k Kind) String() string {
	if k == KindInt {
		return "int"
	}
	return "str"
}

/*
Value is a cached scalar: either a string (paths are strings too) or an
integer. The zero Value is the empty string.
*/
type Value struct {
	kind   Kind
	text   string
	number int
}

// String wraps s as a string Value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Int wraps n as an integer Value.
func Int(n int) Value {
	return Value{kind: KindInt, number: n}
}

// Kind reports whether the value was stored as a string or an integer.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the value in string form. It never fails.
func (v Value) AsString() string {
	if v.kind == KindInt {
		return strconv.Itoa(v.number)
	}
	return v.text
}

// AsInt returns the value as an integer. Strings are parsed as base-10.
func (v Value) AsInt() (int, error) {
	if v.kind == KindInt {
		return v.number, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.text))
	if err != nil {
		return 0, fmt.Errorf("value %q is not a valid int", v.text)
	}
	return n, nil
}

// Coerce returns the value converted to kind k.
func (v Value) Coerce(k Kind) (Value, error) {
	if k == KindInt {
		n, err := v.AsInt()
		if err != nil {
			return Value{}, err
		}
		return Int(n), nil
	}
	return String(v.AsString()), nil
}

func (v Value) String() string {
	return v.AsString()
}

// MarshalJSON writes integers as JSON numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInt {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

/*
UnmarshalJSON accepts any JSON scalar. Integral numbers become integers,
strings stay strings, and anything else (floats, booleans, nested values)
is kept as its raw JSON text so the state file still loads.
*/
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch typed := raw.(type) {
	case string:
		*v = String(typed)
	case json.Number:
		if n, err := strconv.Atoi(typed.String()); err == nil {
			*v = Int(n)
		} else {
			*v = String(typed.String())
		}
	case nil:
		*v = String("")
	default:
		*v = String(string(bytes.TrimSpace(data)))
	}
	return nil
}

/*
State is the persisted form of the alias store: every alias with its value
plus the directory the last picker session ended in.
*/
type State struct {
	SavedPaths      map[string]Value `json:"saved_paths"`
	LastBrowsedPath *string          `json:"last_browsed_path"`
}

// NewState returns an empty State with an allocated alias map.
func NewState() State {
	return State{SavedPaths: make(map[string]Value)}
}
