// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"math"
	"strconv"
)

// Kind represents each possible JSON value kind with a single byte,
// which is conveniently the first byte of that kind's grammar
// with the restriction that numbers always be represented with '0':
//
//   - 'n': null
//   - 'f': false
//   - 't': true
//   - '"': string
//   - '0': number
//   - '[': array
//   - '{': object
//
// The zero Kind represents an invalid Value.
type Kind byte

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case 'n':
		return "null"
	case 'f':
		return "false"
	case 't':
		return "true"
	case '"':
		return "string"
	case '0':
		return "number"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "<invalid jsontree.Kind: " + escapeCharacter(byte(k)) + ">"
	}
}

// Value represents a decoded JSON value, which may be one of the following:
//
//   - a JSON literal (i.e., null, true, or false)
//   - a JSON string (e.g., "hello, world!")
//   - a JSON number (e.g., 123.456)
//   - a JSON array of Values (e.g., [1,"two",3])
//   - a JSON object mapping string keys to Values (e.g., {"key":"value"})
//
// A number holds either an exact int64 or a float64: integer literals that
// fit in an int64 decode to the integer form, while literals with a
// fractional part (and integer literals too large for an int64) decode to
// the floating-point form.
type Value struct {
	// NOTE: This is an opaque type that functionally represents a union type.
	// We use a concrete struct type instead of an interface type to have
	// fine granularity control over allocations and mutations.
	kind    Kind
	isFloat bool   // for kind '0': num holds float64 bits instead of an int64
	num     uint64 // for kind '0': the int64 value or float64 bits
	str     string // for kind '"'
	arr     []Value
	obj     map[string]Value
}

var (
	// Null is the JSON null value.
	Null = Value{kind: 'n'}
	// True is the JSON true value.
	True = Value{kind: 't'}
	// False is the JSON false value.
	False = Value{kind: 'f'}
)

// Bool constructs a Value representing a JSON boolean.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// String constructs a Value representing a JSON string.
func String(s string) Value {
	return Value{kind: '"', str: s}
}

// Int constructs a Value representing a JSON number from an int64.
func Int(n int64) Value {
	return Value{kind: '0', num: uint64(n)}
}

// Float constructs a Value representing a JSON number from a float64.
func Float(n float64) Value {
	return Value{kind: '0', isFloat: true, num: math.Float64bits(n)}
}

// Array constructs a Value representing a JSON array of the given elements.
func Array(elems ...Value) Value {
	return Value{kind: '[', arr: elems}
}

// Object constructs a Value representing a JSON object.
// The Value holds the provided map directly rather than a copy of it.
func Object(members map[string]Value) Value {
	return Value{kind: '{', obj: members}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the value for a JSON boolean.
// It panics if the value kind is not a JSON boolean.
func (v Value) Bool() bool {
	switch v.kind {
	case 't':
		return true
	case 'f':
		return false
	default:
		panic("invalid JSON value kind: " + v.kind.String())
	}
}

// IsInt reports whether v is a JSON number holding an exact int64.
// Numbers decoded from literals with a fractional part report false,
// as do integer literals too large to represent in an int64.
func (v Value) IsInt() bool {
	return v.kind == '0' && !v.isFloat
}

// Int returns the signed integer value for a JSON number.
// It panics if the value kind is not a JSON number or
// if the number does not hold an exact int64 (see IsInt).
func (v Value) Int() int64 {
	if v.kind != '0' {
		panic("invalid JSON value kind: " + v.kind.String())
	}
	if v.isFloat {
		panic("JSON number is not an integer")
	}
	return int64(v.num)
}

// Float returns the floating-point value for a JSON number,
// converting from the integer form if necessary.
// It panics if the value kind is not a JSON number.
func (v Value) Float() float64 {
	if v.kind != '0' {
		panic("invalid JSON value kind: " + v.kind.String())
	}
	if v.isFloat {
		return math.Float64frombits(v.num)
	}
	return float64(int64(v.num))
}

// Array returns the elements of a JSON array in document order.
// The returned slice aliases the Value's storage and must not be mutated.
// It panics if the value kind is not a JSON array.
func (v Value) Array() []Value {
	if v.kind != '[' {
		panic("invalid JSON value kind: " + v.kind.String())
	}
	return v.arr
}

// Object returns the members of a JSON object.
// The returned map aliases the Value's storage and must not be mutated.
// Iteration order is unspecified.
// It panics if the value kind is not a JSON object.
func (v Value) Object() map[string]Value {
	if v.kind != '{' {
		panic("invalid JSON value kind: " + v.kind.String())
	}
	return v.obj
}

// String returns the decoded value for a JSON string.
// For JSON literals and numbers it returns their JSON text
// (numbers are rendered without exponent notation), and for
// containers and the zero Value it returns a placeholder,
// so printing a Value never panics.
func (v Value) String() string {
	switch v.kind {
	case '"':
		return v.str
	case 'n':
		return "null"
	case 'f':
		return "false"
	case 't':
		return "true"
	case '0':
		if v.isFloat {
			return strconv.FormatFloat(math.Float64frombits(v.num), 'f', -1, 64)
		}
		return strconv.FormatInt(int64(v.num), 10)
	case '[':
		return "<array>"
	case '{':
		return "<object>"
	default:
		return "<invalid jsontree.Value>"
	}
}
