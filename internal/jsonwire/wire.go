// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless operations on fragments of JSON text.
//
// Functions in this package operate on a byte slice holding JSON text and
// report the number of leading bytes consumed, leaving error construction and
// the threading of remaining input to the caller.
package jsonwire

// ConsumeWhitespace consumes leading JSON whitespace per RFC 7159, section 2.
func ConsumeWhitespace(b []byte) (n int) {
	// NOTE: The arguments and logic are kept simple for inlineability.
	for len(b) > n && (b[n] == ' ' || b[n] == '\t' || b[n] == '\r' || b[n] == '\n') {
		n++
	}
	return n
}

// ConsumeNull consumes the next JSON null literal per RFC 7159, section 3.
// It returns 0 if it is invalid, in which case the caller should consume the
// literal byte by byte to diagnose the failure.
func ConsumeNull(b []byte) int {
	// NOTE: The arguments and logic are kept simple for inlineability.
	const literal = "null"
	if len(b) >= len(literal) && string(b[:len(literal)]) == literal {
		return len(literal)
	}
	return 0
}

// ConsumeFalse consumes the next JSON false literal per RFC 7159, section 3.
// It returns 0 if it is invalid, in which case the caller should consume the
// literal byte by byte to diagnose the failure.
func ConsumeFalse(b []byte) int {
	// NOTE: The arguments and logic are kept simple for inlineability.
	const literal = "false"
	if len(b) >= len(literal) && string(b[:len(literal)]) == literal {
		return len(literal)
	}
	return 0
}

// ConsumeTrue consumes the next JSON true literal per RFC 7159, section 3.
// It returns 0 if it is invalid, in which case the caller should consume the
// literal byte by byte to diagnose the failure.
func ConsumeTrue(b []byte) int {
	// NOTE: The arguments and logic are kept simple for inlineability.
	const literal = "true"
	if len(b) >= len(literal) && string(b[:len(literal)]) == literal {
		return len(literal)
	}
	return 0
}

// ParseHexUint16 parses b as a 4-digit hexadecimal number.
func ParseHexUint16(b []byte) (v uint16, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	for _, c := range b[:4] {
		switch {
		case '0' <= c && c <= '9':
			c = c - '0'
		case 'a' <= c && c <= 'f':
			c = 10 + c - 'a'
		case 'A' <= c && c <= 'F':
			c = 10 + c - 'A'
		default:
			return 0, false
		}
		v = v*16 + uint16(c)
	}
	return v, true
}
