// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontree implements decoding of JSON text into an immutable value
// tree.
//
// Parse transforms an entire JSON document into a Value, a tagged union of
// the JSON kinds: a literal (null, false, or true), a string, a number, an
// ordered array of values, or an object mapping names to values. Decoding is
// a single left-to-right pass of mutually recursive consumers with no
// separate tokenization stage; each consumer recognizes one grammatical
// fragment and hands the remaining input to the next.
//
// The accepted grammar follows RFC 7159 with two deliberate restrictions:
// numbers carry no exponent notation, and \u escape sequences decode as
// standalone code points that never combine into surrogate pairs. In return
// the string grammar is lenient: unrecognized escape sequences decode to the
// escaped character itself and raw control characters pass through verbatim.
// Numbers decode to an exact int64 when the literal is integral and
// representable, and to a float64 otherwise.
//
// After one value only whitespace may remain in the input. Errors report the
// byte offset of the failure and distinguish truncated input, which wraps
// io.ErrUnexpectedEOF, from input that mismatches the grammar.
package jsontree
