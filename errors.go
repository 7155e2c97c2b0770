// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"
	"strconv"
	"strings"
)

const errorPrefix = "jsontree: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("jsontree error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// A SyntaxError describes malformed JSON input and is the only error type
// produced by Parse. Two kinds of failure share this type:
//
//   - The input ended while a value, string, or container was still expected.
//     Such errors wrap io.ErrUnexpectedEOF, so that
//     errors.Is(err, io.ErrUnexpectedEOF) reports true.
//   - The next characters match no valid continuation of the grammar.
//     The message names the offending character or escape sequence.
//
// The message contents as produced by this package may change over time.
type SyntaxError struct {
	// Offset indicates that an error occurred after processing Offset bytes,
	// so the unconsumed remainder of the input begins at input[Offset:].
	Offset int64
	str    string
	err    error // io.ErrUnexpectedEOF for truncated input, otherwise nil
}

func (e *SyntaxError) Error() string {
	if e.str == "" && e.err != nil {
		return errorPrefix + e.err.Error()
	}
	return errorPrefix + e.str
}
func (e *SyntaxError) Unwrap() error              { return e.err }
func (e *SyntaxError) Is(target error) bool       { return e == target || target == Error }
func (e *SyntaxError) withOffset(pos int64) error { return &SyntaxError{Offset: pos, str: e.str, err: e.err} }

// errorWithOffset stamps the byte offset of the failure onto err,
// promoting a bare io.ErrUnexpectedEOF from a consumer into a *SyntaxError.
func errorWithOffset(err error, pos int64) error {
	if err == io.ErrUnexpectedEOF {
		return &SyntaxError{Offset: pos, err: io.ErrUnexpectedEOF}
	}
	if e, ok := err.(*SyntaxError); ok {
		return e.withOffset(pos)
	}
	return err
}

func newInvalidCharacterError(c byte, where string) *SyntaxError {
	return &SyntaxError{str: "invalid character " + escapeCharacter(c) + " " + where}
}

func newInvalidEscapeSequenceError(seq []byte) *SyntaxError {
	return &SyntaxError{str: "invalid escape sequence " + strconv.Quote(string(seq)) + " within string"}
}

func escapeCharacter(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'"'`
	default:
		return "'" + strings.TrimPrefix(strings.TrimSuffix(strconv.Quote(string([]byte{c})), `"`), `"`) + "'"
	}
}
