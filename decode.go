// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pminten/jsontree/internal/jsonwire"
)

// maxNestingDepth is the maximum permitted depth of nested JSON containers.
// Inputs nested deeper than this fail with a SyntaxError rather than
// risk exhausting the call stack, since each nesting level recurses.
const maxNestingDepth = 10000

var errMaxDepth = &SyntaxError{str: "exceeded max depth"}

// Parse decodes a single JSON value from b.
//
// The input may be surrounded by whitespace, but after trimming it must
// consist of exactly one JSON value; any other content after the value is an
// error. The returned error is always a *SyntaxError locating the failure.
// The decoded Value does not alias b, so the caller may reuse the buffer.
//
// Parse is safe for concurrent use; each call draws a pooled Parser.
func Parse(b []byte) (Value, error) {
	p := getParser()
	defer putParser(p)
	return p.Parse(b)
}

// ParseString decodes a single JSON value from s. See Parse.
func ParseString(s string) (Value, error) {
	p := getParser()
	defer putParser(p)
	return p.ParseString(s)
}

// A Parser decodes JSON values. The zero value is ready for use.
//
// Reusing a Parser across documents amortizes its internal scratch buffer
// and object-name cache. A Parser may not be used concurrently; for that,
// use the package-level Parse and ParseString.
type Parser struct {
	scratch []byte       // accumulator for strings containing escape sequences
	names   *stringCache // interned object names
}

// Parse decodes a single JSON value from b. See the package-level Parse.
func (p *Parser) Parse(b []byte) (Value, error) {
	in := b[jsonwire.ConsumeWhitespace(b):]
	if len(in) == 0 {
		return Value{}, &SyntaxError{Offset: int64(len(b)), err: io.ErrUnexpectedEOF}
	}
	v, rest, err := p.parseValue(in, 0)
	if err != nil {
		return Value{}, errorWithOffset(err, int64(len(b)-len(rest)))
	}
	rest = rest[jsonwire.ConsumeWhitespace(rest):]
	if len(rest) > 0 {
		err := newInvalidCharacterError(rest[0], "after top-level value")
		return Value{}, errorWithOffset(err, int64(len(b)-len(rest)))
	}
	return v, nil
}

// ParseString decodes a single JSON value from s. See the package-level Parse.
func (p *Parser) ParseString(s string) (Value, error) {
	return p.Parse([]byte(s))
}

// parseValue decodes the JSON value at the start of in, which must be
// non-empty and free of leading whitespace, and returns the remaining input
// after it. On failure the returned remainder locates the offending input.
//
// Keyword literals consume exactly their own characters with no validation of
// what follows; trailing characters are left for the caller to judge, either
// as a container's comma-vs-close decision or as the entry point's
// trailing-content check.
func (p *Parser) parseValue(in []byte, depth int) (Value, []byte, error) {
	if depth > maxNestingDepth {
		return Value{}, in, errMaxDepth
	}
	switch c := in[0]; {
	case c == 'n':
		if n := jsonwire.ConsumeNull(in); n > 0 {
			return Null, in[n:], nil
		}
		n, err := consumeLiteral(in, "null")
		return Value{}, in[n:], err
	case c == 'f':
		if n := jsonwire.ConsumeFalse(in); n > 0 {
			return False, in[n:], nil
		}
		n, err := consumeLiteral(in, "false")
		return Value{}, in[n:], err
	case c == 't':
		if n := jsonwire.ConsumeTrue(in); n > 0 {
			return True, in[n:], nil
		}
		n, err := consumeLiteral(in, "true")
		return Value{}, in[n:], err
	case c == '-' && len(in) > 1 && '0' <= in[1] && in[1] <= '9':
		v, rest := parseNumber(in[1:])
		if v.isFloat {
			v.num = math.Float64bits(-math.Float64frombits(v.num))
		} else {
			v.num = uint64(-int64(v.num))
		}
		return v, rest, nil
	case '0' <= c && c <= '9':
		v, rest := parseNumber(in)
		return v, rest, nil
	case c == '[':
		in = in[1:]
		in = in[jsonwire.ConsumeWhitespace(in):]
		return p.parseArray(in, depth+1)
	case c == '{':
		in = in[1:]
		in = in[jsonwire.ConsumeWhitespace(in):]
		return p.parseObject(in, depth+1)
	case c == '"':
		s, rest, err := p.parseString(in, false)
		if err != nil {
			return Value{}, rest, err
		}
		return String(s), rest, nil
	default:
		// A '-' not followed by a digit also lands here and is reported
		// as the offending character itself.
		return Value{}, in, newInvalidCharacterError(c, "at start of value")
	}
}

// consumeLiteral consumes the next JSON literal per RFC 7159, section 3.
// It reports the number of bytes consumed along the literal, which on failure
// locates either the mismatched character or the truncation point.
func consumeLiteral(b []byte, lit string) (n int, err error) {
	for i := 0; i < len(b) && i < len(lit); i++ {
		if b[i] != lit[i] {
			return i, newInvalidCharacterError(b[i], "within literal "+lit+" (expecting "+strconv.QuoteRune(rune(lit[i]))+")")
		}
	}
	if len(b) < len(lit) {
		return len(b), io.ErrUnexpectedEOF
	}
	return len(lit), nil
}

// parseNumber decodes the JSON number literal at the start of in, which must
// begin with a decimal digit, and returns the remaining input after it.
//
// The grammar has no exponent notation, so a trailing 'e' is left unconsumed
// for the caller to reject. parseNumber itself cannot fail: it stops at the
// first character that does not extend the literal. Integer literals fold as
// an exact int64 and degrade to float64 on overflow; a fractional part always
// produces the float64 form, with the digits after '.' accumulated against a
// growing power-of-ten divisor. A bare trailing '.' yields a fractional
// contribution of zero, so "1." decodes as the float 1.0.
func parseNumber(in []byte) (Value, []byte) {
	var i int
	var whole int64
	var f float64
	var isFloat bool
	for i < len(in) && '0' <= in[i] && in[i] <= '9' {
		d := int64(in[i] - '0')
		switch {
		case isFloat:
			f = f*10 + float64(d)
		case whole > (math.MaxInt64-d)/10:
			isFloat = true
			f = float64(whole)*10 + float64(d)
		default:
			whole = whole*10 + d
		}
		i++
	}
	if i < len(in) && in[i] == '.' {
		if !isFloat {
			isFloat = true
			f = float64(whole)
		}
		i++
		divisor := 10.0
		for i < len(in) && '0' <= in[i] && in[i] <= '9' {
			f += float64(in[i]-'0') / divisor
			divisor *= 10
			i++
		}
	}
	if isFloat {
		return Float(f), in[i:]
	}
	return Int(whole), in[i:]
}

// parseString decodes the JSON string literal at the start of in, which must
// begin with '"', and returns the unescaped contents along with the remaining
// input after the closing quote. If intern is set, the contents are interned
// through the Parser's name cache, since object names tend to repeat.
//
// The escape sequences \f, \n, \r, \t, \", \\, and \/ decode per the JSON
// grammar. A \u followed by four hex digits decodes to that code point with
// no combining of surrogate halves, so an unpaired half becomes U+FFFD. Any
// other escaped character passes through with the backslash dropped, and any
// unescaped character before the closing quote passes through verbatim,
// including raw control characters.
func (p *Parser) parseString(in []byte, intern bool) (string, []byte, error) {
	if len(in) == 0 {
		return "", in, io.ErrUnexpectedEOF
	}
	if in[0] != '"' {
		return "", in, newInvalidCharacterError(in[0], "at start of string (expecting '\"')")
	}

	// Fast path: scan for the closing quote with no escape sequences.
	i := 1
	for i < len(in) && in[i] != '\\' {
		if in[i] == '"' {
			return p.makeString(in[1:i], intern), in[i+1:], nil
		}
		i++
	}
	if i == len(in) {
		return "", in[len(in):], io.ErrUnexpectedEOF
	}

	// Slow path: unescape into the scratch buffer.
	b := append(p.scratch[:0], in[1:i]...)
	for {
		if i == len(in) {
			p.scratch = b
			return "", in[len(in):], io.ErrUnexpectedEOF
		}
		switch c := in[i]; c {
		case '"':
			p.scratch = b
			return p.makeString(b, intern), in[i+1:], nil
		case '\\':
			i++
			if i == len(in) {
				p.scratch = b
				return "", in[len(in):], io.ErrUnexpectedEOF
			}
			switch e := in[i]; e {
			case 'f':
				b = append(b, '\f')
				i++
			case 'n':
				b = append(b, '\n')
				i++
			case 'r':
				b = append(b, '\r')
				i++
			case 't':
				b = append(b, '\t')
				i++
			case '"', '\\', '/':
				b = append(b, e)
				i++
			case 'u':
				if len(in) < i+5 {
					p.scratch = b
					return "", in[len(in):], io.ErrUnexpectedEOF
				}
				x, ok := jsonwire.ParseHexUint16(in[i+1 : i+5])
				if !ok {
					p.scratch = b
					return "", in[i-1:], newInvalidEscapeSequenceError(in[i-1 : i+5])
				}
				b = utf8.AppendRune(b, rune(x))
				i += 5
			default:
				// Any other escaped character passes through literally.
				b = append(b, e)
				i++
			}
		default:
			b = append(b, c)
			i++
		}
	}
}

// makeString converts b to a string, interning object names through the
// Parser's cache.
func (p *Parser) makeString(b []byte, intern bool) string {
	if intern {
		if p.names == nil {
			p.names = new(stringCache)
		}
		return p.names.make(b)
	}
	return string(b)
}

// parseArray decodes the elements of a JSON array. The leading '[' and any
// whitespace after it have already been consumed; parseArray consumes through
// the closing ']' and returns the remaining input after it.
//
// After a comma another element is required, so a trailing comma fails inside
// the dispatcher with ']' rejected at the start of a value.
func (p *Parser) parseArray(in []byte, depth int) (Value, []byte, error) {
	if len(in) == 0 {
		return Value{}, in, io.ErrUnexpectedEOF
	}
	if in[0] == ']' {
		return Array(), in[1:], nil
	}
	var elems []Value
	for {
		v, rest, err := p.parseValue(in, depth)
		if err != nil {
			return Value{}, rest, err
		}
		elems = append(elems, v)
		rest = rest[jsonwire.ConsumeWhitespace(rest):]
		if len(rest) == 0 {
			return Value{}, rest, io.ErrUnexpectedEOF
		}
		switch rest[0] {
		case ',':
			in = rest[1:]
			in = in[jsonwire.ConsumeWhitespace(in):]
			if len(in) == 0 {
				return Value{}, in, io.ErrUnexpectedEOF
			}
		case ']':
			return Value{kind: '[', arr: elems}, rest[1:], nil
		default:
			return Value{}, rest, newInvalidCharacterError(rest[0], "after array element (expecting ',' or ']')")
		}
	}
}

// parseObject decodes the members of a JSON object. The leading '{' and any
// whitespace after it have already been consumed; parseObject consumes
// through the closing '}' and returns the remaining input after it.
//
// Duplicate names overwrite, so the last member with a given name wins.
// After a comma another member is required, so a trailing comma fails inside
// the string consumer with '}' rejected at the start of a name.
func (p *Parser) parseObject(in []byte, depth int) (Value, []byte, error) {
	if len(in) == 0 {
		return Value{}, in, io.ErrUnexpectedEOF
	}
	obj := make(map[string]Value)
	if in[0] == '}' {
		return Object(obj), in[1:], nil
	}
	for {
		name, rest, err := p.parseString(in, true)
		if err != nil {
			return Value{}, rest, err
		}
		rest = rest[jsonwire.ConsumeWhitespace(rest):]
		if len(rest) == 0 {
			return Value{}, rest, io.ErrUnexpectedEOF
		}
		if rest[0] != ':' {
			return Value{}, rest, newInvalidCharacterError(rest[0], "after object name (expecting ':')")
		}
		rest = rest[1:]
		rest = rest[jsonwire.ConsumeWhitespace(rest):]
		if len(rest) == 0 {
			return Value{}, rest, io.ErrUnexpectedEOF
		}
		var v Value
		v, rest, err = p.parseValue(rest, depth)
		if err != nil {
			return Value{}, rest, err
		}
		obj[name] = v
		rest = rest[jsonwire.ConsumeWhitespace(rest):]
		if len(rest) == 0 {
			return Value{}, rest, io.ErrUnexpectedEOF
		}
		switch rest[0] {
		case ',':
			in = rest[1:]
			in = in[jsonwire.ConsumeWhitespace(in):]
		case '}':
			return Object(obj), rest[1:], nil
		default:
			return Value{}, rest, newInvalidCharacterError(rest[0], "after object value (expecting ',' or '}')")
		}
	}
}
