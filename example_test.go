// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree_test

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/pminten/jsontree"
)

// Parse decodes an entire document into a Value tree, which is then
// traversed with the kind-specific accessors.
func ExampleParse() {
	v, err := jsontree.Parse([]byte(`{"service": "relay", "port": 8080, "ratio": 0.5, "tags": ["fast", "beta"]}`))
	if err != nil {
		log.Fatal(err)
	}
	obj := v.Object()
	fmt.Println(obj["service"].String())
	fmt.Println(obj["port"].Int())
	fmt.Println(obj["ratio"].Float())
	for _, tag := range obj["tags"].Array() {
		fmt.Println(tag.String())
	}

	// Output:
	// relay
	// 8080
	// 0.5
	// fast
	// beta
}

// Syntax errors report the byte offset of the failure and distinguish
// truncated input from input that mismatches the grammar.
func ExampleParse_syntaxError() {
	// Truncated input wraps io.ErrUnexpectedEOF.
	_, err := jsontree.Parse([]byte(`{"answer": 42`))
	fmt.Println(err)
	fmt.Println(errors.Is(err, io.ErrUnexpectedEOF))

	// Malformed input names the offending character,
	// and the offset locates it within the input.
	_, err = jsontree.Parse([]byte(`{"answer": 42}}`))
	var syntaxErr *jsontree.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Println(syntaxErr.Offset, syntaxErr)
	}

	// Output:
	// jsontree: unexpected EOF
	// true
	// 14 jsontree: invalid character '}' after top-level value
}

// JSON numbers without a fraction decode as exact integers,
// which IsInt distinguishes from the float64 form.
func ExampleValue_IsInt() {
	v, err := jsontree.Parse([]byte(`[3, 3.5]`))
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range v.Array() {
		if n.IsInt() {
			fmt.Println("int:", n.Int())
		} else {
			fmt.Println("float:", n.Float())
		}
	}

	// Output:
	// int: 3
	// float: 3.5
}

// A long-lived Parser amortizes its scratch buffer and name cache
// across documents, which pays off when decoding many small ones.
func ExampleParser() {
	var p jsontree.Parser
	for _, line := range []string{
		`{"level": "info", "msg": "started"}`,
		`{"level": "warn", "msg": "no config found, using defaults"}`,
	} {
		v, err := p.ParseString(line)
		if err != nil {
			log.Fatal(err)
		}
		rec := v.Object()
		fmt.Printf("%s: %s\n", rec["level"].String(), rec["msg"].String())
	}

	// Output:
	// info: started
	// warn: no config found, using defaults
}
