// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "sync"

// maxRetainedScratch bounds the scratch capacity a pooled Parser may keep.
// Larger buffers are dropped on return to the pool so that a single large
// document does not pin its buffer on the heap indefinitely.
// See https://golang.org/issue/23199.
const maxRetainedScratch = 64 << 10

// parserPool recycles Parsers for the package-level Parse and ParseString,
// keeping their scratch buffers and name caches warm across calls.
var parserPool = sync.Pool{New: func() any { return new(Parser) }}

func getParser() *Parser {
	return parserPool.Get().(*Parser)
}

func putParser(p *Parser) {
	if cap(p.scratch) > maxRetainedScratch {
		p.scratch = nil
	}
	parserPool.Put(p)
}
