// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/pminten/jsontree"
)

func TestTreeStats(t *testing.T) {
	v, err := jsontree.ParseString(`{"a": [1, 2.5, "xy", null, true], "b": {"c": false}}`)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}

	var stats treeStats
	stats.walk(v, 1)

	want := treeStats{
		nulls:         1,
		bools:         2,
		ints:          1,
		floats:        1,
		strings:       1,
		arrays:        1,
		objects:       2,
		stringBytes:   5, // "xy" plus the names a, b, and c
		largestArray:  5,
		largestObject: 2,
		maxDepth:      3,
	}
	if stats != want {
		t.Errorf("walk stats = %+v, want %+v", stats, want)
	}
	if got, want := stats.total(), int64(9); got != want {
		t.Errorf("total() = %d, want %d", got, want)
	}
}
