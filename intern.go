// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

// A stringCache is a fixed-size, direct-mapped cache of strings converted
// from a []byte. It deduplicates object names, which tend to repeat both
// within a document and across documents decoded by the same Parser.
type stringCache [256]string // 256*unsafe.Sizeof(string("")) => 4KiB

// make returns the string form of b.
// It returns a previously allocated string from c if present, otherwise
// it allocates a new string, inserts it into the cache, and returns it.
func (c *stringCache) make(b []byte) string {
	const (
		minCachedLen = 2   // single-byte strings are already interned by the runtime
		maxCachedLen = 128 // object names are short; longer strings rarely repeat
	)
	if c == nil || len(b) < minCachedLen || len(b) > maxCachedLen {
		return string(b)
	}
	i := hashBytes(b) % uint32(len(*c))
	if s := (*c)[i]; s == string(b) {
		return s
	}
	s := string(b)
	(*c)[i] = s
	return s
}

// hashBytes computes the FNV-1a hash of b.
func hashBytes(b []byte) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, c := range b {
		h ^= uint32(c)
		h *= prime32
	}
	return h
}
