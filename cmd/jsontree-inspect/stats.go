// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/pminten/jsontree"
)

// statsCommand prints shape statistics for each JSON document in files.
type statsCommand struct {
	files *[]string
}

func (cmd *statsCommand) run(c *kingpin.ParseContext) error {
	for _, f := range *cmd.files {
		cmd.printStats(f)
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		exitWithErr(fmt.Errorf("failed to read file: %w", err))
	}
	v, err := jsontree.Parse(data)
	if err != nil {
		exitWithErr(fmt.Errorf("failed to parse %s: %w", name, err))
	}

	var stats treeStats
	stats.walk(v, 1)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf(
		"\tsize: %v, values: %s, max depth: %d\n",
		humanize.Bytes(uint64(len(data))),
		humanize.Comma(stats.total()),
		stats.maxDepth,
	)
	fmt.Printf(
		"\tnulls: %s, booleans: %s, integers: %s, floats: %s, strings: %s, arrays: %s, objects: %s\n",
		humanize.Comma(stats.nulls),
		humanize.Comma(stats.bools),
		humanize.Comma(stats.ints),
		humanize.Comma(stats.floats),
		humanize.Comma(stats.strings),
		humanize.Comma(stats.arrays),
		humanize.Comma(stats.objects),
	)
	fmt.Printf(
		"\tstring bytes: %v, largest array: %s elements, largest object: %s members\n",
		humanize.Bytes(uint64(stats.stringBytes)),
		humanize.Comma(stats.largestArray),
		humanize.Comma(stats.largestObject),
	)
}

// treeStats accumulates per-kind counts over a decoded document.
// Object member names count toward stringBytes.
type treeStats struct {
	nulls, bools, ints, floats, strings, arrays, objects int64
	stringBytes                                          int64
	largestArray, largestObject                          int64
	maxDepth                                             int
}

func (s *treeStats) total() int64 {
	return s.nulls + s.bools + s.ints + s.floats + s.strings + s.arrays + s.objects
}

func (s *treeStats) walk(v jsontree.Value, depth int) {
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	switch v.Kind() {
	case 'n':
		s.nulls++
	case 'f', 't':
		s.bools++
	case '0':
		if v.IsInt() {
			s.ints++
		} else {
			s.floats++
		}
	case '"':
		s.strings++
		s.stringBytes += int64(len(v.String()))
	case '[':
		s.arrays++
		elems := v.Array()
		if n := int64(len(elems)); n > s.largestArray {
			s.largestArray = n
		}
		for _, elem := range elems {
			s.walk(elem, depth+1)
		}
	case '{':
		s.objects++
		members := v.Object()
		if n := int64(len(members)); n > s.largestObject {
			s.largestObject = n
		}
		for name, member := range members {
			s.stringBytes += int64(len(name))
			s.walk(member, depth+1)
		}
	}
}

func addStatsCommand(app *kingpin.Application) {
	cmd := &statsCommand{}
	summary := app.Command("stats", "Print shape statistics for each JSON document.").Action(cmd.run)
	cmd.files = summary.Arg("file", "The files to summarize.").ExistingFiles()
}
