// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pminten/jsontree"
)

// checkCommand validates that each input parses as a single JSON document.
type checkCommand struct {
	files *[]string
}

type checkResult struct {
	name string
	err  error
}

func (cmd *checkCommand) run(c *kingpin.ParseContext) error {
	results := cmd.checkFiles(*cmd.files)

	okColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed)
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			failColor.Printf("FAIL %s\n", res.name)
			fmt.Printf("\t%v\n", res.err)
			var syntaxErr *jsontree.SyntaxError
			if errors.As(res.err, &syntaxErr) {
				fmt.Printf("\tat byte offset %d\n", syntaxErr.Offset)
			}
			continue
		}
		okColor.Printf("OK   %s\n", res.name)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

// checkFiles validates the files in parallel, or standard input when no
// files were given. Results come back in argument order.
func (cmd *checkCommand) checkFiles(files []string) []checkResult {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return []checkResult{{name: "<stdin>", err: errors.Wrap(err, "failed to read stdin")}}
		}
		_, err = jsontree.Parse(data)
		return []checkResult{{name: "<stdin>", err: err}}
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			results[i] = checkFile(name)
			return nil
		})
	}
	_ = g.Wait() // the workers record failures in results instead
	return results
}

func checkFile(name string) checkResult {
	data, err := os.ReadFile(name)
	if err != nil {
		return checkResult{name: name, err: errors.Wrap(err, "failed to read file")}
	}
	_, err = jsontree.Parse(data)
	return checkResult{name: name, err: err}
}

func addCheckCommand(app *kingpin.Application) {
	cmd := &checkCommand{}
	check := app.Command("check", "Validate that each input is a single well-formed JSON document.").Action(cmd.run)
	cmd.files = check.Arg("file", "The files to validate; reads standard input when omitted.").ExistingFiles()
}
