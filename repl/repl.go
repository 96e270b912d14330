// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"
	"tsanchor/internal/errors"
	"tsanchor/internal/transpile"
)

var log = commonlog.GetLogger("tsanchor.repl")

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "

	cmdRun   = ".run"
	cmdClear = ".clear"
	cmdQuit  = ".quit"
)

const replFilename = "<repl>"

// Start reads a module line by line from in. ".run" translates what has been
// entered so far and prints the Rust source or the diagnostics, ".clear"
// discards it and ".quit" or end of input leaves.
func Start(in io.Reader, out io.Writer, opts transpile.Options) {
	scanner := bufio.NewScanner(in)
	var buffer []string

	for {
		if len(buffer) == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case cmdQuit:
			return
		case cmdClear:
			buffer = buffer[:0]
		case cmdRun:
			fmt.Fprint(out, Evaluate(strings.Join(buffer, "\n"), opts))
			buffer = buffer[:0]
		default:
			buffer = append(buffer, line)
		}
	}
}

// Evaluate translates source and returns the Rust output followed by any
// warnings, or the rendered diagnostics when translation fails
func Evaluate(source string, opts transpile.Options) string {
	reporter := errors.NewErrorReporter(replFilename, source)

	result, err := transpile.TranslateSource(replFilename, source, opts)
	if err != nil {
		diags := transpile.Diagnostics(err)
		if diags == nil {
			log.Errorf("%s", err.Error())
			return err.Error() + "\n"
		}
		var b strings.Builder
		for _, d := range diags {
			b.WriteString(reporter.FormatError(d))
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(result.Source)
	for _, w := range result.Warnings {
		b.WriteString(reporter.FormatError(w))
	}
	return b.String()
}
