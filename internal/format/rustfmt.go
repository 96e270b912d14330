package format

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Rustfmt pipes the text through an external rustfmt binary
type Rustfmt struct {
	Path    string // defaults to "rustfmt" on PATH
	Edition string // defaults to 2021
}

// RustfmtError carries the diagnostics rustfmt printed
type RustfmtError struct {
	Err    error
	Stderr string
}

func (e *RustfmtError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("rustfmt: %v", e.Err)
	}
	return fmt.Sprintf("rustfmt: %v\n%s", e.Err, e.Stderr)
}

func (e *RustfmtError) Unwrap() error {
	return e.Err
}

func (r Rustfmt) Format(src string) (string, error) {
	path := r.Path
	if path == "" {
		path = "rustfmt"
	}
	edition := r.Edition
	if edition == "" {
		edition = "2021"
	}

	cmd := exec.Command(path, "--edition", edition, "--emit", "stdout")
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &RustfmtError{Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.String(), nil
}
