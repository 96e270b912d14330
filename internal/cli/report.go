package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	cerrors "tsanchor/internal/errors"
	"tsanchor/internal/transpile"
)

// ErrReported signals that diagnostics were already written and the process
// should exit with status 1
var ErrReported = errors.New("translation failed")

// reportFailure renders err against the input source. Errors that are not
// diagnostics are returned for the caller to print.
func reportFailure(w io.Writer, path string, err error) error {
	diags := transpile.Diagnostics(err)
	if diags == nil {
		return err
	}

	// without the source the reporter still prints the location
	source, _ := os.ReadFile(path)
	reporter := cerrors.NewErrorReporter(path, string(source))
	for _, d := range diags {
		fmt.Fprint(w, reporter.FormatError(d))
	}
	return ErrReported
}

func reportWarnings(w io.Writer, path string, warnings []cerrors.CompilerError) {
	if len(warnings) == 0 {
		return
	}
	source, _ := os.ReadFile(path)
	reporter := cerrors.NewErrorReporter(path, string(source))
	for _, warning := range warnings {
		fmt.Fprint(w, reporter.FormatError(warning))
	}
}

func reportSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.GreenString(format, args...))
}

func reportFailed(w io.Writer, started time.Time) {
	fmt.Fprintln(w, color.RedString("translation failed after %s", formatDuration(time.Since(started))))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
