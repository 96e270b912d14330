package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"tsanchor/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is one translator diagnostic. Stages return it as an error.
type CompilerError struct {
	Level    ErrorLevel
	Code     string // E0001..E0012 or W0001..W0006; empty for syntax errors
	Message  string
	Position ast.Position
	Length   int

	// Labels point at secondary spans, such as each field of a type cycle
	Labels []Label
	// Chain lists the records of a type cycle; first and last are equal
	Chain []string
	// Candidates are the names in scope when a reference did not resolve
	Candidates    []string
	CandidateKind string // "accounts" or "types"

	Suggestions []string
	Notes       []string
	HelpText    string
}

// Label marks a secondary span with a short message
type Label struct {
	Position ast.Position
	Length   int
	Message  string
}

// Error renders a one-line form: file:line:col: error[E0001]: message
func (e CompilerError) Error() string {
	var b strings.Builder
	if e.Position.Filename != "" {
		fmt.Fprintf(&b, "%s:%d:%d: ", e.Position.Filename, e.Position.Line, e.Position.Column)
	}
	b.WriteString(string(e.Level))
	if e.Code != "" {
		b.WriteString("[" + e.Code + "]")
	}
	b.WriteString(": " + e.Message)
	return b.String()
}

var (
	dim     = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

var levelStyles = map[ErrorLevel]*color.Color{
	Error:   color.New(color.FgRed, color.Bold),
	Warning: color.New(color.FgYellow, color.Bold),
	Note:    color.New(color.FgBlue, color.Bold),
	Help:    color.New(color.FgGreen, color.Bold),
}

func levelStyle(level ErrorLevel) *color.Color {
	if style, ok := levelStyles[level]; ok {
		return style
	}
	return levelStyles[Error]
}

// ErrorReporter renders diagnostics against the source of one module
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for source; filename is used when a
// diagnostic carries no file of its own
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err as a header, the offending source with carets,
// any secondary spans, and the cycle, candidate and advice sections
func (er *ErrorReporter) FormatError(err CompilerError) string {
	d := &diagnostic{reporter: er, gutter: er.gutterWidth(err)}
	style := levelStyle(err.Level)

	if err.Code != "" {
		d.printf("%s: %s\n", style.Sprintf("%s[%s]", err.Level, err.Code), bold(err.Message))
	} else {
		d.printf("%s: %s\n", style.Sprint(err.Level), bold(err.Message))
	}

	d.location("-->", err.Position)
	d.snippet(err.Position, err.Length, "^", style.SprintFunc(), "")

	for _, label := range err.Labels {
		d.location(":::", label.Position)
		d.snippet(label.Position, label.Length, "-", blue, label.Message)
	}

	if len(err.Chain) > 0 {
		d.section(magenta("cycle"), err.Chain[0])
		for i, name := range err.Chain[1:] {
			d.printf("%s   %s%s %s\n", d.pad(), strings.Repeat("   ", i+1), dim("└─"), name)
		}
	}
	if len(err.Candidates) > 0 {
		kind := err.CandidateKind
		if kind == "" {
			kind = "names"
		}
		d.section(cyan(kind+" in scope"), strings.Join(err.Candidates, ", "))
	}
	for _, suggestion := range err.Suggestions {
		d.section(cyan("suggestion"), suggestion)
	}
	for _, note := range err.Notes {
		d.section(blue("note"), note)
	}
	if err.HelpText != "" {
		d.section(green("help"), err.HelpText)
	}

	d.b.WriteString("\n")
	return d.b.String()
}

// gutterWidth fits the largest line number the diagnostic prints
func (er *ErrorReporter) gutterWidth(err CompilerError) int {
	last := err.Position.Line + 1
	for _, label := range err.Labels {
		last = max(last, label.Position.Line)
	}
	return max(2, len(strconv.Itoa(last)))
}

func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// diagnostic accumulates the rendering of one error
type diagnostic struct {
	reporter *ErrorReporter
	gutter   int
	b        strings.Builder
}

func (d *diagnostic) printf(format string, args ...any) {
	fmt.Fprintf(&d.b, format, args...)
}

func (d *diagnostic) pad() string {
	return strings.Repeat(" ", d.gutter)
}

func (d *diagnostic) location(arrow string, pos ast.Position) {
	filename := pos.Filename
	if filename == "" {
		filename = d.reporter.filename
	}
	d.printf("%s %s %s:%d:%d\n", d.pad(), dim(arrow), filename, pos.Line, pos.Column)
}

// snippet prints the line before pos when it has content, the line at pos,
// and a marker row under the span
func (d *diagnostic) snippet(pos ast.Position, length int, mark string, paint func(...any) string, label string) {
	text, ok := d.reporter.line(pos.Line)
	if !ok {
		return
	}

	d.printf("%s %s\n", d.pad(), dim("│"))
	if prev, ok := d.reporter.line(pos.Line - 1); ok && strings.TrimSpace(prev) != "" {
		d.printf("%s %s %s\n", dim(fmt.Sprintf("%*d", d.gutter, pos.Line-1)), dim("│"), prev)
	}
	d.printf("%s %s %s\n", bold(fmt.Sprintf("%*d", d.gutter, pos.Line)), dim("│"), text)

	marker := markerIndent(text, pos.Column) + paint(strings.Repeat(mark, max(1, length)))
	if label != "" {
		marker += " " + paint(label)
	}
	d.printf("%s %s %s\n", d.pad(), dim("│"), marker)
}

func (d *diagnostic) section(title, body string) {
	d.printf("%s %s %s: %s\n", d.pad(), dim("="), title, body)
}

// markerIndent reproduces the whitespace before column so carets line up
// under tab-indented source
func markerIndent(text string, column int) string {
	n := max(0, column-1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i < len(text) && text[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
