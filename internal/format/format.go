package format

import (
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tsanchor.format")

// Formatter turns raw emitted text into canonical source. Errors mean the
// input was not well-formed and are surfaced to the caller unchanged.
type Formatter interface {
	Format(src string) (string, error)
}

const (
	BuiltinName = "builtin"
	RustfmtName = "rustfmt"
)

// New returns the formatter registered under name
func New(name, rustfmtPath string) (Formatter, error) {
	switch name {
	case "", BuiltinName:
		log.Debugf("using builtin formatter")
		return Builtin{}, nil
	case RustfmtName:
		log.Debugf("using rustfmt at %q", rustfmtPath)
		return Rustfmt{Path: rustfmtPath}, nil
	}
	return nil, fmt.Errorf("unknown formatter %q (want %s or %s)", name, BuiltinName, RustfmtName)
}
