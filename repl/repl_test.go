package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"tsanchor/internal/transpile"
)

const counter = `import { Account, u64 } from "@tsanchor/lang";
export interface Counter extends Account {
    count: u64;
}
export default class CounterProgram {
    increment(counter: Counter, by: u64) {
        counter.count += by;
    }
}`

func init() {
	color.NoColor = true
}

func TestStartRunsBufferedModule(t *testing.T) {
	in := strings.NewReader(counter + "\n.run\n.quit\n")
	var out bytes.Buffer

	Start(in, &out, transpile.Options{})

	text := out.String()
	assert.True(t, strings.HasPrefix(text, PROMPT))
	assert.Contains(t, text, "pub mod counter_program {")
	assert.Contains(t, text, "ctx.accounts.counter.count += by;")
}

func TestStartClearAndEOF(t *testing.T) {
	in := strings.NewReader("export default class Broken {\n.clear\n")
	var out bytes.Buffer

	Start(in, &out, transpile.Options{})

	assert.Equal(t, PROMPT+CONTINUATION+PROMPT+"\n", out.String())
}

func TestEvaluateDiagnostics(t *testing.T) {
	text := Evaluate("export interface A extends Account { x: u8; }", transpile.Options{})
	assert.Contains(t, text, "E0003")
	assert.NotContains(t, text, "pub mod")
}
