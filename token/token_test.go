package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, TokenType(FN), LookupIdent("fn"))
	assert.Equal(t, TokenType(IDENT), LookupIdent("counter"))
	assert.True(t, IsKeyword("mut"))
	assert.False(t, IsKeyword("Ok"))
}

func TestStreamString(t *testing.T) {
	var s Stream
	s.Word("pub")
	s.Word("struct")
	s.Word("Ctx")
	s.Punct("<")
	s.Lifetime("info")
	s.Punct(">")
	s.Punct("{")
	s.Punct("}")
	assert.Equal(t, "pub struct Ctx < 'info > { }", s.String())
	assert.Equal(t, TokenType(LIFETIME), s[4].Type)
	assert.Equal(t, TokenType(RBRACE), s[7].Type)

	var lits Stream
	lits.ByteStr("vote")
	lits.Str(`say "hi"`)
	lits.Int("1_000")
	lits.Punct("@")
	assert.Equal(t, `b"vote" "say \"hi\"" 1_000 @`, lits.String())
	assert.Equal(t, TokenType(ILLEGAL), lits[3].Type)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\\b\n"`, Quote("a\\b\n"))
	assert.Equal(t, `"héllo"`, Quote("héllo"))
}
