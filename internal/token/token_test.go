package token_test

import (
	"testing"

	"github.com/funvibe/lox/internal/token"
)

func TestLookupIdentifierKeywords(t *testing.T) {
	for word, want := range token.Keywords {
		if got := token.LookupIdentifier(word); got != want {
			t.Errorf("LookupIdentifier(%q) = %v, want %v", word, got, want)
		}
	}
	if len(token.Keywords) != 16 {
		t.Errorf("got %d keywords, want 16", len(token.Keywords))
	}
}

func TestLookupIdentifierPlainName(t *testing.T) {
	if got := token.LookupIdentifier("counter"); got != token.IDENTIFIER {
		t.Errorf("LookupIdentifier(%q) = %v, want IDENTIFIER", "counter", got)
	}
}

func TestTypeString(t *testing.T) {
	if got := token.PLUS.String(); got != "PLUS" {
		t.Errorf("PLUS.String() = %q, want PLUS", got)
	}
	if got := token.Type(9999).String(); got != "UNKNOWN" {
		t.Errorf("unknown type String() = %q, want UNKNOWN", got)
	}
}

func TestTokenString(t *testing.T) {
	tok := token.Token{Type: token.IDENTIFIER, Lexeme: "x", Line: 1}
	if got, want := tok.String(), "IDENTIFIER x"; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
