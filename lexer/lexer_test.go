/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"testing"

	"github.com/krotik/sqlfront/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, tokens []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLexSimpleSelect(t *testing.T) {
	tokens, err := Lex("SELECT * FROM a")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens, token.SELECT, token.STAR, token.FROM, token.VAR, token.EOF)
}

func TestLexQuotedIdentifierAndString(t *testing.T) {
	tokens, err := Lex(`SELECT "col", 'text'`)
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens, token.SELECT, token.IDENTIFIER, token.COMMA, token.STRING, token.EOF)

	if tokens[1].Text != "col" {
		t.Errorf("expected identifier text %q, got %q", "col", tokens[1].Text)
	}
	if tokens[3].Text != "text" {
		t.Errorf("expected string text %q, got %q", "text", tokens[3].Text)
	}
}

func TestLexNumbers(t *testing.T) {
	tokens, err := Lex("1 2.5 1e10 1.2e-3")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens, token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER, token.EOF)
}

func TestLexMultiCharSymbols(t *testing.T) {
	tokens, err := Lex("a <> b <= c >= d :: int || e")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens,
		token.VAR, token.NEQ, token.VAR, token.LTE, token.VAR, token.GTE, token.VAR,
		token.DCOLON, token.INT, token.DPIPE, token.VAR, token.EOF)
}

func TestLexHintComment(t *testing.T) {
	tokens, err := Lex("SELECT /*+ BROADCAST(a) */ * FROM a")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens,
		token.SELECT, token.HINT, token.VAR, token.L_PAREN, token.VAR, token.R_PAREN, token.COMMENTEND,
		token.STAR, token.FROM, token.VAR, token.EOF)
}

func TestLexLineComment(t *testing.T) {
	tokens, err := Lex("SELECT 1 -- trailing comment\nFROM a")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens, token.SELECT, token.NUMBER, token.FROM, token.VAR, token.EOF)
}

func TestLexUnterminatedStringIsError(t *testing.T) {
	if _, err := Lex("SELECT 'abc"); err == nil {
		t.Error("expected an error for an unterminated string")
	}
}

func TestLexKeywordsAreCaseInsensitive(t *testing.T) {
	tokens, err := Lex("select * from a")
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, tokens, token.SELECT, token.STAR, token.FROM, token.VAR, token.EOF)
}
