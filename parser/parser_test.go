/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"
	"testing"

	"github.com/krotik/sqlfront/ast"
	"github.com/krotik/sqlfront/lexer"
	"github.com/krotik/sqlfront/perrors"
)

func parseOne(t *testing.T, source string, opts ...Option) *ast.Expression {
	t.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := New(opts...).Parse(tokens, source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	return stmts[0]
}

/*
Scenario 1: SELECT a, ARRAY[1] b, case when 1 then 1 end
*/
func TestSelectProjectionsAndArrayLiteral(t *testing.T) {
	sel := parseOne(t, "SELECT a, ARRAY[1] b, case when 1 then 1 end")

	if sel.Kind != ast.KindSelect {
		t.Fatalf("expected Select, got %v", sel.Kind)
	}
	projections := sel.Expressions("expressions")
	if len(projections) != 3 {
		t.Fatalf("expected 3 projections, got %d", len(projections))
	}

	if projections[0].Kind != ast.KindColumn {
		t.Errorf("expected first projection to be Column, got %v", projections[0].Kind)
	}

	arrayAlias := projections[1]
	if arrayAlias.Kind != ast.KindAlias {
		t.Fatalf("expected second projection to be Alias, got %v", arrayAlias.Kind)
	}
	if arrayAlias.This().Kind != ast.KindArray {
		t.Errorf("expected alias.this to be Array, got %v", arrayAlias.This().Kind)
	}

	if projections[2].Kind != ast.KindCase {
		t.Errorf("expected third projection to be Case, got %v", projections[2].Kind)
	}

	if found := ast.Find(sel, ast.KindColumn); len(found) != 1 {
		t.Errorf("expected exactly one Column descendant, got %d", len(found))
	}
}

/*
Scenario 2: identifiers, aliases (quoted and unquoted), and a db-qualified
table name.
*/
func TestIdentifiersAliasesAndQualifiedTable(t *testing.T) {
	sel := parseOne(t, `SELECT a, "b", c AS c, d AS "D" FROM y."z"`)

	projections := sel.Expressions("expressions")
	if len(projections) != 4 {
		t.Fatalf("expected 4 projections, got %d", len(projections))
	}

	wantThis := []string{"a", "b", "c", "d"}
	wantAlias := []string{"", "", "c", "D"}

	for i, proj := range projections {
		var this *ast.Expression
		var alias *ast.Expression
		if proj.Kind == ast.KindAlias {
			this = proj.This().This()
			alias = proj.Args["alias"].(*ast.Expression)
		} else if proj.Kind == ast.KindColumn {
			this = proj.This()
		} else {
			t.Fatalf("projection %d: unexpected kind %v", i, proj.Kind)
		}

		if got := this.Str("this"); got != wantThis[i] {
			t.Errorf("projection %d: this.this = %q, want %q", i, got, wantThis[i])
		}
		if wantAlias[i] == "" {
			if alias != nil {
				t.Errorf("projection %d: expected no alias, got %q", i, alias.Str("this"))
			}
		} else if alias == nil || alias.Str("this") != wantAlias[i] {
			t.Errorf("projection %d: expected alias %q", i, wantAlias[i])
		}
	}

	tables := sel.Args["from"].(*ast.Expression).Expressions("expressions")
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	table := tables[0]
	if got := table.This().Str("this"); got != "z" {
		t.Errorf("table.this.this = %q, want %q", got, "z")
	}
	if got := table.Args["db"].(*ast.Expression).Str("this"); got != "y" {
		t.Errorf("table.db.this = %q, want %q", got, "y")
	}
}

/*
Scenario 3: multi-statement parsing.
*/
func TestMultiStatementParsing(t *testing.T) {
	tokens, err := lexer.Lex("SELECT * FROM a; SELECT * FROM b;")
	if err != nil {
		t.Fatal(err)
	}
	stmts, err := New().Parse(tokens, "SELECT * FROM a; SELECT * FROM b;")
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	want := []string{"a", "b"}
	for i, stmt := range stmts {
		tables := stmt.Args["from"].(*ast.Expression).Expressions("expressions")
		got := tables[0].This().Str("this")
		if got != want[i] {
			t.Errorf("statement %d: from table = %q, want %q", i, got, want[i])
		}
	}
}

/*
Scenario 4: construction under policy.
*/
func TestConstructionUnderIgnore(t *testing.T) {
	p := New(WithErrorLevel(perrors.Ignore))

	for _, args := range []map[string]interface{}{
		{}, {"this": ""}, {"y": ""},
	} {
		if _, err := p.Expression(ast.KindHint, args); err != nil {
			t.Errorf("IGNORE should never error, got %v", err)
		}
	}
}

func TestConstructionUnderRaise(t *testing.T) {
	p := New(WithErrorLevel(perrors.Raise))

	if _, err := p.Expression(ast.KindHint, map[string]interface{}{"this": ""}); err != nil {
		t.Errorf("expression(Hint, this='') should succeed under RAISE, got %v", err)
	}

	for _, args := range []map[string]interface{}{
		{}, {"y": ""},
	} {
		if _, err := p.Expression(ast.KindHint, args); err == nil {
			t.Error("expected an error under RAISE for an invalid construction")
		}
	}
}

func TestConstructionUnderWarnLogs(t *testing.T) {
	logger := &capturingLogger{}
	p := New(WithErrorLevel(perrors.Warn), WithLogger(logger))

	p.Expression(ast.KindHint, map[string]interface{}{})
	p.Expression(ast.KindHint, map[string]interface{}{"y": ""})

	joined := strings.Join(logger.messages, "\n")
	if !strings.Contains(joined, "Required keyword: 'this' missing") {
		t.Errorf("expected a missing-slot warning, got: %s", joined)
	}
	if !strings.Contains(joined, "Unexpected keyword: 'y'") {
		t.Errorf("expected an unknown-slot warning, got: %s", joined)
	}
	if !strings.Contains(joined, "Line 1, Col: 1.") {
		t.Errorf("expected the diagnostic to anchor at Line 1, Col: 1., got: %s", joined)
	}
}

type capturingLogger struct {
	messages []string
}

func (c *capturingLogger) LogError(v ...interface{}) {
	for _, m := range v {
		c.messages = append(c.messages, m.(string))
	}
}

/*
Scenario 5: function arity.
*/
func TestFunctionArity(t *testing.T) {
	expectParseError(t, "SELECT IF(a > 0, a, b, c)", "Unexpected keyword: 'expressions'")
	expectParseError(t, "SELECT IF(a > 0)", "Required keyword: 'true' missing")
}

func expectParseError(t *testing.T, source, wantSubstring string) {
	t.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, perr := New().Parse(tokens, source)
	if perr == nil {
		t.Fatalf("expected a parse error for %q, got none", source)
	}
	if !strings.Contains(perr.Error(), wantSubstring) {
		t.Errorf("expected error for %q to contain %q, got: %v", source, wantSubstring, perr)
	}
}

/*
Scenario 6: BETWEEN/IN precedence inside WHERE.
*/
func TestBetweenInPrecedenceInWhere(t *testing.T) {
	sel := parseOne(t, "SELECT x FROM t WHERE a BETWEEN 1 AND 2 AND b IN (1,2,3)")

	where := sel.Args["where"].(*ast.Expression)
	top := where.This()
	if top.Kind != ast.KindAnd {
		t.Fatalf("expected top-level And, got %v", top.Kind)
	}

	left := top.This()
	right := top.Args["expression"].(*ast.Expression)

	if left.Kind != ast.KindBetween {
		t.Errorf("expected left side Between, got %v", left.Kind)
	}
	if right.Kind != ast.KindIn {
		t.Errorf("expected right side In, got %v", right.Kind)
	}
}

func TestWiredParentsAfterParse(t *testing.T) {
	sel := parseOne(t, "SELECT a FROM t")
	col := ast.Find(sel, ast.KindColumn)[0]
	if col.Parent == nil {
		t.Fatal("expected Column to have a non-nil Parent after Parse")
	}
	if col.ArgKey != "expressions" {
		t.Errorf("expected ArgKey 'expressions', got %q", col.ArgKey)
	}
}

func TestWhereWithoutConditionIsError(t *testing.T) {
	tokens, err := lexer.Lex("SELECT a FROM t WHERE")
	if err != nil {
		t.Fatal(err)
	}
	_, perr := New().Parse(tokens, "SELECT a FROM t WHERE")
	if perr == nil {
		t.Fatal("expected an error for a statement ending in WHERE with no condition")
	}
}
