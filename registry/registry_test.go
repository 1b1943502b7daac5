/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package registry

import (
	"testing"

	"github.com/krotik/sqlfront/ast"
)

func TestBuiltinIfBuildsIfNode(t *testing.T) {
	r := New(nil)

	builder, ok := r.Lookup("IF")
	if !ok {
		t.Fatal("expected IF to be registered")
	}

	cond := ast.New(ast.KindLiteral, map[string]interface{}{"this": "1", "is_string": false})
	then := ast.New(ast.KindLiteral, map[string]interface{}{"this": "2", "is_string": false})

	node := builder([]*ast.Expression{cond, then})
	if node.Kind != ast.KindIf {
		t.Fatalf("expected KindIf, got %v", node.Kind)
	}
	if node.Args["this"] != cond || node.Args["true"] != then {
		t.Errorf("unexpected args: %+v", node.Args)
	}
	if _, has := node.Args["false"]; has {
		t.Error("expected no 'false' slot when only 2 args given")
	}
}

func TestDecimalAlias(t *testing.T) {
	r := New(nil)

	for _, name := range []string{"DECIMAL", "NUMERIC"} {
		builder, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("expected %s to be registered", name)
		}
		precision := ast.New(ast.KindLiteral, map[string]interface{}{"this": "10", "is_string": false})
		node := builder([]*ast.Expression{precision})
		if node.Kind != ast.KindDecimal {
			t.Errorf("%s: expected KindDecimal, got %v", name, node.Kind)
		}
		if node.Args["precision"] != precision {
			t.Errorf("%s: expected precision slot set", name)
		}
	}
}

func TestExtraFunctionsWinOnCollision(t *testing.T) {
	custom := func(args []*ast.Expression) *ast.Expression {
		return ast.New(ast.KindAnonymous, map[string]interface{}{"this": "CUSTOM_IF"})
	}

	r := New(map[string]Builder{"IF": custom})

	builder, ok := r.Lookup("IF")
	if !ok {
		t.Fatal("expected IF to still be registered")
	}
	node := builder(nil)
	if node.Kind != ast.KindAnonymous || node.Args["this"] != "CUSTOM_IF" {
		t.Errorf("expected the caller-supplied builder to win, got %+v", node)
	}
}

func TestNamesIsSortedAndComplete(t *testing.T) {
	r := New(nil)
	names := r.Names()

	if len(names) == 0 {
		t.Fatal("expected a non-empty function table")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestOverflowArgsGoToExpressionsSlot(t *testing.T) {
	def := Def{Name: "SUM", Kind: ast.KindAnonymous, Slots: []string{"this"}}
	one := ast.New(ast.KindLiteral, map[string]interface{}{"this": "1", "is_string": false})
	two := ast.New(ast.KindLiteral, map[string]interface{}{"this": "2", "is_string": false})

	node := def.build([]*ast.Expression{one, two})
	extra, ok := node.Args["expressions"].([]*ast.Expression)
	if !ok || len(extra) != 1 || extra[0] != two {
		t.Errorf("expected overflow arg in expressions slot, got %+v", node.Args)
	}
}
