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
	"github.com/krotik/sqlfront/ast"
	"github.com/krotik/sqlfront/token"
)

/*
tokenToNode is the fixed token-to-node coercion table of spec.md §4.E
"Ambiguity handling" / §3 invariant 5: every raw token that can appear where
an AST node is expected is turned into exactly this node, and nowhere else in
the codebase does a second copy of this table exist. A token kind with no
entry here "collapses to its textual form" (spec.md §4.B) - the raw string,
not a wrapped node - matching original_source/sqlglot/parser.py's
_ensure_non_token fallback, which returns the bare token text for every
ID_VAR keyword besides VAR/IDENTIFIER (ENGINE, COLLATE, DEFAULT, FOLLOWING,
...). tokenToNode returns interface{} rather than *ast.Expression for this
reason.
*/
func tokenToNode(t token.Token) interface{} {
	switch t.Kind {
	case token.STAR:
		return ast.New(ast.KindStar, nil)
	case token.NULLTOK:
		return ast.New(ast.KindNull, nil)
	case token.STRING:
		return ast.New(ast.KindLiteral, map[string]interface{}{"this": t.Text, "is_string": true})
	case token.NUMBER:
		return ast.New(ast.KindLiteral, map[string]interface{}{"this": t.Text, "is_string": false})
	case token.IDENTIFIER:
		return ast.New(ast.KindIdentifier, map[string]interface{}{"this": t.Text, "quoted": true})
	case token.VAR:
		return ast.New(ast.KindIdentifier, map[string]interface{}{"this": t.Text, "quoted": false})
	}
	if token.TypeKinds[t.Kind] {
		return ast.New(ast.KindDataType, map[string]interface{}{"this": t.Kind.String()})
	}
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}

/*
ensureNonToken recursively replaces any raw token.Token found in v (directly,
or inside a []interface{}/[]*ast.Expression-shaped slice) with its coerced
node or string, leaving everything else untouched. This is the single point
where a token the grammar driver matched turns into the value a slot
actually stores (spec.md §4.E item 1 "Token-to-node coercion").
*/
func (p *Parser) ensureNonToken(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case token.Token:
		return tokenToNode(t)
	case *token.Token:
		if t == nil {
			return nil
		}
		return tokenToNode(*t)
	case []*ast.Expression:
		return t
	case []interface{}:
		out := make([]*ast.Expression, 0, len(t))
		for _, item := range t {
			out = append(out, p.asExpression(item))
		}
		return out
	default:
		return v
	}
}

/*
asExpression coerces a single raw parser result (a token, or an already-built
node) into an *ast.Expression, used to resolve the elements of a list-valued
slot (spec.md §4.E "CSV lists" coercion). A token that tokenToNode collapses
to a bare string has no *ast.Expression form and resolves to nil here; scalar
slots hold such values directly instead, via ensureNonToken.
*/
func (p *Parser) asExpression(v interface{}) *ast.Expression {
	switch t := v.(type) {
	case *ast.Expression:
		return t
	case token.Token:
		e, _ := tokenToNode(t).(*ast.Expression)
		return e
	case *token.Token:
		if t == nil {
			return nil
		}
		e, _ := tokenToNode(*t).(*ast.Expression)
		return e
	}
	return nil
}
