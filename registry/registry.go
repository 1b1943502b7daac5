/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package registry is the function registry (spec.md §4.F): a mapping from an
uppercased SQL function name to a Builder that turns a parsed argument list
into a typed AST node. Seeded at construction from the AST schema's function
nodes plus the two fixed DECIMAL/NUMERIC aliases; caller-supplied entries
merge on top and win on key collision.
*/
package registry

import (
	"devt.de/krotik/common/sortutil"

	"github.com/krotik/sqlfront/ast"
)

/*
Builder constructs a typed AST node from a parsed, already-coerced argument
list (spec.md §4.E item 2).
*/
type Builder func(args []*ast.Expression) *ast.Expression

/*
Def is one entry of the builtin table: a function name, the node Kind it
produces, and how its positional arguments map onto that Kind's named slots.
A Def whose Kind schema is IsVarLenArgs never triggers the arity check.
*/
type Def struct {
	Name string
	Kind ast.Kind
	// Slots lists, in positional order, the arg names each positional
	// call argument is assigned to. Extra positional arguments beyond
	// len(Slots) go into the "expressions" slot when the Kind's schema is
	// variadic; otherwise they make the node over-arity (spec.md §7
	// "Function arity").
	Slots []string
}

func (d Def) build(args []*ast.Expression) *ast.Expression {
	m := map[string]interface{}{}
	for i, slot := range d.Slots {
		if i < len(args) {
			m[slot] = args[i]
		}
	}
	if len(args) > len(d.Slots) {
		m["expressions"] = args[len(d.Slots):]
	}
	return ast.New(d.Kind, m)
}

func decimalBuilder(args []*ast.Expression) *ast.Expression {
	return Def{Kind: ast.KindDecimal, Slots: []string{"precision", "scale"}}.build(args)
}

/*
Builtins is the function registry's seed content: every AST node kind that
is reachable as a SQL function call, keyed by every SQL spelling it accepts,
plus the two fixed aliases spec.md §4.F calls out by name.
*/
var Builtins = map[string][]Def{
	"IF": {{Name: "IF", Kind: ast.KindIf, Slots: []string{"this", "true", "false"}}},

	"COALESCE": {{Name: "COALESCE", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"CONCAT":   {{Name: "CONCAT", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"SUBSTRING": {{Name: "SUBSTRING", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"ROUND":    {{Name: "ROUND", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"NULLIF":   {{Name: "NULLIF", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"ABS":      {{Name: "ABS", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"UPPER":    {{Name: "UPPER", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"LOWER":    {{Name: "LOWER", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"SUM":      {{Name: "SUM", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"AVG":      {{Name: "AVG", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"MIN":      {{Name: "MIN", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
	"MAX":      {{Name: "MAX", Kind: ast.KindAnonymous, Slots: []string{"this"}}},
}

/*
Registry is the mutable function table a Parser consults when it parses a
function call that isn't CASE/CAST/COUNT/EXTRACT (those have dedicated
grammar routines and never reach the registry).
*/
type Registry struct {
	builders map[string]Builder
}

/*
New builds a Registry seeded with Builtins plus the DECIMAL/NUMERIC alias,
then merges extra on top (extra wins on collision, per spec.md §4.F).
*/
func New(extra map[string]Builder) *Registry {
	r := &Registry{builders: map[string]Builder{}}

	for name, defs := range Builtins {
		for _, d := range defs {
			d := d
			r.builders[name] = d.build
		}
	}
	r.builders["DECIMAL"] = decimalBuilder
	r.builders["NUMERIC"] = decimalBuilder

	for name, b := range extra {
		r.builders[name] = b
	}

	return r
}

/*
Lookup finds the builder registered under exactly name. It does no case
folding itself: the parser upper-cases a call's name before looking it up,
and a caller-supplied name registered with mixed case is found only by an
exact match.
*/
func (r *Registry) Lookup(name string) (Builder, bool) {
	b, ok := r.builders[name]
	return b, ok
}

/*
Names returns every registered function name, sorted - used by cmd/sqlfront
to print the builtin table deterministically.
*/
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for n := range r.builders {
		names = append(names, n)
	}
	sortutil.InterfaceStrings(names)
	return names
}
