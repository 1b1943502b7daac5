/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

/*
Wire walks a completed tree exactly once and sets every child's Parent and
ArgKey (spec.md §4.E "Parent wiring post-pass", §9 "Parent back-references").
It is the only place Parent/ArgKey are ever assigned; node construction
never sets them. The parent edge is a plain pointer, not an owning one - see
SPEC_FULL.md for why that is safe in Go.
*/
func Wire(e *Expression) {
	if e == nil {
		return
	}
	for key, v := range e.Args {
		switch child := v.(type) {
		case *Expression:
			if child == nil {
				continue
			}
			child.Parent = e
			child.ArgKey = key
			Wire(child)
		case []*Expression:
			for _, c := range child {
				if c == nil {
					continue
				}
				c.Parent = e
				c.ArgKey = key
				Wire(c)
			}
		}
	}
}

/*
Walk calls visit for e and every descendant, depth-first, pre-order. visit
receives the node, its parent (nil for the root) and the arg key it was
reached through.
*/
func Walk(e *Expression, visit func(node, parent *Expression, key string)) {
	walk(e, nil, "", visit)
}

func walk(e *Expression, parent *Expression, key string, visit func(*Expression, *Expression, string)) {
	if e == nil {
		return
	}
	visit(e, parent, key)
	for k, v := range e.Args {
		switch child := v.(type) {
		case *Expression:
			walk(child, e, k, visit)
		case []*Expression:
			for _, c := range child {
				walk(c, e, k, visit)
			}
		}
	}
}

/*
Find returns every descendant of e (e included) whose Kind is k, in the
order Walk visits them.
*/
func Find(e *Expression, k Kind) []*Expression {
	var out []*Expression
	Walk(e, func(node, _ *Expression, _ string) {
		if node.Kind == k {
			out = append(out, node)
		}
	})
	return out
}
