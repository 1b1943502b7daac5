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

import (
	"fmt"
	"sort"
)

/*
Violation describes a single schema violation found by Validate: either an
arg present that is not in the kind's schema, or a mandatory arg missing.
*/
type Violation struct {
	Unexpected bool // true: unknown slot, false: missing mandatory slot
	Slot       string
}

/*
Message renders a Violation using the two fixed templates from spec.md §4.B.
*/
func (v Violation) Message(k Kind) string {
	if v.Unexpected {
		return fmt.Sprintf("Unexpected keyword: '%s' for %s", v.Slot, k)
	}
	return fmt.Sprintf("Required keyword: '%s' missing for %s", v.Slot, k)
}

/*
New constructs an Expression of the given kind from a set of slot values. It
does not itself validate - callers that need policy-aware validation (almost
everyone; see package parser) should follow up with Validate.
*/
func New(kind Kind, args map[string]interface{}) *Expression {
	return &Expression{Kind: kind, Args: args}
}

/*
isEmpty reports whether v counts as "no value" for the mandatory check in
spec.md §3 invariant 2 ("non-empty value").
*/
func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Expression:
		return t == nil
	case []*Expression:
		return len(t) == 0
	case string:
		return false // empty string is a valid, present value (spec.md §8 scenario 4)
	default:
		return false
	}
}

/*
Validate checks an Expression's Args against its Kind's Schema (spec.md §3
invariants 1-2) and returns every violation found, in a stable order: unknown
slots first (sorted by name),
then missing mandatory slots in schema order. Validate never mutates e.
*/
func Validate(e *Expression) []Violation {
	schema, ok := Schemas[e.Kind]
	if !ok {
		return nil
	}
	allowed := schema.ArgTypes()

	var unknown []string
	for k := range e.Args {
		if _, known := allowed[k]; !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	var violations []Violation
	for _, k := range unknown {
		violations = append(violations, Violation{Unexpected: true, Slot: k})
	}
	for _, sl := range schema.Slots {
		if !sl.Mandatory {
			continue
		}
		if isEmpty(e.Args[sl.Name]) {
			violations = append(violations, Violation{Unexpected: false, Slot: sl.Name})
		}
	}
	return violations
}
