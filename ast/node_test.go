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

import "testing"

func TestValidateUnknownSlot(t *testing.T) {
	e := New(KindHint, map[string]interface{}{"this": New(KindStar, nil), "y": "oops"})

	violations := Validate(e)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(violations), violations)
	}
	if !violations[0].Unexpected || violations[0].Slot != "y" {
		t.Errorf("unexpected violation: %+v", violations[0])
	}

	msg := violations[0].Message(e.Kind)
	if msg != "Unexpected keyword: 'y' for Hint" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestValidateMissingSlot(t *testing.T) {
	e := New(KindHint, map[string]interface{}{})

	violations := Validate(e)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(violations), violations)
	}
	if violations[0].Unexpected || violations[0].Slot != "this" {
		t.Errorf("unexpected violation: %+v", violations[0])
	}
}

func TestValidateEmptyStringIsPresent(t *testing.T) {
	e := New(KindIdentifier, map[string]interface{}{"this": ""})

	if violations := Validate(e); len(violations) != 0 {
		t.Errorf("expected no violations for an empty-string this, got %v", violations)
	}
}

func TestValidateUnknownKindIsNoOp(t *testing.T) {
	e := New(kindSentinel+1, map[string]interface{}{"whatever": 1})

	if violations := Validate(e); violations != nil {
		t.Errorf("expected nil for an unregistered kind, got %v", violations)
	}
}

func TestWireSetsParentAndArgKey(t *testing.T) {
	star := New(KindStar, nil)
	sel := New(KindSelect, map[string]interface{}{"expressions": []*Expression{star}})
	Wire(sel)

	if star.Parent != sel {
		t.Error("expected star.Parent to be sel")
	}
	if star.ArgKey != "expressions" {
		t.Errorf("expected ArgKey 'expressions', got %q", star.ArgKey)
	}
}

func TestFindCountsDescendants(t *testing.T) {
	col1 := New(KindColumn, map[string]interface{}{"this": New(KindIdentifier, map[string]interface{}{"this": "a", "quoted": false})})
	col2 := New(KindColumn, map[string]interface{}{"this": New(KindIdentifier, map[string]interface{}{"this": "b", "quoted": false})})
	sel := New(KindSelect, map[string]interface{}{"expressions": []*Expression{col1, col2}})

	if found := Find(sel, KindColumn); len(found) != 2 {
		t.Errorf("expected 2 Column descendants, got %d", len(found))
	}
}

func TestEqualsDetectsDifference(t *testing.T) {
	a := New(KindLiteral, map[string]interface{}{"this": "1", "is_string": false})
	b := New(KindLiteral, map[string]interface{}{"this": "2", "is_string": false})

	if ok, _ := a.Equals(a); !ok {
		t.Error("expected a node to equal itself")
	}
	if ok, msg := a.Equals(b); ok {
		t.Error("expected a != b")
	} else if msg == "" {
		t.Error("expected a non-empty diff message")
	}
}

func TestKindStringRoundTrips(t *testing.T) {
	if KindSelect.String() != "Select" {
		t.Errorf("unexpected String(): %q", KindSelect.String())
	}
}
