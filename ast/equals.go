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

import "fmt"

/*
Equals checks if this Expression equals other, returning also a message
describing the first difference found. Adapted from the teacher's
ASTNode.Equals: a structural diff rather than reflect.DeepEqual, so tests can
ignore position fields while still getting a useful failure message.
*/
func (e *Expression) Equals(other *Expression) (bool, string) {
	return e.equalsPath("root", other)
}

func (e *Expression) equalsPath(path string, other *Expression) (bool, string) {
	if e == nil || other == nil {
		if e == other {
			return true, ""
		}
		return false, fmt.Sprintf("%s: nil vs non-nil", path)
	}

	if e.Kind != other.Kind {
		return false, fmt.Sprintf("%s: Kind differs %v vs %v", path, e.Kind, other.Kind)
	}

	if len(e.Args) != len(other.Args) {
		return false, fmt.Sprintf("%s: arg count differs %d vs %d", path, len(e.Args), len(other.Args))
	}

	for k, v := range e.Args {
		ov, ok := other.Args[k]
		if !ok {
			return false, fmt.Sprintf("%s.%s: missing in other", path, k)
		}

		switch vv := v.(type) {
		case *Expression:
			ovv, ok := ov.(*Expression)
			if !ok {
				return false, fmt.Sprintf("%s.%s: type differs (*Expression vs %T)", path, k, ov)
			}
			if ok2, msg := vv.equalsPath(fmt.Sprintf("%s.%s", path, k), ovv); !ok2 {
				return false, msg
			}
		case []*Expression:
			ovv, ok := ov.([]*Expression)
			if !ok {
				return false, fmt.Sprintf("%s.%s: type differs ([]*Expression vs %T)", path, k, ov)
			}
			if len(vv) != len(ovv) {
				return false, fmt.Sprintf("%s.%s: length differs %d vs %d", path, k, len(vv), len(ovv))
			}
			for i := range vv {
				if ok2, msg := vv[i].equalsPath(fmt.Sprintf("%s.%s[%d]", path, k, i), ovv[i]); !ok2 {
					return false, msg
				}
			}
		default:
			if v != ov {
				return false, fmt.Sprintf("%s.%s: value differs %v vs %v", path, k, v, ov)
			}
		}
	}

	return true, ""
}
