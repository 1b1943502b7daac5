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
	"bytes"
	"fmt"
	"sort"

	"devt.de/krotik/common/stringutil"
)

/*
IndentationLevel is the number of spaces PrettyPrint adds per tree depth,
matching the teacher's parser/prettyprinter.go constant of the same name.
*/
const IndentationLevel = 2

/*
PrettyPrint renders an Expression tree as an indented debug dump: one line
per node, showing its Kind and scalar args, children nested underneath.
Unlike the teacher's prettyprinter.go (which renders ECAL back into source
text via per-kind templates), this has no round-trip obligation - sqlfront's
scope is parsing, not generation - so a plain structural dump is enough to
make a parsed tree legible to a human or a test failure message.
*/
func PrettyPrint(e *Expression) string {
	var buf bytes.Buffer
	printNode(&buf, e, 0)
	return buf.String()
}

func printNode(buf *bytes.Buffer, e *Expression, depth int) {
	indent := stringutil.GenerateRollingString(" ", depth*IndentationLevel)

	if e == nil {
		fmt.Fprintf(buf, "%s<nil>\n", indent)
		return
	}

	fmt.Fprintf(buf, "%s%s\n", indent, e.Kind)

	keys := make([]string, 0, len(e.Args))
	for k := range e.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	childIndent := stringutil.GenerateRollingString(" ", (depth+1)*IndentationLevel)

	for _, k := range keys {
		v := e.Args[k]
		switch vv := v.(type) {
		case *Expression:
			fmt.Fprintf(buf, "%s%s:\n", childIndent, k)
			printNode(buf, vv, depth+2)
		case []*Expression:
			fmt.Fprintf(buf, "%s%s: [\n", childIndent, k)
			for _, c := range vv {
				printNode(buf, c, depth+2)
			}
		default:
			fmt.Fprintf(buf, "%s%s: %v\n", childIndent, k, v)
		}
	}
}
