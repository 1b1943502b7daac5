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
sqlfront is a command line driver for the parser: it tokenizes and parses a
SQL file (or stdin), then either pretty-prints the resulting AST for each
statement or reports the first ParseError, formatted exactly as the
library renders it. Adapted from krotik-ecal/cli/ecal.go's flag-driven
single-shot tool shape (that CLI also offers a REPL; a SQL parser has no
runtime to step through, so only the one-shot path survives here).
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"devt.de/krotik/common/stringutil"

	"github.com/krotik/sqlfront/ast"
	"github.com/krotik/sqlfront/config"
	"github.com/krotik/sqlfront/lexer"
	"github.com/krotik/sqlfront/parser"
	"github.com/krotik/sqlfront/perrors"
	"github.com/krotik/sqlfront/util"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sqlfront", flag.ContinueOnError)
	fs.SetOutput(stderr)

	level := fs.String("level", "raise", "error policy: raise, warn or ignore")
	context := fs.Int("context", config.Int(config.New(nil), config.ErrorMessageContext), "characters of source shown around a diagnostic")
	listFunctions := fs.Bool("functions", false, "list the registered function names and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	p := parser.New(
		parser.WithErrorLevel(levelFromString(*level)),
		parser.WithErrorContext(*context),
		parser.WithLogger(util.NewStdOutLogger()),
	)

	if *listFunctions {
		printFunctionNames(stdout, p)
		return 0
	}

	source, err := readSource(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	tokens, err := lexer.Lex(source)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	statements, err := p.Parse(tokens, source)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for i, stmt := range statements {
		fmt.Fprintf(stdout, "-- statement %d --\n", i+1)
		fmt.Fprintln(stdout, ast.PrettyPrint(stmt))
	}

	return 0
}

func levelFromString(s string) perrors.Level {
	switch s {
	case "warn":
		return perrors.Warn
	case "ignore":
		return perrors.Ignore
	default:
		return perrors.Raise
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

/*
printFunctionNames dumps the registry's seeded function table as a
one-column table, using the same table printer krotik-ecal/cli/tool/
interpret.go's displaySymbols renders its own symbol tables with.
*/
func printFunctionNames(w io.Writer, p *parser.Parser) {
	tabData := []string{"Function"}
	for _, name := range p.FunctionNames() {
		tabData = append(tabData, name)
	}
	if len(tabData) > 1 {
		fmt.Fprint(w, stringutil.PrintGraphicStringTable(tabData, 1, 1, stringutil.SingleDoubleLineTable))
	}
}
