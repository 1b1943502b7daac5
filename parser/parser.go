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
Package parser is the grammar driver (spec.md §4.E): the recursive-descent
routines for statements, expressions, predicates, precedence climbing and
compound constructs, wired to the token view (cursor), the node factory and
validator (package ast), the error reporter (package perrors) and the
function registry (package registry).
*/
package parser

import (
	"github.com/krotik/sqlfront/ast"
	"github.com/krotik/sqlfront/perrors"
	"github.com/krotik/sqlfront/registry"
	"github.com/krotik/sqlfront/token"
)

/*
Option configures a Parser at construction time (spec.md §6 "Construction
parameters").
*/
type Option func(*Parser)

/*
WithFunctions merges extra function registry entries on top of the
builtins; a name collision is won by extra (spec.md §4.F).
*/
func WithFunctions(extra map[string]registry.Builder) Option {
	return func(p *Parser) { p.extraFunctions = extra }
}

/*
WithErrorLevel sets the error policy (spec.md §7). Default: Raise.
*/
func WithErrorLevel(level perrors.Level) Option {
	return func(p *Parser) { p.errorLevel = level }
}

/*
WithErrorContext sets error_message_context, the number of characters of
source shown around a diagnostic (spec.md §4.D). Default: 50.
*/
func WithErrorContext(n int) Option {
	return func(p *Parser) { p.errorContext = n }
}

/*
WithLogger sets the sink a Warn-level diagnostic is logged to.
*/
func WithLogger(logger perrors.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

/*
Parser holds the construction-time configuration plus, during a Parse call,
all per-call mutable state (spec.md §3 "Parser state"): the source string,
the current statement's cursor, and the error reporter. That per-call state
is re-initialized by Parse and is not safe to share across concurrent Parse
calls on the same Parser (spec.md §5).
*/
type Parser struct {
	extraFunctions map[string]registry.Builder
	errorLevel     perrors.Level
	errorContext   int
	logger         perrors.Logger

	functions *registry.Registry

	source   string
	cur      *cursor
	reporter *perrors.Reporter
}

/*
New builds a Parser. The returned value may be reused across many
sequential (never concurrent) Parse calls; construction-time options are
fixed for its lifetime.
*/
func New(opts ...Option) *Parser {
	p := &Parser{errorLevel: perrors.Raise, errorContext: perrors.DefaultContext}
	for _, o := range opts {
		o(p)
	}
	p.functions = registry.New(p.extraFunctions)
	return p
}

/*
LastError returns the most recently reported diagnostic, regardless of
error policy (spec.md §7, last paragraph). Valid only after a Parse call.
*/
func (p *Parser) LastError() *perrors.ParseError {
	if p.reporter == nil {
		return nil
	}
	return p.reporter.LastError
}

/*
FunctionNames returns every name registered in this Parser's function
registry, sorted (spec.md §4.F).
*/
func (p *Parser) FunctionNames() []string {
	return p.functions.Names()
}

/*
Parse tokenizes raw tokens into statements split on top-level ';' tokens
(trailing empty statements dropped) and parses each into one *ast.Expression,
wiring parent/arg-key back-references before returning (spec.md §4.E "Parent
wiring post-pass", §6 "parse(tokens, source?)").

source, when given, is used only to render diagnostics; it need not be
supplied if the caller does not care about error text.
*/
func (p *Parser) Parse(tokens []token.Token, source string) (result []*ast.Expression, err error) {
	p.source = source
	p.reporter = perrors.NewReporter(source, p.errorLevel, p.errorContext, p.logger)

	defer func() { err = perrors.Recover(recover(), err) }()

	for _, chunk := range splitChunks(tokens) {
		p.cur = newCursor(chunk)
		stmt := p.parseStatement()

		if p.cur.curr != nil {
			p.raise("Invalid expression / Unexpected token")
		}

		result = append(result, stmt)
	}

	for _, stmt := range result {
		if stmt != nil {
			ast.Wire(stmt)
		}
	}

	return result, nil
}

/*
splitChunks partitions tokens into statements on top-level ';' tokens,
dropping empty trailing statements (spec.md §6 "Statement separators"). An
EOF token ends the input and is not part of any statement.
*/
func splitChunks(tokens []token.Token) [][]token.Token {
	chunks := [][]token.Token{{}}
	for _, t := range tokens {
		if t.Kind == token.EOF {
			break
		}
		if t.Kind == token.SEMICOLON {
			chunks = append(chunks, []token.Token{})
			continue
		}
		chunks[len(chunks)-1] = append(chunks[len(chunks)-1], t)
	}
	for len(chunks) > 0 && len(chunks[len(chunks)-1]) == 0 {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}

/*
Expression is the factory entry point spec.md §6 names as its own downstream
interface, exposed to callers wanting to construct and validate a node
directly rather than through Parse ("expression(kind, **slots) -> AST ...
used both internally and by callers wishing to construct nodes directly").
Called standalone, it lazily initializes the reporter/cursor state a Parse
call would otherwise have set up, using this Parser's construction-time
options, and turns a Raise-level violation into a returned error rather than
an unrecovered panic.
*/
func (p *Parser) Expression(kind ast.Kind, args map[string]interface{}) (e *ast.Expression, err error) {
	p.ensureStandaloneState()
	defer func() { err = perrors.Recover(recover(), err) }()
	return p.expression(kind, args), nil
}

/*
ensureStandaloneState lazily builds the reporter/cursor pair Parse normally
initializes, so Expression works on a Parser that was only ever built with
New and never handed a Parse call.
*/
func (p *Parser) ensureStandaloneState() {
	if p.reporter == nil {
		p.reporter = perrors.NewReporter(p.source, p.errorLevel, p.errorContext, p.logger)
	}
	if p.cur == nil {
		p.cur = newCursor(nil)
	}
}

/*
expression is the internal factory entry point used throughout the grammar
driver: it coerces any raw tokens found among the slot values into their
semantic node (spec.md §3 invariant 5), constructs the node, and validates it
subject to the configured error policy.
*/
func (p *Parser) expression(kind ast.Kind, args map[string]interface{}) *ast.Expression {
	coerced := make(map[string]interface{}, len(args))
	for k, v := range args {
		coerced[k] = p.ensureNonToken(v)
	}

	e := ast.New(kind, coerced)
	p.validate(e)
	return e
}

/*
validate runs ast.Validate and reports every violation found, subject to
error policy. Under Ignore, schema validation is skipped entirely (spec.md
§7 "IGNORE").
*/
func (p *Parser) validate(e *ast.Expression) {
	if p.reporter.Level == perrors.Ignore {
		return
	}

	for _, v := range ast.Validate(e) {
		kind := perrors.ErrMissingSlot
		if v.Unexpected {
			kind = perrors.ErrUnknownSlot
		}
		p.reporter.Report(kind, v.Message(e.Kind), p.cur.referenceToken())
	}
}

/*
raiseAt reports a diagnostic anchored to a specific token rather than the
cursor's current position (spec.md §4.D "a reference token").
*/
func (p *Parser) raiseAt(kind error, message string, t token.Token) {
	p.reporter.Report(kind, message, t)
}

/*
raise reports a diagnostic anchored to the cursor's current reference token,
using the generic "unexpected token" sentinel.
*/
func (p *Parser) raise(message string) {
	p.raiseAt(perrors.ErrUnexpectedToken, message, p.cur.referenceToken())
}

/*
expect consumes and returns a token of one of kinds, or reports
ErrMissingKeyword and returns nil.
*/
func (p *Parser) expect(message string, kinds ...token.Kind) *token.Token {
	if t := p.cur.match(kinds...); t != nil {
		return t
	}
	p.raiseAt(perrors.ErrMissingKeyword, message, p.cur.referenceToken())
	return nil
}
