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
parseStatement dispatches on the leading keyword of one statement: WITH
(common table expression), SELECT, CREATE, DROP, INSERT or UPDATE (spec.md
§4.E "statement"). A bare parenthesized SELECT, or a UNION chain, is also
reached from here through parsePrimary's recursive call back into
parseStatement for subqueries.
*/
func (p *Parser) parseStatement() *ast.Expression {
	switch {
	case p.cur.peekIs(0, token.WITH):
		return p.parseCTE()
	case p.cur.peekIs(0, token.SELECT):
		return p.parseSelectUnion()
	case p.cur.peekIs(0, token.CREATE):
		return p.parseCreate()
	case p.cur.peekIs(0, token.DROP):
		return p.parseDrop()
	case p.cur.peekIs(0, token.INSERT):
		return p.parseInsert()
	case p.cur.peekIs(0, token.UPDATE):
		return p.parseUpdate()
	}
	return nil
}

func (p *Parser) parseCTE() *ast.Expression {
	p.cur.match(token.WITH)
	recursive := p.cur.match(token.RECURSIVE) != nil

	ctes := p.parseCSV(p.parseCTEEntry)

	this := p.parseStatement()

	return p.expression(ast.KindCTE, map[string]interface{}{
		"this": this, "expressions": toIfaceSlice(ctes), "recursive": recursive,
	})
}

func (p *Parser) parseCTEEntry() *ast.Expression {
	alias := p.parseIDVar(true)
	p.expect("Missing keyword / punctuation: 'AS' for CTE", token.AS)
	p.expect("Missing keyword / punctuation: '(' for CTE", token.L_PAREN)
	this := p.parseStatement()
	p.expect("Missing keyword / punctuation: ')' for CTE", token.R_PAREN)
	return p.expression(ast.KindAlias, map[string]interface{}{"this": this, "alias": alias})
}

/*
parseSelectUnion parses one SELECT and folds any trailing UNION [ALL]
SELECT chain onto it left-associatively (spec.md §4.E "union").
*/
func (p *Parser) parseSelectUnion() *ast.Expression {
	this := p.parseSelect()

	for p.cur.peekIs(0, token.UNION) {
		p.cur.match(token.UNION)
		distinct := p.cur.match(token.ALL) == nil
		right := p.parseSelect()
		this = p.expression(ast.KindUnion, map[string]interface{}{"this": this, "expression": right, "distinct": distinct})
	}

	return this
}

func (p *Parser) parseSelect() *ast.Expression {
	p.expect("Missing keyword / punctuation: 'SELECT' for Select", token.SELECT)

	var hint *ast.Expression
	if p.cur.peekIs(0, token.HINT) {
		hint = p.parseHint()
	}

	distinct := p.cur.match(token.DISTINCT) != nil

	expressions := p.parseCSV(p.parseExpression)

	var from *ast.Expression
	var laterals []*ast.Expression
	var joins []*ast.Expression
	if p.cur.peekIs(0, token.FROM) {
		from = p.parseFrom()
		laterals = p.parseLaterals()
		joins = p.parseJoins()
	}

	var where *ast.Expression
	if p.cur.peekIs(0, token.WHERE) {
		where = p.parseWhere()
	}

	var group *ast.Expression
	if p.cur.peekIs(0, token.GROUP) {
		group = p.parseGroup()
	}

	var having *ast.Expression
	if p.cur.peekIs(0, token.HAVING) {
		having = p.parseHaving()
	}

	var order *ast.Expression
	if p.cur.peekIs(0, token.ORDER) {
		order = p.parseOrder()
	}

	var limit *ast.Expression
	if p.cur.peekIs(0, token.LIMIT) {
		limit = p.parseLimit()
	}

	return p.expression(ast.KindSelect, map[string]interface{}{
		"hint": hint, "distinct": distinct, "expressions": toIfaceSlice(expressions),
		"from": from, "laterals": toIfaceSlice(laterals), "joins": toIfaceSlice(joins),
		"where": where, "group": group, "having": having, "order": order, "limit": limit,
	})
}

func (p *Parser) parseHint() *ast.Expression {
	p.cur.match(token.HINT)
	this := p.parseCSV(p.parseExpression)
	p.expect("Missing keyword / punctuation: '*/' for Hint", token.COMMENTEND)
	if len(this) == 0 {
		return p.expression(ast.KindHint, map[string]interface{}{})
	}
	return p.expression(ast.KindHint, map[string]interface{}{"this": this[0]})
}

func (p *Parser) parseFrom() *ast.Expression {
	p.cur.match(token.FROM)
	tables := p.parseCSV(p.parseTable)
	return p.expression(ast.KindFrom, map[string]interface{}{"expressions": toIfaceSlice(tables)})
}

/*
parseTable parses one FROM/JOIN source: a table name (optionally db-
qualified), a parenthesized subquery, or an UNNEST call, each optionally
aliased (spec.md §4.E "table").
*/
func (p *Parser) parseTable() *ast.Expression {
	if p.cur.peekIs(0, token.UNNEST) {
		return p.parseAliasGeneric(p.parseUnnest)
	}

	if p.cur.peekIs(0, token.L_PAREN) {
		return p.parseAliasGeneric(p.parseSubqueryTable)
	}

	parts := []interface{}{p.parseIDVar(true)}
	for p.cur.match(token.DOT) != nil {
		parts = append(parts, p.parseIDVar(true))
	}

	var table *ast.Expression
	switch len(parts) {
	case 1:
		table = p.expression(ast.KindTable, map[string]interface{}{"this": parts[0]})
	default:
		table = p.expression(ast.KindTable, map[string]interface{}{"this": parts[len(parts)-1], "db": parts[len(parts)-2]})
	}

	return p.parseAlias(table)
}

func (p *Parser) parseSubqueryTable() *ast.Expression {
	p.cur.match(token.L_PAREN)
	this := p.parseStatement()
	p.expect("Missing keyword / punctuation: ')' for Paren", token.R_PAREN)
	return p.expression(ast.KindParen, map[string]interface{}{"this": this})
}

func (p *Parser) parseAliasGeneric(parse func() *ast.Expression) *ast.Expression {
	return p.parseAlias(parse())
}

func (p *Parser) parseUnnest() *ast.Expression {
	p.cur.match(token.UNNEST)
	p.expect("Missing keyword / punctuation: '(' for Unnest", token.L_PAREN)
	exprs := p.parseCSV(p.parseExpression)
	p.expect("Missing keyword / punctuation: ')' for Unnest", token.R_PAREN)

	ordinality := p.cur.match(token.WITH) != nil
	if ordinality {
		p.expect("Missing keyword / punctuation: 'ORDINALITY' for Unnest", token.ORDINALITY)
	}

	var tableAlias interface{}
	var columns []interface{}
	if p.cur.match(token.AS) != nil {
		tableAlias = p.parseIDVar(true)
		if p.cur.match(token.L_PAREN) != nil {
			columns = p.parseCSVAny(func() interface{} { return p.parseIDVar(true) })
			p.expect("Missing keyword / punctuation: ')' for Unnest", token.R_PAREN)
		}
	}

	return p.expression(ast.KindUnnest, map[string]interface{}{
		"expressions": toIfaceSlice(exprs), "ordinality": ordinality,
		"table": tableAlias, "columns": toAnySlice(columns),
	})
}

/*
parseLaterals parses zero or more LATERAL VIEW clauses. Each LATERAL VIEW's
column list scopes only to that LATERAL VIEW, never leaking into a sibling
one (spec.md's SUPPLEMENTED FEATURES; an Open Question the original source
resolves this way).
*/
func (p *Parser) parseLaterals() []*ast.Expression {
	var out []*ast.Expression
	for p.cur.peekIs(0, token.LATERAL) {
		p.cur.match(token.LATERAL)
		p.expect("Missing keyword / punctuation: 'VIEW' for Lateral", token.VIEW)
		outer := p.cur.match(token.OUTER) != nil

		this := p.parseFunctionOrColumn()
		table := p.parseIDVar(true)

		var columns []interface{}
		if p.cur.match(token.AS) != nil {
			columns = p.parseCSVAny(func() interface{} { return p.parseIDVar(true) })
		}

		out = append(out, p.expression(ast.KindLateral, map[string]interface{}{
			"this": this, "outer": outer, "table": table, "columns": toAnySlice(columns),
		}))
	}
	return out
}

func (p *Parser) parseJoins() []*ast.Expression {
	var out []*ast.Expression
	for {
		var side *ast.Expression
		var kind *ast.Expression

		switch {
		case p.cur.match(token.LEFT) != nil:
			side = identText("LEFT")
		case p.cur.match(token.RIGHT) != nil:
			side = identText("RIGHT")
		case p.cur.match(token.FULL) != nil:
			side = identText("FULL")
		}

		switch {
		case p.cur.match(token.INNER) != nil:
			kind = identText("INNER")
		case p.cur.match(token.OUTER) != nil:
			kind = identText("OUTER")
		case p.cur.match(token.CROSS) != nil:
			kind = identText("CROSS")
		}

		if p.cur.match(token.JOIN) == nil {
			if side == nil && kind == nil {
				return out
			}
			p.raise("Missing keyword / punctuation: 'JOIN' for Join")
			return out
		}

		this := p.parseTable()

		var on *ast.Expression
		if p.cur.match(token.ON) != nil {
			on = p.parseConjunction()
		}

		out = append(out, p.expression(ast.KindJoin, map[string]interface{}{
			"this": this, "side": side, "kind": kind, "on": on,
		}))
	}
}

func identText(s string) *ast.Expression {
	return ast.New(ast.KindIdentifier, map[string]interface{}{"this": s, "quoted": false})
}

func (p *Parser) parseWhere() *ast.Expression {
	p.cur.match(token.WHERE)
	this := p.parseConjunction()
	return p.expression(ast.KindWhere, map[string]interface{}{"this": this})
}

func (p *Parser) parseGroup() *ast.Expression {
	p.cur.match(token.GROUP)
	p.expect("Missing keyword / punctuation: 'BY' for Group", token.BY)
	exprs := p.parseCSV(p.parseConjunction)
	return p.expression(ast.KindGroup, map[string]interface{}{"expressions": toIfaceSlice(exprs)})
}

func (p *Parser) parseHaving() *ast.Expression {
	p.cur.match(token.HAVING)
	this := p.parseConjunction()
	return p.expression(ast.KindHaving, map[string]interface{}{"this": this})
}

/*
parseOrder parses ORDER BY; each item defaults to ascending when no ASC/DESC
keyword follows (spec.md's SUPPLEMENTED FEATURES, resolving an Open
Question the same way the original does).
*/
func (p *Parser) parseOrder() *ast.Expression {
	p.cur.match(token.ORDER)
	p.expect("Missing keyword / punctuation: 'BY' for Order", token.BY)
	items := p.parseCSV(p.parseOrdered)
	return p.expression(ast.KindOrder, map[string]interface{}{"expressions": toIfaceSlice(items)})
}

func (p *Parser) parseOrdered() *ast.Expression {
	this := p.parseConjunction()
	desc := false
	switch {
	case p.cur.match(token.ASC) != nil:
		desc = false
	case p.cur.match(token.DESC) != nil:
		desc = true
	}
	return p.expression(ast.KindOrdered, map[string]interface{}{"this": this, "desc": desc})
}

func (p *Parser) parseLimit() *ast.Expression {
	p.cur.match(token.LIMIT)
	this := p.parsePrimary()
	return p.expression(ast.KindLimit, map[string]interface{}{"this": this})
}

func (p *Parser) parseValues() *ast.Expression {
	p.cur.match(token.VALUES)
	rows := p.parseCSV(p.parseValueTuple)
	return p.expression(ast.KindValues, map[string]interface{}{"expressions": toIfaceSlice(rows)})
}

func (p *Parser) parseValueTuple() *ast.Expression {
	p.expect("Missing keyword / punctuation: '(' for Tuple", token.L_PAREN)
	exprs := p.parseCSV(p.parseExpression)
	p.expect("Missing keyword / punctuation: ')' for Tuple", token.R_PAREN)
	return p.expression(ast.KindTuple, map[string]interface{}{"expressions": toIfaceSlice(exprs)})
}

/*
parseCreate parses CREATE [TEMPORARY] TABLE [IF NOT EXISTS] name
(column_def, ...) [clause...] or CREATE TABLE name AS select (spec.md §4.E
"create").
*/
func (p *Parser) parseCreate() *ast.Expression {
	p.cur.match(token.CREATE)

	replace := false
	if p.cur.match(token.OR) != nil {
		p.expect("Missing keyword / punctuation: 'REPLACE' for Create", token.REPLACE)
		replace = true
	}

	temporary := p.cur.match(token.TEMPORARY) != nil

	kind := p.expect("Missing keyword / punctuation: 'TABLE' for Create", token.TABLE, token.VIEW)

	exists := false
	if p.cur.match(token.IF) != nil {
		p.expect("Missing keyword / punctuation: 'NOT' for Create", token.NOT)
		p.expect("Missing keyword / punctuation: 'EXISTS' for Create", token.EXISTS)
		exists = true
	}

	this := p.parseTable()

	args := map[string]interface{}{
		"this": this, "exists": exists, "temporary": temporary, "replace": replace,
	}
	if kind != nil {
		args["kind"] = identText(kind.Kind.String())
	}

	if p.cur.match(token.AS) != nil {
		args["expression"] = p.parseStatement()
		return p.expression(ast.KindCreate, args)
	}

	p.expect("Missing keyword / punctuation: '(' for Schema", token.L_PAREN)
	columns := p.parseCSV(p.parseColumnDef)
	p.expect("Missing keyword / punctuation: ')' for Schema", token.R_PAREN)
	args["expression"] = p.expression(ast.KindSchema, map[string]interface{}{
		"this": this, "expressions": toIfaceSlice(columns),
	})

	p.parseCreateOptions(args)

	return p.expression(ast.KindCreate, args)
}

/*
parseCreateOptions parses the trailing option loop of a CREATE TABLE
statement (ENGINE=, AUTO_INCREMENT=, DEFAULT CHARACTER SET, COLLATE,
COMMENT, STORED AS, WITH (FORMAT=...)), each optional and any order (spec.md's
SUPPLEMENTED FEATURES).
*/
func (p *Parser) parseCreateOptions(args map[string]interface{}) {
	for {
		switch {
		case p.cur.match(token.ENGINE) != nil:
			p.expect("Missing keyword / punctuation: '=' for Create", token.EQ)
			args["engine"] = p.parseIDVar(true)
		case p.cur.match(token.AUTO_INCREMENT) != nil:
			p.cur.match(token.EQ)
			args["auto_increment"] = p.parsePrimary()
		case p.cur.match(token.DEFAULT) != nil:
			p.expect("Missing keyword / punctuation: 'CHARACTER_SET' for Create", token.CHARACTER_SET)
			p.cur.match(token.EQ)
			args["character_set"] = p.expression(ast.KindCharacterSet, map[string]interface{}{
				"this": p.parseIDVar(true), "default": true,
			})
		case p.cur.match(token.CHARACTER_SET) != nil:
			p.cur.match(token.EQ)
			args["character_set"] = p.expression(ast.KindCharacterSet, map[string]interface{}{"this": p.parseIDVar(true)})
		case p.cur.match(token.COLLATE) != nil:
			p.cur.match(token.EQ)
			args["collate"] = p.parseIDVar(true)
		case p.cur.match(token.SCHEMA_COMMENT) != nil:
			p.cur.match(token.EQ)
			args["comment"] = p.parsePrimary()
		case p.cur.match(token.STORED) != nil:
			p.expect("Missing keyword / punctuation: 'AS' for Create", token.AS)
			args["file_format"] = p.expression(ast.KindFileFormat, map[string]interface{}{"this": p.parseIDVar(true)})
		case p.cur.peekIs(0, token.WITH) && p.cur.peekIs(1, token.L_PAREN):
			p.cur.match(token.WITH)
			p.cur.match(token.L_PAREN)
			p.expect("Missing keyword / punctuation: 'FORMAT' for Create", token.FORMAT)
			p.expect("Missing keyword / punctuation: '=' for Create", token.EQ)
			args["file_format"] = p.expression(ast.KindFileFormat, map[string]interface{}{"this": p.parsePrimary()})
			p.expect("Missing keyword / punctuation: ')' for Create", token.R_PAREN)
		default:
			return
		}
	}
}

/*
parseColumnDef parses one column of a CREATE TABLE's schema: name, type,
then an options loop (NOT NULL, AUTO_INCREMENT, DEFAULT, COLLATE, COMMENT)
in any order (spec.md's SUPPLEMENTED FEATURES).
*/
func (p *Parser) parseColumnDef() *ast.Expression {
	this := p.parseIDVar(true)
	kind := p.parseType()

	args := map[string]interface{}{"this": this, "kind": kind}

	for {
		switch {
		case p.cur.match(token.NOT) != nil:
			p.expect("Missing keyword / punctuation: 'NULL' for ColumnDef", token.NULLTOK)
			args["not_null"] = true
		case p.cur.match(token.AUTO_INCREMENT) != nil:
			args["auto_increment"] = true
		case p.cur.match(token.DEFAULT) != nil:
			args["default"] = p.parseConjunction()
		case p.cur.match(token.COLLATE) != nil:
			args["collate"] = p.parseIDVar(true)
		case p.cur.match(token.SCHEMA_COMMENT) != nil:
			args["comment"] = p.parsePrimary()
		default:
			return p.expression(ast.KindColumnDef, args)
		}
	}
}

func (p *Parser) parseDrop() *ast.Expression {
	p.cur.match(token.DROP)
	kind := p.expect("Missing keyword / punctuation: 'TABLE' for Drop", token.TABLE, token.VIEW)

	exists := false
	if p.cur.match(token.IF) != nil {
		p.expect("Missing keyword / punctuation: 'EXISTS' for Drop", token.EXISTS)
		exists = true
	}

	this := p.parseTable()

	args := map[string]interface{}{"this": this, "exists": exists}
	if kind != nil {
		args["kind"] = identText(kind.Kind.String())
	}
	return p.expression(ast.KindDrop, args)
}

/*
parseInsert parses INSERT [OVERWRITE] [INTO] [TABLE] table [(columns)]
(VALUES ... | select) (spec.md §4.E "INSERT", spelled out fully in
SPEC_FULL.md's SUPPLEMENTED FEATURES). INTO is optional, matching
original_source/sqlglot/parser.py's `_match(TokenType.INTO)` rather than
raising when it is absent.
*/
func (p *Parser) parseInsert() *ast.Expression {
	p.cur.match(token.INSERT)

	overwrite := p.cur.match(token.OVERWRITE) != nil
	p.cur.match(token.INTO)
	p.cur.match(token.TABLE)

	this := p.parseTable()

	if p.cur.peekIs(0, token.L_PAREN) {
		p.cur.match(token.L_PAREN)
		columns := p.parseCSVAny(func() interface{} { return p.parseIDVar(true) })
		p.expect("Missing keyword / punctuation: ')' for Insert", token.R_PAREN)
		this = p.expression(ast.KindSchema, map[string]interface{}{"this": this, "expressions": toAnySlice(columns)})
	}

	var expr *ast.Expression
	if p.cur.peekIs(0, token.VALUES) {
		expr = p.parseValues()
	} else {
		expr = p.parseStatement()
	}

	return p.expression(ast.KindInsert, map[string]interface{}{
		"this": this, "expression": expr, "overwrite": overwrite,
	})
}

func (p *Parser) parseUpdate() *ast.Expression {
	p.cur.match(token.UPDATE)
	this := p.parseTable()
	p.expect("Missing keyword / punctuation: 'SET' for Update", token.SET)

	assignments := p.parseCSV(p.parseAssignment)

	var where *ast.Expression
	if p.cur.peekIs(0, token.WHERE) {
		where = p.parseWhere()
	}

	return p.expression(ast.KindUpdate, map[string]interface{}{
		"this": this, "expressions": toIfaceSlice(assignments), "where": where,
	})
}

func (p *Parser) parseAssignment() *ast.Expression {
	col := p.parseFunctionOrColumn()
	p.expect("Missing keyword / punctuation: '=' for Update", token.EQ)
	value := p.parseConjunction()
	return p.expression(ast.KindEQ, map[string]interface{}{"this": col, "expression": value})
}
