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

import "github.com/krotik/sqlfront/token"

/*
cursor is the token view of spec.md §4.A: a read-only windowed cursor over
one statement's token slice, exposing prev/curr/next and the sole means by
which the grammar driver consumes tokens, match. Tokens are consumed
strictly left to right; there is no backtracking over an already-consumed
token (spec.md §4.A "Ordering guarantee").

The teacher's equivalent (parser/helper.go's LABuffer) buffers a channel of
lexer tokens through a ring buffer because its lexer streams tokens
concurrently. Here the full token slice for a statement already exists
before parsing starts (the upstream lexer has already run, per spec.md's
Non-goals), so a plain slice index serves the same three-token window
without the channel plumbing.
*/
type cursor struct {
	tokens []token.Token
	index  int

	prev *token.Token
	curr *token.Token
	next *token.Token
}

func newCursor(tokens []token.Token) *cursor {
	c := &cursor{tokens: tokens, index: -1}
	c.advance()
	return c
}

/*
at returns the token at the cursor's logical position i, or nil if i lies
outside the slice.
*/
func (c *cursor) at(i int) *token.Token {
	if i < 0 || i >= len(c.tokens) {
		return nil
	}
	t := c.tokens[i]
	return &t
}

/*
advance moves the cursor forward one token and refreshes prev/curr/next.
*/
func (c *cursor) advance() {
	c.index++
	c.curr = c.at(c.index)
	c.next = c.at(c.index + 1)
	if c.index > 0 {
		c.prev = c.at(c.index - 1)
	} else {
		c.prev = nil
	}
}

/*
match consumes and returns curr if its Kind is one of kinds, advancing the
cursor; otherwise it returns nil and leaves the cursor untouched. This is the
only way tokens are consumed (spec.md §4.A).
*/
func (c *cursor) match(kinds ...token.Kind) *token.Token {
	if c.curr == nil {
		return nil
	}
	for _, k := range kinds {
		if c.curr.Kind == k {
			t := c.curr
			c.advance()
			return t
		}
	}
	return nil
}

/*
peekIs reports whether curr (or, with offset 1, next) has the given kind,
without consuming anything.
*/
func (c *cursor) peekIs(offset int, k token.Kind) bool {
	t := c.curr
	if offset == 1 {
		t = c.next
	}
	return t != nil && t.Kind == k
}

/*
referenceToken returns the token an error should be anchored to when the
caller has none more specific: curr, falling back to prev, falling back to
an EOF-shaped token positioned at Line 1, Col 1 - the position spec.md §8
scenario 4 expects a standalone construction with no surrounding tokens to
report (spec.md §4.D).
*/
func (c *cursor) referenceToken() token.Token {
	if c.curr != nil {
		return *c.curr
	}
	if c.prev != nil {
		return *c.prev
	}
	return token.Token{Kind: token.EOF, Line: 1, Col: 1}
}
