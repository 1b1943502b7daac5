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
Schemas is the complete node schema: for every Kind, the legal argument
slots and which of them are mandatory (spec.md §4.B). The factory validates
every constructed node against this table.
*/
var Schemas = map[Kind]Schema{
	KindIdentifier: {Slots: []Slot{{"this", true}, {"quoted", false}}},
	KindStar:       {},
	KindNull:       {},
	KindLiteral:    {Slots: []Slot{{"this", true}, {"is_string", false}}},
	KindDataType:   {Slots: []Slot{{"this", true}}},
	KindDecimal:    {Slots: []Slot{{"precision", false}, {"scale", false}}},

	KindSelect: {Slots: []Slot{
		{"hint", false}, {"distinct", false}, {"expressions", true},
		{"from", false}, {"laterals", false}, {"joins", false},
		{"where", false}, {"group", false}, {"having", false},
		{"order", false}, {"limit", false},
	}},
	KindValues: {Slots: []Slot{{"expressions", true}}},
	KindTuple:  {Slots: []Slot{{"expressions", false}}},
	KindUnion:  {Slots: []Slot{{"this", true}, {"expression", true}, {"distinct", false}}},
	KindCTE:    {Slots: []Slot{{"this", true}, {"expressions", true}, {"recursive", false}}},
	KindCreate: {Slots: []Slot{
		{"this", true}, {"kind", true}, {"expression", false}, {"exists", false},
		{"file_format", false}, {"temporary", false}, {"replace", false},
		{"engine", false}, {"auto_increment", false}, {"character_set", false},
		{"collate", false}, {"comment", false},
	}},
	KindDrop:   {Slots: []Slot{{"this", true}, {"kind", true}, {"exists", false}}},
	KindInsert: {Slots: []Slot{{"this", true}, {"expression", true}, {"exists", false}, {"overwrite", false}}},
	KindUpdate: {Slots: []Slot{{"this", true}, {"expressions", false}, {"where", false}}},

	KindFrom:    {Slots: []Slot{{"expressions", true}}},
	KindWhere:   {Slots: []Slot{{"this", true}}},
	KindGroup:   {Slots: []Slot{{"expressions", true}}},
	KindHaving:  {Slots: []Slot{{"this", true}}},
	KindOrder:   {Slots: []Slot{{"expressions", true}}},
	KindOrdered: {Slots: []Slot{{"this", true}, {"desc", false}}},
	KindLimit:   {Slots: []Slot{{"this", false}}},
	KindHint:    {Slots: []Slot{{"this", true}}},

	KindTable:   {Slots: []Slot{{"this", true}, {"db", false}}},
	KindAlias:   {Slots: []Slot{{"this", true}, {"alias", false}}},
	KindJoin:    {Slots: []Slot{{"this", true}, {"side", false}, {"kind", false}, {"on", false}}},
	KindLateral: {Slots: []Slot{{"this", true}, {"outer", false}, {"table", true}, {"columns", false}}},
	KindUnnest:  {Slots: []Slot{{"expressions", true}, {"ordinality", false}, {"table", false}, {"columns", false}}},

	KindSchema: {Slots: []Slot{{"this", true}, {"expressions", true}}},
	KindColumnDef: {Slots: []Slot{
		{"this", true}, {"kind", true}, {"not_null", false}, {"auto_increment", false},
		{"collate", false}, {"default", false}, {"comment", false},
	}},
	KindFileFormat:   {Slots: []Slot{{"this", true}}},
	KindCharacterSet: {Slots: []Slot{{"this", true}, {"default", false}}},

	KindColumn:  {Slots: []Slot{{"this", true}, {"db", false}, {"table", false}, {"fields", false}}},
	KindDot:     {Slots: []Slot{{"this", true}, {"expression", true}}},
	KindBracket: {Slots: []Slot{{"this", true}, {"expressions", true}}},
	KindArray:   {Slots: []Slot{{"expressions", false}}, IsVarLenArgs: true},
	KindParen:   {Slots: []Slot{{"this", true}}},

	KindAnonymous: {Slots: []Slot{{"this", true}, {"expressions", false}}, IsVarLenArgs: true},
	KindCount:     {Slots: []Slot{{"this", true}, {"distinct", false}}},
	KindExtract:   {Slots: []Slot{{"this", true}, {"expression", true}}},
	KindCast:      {Slots: []Slot{{"this", true}, {"to", true}}},
	KindInterval:  {Slots: []Slot{{"this", true}, {"unit", false}}},

	KindCase: {Slots: []Slot{{"this", false}, {"ifs", true}, {"default", false}}},
	KindIf:   {Slots: []Slot{{"this", true}, {"true", true}, {"false", false}}},

	KindWindow:     {Slots: []Slot{{"this", true}, {"partition", false}, {"order", false}, {"spec", false}}},
	KindWindowSpec: {Slots: []Slot{{"kind", true}, {"start", true}, {"start_side", false}, {"end", true}, {"end_side", false}}},

	KindNot:        {Slots: []Slot{{"this", true}}},
	KindNeg:        {Slots: []Slot{{"this", true}}},
	KindBitwiseNot: {Slots: []Slot{{"this", true}}},

	KindAnd: {Slots: binarySlots},
	KindOr:  {Slots: binarySlots},

	KindEQ:  {Slots: binarySlots},
	KindNEQ: {Slots: binarySlots},
	KindIs:  {Slots: binarySlots},

	KindGT:  {Slots: binarySlots},
	KindGTE: {Slots: binarySlots},
	KindLT:  {Slots: binarySlots},
	KindLTE: {Slots: binarySlots},

	KindBitwiseLeftShift:  {Slots: binarySlots},
	KindBitwiseRightShift: {Slots: binarySlots},
	KindBitwiseAnd:        {Slots: binarySlots},
	KindBitwiseXor:        {Slots: binarySlots},
	KindBitwiseOr:         {Slots: binarySlots},
	KindDPipe:             {Slots: binarySlots},

	KindPlus:   {Slots: binarySlots},
	KindMinus:  {Slots: binarySlots},
	KindMod:    {Slots: binarySlots},
	KindIntDiv: {Slots: binarySlots},
	KindDiv:    {Slots: binarySlots},
	KindMul:    {Slots: binarySlots},

	KindLike:      {Slots: binarySlots},
	KindRegexLike: {Slots: binarySlots},
	KindIn:        {Slots: []Slot{{"this", true}, {"query", false}, {"expressions", false}}},
	KindBetween:   {Slots: []Slot{{"this", true}, {"low", true}, {"high", true}}},
}

var binarySlots = []Slot{{"this", true}, {"expression", true}}
