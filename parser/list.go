// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/typeforge/tsparse/ast"
	"github.com/typeforge/tsparse/token"
)

// parseCommaList parses a comma-separated, bracket-delimited list:
// close is the terminator token (RPAREN, RBRACKET, RBRACE, GTR) and
// parseElement produces one element from the current position. It is
// the common shape behind argument lists, parameter lists, array and
// object literal members, and type argument/parameter lists: every one
// of the ~25 list contexts in flags.go's ParsingContext is, at its
// core, this loop with a different element parser and terminator.
//
// ctx is pushed as the active parsing context for the duration. p.sync
// does not consult it: each caller passes its stop tokens explicitly.
func parseCommaList[T ast.Node](p *parser, ctx ParsingContext, close token.Token, parseElement func() T) ast.NodeArray[T] {
	prevCtx := p.parsingContext
	p.parsingContext = ctx
	defer func() { p.parsingContext = prevCtx }()

	startPos := p.pos
	var elems []T
	trailingComma := false
	for !p.at(close) && !p.at(token.EOF) {
		elems = append(elems, parseElement())
		trailingComma = false
		if p.at(token.COMMA) {
			trailingComma = true
			p.next()
			continue
		}
		break
	}
	return ast.NodeArray[T]{
		Elements:         elems,
		ListPos:          startPos,
		ListEnd:          p.pos,
		HasTrailingComma: trailingComma,
	}
}

// isAtListTerminator reports whether the current token plausibly ends
// the list production ctx is currently parsing, consulted by recovery
// code deciding whether to synthesize a bad element and keep going or
// give up on the list entirely (the list-termination
// heuristic).
func (p *parser) isAtListTerminator(ctx ParsingContext) bool {
	switch ctx {
	case SourceElements:
		return p.at(token.EOF)
	case BlockStatements, ClassMembers, TypeMembers, EnumMembers, ObjectLiteralMembers:
		return p.at(token.RBRACE) || p.at(token.EOF)
	case SwitchClauses:
		return p.at(token.RBRACE) || p.at(token.EOF)
	case SwitchClauseStatements:
		return p.at(token.RBRACE) || p.at(token.CASE) || p.at(token.DEFAULT) || p.at(token.EOF)
	case ArgumentExpressions, Parameters, HeritageClauseElement:
		return p.at(token.RPAREN) || p.at(token.EOF)
	case ObjectBindingElements, RestProperties:
		return p.at(token.RBRACE) || p.at(token.EOF)
	case ArrayBindingElements, ArrayLiteralMembers, TupleElementTypes:
		return p.at(token.RBRACKET) || p.at(token.EOF)
	case JsxAttributes:
		return p.at(token.GTR) || p.at(token.SLASH) || p.at(token.EOF)
	case JsxChildren:
		return p.at(token.LSS) || p.at(token.EOF)
	case TypeParameters, TypeArguments:
		return p.at(token.GTR) || p.at(token.EOF)
	case VariableDeclarations:
		return p.at(token.SEMICOLON) || p.at(token.EOF)
	case HeritageClauses:
		return p.at(token.LBRACE) || p.at(token.EOF)
	case ImportOrExportSpecifiers:
		return p.at(token.RBRACE) || p.at(token.EOF)
	}
	return p.at(token.EOF)
}
