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

// modifierTokens is consulted by parseModifiers to decide which
// keyword spellings are legal as declaration modifiers; order in
// source is preserved verbatim rather than canonicalized, since a
// printer needs to round-trip whatever the author wrote.
func isModifierToken(tok token.Token) bool {
	switch tok {
	case token.PUBLIC, token.PRIVATE, token.PROTECTED, token.STATIC,
		token.ABSTRACT, token.OVERRIDE, token.READONLY, token.ASYNC,
		token.EXPORT, token.DEFAULT, token.DECLARE, token.CONST,
		token.IN, token.OUT:
		return true
	}
	return false
}

// parseModifiers consumes a run of leading modifier keywords, stopping
// at the first token that isn't one and that isn't itself the start of
// the next modifier (member declarations are the one place a modifier
// list has no fixed end token, so the loop's only bound is "does the
// next token still look like a modifier").
func (p *parser) parseModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for isModifierToken(p.tok) {
		m := ast.Modifier{Pos: p.pos, Kind: p.tok}
		p.next()
		mods = append(mods, m)
	}
	return mods
}

// parseIdentName accepts an IDENT or any contextual keyword spelling
// (token.Lookup never folds those into anything but IDENT-shaped
// tokens whose text the grammar still allows as a name) as a plain
// name. Reserved words reach here only through caller error, in which
// case the position is still recorded so the surrounding node's span
// stays sane.
func (p *parser) parseIdentName() *ast.Ident {
	if p.tok != token.IDENT && !token.IsContextualKeyword(p.tok) {
		p.errorExpected(p.pos, "identifier")
		id := &ast.Ident{NamePos: p.pos, Name: ""}
		return id
	}
	id := &ast.Ident{NamePos: p.pos, Name: p.lit}
	p.next()
	return id
}

// parseBindingIdent is parseIdentName restricted to the binding
// position: it additionally rejects yield/await when the ambient
// [Yield]/[Await] parameters are in force, per the object/array
// destructuring and simple-name binding grammar.
func (p *parser) parseBindingIdent(flags ContextFlags) *ast.Ident {
	if p.tok == token.YIELD && flags.has(FYield) {
		p.errorExpected(p.pos, "identifier")
	}
	if p.tok == token.AWAIT && flags.has(FAwait) {
		p.errorExpected(p.pos, "identifier")
	}
	return p.parseIdentName()
}

// parseBindingName parses the destination of a declaration: a plain
// identifier or an object/array destructuring pattern.
func (p *parser) parseBindingName(flags ContextFlags) ast.BindingName {
	switch p.tok {
	case token.LBRACE:
		return p.parseObjectBindingPattern(flags)
	case token.LBRACKET:
		return p.parseArrayBindingPattern(flags)
	default:
		return p.parseBindingIdent(flags)
	}
}

func (p *parser) parseObjectBindingPattern(flags ContextFlags) *ast.ObjectBindingPattern {
	lbrace := p.expect(token.LBRACE)
	elems := parseCommaList(p, ObjectBindingElements, token.RBRACE, func() *ast.BindingElement {
		return p.parseBindingElement(flags)
	})
	elems.ListPos, elems.ListEnd = lbrace, p.pos
	rbrace := p.expect(token.RBRACE)
	_ = rbrace
	return &ast.ObjectBindingPattern{LBrace: lbrace, Elements: elems, RBrace: rbrace}
}

func (p *parser) parseArrayBindingPattern(flags ContextFlags) *ast.ArrayBindingPattern {
	lbracket := p.expect(token.LBRACKET)
	elems := parseCommaList(p, ArrayBindingElements, token.RBRACKET, func() *ast.BindingElement {
		if p.at(token.COMMA) {
			return &ast.BindingElement{}
		}
		return p.parseBindingElement(flags)
	})
	elems.ListPos, elems.ListEnd = lbracket, p.pos
	rbracket := p.expect(token.RBRACKET)
	return &ast.ArrayBindingPattern{LBracket: lbracket, Elements: elems, RBracket: rbracket}
}

func (p *parser) parseBindingElement(flags ContextFlags) *ast.BindingElement {
	b := &ast.BindingElement{}
	if p.tok == token.DOTDOTDOT {
		b.Rest = true
		b.DotDotDot = p.pos
		p.next()
		b.Name = p.parseBindingName(flags)
		return b
	}

	first := p.parseBindingName(flags)
	if p.tok == token.COLON {
		if id, ok := first.(*ast.Ident); ok {
			b.PropertyName = id
		}
		p.next()
		b.Name = p.parseBindingName(flags)
	} else {
		b.Name = first
	}
	if p.tok == token.EQ {
		p.next()
		b.Initializer = p.parseAssignExpr(flags)
	}
	return b
}

// parseOptionalTypeParameters parses a "<T, U extends V = D>" clause,
// returning nil when the current token isn't "<".
func (p *parser) parseOptionalTypeParameters() *ast.NodeArray[*ast.TypeParameter] {
	if p.tok != token.LSS {
		return nil
	}
	p.next()
	list := parseCommaList(p, TypeParameters, token.GTR, p.parseTypeParameter)
	p.expectTypeArgsClose()
	return &list
}

func (p *parser) parseTypeParameter() *ast.TypeParameter {
	mods := p.parseModifiers()
	name := p.parseIdentName()
	tp := &ast.TypeParameter{Modifiers: mods, Name: name}
	if p.tok == token.EXTENDS {
		p.next()
		tp.Constraint = p.parseType(FDisallowConditionalTypes)
	}
	if p.tok == token.EQ {
		p.next()
		tp.Default = p.parseType(0)
	}
	return tp
}

// parseParameters parses a "(params)" list shared by every
// function-shaped production.
func (p *parser) parseParameters(flags ContextFlags) (lparen token.Pos, params ast.NodeArray[*ast.Parameter], rparen token.Pos) {
	lparen = p.expect(token.LPAREN)
	params = parseCommaList(p, Parameters, token.RPAREN, func() *ast.Parameter {
		return p.parseParameter(flags)
	})
	rparen = p.expect(token.RPAREN)
	return lparen, params, rparen
}

func (p *parser) parseParameter(flags ContextFlags) *ast.Parameter {
	param := &ast.Parameter{}
	param.Modifiers = p.parseModifiers()
	if p.tok == token.DOTDOTDOT {
		param.Rest = true
		param.DotDotDot = p.pos
		p.next()
	}
	param.Name = p.parseBindingName(flags)
	if p.tok == token.QUESTION {
		param.Optional = true
		param.Question = p.pos
		p.next()
	}
	if p.tok == token.COLON {
		p.next()
		param.Type = p.parseType(flags)
	}
	if p.tok == token.EQ {
		param.EqualsToken = p.pos
		p.next()
		param.Initializer = p.parseAssignExpr(flags)
	}
	return param
}

// parseFunctionLikeHeader parses the "<T>(params): Ret" shared by
// every function-shaped node, given that the caller has already
// consumed whatever precedes it (the "function" keyword, a method
// name, and so on).
func (p *parser) parseFunctionLikeHeader(flags ContextFlags) ast.FunctionLikeHeader {
	var h ast.FunctionLikeHeader
	h.TypeParams = p.parseOptionalTypeParameters()
	h.LParen, h.Params, h.RParen = p.parseParameters(flags)
	if p.tok == token.COLON {
		p.next()
		h.ReturnType = p.parseReturnType(flags)
	}
	return h
}

// parseReturnType parses the type after a function signature's ":",
// which may be an ordinary type or a type predicate ("x is T" /
// "asserts x [is T]").
func (p *parser) parseReturnType(flags ContextFlags) ast.Type {
	if p.tok == token.ASSERTS {
		return p.parseAssertsTypePredicate(flags)
	}
	if (p.tok == token.IDENT || p.tok == token.THIS) {
		if pred, ok := tryParse(p, func() (*ast.TypePredicate, bool) {
			return p.tryParseIsTypePredicate()
		}); ok {
			return pred
		}
	}
	return p.parseType(flags)
}

func (p *parser) tryParseIsTypePredicate() (*ast.TypePredicate, bool) {
	var param ast.Node
	if p.tok == token.THIS {
		param = &ast.ThisExpr{ThisPos: p.pos}
		p.next()
	} else {
		param = p.parseIdentName()
	}
	if p.tok != token.IS {
		return nil, false
	}
	isPos := p.pos
	p.next()
	typ := p.parseType(0)
	return &ast.TypePredicate{ParamName: param, IsPos: isPos, Type: typ}, true
}

func (p *parser) parseAssertsTypePredicate(flags ContextFlags) ast.Type {
	assertsPos := p.pos
	p.next()
	var param ast.Node
	if p.tok == token.THIS {
		param = &ast.ThisExpr{ThisPos: p.pos}
		p.next()
	} else {
		param = p.parseIdentName()
	}
	pred := &ast.TypePredicate{AssertsPos: assertsPos, Asserts: true, ParamName: param}
	if p.tok == token.IS {
		pred.IsPos = p.pos
		p.next()
		pred.Type = p.parseType(flags)
	}
	return pred
}
