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

// expectTypeArgsClose consumes the ">" that closes a type-argument or
// type-parameter list, peeling one character off a compound operator
// the scanner may have already folded (">>", ">=", ">>=", ">>>",
// ">>>=") when it had no grammar context to know better (the scanner's
// re-scan contract). Each nested closing angle bracket consumes
// exactly one character; the remainder, if any, is left as the current
// token for whatever comes next (an enclosing list's own close, or an
// ordinary operator).
func (p *parser) expectTypeArgsClose() token.Pos {
	pos := p.pos
	switch p.tok {
	case token.GTR:
		p.next()
		return pos
	case token.GEQ, token.SHR, token.SHREQ, token.USHR, token.USHREQ:
		// ReScanGreaterToken leaves the scanner resting on the
		// remainder; scanning it makes the remainder the current token.
		p.scanner.ReScanGreaterToken(p.tok)
		p.next()
		return pos
	default:
		p.errorExpected(pos, "'>'")
		return pos
	}
}

// isKeywordType reports whether tok is one of the built-in type
// keywords that stand for themselves rather than naming a reference.
func isKeywordType(tok token.Token) bool {
	switch tok {
	case token.ANY, token.UNKNOWN, token.NUMBER_KW, token.OBJECT_KW,
		token.BOOLEAN, token.STRING_KW, token.SYMBOL_KW, token.VOID,
		token.NEVER, token.UNDEFINED, token.BIGINT:
		return true
	}
	return false
}

// parseType is the Type production's entry point: a conditional type,
// falling through to a function or constructor type when the token
// sequence can only start one of those (the type grammar).
func (p *parser) parseType(flags ContextFlags) ast.Type {
	if p.isStartOfFunctionOrConstructorType() {
		return p.parseFunctionOrConstructorType(flags)
	}

	checkType := p.parseUnionTypeOrHigher(flags)
	if flags.has(FDisallowConditionalTypes) || p.tok != token.EXTENDS {
		return checkType
	}
	if p.scanner.HasPrecedingLineBreak() {
		return checkType
	}
	p.next() // extends
	extendsType := p.parseType(flags.with(FDisallowConditionalTypes, true))
	p.expect(token.QUESTION)
	trueType := p.parseType(flags.with(FDisallowConditionalTypes, false))
	p.expect(token.COLON)
	falseType := p.parseType(flags)
	return &ast.ConditionalType{Check: checkType, Extends: extendsType, True: trueType, False: falseType}
}

// isStartOfFunctionOrConstructorType decides, via lookahead, whether
// the tokens starting here can only be read as "(params) => Ret" or
// "new (params) => Ret" and not as a parenthesized type, since both
// begin with the same "(" or "<".
func (p *parser) isStartOfFunctionOrConstructorType() bool {
	if p.tok == token.NEW {
		return true
	}
	if p.tok != token.LPAREN && p.tok != token.LSS {
		return false
	}
	return lookAheadBool(p, func() bool {
		if p.tok == token.LSS {
			p.parseOptionalTypeParameters()
		}
		if p.tok != token.LPAREN {
			return false
		}
		p.next()
		depth := 1
		for depth > 0 {
			switch p.tok {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
			case token.EOF:
				return false
			}
			p.next()
		}
		return p.tok == token.ARROW
	})
}

func (p *parser) parseFunctionOrConstructorType(flags ContextFlags) ast.Type {
	isCtor := p.tok == token.NEW
	newPos := p.pos
	if isCtor {
		p.next()
	}
	typeParams := p.parseOptionalTypeParameters()
	lparen, params, rparen := p.parseParameters(flags)
	arrow := p.expect(token.ARROW)
	ret := p.parseType(flags)
	if isCtor {
		return &ast.ConstructorType{
			NewPos: newPos, TypeParams: typeParams,
			LParen: lparen, Params: params, RParen: rparen,
			Arrow: arrow, ReturnType: ret,
		}
	}
	return &ast.FunctionType{
		TypeParams: typeParams,
		LParen:     lparen, Params: params, RParen: rparen,
		Arrow: arrow, ReturnType: ret,
	}
}

func (p *parser) parseUnionTypeOrHigher(flags ContextFlags) ast.Type {
	leading := false
	if p.tok == token.PIPE {
		leading = true
		p.next()
	}
	first := p.parseIntersectionTypeOrHigher(flags)
	if p.tok != token.PIPE {
		return first
	}
	types := []ast.Type{first}
	for p.tok == token.PIPE {
		p.next()
		types = append(types, p.parseIntersectionTypeOrHigher(flags))
	}
	_ = leading
	return &ast.UnionType{Types: ast.NodeArray[ast.Type]{Elements: types}}
}

func (p *parser) parseIntersectionTypeOrHigher(flags ContextFlags) ast.Type {
	if p.tok == token.AMP {
		p.next()
	}
	first := p.parseTypeOperatorOrHigher(flags)
	if p.tok != token.AMP {
		return first
	}
	types := []ast.Type{first}
	for p.tok == token.AMP {
		p.next()
		types = append(types, p.parseTypeOperatorOrHigher(flags))
	}
	return &ast.IntersectionType{Types: ast.NodeArray[ast.Type]{Elements: types}}
}

func (p *parser) parseTypeOperatorOrHigher(flags ContextFlags) ast.Type {
	switch p.tok {
	case token.KEYOF, token.UNIQUE, token.READONLY, token.TYPEOF:
		op := p.tok
		pos := p.pos
		p.next()
		return &ast.TypeOperatorType{OpPos: pos, Op: op, Type: p.parseTypeOperatorOrHigher(flags)}
	case token.INFER:
		return p.parseInferType()
	}
	return p.parsePostfixTypeOrHigher(flags)
}

func (p *parser) parseInferType() ast.Type {
	pos := p.pos
	p.next()
	name := p.parseIdentName()
	infer := &ast.InferType{InferPos: pos, Name: name}
	if p.tok == token.EXTENDS && !p.scanner.HasPrecedingLineBreak() {
		if _, ok := lookAhead(p, func() (ast.Type, bool) {
			p.next()
			t := p.parseType(FDisallowConditionalTypes)
			return t, true
		}); ok {
			p.next()
			infer.Constraint = p.parseType(FDisallowConditionalTypes)
		}
	}
	return infer
}

func (p *parser) parsePostfixTypeOrHigher(flags ContextFlags) ast.Type {
	typ := p.parseTypeAtom(flags)
	for !p.scanner.HasPrecedingLineBreak() && p.tok == token.LBRACKET {
		lbracket := p.pos
		p.next()
		if p.tok == token.RBRACKET {
			rbracket := p.pos
			p.next()
			typ = &ast.ArrayType{Element: typ, LBracket: lbracket, RBracket: rbracket}
			continue
		}
		index := p.parseType(0)
		rbracket := p.expect(token.RBRACKET)
		typ = &ast.IndexedAccessType{Object: typ, LBracket: lbracket, Index: index, RBracket: rbracket}
	}
	return typ
}

func (p *parser) parseTypeAtom(flags ContextFlags) ast.Type {
	from := p.pos
	switch {
	case isKeywordType(p.tok):
		tok := p.tok
		pos := p.pos
		p.next()
		return &ast.KeywordType{KeywordPos: pos, Keyword: tok}
	case p.tok == token.NULL || p.tok == token.TRUE || p.tok == token.FALSE:
		name := p.lit
		pos := p.pos
		p.next()
		return &ast.LiteralType{Literal: &ast.Ident{NamePos: pos, Name: name}}
	case p.tok == token.MINUS:
		neg := p.pos
		p.next()
		lit := p.parseNumericLit()
		return &ast.LiteralType{Negative: neg, IsNeg: true, Literal: lit}
	case p.tok == token.NUMBER, p.tok == token.BIGINT:
		return &ast.LiteralType{Literal: p.parseNumericLit()}
	case p.tok == token.STRING:
		return &ast.LiteralType{Literal: p.parseStringLit()}
	case p.tok == token.NO_SUBSTITUTION_TEMPLATE:
		return &ast.LiteralType{Literal: p.parseNoSubstitutionTemplate()}
	case p.tok == token.TEMPLATE_HEAD:
		return p.parseTemplateLiteralType()
	case p.tok == token.IMPORT:
		return p.parseImportType()
	case p.tok == token.LBRACKET:
		return p.parseTupleType(flags)
	case p.tok == token.LBRACE:
		return p.parseMappedOrTypeLiteral(flags)
	case p.tok == token.LPAREN:
		lparen := p.pos
		p.next()
		inner := p.parseType(0)
		rparen := p.expect(token.RPAREN)
		return &ast.ParenthesizedType{LParen: lparen, Type: inner, RParen: rparen}
	case p.tok == token.IDENT || token.IsContextualKeyword(p.tok):
		return p.parseTypeReference()
	default:
		p.errorExpected(p.pos, "type")
		p.next()
		return p.badTypeFrom(from)
	}
}

func (p *parser) parseNumericLit() *ast.BasicLit {
	pos, raw, kind := p.pos, p.raw, p.tok
	lit := &ast.BasicLit{ValuePos: pos, Kind: kind, Value: raw, Raw: raw}
	p.next()
	return lit
}

func (p *parser) parseStringLit() *ast.BasicLit {
	lit := &ast.BasicLit{ValuePos: p.pos, Kind: token.STRING, Value: p.lit, Raw: p.raw}
	p.next()
	return lit
}

func (p *parser) parseNoSubstitutionTemplate() *ast.NoSubstitutionTemplate {
	lit := &ast.NoSubstitutionTemplate{ValuePos: p.pos, Raw: p.raw, Cooked: p.lit}
	p.next()
	return lit
}

func (p *parser) parseTemplateLiteralType() ast.Type {
	head := &ast.TemplateLiteralType{HeadPos: p.pos, Head: p.lit}
	p.next()
	for {
		typ := p.parseType(0)
		tok, raw := p.scanner.ReScanTemplateToken()
		pos := p.pos
		p.tok, p.lit, p.raw = tok, raw, raw
		span := &ast.TemplateLiteralTypeSpan{Type: typ, Literal: raw, LitEnd: pos.Add(len(raw))}
		head.Spans = append(head.Spans, span)
		p.next()
		if tok == token.TEMPLATE_TAIL {
			break
		}
	}
	return head
}

func (p *parser) parseImportType() ast.Type {
	pos := p.pos
	p.next()
	p.expect(token.LPAREN)
	arg := &ast.LiteralType{Literal: p.parseStringLit()}
	p.expect(token.RPAREN)
	it := &ast.ImportType{ImportPos: pos, Argument: arg}
	if p.tok == token.DOT {
		p.next()
		it.Qualifier = p.parseEntityNameRest(&ast.EntityName{Name: p.parseIdentName()})
	}
	if p.tok == token.LSS {
		p.next()
		list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
		p.expectTypeArgsClose()
		it.TypeArgs = &list
	}
	return it
}

func (p *parser) parseTupleType(flags ContextFlags) ast.Type {
	lbracket := p.pos
	p.next()
	elems := parseCommaList(p, TupleElementTypes, token.RBRACKET, func() ast.Type {
		return p.parseTupleElement(flags)
	})
	elems.ListPos, elems.ListEnd = lbracket, p.pos
	rbracket := p.expect(token.RBRACKET)
	return &ast.TupleType{LBracket: lbracket, Elements: elems, RBracket: rbracket}
}

// parseTupleElement disambiguates a named tuple member ("label:
// Type") from a plain type by a bounded lookahead, since both start
// with an identifier.
func (p *parser) parseTupleElement(flags ContextFlags) ast.Type {
	if p.tok == token.DOTDOTDOT {
		dots := p.pos
		p.next()
		if named, ok := p.tryParseNamedTupleMember(flags, dots, true); ok {
			return named
		}
		return &ast.RestType{DotDotDot: dots, Type: p.parseType(flags)}
	}
	if p.tok == token.IDENT || token.IsContextualKeyword(p.tok) {
		if named, ok := p.tryParseNamedTupleMember(flags, token.NoPos, false); ok {
			return named
		}
	}
	typ := p.parseType(flags)
	if p.tok == token.QUESTION {
		q := p.pos
		p.next()
		return &ast.OptionalType{Type: typ, Question: q}
	}
	return typ
}

func (p *parser) tryParseNamedTupleMember(flags ContextFlags, dots token.Pos, rest bool) (*ast.NamedTupleMember, bool) {
	return tryParse(p, func() (*ast.NamedTupleMember, bool) {
		label := p.parseIdentName()
		m := &ast.NamedTupleMember{DotDotDot: dots, Rest: rest, Label: label}
		if p.tok == token.QUESTION {
			m.Optional = true
			m.Question = p.pos
			p.next()
		}
		if p.tok != token.COLON {
			return nil, false
		}
		p.next()
		m.Type = p.parseType(flags)
		return m, true
	})
}

// parseMappedOrTypeLiteral disambiguates "{ [K in Keys]: V }" from an
// ordinary "{ members }" type literal by a bounded lookahead over the
// optional readonly/+/- prefix and the "[ident in" shape.
func (p *parser) parseMappedOrTypeLiteral(flags ContextFlags) ast.Type {
	if lookAheadBool(p, func() bool { return p.looksLikeMappedType() }) {
		return p.parseMappedType(flags)
	}
	return p.parseTypeLiteral(flags)
}

func (p *parser) looksLikeMappedType() bool {
	p.next() // {
	switch p.tok {
	case token.PLUS, token.MINUS:
		p.next()
	}
	if p.tok == token.READONLY {
		p.next()
	}
	if p.tok != token.LBRACKET {
		return false
	}
	p.next()
	if p.tok != token.IDENT && !token.IsContextualKeyword(p.tok) {
		return false
	}
	p.next()
	return p.tok == token.IN
}

func (p *parser) parseMappedType(flags ContextFlags) *ast.MappedType {
	m := &ast.MappedType{LBrace: p.pos}
	p.next()
	switch p.tok {
	case token.PLUS:
		m.ReadonlyMod = ast.ModifierPlus
		p.next()
		m.Readonly = true
		p.expect(token.READONLY)
	case token.MINUS:
		m.ReadonlyMod = ast.ModifierMinus
		p.next()
		p.expect(token.READONLY)
	case token.READONLY:
		m.Readonly = true
		p.next()
	}
	p.expect(token.LBRACKET)
	name := p.parseIdentName()
	tp := &ast.TypeParameter{Name: name}
	p.expect(token.IN)
	tp.Constraint = p.parseType(flags)
	m.TypeParam = tp
	if p.tok == token.AS {
		p.next()
		m.NameType = p.parseType(flags)
	}
	p.expect(token.RBRACKET)
	switch p.tok {
	case token.PLUS:
		m.QuestionMod = ast.ModifierPlus
		p.next()
		m.Optional = true
		p.expect(token.QUESTION)
	case token.MINUS:
		m.QuestionMod = ast.ModifierMinus
		p.next()
		p.expect(token.QUESTION)
	case token.QUESTION:
		m.Optional = true
		p.next()
	}
	if p.tok == token.COLON {
		p.next()
		m.Type = p.parseType(flags)
	}
	parseTypeMemberSeparator(p)
	m.RBrace = p.expect(token.RBRACE)
	return m
}

func (p *parser) parseTypeLiteral(flags ContextFlags) *ast.TypeLiteral {
	lbrace := p.pos
	p.next()
	var members []ast.TypeMember
	for !p.isAtListTerminator(TypeMembers) {
		members = append(members, p.parseTypeMember(flags))
		parseTypeMemberSeparator(p)
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.TypeLiteral{
		LBrace:  lbrace,
		Members: ast.NodeArray[ast.TypeMember]{Elements: members, ListPos: lbrace, ListEnd: rbrace},
		RBrace:  rbrace,
	}
}

// parseTypeMemberSeparator consumes the ";" or "," that may separate
// members of an interface body, type literal, or mapped type; both are
// optional before a closing "}".
func parseTypeMemberSeparator(p *parser) {
	if p.tok == token.SEMICOLON || p.tok == token.COMMA {
		p.next()
	}
}

// parseTypeMember parses one member of an interface body or type
// literal: a property, method, call/construct signature, or index
// signature, disambiguated by the shape of what follows the name.
func (p *parser) parseTypeMember(flags ContextFlags) ast.TypeMember {
	if p.tok == token.LPAREN || p.tok == token.LSS {
		h := p.parseFunctionLikeHeader(flags)
		return &ast.CallSignature{FunctionLikeHeader: h}
	}
	if p.tok == token.NEW {
		pos := p.pos
		p.next()
		h := p.parseFunctionLikeHeader(flags)
		return &ast.ConstructSignature{NewPos: pos, FunctionLikeHeader: h}
	}
	if p.tok == token.LBRACKET {
		return p.parseIndexSignature(nil)
	}
	name := p.parsePropertyName()
	if p.tok == token.QUESTION {
		qpos := p.pos
		p.next()
		if p.tok == token.LPAREN || p.tok == token.LSS {
			h := p.parseFunctionLikeHeader(flags)
			return &ast.MethodSignature{Name: name, Question: qpos, Optional: true, FunctionLikeHeader: h}
		}
		p.expect(token.COLON)
		return &ast.PropertySignature{Name: name, Question: qpos, Optional: true, Type: p.parseType(flags)}
	}
	if p.tok == token.LPAREN || p.tok == token.LSS {
		h := p.parseFunctionLikeHeader(flags)
		return &ast.MethodSignature{Name: name, FunctionLikeHeader: h}
	}
	ps := &ast.PropertySignature{Name: name}
	if p.tok == token.COLON {
		p.next()
		ps.Type = p.parseType(flags)
	}
	return ps
}

func (p *parser) parseIndexSignature(mods []ast.Modifier) *ast.IndexSignature {
	lbracket := p.pos
	p.next()
	param := p.parseParameter(0)
	rbracket := p.expect(token.RBRACKET)
	p.expect(token.COLON)
	typ := p.parseType(0)
	return &ast.IndexSignature{Modifiers: mods, LBracket: lbracket, Param: param, RBracket: rbracket, Type: typ}
}

// parsePropertyName parses the key of a property, method, or index
// member: an identifier, string or numeric literal, or a "[expr]"
// computed name.
func (p *parser) parsePropertyName() ast.PropertyName {
	switch p.tok {
	case token.STRING:
		return p.parseStringLit()
	case token.NUMBER, token.BIGINT:
		return p.parseNumericLit()
	case token.PRIVATE_IDENT:
		id := &ast.PrivateIdent{NamePos: p.pos, Name: p.lit}
		p.next()
		return id
	case token.LBRACKET:
		lbracket := p.pos
		p.next()
		expr := p.parseAssignExpr(0)
		rbracket := p.expect(token.RBRACKET)
		return &ast.ComputedPropertyName{LBracket: lbracket, Expr: expr, RBracket: rbracket}
	default:
		return p.parseIdentName()
	}
}

// parseEntityNameRest extends an already-parsed leading EntityName
// segment with any further ".Name" qualifiers.
func (p *parser) parseEntityNameRest(name *ast.EntityName) *ast.EntityName {
	for p.tok == token.DOT {
		dot := p.pos
		p.next()
		name = &ast.EntityName{Qualifier: name, Dot: dot, Name: p.parseIdentName()}
	}
	return name
}

func (p *parser) parseEntityName() *ast.EntityName {
	return p.parseEntityNameRest(&ast.EntityName{Name: p.parseIdentName()})
}

func (p *parser) parseTypeReference() ast.Type {
	name := p.parseEntityName()
	ref := &ast.TypeReference{Name: name}
	if p.tok == token.LSS && !p.scanner.HasPrecedingLineBreak() {
		p.next()
		list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
		p.expectTypeArgsClose()
		ref.TypeArgs = &list
	}
	return ref
}
