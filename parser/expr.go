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

// parseExpr parses a full Expression production, including the comma
// operator: "a, b, c" parses as nested left-associative BinaryExprs
// with Op == token.COMMA (the lowest-precedence entry point).
func (p *parser) parseExpr(flags ContextFlags) ast.Expr {
	first := p.parseAssignExpr(flags)
	if p.tok != token.COMMA {
		return first
	}
	x := first
	for p.tok == token.COMMA {
		opPos := p.pos
		p.next()
		y := p.parseAssignExpr(flags)
		x = &ast.BinaryExpr{X: x, OpPos: opPos, Op: token.COMMA, Y: y}
	}
	return x
}

// parseAssignExpr parses an AssignmentExpression: a yield expression,
// an arrow function, or a ConditionalExpression optionally followed by
// an assignment operator and a right-hand side. Arrow
// functions are the one place the grammar needs unbounded lookahead to
// disambiguate from a parenthesized expression, so this is where the
// shared speculation primitive (lookAhead/tryParse) earns its keep.
func (p *parser) parseAssignExpr(flags ContextFlags) ast.Expr {
	if p.tok == token.YIELD && flags.has(FYield) {
		return p.parseYieldExpr(flags)
	}

	if arrow, ok := p.tryParseArrowFunction(flags); ok {
		return arrow
	}

	left := p.parseConditionalExpr(flags)
	if !token.IsAssignment(p.tok) {
		return left
	}
	op := p.tok
	opPos := p.pos
	p.next()
	right := p.parseAssignExpr(flags)
	return &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
}

func (p *parser) parseYieldExpr(flags ContextFlags) ast.Expr {
	yieldPos := p.pos
	p.next()
	y := &ast.YieldExpr{YieldPos: yieldPos}
	if p.tok == token.STAR {
		y.HasStar = true
		y.Star = p.pos
		p.next()
	}
	if p.canStartExprAfterYield() {
		y.Expr = p.parseAssignExpr(flags)
	}
	return y
}

// canStartExprAfterYield reports whether the current token can begin
// the operand of a "yield"/"yield*": a bare "yield;" or "yield)" has
// no operand, per ASI-adjacent rules (no line break, and not a token
// that can only end an expression).
func (p *parser) canStartExprAfterYield() bool {
	if p.scanner.HasPrecedingLineBreak() {
		return false
	}
	switch p.tok {
	case token.SEMICOLON, token.RPAREN, token.RBRACKET, token.RBRACE, token.COLON, token.COMMA, token.EOF:
		return false
	}
	return true
}

// tryParseArrowFunction attempts, via lookAhead, to read the current
// position as an arrow function head; on success it commits to the
// parse with tryParse. A single bare identifier followed immediately
// by "=>" is the common case and is handled without backtracking.
func (p *parser) tryParseArrowFunction(flags ContextFlags) (*ast.ArrowFunction, bool) {
	isAsync := false
	if p.tok == token.ASYNC {
		if ok := lookAheadBool(p, func() bool {
			if p.scanner.HasPrecedingLineBreak() {
				return false
			}
			p.next()
			return !p.scanner.HasPrecedingLineBreak() &&
				(p.tok == token.IDENT || p.tok == token.LPAREN || p.tok == token.LSS)
		}); ok {
			isAsync = true
		}
	}

	if (p.tok == token.IDENT || token.IsContextualKeyword(p.tok)) && !isAsync {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok == token.ARROW && !p.scanner.HasPrecedingLineBreak()
		}); ok {
			return p.parseArrowFunction(flags, false), true
		}
		return nil, false
	}

	if p.tok != token.LPAREN && p.tok != token.LSS && !isAsync {
		return nil, false
	}

	return tryParse(p, func() (*ast.ArrowFunction, bool) {
		async := false
		if p.tok == token.ASYNC {
			async = true
			p.next()
		}
		if p.tok != token.LPAREN && p.tok != token.LSS {
			return nil, false
		}
		af := p.parseArrowFunction(flags, async)
		if af == nil {
			return nil, false
		}
		return af, true
	})
}

// parseArrowFunction parses the header and body once the caller has
// committed to an arrow function; header parsing itself still fails
// gracefully (returns nil) so a speculative caller can back out.
func (p *parser) parseArrowFunction(flags ContextFlags, async bool) *ast.ArrowFunction {
	af := &ast.ArrowFunction{}
	if async {
		af.Modifiers = []ast.Modifier{{Pos: p.pos, Kind: token.ASYNC}}
	}
	bodyFlags := flags.with(FAwait, async)

	if p.tok == token.IDENT || token.IsContextualKeyword(p.tok) {
		name := p.parseIdentName()
		af.LParen = name.Pos()
		af.RParen = name.End()
		af.Params = ast.NodeArray[*ast.Parameter]{Elements: []*ast.Parameter{{Name: name}}}
	} else {
		af.TypeParams = p.parseOptionalTypeParameters()
		af.LParen, af.Params, af.RParen = p.parseParameters(bodyFlags)
		if p.tok == token.COLON {
			p.next()
			af.ReturnType = p.parseReturnType(bodyFlags)
		}
	}

	if p.tok != token.ARROW {
		return nil
	}
	af.Arrow = p.pos
	p.next()

	if p.tok == token.LBRACE {
		af.Body = p.parseBlock(bodyFlags)
	} else {
		af.Body = p.parseAssignExpr(bodyFlags.with(FIn, true))
	}
	return af
}

func (p *parser) parseConditionalExpr(flags ContextFlags) ast.Expr {
	cond := p.parseBinaryExpr(flags, token.LowestPrec+1)
	if p.tok != token.QUESTION {
		return cond
	}
	question := p.pos
	p.next()
	then := p.parseAssignExpr(flags.with(FIn, true))
	colon := p.expect(token.COLON)
	elseExpr := p.parseAssignExpr(flags)
	return &ast.ConditionalExpr{Cond: cond, Question: question, Then: then, Colon: colon, Else: elseExpr}
}

// parseBinaryExpr implements precedence-climbing parsing of binary
// operators, including the TypeScript additions "as"/"satisfies" at
// the relational precedence level, whose right operand is a Type
// rather than an Expr.
func (p *parser) parseBinaryExpr(flags ContextFlags, prec1 int) ast.Expr {
	x := p.parseUnaryExpr(flags)
	for {
		if p.tok == token.IN && !flags.has(FIn) {
			return x
		}
		prec := p.tok.Precedence()
		if prec < prec1 {
			return x
		}
		if p.tok == token.AS || p.tok == token.SATISFIES {
			x = p.parseAsOrSatisfies(x)
			continue
		}
		op := p.tok
		opPos := p.pos
		p.next()
		nextMin := prec + 1
		if token.IsRightAssociative(op) {
			nextMin = prec
		}
		y := p.parseBinaryExpr(flags, nextMin)
		x = &ast.BinaryExpr{X: x, OpPos: opPos, Op: op, Y: y}
	}
}

func (p *parser) parseAsOrSatisfies(x ast.Expr) ast.Expr {
	if p.tok == token.AS {
		asPos := p.pos
		p.next()
		if p.tok == token.CONST {
			t := &ast.TypeReference{Name: &ast.EntityName{Name: &ast.Ident{NamePos: p.pos, Name: "const"}}}
			p.next()
			return &ast.AsExpr{Expr: x, As: asPos, Type: t}
		}
		return &ast.AsExpr{Expr: x, As: asPos, Type: p.parseType(0)}
	}
	satisfiesPos := p.pos
	p.next()
	return &ast.SatisfiesExpr{Expr: x, Satisfies: satisfiesPos, Type: p.parseType(0)}
}

// parseUnaryExpr handles every prefix operator, including the legacy
// "<Type>expr" assertion (which must not be attempted in JSX mode,
// where "<" can only start a JSX element).
func (p *parser) parseUnaryExpr(flags ContextFlags) ast.Expr {
	switch p.tok {
	case token.PLUSPLUS, token.MINUSMINUS, token.PLUS, token.MINUS, token.TILDE, token.BANG,
		token.TYPEOF, token.VOID, token.DELETE:
		op := p.tok
		pos := p.pos
		p.next()
		return &ast.PrefixUnaryExpr{OpPos: pos, Op: op, Operand: p.parseUnaryExpr(flags)}
	case token.AWAIT:
		if flags.has(FAwait) {
			pos := p.pos
			p.next()
			return &ast.AwaitExpr{AwaitPos: pos, Expr: p.parseUnaryExpr(flags)}
		}
		if p.atFileTopLevel {
			p.containsPossibleTopLevelAwait = true
		}
	case token.LSS:
		if p.mode&jsxMode == 0 {
			return p.parseTypeAssertion(flags)
		}
	}
	return p.parsePostfixExpr(flags)
}

func (p *parser) parseTypeAssertion(flags ContextFlags) ast.Expr {
	lAngle := p.pos
	p.next()
	typ := p.parseType(0)
	rAngle := p.expectTypeArgsClose()
	expr := p.parseUnaryExpr(flags)
	return &ast.TypeAssertionExpr{LAngle: lAngle, Type: typ, RAngle: rAngle, Expr: expr}
}

func (p *parser) parsePostfixExpr(flags ContextFlags) ast.Expr {
	x := p.parseLeftHandSideExpr(flags)
	if (p.tok == token.PLUSPLUS || p.tok == token.MINUSMINUS) && !p.scanner.HasPrecedingLineBreak() {
		op := p.tok
		p.next()
		return &ast.PostfixUnaryExpr{Operand: x, Op: op, OpEnd: p.pos}
	}
	return x
}

func (p *parser) parseLeftHandSideExpr(flags ContextFlags) ast.Expr {
	var expr ast.Expr
	if p.tok == token.NEW {
		expr = p.parseNewExpr(flags)
	} else {
		expr = p.parsePrimaryExpr(flags)
	}
	return p.parseCallAndMemberRest(expr, flags)
}

func (p *parser) parseNewExpr(flags ContextFlags) ast.Expr {
	newPos := p.pos
	p.next()
	if p.tok == token.NEW {
		return &ast.NewExpr{NewPos: newPos, Callee: p.parseNewExpr(flags)}
	}
	callee := p.parseMemberExprNoCall(p.parsePrimaryExpr(flags), flags)
	n := &ast.NewExpr{NewPos: newPos, Callee: callee}
	if p.tok == token.LSS {
		if args, ok := tryParse(p, func() (*ast.NodeArray[ast.Type], bool) {
			p.next()
			list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
			p.expectTypeArgsClose()
			if p.tok != token.LPAREN {
				return nil, false
			}
			return &list, true
		}); ok {
			n.TypeArgs = args
		}
	}
	if p.tok == token.LPAREN {
		lparen, args, rparen := p.parseArguments(flags)
		n.LParen, n.Args, n.RParen = lparen, &args, rparen
	}
	return n
}

// parseMemberExprNoCall parses the "expr.x[y]" chain after a "new"
// keyword's callee, stopping short of "(" so the call parens are
// attributed to the NewExpr itself rather than consumed here.
func (p *parser) parseMemberExprNoCall(expr ast.Expr, flags ContextFlags) ast.Expr {
	for {
		switch p.tok {
		case token.DOT:
			dot := p.pos
			p.next()
			name := p.parseIdentName()
			expr = &ast.PropertyAccessExpr{Expr: expr, DotPos: dot, Name: name}
		case token.LBRACKET:
			lbracket := p.pos
			p.next()
			index := p.parseExpr(flags.with(FIn, true))
			rbracket := p.expect(token.RBRACKET)
			expr = &ast.ElementAccessExpr{Expr: expr, LBracket: lbracket, Index: index, RBracket: rbracket}
		default:
			return expr
		}
	}
}

// parseCallAndMemberRest parses every postfix member/call/optional
// chain link following a primary expression: property and element
// access, optional chaining, calls, non-null assertions, and tagged
// templates.
func (p *parser) parseCallAndMemberRest(expr ast.Expr, flags ContextFlags) ast.Expr {
	for {
		switch p.tok {
		case token.DOT:
			dot := p.pos
			p.next()
			name := p.parseIdentName()
			expr = &ast.PropertyAccessExpr{Expr: expr, DotPos: dot, Name: name}
		case token.QUESTIONDOT:
			qdot := p.pos
			p.next()
			switch p.tok {
			case token.LPAREN:
				lparen, args, rparen := p.parseArguments(flags)
				expr = &ast.CallExpr{Callee: expr, QuestionDot: qdot, Optional: true, LParen: lparen, Args: args, RParen: rparen}
			case token.LBRACKET:
				p.next()
				index := p.parseExpr(flags.with(FIn, true))
				rbracket := p.expect(token.RBRACKET)
				expr = &ast.ElementAccessExpr{Expr: expr, QuestionDot: qdot, Optional: true, Index: index, RBracket: rbracket}
			default:
				name := p.parseIdentName()
				expr = &ast.PropertyAccessExpr{Expr: expr, QuestionDot: qdot, Optional: true, Name: name}
			}
		case token.LBRACKET:
			lbracket := p.pos
			p.next()
			index := p.parseExpr(flags.with(FIn, true))
			rbracket := p.expect(token.RBRACKET)
			expr = &ast.ElementAccessExpr{Expr: expr, LBracket: lbracket, Index: index, RBracket: rbracket}
		case token.LPAREN:
			lparen, args, rparen := p.parseArguments(flags)
			expr = &ast.CallExpr{Callee: expr, LParen: lparen, Args: args, RParen: rparen}
		case token.BANG:
			if p.scanner.HasPrecedingLineBreak() {
				return expr
			}
			bang := p.pos
			p.next()
			expr = &ast.NonNullExpr{Expr: expr, Bang: bang}
		case token.NO_SUBSTITUTION_TEMPLATE, token.TEMPLATE_HEAD:
			expr = &ast.TaggedTemplateExpr{Tag: expr, Template: p.parseTemplateLiteralExpr()}
		case token.LSS:
			if args, ok := p.tryParseCallTypeArgs(); ok {
				if p.tok == token.LPAREN {
					lparen, callArgs, rparen := p.parseArguments(flags)
					expr = &ast.CallExpr{Callee: expr, TypeArgs: args, LParen: lparen, Args: callArgs, RParen: rparen}
					continue
				}
				if p.tok == token.NO_SUBSTITUTION_TEMPLATE || p.tok == token.TEMPLATE_HEAD {
					expr = &ast.TaggedTemplateExpr{Tag: expr, TypeArgs: args, Template: p.parseTemplateLiteralExpr()}
					continue
				}
			}
			return expr
		default:
			return expr
		}
	}
}

// tryParseCallTypeArgs speculatively parses "<T, U>" as a call's
// explicit type arguments, backing out if what follows doesn't
// continue as a call or tagged template (the same ambiguity with "<"
// as a comparison operator that motivates arrow-function lookahead).
func (p *parser) tryParseCallTypeArgs() (*ast.NodeArray[ast.Type], bool) {
	return tryParse(p, func() (*ast.NodeArray[ast.Type], bool) {
		p.next()
		list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
		p.expectTypeArgsClose()
		switch p.tok {
		case token.LPAREN, token.NO_SUBSTITUTION_TEMPLATE, token.TEMPLATE_HEAD:
			return &list, true
		}
		return nil, false
	})
}

func (p *parser) parseArguments(flags ContextFlags) (lparen token.Pos, args ast.NodeArray[ast.Expr], rparen token.Pos) {
	lparen = p.expect(token.LPAREN)
	args = parseCommaList(p, ArgumentExpressions, token.RPAREN, func() ast.Expr {
		return p.parseArgument(flags)
	})
	rparen = p.expect(token.RPAREN)
	return lparen, args, rparen
}

func (p *parser) parseArgument(flags ContextFlags) ast.Expr {
	if p.tok == token.DOTDOTDOT {
		dots := p.pos
		p.next()
		return &ast.SpreadElement{DotDotDot: dots, Expr: p.parseAssignExpr(flags)}
	}
	return p.parseAssignExpr(flags.with(FIn, true))
}

// parsePrimaryExpr parses the atoms of the expression grammar:
// identifiers, literals, `this`/`super`, parenthesized expressions,
// array/object literals, template literals, regexes, and function,
// arrow, and class expressions.
func (p *parser) parsePrimaryExpr(flags ContextFlags) ast.Expr {
	from := p.pos
	switch p.tok {
	case token.THIS:
		pos := p.pos
		p.next()
		return &ast.ThisExpr{ThisPos: pos}
	case token.SUPER:
		pos := p.pos
		p.next()
		return &ast.SuperExpr{SuperPos: pos}
	case token.NULL:
		name := p.lit
		pos := p.pos
		p.next()
		return &ast.Ident{NamePos: pos, Name: name}
	case token.TRUE, token.FALSE:
		name := p.lit
		pos := p.pos
		p.next()
		return &ast.Ident{NamePos: pos, Name: name}
	case token.NUMBER, token.BIGINT:
		return p.parseNumericLit()
	case token.STRING:
		return p.parseStringLit()
	case token.NO_SUBSTITUTION_TEMPLATE:
		return p.parseNoSubstitutionTemplate()
	case token.TEMPLATE_HEAD:
		return p.parseTemplateLiteralExpr()
	case token.SLASH, token.SLASHEQ:
		return p.parseRegexLit()
	case token.LSS:
		if p.mode&jsxMode != 0 {
			return p.parseJSXElementOrFragment(flags, false)
		}
		p.errorExpected(p.pos, "expression")
		p.next()
		return p.badExprFrom(from)
	case token.LPAREN:
		return p.parseParenExpr(flags)
	case token.LBRACKET:
		return p.parseArrayLiteral(flags)
	case token.LBRACE:
		return p.parseObjectLiteral(flags)
	case token.FUNCTION:
		return p.parseFunctionExpr(flags)
	case token.CLASS:
		return p.parseClassExpr(flags)
	case token.ASYNC:
		if async, ok := p.tryParseAsyncFunctionExpr(flags); ok {
			return async
		}
		return p.parseIdentName()
	case token.PRIVATE_IDENT:
		id := &ast.PrivateIdent{NamePos: p.pos, Name: p.lit}
		p.next()
		return id
	case token.IDENT:
		return p.parseIdentName()
	default:
		if token.IsContextualKeyword(p.tok) {
			return p.parseIdentName()
		}
		p.errorExpected(p.pos, "expression")
		p.next()
		return p.badExprFrom(from)
	}
}

func (p *parser) tryParseAsyncFunctionExpr(flags ContextFlags) (*ast.FunctionExpr, bool) {
	return tryParse(p, func() (*ast.FunctionExpr, bool) {
		asyncPos := p.pos
		p.next()
		if p.tok != token.FUNCTION {
			return nil, false
		}
		fn := p.parseFunctionExprAt(flags, asyncPos)
		return fn, true
	})
}

func (p *parser) parseRegexLit() *ast.RegexLit {
	pos := p.pos
	tok, raw := p.scanner.ReScanSlashToken()
	p.tok, p.lit, p.raw = tok, raw, raw
	pattern, flags := splitRegex(raw)
	lit := &ast.RegexLit{ValuePos: pos, Raw: raw, Pattern: pattern, Flags: flags}
	p.next()
	return lit
}

func splitRegex(raw string) (pattern, flags string) {
	if len(raw) < 2 {
		return raw, ""
	}
	end := len(raw) - 1
	for end > 0 && raw[end] != '/' {
		end--
	}
	if end == 0 {
		// Unterminated: no closing slash, so no flags either.
		return raw[1:], ""
	}
	return raw[1:end], raw[end+1:]
}

func (p *parser) parseParenExpr(flags ContextFlags) ast.Expr {
	lparen := p.pos
	p.next()
	inner := p.parseExpr(flags.with(FIn, true))
	rparen := p.expect(token.RPAREN)
	return &ast.ParenExpr{LParen: lparen, Expr: inner, RParen: rparen}
}

func (p *parser) parseArrayLiteral(flags ContextFlags) ast.Expr {
	lbracket := p.pos
	p.next()
	elems := parseCommaList(p, ArrayLiteralMembers, token.RBRACKET, func() ast.Expr {
		return p.parseArrayElement(flags)
	})
	elems.ListPos, elems.ListEnd = lbracket, p.pos
	rbracket := p.expect(token.RBRACKET)
	return &ast.ArrayLit{LBracket: lbracket, Elements: elems, RBracket: rbracket}
}

func (p *parser) parseArrayElement(flags ContextFlags) ast.Expr {
	if p.tok == token.COMMA {
		return &ast.OmittedExpr{AtPos: p.pos}
	}
	if p.tok == token.DOTDOTDOT {
		dots := p.pos
		p.next()
		return &ast.SpreadElement{DotDotDot: dots, Expr: p.parseAssignExpr(flags.with(FIn, true))}
	}
	return p.parseAssignExpr(flags.with(FIn, true))
}

func (p *parser) parseObjectLiteral(flags ContextFlags) ast.Expr {
	lbrace := p.pos
	p.next()
	props := parseCommaList(p, ObjectLiteralMembers, token.RBRACE, func() ast.ObjectLiteralElement {
		return p.parseObjectLiteralElement(flags)
	})
	props.ListPos, props.ListEnd = lbrace, p.pos
	rbrace := p.expect(token.RBRACE)
	return &ast.ObjectLit{LBrace: lbrace, Properties: props, RBrace: rbrace}
}

func (p *parser) parseObjectLiteralElement(flags ContextFlags) ast.ObjectLiteralElement {
	if p.tok == token.DOTDOTDOT {
		dots := p.pos
		p.next()
		return &ast.SpreadAssignment{DotDotDot: dots, Expr: p.parseAssignExpr(flags.with(FIn, true))}
	}

	if acc, ok := p.tryParseAccessor(flags); ok {
		return acc
	}

	star := token.NoPos
	generator := false
	async := false
	if p.tok == token.ASYNC {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok != token.COLON && p.tok != token.COMMA && p.tok != token.RBRACE && p.tok != token.LPAREN
		}); ok {
			async = true
			p.next()
		}
	}
	if p.tok == token.STAR {
		generator = true
		star = p.pos
		p.next()
	}

	name := p.parsePropertyName()

	if p.tok == token.LPAREN || p.tok == token.LSS {
		h := p.parseFunctionLikeHeader(flags.with(FYield, generator).with(FAwait, async))
		body := p.parseBlock(flags.with(FYield, generator).with(FAwait, async))
		var mods []ast.Modifier
		if async {
			mods = append(mods, ast.Modifier{Kind: token.ASYNC})
		}
		return &ast.MethodDeclaration{Modifiers: mods, Star: star, Generator: generator, Name: name, FunctionLikeHeader: h, Body: body}
	}

	if p.tok == token.COLON {
		colon := p.pos
		p.next()
		value := p.parseAssignExpr(flags.with(FIn, true))
		return &ast.PropertyAssignment{Name: name, Colon: colon, Value: value}
	}

	id, ok := name.(*ast.Ident)
	if !ok {
		p.errorExpected(p.pos, "':'")
		return &ast.PropertyAssignment{Name: name, Value: p.badExprFrom(p.pos)}
	}
	sp := &ast.ShorthandPropertyAssignment{Name: id}
	if p.tok == token.EQ {
		sp.EqualsToken = p.pos
		p.next()
		sp.ObjectAssignmentInitializer = p.parseAssignExpr(flags.with(FIn, true))
	}
	return sp
}

// tryParseAccessor speculatively reads "get"/"set" as an accessor
// introducer, backing out if the following token shows it's really
// just a property or method named "get"/"set".
func (p *parser) tryParseAccessor(flags ContextFlags) (ast.ObjectLiteralElement, bool) {
	if p.tok != token.GET && p.tok != token.SET {
		return nil, false
	}
	return tryParse(p, func() (ast.ObjectLiteralElement, bool) {
		isGet := p.tok == token.GET
		pos := p.pos
		p.next()
		if p.tok == token.COLON || p.tok == token.COMMA || p.tok == token.RBRACE {
			return nil, false
		}
		name := p.parsePropertyName()
		if p.tok != token.LPAREN {
			return nil, false
		}
		h := p.parseFunctionLikeHeader(flags)
		body := p.parseBlock(flags)
		if isGet {
			return &ast.GetAccessor{GetPos: pos, Name: name, FunctionLikeHeader: h, Body: body}, true
		}
		return &ast.SetAccessor{SetPos: pos, Name: name, FunctionLikeHeader: h, Body: body}, true
	})
}

func (p *parser) parseTemplateLiteralExpr() ast.Expr {
	if p.tok == token.NO_SUBSTITUTION_TEMPLATE {
		return p.parseNoSubstitutionTemplate()
	}
	head := &ast.TemplateExpr{HeadPos: p.pos, Raw: p.raw, Cooked: p.lit}
	p.next()
	for {
		expr := p.parseExpr(0)
		tok, raw := p.scanner.ReScanTemplateToken()
		pos := p.pos
		p.tok, p.lit, p.raw = tok, raw, raw
		span := &ast.TemplateSpan{
			Expr: expr,
			Literal: ast.TemplateMiddleOrTail{
				TokenPos: pos, Raw: raw, Cooked: raw, IsTail: tok == token.TEMPLATE_TAIL,
			},
		}
		head.Spans = append(head.Spans, span)
		p.next()
		if tok == token.TEMPLATE_TAIL {
			break
		}
	}
	return head
}

func (p *parser) parseFunctionExpr(flags ContextFlags) ast.Expr {
	return p.parseFunctionExprAt(flags, token.NoPos)
}

func (p *parser) parseFunctionExprAt(flags ContextFlags, asyncPos token.Pos) *ast.FunctionExpr {
	fn := &ast.FunctionExpr{}
	if asyncPos != token.NoPos {
		fn.Modifiers = []ast.Modifier{{Pos: asyncPos, Kind: token.ASYNC}}
	}
	fn.FunctionPos = p.pos
	p.next() // "function"
	if p.tok == token.STAR {
		fn.Generator = true
		fn.Star = p.pos
		p.next()
	}
	bodyFlags := flags.with(FYield, fn.Generator).with(FAwait, asyncPos != token.NoPos)
	if p.tok == token.IDENT || token.IsContextualKeyword(p.tok) {
		fn.Name = p.parseIdentName()
	}
	fn.FunctionLikeHeader = p.parseFunctionLikeHeader(bodyFlags)
	fn.Body = p.parseBlock(bodyFlags)
	return fn
}

func (p *parser) parseClassExpr(flags ContextFlags) ast.Expr {
	f := p.parseClassHeaderFields(nil, flags)
	ce := &ast.ClassExpr{}
	ce.Modifiers = f.Modifiers
	ce.ClassPos = f.ClassPos
	ce.Name = f.Name
	ce.TypeParams = f.TypeParams
	ce.Heritage = f.Heritage
	ce.LBrace = f.LBrace
	ce.Members = f.Members
	ce.RBrace = f.RBrace
	return ce
}
