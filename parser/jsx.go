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

// nextJSXText advances past the current token by re-lexing from the
// scanner's resting position as JSX text rather than through the
// ordinary Scan path, since an opening tag's '>' or a child
// expression container's '}' is followed by raw markup, not another
// program token.
func (p *parser) nextJSXText() {
	pos, tok, lit := p.scanner.ScanJSXToken()
	p.pos, p.tok, p.lit, p.raw = pos, tok, lit, lit
}

// expectThenJSXText is expect, except the token that follows is
// scanned in JSX text mode instead of ordinary mode.
func (p *parser) expectThenJSXText(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
	}
	p.nextJSXText()
	return pos
}

// isJSXClosingTagAhead reports whether the '<' currently in hand opens
// a closing tag ("</") rather than a nested element or fragment,
// without consuming anything.
func (p *parser) isJSXClosingTagAhead() bool {
	return lookAheadBool(p, func() bool {
		p.next()
		return p.tok == token.SLASH
	})
}

// parseJSXElementOrFragment parses a JSX primary expression starting
// at '<': a tagged element ("<Name ...>...</Name>" or "<Name .../>")
// or a fragment ("<>...</>"). parentIsJSX tells it whether, once the
// element is fully closed, scanning should resume in JSX text mode
// (true, when this call is itself a child of an enclosing element) or
// ordinary token mode (false, when this is the outermost JSX
// expression reached from parsePrimaryExpr).
func (p *parser) parseJSXElementOrFragment(flags ContextFlags, parentIsJSX bool) ast.Expr {
	lAngle := p.pos
	p.next() // consume '<'
	if p.tok == token.GTR {
		return p.parseJSXFragment(flags, lAngle, parentIsJSX)
	}
	return p.parseJSXTaggedElement(flags, lAngle, parentIsJSX)
}

func (p *parser) parseJSXTaggedElement(flags ContextFlags, lAngle token.Pos, parentIsJSX bool) ast.Expr {
	c := p.openComments()
	name := p.parseJSXTagName()
	typeArgs := p.tryParseJSXTypeArgs()
	attrs := p.parseJSXAttributes(flags)

	if p.tok == token.SLASH {
		slash := p.pos
		p.next()
		var rAngle token.Pos
		if parentIsJSX {
			rAngle = p.expectThenJSXText(token.GTR)
		} else {
			rAngle = p.expect(token.GTR)
		}
		self := &ast.JSXSelfClosingElement{
			LAngle: lAngle, Name: name, TypeArgs: typeArgs, Attributes: attrs,
			Slash: slash, RAngle: rAngle,
		}
		return c.closeNode(p, self).(*ast.JSXSelfClosingElement)
	}

	rAngle := p.expectThenJSXText(token.GTR)
	opening := &ast.JSXOpeningElement{
		LAngle: lAngle, Name: name, TypeArgs: typeArgs, Attributes: attrs, RAngle: rAngle,
	}
	children := p.parseJSXChildren(flags)
	closing := p.parseJSXClosingTag(flags, parentIsJSX)
	if !jsxTagNamesEqual(opening.Name, closing.Name) {
		p.errf(closing.Pos(), "closing tag name does not match opening tag name")
	}
	elem := &ast.JSXElement{Opening: opening, Children: children, Closing: closing}
	return c.closeNode(p, elem).(*ast.JSXElement)
}

func (p *parser) parseJSXFragment(flags ContextFlags, openingFragment token.Pos, parentIsJSX bool) ast.Expr {
	c := p.openComments()
	p.expectThenJSXText(token.GTR)
	children := p.parseJSXChildren(flags)
	closing := p.parseJSXClosingTag(flags, parentIsJSX)
	if closing.Name != nil {
		p.errf(closing.Pos(), "expected closing fragment tag '</>'")
	}
	frag := &ast.JSXFragment{
		OpeningFragment: openingFragment,
		Children:        children,
		ClosingFragment: closing.LAngle,
		ClosingEnd:      closing.RAngle,
	}
	return c.closeNode(p, frag).(*ast.JSXFragment)
}

// parseJSXClosingTag parses "</Name>" or "</>"; the caller is
// responsible for comparing Name against the tag it opened, since a
// fragment's closing tag carries no name at all.
func (p *parser) parseJSXClosingTag(flags ContextFlags, parentIsJSX bool) *ast.JSXClosingElement {
	lAngle := p.pos
	if p.tok != token.LSS {
		p.errorExpected(lAngle, "'</'")
	}
	p.next()
	slash := p.expect(token.SLASH)
	var name ast.JSXTagName
	if p.tok != token.GTR {
		name = p.parseJSXTagName()
	}
	var rAngle token.Pos
	if parentIsJSX {
		rAngle = p.expectThenJSXText(token.GTR)
	} else {
		rAngle = p.expect(token.GTR)
	}
	return &ast.JSXClosingElement{LAngle: lAngle, Slash: slash, Name: name, RAngle: rAngle}
}

// parseJSXChildren parses the run of text, expression containers, and
// nested elements between an opening tag (or fragment) and its match,
// stopping as soon as a closing tag is detected without consuming it.
func (p *parser) parseJSXChildren(flags ContextFlags) ast.NodeArray[ast.JSXChild] {
	p.openList()
	defer p.closeList()
	prevCtx := p.parsingContext
	p.parsingContext = JsxChildren
	defer func() { p.parsingContext = prevCtx }()

	listPos := p.pos
	var children []ast.JSXChild
	for {
		switch p.tok {
		case token.JSX_TEXT:
			text := &ast.JSXText{
				TextPos:                      p.pos,
				Text:                         p.lit,
				ContainsOnlyTriviaWhiteSpace: isAllWhitespace(p.lit),
			}
			p.nextJSXText()
			children = append(children, text)
		case token.LBRACE:
			children = append(children, p.parseJSXChildExpressionContainer(flags))
		case token.LSS:
			if p.isJSXClosingTagAhead() {
				return ast.NodeArray[ast.JSXChild]{Elements: children, ListPos: listPos, ListEnd: p.pos}
			}
			children = append(children, p.parseJSXElementOrFragment(flags, true).(ast.JSXChild))
		case token.EOF:
			p.errorExpected(p.pos, "JSX closing tag")
			return ast.NodeArray[ast.JSXChild]{Elements: children, ListPos: listPos, ListEnd: p.pos}
		default:
			return ast.NodeArray[ast.JSXChild]{Elements: children, ListPos: listPos, ListEnd: p.pos}
		}
	}
}

// parseJSXChildExpressionContainer parses "{expr}" or "{...expr}" in
// child position, resuming JSX text mode once its '}' closes since the
// enclosing children list always continues past it.
func (p *parser) parseJSXChildExpressionContainer(flags ContextFlags) *ast.JSXExpressionContainer {
	c := p.openComments()
	lbrace := p.pos
	p.next() // ordinary: read whatever the container holds
	ec := &ast.JSXExpressionContainer{LBrace: lbrace}
	if p.tok == token.DOTDOTDOT {
		ec.HasSpread = true
		ec.DotDotDot = p.pos
		p.next()
	}
	if p.tok != token.RBRACE {
		ec.Expr = p.parseExpr(flags.with(FIn, true))
	}
	ec.RBrace = p.expectThenJSXText(token.RBRACE)
	return c.closeNode(p, ec).(*ast.JSXExpressionContainer)
}

// parseJSXAttributeExpressionValue parses "{expr}" as an attribute's
// value; unlike a child container, an attribute's braces close back
// into ordinary token mode since more attributes, or the tag's own
// closing '>' or '/', follow.
func (p *parser) parseJSXAttributeExpressionValue(flags ContextFlags) *ast.JSXExpressionContainer {
	c := p.openComments()
	lbrace := p.expect(token.LBRACE)
	ec := &ast.JSXExpressionContainer{LBrace: lbrace}
	if p.tok != token.RBRACE {
		ec.Expr = p.parseAssignExpr(flags.with(FIn, true))
	}
	ec.RBrace = p.expect(token.RBRACE)
	return c.closeNode(p, ec).(*ast.JSXExpressionContainer)
}

func (p *parser) parseJSXSpreadAttribute(flags ContextFlags) *ast.JSXSpreadAttribute {
	c := p.openComments()
	lbrace := p.expect(token.LBRACE)
	dotdotdot := p.expect(token.DOTDOTDOT)
	expr := p.parseAssignExpr(flags.with(FIn, true))
	rbrace := p.expect(token.RBRACE)
	spread := &ast.JSXSpreadAttribute{LBrace: lbrace, DotDotDot: dotdotdot, Expr: expr, RBrace: rbrace}
	return c.closeNode(p, spread).(*ast.JSXSpreadAttribute)
}

// parseJSXAttributes parses the space-separated attribute run of an
// opening or self-closing tag; there is no separator, so the loop ends
// as soon as the token in hand can't start another attribute.
func (p *parser) parseJSXAttributes(flags ContextFlags) ast.NodeArray[ast.JSXAttributeLike] {
	prevCtx := p.parsingContext
	p.parsingContext = JsxAttributes
	defer func() { p.parsingContext = prevCtx }()

	listPos := p.pos
	var attrs []ast.JSXAttributeLike
	for !p.isAtListTerminator(JsxAttributes) {
		if p.tok == token.LBRACE {
			attrs = append(attrs, p.parseJSXSpreadAttribute(flags))
			continue
		}
		attrs = append(attrs, p.parseJSXAttribute(flags))
	}
	return ast.NodeArray[ast.JSXAttributeLike]{Elements: attrs, ListPos: listPos, ListEnd: p.pos}
}

func (p *parser) parseJSXAttribute(flags ContextFlags) *ast.JSXAttribute {
	c := p.openComments()
	name := p.parseJSXTagName()
	attr := &ast.JSXAttribute{Name: name}
	if p.tok == token.EQ {
		attr.Equal = p.pos
		attr.Value = p.parseJSXAttributeValue(flags)
	}
	return c.closeNode(p, attr).(*ast.JSXAttribute)
}

// parseJSXAttributeValue parses what follows an attribute's '=': a
// string literal (scanned without escape processing, per JSX's
// verbatim-string rule), an expression container, or a nested
// element, depending on which quote or brace the scanner is resting
// on once '=' is behind it.
func (p *parser) parseJSXAttributeValue(flags ContextFlags) ast.Node {
	switch p.scanner.Peek() {
	case '"', '\'':
		quote := p.scanner.Peek()
		pos, tok, text := p.scanner.ScanJSXAttributeString(quote)
		p.pos, p.tok, p.lit, p.raw = pos, tok, text, text
		lit := &ast.BasicLit{ValuePos: pos, Kind: token.STRING, Value: text, Raw: text}
		p.next()
		return lit
	default:
		p.next()
		switch p.tok {
		case token.LBRACE:
			return p.parseJSXAttributeExpressionValue(flags)
		case token.LSS:
			return p.parseJSXElementOrFragment(flags, false)
		default:
			p.errorExpected(p.pos, "attribute value")
			return nil
		}
	}
}

// parseJSXTagName parses a tag or attribute name: a plain identifier,
// a dotted member chain ("Foo.Bar.Baz"), or a namespaced name
// ("svg:rect"), the latter two mutually exclusive per the JSX grammar.
func (p *parser) parseJSXTagName() ast.JSXTagName {
	var name ast.JSXTagName = p.parseJSXIdentPart()
	if p.tok == token.COLON {
		ns, _ := name.(*ast.Ident)
		colon := p.pos
		p.next()
		nm := p.parseJSXIdentPart()
		return &ast.JSXNamespacedName{Namespace: ns, Colon: colon, Name: nm}
	}
	for p.tok == token.DOT {
		dot := p.pos
		p.next()
		nm := p.parseJSXIdentPart()
		name = &ast.JSXPropertyAccess{Expr: name, Dot: dot, Name: nm}
	}
	return name
}

// parseJSXIdentPart accepts identifiers, contextual keywords, and the
// hyphenated spellings common in HTML attribute names ("data-foo",
// "aria-label"), which an ordinary identifier scan splits into
// separate MINUS-joined tokens.
func (p *parser) parseJSXIdentPart() *ast.Ident {
	id := p.parseIdentName()
	for p.tok == token.MINUS {
		p.next()
		rest := p.parseIdentName()
		id = &ast.Ident{NamePos: id.NamePos, Name: id.Name + "-" + rest.Name}
	}
	return id
}

// tryParseJSXTypeArgs speculatively parses a component's explicit type
// arguments ("<Foo<T> />"), backing out if what follows doesn't
// continue as an attribute, a tag close, or a self-close.
func (p *parser) tryParseJSXTypeArgs() *ast.NodeArray[ast.Type] {
	if p.tok != token.LSS {
		return nil
	}
	args, ok := tryParse(p, func() (*ast.NodeArray[ast.Type], bool) {
		p.next()
		list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
		p.expectTypeArgsClose()
		switch p.tok {
		case token.GTR, token.SLASH, token.IDENT:
			return &list, true
		}
		return nil, token.IsContextualKeyword(p.tok)
	})
	if !ok {
		return nil
	}
	return args
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return false
	}
	return true
}

func jsxTagNamesEqual(a, b ast.JSXTagName) bool {
	if b == nil {
		return false
	}
	switch a := a.(type) {
	case *ast.Ident:
		bi, ok := b.(*ast.Ident)
		return ok && bi.Name == a.Name
	case *ast.JSXNamespacedName:
		bn, ok := b.(*ast.JSXNamespacedName)
		return ok && a.Namespace.Name == bn.Namespace.Name && a.Name.Name == bn.Name.Name
	case *ast.JSXPropertyAccess:
		bp, ok := b.(*ast.JSXPropertyAccess)
		return ok && a.Name.Name == bp.Name.Name && jsxTagNamesEqual(a.Expr, bp.Expr)
	}
	return false
}
