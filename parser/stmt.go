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

// parseSourceElements parses the top-level statement list of a source
// file or module block, stopping at EOF or a closing "}". Only the
// call from parseSourceFileBody passes inModuleBlock false; every
// nested block or module body reuses this same loop with it true, so
// atFileTopLevel below tracks exactly the file's own statement list.
func (p *parser) parseSourceElements(flags ContextFlags, inModuleBlock bool) ast.NodeArray[ast.Stmt] {
	p.openList()
	defer p.closeList()

	prevTopLevel := p.atFileTopLevel
	p.atFileTopLevel = !inModuleBlock
	defer func() { p.atFileTopLevel = prevTopLevel }()

	startPos := p.pos
	var stmts []ast.Stmt
	for {
		if inModuleBlock {
			if p.tok == token.RBRACE || p.tok == token.EOF {
				break
			}
		} else if p.tok == token.EOF {
			break
		}
		if inModuleBlock {
			stmts = append(stmts, p.parseStatement(flags))
			continue
		}

		// Record where this top-level statement started so a possible
		// top-level await inside it can be replayed under AwaitContext
		// once the file's module-ness is known; see reparseTopLevelAwait.
		m := p.mark()
		hadAwait := p.containsPossibleTopLevelAwait
		stmt := p.parseStatement(flags)
		if p.containsPossibleTopLevelAwait && !hadAwait {
			p.topLevelAwaitMarks = append(p.topLevelAwaitMarks, m)
			p.topLevelAwaitStmts = append(p.topLevelAwaitStmts, len(stmts))
		}
		stmts = append(stmts, stmt)
	}
	return ast.NodeArray[ast.Stmt]{Elements: stmts, ListPos: startPos, ListEnd: p.pos}
}

// parseSemicolon consumes the ";" terminating a statement, tolerating
// automatic semicolon insertion: a "}", EOF, or a token on a new line
// all stand in for an explicit ";" (the automatic-semicolon-insertion rule).
func (p *parser) parseSemicolon() token.Pos {
	if p.tok == token.SEMICOLON {
		pos := p.pos
		p.next()
		return pos
	}
	if p.tok == token.RBRACE || p.tok == token.EOF || p.scanner.HasPrecedingLineBreak() {
		return p.pos
	}
	p.errorExpected(p.pos, "';'")
	return p.pos
}

func (p *parser) parseBlock(flags ContextFlags) *ast.Block {
	c := p.openComments()
	lbrace := p.expect(token.LBRACE)
	stmts := p.parseSourceElements(flags, true)
	rbrace := p.expect(token.RBRACE)
	return c.closeNode(p, &ast.Block{LBrace: lbrace, Statements: stmts, RBrace: rbrace}).(*ast.Block)
}

// parseStatement is the Statement production's entry point: it
// dispatches on the current token, falling through to an expression
// statement (including a bare label) when nothing more specific
// matches.
func (p *parser) parseStatement(flags ContextFlags) ast.Stmt {
	c := p.openComments()
	s := p.parseStatementWorker(flags)
	return c.closeNode(p, s).(ast.Stmt)
}

func (p *parser) parseStatementWorker(flags ContextFlags) ast.Stmt {
	switch p.tok {
	case token.LBRACE:
		return p.parseBlock(flags)
	case token.VAR, token.LET, token.CONST:
		if p.tok == token.CONST && p.isStartOfEnumAfterConst() {
			return p.parseEnumDeclaration(nil, p.pos)
		}
		return p.parseVariableStatement(nil, flags)
	case token.SEMICOLON:
		pos := p.pos
		p.next()
		return &ast.EmptyStatement{Semicolon: pos}
	case token.IF:
		return p.parseIfStatement(flags)
	case token.FOR:
		return p.parseForStatement(flags)
	case token.WHILE:
		return p.parseWhileStatement(flags)
	case token.DO:
		return p.parseDoStatement(flags)
	case token.SWITCH:
		return p.parseSwitchStatement(flags)
	case token.TRY:
		return p.parseTryStatement(flags)
	case token.THROW:
		return p.parseThrowStatement(flags)
	case token.RETURN:
		return p.parseReturnStatement(flags)
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.DEBUGGER:
		pos := p.pos
		p.next()
		return &ast.DebuggerStatement{DebuggerPos: pos, Semicolon: p.parseSemicolon()}
	case token.WITH:
		return p.parseWithStatement(flags)
	case token.FUNCTION:
		return p.parseFunctionDeclaration(nil, flags)
	case token.CLASS:
		return p.parseClassDeclaration(nil, flags)
	case token.INTERFACE:
		return p.parseInterfaceDeclaration(nil)
	case token.TYPE:
		if p.isStartOfTypeAlias() {
			return p.parseTypeAliasDeclaration(nil)
		}
	case token.ENUM:
		return p.parseEnumDeclaration(nil, token.NoPos)
	case token.NAMESPACE, token.MODULE:
		if p.isStartOfModuleDeclaration() {
			return p.parseModuleDeclaration(nil, flags)
		}
	case token.GLOBAL:
		if ok := lookAheadBool(p, func() bool { p.next(); return p.tok == token.LBRACE }); ok {
			return p.parseModuleDeclaration(nil, flags)
		}
	case token.IMPORT:
		return p.parseImportDeclaration(nil)
	case token.EXPORT:
		return p.parseExportDeclaration(flags)
	case token.ABSTRACT, token.ASYNC, token.PUBLIC, token.PRIVATE, token.PROTECTED,
		token.READONLY, token.DECLARE, token.STATIC, token.OVERRIDE:
		if mods, ok := p.tryParseLeadingModifiers(); ok {
			return p.parseModifiedDeclaration(mods, flags)
		}
	case token.AT:
		return p.parseDecoratedDeclaration(flags)
	}

	if (p.tok == token.IDENT || token.IsContextualKeyword(p.tok)) {
		if lbl, ok := p.tryParseLabeledStatement(flags); ok {
			return lbl
		}
	}
	return p.parseExpressionStatement(flags)
}

// isStartOfEnumAfterConst disambiguates "const enum E { ... }" from an
// ordinary "const" variable declaration whose first declared name
// happens to be named "enum" (illegal, but the parser still needs to
// pick a branch deterministically).
func (p *parser) isStartOfEnumAfterConst() bool {
	return lookAheadBool(p, func() bool {
		p.next()
		return p.tok == token.ENUM
	})
}

func (p *parser) isStartOfTypeAlias() bool {
	return lookAheadBool(p, func() bool {
		p.next()
		if p.tok != token.IDENT && !token.IsContextualKeyword(p.tok) {
			return false
		}
		p.next()
		for p.tok == token.DOT {
			p.next()
			p.next()
		}
		return p.tok == token.EQ || p.tok == token.LSS
	})
}

func (p *parser) isStartOfModuleDeclaration() bool {
	return lookAheadBool(p, func() bool {
		p.next()
		return p.tok == token.IDENT || p.tok == token.STRING || token.IsContextualKeyword(p.tok)
	})
}

// tryParseLeadingModifiers consumes a run of modifiers only if what
// follows still looks like a declaration, so "public" or "static" used
// as a plain identifier in an expression statement isn't misread.
func (p *parser) tryParseLeadingModifiers() ([]ast.Modifier, bool) {
	return tryParse(p, func() ([]ast.Modifier, bool) {
		// "const" is left for the declaration itself ("declare const x",
		// "const enum"), so the run stops before it.
		var mods []ast.Modifier
		for isModifierToken(p.tok) && p.tok != token.CONST {
			mods = append(mods, ast.Modifier{Pos: p.pos, Kind: p.tok})
			p.next()
		}
		switch p.tok {
		case token.FUNCTION, token.CLASS, token.INTERFACE, token.ENUM, token.CONST,
			token.VAR, token.LET, token.NAMESPACE, token.MODULE, token.ASYNC,
			token.ABSTRACT, token.IMPORT, token.TYPE:
			return mods, true
		}
		return nil, false
	})
}

func (p *parser) parseModifiedDeclaration(mods []ast.Modifier, flags ContextFlags) ast.Stmt {
	switch p.tok {
	case token.FUNCTION:
		return p.parseFunctionDeclaration(mods, flags)
	case token.CLASS:
		return p.parseClassDeclaration(mods, flags)
	case token.INTERFACE:
		return p.parseInterfaceDeclaration(mods)
	case token.ENUM:
		return p.parseEnumDeclaration(mods, token.NoPos)
	case token.CONST:
		if p.isStartOfEnumAfterConst() {
			return p.parseEnumDeclaration(mods, p.pos)
		}
		return p.parseVariableStatement(mods, flags)
	case token.VAR, token.LET:
		return p.parseVariableStatement(mods, flags)
	case token.NAMESPACE, token.MODULE:
		return p.parseModuleDeclaration(mods, flags)
	case token.TYPE:
		return p.parseTypeAliasDeclaration(mods)
	case token.IMPORT:
		return p.parseImportEqualsOrDeclaration(mods)
	default:
		bodyFlags := flags
		if hasModifier(mods, token.DECLARE) {
			bodyFlags = bodyFlags.with(FAmbient, true)
		}
		return p.parseExpressionStatement(bodyFlags)
	}
}

func hasModifier(mods []ast.Modifier, tok token.Token) bool {
	for _, m := range mods {
		if m.Kind == tok {
			return true
		}
	}
	return false
}

// parseDecoratedDeclaration parses a "@decorator" list followed by the
// class declaration it modifies: decorators only ever apply to
// classes and their members in the grammar this parser accepts. The
// decorator expressions themselves are consumed under
// FDecoratorContext and discarded rather than attached to the
// resulting node, since no decorator metadata node exists in this
// tree; callers only need the token stream to stay in sync.
func (p *parser) parseDecoratedDeclaration(flags ContextFlags) ast.Stmt {
	p.parseDecorators(flags)
	mods := p.parseModifiers()
	return p.parseClassDeclaration(mods, flags)
}

func (p *parser) parseDecorators(flags ContextFlags) {
	for p.tok == token.AT {
		p.next()
		p.parseLeftHandSideExpr(flags.with(FDecoratorContext, true))
	}
}

// tryParseLabeledStatement speculatively reads "ident:" as a label,
// since a bare identifier followed by ":" is otherwise indistinguishable
// from the start of an expression statement until the colon is seen.
func (p *parser) tryParseLabeledStatement(flags ContextFlags) (*ast.LabeledStatement, bool) {
	if ok := lookAheadBool(p, func() bool {
		p.next()
		return p.tok == token.COLON
	}); !ok {
		return nil, false
	}
	label := p.parseIdentName()
	colon := p.expect(token.COLON)
	return &ast.LabeledStatement{Label: label, Colon: colon, Stmt: p.parseStatement(flags)}, true
}

func (p *parser) parseExpressionStatement(flags ContextFlags) ast.Stmt {
	expr := p.parseExpr(flags.with(FIn, true))
	semi := p.parseSemicolon()
	return &ast.ExpressionStatement{Expr: expr, Semicolon: semi}
}

func (p *parser) parseIfStatement(flags ContextFlags) ast.Stmt {
	ifPos := p.pos
	p.next()
	p.expect(token.LPAREN)
	cond := p.parseExpr(flags.with(FIn, true))
	p.expect(token.RPAREN)
	then := p.parseStatement(flags)
	s := &ast.IfStatement{IfPos: ifPos, Cond: cond, Then: then}
	if p.tok == token.ELSE {
		s.ElsePos = p.pos
		p.next()
		s.Else = p.parseStatement(flags)
	}
	return s
}

// parseForStatement parses all three for-loop shapes: the classic
// three-clause form and for-in/for-of, disambiguated only after the
// initializer clause has been read (the for-head grammar,
// which cannot be told apart purely by lookahead at "for (").
func (p *parser) parseForStatement(flags ContextFlags) ast.Stmt {
	forPos := p.pos
	p.next()

	isAwait := false
	var awaitPos token.Pos
	if p.tok == token.AWAIT {
		isAwait = true
		awaitPos = p.pos
		p.next()
	}
	p.expect(token.LPAREN)

	var init ast.ForInit
	noInFlags := flags.with(FIn, false)
	switch p.tok {
	case token.SEMICOLON:
		init = nil
	case token.VAR, token.LET, token.CONST:
		init = p.parseVariableDeclarationList(noInFlags)
	default:
		init = ast.ExprForInit(p.parseExpr(noInFlags))
	}

	switch p.tok {
	case token.IN:
		inPos := p.pos
		p.next()
		expr := p.parseExpr(flags.with(FIn, true))
		p.expect(token.RPAREN)
		body := p.parseStatement(flags)
		return &ast.ForInStatement{ForPos: forPos, Init: init, InPos: inPos, Expr: expr, Body: body}
	case token.OF:
		ofPos := p.pos
		p.next()
		expr := p.parseAssignExpr(flags.with(FIn, true))
		p.expect(token.RPAREN)
		body := p.parseStatement(flags)
		return &ast.ForOfStatement{ForPos: forPos, AwaitPos: awaitPos, IsAwait: isAwait, Init: init, OfPos: ofPos, Expr: expr, Body: body}
	}

	p.expect(token.SEMICOLON)
	var cond ast.Expr
	if p.tok != token.SEMICOLON {
		cond = p.parseExpr(flags.with(FIn, true))
	}
	p.expect(token.SEMICOLON)
	var post ast.Expr
	if p.tok != token.RPAREN {
		post = p.parseExpr(flags.with(FIn, true))
	}
	p.expect(token.RPAREN)
	body := p.parseStatement(flags)
	return &ast.ForStatement{ForPos: forPos, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *parser) parseVariableDeclarationList(flags ContextFlags) *ast.VariableDeclarationList {
	kind := ast.Var
	switch p.tok {
	case token.LET:
		kind = ast.Let
	case token.CONST:
		kind = ast.Const
	}
	keywordPos := p.pos
	p.next()
	decls := parseCommaList(p, VariableDeclarations, token.SEMICOLON, func() *ast.VariableDeclaration {
		return p.parseVariableDeclaration(flags)
	})
	return &ast.VariableDeclarationList{KeywordPos: keywordPos, Kind: kind, Declarations: decls}
}

func (p *parser) parseVariableDeclaration(flags ContextFlags) *ast.VariableDeclaration {
	d := &ast.VariableDeclaration{Name: p.parseBindingName(flags)}
	if p.tok == token.BANG {
		d.Definite = true
		d.Exclaim = p.pos
		p.next()
	}
	if p.tok == token.COLON {
		p.next()
		d.Type = p.parseType(flags)
	}
	if p.tok == token.EQ {
		d.EqualsToken = p.pos
		p.next()
		d.Initializer = p.parseAssignExpr(flags)
	}
	return d
}

func (p *parser) parseVariableStatement(mods []ast.Modifier, flags ContextFlags) *ast.VariableStatement {
	list := p.parseVariableDeclarationList(flags.with(FIn, true))
	semi := p.parseSemicolon()
	return &ast.VariableStatement{Modifiers: mods, List: list, Semicolon: semi}
}

func (p *parser) parseWhileStatement(flags ContextFlags) ast.Stmt {
	whilePos := p.pos
	p.next()
	p.expect(token.LPAREN)
	cond := p.parseExpr(flags.with(FIn, true))
	p.expect(token.RPAREN)
	body := p.parseStatement(flags)
	return &ast.WhileStatement{WhilePos: whilePos, Cond: cond, Body: body}
}

func (p *parser) parseDoStatement(flags ContextFlags) ast.Stmt {
	doPos := p.pos
	p.next()
	body := p.parseStatement(flags)
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr(flags.with(FIn, true))
	p.expect(token.RPAREN)
	var semi token.Pos
	if p.tok == token.SEMICOLON {
		semi = p.pos
		p.next()
	}
	return &ast.DoStatement{DoPos: doPos, Body: body, Cond: cond, Semicolon: semi}
}

func (p *parser) parseSwitchStatement(flags ContextFlags) ast.Stmt {
	switchPos := p.pos
	p.next()
	p.expect(token.LPAREN)
	expr := p.parseExpr(flags.with(FIn, true))
	p.expect(token.RPAREN)
	lbrace := p.expect(token.LBRACE)
	clauses := parseCommaListNoSep(p, SwitchClauses, token.RBRACE, func() *ast.CaseOrDefaultClause {
		return p.parseCaseOrDefaultClause(flags)
	})
	clauses.ListPos, clauses.ListEnd = lbrace, p.pos
	rbrace := p.expect(token.RBRACE)
	return &ast.SwitchStatement{SwitchPos: switchPos, Expr: expr, LBrace: lbrace, Clauses: clauses, RBrace: rbrace}
}

// parseCommaListNoSep is parseCommaList's sibling for list productions
// with no separating comma between elements: switch clauses, class
// members, and the like are simply concatenated until the terminator.
func parseCommaListNoSep[T ast.Node](p *parser, ctx ParsingContext, close token.Token, parseElement func() T) ast.NodeArray[T] {
	prevCtx := p.parsingContext
	p.parsingContext = ctx
	defer func() { p.parsingContext = prevCtx }()

	startPos := p.pos
	var elems []T
	for !p.at(close) && !p.isAtListTerminator(ctx) {
		elems = append(elems, parseElement())
	}
	return ast.NodeArray[T]{Elements: elems, ListPos: startPos, ListEnd: p.pos}
}

func (p *parser) parseCaseOrDefaultClause(flags ContextFlags) *ast.CaseOrDefaultClause {
	c := p.openComments()
	keywordPos := p.pos
	var test ast.Expr
	if p.tok == token.CASE {
		p.next()
		test = p.parseExpr(flags.with(FIn, true))
	} else {
		p.expect(token.DEFAULT)
	}
	colon := p.expect(token.COLON)
	stmts := parseCommaListNoSep(p, SwitchClauseStatements, token.RBRACE, func() ast.Stmt {
		return p.parseStatement(flags)
	})
	clause := &ast.CaseOrDefaultClause{KeywordPos: keywordPos, Test: test, Colon: colon, Statements: stmts}
	return c.closeNode(p, clause).(*ast.CaseOrDefaultClause)
}

func (p *parser) parseTryStatement(flags ContextFlags) ast.Stmt {
	tryPos := p.pos
	p.next()
	block := p.parseBlock(flags)
	s := &ast.TryStatement{TryPos: tryPos, Block: block}
	if p.tok == token.CATCH {
		s.Catch = p.parseCatchClause(flags)
	}
	if p.tok == token.FINALLY {
		s.FinallyPos = p.pos
		p.next()
		s.Finally = p.parseBlock(flags)
	}
	return s
}

func (p *parser) parseCatchClause(flags ContextFlags) *ast.CatchClause {
	catchPos := p.pos
	p.next()
	c := &ast.CatchClause{CatchPos: catchPos}
	if p.tok == token.LPAREN {
		c.LParen = p.pos
		p.next()
		c.Param = p.parseBindingName(flags)
		if p.tok == token.COLON {
			p.next()
			c.Type = p.parseType(flags)
		}
		c.RParen = p.expect(token.RPAREN)
	}
	c.Block = p.parseBlock(flags)
	return c
}

func (p *parser) parseThrowStatement(flags ContextFlags) ast.Stmt {
	throwPos := p.pos
	p.next()
	expr := p.parseExpr(flags.with(FIn, true))
	return &ast.ThrowStatement{ThrowPos: throwPos, Expr: expr, Semicolon: p.parseSemicolon()}
}

func (p *parser) parseReturnStatement(flags ContextFlags) ast.Stmt {
	returnPos := p.pos
	p.next()
	s := &ast.ReturnStatement{ReturnPos: returnPos}
	if p.tok != token.SEMICOLON && p.tok != token.RBRACE && p.tok != token.EOF && !p.scanner.HasPrecedingLineBreak() {
		s.Expr = p.parseExpr(flags.with(FIn, true))
	}
	s.Semicolon = p.parseSemicolon()
	return s
}

func (p *parser) parseBreakStatement() ast.Stmt {
	breakPos := p.pos
	p.next()
	s := &ast.BreakStatement{BreakPos: breakPos}
	if (p.tok == token.IDENT || token.IsContextualKeyword(p.tok)) && !p.scanner.HasPrecedingLineBreak() {
		s.Label = p.parseIdentName()
	}
	s.Semicolon = p.parseSemicolon()
	return s
}

func (p *parser) parseContinueStatement() ast.Stmt {
	continuePos := p.pos
	p.next()
	s := &ast.ContinueStatement{ContinuePos: continuePos}
	if (p.tok == token.IDENT || token.IsContextualKeyword(p.tok)) && !p.scanner.HasPrecedingLineBreak() {
		s.Label = p.parseIdentName()
	}
	s.Semicolon = p.parseSemicolon()
	return s
}

func (p *parser) parseWithStatement(flags ContextFlags) ast.Stmt {
	withPos := p.pos
	p.next()
	p.expect(token.LPAREN)
	expr := p.parseExpr(flags.with(FIn, true))
	p.expect(token.RPAREN)
	body := p.parseStatement(flags)
	return &ast.WithStatement{WithPos: withPos, Expr: expr, Body: body}
}

func (p *parser) parseFunctionDeclaration(mods []ast.Modifier, flags ContextFlags) *ast.FunctionDeclaration {
	fn := &ast.FunctionDeclaration{Modifiers: mods, FunctionPos: p.pos}
	p.next()
	if p.tok == token.STAR {
		fn.Generator = true
		fn.Star = p.pos
		p.next()
	}
	bodyFlags := flags.with(FYield, fn.Generator).with(FAwait, hasModifier(mods, token.ASYNC))
	if p.tok == token.IDENT || token.IsContextualKeyword(p.tok) {
		fn.Name = p.parseIdentName()
	}
	fn.FunctionLikeHeader = p.parseFunctionLikeHeader(bodyFlags)
	if p.tok == token.LBRACE {
		fn.Body = p.parseBlock(bodyFlags)
	} else {
		p.parseSemicolon()
	}
	return fn
}

// classFields holds the pieces shared by a class declaration and a
// class expression; classHeader itself is unexported in package ast,
// so the two callers copy these into their own node via promoted
// field assignment rather than a keyed struct literal.
type classFields struct {
	Modifiers  []ast.Modifier
	ClassPos   token.Pos
	Name       *ast.Ident
	TypeParams *ast.NodeArray[*ast.TypeParameter]
	Heritage   []*ast.HeritageClause
	LBrace     token.Pos
	Members    ast.NodeArray[ast.ClassMember]
	RBrace     token.Pos
}

func (p *parser) parseClassHeaderFields(mods []ast.Modifier, flags ContextFlags) classFields {
	f := classFields{Modifiers: mods, ClassPos: p.pos}
	p.next()
	if p.tok == token.IDENT || token.IsContextualKeyword(p.tok) {
		f.Name = p.parseIdentName()
	}
	f.TypeParams = p.parseOptionalTypeParameters()
	f.Heritage = p.parseHeritageClauses()
	f.LBrace = p.expect(token.LBRACE)
	var members []ast.ClassMember
	classFlags := flags.with(FAmbient, hasModifier(mods, token.DECLARE))
	for !p.isAtListTerminator(ClassMembers) {
		members = append(members, p.parseClassMember(classFlags))
	}
	f.Members = ast.NodeArray[ast.ClassMember]{Elements: members, ListPos: f.LBrace, ListEnd: p.pos}
	f.RBrace = p.expect(token.RBRACE)
	return f
}

func (p *parser) parseHeritageClauses() []*ast.HeritageClause {
	var clauses []*ast.HeritageClause
	for p.tok == token.EXTENDS || p.tok == token.IMPLEMENTS {
		kind := p.tok
		start := p.pos
		p.next()
		types := parseCommaList(p, HeritageClauseElement, token.LBRACE, func() *ast.ExpressionWithTypeArgs {
			return p.parseExpressionWithTypeArgs()
		})
		clauses = append(clauses, &ast.HeritageClause{Kind: kind, Start: start, Types: types})
	}
	return clauses
}

func (p *parser) parseExpressionWithTypeArgs() *ast.ExpressionWithTypeArgs {
	expr := p.parseLeftHandSideExpr(0)
	w := &ast.ExpressionWithTypeArgs{Expr: expr}
	if p.tok == token.LSS {
		p.next()
		list := parseCommaList(p, TypeArguments, token.GTR, func() ast.Type { return p.parseType(0) })
		p.expectTypeArgsClose()
		w.TypeArgs = &list
	}
	return w
}

func (p *parser) parseClassDeclaration(mods []ast.Modifier, flags ContextFlags) *ast.ClassDeclaration {
	f := p.parseClassHeaderFields(mods, flags)
	if f.Name == nil && !hasModifier(mods, token.DEFAULT) {
		p.errorExpected(f.ClassPos.Add(len("class")), "class name")
	}
	decl := &ast.ClassDeclaration{}
	decl.Modifiers = f.Modifiers
	decl.ClassPos = f.ClassPos
	decl.Name = f.Name
	decl.TypeParams = f.TypeParams
	decl.Heritage = f.Heritage
	decl.LBrace = f.LBrace
	decl.Members = f.Members
	decl.RBrace = f.RBrace
	return decl
}

func (p *parser) parseClassMember(flags ContextFlags) ast.ClassMember {
	c := p.openComments()
	m := p.parseClassMemberWorker(flags)
	return c.closeNode(p, m).(ast.ClassMember)
}

func (p *parser) parseClassMemberWorker(flags ContextFlags) ast.ClassMember {
	if p.tok == token.SEMICOLON {
		pos := p.pos
		p.next()
		return &ast.SemicolonClassElement{Semicolon: pos}
	}

	p.parseDecorators(flags)

	if p.tok == token.STATIC {
		if blk, ok := p.tryParseStaticBlock(); ok {
			return blk
		}
	}

	mods := p.parseModifiers()

	star := token.NoPos
	generator := false
	if p.tok == token.STAR {
		generator = true
		star = p.pos
		p.next()
	}

	if (p.tok == token.GET || p.tok == token.SET) && !generator {
		if acc, ok := p.tryParseClassAccessor(mods, flags); ok {
			return acc
		}
	}

	if p.tok == token.LBRACKET {
		return p.parseIndexSignature(mods)
	}

	if p.tok == token.CONSTRUCTOR {
		return p.parseConstructor(mods, flags)
	}

	name := p.parsePropertyName()
	memberFlags := flags.with(FYield, generator).with(FAwait, hasModifier(mods, token.ASYNC))

	optional := false
	var question token.Pos
	definite := false
	var exclaim token.Pos
	switch p.tok {
	case token.QUESTION:
		optional = true
		question = p.pos
		p.next()
	case token.BANG:
		definite = true
		exclaim = p.pos
		p.next()
	}

	if p.tok == token.LPAREN || p.tok == token.LSS {
		h := p.parseFunctionLikeHeader(memberFlags)
		md := &ast.MethodDeclaration{
			Modifiers: mods, Star: star, Generator: generator,
			Name: name, Question: question, Optional: optional,
			FunctionLikeHeader: h,
		}
		if p.tok == token.LBRACE {
			md.Body = p.parseBlock(memberFlags)
		} else {
			p.parseSemicolon()
		}
		return md
	}

	prop := &ast.PropertyDeclaration{
		Modifiers: mods, Name: name, Question: question, Optional: optional,
		Exclaim: exclaim, Definite: definite,
	}
	if p.tok == token.COLON {
		p.next()
		prop.Type = p.parseType(flags)
	}
	if p.tok == token.EQ {
		p.next()
		prop.Initializer = p.parseAssignExpr(flags.with(FIn, true))
	}
	prop.Semicolon = p.parseSemicolon()
	return prop
}

func (p *parser) tryParseStaticBlock() (*ast.ClassStaticBlock, bool) {
	return tryParse(p, func() (*ast.ClassStaticBlock, bool) {
		staticPos := p.pos
		p.next()
		if p.tok != token.LBRACE {
			return nil, false
		}
		body := p.parseBlock(0)
		return &ast.ClassStaticBlock{StaticPos: staticPos, Body: body}, true
	})
}

func (p *parser) tryParseClassAccessor(mods []ast.Modifier, flags ContextFlags) (ast.ClassMember, bool) {
	return tryParse(p, func() (ast.ClassMember, bool) {
		isGet := p.tok == token.GET
		pos := p.pos
		p.next()
		if p.tok == token.EQ || p.tok == token.SEMICOLON || p.tok == token.COLON {
			return nil, false
		}
		name := p.parsePropertyName()
		if p.tok != token.LPAREN {
			return nil, false
		}
		h := p.parseFunctionLikeHeader(flags)
		var body *ast.Block
		if p.tok == token.LBRACE {
			body = p.parseBlock(flags)
		} else {
			p.parseSemicolon()
		}
		if isGet {
			return &ast.GetAccessor{Modifiers: mods, GetPos: pos, Name: name, FunctionLikeHeader: h, Body: body}, true
		}
		return &ast.SetAccessor{Modifiers: mods, SetPos: pos, Name: name, FunctionLikeHeader: h, Body: body}, true
	})
}

func (p *parser) parseConstructor(mods []ast.Modifier, flags ContextFlags) *ast.Constructor {
	ctorPos := p.pos
	p.next()
	lparen, params, rparen := p.parseParameters(flags)
	c := &ast.Constructor{Modifiers: mods, ConstructorPos: ctorPos, LParen: lparen, Params: params, RParen: rparen}
	if p.tok == token.LBRACE {
		c.Body = p.parseBlock(flags)
	} else {
		p.parseSemicolon()
	}
	return c
}

func (p *parser) parseInterfaceDeclaration(mods []ast.Modifier) *ast.InterfaceDeclaration {
	decl := &ast.InterfaceDeclaration{Modifiers: mods, InterfacePos: p.pos}
	p.next()
	decl.Name = p.parseIdentName()
	decl.TypeParams = p.parseOptionalTypeParameters()
	decl.Heritage = p.parseHeritageClauses()
	decl.LBrace = p.expect(token.LBRACE)
	var members []ast.TypeMember
	for !p.isAtListTerminator(TypeMembers) {
		members = append(members, p.parseTypeMember(0))
		parseTypeMemberSeparator(p)
	}
	decl.Members = ast.NodeArray[ast.TypeMember]{Elements: members, ListPos: decl.LBrace, ListEnd: p.pos}
	decl.RBrace = p.expect(token.RBRACE)
	return decl
}

func (p *parser) parseTypeAliasDeclaration(mods []ast.Modifier) *ast.TypeAliasDeclaration {
	decl := &ast.TypeAliasDeclaration{Modifiers: mods, TypePos: p.pos}
	p.next()
	decl.Name = p.parseIdentName()
	decl.TypeParams = p.parseOptionalTypeParameters()
	decl.EqualsToken = p.expect(token.EQ)
	decl.Type = p.parseType(0)
	decl.Semicolon = p.parseSemicolon()
	return decl
}

func (p *parser) parseEnumDeclaration(mods []ast.Modifier, constPos token.Pos) *ast.EnumDeclaration {
	if constPos != token.NoPos {
		mods = append(mods, ast.Modifier{Pos: constPos, Kind: token.CONST})
		p.next() // const
	}
	decl := &ast.EnumDeclaration{Modifiers: mods, EnumPos: p.pos}
	p.next()
	decl.Name = p.parseIdentName()
	decl.LBrace = p.expect(token.LBRACE)
	members := parseCommaList(p, EnumMembers, token.RBRACE, func() *ast.EnumMember {
		return p.parseEnumMember()
	})
	members.ListPos, members.ListEnd = decl.LBrace, p.pos
	decl.Members = members
	decl.RBrace = p.expect(token.RBRACE)
	return decl
}

func (p *parser) parseEnumMember() *ast.EnumMember {
	m := &ast.EnumMember{Name: p.parsePropertyName()}
	if p.tok == token.EQ {
		m.EqualsToken = p.pos
		p.next()
		m.Initializer = p.parseAssignExpr(0)
	}
	return m
}

// parseModuleDeclaration parses "namespace A { ... }", "module
// \"name\" { ... }", and "declare global { ... }". A dotted namespace
// name ("namespace A.B.C { ... }") is sugar for a chain of nested,
// implicitly exported namespaces, so it is desugared here into nested
// ModuleDeclaration/ModuleBlock pairs rather than modeled with a
// dedicated qualified-name node.
func (p *parser) parseModuleDeclaration(mods []ast.Modifier, flags ContextFlags) *ast.ModuleDeclaration {
	decl := &ast.ModuleDeclaration{Modifiers: mods, KeywordPos: p.pos}
	if p.tok == token.GLOBAL {
		decl.Global = true
		p.next()
		decl.Body = p.parseModuleBody(flags, mods)
		return decl
	}

	p.next() // namespace/module
	if p.tok == token.STRING {
		decl.Name = p.parseStringLit()
		decl.Body = p.parseModuleBody(flags, mods)
		return decl
	}

	decl.Name = p.parseIdentName()
	if p.tok != token.DOT {
		decl.Body = p.parseModuleBody(flags, mods)
		return decl
	}

	p.next()
	inner := p.parseNestedModuleDeclaration(flags)
	decl.Body = &ast.ModuleBlock{
		LBrace:     inner.Pos(),
		Statements: ast.NodeArray[ast.Stmt]{Elements: []ast.Stmt{inner}, ListPos: inner.Pos(), ListEnd: inner.End()},
		RBrace:     inner.End(),
	}
	return decl
}

// parseNestedModuleDeclaration parses one segment of a dotted
// namespace name chain, recursing until the final segment, which owns
// the real body block.
func (p *parser) parseNestedModuleDeclaration(flags ContextFlags) *ast.ModuleDeclaration {
	mods := []ast.Modifier{{Pos: p.pos, Kind: token.EXPORT}}
	decl := &ast.ModuleDeclaration{Modifiers: mods, KeywordPos: p.pos}
	decl.Name = p.parseIdentName()
	if p.tok == token.DOT {
		p.next()
		inner := p.parseNestedModuleDeclaration(flags)
		decl.Body = &ast.ModuleBlock{
			LBrace:     inner.Pos(),
			Statements: ast.NodeArray[ast.Stmt]{Elements: []ast.Stmt{inner}, ListPos: inner.Pos(), ListEnd: inner.End()},
			RBrace:     inner.End(),
		}
		return decl
	}
	decl.Body = p.parseModuleBody(flags, nil)
	return decl
}

func (p *parser) parseModuleBody(flags ContextFlags, mods []ast.Modifier) *ast.ModuleBlock {
	bodyFlags := flags.with(FAmbient, hasModifier(mods, token.DECLARE))
	if p.tok != token.LBRACE {
		p.parseSemicolon()
		return nil
	}
	lbrace := p.pos
	p.next()
	stmts := p.parseSourceElements(bodyFlags, true)
	rbrace := p.expect(token.RBRACE)
	return &ast.ModuleBlock{LBrace: lbrace, Statements: stmts, RBrace: rbrace}
}

func (p *parser) parseImportDeclaration(mods []ast.Modifier) ast.Stmt {
	return p.parseImportEqualsOrDeclaration(mods)
}

// parseImportEqualsOrDeclaration disambiguates "import Name =
// require(...)"/"import Name = A.B" from an ordinary "import Clause
// from \"spec\"" after the common "import" keyword and an optional
// leading "type" have been consumed.
func (p *parser) parseImportEqualsOrDeclaration(mods []ast.Modifier) ast.Stmt {
	importPos := p.pos
	p.next()

	isTypeOnly := false
	var typePos token.Pos
	if p.tok == token.TYPE {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok != token.FROM && p.tok != token.EQ && p.tok != token.COMMA
		}); ok {
			isTypeOnly = true
			typePos = p.pos
			p.next()
		}
	}

	if p.tok == token.STRING {
		spec := p.parseStringLit()
		attrs := p.parseImportAttributesOpt()
		semi := p.parseSemicolon()
		return &ast.ImportDeclaration{ImportPos: importPos, ModuleSpec: spec, Attributes: attrs, Semicolon: semi}
	}

	if (p.tok == token.IDENT || token.IsContextualKeyword(p.tok)) && !isTypeOnly {
		if eq, ok := p.tryParseImportEquals(mods, importPos); ok {
			return eq
		}
	}

	clause := &ast.ImportClause{IsTypeOnly: isTypeOnly, TypePos: typePos}
	switch {
	case p.tok == token.IDENT || token.IsContextualKeyword(p.tok):
		clause.Default = p.parseIdentName()
		if p.tok == token.COMMA {
			p.next()
			p.parseImportClauseTail(clause)
		}
	default:
		p.parseImportClauseTail(clause)
	}

	p.expect(token.FROM)
	spec := p.parseStringLit()
	attrs := p.parseImportAttributesOpt()
	semi := p.parseSemicolon()
	return &ast.ImportDeclaration{ImportPos: importPos, Clause: clause, ModuleSpec: spec, Attributes: attrs, Semicolon: semi}
}

func (p *parser) parseImportClauseTail(clause *ast.ImportClause) {
	if p.tok == token.STAR {
		p.next()
		p.expect(token.AS)
		clause.NamespaceName = p.parseIdentName()
		return
	}
	clause.LBrace = p.expect(token.LBRACE)
	named := parseCommaList(p, ImportOrExportSpecifiers, token.RBRACE, func() *ast.ImportSpecifier {
		return p.parseImportSpecifier()
	})
	clause.Named = &named
	clause.RBrace = p.expect(token.RBRACE)
}

func (p *parser) parseImportSpecifier() *ast.ImportSpecifier {
	spec := &ast.ImportSpecifier{}
	if p.tok == token.TYPE {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok != token.AS && p.tok != token.COMMA && p.tok != token.RBRACE
		}); ok {
			spec.IsTypeOnly = true
			spec.TypePos = p.pos
			p.next()
		}
	}
	spec.Name = p.parseIdentName()
	if p.tok == token.AS {
		spec.AsPos = p.pos
		p.next()
		spec.Alias = p.parseIdentName()
	}
	return spec
}

func (p *parser) tryParseImportEquals(mods []ast.Modifier, importPos token.Pos) (*ast.ImportEqualsDeclaration, bool) {
	return tryParse(p, func() (*ast.ImportEqualsDeclaration, bool) {
		name := p.parseIdentName()
		if p.tok != token.EQ {
			return nil, false
		}
		eq := p.pos
		p.next()
		var ref ast.Node
		if p.tok == token.REQUIRE {
			p.next()
			p.expect(token.LPAREN)
			spec := p.parseStringLit()
			p.expect(token.RPAREN)
			ref = spec
		} else {
			ref = p.parseEntityName()
		}
		semi := p.parseSemicolon()
		return &ast.ImportEqualsDeclaration{
			Modifiers: mods, ImportPos: importPos, Name: name,
			EqualsToken: eq, ModuleRef: ref, Semicolon: semi,
		}, true
	})
}

func (p *parser) parseImportAttributesOpt() *ast.NodeArray[*ast.PropertyAssignment] {
	if p.tok != token.WITH && p.tok != token.ASSERT {
		return nil
	}
	p.next()
	p.expect(token.LBRACE)
	attrs := parseCommaList(p, ObjectLiteralMembers, token.RBRACE, func() *ast.PropertyAssignment {
		name := p.parsePropertyName()
		colon := p.expect(token.COLON)
		value := p.parseAssignExpr(0)
		return &ast.PropertyAssignment{Name: name, Colon: colon, Value: value}
	})
	p.expect(token.RBRACE)
	return &attrs
}

func (p *parser) parseExportDeclaration(flags ContextFlags) ast.Stmt {
	exportPos := p.pos
	p.next()

	if p.tok == token.EQ {
		eq := p.pos
		p.next()
		expr := p.parseExpr(flags.with(FIn, true))
		return &ast.ExportAssignment{ExportPos: exportPos, IsExportEquals: true, EqualsToken: eq, Expr: expr, Semicolon: p.parseSemicolon()}
	}
	if p.tok == token.DEFAULT {
		defaultPos := p.pos
		p.next()
		if p.isStartOfDefaultExportDeclaration() {
			return p.parseDefaultExportDeclaration(exportPos, defaultPos, flags)
		}
		expr := p.parseAssignExpr(flags.with(FIn, true))
		return &ast.ExportAssignment{ExportPos: exportPos, DefaultPos: defaultPos, Expr: expr, Semicolon: p.parseSemicolon()}
	}

	isTypeOnly := false
	var typePos token.Pos
	if p.tok == token.TYPE {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok == token.LBRACE || p.tok == token.STAR
		}); ok {
			isTypeOnly = true
			typePos = p.pos
			p.next()
		}
	}

	if p.tok == token.STAR {
		star := p.pos
		p.next()
		d := &ast.ExportDeclaration{ExportPos: exportPos, IsTypeOnly: isTypeOnly, TypePos: typePos, Star: star}
		if p.tok == token.AS {
			d.AsPos = p.pos
			p.next()
			d.Namespace = p.parseIdentName()
		}
		p.expect(token.FROM)
		d.FromPos = p.pos
		d.ModuleSpec = p.parseStringLit()
		d.Semicolon = p.parseSemicolon()
		return d
	}

	if p.tok == token.LBRACE {
		lbrace := p.pos
		p.next()
		named := parseCommaList(p, ImportOrExportSpecifiers, token.RBRACE, func() *ast.ExportSpecifier {
			return p.parseExportSpecifier()
		})
		rbrace := p.expect(token.RBRACE)
		d := &ast.ExportDeclaration{ExportPos: exportPos, IsTypeOnly: isTypeOnly, TypePos: typePos, LBrace: lbrace, Named: &named, RBrace: rbrace}
		if p.tok == token.FROM {
			d.FromPos = p.pos
			p.next()
			d.ModuleSpec = p.parseStringLit()
		}
		d.Semicolon = p.parseSemicolon()
		return d
	}

	mods := []ast.Modifier{{Pos: exportPos, Kind: token.EXPORT}}
	if more, ok := p.tryParseLeadingModifiers(); ok {
		mods = append(mods, more...)
	}
	return p.parseModifiedDeclaration(mods, flags)
}

func (p *parser) isStartOfDefaultExportDeclaration() bool {
	switch p.tok {
	case token.FUNCTION, token.CLASS, token.AT:
		return true
	case token.ASYNC:
		return lookAheadBool(p, func() bool {
			p.next()
			return p.tok == token.FUNCTION && !p.scanner.HasPrecedingLineBreak()
		})
	case token.ABSTRACT:
		return lookAheadBool(p, func() bool {
			p.next()
			return p.tok == token.CLASS
		})
	case token.INTERFACE:
		return true
	}
	return false
}

func (p *parser) parseDefaultExportDeclaration(exportPos, defaultPos token.Pos, flags ContextFlags) ast.Stmt {
	mods := []ast.Modifier{{Pos: exportPos, Kind: token.EXPORT}, {Pos: defaultPos, Kind: token.DEFAULT}}
	switch p.tok {
	case token.FUNCTION:
		return p.parseFunctionDeclaration(mods, flags)
	case token.CLASS:
		return p.parseClassDeclaration(mods, flags)
	case token.INTERFACE:
		return p.parseInterfaceDeclaration(mods)
	case token.AT:
		return p.parseDecoratedDeclaration(flags)
	case token.ABSTRACT:
		p.next()
		return p.parseClassDeclaration(append(mods, ast.Modifier{Kind: token.ABSTRACT}), flags)
	case token.ASYNC:
		asyncPos := p.pos
		p.next()
		fn := p.parseFunctionDeclaration(append(mods, ast.Modifier{Pos: asyncPos, Kind: token.ASYNC}), flags)
		return fn
	default:
		return p.parseFunctionDeclaration(mods, flags)
	}
}

func (p *parser) parseExportSpecifier() *ast.ExportSpecifier {
	spec := &ast.ExportSpecifier{}
	if p.tok == token.TYPE {
		if ok := lookAheadBool(p, func() bool {
			p.next()
			return p.tok != token.AS && p.tok != token.COMMA && p.tok != token.RBRACE
		}); ok {
			spec.IsTypeOnly = true
			spec.TypePos = p.pos
			p.next()
		}
	}
	spec.Name = p.parseIdentName()
	if p.tok == token.AS {
		spec.AsPos = p.pos
		p.next()
		spec.Alias = p.parseIdentName()
	}
	return spec
}
