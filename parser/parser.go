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

// Package parser implements a recursive-descent parser for TypeScript
// source text. It turns the token stream produced by package scanner
// into the AST node types declared in package ast, preserving source
// positions and attaching comments along the way.
package parser

import (
	"fmt"

	"github.com/typeforge/tsparse/ast"
	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/scanner"
	"github.com/typeforge/tsparse/token"
)

// parser holds all mutable state for one parse. Nothing about it is
// safe for concurrent use; callers that want to parse many files
// concurrently should use one parser per goroutine, which is exactly
// what ParseSourceFile does.
type parser struct {
	file    *token.File
	src     []byte
	errors  diagnostic.List
	scanner scanner.Scanner

	mode      mode
	panicking bool

	// Comments
	leadComment *ast.CommentGroup
	comments    *commentState

	// One-token lookahead.
	pos token.Pos
	tok token.Token
	lit string
	raw string // exact source text of the current token; see scanner.TokenText

	// Context flags propagated through recursive descent; see flags.go.
	// Unlike parsingContext and parseErrorBeforeNextFinishedNode, these
	// never need explicit save/restore around speculative parses: they
	// are ordinary Go locals threaded as parameters, not parser fields,
	// for every production that needs to consult or change them. The
	// field here only holds the ambient default new top-level
	// productions start from.
	contextFlags ContextFlags

	// parsingContext is which of the ~25 list productions (flags.go's
	// ParsingContext) the parser is currently inside; list loops set and
	// restore it. isAtListTerminator takes the context as an argument
	// rather than reading this field.
	parsingContext ParsingContext

	// parseErrorBeforeNextFinishedNode mirrors the sticky bit from
	// TypeScript's own parser: once
	// set, the next node closeNode finishes is marked HasError, after
	// which the bit resets.
	parseErrorBeforeNextFinishedNode bool

	// Error-recovery synchronization state, to guarantee list-parsing
	// loops make progress even when every recovery heuristic fails.
	syncPos token.Pos
	syncCnt int

	// target and scriptKind configure the SourceFile's bookkeeping
	// fields; scriptKind defaults to whatever the filename's extension
	// implies when left at ast.ScriptKindUnknown. setExternalModuleIndicator,
	// if set, overrides the parser's own top-level import/export scan
	// when deciding what makes the file an external module.
	target                     ast.ScriptTarget
	scriptKind                 ast.ScriptKind
	setExternalModuleIndicator func(*ast.SourceFile) ast.Node

	// identifiers interns identifier spellings for SourceFile.Identifiers.
	identifiers map[string]string
	// identifierCount and nodeCount mirror SourceFile.IdentifierCount
	// and SourceFile.NodeCount.
	identifierCount int
	nodeCount       int

	// containsPossibleTopLevelAwait is set the first time the parser
	// sees an await expression at the top level of the file; it drives
	// the post-parse re-parse pass in reparseTopLevelAwait.
	containsPossibleTopLevelAwait bool
	// topLevelAwaitMarks/topLevelAwaitStmts record, for each top-level
	// statement where containsPossibleTopLevelAwait first became true,
	// a mark at that statement's start and its index in the eventual
	// SourceFile.Statements slice, so reparseTopLevelAwait can revisit
	// just those statements once the file's module-ness is known.
	topLevelAwaitMarks []mark
	topLevelAwaitStmts []int

	// atFileTopLevel is true only while parsing statements directly in
	// the file's own source-elements list, as opposed to inside a
	// block, module body, or function body nested within it; see
	// parseSourceElements.
	atFileTopLevel bool
}

// mode is a bitset of optional parsing behaviors.
type mode uint

const (
	parseCommentsMode mode = 1 << iota
	allErrorsMode
	jsxMode
)

// Option configures a parse; see ParseComments, AllErrors, and JSX.
type Option func(p *parser)

var (
	// ParseComments causes comments to be attached to the AST instead
	// of silently discarded.
	ParseComments Option = func(p *parser) { p.mode |= parseCommentsMode }

	// AllErrors causes every diagnostic to be reported, not just the
	// first one per source line.
	AllErrors Option = func(p *parser) { p.mode |= allErrorsMode }

	// JSX puts the scanner and parser in JSX mode, as appropriate for a
	// .tsx file.
	JSX Option = func(p *parser) { p.mode |= jsxMode }
)

// Target sets the ECMAScript version SourceFile.LanguageVersion
// reports. Callers that don't set it get ast.Latest.
func Target(t ast.ScriptTarget) Option {
	return func(p *parser) { p.target = t }
}

// Kind overrides the script kind ParseSourceFile would otherwise infer
// from the filename's extension.
func Kind(k ast.ScriptKind) Option {
	return func(p *parser) { p.scriptKind = k }
}

// SetExternalModuleIndicator overrides how the parser decides which
// node makes a file an external module. Without this option the
// parser uses its own default: the first top-level import or export
// statement, if any.
func SetExternalModuleIndicator(fn func(*ast.SourceFile) ast.Node) Option {
	return func(p *parser) { p.setExternalModuleIndicator = fn }
}

func (p *parser) init(filename string, src []byte, opts []Option) {
	p.file = token.NewFile(filename, -1, len(src))
	p.src = src
	for _, o := range opts {
		o(p)
	}

	var sm scanner.Mode
	if p.mode&parseCommentsMode != 0 {
		sm |= scanner.ScanComments
	}
	if p.mode&jsxMode != 0 {
		sm |= scanner.JSX
	}
	p.scanner.Init(p.file, src, p.errors.Handle, sm)

	p.comments = &commentState{pos: -1}
	p.parsingContext = SourceElements

	// FIn is on everywhere except a for-loop head's init clause; see
	// flags.go. Every other bit's zero value is already the ambient
	// default, so this is the one that needs seeding explicitly.
	p.contextFlags = FIn

	p.next()
}

// ----------------------------------------------------------------------------
// Comment attachment.
//
// Grounded on cue/parser's commentState stack: a node in progress owns
// a commentState that collects the comment groups encountered while it
// was being built. openList/closeList let a list production (a
// parameter list, a statement list) treat its whole span as a single
// comment slot so comments don't get misattached to punctuation.

type commentState struct {
	parent *commentState
	pos    int8
	groups []*ast.CommentGroup

	isList    int
	lastChild ast.Node
	lastPos   int8
}

func (p *parser) openComments() *commentState {
	if c := p.comments; c != nil && c.isList > 0 && c.lastChild != nil {
		for _, cg := range c.groups {
			c.lastChild.AddComment(cg)
		}
		c.groups = nil
		c.lastChild = nil
	}
	c := &commentState{parent: p.comments}
	if p.leadComment != nil {
		c.groups = []*ast.CommentGroup{p.leadComment}
	}
	p.comments = c
	p.leadComment = nil
	return c
}

func (p *parser) openList() {
	if p.comments.isList > 0 {
		p.comments.isList++
		return
	}
	p.comments = &commentState{parent: p.comments, isList: 1}
}

func (c *commentState) add(g *ast.CommentGroup) {
	c.groups = append(c.groups, g)
}

func (p *parser) closeList() {
	c := p.comments
	if c.lastChild != nil {
		for _, cg := range c.groups {
			c.lastChild.AddComment(cg)
		}
		c.groups = nil
	}
	c.isList--
	if c.isList == 0 {
		parent := c.parent
		parent.groups = append(parent.groups, c.groups...)
		parent.pos++
		p.comments = parent
	}
}

// closeNode finishes n: it attaches every comment collected since the
// matching openComments, applies the sticky parse-error bit, and pops
// the comment stack.
func (c *commentState) closeNode(p *parser, n ast.Node) ast.Node {
	if n != nil {
		p.nodeCount++
	}
	if p.comments == c {
		p.comments = c.parent
		if c.parent != nil {
			c.parent.lastChild = n
			c.parent.lastPos = c.pos
			c.parent.pos++
		}
	}
	for _, cg := range c.groups {
		if n != nil {
			n.AddComment(cg)
		}
	}
	c.groups = nil
	if p.parseErrorBeforeNextFinishedNode && n != nil {
		ast.MarkError(n)
		p.parseErrorBeforeNextFinishedNode = false
	}
	return n
}

// ----------------------------------------------------------------------------
// Token stream plumbing.

func (p *parser) next0() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
	p.raw = p.scanner.TokenText()
	if p.tok == token.IDENT {
		p.lit = p.intern(p.lit)
		p.identifierCount++
	}
}

// intern returns the canonical instance of s across this parse,
// allocating its table lazily since most callers only ever construct
// SourceFile.Identifiers from it, never touch it directly.
func (p *parser) intern(s string) string {
	if p.identifiers == nil {
		p.identifiers = make(map[string]string)
	}
	if v, ok := p.identifiers[s]; ok {
		return v
	}
	p.identifiers[s] = s
	return s
}

func (p *parser) consumeComment() *ast.Comment {
	c := &ast.Comment{Slash: p.pos, Text: p.lit, Block: p.lit[1] == '*'}
	p.next0()
	return c
}

func (p *parser) consumeCommentGroup() *ast.CommentGroup {
	startLine := p.file.Line(p.pos)
	var list []*ast.Comment
	for p.tok == token.COMMENT && p.file.Line(p.pos) <= startLine+1 {
		startLine = p.file.Line(p.pos)
		list = append(list, p.consumeComment())
	}
	return &ast.CommentGroup{List: list}
}

// next advances to the next non-comment token, collecting any comments
// encountered along the way as lead or line comments (see
// cue/parser.(*parser).next for the same line-adjacency heuristic).
func (p *parser) next() {
	if p.leadComment != nil {
		p.comments.add(p.leadComment)
		p.leadComment = nil
	}
	prevLine := p.file.Line(p.pos)
	p.next0()

	if p.tok != token.COMMENT {
		return
	}

	sameLine := p.file.Line(p.pos) == prevLine
	var group *ast.CommentGroup
	for p.tok == token.COMMENT {
		g := p.consumeCommentGroup()
		if group != nil {
			p.comments.add(group)
		}
		group = g
	}
	if group == nil {
		return
	}
	switch {
	case sameLine:
		group.Line = true
		p.comments.add(group)
	case p.tok != token.EOF:
		group.Doc = true
		p.leadComment = group
	default:
		p.comments.add(group)
	}
}

// ----------------------------------------------------------------------------
// Errors.

// errf records a diagnostic at pos. Unless AllErrors is set, it
// discards errors reported on the same line as the last one recorded
// (almost always noise from the same underlying mistake) and bails
// out of the parse entirely once the count passes a threshold, since
// a source file that has gone this wrong is more often a non-
// TypeScript file fed in by mistake than one worth continuing to
// recover from token by token.
func (p *parser) errf(pos token.Pos, format string, args ...interface{}) {
	if p.mode&allErrorsMode == 0 {
		n := len(p.errors)
		if n > 0 && p.errors[n-1].Position().Line() == pos.Line() {
			return
		}
		if n > 10 {
			p.panicking = true
			panic(bailout{})
		}
	}
	p.parseErrorBeforeNextFinishedNode = true
	p.errors.AddNewf(pos, format, args...)
}

// bailout is the panic value errf throws once too many errors have
// piled up; only ParseSourceFile's own recover is meant to catch it.
type bailout struct{}

func (p *parser) errorExpected(pos token.Pos, want string) {
	if pos != p.pos {
		p.errf(pos, "expected %s", want)
		return
	}
	if p.tok.IsLiteral() {
		p.errf(pos, "expected %s, found %s %q", want, p.tok, p.lit)
	} else {
		p.errf(pos, "expected %s, found '%s'", want, p.tok)
	}
}

// expect consumes tok, recording an error if the current token doesn't
// match. Like cue/parser's expect, it always advances: callers rely on
// that to guarantee a list-parsing loop makes progress even when a
// required token is missing (the standard "insert a missing token and
// carry on" recovery. The returned position is always
// where tok was expected, whether or not it was actually there.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
	}
	p.next()
	return pos
}

// expectNoAdvance is expect without the forced advance, for the rare
// callsite that must leave an unexpected token in place for a
// different production to consume (e.g. probing for an optional
// terminator already handled by the caller's own loop).
func (p *parser) expectNoAdvance(tok token.Token) (token.Pos, bool) {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
		return pos, false
	}
	p.next()
	return pos, true
}

func (p *parser) at(tok token.Token) bool { return p.tok == tok }

// sync advances the scanner until it sees a token in stop, or EOF,
// guaranteeing list-parsing loops terminate even when no recovery
// heuristic applies (grounded on cue/parser's syncExpr / TypeScript's
// abortParsingListOrMoveToNextToken).
func (p *parser) sync(stop ...token.Token) {
	for {
		for _, t := range stop {
			if p.tok == t {
				return
			}
		}
		if p.tok == token.EOF {
			return
		}
		if p.pos == p.syncPos {
			p.syncCnt++
			if p.syncCnt > 10 {
				p.next()
				p.syncCnt = 0
			}
		} else {
			p.syncPos = p.pos
			p.syncCnt = 0
		}
		p.next()
	}
}

func (p *parser) badExprFrom(from token.Pos) *ast.BadExpr {
	return &ast.BadExpr{From: from, To: p.pos}
}

func (p *parser) badStmtFrom(from token.Pos) *ast.BadStmt {
	return &ast.BadStmt{From: from, To: p.pos}
}

func (p *parser) badTypeFrom(from token.Pos) *ast.BadType {
	return &ast.BadType{From: from, To: p.pos}
}

// unreachable is used in exhaustive switches the compiler cannot prove
// exhaustive on its own (token kinds), so a future added token doesn't
// silently fall through.
func unreachable(tok token.Token) error {
	return fmt.Errorf("parser: unhandled token %s", tok)
}
