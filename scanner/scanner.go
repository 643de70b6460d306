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

// Package scanner implements a scanner for TypeScript source text. It
// takes a []byte as source which can then be tokenized through
// repeated calls to Scan. Certain tokens are ambiguous outside the
// context the parser supplies (">>" vs two ">", "/" vs the start of a
// regex, a template continuation after a "}"); for those the parser
// calls one of the ReScan* entry points to rewind and re-lex under a
// different sub-grammar, instead of the scanner guessing.
package scanner

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/typeforge/tsparse/classifier"
	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/token"
)

// A Mode value is a set of flags controlling scanner behavior.
type Mode uint

const (
	// ScanComments makes Scan return COMMENT tokens instead of
	// silently skipping them.
	ScanComments Mode = 1 << iota
	// JSX puts the scanner in a mode where ScanJSXToken is a valid
	// call between tag boundaries.
	JSX
)

// TokenFlags records metadata about the most recently scanned token
// that does not fit the (pos, tok, lit) triple: whether a line break
// preceded it, whether a numeric literal used a now-discouraged octal
// escape, and similar scanner-local facts the parser consults when
// applying grammar rules that are sensitive to layout.
type TokenFlags uint32

const (
	TFNone TokenFlags = 0
	// PrecedingLineBreak is set when the token was preceded, possibly
	// after whitespace and comments, by at least one line terminator.
	// The parser's automatic-semicolon-insertion and no-line-break
	// checks (e.g. after `return`, before `=>`) both consult this.
	PrecedingLineBreak TokenFlags = 1 << iota
	Unterminated
	ContainsEscape
	OctalEscape
	ContainsSeparator // numeric literal used '_' digit separators
	BinarySpecifier
	OctalSpecifier
	HexSpecifier
	ExtendedUnicodeEscape
	// LegacyOctalSpecifier marks a numeric literal written as a leading
	// '0' followed only by octal digits, with no '0o' prefix (e.g.
	// 0755). Distinct from OctalSpecifier so callers can flag the form
	// as discouraged without losing the fact that it parsed as octal.
	LegacyOctalSpecifier
)

// CommentDirectiveKind distinguishes the single-line comment
// directives the scanner recognizes while skipping trivia.
type CommentDirectiveKind int

const (
	// DirectiveExpectError marks a "// @ts-expect-error" comment.
	DirectiveExpectError CommentDirectiveKind = iota
	// DirectiveIgnore marks a "// @ts-ignore" comment.
	DirectiveIgnore
)

// CommentDirective is one directive comment collected during a scan,
// along with the position of the comment itself.
type CommentDirective struct {
	Kind CommentDirectiveKind
	Pos  token.Pos
}

const bom = 0xFEFF

// A Scanner holds the scanner's state while processing a source file.
// It can be embedded in a larger structure but must be initialized
// with Init before use.
type Scanner struct {
	file *token.File
	dir  string
	src  []byte
	err  diagnostic.Handler
	mode Mode

	ch       rune
	offset   int
	rdOffset int

	tokenPos   int
	tokenFlags TokenFlags

	// templateStack tracks nested `${ ... }` substitutions so
	// ReScanTemplateToken knows whether a `}` resumes a template
	// literal or is an ordinary brace.
	templateStack []rune

	// directives collects comment directives found while skipping
	// line comments, in source order.
	directives []CommentDirective

	ErrorCount int
}

// Init prepares s to tokenize src, whose length must equal file.Size().
func (s *Scanner) Init(file *token.File, src []byte, err diagnostic.Handler, mode Mode) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.dir, _ = filepath.Split(file.Name())
	s.src = src
	s.err = err
	s.mode = mode

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.tokenFlags = TFNone
	s.templateStack = s.templateStack[:0]
	s.directives = s.directives[:0]
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next()
	}
}

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= utf8.RuneSelf:
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = -1
	}
}

// peek returns the rune at s.rdOffset without consuming it, or -1 at
// end of file.
func (s *Scanner) peek() rune {
	if s.rdOffset < len(s.src) {
		if s.src[s.rdOffset] < utf8.RuneSelf {
			return rune(s.src[s.rdOffset])
		}
		r, _ := utf8.DecodeRune(s.src[s.rdOffset:])
		return r
	}
	return -1
}

func (s *Scanner) error(offs int, format string, args ...interface{}) {
	if s.err != nil {
		s.err(diagnostic.Newf(s.file.Pos(offs, 0), format, args...))
	}
	s.ErrorCount++
}

// TokenFlags returns the flag bits accumulated for the token most
// recently returned by Scan.
func (s *Scanner) TokenFlags() TokenFlags { return s.tokenFlags }

// HasPrecedingLineBreak reports whether the current token was preceded
// by a line terminator.
func (s *Scanner) HasPrecedingLineBreak() bool {
	return s.tokenFlags&PrecedingLineBreak != 0
}

// Directives returns every comment directive collected so far, in
// source order.
func (s *Scanner) Directives() []CommentDirective { return s.directives }

// Pos returns the position of the start of the current text position,
// outside of Scan, useful for diagnostics anchored to "where we are
// now" rather than to a specific token.
func (s *Scanner) Pos() token.Pos { return s.file.Pos(s.offset, 0) }

// TokenText returns the exact source bytes of the token most recently
// returned by Scan, unlike the cooked/decoded lit value: callers that
// need to reproduce a string or template literal's original spelling
// (quote style, escapes, digit separators) read it from here rather
// than from lit.
func (s *Scanner) TokenText() string { return string(s.src[s.tokenPos:s.offset]) }

// Snapshot captures enough scanner state to resume scanning from an
// earlier point. The parser's speculative lookahead/tryParse uses this to
// implement lookahead and tryParse without re-scanning from the file
// start.
type Snapshot struct {
	ch         rune
	offset     int
	rdOffset   int
	tokenFlags TokenFlags
	lineCount  int
}

// Save returns a Snapshot of the scanner's current position.
func (s *Scanner) Save() Snapshot {
	return Snapshot{
		ch:         s.ch,
		offset:     s.offset,
		rdOffset:   s.rdOffset,
		tokenFlags: s.tokenFlags,
		lineCount:  s.file.LineCount(),
	}
}

// Restore rewinds the scanner to a previously captured Snapshot.
// Restoring never removes line-offset entries already recorded in the
// file's line table; AddLine is idempotent for offsets already seen,
// so re-scanning the rewound span simply re-adds the same offsets.
func (s *Scanner) Restore(snap Snapshot) {
	s.ch = snap.ch
	s.offset = snap.offset
	s.rdOffset = snap.rdOffset
	s.tokenFlags = snap.tokenFlags
}

// SetTextPos rewinds the scanner to an arbitrary byte offset, used by
// the ReScan* entry points to re-lex the current token under a
// different sub-grammar.
func (s *Scanner) SetTextPos(pos int) {
	s.offset = pos
	s.rdOffset = pos
	s.tokenFlags = TFNone
	s.next()
}

// skipTrivia consumes whitespace and, unless the scanner is in
// ScanComments mode, comments too. In ScanComments mode it stops right
// before a comment so Scan can emit it as a COMMENT token.
func (s *Scanner) skipTrivia() (atComment bool) {
	for {
		switch {
		case s.ch == '\n' || s.ch == '\r' || classifier.IsLineBreak(s.ch):
			if s.ch == '\n' {
				s.file.AddLine(s.offset + 1)
			}
			s.tokenFlags |= PrecedingLineBreak
			s.next()
		case classifier.IsWhiteSpace(s.ch):
			s.next()
		case s.ch == '/' && s.peek() == '/':
			if s.mode&ScanComments != 0 {
				return true
			}
			s.scanLineComment(false)
		case s.ch == '/' && s.peek() == '*':
			if s.mode&ScanComments != 0 {
				return true
			}
			s.scanBlockComment(false)
		default:
			return false
		}
	}
}

func (s *Scanner) scanLineComment(emit bool) (token.Token, string) {
	offs := s.offset
	s.next()
	s.next()
	for s.ch != '\n' && s.ch >= 0 && !classifier.IsLineBreak(s.ch) {
		s.next()
	}
	text := string(s.src[offs:s.offset])
	s.recordCommentDirective(offs, text)
	if emit {
		return token.COMMENT, text
	}
	return token.ILLEGAL, ""
}

// recordCommentDirective checks a just-scanned line comment for one of
// the two directives callers care about and, if found, appends it to
// s.directives. The "//" prefix and any leading space before "@ts-..."
// are both tolerated.
func (s *Scanner) recordCommentDirective(offs int, text string) {
	body := strings.TrimSpace(strings.TrimPrefix(text, "//"))
	var kind CommentDirectiveKind
	switch {
	case strings.HasPrefix(body, "@ts-expect-error"):
		kind = DirectiveExpectError
	case strings.HasPrefix(body, "@ts-ignore"):
		kind = DirectiveIgnore
	default:
		return
	}
	s.directives = append(s.directives, CommentDirective{Kind: kind, Pos: s.file.Pos(offs, 0)})
}

func (s *Scanner) scanBlockComment(emit bool) (token.Token, string) {
	offs := s.offset
	s.next()
	s.next()
	terminated := false
	for s.ch >= 0 {
		if s.ch == '\n' {
			s.file.AddLine(s.offset + 1)
		}
		if s.ch == '*' && s.peek() == '/' {
			s.next()
			s.next()
			terminated = true
			break
		}
		s.next()
	}
	if !terminated {
		s.error(offs, "comment is not terminated")
		s.tokenFlags |= Unterminated
	}
	if emit {
		return token.COMMENT, string(s.src[offs:s.offset])
	}
	return token.ILLEGAL, ""
}

func (s *Scanner) scanIdentifierParts() string {
	offs := s.offset
	for classifier.IsIdentifierPart(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

// Scan reads the next token and returns its start position, kind, and
// literal text. The literal is the decoded text for string/template
// fragments, the raw spelling for identifiers, keywords, and numbers,
// and the spelling of most punctuation; the operators built through
// switch2 (*, *=, /, /=, %, %=, ^, ^=, <<, <<=, >>>, >>>=) and EOF come
// back with an empty literal.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
	s.tokenFlags = TFNone
	atComment := s.skipTrivia()

	offset := s.offset
	s.tokenPos = offset
	pos = s.file.Pos(offset, 0)

	if atComment {
		if s.ch == '/' && s.peek() == '/' {
			tok, lit = s.scanLineComment(true)
		} else {
			tok, lit = s.scanBlockComment(true)
		}
		return pos, tok, lit
	}

	switch ch := s.ch; {
	case ch < 0:
		tok = token.EOF
	case classifier.IsIdentifierStart(ch):
		tok, lit = s.scanIdentifierOrKeyword()
	case classifier.IsDigit(ch):
		tok, lit = s.scanNumber()
	case ch == '.' && classifier.IsDigit(s.peek()):
		tok, lit = s.scanNumber()
	default:
		tok, lit = s.scanPunctuation()
	}
	return pos, tok, lit
}

func (s *Scanner) scanIdentifierOrKeyword() (token.Token, string) {
	offs := s.offset
	s.next()
	lit := string(s.src[offs:s.offset]) + s.scanIdentifierParts()
	return token.Lookup(lit), lit
}

func digitVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch == '_':
		return 0
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 16
}

func (s *Scanner) scanDigits(base int) {
	var lastWasSeparator bool
	for {
		if s.ch == '_' {
			s.tokenFlags |= ContainsSeparator
			lastWasSeparator = true
			s.next()
			continue
		}
		if digitVal(s.ch) >= base {
			break
		}
		lastWasSeparator = false
		s.next()
	}
	if lastWasSeparator {
		s.error(s.offset-1, "numeric separators are not allowed here")
	}
}

// scanNumber implements the numeric-literal grammar: decimal, hex,
// octal, binary, legacy octal, float, exponent, and BigInt suffix.
func (s *Scanner) scanNumber() (token.Token, string) {
	offs := s.offset
	tok := token.NUMBER

	if s.ch == '0' {
		switch {
		case s.peek() == 'x' || s.peek() == 'X':
			s.next()
			s.next()
			s.tokenFlags |= HexSpecifier
			s.scanDigits(16)
			return s.finishNumber(offs, tok)
		case s.peek() == 'b' || s.peek() == 'B':
			s.next()
			s.next()
			s.tokenFlags |= BinarySpecifier
			s.scanDigits(2)
			return s.finishNumber(offs, tok)
		case s.peek() == 'o' || s.peek() == 'O':
			s.next()
			s.next()
			s.tokenFlags |= OctalSpecifier
			s.scanDigits(8)
			return s.finishNumber(offs, tok)
		case classifier.IsOctalDigit(s.peek()):
			// A bare leading zero followed only by octal digits, with
			// no 'o' prefix: the legacy form carried over from before
			// ES2015 standardized 0o.
			s.next()
			s.tokenFlags |= LegacyOctalSpecifier
			s.scanDigits(8)
			return s.finishNumber(offs, tok)
		}
	}

	s.scanDigits(10)
	if s.ch == '.' {
		tok = token.NUMBER
		s.next()
		s.scanDigits(10)
	}
	if s.ch == 'e' || s.ch == 'E' {
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		s.scanDigits(10)
	}
	return s.finishNumber(offs, tok)
}

func (s *Scanner) finishNumber(offs int, tok token.Token) (token.Token, string) {
	if s.ch == 'n' {
		s.next()
		tok = token.BIGINT
	}
	if classifier.IsIdentifierStart(s.ch) {
		s.error(s.offset, "an identifier or keyword cannot immediately follow a numeric literal")
	}
	return tok, string(s.src[offs:s.offset])
}

// scanEscapeSequence decodes one escape sequence after a consumed
// backslash and appends the decoded rune(s) to buf, returning the
// updated buffer.
func (s *Scanner) scanEscapeSequence(buf []byte) []byte {
	start := s.offset
	switch s.ch {
	case 'a':
		buf = append(buf, 0x07)
		s.next()
	case 'b':
		buf = append(buf, '\b')
		s.next()
	case 'f':
		buf = append(buf, '\f')
		s.next()
	case 'n':
		buf = append(buf, '\n')
		s.next()
	case 'r':
		buf = append(buf, '\r')
		s.next()
	case 't':
		buf = append(buf, '\t')
		s.next()
	case 'v':
		buf = append(buf, '\v')
		s.next()
	case '0':
		if !classifier.IsDigit(s.peek()) {
			buf = append(buf, 0)
			s.next()
		} else {
			s.tokenFlags |= OctalEscape
			buf = utf8.AppendRune(buf, s.scanOctalEscape(start))
		}
	case '1', '2', '3', '4', '5', '6', '7':
		s.tokenFlags |= OctalEscape
		buf = utf8.AppendRune(buf, s.scanOctalEscape(start))
	case 'x':
		s.next()
		buf = utf8.AppendRune(buf, s.scanHexEscape(2))
	case 'u':
		s.next()
		buf = utf8.AppendRune(buf, s.scanUnicodeEscape())
	case '\r':
		s.next()
		if s.ch == '\n' {
			s.next()
		}
	case '\n':
		s.next()
	default:
		buf = utf8.AppendRune(buf, s.ch)
		s.next()
	}
	return buf
}

func (s *Scanner) scanOctalEscape(start int) rune {
	n := 0
	v := 0
	for n < 3 && classifier.IsOctalDigit(s.ch) {
		v = v*8 + int(s.ch-'0')
		s.next()
		n++
	}
	return rune(v)
}

func (s *Scanner) scanHexEscape(count int) rune {
	v := 0
	for i := 0; i < count; i++ {
		d := classifier.HexValue(s.ch)
		if d < 0 {
			s.error(s.offset, "hexadecimal digit expected")
			return utf8.RuneError
		}
		v = v*16 + d
		s.next()
	}
	return rune(v)
}

func (s *Scanner) scanUnicodeEscape() rune {
	if s.ch == '{' {
		s.next()
		v := 0
		for classifier.IsHexDigit(s.ch) {
			v = v*16 + classifier.HexValue(s.ch)
			s.next()
		}
		if s.ch == '}' {
			s.next()
		} else {
			s.error(s.offset, "unterminated unicode escape sequence")
		}
		s.tokenFlags |= ExtendedUnicodeEscape
		if v > utf8.MaxRune {
			s.error(s.offset, "an extended Unicode escape value must be between 0x0 and 0x10FFFF inclusive")
			return utf8.RuneError
		}
		return rune(v)
	}
	return s.scanHexEscape(4)
}

// scanString scans a single- or double-quoted string literal, quote
// already consumed, and returns its decoded value.
func (s *Scanner) scanString(quote rune) string {
	var buf []byte
	for {
		if s.ch == quote {
			s.next()
			break
		}
		if s.ch < 0 || classifier.IsLineBreak(s.ch) {
			s.error(s.offset, "unterminated string literal")
			s.tokenFlags |= Unterminated
			break
		}
		if s.ch == '\\' {
			s.next()
			buf = s.scanEscapeSequence(buf)
			continue
		}
		buf = utf8.AppendRune(buf, s.ch)
		s.next()
	}
	return string(buf)
}

// scanTemplateSpan scans the literal portion of a template, starting
// right after a backtick or a '}' that resumes a substitution, and
// stops at an unescaped backtick (producing a NO_SUBSTITUTION/TAIL
// token) or an unescaped "${" (producing a HEAD/MIDDLE token). The
// caller decides the final token kind from where scanning started and
// which terminator was hit.
func (s *Scanner) scanTemplateSpan() (text string, hitBacktick bool) {
	var buf []byte
	for {
		switch {
		case s.ch == '`':
			s.next()
			return string(buf), true
		case s.ch == '$' && s.peek() == '{':
			s.next()
			s.next()
			return string(buf), false
		case s.ch < 0:
			s.error(s.offset, "unterminated template literal")
			s.tokenFlags |= Unterminated
			return string(buf), true
		case s.ch == '\\':
			s.next()
			buf = s.scanEscapeSequence(buf)
		default:
			if s.ch == '\n' {
				s.file.AddLine(s.offset + 1)
			}
			buf = utf8.AppendRune(buf, s.ch)
			s.next()
		}
	}
}

// ScanTemplateHead is called with the scanner resting on an opening
// backtick, which it consumes; it returns NO_SUBSTITUTION_TEMPLATE or
// TEMPLATE_HEAD.
func (s *Scanner) ScanTemplateHead() (token.Token, string) {
	s.next() // consume '`'
	text, hitBacktick := s.scanTemplateSpan()
	if hitBacktick {
		s.templateStack = s.templateStack[:len(s.templateStack)]
		return token.NO_SUBSTITUTION_TEMPLATE, text
	}
	s.templateStack = append(s.templateStack, '`')
	return token.TEMPLATE_HEAD, text
}

// ReScanTemplateToken is called by the parser when it sees a '}' while
// inside a template substitution; it re-lexes the following text as a
// TEMPLATE_MIDDLE or TEMPLATE_TAIL instead of treating '}' as an
// ordinary brace.
func (s *Scanner) ReScanTemplateToken() (token.Token, string) {
	s.SetTextPos(s.tokenPos)
	s.next() // consume '}'
	text, hitBacktick := s.scanTemplateSpan()
	if hitBacktick {
		if len(s.templateStack) > 0 {
			s.templateStack = s.templateStack[:len(s.templateStack)-1]
		}
		return token.TEMPLATE_TAIL, text
	}
	return token.TEMPLATE_MIDDLE, text
}

// ReScanSlashToken is called when the parser determines, from grammar
// context, that a '/' it has already seen begins a regular expression
// rather than a division operator. It rewinds to that '/' and re-lexes
// the regex body.
func (s *Scanner) ReScanSlashToken() (token.Token, string) {
	s.SetTextPos(s.tokenPos)
	offs := s.offset
	s.next() // consume '/'
	inClass := false
	for {
		switch {
		case s.ch < 0 || classifier.IsLineBreak(s.ch):
			s.error(offs, "unterminated regular expression literal")
			s.tokenFlags |= Unterminated
			return token.REGEX, string(s.src[offs:s.offset])
		case s.ch == '\\':
			s.next()
			if s.ch >= 0 && !classifier.IsLineBreak(s.ch) {
				s.next()
			}
			continue
		case s.ch == '[':
			inClass = true
		case s.ch == ']':
			inClass = false
		case s.ch == '/' && !inClass:
			s.next()
			for classifier.IsIdentifierPart(s.ch) {
				s.next()
			}
			return token.REGEX, string(s.src[offs:s.offset])
		}
		s.next()
	}
}

// ReScanGreaterToken is called when the parser is closing a type
// argument or parameter list and has consumed a '>' that the scanner,
// lacking grammar context, may have already folded into '>>', '>=',
// '>>=', or '>>>'. It splits one '>' off the front of the current
// token and leaves the scanner positioned to re-scan the remainder.
func (s *Scanner) ReScanGreaterToken(current token.Token) (token.Token, string) {
	switch current {
	case token.GTR:
		return token.GTR, ">"
	case token.GEQ:
		s.SetTextPos(s.tokenPos + 1)
		return token.EQ, "="
	case token.SHR:
		s.SetTextPos(s.tokenPos + 1)
		return token.GTR, ">"
	case token.SHREQ:
		s.SetTextPos(s.tokenPos + 1)
		return token.GEQ, ">="
	case token.USHR:
		s.SetTextPos(s.tokenPos + 1)
		return token.SHR, ">>"
	case token.USHREQ:
		s.SetTextPos(s.tokenPos + 1)
		return token.SHREQ, ">>="
	}
	return current, ""
}

// ReScanLessThanToken splits a leading '<' off of '<<' or '<=' when
// the parser needs a single '<' to open a type-argument list.
func (s *Scanner) ReScanLessThanToken(current token.Token) (token.Token, string) {
	switch current {
	case token.SHL:
		s.SetTextPos(s.tokenPos + 1)
		return token.LSS, "<"
	case token.LEQ:
		s.SetTextPos(s.tokenPos + 1)
		return token.EQ, "="
	}
	return current, ""
}

// ReScanHashToken is called after scanning a bare '#' to decide
// whether it begins a private identifier (class field name).
func (s *Scanner) ReScanHashToken() (token.Token, string) {
	s.SetTextPos(s.tokenPos)
	s.next() // consume '#'
	if classifier.IsIdentifierStart(s.ch) {
		name := s.scanIdentifierParts()
		return token.PRIVATE_IDENT, "#" + name
	}
	return token.HASH, "#"
}

// ScanJSXToken re-lexes from the current position as JSX text: raw
// characters up to the next '<', '{', or EOF. The parser switches to
// this entry point between a JSX tag's '>' and its matching '<' or
// '{'.
func (s *Scanner) ScanJSXToken() (pos token.Pos, tok token.Token, lit string) {
	offs := s.offset
	pos = s.file.Pos(offs, 0)
	for s.ch >= 0 && s.ch != '<' && s.ch != '{' {
		if s.ch == '\n' {
			s.file.AddLine(s.offset + 1)
		}
		s.next()
	}
	if s.offset == offs {
		switch s.ch {
		case '<':
			s.next()
			return pos, token.LSS, "<"
		case '{':
			s.next()
			return pos, token.LBRACE, "{"
		default:
			return pos, token.EOF, ""
		}
	}
	return pos, token.JSX_TEXT, string(s.src[offs:s.offset])
}

// ScanJSXAttributeString re-lexes an unquoted-looking JSX attribute
// value: a double- or single-quoted string whose body is copied
// verbatim, without the backslash-escape processing ordinary strings
// receive, per the JSX specification. The scanner must be resting
// exactly on the opening quote, as it does between Scan calls.
func (s *Scanner) ScanJSXAttributeString(quote rune) (pos token.Pos, tok token.Token, lit string) {
	offs := s.offset
	pos = s.file.Pos(offs, 0)
	s.next()
	for s.ch != quote {
		if s.ch < 0 {
			s.error(offs, "unterminated string literal")
			break
		}
		s.next()
	}
	text := string(s.src[offs+1 : s.offset])
	if s.ch == quote {
		s.next()
	}
	return pos, token.STRING, text
}

// Peek reports the rune the scanner is resting on between calls to
// Scan, letting the parser decide which of ScanJSXAttributeString's
// two quote characters applies without consuming anything.
func (s *Scanner) Peek() rune { return s.ch }

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

func (s *Scanner) scanPunctuation() (token.Token, string) {
	ch := s.ch
	switch ch {
	case '"', '\'':
		s.next()
		return token.STRING, s.scanString(ch)
	case '`':
		return s.ScanTemplateHead()
	case '#':
		return s.ReScanHashToken()
	}

	s.next()
	switch ch {
	case '{':
		return token.LBRACE, "{"
	case '}':
		return token.RBRACE, "}"
	case '(':
		return token.LPAREN, "("
	case ')':
		return token.RPAREN, ")"
	case '[':
		return token.LBRACKET, "["
	case ']':
		return token.RBRACKET, "]"
	case ';':
		return token.SEMICOLON, ";"
	case ',':
		return token.COMMA, ","
	case '@':
		return token.AT, "@"
	case '.':
		if s.ch == '.' && s.peek() == '.' {
			s.next()
			s.next()
			return token.DOTDOTDOT, "..."
		}
		return token.DOT, "."
	case ':':
		return token.COLON, ":"
	case '?':
		switch {
		case s.ch == '.' && !classifier.IsDigit(s.peek()):
			s.next()
			return token.QUESTIONDOT, "?."
		case s.ch == '?':
			s.next()
			if s.ch == '=' {
				s.next()
				return token.QUESTIONQUESTIONEQ, "??="
			}
			return token.QUESTIONQUESTION, "??"
		}
		return token.QUESTION, "?"
	case '+':
		switch s.ch {
		case '+':
			s.next()
			return token.PLUSPLUS, "++"
		case '=':
			s.next()
			return token.PLUSEQ, "+="
		}
		return token.PLUS, "+"
	case '-':
		switch s.ch {
		case '-':
			s.next()
			return token.MINUSMINUS, "--"
		case '=':
			s.next()
			return token.MINUSEQ, "-="
		}
		return token.MINUS, "-"
	case '*':
		if s.ch == '*' {
			s.next()
			if s.ch == '=' {
				s.next()
				return token.STARSTAREQ, "**="
			}
			return token.STARSTAR, "**"
		}
		return s.switch2(token.STAR, token.STAREQ), ""
	case '/':
		return s.switch2(token.SLASH, token.SLASHEQ), ""
	case '%':
		return s.switch2(token.PERCENT, token.PERCENTEQ), ""
	case '^':
		return s.switch2(token.CARET, token.CARETEQ), ""
	case '~':
		return token.TILDE, "~"
	case '!':
		if s.ch == '=' {
			s.next()
			if s.ch == '=' {
				s.next()
				return token.NEQEQ, "!=="
			}
			return token.NEQ, "!="
		}
		return token.BANG, "!"
	case '=':
		if s.ch == '=' {
			s.next()
			if s.ch == '=' {
				s.next()
				return token.EQEQEQ, "==="
			}
			return token.EQEQ, "=="
		}
		if s.ch == '>' {
			s.next()
			return token.ARROW, "=>"
		}
		return token.EQ, "="
	case '<':
		switch s.ch {
		case '<':
			s.next()
			return s.switch2(token.SHL, token.SHLEQ), ""
		case '=':
			s.next()
			return token.LEQ, "<="
		}
		return token.LSS, "<"
	case '>':
		switch s.ch {
		case '>':
			s.next()
			switch s.ch {
			case '>':
				s.next()
				return s.switch2(token.USHR, token.USHREQ), ""
			case '=':
				s.next()
				return token.SHREQ, ">>="
			}
			return token.SHR, ">>"
		case '=':
			s.next()
			return token.GEQ, ">="
		}
		return token.GTR, ">"
	case '&':
		switch s.ch {
		case '&':
			s.next()
			if s.ch == '=' {
				s.next()
				return token.AMPAMPEQ, "&&="
			}
			return token.AMPAMP, "&&"
		case '=':
			s.next()
			return token.AMPEQ, "&="
		}
		return token.AMP, "&"
	case '|':
		switch s.ch {
		case '|':
			s.next()
			if s.ch == '=' {
				s.next()
				return token.PIPEPIPEEQ, "||="
			}
			return token.PIPEPIPE, "||"
		case '=':
			s.next()
			return token.PIPEEQ, "|="
		}
		return token.PIPE, "|"
	}

	if ch != bom {
		s.error(s.offset-1, "invalid character %#U", ch)
	}
	return token.ILLEGAL, string(ch)
}
