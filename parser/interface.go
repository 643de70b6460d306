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

// This file contains the exported entry points for invoking the
// parser: ParseSourceFile for a whole compilation unit and ParseExpr
// for a standalone expression, the latter mostly useful for tooling
// that wants to parse a single snippet without a surrounding program.

package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/typeforge/tsparse/ast"
	"github.com/typeforge/tsparse/classifier"
	"github.com/typeforge/tsparse/scanner"
	"github.com/typeforge/tsparse/token"
)

// readSource normalizes the several shapes a caller may hand in as
// source text. If src is nil, the file at filename is read from disk.
func readSource(filename string, src interface{}) ([]byte, error) {
	if src != nil {
		switch s := src.(type) {
		case string:
			return []byte(s), nil
		case []byte:
			return s, nil
		case *bytes.Buffer:
			if s != nil {
				return s.Bytes(), nil
			}
		case io.Reader:
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, s); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		default:
			return nil, fmt.Errorf("invalid source type %T", src)
		}
	}
	return os.ReadFile(filename)
}

// ParseSourceFile parses a complete TypeScript compilation unit and
// returns its AST. The source may be provided via src (string, []byte,
// *bytes.Buffer, or io.Reader); if src is nil, filename is read from
// disk. filename is also what source positions in the result are
// reported against.
//
// A file whose name ends in ".d.ts" is parsed as a declaration file
// (SourceFile.IsDeclarationFile), matching tsserver's convention. A
// file whose name ends in ".tsx" is parsed with the JSX option enabled
// automatically, in addition to whatever options the caller passes.
//
// If the source can't be read at all, the returned file is nil and the
// error describes why. Otherwise a file is always returned, even one
// riddled with errors: bad spans are recorded as Bad* nodes so callers
// doing best-effort tooling (an editor's outline view, incremental
// reparsing) still get a traversable tree. The error return in that
// case is a diagnostic.List, which satisfies the error interface; use
// a type assertion to recover individual diagnostics with position
// information rather than just the combined message.
func ParseSourceFile(filename string, src interface{}, opts ...Option) (f *ast.SourceFile, err error) {
	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}

	if isTSXFile(filename) {
		opts = append(opts, JSX)
	}

	var p parser
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		if f == nil {
			f = &ast.SourceFile{
				FileName:        filename,
				Text:            text,
				File:            p.file,
				LanguageVersion: p.resolvedTarget(),
				ScriptKind:      p.resolvedScriptKind(filename),
				IdentifierCount: p.identifierCount,
				NodeCount:       p.nodeCount,
				Identifiers:     ast.Identifiers(p.identifiers),
			}
		}
		f.IsDeclarationFile = isDeclarationFile(filename)

		p.errors.RemoveMultiples()
		f.ParseDiagnostics = p.errors
		if p.errors.HasErrors() {
			err = p.errors
		}
	}()
	p.init(filename, text, opts)
	f = p.parseSourceFileBody()
	return f, nil
}

// ParseExpr parses src as a standalone expression, useful for tools
// that only ever need to evaluate or inspect one snippet (a template
// placeholder, a REPL line) rather than a whole file.
func ParseExpr(filename string, src interface{}, opts ...Option) (expr ast.Expr, err error) {
	text, readErr := readSource(filename, src)
	if readErr != nil {
		return nil, readErr
	}

	var p parser
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		p.errors.RemoveMultiples()
		if p.errors.HasErrors() {
			err = p.errors
		}
	}()
	p.init(filename, text, opts)
	expr = p.parseExpr(FIn)
	if p.tok != token.EOF {
		p.errorExpected(p.pos, "EOF")
	}
	return expr, nil
}

func isTSXFile(filename string) bool {
	return len(filename) >= 4 && filename[len(filename)-4:] == ".tsx"
}

func isDeclarationFile(filename string) bool {
	return len(filename) >= 5 && filename[len(filename)-5:] == ".d.ts"
}

// resolvedTarget returns the ECMAScript version SourceFile.LanguageVersion
// should report: whatever the Target option set, or ast.Latest if the
// caller left it unset.
func (p *parser) resolvedTarget() ast.ScriptTarget {
	if p.target == 0 {
		return ast.Latest
	}
	return p.target
}

// resolvedScriptKind returns the Kind option's value if the caller set
// one, otherwise infers it from filename's extension.
func (p *parser) resolvedScriptKind(filename string) ast.ScriptKind {
	if p.scriptKind != ast.ScriptKindUnknown {
		return p.scriptKind
	}
	return scriptKindFromFilename(filename)
}

// scriptKindFromFilename maps a filename's extension to the script kind
// ParseSourceFile assumes when the caller didn't pass Kind explicitly.
// Unrecognized extensions, including none at all, default to TS.
func scriptKindFromFilename(filename string) ast.ScriptKind {
	switch fileExt(filename) {
	case ".tsx":
		return ast.ScriptKindTSX
	case ".jsx":
		return ast.ScriptKindJSX
	case ".js", ".mjs", ".cjs":
		return ast.ScriptKindJS
	case ".json":
		return ast.ScriptKindJSON
	default:
		return ast.ScriptKindTS
	}
}

func fileExt(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i:])
}

// languageVariantForKind says whether a file's kind implies JSX syntax,
// either because the kind itself is a JSX one or because the caller
// passed the JSX option explicitly (e.g. for a ".ts" file containing
// JSX despite the extension).
func languageVariantForKind(kind ast.ScriptKind, jsxOption bool) ast.LanguageVariant {
	if jsxOption || kind == ast.ScriptKindTSX || kind == ast.ScriptKindJSX {
		return ast.LanguageVariantJSX
	}
	return ast.LanguageVariantStandard
}

// detectExternalModuleIndicator is the default the parser falls back on
// when the caller didn't pass SetExternalModuleIndicator: the first
// top-level import or export statement, if any, makes the file a
// module rather than a script.
func detectExternalModuleIndicator(sf *ast.SourceFile) ast.Node {
	for _, stmt := range sf.Statements.Elements {
		switch stmt.(type) {
		case *ast.ImportDeclaration, *ast.ImportEqualsDeclaration,
			*ast.ExportDeclaration, *ast.ExportAssignment:
			return stmt
		default:
			// A declaration with the export modifier starts at that keyword.
			rest := sf.Text[stmt.Pos().Offset():]
			if bytes.HasPrefix(rest, []byte("export")) && (len(rest) == 6 || !classifier.IsIdentifierPart(rune(rest[6]))) {
				return stmt
			}
		}
	}
	return nil
}

// convertDirectives adapts the scanner's flat directive records to the
// ast-level shape SourceFile.CommentDirectives exposes; the scanner
// keeps its own copy of the two types so it never has to import ast.
func convertDirectives(in []scanner.CommentDirective) []ast.CommentDirective {
	if len(in) == 0 {
		return nil
	}
	out := make([]ast.CommentDirective, len(in))
	for i, d := range in {
		out[i] = ast.CommentDirective{Kind: ast.CommentDirectiveKind(d.Kind), Pos: d.Pos}
	}
	return out
}

// parseSourceFileBody parses the statement list making up a whole
// file, then wraps it with the bookkeeping ParseSourceFile's callers
// expect: the originating token.File, the raw source text, the
// position of EOF, and the script-kind/module/identifier bookkeeping
// that callers doing incremental work or diagnostics rely on.
func (p *parser) parseSourceFileBody() *ast.SourceFile {
	c := p.openComments()
	stmts := p.parseSourceElements(p.contextFlags, false)
	eof := p.pos

	kind := p.resolvedScriptKind(p.file.Name())
	sf := &ast.SourceFile{
		FileName:          p.file.Name(),
		Text:              p.src,
		File:              p.file,
		Statements:        stmts,
		EndOfFileTok:      eof,
		LanguageVersion:   p.resolvedTarget(),
		ScriptKind:        kind,
		LanguageVariant:   languageVariantForKind(kind, p.mode&jsxMode != 0),
		IdentifierCount:   p.identifierCount,
		Identifiers:       ast.Identifiers(p.identifiers),
		CommentDirectives: convertDirectives(p.scanner.Directives()),
	}

	if p.containsPossibleTopLevelAwait {
		sf.Flags |= ast.NodeFlagsContainsPossibleTopLevelAwait
	}
	if p.setExternalModuleIndicator != nil {
		sf.ExternalModuleIndicator = p.setExternalModuleIndicator(sf)
	} else {
		sf.ExternalModuleIndicator = detectExternalModuleIndicator(sf)
	}
	if sf.ExternalModuleIndicator != nil {
		sf.Flags |= ast.NodeFlagsExternalModule
	}

	p.reparseTopLevelAwait(sf)

	out := c.closeNode(p, sf).(*ast.SourceFile)
	out.NodeCount = p.nodeCount
	return out
}

// reparseTopLevelAwait revisits the top-level statements flagged during
// the initial parse as possibly containing a top-level await -- an
// await that isn't inside any enclosing async function -- now that the
// file's module-ness is known. A top-level await is only legal in an
// external module, so scripts leave those statements exactly as they
// were first parsed (as an error, since a bare "await" outside an
// async function isn't valid script syntax either); modules re-parse
// them with FAwait enabled so the await is recognized properly.
func (p *parser) reparseTopLevelAwait(sf *ast.SourceFile) {
	if !p.containsPossibleTopLevelAwait || sf.ExternalModuleIndicator == nil {
		return
	}
	awaitFlags := p.contextFlags.with(FAwait, true)
	elems := sf.Statements.Elements
	for i, m := range p.topLevelAwaitMarks {
		idx := p.topLevelAwaitStmts[i] - (len(sf.Statements.Elements) - len(elems))
		if idx < 0 || idx >= len(elems) {
			continue
		}
		// The first pass parsed this span without FAwait, purely to
		// detect the possible top-level await, and may have split it
		// into several statements ("await" alone, then the rest). The
		// diagnostics and statements it produced inside the span the
		// re-parsed statement covers describe that throwaway attempt, so
		// they are dropped; those before or after the span are kept.
		firstPass := p.errors
		p.errors = nil
		stmt, _ := reparse(p, m, func() (ast.Stmt, bool) {
			return p.parseStatement(awaitFlags), true
		})
		start, end := m.pos.Offset(), stmt.End().Offset()
		for _, d := range firstPass {
			if off := d.Position().Offset(); off < start || off >= end {
				p.errors = append(p.errors, d)
			}
		}
		n := idx + 1
		for n < len(elems) && elems[n].Pos().Offset() < end {
			n++
		}
		elems = append(append(elems[:idx], stmt), elems[n:]...)
	}
	sf.Statements.Elements = elems
}
