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
	"bytes"
	"strings"
	"testing"

	"github.com/typeforge/tsparse/ast"
)

func TestParseSourceFileScriptKind(t *testing.T) {
	f, err := ParseSourceFile("x.tsx", `const a = <div/>;`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if f.ScriptKind != ast.ScriptKindTSX {
		t.Errorf("ScriptKind = %v, want ScriptKindTSX", f.ScriptKind)
	}
	if f.LanguageVariant != ast.LanguageVariantJSX {
		t.Errorf("LanguageVariant = %v, want LanguageVariantJSX", f.LanguageVariant)
	}
	if f.LanguageVersion != ast.Latest {
		t.Errorf("LanguageVersion = %v, want ast.Latest by default", f.LanguageVersion)
	}
}

func TestParseSourceFileExternalModule(t *testing.T) {
	script, err := ParseSourceFile("s.ts", `const a = 1;`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if script.ExternalModuleIndicator != nil {
		t.Error("a file with no import/export should not be an external module")
	}
	if script.Flags&ast.NodeFlagsExternalModule != 0 {
		t.Error("NodeFlagsExternalModule should not be set on a script")
	}

	mod, err := ParseSourceFile("m.ts", `export const a = 1;`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if mod.ExternalModuleIndicator == nil {
		t.Error("a file with a top-level export should be an external module")
	}
	if mod.Flags&ast.NodeFlagsExternalModule == 0 {
		t.Error("NodeFlagsExternalModule should be set on a module")
	}
}

func TestParseSourceFileIdentifiersAndDirectives(t *testing.T) {
	f, err := ParseSourceFile("d.ts", "// @ts-expect-error\nconst x: string = 1;\nconst y = x;")
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if f.IdentifierCount < 3 {
		t.Errorf("IdentifierCount = %d, want at least 3", f.IdentifierCount)
	}
	if f.NodeCount == 0 {
		t.Error("NodeCount should be nonzero")
	}
	if got := f.Identifiers.Intern("x"); got != "x" {
		t.Errorf("Identifiers.Intern(%q) = %q", "x", got)
	}
	if len(f.CommentDirectives) != 1 {
		t.Fatalf("got %d comment directives, want 1: %v", len(f.CommentDirectives), f.CommentDirectives)
	}
	if f.CommentDirectives[0].Kind != ast.DirectiveExpectError {
		t.Errorf("directive kind = %v, want DirectiveExpectError", f.CommentDirectives[0].Kind)
	}
}

func TestParseSourceFileTopLevelAwait(t *testing.T) {
	f, err := ParseSourceFile("a.ts", "export {};\nawait Promise.resolve();")
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if f.Flags&ast.NodeFlagsContainsPossibleTopLevelAwait == 0 {
		t.Error("NodeFlagsContainsPossibleTopLevelAwait should be set")
	}
	if _, ok := f.Statements.Elements[1].(*ast.ExpressionStatement); !ok {
		t.Errorf("top-level await statement: got %T, want *ast.ExpressionStatement", f.Statements.Elements[1])
	}
}

func Test_readSource(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"string", "let x = 1", "let x = 1"},
		{"bytes", []byte("let x = 1"), "let x = 1"},
		{"buffer", bytes.NewBufferString("let x = 1"), "let x = 1"},
		{"reader", strings.NewReader("let x = 1"), "let x = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSource("x.ts", tt.src)
			if err != nil {
				t.Fatalf("readSource() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("readSource() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := readSource("x.ts", 42); err == nil {
		t.Error("readSource() with an unsupported type should fail")
	}
}

func TestParseSourceFile(t *testing.T) {
	f, err := ParseSourceFile("x.ts", `
		interface Point { x: number; y: number }
		function dist(a: Point, b: Point): number {
			return Math.sqrt((a.x - b.x) ** 2 + (a.y - b.y) ** 2);
		}
	`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if f == nil {
		t.Fatal("ParseSourceFile() returned a nil file")
	}
	if len(f.Statements.Elements) != 2 {
		t.Errorf("got %d top-level statements, want 2", len(f.Statements.Elements))
	}
}

func TestParseSourceFileDeclarationFile(t *testing.T) {
	f, err := ParseSourceFile("x.d.ts", `export declare const x: number;`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if !f.IsDeclarationFile {
		t.Error("a .d.ts file should set IsDeclarationFile")
	}
}

func TestParseSourceFileTSXAutoEnablesJSX(t *testing.T) {
	f, err := ParseSourceFile("x.tsx", `const x = <div className="a">hi</div>;`)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if len(f.Statements.Elements) != 1 {
		t.Fatalf("got %d top-level statements, want 1", len(f.Statements.Elements))
	}
}

func TestParseSourceFileAlwaysReturnsAFile(t *testing.T) {
	// Deliberately pathological input: this should accumulate enough
	// errors to trip errf's bailout, but the caller should still get
	// back a non-nil file and a non-nil error.
	src := strings.Repeat("@ ", 50)
	f, err := ParseSourceFile("bad.ts", src)
	if f == nil {
		t.Fatal("ParseSourceFile() should always return a file, even after a bailout")
	}
	if err == nil {
		t.Error("ParseSourceFile() should report an error for malformed input")
	}
}

func TestParseSourceFileMissingFile(t *testing.T) {
	if _, err := ParseSourceFile("/does/not/exist.ts", nil); err == nil {
		t.Error("ParseSourceFile() with a missing file and nil src should fail")
	}
}

func TestParseExpr(t *testing.T) {
	expr, err := ParseExpr("x.ts", `a.b[c] + (d, e)`)
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	if _, ok := expr.(*ast.BinaryExpr); !ok {
		t.Errorf("ParseExpr() = %T, want *ast.BinaryExpr", expr)
	}
}

func TestParseExprTrailingGarbage(t *testing.T) {
	_, err := ParseExpr("x.ts", `a + b c`)
	if err == nil {
		t.Error("ParseExpr() should report an error for trailing tokens after the expression")
	}
}

func TestIsTSXFile(t *testing.T) {
	cases := map[string]bool{
		"a.tsx":   true,
		"a.ts":    false,
		"a.d.ts":  false,
		"a":       false,
		"a.x.tsx": true,
	}
	for name, want := range cases {
		if got := isTSXFile(name); got != want {
			t.Errorf("isTSXFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestIsDeclarationFile(t *testing.T) {
	cases := map[string]bool{
		"a.d.ts": true,
		"a.ts":   false,
		"a.tsx":  false,
	}
	for name, want := range cases {
		if got := isDeclarationFile(name); got != want {
			t.Errorf("isDeclarationFile(%q) = %v, want %v", name, got, want)
		}
	}
}
