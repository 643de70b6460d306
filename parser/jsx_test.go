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
	"testing"

	"github.com/typeforge/tsparse/ast"
)

var validJSX = []string{
	`const a = <div />;`,
	`const a = <div className="box" data-id="1" aria-label='hi' />;`,
	`const a = <div>hello</div>;`,
	`const a = <div>{value}</div>;`,
	`const a = <div>{...spread}</div>;`,
	`const a = <Foo.Bar.Baz />;`,
	`const a = <svg:rect width={1} />;`,
	`const a = <>fragment children</>;`,
	`const a = <div>{cond ? <Yes /> : <No />}</div>;`,
	`const a = <List<Item> items={xs} />;`,
	`const a = (
		<ul>
			<li>one</li>
			<li>two</li>
		</ul>
	);`,
	`const a = <div {...props} onClick={() => f()} />;`,
}

func TestValidJSX(t *testing.T) {
	for _, src := range validJSX {
		t.Run(src, func(t *testing.T) {
			f, err := ParseSourceFile("valid.tsx", src, AllErrors)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if f == nil || len(f.Statements.Elements) == 0 {
				t.Fatal("expected at least one parsed statement")
			}
		})
	}
}

func TestJSXMismatchedClosingTagRecovers(t *testing.T) {
	f, err := ParseSourceFile("x.tsx", `const a = <div>text</span>;`, AllErrors)
	if f == nil {
		t.Fatal("expected a non-nil file even with a mismatched closing tag")
	}
	if err == nil {
		t.Error("expected a diagnostic for the mismatched closing tag")
	}
}

func TestJSXOnlyParsedWithJSXOption(t *testing.T) {
	// A plain .ts file never turns on JSX mode, so '<' in expression
	// position is just the less-than operator, not an element.
	_, err := ParseSourceFile("x.ts", `const a = <div />;`, AllErrors)
	if err == nil {
		t.Error("expected an error parsing JSX syntax outside of JSX mode")
	}
}

func TestParseExprJSXFragment(t *testing.T) {
	expr, err := ParseExpr("x.tsx", `<>a{b}c</>`, JSX)
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	frag, ok := expr.(*ast.JSXFragment)
	if !ok {
		t.Fatalf("ParseExpr() = %T, want *ast.JSXFragment", expr)
	}
	if len(frag.Children.Elements) != 3 {
		t.Errorf("got %d children, want 3", len(frag.Children.Elements))
	}
}
