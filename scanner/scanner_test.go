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

package scanner

import (
	"testing"

	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, []string) {
	t.Helper()
	var diags diagnostic.List
	file := token.NewFile("test.ts", 1, len(src))
	var s Scanner
	s.Init(file, []byte(src), diags.Handle, 0)

	var toks []token.Token
	var lits []string
	for {
		_, tok, lit := s.Scan()
		toks = append(toks, tok)
		lits = append(lits, lit)
		if tok == token.EOF {
			break
		}
	}
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics scanning %q: %v", src, diags)
	}
	return toks, lits
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, lits := scanAll(t, "let x = foo")
	want := []token.Token{token.LET, token.IDENT, token.EQ, token.IDENT, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range want {
		if toks[i] != tok {
			t.Errorf("token %d: got %v, want %v", i, toks[i], tok)
		}
	}
	if lits[1] != "x" || lits[3] != "foo" {
		t.Errorf("unexpected literals: %v", lits)
	}
}

func TestScanNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want token.Token
	}{
		{"123", token.NUMBER},
		{"0x1F", token.NUMBER},
		{"0b101", token.NUMBER},
		{"0o17", token.NUMBER},
		{"1.5e10", token.NUMBER},
		{"100n", token.BIGINT},
		{"1_000", token.NUMBER},
		{"0755", token.NUMBER},
	}
	for _, c := range cases {
		toks, lits := scanAll(t, c.src)
		if toks[0] != c.want {
			t.Errorf("scanning %q: got %v, want %v", c.src, toks[0], c.want)
		}
		if lits[0] != c.src {
			t.Errorf("scanning %q: literal = %q", c.src, lits[0])
		}
	}
}

func TestScanString(t *testing.T) {
	toks, lits := scanAll(t, `"hello\nworld"`)
	if toks[0] != token.STRING {
		t.Fatalf("got %v, want STRING", toks[0])
	}
	if lits[0] != "hello\nworld" {
		t.Errorf("got %q", lits[0])
	}
}

func TestScanPunctuation(t *testing.T) {
	toks, _ := scanAll(t, "a?.b ?? c ??= d")
	want := []token.Token{
		token.IDENT, token.QUESTIONDOT, token.IDENT,
		token.QUESTIONQUESTION, token.IDENT,
		token.QUESTIONQUESTIONEQ, token.IDENT, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range want {
		if toks[i] != tok {
			t.Errorf("token %d: got %v, want %v", i, toks[i], tok)
		}
	}
}

func TestScanTemplateLiteral(t *testing.T) {
	var diags diagnostic.List
	src := "`a${x}b`"
	file := token.NewFile("t.ts", 1, len(src))
	var s Scanner
	s.Init(file, []byte(src), diags.Handle, 0)

	tok, lit := s.ScanTemplateHead()
	if tok != token.TEMPLATE_HEAD || lit != "a" {
		t.Fatalf("head: got %v %q", tok, lit)
	}
	_, idTok, idLit := s.Scan()
	if idTok != token.IDENT || idLit != "x" {
		t.Fatalf("substitution: got %v %q", idTok, idLit)
	}
	_, rbrace, _ := s.Scan()
	if rbrace != token.RBRACE {
		t.Fatalf("expected RBRACE, got %v", rbrace)
	}
	tok, lit = s.ReScanTemplateToken()
	if tok != token.TEMPLATE_TAIL || lit != "b" {
		t.Fatalf("tail: got %v %q", tok, lit)
	}
}

func TestPrecedingLineBreak(t *testing.T) {
	var diags diagnostic.List
	src := "a\nb"
	file := token.NewFile("t.ts", 1, len(src))
	var s Scanner
	s.Init(file, []byte(src), diags.Handle, 0)

	s.Scan()
	if s.HasPrecedingLineBreak() {
		t.Fatalf("first token should not report a preceding line break")
	}
	s.Scan()
	if !s.HasPrecedingLineBreak() {
		t.Fatalf("second token should report a preceding line break")
	}
}

func TestCommentDirectives(t *testing.T) {
	var diags diagnostic.List
	src := "// @ts-expect-error\nconst x: string = 1;\n// @ts-ignore\nconst y = 2;\n// not a directive\nconst z = 3;"
	file := token.NewFile("t.ts", 1, len(src))
	var s Scanner
	s.Init(file, []byte(src), diags.Handle, 0)
	for {
		_, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
	}
	dirs := s.Directives()
	if len(dirs) != 2 {
		t.Fatalf("got %d directives, want 2: %v", len(dirs), dirs)
	}
	if dirs[0].Kind != DirectiveExpectError {
		t.Errorf("first directive: got %v, want DirectiveExpectError", dirs[0].Kind)
	}
	if dirs[1].Kind != DirectiveIgnore {
		t.Errorf("second directive: got %v, want DirectiveIgnore", dirs[1].Kind)
	}
}
