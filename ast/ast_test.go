package ast

import (
	"testing"

	"github.com/typeforge/tsparse/token"
)

func testFile(src string) *token.File {
	return token.NewFile("test.ts", 1, len(src))
}

func TestIdentPosEnd(t *testing.T) {
	f := testFile("foobar")
	id := &Ident{NamePos: f.Pos(0, token.NoRelPos), Name: "foobar"}

	if got, want := f.Offset(id.Pos()), 0; got != want {
		t.Errorf("Pos offset = %d, want %d", got, want)
	}
	if got, want := f.Offset(id.End()), 6; got != want {
		t.Errorf("End offset = %d, want %d", got, want)
	}
}

func TestMarkError(t *testing.T) {
	id := &Ident{Name: "x"}
	if id.HasError() {
		t.Fatal("new node should not start with an error")
	}
	MarkError(id)
	if !id.HasError() {
		t.Fatal("MarkError should set the sticky error bit")
	}
}

func TestAddComment(t *testing.T) {
	id := &Ident{Name: "x"}
	if len(id.Comments()) != 0 {
		t.Fatal("new node should start with no comments")
	}
	cg := &CommentGroup{List: []*Comment{{Text: "// hi"}}}
	id.AddComment(cg)
	if len(id.Comments()) != 1 || id.Comments()[0] != cg {
		t.Fatal("AddComment did not record the group")
	}
	// A nil group must be ignored rather than panic or grow the slice.
	id.AddComment(nil)
	if len(id.Comments()) != 1 {
		t.Fatal("AddComment(nil) should be a no-op")
	}
}

func TestNodeArrayPosEnd(t *testing.T) {
	f := testFile("a, b")
	a := &Ident{NamePos: f.Pos(0, token.NoRelPos), Name: "a"}
	b := &Ident{NamePos: f.Pos(3, token.NoRelPos), Name: "b"}

	// Without a captured delimiter span, Pos/End fall back to the
	// first/last element.
	arr := NodeArray[*Ident]{Elements: []*Ident{a, b}}
	if arr.Pos() != a.Pos() {
		t.Errorf("Pos() = %v, want %v", arr.Pos(), a.Pos())
	}
	if arr.End() != b.End() {
		t.Errorf("End() = %v, want %v", arr.End(), b.End())
	}
	if arr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", arr.Len())
	}

	empty := NodeArray[*Ident]{}
	if empty.Pos() != token.NoPos || empty.End() != token.NoPos {
		t.Error("an empty, delimiter-less NodeArray should report NoPos")
	}
}

// buildSample constructs "a + b;" as a one-statement source file, for
// exercising Walk/ForEachChild without a parser.
func buildSample() (*SourceFile, *Ident, *Ident) {
	a := &Ident{Name: "a"}
	b := &Ident{Name: "b"}
	bin := &BinaryExpr{X: a, Op: token.PLUS, Y: b}
	stmt := &ExpressionStatement{Expr: bin}
	file := &SourceFile{
		Statements: NodeArray[Stmt]{Elements: []Stmt{stmt}},
	}
	return file, a, b
}

func TestWalkVisitsEveryNode(t *testing.T) {
	file, a, b := buildSample()

	var seen []Node
	Walk(file, func(n Node) bool {
		seen = append(seen, n)
		return true
	}, nil)

	stmt := file.Statements.Elements[0]
	want := []Node{file, stmt, stmt.(*ExpressionStatement).Expr, a, b}
	if len(seen) != len(want) {
		t.Fatalf("Walk visited %d nodes, want %d: %v", len(seen), len(want), seen)
	}
	for i, n := range want {
		if seen[i] != n {
			t.Errorf("seen[%d] = %#v, want %#v", i, seen[i], n)
		}
	}
}

func TestWalkBeforeFalseSkipsChildren(t *testing.T) {
	file, _, _ := buildSample()

	count := 0
	Walk(file, func(n Node) bool {
		count++
		_, isStmt := n.(*ExpressionStatement)
		return !isStmt
	}, nil)

	// file and its one statement are visited; the statement's children
	// (the BinaryExpr and its operands) must not be.
	if count != 2 {
		t.Errorf("visited %d nodes, want 2 (before returning false should prune)", count)
	}
}

func TestForEachChildStopsEarly(t *testing.T) {
	file, _, _ := buildSample()

	var visited int
	ForEachChild(file, func(Node) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("ForEachChild visited %d children before stopping, want 1", visited)
	}
}

func TestBinaryExprSpan(t *testing.T) {
	f := testFile("a + b")
	a := &Ident{NamePos: f.Pos(0, token.NoRelPos), Name: "a"}
	b := &Ident{NamePos: f.Pos(4, token.NoRelPos), Name: "b"}
	bin := &BinaryExpr{X: a, OpPos: f.Pos(2, token.NoRelPos), Op: token.PLUS, Y: b}

	if bin.Pos() != a.Pos() {
		t.Errorf("Pos() = %v, want %v", bin.Pos(), a.Pos())
	}
	if bin.End() != b.End() {
		t.Errorf("End() = %v, want %v", bin.End(), b.End())
	}
}
