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

package ast

import "github.com/typeforge/tsparse/token"

func (*BadStmt) stmtNode()            {}
func (*Block) stmtNode()              {}
func (*VariableStatement) stmtNode()  {}
func (*ExpressionStatement) stmtNode() {}
func (*IfStatement) stmtNode()        {}
func (*ForStatement) stmtNode()       {}
func (*ForInStatement) stmtNode()     {}
func (*ForOfStatement) stmtNode()     {}
func (*WhileStatement) stmtNode()     {}
func (*DoStatement) stmtNode()        {}
func (*SwitchStatement) stmtNode()    {}
func (*TryStatement) stmtNode()       {}
func (*ThrowStatement) stmtNode()     {}
func (*ReturnStatement) stmtNode()    {}
func (*BreakStatement) stmtNode()     {}
func (*ContinueStatement) stmtNode()  {}
func (*LabeledStatement) stmtNode()   {}
func (*EmptyStatement) stmtNode()     {}
func (*DebuggerStatement) stmtNode()  {}
func (*WithStatement) stmtNode()      {}
func (*FunctionDeclaration) stmtNode() {}
func (*ClassDeclaration) stmtNode()   {}
func (*InterfaceDeclaration) stmtNode() {}
func (*TypeAliasDeclaration) stmtNode() {}
func (*EnumDeclaration) stmtNode()    {}
func (*ModuleDeclaration) stmtNode()  {}
func (*ImportDeclaration) stmtNode()  {}
func (*ImportEqualsDeclaration) stmtNode() {}
func (*ExportDeclaration) stmtNode()  {}
func (*ExportAssignment) stmtNode()   {}

func (*FunctionDeclaration) declNode()      {}
func (*ClassDeclaration) declNode()         {}
func (*InterfaceDeclaration) declNode()     {}
func (*TypeAliasDeclaration) declNode()     {}
func (*EnumDeclaration) declNode()          {}
func (*ModuleDeclaration) declNode()        {}
func (*ImportDeclaration) declNode()        {}
func (*ImportEqualsDeclaration) declNode()  {}
func (*ExportDeclaration) declNode()        {}
func (*ExportAssignment) declNode()         {}
func (*VariableStatement) declNode()        {}

// BadStmt is a placeholder for a statement the parser could not parse;
// it swallows text up to the next statement boundary the recovery
// heuristic recognizes.
type BadStmt struct {
	node
	From, To token.Pos
}

func (x *BadStmt) Pos() token.Pos { return x.From }
func (x *BadStmt) End() token.Pos { return x.To }

// Block is "{ statements }".
type Block struct {
	node
	LBrace     token.Pos
	Statements NodeArray[Stmt]
	RBrace     token.Pos
}

func (x *Block) Pos() token.Pos { return x.LBrace }
func (x *Block) End() token.Pos { return x.RBrace.Add(1) }

// VariableDeclarationKind distinguishes var/let/const.
type VariableDeclarationKind int

const (
	Var VariableDeclarationKind = iota
	Let
	Const
)

// VariableDeclaration is one "name: Type = init" entry of a
// declaration list.
type VariableDeclaration struct {
	node
	Name        BindingName
	Exclaim     token.Pos // definite-assignment assertion "!"
	Definite    bool
	Type        Type
	EqualsToken token.Pos
	Initializer Expr
}

func (x *VariableDeclaration) Pos() token.Pos { return x.Name.Pos() }
func (x *VariableDeclaration) End() token.Pos {
	switch {
	case x.Initializer != nil:
		return x.Initializer.End()
	case x.Type != nil:
		return x.Type.End()
	default:
		return x.Name.End()
	}
}

// VariableDeclarationList is "var/let/const a = 1, b = 2".
type VariableDeclarationList struct {
	node
	KeywordPos   token.Pos
	Kind         VariableDeclarationKind
	Declarations NodeArray[*VariableDeclaration]
}

func (x *VariableDeclarationList) Pos() token.Pos { return x.KeywordPos }
func (x *VariableDeclarationList) End() token.Pos { return x.Declarations.End() }

// VariableStatement is a VariableDeclarationList terminated by a
// semicolon, optionally preceded by export/declare modifiers.
type VariableStatement struct {
	node
	Modifiers   []Modifier
	List        *VariableDeclarationList
	Semicolon   token.Pos
}

func (x *VariableStatement) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.List.Pos()
}
func (x *VariableStatement) End() token.Pos { return x.Semicolon }

// ExpressionStatement is an expression followed by a semicolon
// (possibly inserted automatically).
type ExpressionStatement struct {
	node
	Expr      Expr
	Semicolon token.Pos
}

func (x *ExpressionStatement) Pos() token.Pos { return x.Expr.Pos() }
func (x *ExpressionStatement) End() token.Pos { return x.Semicolon }

// IfStatement is "if (cond) then [else else_]".
type IfStatement struct {
	node
	IfPos  token.Pos
	Cond   Expr
	Then   Stmt
	ElsePos token.Pos
	Else   Stmt // nil if there is no else clause
}

func (x *IfStatement) Pos() token.Pos { return x.IfPos }
func (x *IfStatement) End() token.Pos {
	if x.Else != nil {
		return x.Else.End()
	}
	return x.Then.End()
}

// ForInit is implemented by the three forms a classic for-loop's
// initializer may take: a variable declaration list, a bare
// expression, or nothing.
type ForInit interface {
	Node
	forInitNode()
}

func (*VariableDeclarationList) forInitNode() {}

type exprForInit struct{ Expr }

func (exprForInit) forInitNode() {}

// ExprForInit wraps an expression for use as a for-loop initializer.
func ExprForInit(e Expr) ForInit { return exprForInit{e} }

// ForStatement is the classic three-clause "for (init; cond; post)
// body".
type ForStatement struct {
	node
	ForPos token.Pos
	Init   ForInit // nil if the initializer clause is empty
	Cond   Expr    // nil if the condition clause is empty
	Post   Expr    // nil if the post clause is empty
	Body   Stmt
}

func (x *ForStatement) Pos() token.Pos { return x.ForPos }
func (x *ForStatement) End() token.Pos { return x.Body.End() }

// ForInStatement is "for (decl in expr) body".
type ForInStatement struct {
	node
	ForPos     token.Pos
	Init       ForInit
	InPos      token.Pos
	Expr       Expr
	Body       Stmt
}

func (x *ForInStatement) Pos() token.Pos { return x.ForPos }
func (x *ForInStatement) End() token.Pos { return x.Body.End() }

// ForOfStatement is "for [await] (decl of expr) body".
type ForOfStatement struct {
	node
	ForPos   token.Pos
	AwaitPos token.Pos
	IsAwait  bool
	Init     ForInit
	OfPos    token.Pos
	Expr     Expr
	Body     Stmt
}

func (x *ForOfStatement) Pos() token.Pos { return x.ForPos }
func (x *ForOfStatement) End() token.Pos { return x.Body.End() }

// WhileStatement is "while (cond) body".
type WhileStatement struct {
	node
	WhilePos token.Pos
	Cond     Expr
	Body     Stmt
}

func (x *WhileStatement) Pos() token.Pos { return x.WhilePos }
func (x *WhileStatement) End() token.Pos { return x.Body.End() }

// DoStatement is "do body while (cond);".
type DoStatement struct {
	node
	DoPos     token.Pos
	Body      Stmt
	Cond      Expr
	Semicolon token.Pos
}

func (x *DoStatement) Pos() token.Pos { return x.DoPos }
func (x *DoStatement) End() token.Pos { return x.Semicolon }

// CaseOrDefaultClause is "case expr: stmts" or "default: stmts". Test
// is nil for a default clause.
type CaseOrDefaultClause struct {
	node
	KeywordPos token.Pos
	Test       Expr
	Colon      token.Pos
	Statements NodeArray[Stmt]
}

func (c *CaseOrDefaultClause) Pos() token.Pos { return c.KeywordPos }
func (c *CaseOrDefaultClause) End() token.Pos { return c.Statements.End() }

// SwitchStatement is "switch (expr) { clauses }".
type SwitchStatement struct {
	node
	SwitchPos token.Pos
	Expr      Expr
	LBrace    token.Pos
	Clauses   NodeArray[*CaseOrDefaultClause]
	RBrace    token.Pos
}

func (x *SwitchStatement) Pos() token.Pos { return x.SwitchPos }
func (x *SwitchStatement) End() token.Pos { return x.RBrace.Add(1) }

// CatchClause is "catch [(param)] block".
type CatchClause struct {
	node
	CatchPos token.Pos
	LParen   token.Pos // invalid if Param == nil
	Param    BindingName
	RParen   token.Pos
	Type     Type // the ": unknown" annotation, if present
	Block    *Block
}

func (c *CatchClause) Pos() token.Pos { return c.CatchPos }
func (c *CatchClause) End() token.Pos { return c.Block.End() }

// TryStatement is "try block [catch] [finally]".
type TryStatement struct {
	node
	TryPos      token.Pos
	Block       *Block
	Catch       *CatchClause // nil if there is no catch clause
	FinallyPos  token.Pos
	Finally     *Block // nil if there is no finally clause
}

func (x *TryStatement) Pos() token.Pos { return x.TryPos }
func (x *TryStatement) End() token.Pos {
	if x.Finally != nil {
		return x.Finally.End()
	}
	if x.Catch != nil {
		return x.Catch.End()
	}
	return x.Block.End()
}

// ThrowStatement is "throw expr;".
type ThrowStatement struct {
	node
	ThrowPos  token.Pos
	Expr      Expr
	Semicolon token.Pos
}

func (x *ThrowStatement) Pos() token.Pos { return x.ThrowPos }
func (x *ThrowStatement) End() token.Pos { return x.Semicolon }

// ReturnStatement is "return [expr];".
type ReturnStatement struct {
	node
	ReturnPos token.Pos
	Expr      Expr // nil for a bare "return;"
	Semicolon token.Pos
}

func (x *ReturnStatement) Pos() token.Pos { return x.ReturnPos }
func (x *ReturnStatement) End() token.Pos { return x.Semicolon }

// BreakStatement is "break [label];".
type BreakStatement struct {
	node
	BreakPos  token.Pos
	Label     *Ident // nil for an unlabeled break
	Semicolon token.Pos
}

func (x *BreakStatement) Pos() token.Pos { return x.BreakPos }
func (x *BreakStatement) End() token.Pos { return x.Semicolon }

// ContinueStatement is "continue [label];".
type ContinueStatement struct {
	node
	ContinuePos token.Pos
	Label       *Ident
	Semicolon   token.Pos
}

func (x *ContinueStatement) Pos() token.Pos { return x.ContinuePos }
func (x *ContinueStatement) End() token.Pos { return x.Semicolon }

// LabeledStatement is "label: stmt".
type LabeledStatement struct {
	node
	Label *Ident
	Colon token.Pos
	Stmt  Stmt
}

func (x *LabeledStatement) Pos() token.Pos { return x.Label.Pos() }
func (x *LabeledStatement) End() token.Pos { return x.Stmt.End() }

// EmptyStatement is a bare ";".
type EmptyStatement struct {
	node
	Semicolon token.Pos
}

func (x *EmptyStatement) Pos() token.Pos { return x.Semicolon }
func (x *EmptyStatement) End() token.Pos { return x.Semicolon.Add(1) }

// DebuggerStatement is "debugger;".
type DebuggerStatement struct {
	node
	DebuggerPos token.Pos
	Semicolon   token.Pos
}

func (x *DebuggerStatement) Pos() token.Pos { return x.DebuggerPos }
func (x *DebuggerStatement) End() token.Pos { return x.Semicolon }

// WithStatement is "with (expr) body", retained for completeness even
// though it is invalid in strict-mode and module code.
type WithStatement struct {
	node
	WithPos token.Pos
	Expr    Expr
	Body    Stmt
}

func (x *WithStatement) Pos() token.Pos { return x.WithPos }
func (x *WithStatement) End() token.Pos { return x.Body.End() }

// FunctionDeclaration is "modifiers function* name<T>(params): Ret { body }".
type FunctionDeclaration struct {
	node
	Modifiers   []Modifier
	FunctionPos token.Pos
	Star        token.Pos
	Generator   bool
	Name        *Ident // nil only for a default-exported anonymous function
	FunctionLikeHeader
	Body *Block // nil for an ambient/overload signature
}

func (x *FunctionDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.FunctionPos
}
func (x *FunctionDeclaration) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	if x.ReturnType != nil {
		return x.ReturnType.End()
	}
	return x.RParen.Add(1)
}

// ClassDeclaration is a top-level or nested class declaration.
type ClassDeclaration struct {
	node
	classHeader
}

func (x *ClassDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.ClassPos
}
func (x *ClassDeclaration) End() token.Pos { return x.RBrace.Add(1) }
