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

// HeritageClause is an "extends ..." or "implements ..." clause on a
// class or interface. Kind is token.EXTENDS or token.IMPLEMENTS.
type HeritageClause struct {
	node
	Kind  token.Token
	Start token.Pos
	Types NodeArray[*ExpressionWithTypeArgs]
}

func (h *HeritageClause) Pos() token.Pos { return h.Start }
func (h *HeritageClause) End() token.Pos { return h.Types.End() }

// ExpressionWithTypeArgs is "Base<T>" as it appears in a heritage
// clause or in an interface's base-type list.
type ExpressionWithTypeArgs struct {
	node
	Expr     Expr
	TypeArgs *NodeArray[Type]
}

func (x *ExpressionWithTypeArgs) Pos() token.Pos { return x.Expr.Pos() }
func (x *ExpressionWithTypeArgs) End() token.Pos {
	if x.TypeArgs != nil {
		return x.TypeArgs.End()
	}
	return x.Expr.End()
}

// ClassMember is implemented by every node that may appear in a class
// body: properties, methods, accessors, constructors, index
// signatures, and static blocks.
type ClassMember interface {
	Node
	classMemberNode()
}

func (*PropertyDeclaration) classMemberNode()  {}
func (*MethodDeclaration) classMemberNode()    {}
func (*Constructor) classMemberNode()          {}
func (*GetAccessor) classMemberNode()          {}
func (*SetAccessor) classMemberNode()          {}
func (*IndexSignature) classMemberNode()       {}
func (*ClassStaticBlock) classMemberNode()     {}
func (*SemicolonClassElement) classMemberNode() {}

// PropertyDeclaration is a class field: "modifiers name?: Type = init;".
type PropertyDeclaration struct {
	node
	Modifiers   []Modifier
	Name        PropertyName
	Question    token.Pos
	Optional    bool
	Exclaim     token.Pos // definite-assignment assertion "!"
	Definite    bool
	Type        Type
	Initializer Expr
	Semicolon   token.Pos
}

func (x *PropertyDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.Name.Pos()
}
func (x *PropertyDeclaration) End() token.Pos { return x.Semicolon }

// MethodDeclaration is a class method or an object-literal method
// shorthand: "modifiers name<T>(params): RetType { body }".
type MethodDeclaration struct {
	node
	Modifiers []Modifier
	Star      token.Pos
	Generator bool
	Name      PropertyName
	Question  token.Pos
	Optional  bool
	FunctionLikeHeader
	Body *Block // nil for an interface/ambient method signature
}

func (x *MethodDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.Name.Pos()
}
func (x *MethodDeclaration) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	if x.ReturnType != nil {
		return x.ReturnType.End()
	}
	return x.RParen.Add(1)
}

// Constructor is a class constructor.
type Constructor struct {
	node
	Modifiers   []Modifier
	ConstructorPos token.Pos
	LParen      token.Pos
	Params      NodeArray[*Parameter]
	RParen      token.Pos
	Body        *Block
}

func (x *Constructor) Pos() token.Pos { return x.ConstructorPos }
func (x *Constructor) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.RParen.Add(1)
}

// GetAccessor and SetAccessor are "get name(): T { ... }" and
// "set name(value: T) { ... }".
type GetAccessor struct {
	node
	Modifiers []Modifier
	GetPos    token.Pos
	Name      PropertyName
	FunctionLikeHeader
	Body *Block
}

func (x *GetAccessor) Pos() token.Pos { return x.GetPos }
func (x *GetAccessor) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.RParen.Add(1)
}
func (x *GetAccessor) labelNode() {}

type SetAccessor struct {
	node
	Modifiers []Modifier
	SetPos    token.Pos
	Name      PropertyName
	FunctionLikeHeader
	Body *Block
}

func (x *SetAccessor) Pos() token.Pos { return x.SetPos }
func (x *SetAccessor) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.RParen.Add(1)
}
func (x *SetAccessor) labelNode() {}

// IndexSignature is "[key: KeyType]: ValueType" in a class or
// interface body.
type IndexSignature struct {
	node
	Modifiers []Modifier
	LBracket  token.Pos
	Param     *Parameter
	RBracket  token.Pos
	Type      Type
}

func (x *IndexSignature) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.LBracket
}
func (x *IndexSignature) End() token.Pos { return x.Type.End() }

// ClassStaticBlock is a "static { ... }" initialization block.
type ClassStaticBlock struct {
	node
	StaticPos token.Pos
	Body      *Block
}

func (x *ClassStaticBlock) Pos() token.Pos { return x.StaticPos }
func (x *ClassStaticBlock) End() token.Pos { return x.Body.End() }

// SemicolonClassElement is a stray ";" inside a class body, preserved
// so a printer reproduces it rather than silently dropping it.
type SemicolonClassElement struct {
	node
	Semicolon token.Pos
}

func (x *SemicolonClassElement) Pos() token.Pos { return x.Semicolon }
func (x *SemicolonClassElement) End() token.Pos { return x.Semicolon.Add(1) }

// classHeader holds the fields shared by ClassDeclaration and
// ClassExpr: a class's name, type parameters, and heritage clauses.
type classHeader struct {
	Modifiers  []Modifier
	ClassPos   token.Pos
	Name       *Ident // nil for an anonymous default-exported class
	TypeParams *NodeArray[*TypeParameter]
	Heritage   []*HeritageClause
	LBrace     token.Pos
	Members    NodeArray[ClassMember]
	RBrace     token.Pos
}

// ClassExpr is a class expression, legal anywhere an expression is.
type ClassExpr struct {
	node
	classHeader
}

func (x *ClassExpr) Pos() token.Pos { return x.ClassPos }
func (x *ClassExpr) End() token.Pos { return x.RBrace.Add(1) }
