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

// TypeParameter is one entry of a "<T extends U = D>" clause.
type TypeParameter struct {
	node
	Modifiers  []Modifier
	Name       *Ident
	Constraint Type // nil if no "extends" clause
	Default    Type // nil if no "=" clause
}

func (p *TypeParameter) Pos() token.Pos { return p.Name.Pos() }
func (p *TypeParameter) End() token.Pos {
	switch {
	case p.Default != nil:
		return p.Default.End()
	case p.Constraint != nil:
		return p.Constraint.End()
	default:
		return p.Name.End()
	}
}

// Modifier is a single keyword modifier token (public, private,
// protected, readonly, static, abstract, override, async, export,
// default, declare, const, in, out) together with its
// position, so a printer can reproduce modifier order exactly.
type Modifier struct {
	Pos token.Pos
	Kind token.Token
}

// Parameter is one entry of a function, method, or arrow function's
// parameter list.
type Parameter struct {
	node
	Modifiers    []Modifier // constructor parameter properties only
	DotDotDot    token.Pos  // valid only when Rest is true
	Rest         bool
	Name         BindingName
	Question     token.Pos // valid only when Optional is true
	Optional     bool
	Type         Type // nil if unannotated
	EqualsToken  token.Pos
	Initializer  Expr // nil if no default value
}

func (p *Parameter) Pos() token.Pos {
	if p.Rest {
		return p.DotDotDot
	}
	if len(p.Modifiers) > 0 {
		return p.Modifiers[0].Pos
	}
	return p.Name.Pos()
}

func (p *Parameter) End() token.Pos {
	switch {
	case p.Initializer != nil:
		return p.Initializer.End()
	case p.Type != nil:
		return p.Type.End()
	default:
		return p.Name.End()
	}
}

// ObjectBindingPattern is "{ a, b: c, ...rest }" used as a binding
// name in a parameter, variable declaration, or for/of loop.
type ObjectBindingPattern struct {
	node
	LBrace   token.Pos
	Elements NodeArray[*BindingElement]
	RBrace   token.Pos
}

func (p *ObjectBindingPattern) Pos() token.Pos   { return p.LBrace }
func (p *ObjectBindingPattern) End() token.Pos    { return p.RBrace.Add(1) }
func (p *ObjectBindingPattern) bindingNameNode() {}

// ArrayBindingPattern is "[a, , ...rest]" used as a binding name.
type ArrayBindingPattern struct {
	node
	LBracket token.Pos
	Elements NodeArray[*BindingElement]
	RBracket token.Pos
}

func (p *ArrayBindingPattern) Pos() token.Pos   { return p.LBracket }
func (p *ArrayBindingPattern) End() token.Pos    { return p.RBracket.Add(1) }
func (p *ArrayBindingPattern) bindingNameNode() {}

// BindingElement is one element of an object or array binding
// pattern: "name", "name = default", "propertyName: name", "...rest",
// or an elision (Name == nil) inside an array pattern.
type BindingElement struct {
	node
	DotDotDot    token.Pos
	Rest         bool
	PropertyName PropertyName // non-nil only for "propertyName: name"
	Name         BindingName  // nil for an elided array-pattern slot
	Initializer  Expr
}

func (b *BindingElement) Pos() token.Pos {
	if b.Rest {
		return b.DotDotDot
	}
	if b.PropertyName != nil {
		return b.PropertyName.Pos()
	}
	if b.Name != nil {
		return b.Name.Pos()
	}
	return token.NoPos
}

func (b *BindingElement) End() token.Pos {
	switch {
	case b.Initializer != nil:
		return b.Initializer.End()
	case b.Name != nil:
		return b.Name.End()
	default:
		return b.Pos()
	}
}

// FunctionLikeHeader holds the fields shared by every function-shaped
// node: a function declaration/expression, a method, an accessor, and
// an arrow function all have a type-parameter list, a parameter list,
// and an optional return-type annotation.
type FunctionLikeHeader struct {
	TypeParams *NodeArray[*TypeParameter]
	LParen     token.Pos
	Params     NodeArray[*Parameter]
	RParen     token.Pos
	ReturnType Type
}

// FunctionExpr is a function expression: "function name(...) { ... }",
// the name is optional.
type FunctionExpr struct {
	node
	Modifiers   []Modifier
	FunctionPos token.Pos
	Star        token.Pos // valid only when Generator is true
	Generator   bool
	Name        *Ident // nil for an anonymous function expression
	FunctionLikeHeader
	Body *Block
}

func (x *FunctionExpr) Pos() token.Pos { return x.FunctionPos }
func (x *FunctionExpr) End() token.Pos { return x.Body.End() }

// ArrowFunction is "(...) => body" or "async (...) => body", where
// body is either a Block or a bare Expr.
type ArrowFunction struct {
	node
	Modifiers []Modifier
	FunctionLikeHeader
	Arrow token.Pos
	Body  Node // *Block or Expr
}

func (x *ArrowFunction) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	if x.TypeParams != nil {
		return x.TypeParams.Pos()
	}
	return x.LParen
}

func (x *ArrowFunction) End() token.Pos { return x.Body.End() }
