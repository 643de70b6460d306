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

// JSXTagName is the name of a JSX element, either a plain identifier
// ("div"), a dotted member chain ("Foo.Bar"), or a namespaced name
// ("svg:rect").
type JSXTagName interface {
	Node
	jsxTagNameNode()
}

func (*Ident) jsxTagNameNode() {}

// JSXNamespacedName is "ns:name" in tag-name or attribute-name
// position.
type JSXNamespacedName struct {
	node
	Namespace *Ident
	Colon     token.Pos
	Name      *Ident
}

func (x *JSXNamespacedName) Pos() token.Pos { return x.Namespace.Pos() }
func (x *JSXNamespacedName) End() token.Pos { return x.Name.End() }
func (x *JSXNamespacedName) jsxTagNameNode() {}

// JSXPropertyAccess is "Foo.Bar" in tag-name position.
type JSXPropertyAccess struct {
	node
	Expr JSXTagName
	Dot  token.Pos
	Name *Ident
}

func (x *JSXPropertyAccess) Pos() token.Pos  { return x.Expr.Pos() }
func (x *JSXPropertyAccess) End() token.Pos  { return x.Name.End() }
func (x *JSXPropertyAccess) jsxTagNameNode() {}

// JSXAttributeLike is implemented by the two kinds of entries a JSX
// opening tag's attribute list may hold.
type JSXAttributeLike interface {
	Node
	jsxAttributeNode()
}

// JSXAttribute is "name" or "name={expr}" or "name=\"literal\"".
type JSXAttribute struct {
	node
	Name  JSXTagName
	Equal token.Pos
	Value Node // nil, *BasicLit (string), *JSXExpressionContainer, or *JSXElement/*JSXFragment
}

func (x *JSXAttribute) Pos() token.Pos { return x.Name.Pos() }
func (x *JSXAttribute) End() token.Pos {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Name.End()
}
func (x *JSXAttribute) jsxAttributeNode() {}

// JSXSpreadAttribute is "{...expr}" inside an opening tag.
type JSXSpreadAttribute struct {
	node
	LBrace    token.Pos
	DotDotDot token.Pos
	Expr      Expr
	RBrace    token.Pos
}

func (x *JSXSpreadAttribute) Pos() token.Pos { return x.LBrace }
func (x *JSXSpreadAttribute) End() token.Pos { return x.RBrace.Add(1) }
func (x *JSXSpreadAttribute) jsxAttributeNode() {}

// JSXExpressionContainer is "{expr}" in child or attribute-value
// position. Expr is nil for an empty container holding only a
// comment, "{/* comment */}".
type JSXExpressionContainer struct {
	node
	LBrace    token.Pos
	DotDotDot token.Pos // valid only when HasSpread is true (child position)
	HasSpread bool
	Expr      Expr
	RBrace    token.Pos
}

func (x *JSXExpressionContainer) Pos() token.Pos { return x.LBrace }
func (x *JSXExpressionContainer) End() token.Pos { return x.RBrace.Add(1) }

// JSXText is raw character data between JSX tags.
type JSXText struct {
	node
	TextPos       token.Pos
	Text          string
	ContainsOnlyTriviaWhiteSpace bool
}

func (x *JSXText) Pos() token.Pos { return x.TextPos }
func (x *JSXText) End() token.Pos { return x.TextPos.Add(len(x.Text)) }

// JSXChild is implemented by every node that may appear between an
// opening and closing JSX tag.
type JSXChild interface {
	Node
	jsxChildNode()
}

func (*JSXText) jsxChildNode()                {}
func (*JSXExpressionContainer) jsxChildNode()  {}
func (*JSXElement) jsxChildNode()              {}
func (*JSXSelfClosingElement) jsxChildNode()   {}
func (*JSXFragment) jsxChildNode()             {}

// JSXOpeningElement is "<Name attrs>".
type JSXOpeningElement struct {
	node
	LAngle     token.Pos
	Name       JSXTagName
	TypeArgs   *NodeArray[Type]
	Attributes NodeArray[JSXAttributeLike]
	RAngle     token.Pos
}

func (x *JSXOpeningElement) Pos() token.Pos { return x.LAngle }
func (x *JSXOpeningElement) End() token.Pos { return x.RAngle.Add(1) }

// JSXClosingElement is "</Name>".
type JSXClosingElement struct {
	node
	LAngle token.Pos
	Slash  token.Pos
	Name   JSXTagName
	RAngle token.Pos
}

func (x *JSXClosingElement) Pos() token.Pos { return x.LAngle }
func (x *JSXClosingElement) End() token.Pos { return x.RAngle.Add(1) }

// JSXElement is "<Name attrs>children</Name>".
type JSXElement struct {
	node
	Opening  *JSXOpeningElement
	Children NodeArray[JSXChild]
	Closing  *JSXClosingElement
}

func (x *JSXElement) Pos() token.Pos { return x.Opening.Pos() }
func (x *JSXElement) End() token.Pos {
	if x.Closing != nil {
		return x.Closing.End()
	}
	return x.Opening.End()
}

// JSXSelfClosingElement is "<Name attrs/>".
type JSXSelfClosingElement struct {
	node
	LAngle     token.Pos
	Name       JSXTagName
	TypeArgs   *NodeArray[Type]
	Attributes NodeArray[JSXAttributeLike]
	Slash      token.Pos
	RAngle     token.Pos
}

func (x *JSXSelfClosingElement) Pos() token.Pos { return x.LAngle }
func (x *JSXSelfClosingElement) End() token.Pos { return x.RAngle.Add(1) }

// JSXFragment is "<>children</>".
type JSXFragment struct {
	node
	OpeningFragment token.Pos // position of the opening "<>"
	Children        NodeArray[JSXChild]
	ClosingFragment token.Pos // position of the closing "</>"
	ClosingEnd      token.Pos
}

func (x *JSXFragment) Pos() token.Pos { return x.OpeningFragment }
func (x *JSXFragment) End() token.Pos { return x.ClosingEnd }
