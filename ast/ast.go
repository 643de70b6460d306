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

// Package ast declares the types used to represent TypeScript syntax
// trees.
//
// There are five main classes of node: expressions, statements,
// declarations, types, and the handful of node kinds (parameters,
// clauses, JSX attributes) that belong to more than one production.
// Node names generally match the TypeScript grammar production they
// correspond to. Every node carries position information marking the
// beginning and end of its source text, accessible via Pos and End,
// plus any comments attached to it while parsing.
package ast

import "github.com/typeforge/tsparse/token"

// A Node represents any node in the abstract syntax tree.
type Node interface {
	Pos() token.Pos // position of the first character belonging to the node
	End() token.Pos // position of the first character immediately after the node

	Comments() []*CommentGroup
	AddComment(*CommentGroup)

	// HasError reports whether a parse error was recorded while this
	// node, or one of its descendants consumed during the same parse
	// step, was being constructed.
	HasError() bool
	markError()
}

// An Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// A Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// A Decl is implemented by every declaration node: the statement forms
// that introduce a binding or a type (variable, function, class,
// interface, type alias, enum, module/namespace, import, export).
type Decl interface {
	Stmt
	declNode()
}

// A Type is implemented by every type-annotation node.
type Type interface {
	Node
	typeNode()
}

// A Label is any production that can appear as a property name:
// plain identifiers, string and numeric literals, private names, and
// computed property names.
type Label interface {
	Node
	labelNode()
}

// A BindingName is any production that can appear on the left of a
// binding: a plain identifier or a destructuring pattern.
type BindingName interface {
	Node
	bindingNameNode()
}

// node embeds the bookkeeping every concrete node needs: its attached
// comments and the sticky error flag. It is not itself exported; every
// concrete node type embeds it by value.
type node struct {
	comments []*CommentGroup
	hasError bool
}

func (n *node) Comments() []*CommentGroup { return n.comments }

func (n *node) AddComment(cg *CommentGroup) {
	if cg == nil {
		return
	}
	n.comments = append(n.comments, cg)
}

func (n *node) HasError() bool { return n.hasError }
func (n *node) markError()     { n.hasError = true }

// MarkError flags n as having been constructed while a parse error was
// pending, so a later consumer (a type checker, a linter) can skip
// deeper analysis of an already-broken subtree. The parser is the only
// intended caller.
func MarkError(n Node) { n.markError() }
