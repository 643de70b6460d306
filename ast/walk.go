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

import "fmt"

// Walk traverses an AST in depth-first order: it starts by calling
// before(node); node must not be nil. If before returns true, Walk
// recurses into each non-nil child of node, followed by a call to
// after. Either function may be nil; a nil before is treated as always
// returning true.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	v := &inspector{before: before, after: after}
	walk(node, v.Before, v.After)
}

// A Visitor's Before method is invoked for each node Walk encounters.
// If the returned Visitor w is non-nil, WalkVisitor visits node's
// children with w, followed by a call to w.After.
type Visitor interface {
	Before(node Node) (w Visitor)
	After(node Node)
}

// WalkVisitor traverses an AST in depth-first order using a Visitor.
func WalkVisitor(node Node, visitor Visitor) {
	v := &stackVisitor{stack: []Visitor{visitor}}
	walk(node, v.Before, v.After)
}

type stackVisitor struct {
	stack []Visitor
}

func (v *stackVisitor) Before(node Node) bool {
	current := v.stack[len(v.stack)-1]
	next := current.Before(node)
	if next == nil {
		return false
	}
	v.stack = append(v.stack, next)
	return true
}

func (v *stackVisitor) After(node Node) {
	v.stack[len(v.stack)-1] = nil
	v.stack = v.stack[:len(v.stack)-1]
}

func walkList[N Node](list []N, before func(Node) bool, after func(Node)) {
	for _, n := range list {
		walk(n, before, after)
	}
}

func walkArray[N Node](arr NodeArray[N], before func(Node) bool, after func(Node)) {
	walkList(arr.Elements, before, after)
}

func walkArrayPtr[N Node](arr *NodeArray[N], before func(Node) bool, after func(Node)) {
	if arr != nil {
		walkList(arr.Elements, before, after)
	}
}

// ForEachChild invokes f on each direct, non-nil child of node, in
// source order, stopping early if f returns false. It reports whether
// every child was visited (false means f asked to stop).
func ForEachChild(node Node, f func(Node) bool) bool {
	ok := true
	visit := func(n Node) bool {
		if !ok {
			return false
		}
		if n != nil {
			ok = f(n)
		}
		return ok
	}
	walk(node, func(n Node) bool {
		if n == node {
			return true
		}
		visit(n)
		return false
	}, func(Node) {})
	return ok
}

func walk(node Node, before func(Node) bool, after func(Node)) {
	if node == nil || !before(node) {
		return
	}

	switch n := node.(type) {
	// Expressions
	case *BadExpr, *Ident, *PrivateIdent, *BasicLit, *RegexLit,
		*NoSubstitutionTemplate, *OmittedExpr, *ThisExpr, *SuperExpr,
		*TemplateMiddleOrTail, *JSXText:
		// nothing to do

	case *TemplateSpan:
		walk(n.Expr, before, after)
		walk(&n.Literal, before, after)
	case *TemplateExpr:
		for _, s := range n.Spans {
			walk(s, before, after)
		}
	case *TaggedTemplateExpr:
		walk(n.Tag, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
		walk(n.Template, before, after)
	case *ArrayLit:
		walkArray(n.Elements, before, after)
	case *ObjectLit:
		walkArray(n.Properties, before, after)
	case *ComputedPropertyName:
		walk(n.Expr, before, after)
	case *PropertyAssignment:
		walk(n.Name, before, after)
		walk(n.Value, before, after)
	case *ShorthandPropertyAssignment:
		walk(n.Name, before, after)
		if n.ObjectAssignmentInitializer != nil {
			walk(n.ObjectAssignmentInitializer, before, after)
		}
	case *SpreadAssignment:
		walk(n.Expr, before, after)
	case *SpreadElement:
		walk(n.Expr, before, after)
	case *ParenExpr:
		walk(n.Expr, before, after)
	case *FunctionExpr:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *ArrowFunction:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		walk(n.Body, before, after)
	case *ClassExpr:
		walkArrayPtr(n.TypeParams, before, after)
		walkList(n.Heritage, before, after)
		walkArray(n.Members, before, after)
	case *PrefixUnaryExpr:
		walk(n.Operand, before, after)
	case *PostfixUnaryExpr:
		walk(n.Operand, before, after)
	case *BinaryExpr:
		walk(n.X, before, after)
		walk(n.Y, before, after)
	case *ConditionalExpr:
		walk(n.Cond, before, after)
		walk(n.Then, before, after)
		walk(n.Else, before, after)
	case *CallExpr:
		walk(n.Callee, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
		walkArray(n.Args, before, after)
	case *NewExpr:
		walk(n.Callee, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
		if n.Args != nil {
			walkArrayPtr(n.Args, before, after)
		}
	case *PropertyAccessExpr:
		walk(n.Expr, before, after)
		walk(n.Name, before, after)
	case *ElementAccessExpr:
		walk(n.Expr, before, after)
		walk(n.Index, before, after)
	case *NonNullExpr:
		walk(n.Expr, before, after)
	case *AsExpr:
		walk(n.Expr, before, after)
		walk(n.Type, before, after)
	case *SatisfiesExpr:
		walk(n.Expr, before, after)
		walk(n.Type, before, after)
	case *TypeAssertionExpr:
		walk(n.Type, before, after)
		walk(n.Expr, before, after)
	case *YieldExpr:
		if n.Expr != nil {
			walk(n.Expr, before, after)
		}
	case *AwaitExpr:
		walk(n.Expr, before, after)

	// JSX
	case *JSXNamespacedName:
		walk(n.Namespace, before, after)
		walk(n.Name, before, after)
	case *JSXPropertyAccess:
		walk(n.Expr, before, after)
		walk(n.Name, before, after)
	case *JSXAttribute:
		walk(n.Name, before, after)
		if n.Value != nil {
			walk(n.Value, before, after)
		}
	case *JSXSpreadAttribute:
		walk(n.Expr, before, after)
	case *JSXExpressionContainer:
		if n.Expr != nil {
			walk(n.Expr, before, after)
		}
	case *JSXOpeningElement:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
		walkArray(n.Attributes, before, after)
	case *JSXClosingElement:
		walk(n.Name, before, after)
	case *JSXElement:
		walk(n.Opening, before, after)
		walkArray(n.Children, before, after)
		if n.Closing != nil {
			walk(n.Closing, before, after)
		}
	case *JSXSelfClosingElement:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
		walkArray(n.Attributes, before, after)
	case *JSXFragment:
		walkArray(n.Children, before, after)

	// Bindings, parameters, functions
	case *TypeParameter:
		walk(n.Name, before, after)
		if n.Constraint != nil {
			walk(n.Constraint, before, after)
		}
		if n.Default != nil {
			walk(n.Default, before, after)
		}
	case *Parameter:
		walk(n.Name, before, after)
		if n.Type != nil {
			walk(n.Type, before, after)
		}
		if n.Initializer != nil {
			walk(n.Initializer, before, after)
		}
	case *ObjectBindingPattern:
		walkArray(n.Elements, before, after)
	case *ArrayBindingPattern:
		walkArray(n.Elements, before, after)
	case *BindingElement:
		if n.PropertyName != nil {
			walk(n.PropertyName, before, after)
		}
		if n.Name != nil {
			walk(n.Name, before, after)
		}
		if n.Initializer != nil {
			walk(n.Initializer, before, after)
		}

	// Class members
	case *HeritageClause:
		walkArray(n.Types, before, after)
	case *ExpressionWithTypeArgs:
		walk(n.Expr, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
	case *PropertyDeclaration:
		walk(n.Name, before, after)
		if n.Type != nil {
			walk(n.Type, before, after)
		}
		if n.Initializer != nil {
			walk(n.Initializer, before, after)
		}
	case *MethodDeclaration:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *Constructor:
		walkArray(n.Params, before, after)
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *GetAccessor:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *SetAccessor:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *IndexSignature:
		walk(n.Param, before, after)
		walk(n.Type, before, after)
	case *ClassStaticBlock:
		walk(n.Body, before, after)
	case *SemicolonClassElement:
		// nothing to do

	// Statements
	case *BadStmt:
		// nothing to do
	case *Block:
		walkArray(n.Statements, before, after)
	case *VariableDeclaration:
		walk(n.Name, before, after)
		if n.Type != nil {
			walk(n.Type, before, after)
		}
		if n.Initializer != nil {
			walk(n.Initializer, before, after)
		}
	case *VariableDeclarationList:
		walkArray(n.Declarations, before, after)
	case *VariableStatement:
		walk(n.List, before, after)
	case *ExpressionStatement:
		walk(n.Expr, before, after)
	case *IfStatement:
		walk(n.Cond, before, after)
		walk(n.Then, before, after)
		if n.Else != nil {
			walk(n.Else, before, after)
		}
	case exprForInit:
		walk(n.Expr, before, after)
	case *ForStatement:
		if n.Init != nil {
			walk(n.Init, before, after)
		}
		if n.Cond != nil {
			walk(n.Cond, before, after)
		}
		if n.Post != nil {
			walk(n.Post, before, after)
		}
		walk(n.Body, before, after)
	case *ForInStatement:
		walk(n.Init, before, after)
		walk(n.Expr, before, after)
		walk(n.Body, before, after)
	case *ForOfStatement:
		walk(n.Init, before, after)
		walk(n.Expr, before, after)
		walk(n.Body, before, after)
	case *WhileStatement:
		walk(n.Cond, before, after)
		walk(n.Body, before, after)
	case *DoStatement:
		walk(n.Body, before, after)
		walk(n.Cond, before, after)
	case *CaseOrDefaultClause:
		if n.Test != nil {
			walk(n.Test, before, after)
		}
		walkArray(n.Statements, before, after)
	case *SwitchStatement:
		walk(n.Expr, before, after)
		walkArray(n.Clauses, before, after)
	case *CatchClause:
		if n.Param != nil {
			walk(n.Param, before, after)
		}
		if n.Type != nil {
			walk(n.Type, before, after)
		}
		walk(n.Block, before, after)
	case *TryStatement:
		walk(n.Block, before, after)
		if n.Catch != nil {
			walk(n.Catch, before, after)
		}
		if n.Finally != nil {
			walk(n.Finally, before, after)
		}
	case *ThrowStatement:
		walk(n.Expr, before, after)
	case *ReturnStatement:
		if n.Expr != nil {
			walk(n.Expr, before, after)
		}
	case *BreakStatement:
		if n.Label != nil {
			walk(n.Label, before, after)
		}
	case *ContinueStatement:
		if n.Label != nil {
			walk(n.Label, before, after)
		}
	case *LabeledStatement:
		walk(n.Label, before, after)
		walk(n.Stmt, before, after)
	case *EmptyStatement, *DebuggerStatement:
		// nothing to do
	case *WithStatement:
		walk(n.Expr, before, after)
		walk(n.Body, before, after)
	case *FunctionDeclaration:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *ClassDeclaration:
		if n.Name != nil {
			walk(n.Name, before, after)
		}
		walkArrayPtr(n.TypeParams, before, after)
		walkList(n.Heritage, before, after)
		walkArray(n.Members, before, after)

	// Types
	case *BadType, *KeywordType:
		// nothing to do
	case *EntityName:
		if n.Qualifier != nil {
			walk(n.Qualifier, before, after)
		}
		walk(n.Name, before, after)
	case *TypeReference:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeArgs, before, after)
	case *UnionType:
		walkArray(n.Types, before, after)
	case *IntersectionType:
		walkArray(n.Types, before, after)
	case *ArrayType:
		walk(n.Element, before, after)
	case *TupleType:
		walkArray(n.Elements, before, after)
	case *NamedTupleMember:
		if n.Label != nil {
			walk(n.Label, before, after)
		}
		walk(n.Type, before, after)
	case *OptionalType:
		walk(n.Type, before, after)
	case *RestType:
		walk(n.Type, before, after)
	case *FunctionType:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		walk(n.ReturnType, before, after)
	case *ConstructorType:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		walk(n.ReturnType, before, after)
	case *ConditionalType:
		walk(n.Check, before, after)
		walk(n.Extends, before, after)
		walk(n.True, before, after)
		walk(n.False, before, after)
	case *InferType:
		walk(n.Name, before, after)
		if n.Constraint != nil {
			walk(n.Constraint, before, after)
		}
	case *MappedType:
		if n.TypeParam != nil {
			walk(n.TypeParam, before, after)
		}
		if n.NameType != nil {
			walk(n.NameType, before, after)
		}
		if n.Type != nil {
			walk(n.Type, before, after)
		}
	case *TypeLiteral:
		walkArray(n.Members, before, after)
	case *IndexedAccessType:
		walk(n.Object, before, after)
		walk(n.Index, before, after)
	case *TypeOperatorType:
		walk(n.Type, before, after)
	case *ParenthesizedType:
		walk(n.Type, before, after)
	case *LiteralType:
		walk(n.Literal, before, after)
	case *TemplateLiteralType:
		for _, s := range n.Spans {
			walk(s, before, after)
		}
	case *TemplateLiteralTypeSpan:
		walk(n.Type, before, after)
	case *TypePredicate:
		walk(n.ParamName, before, after)
		if n.Type != nil {
			walk(n.Type, before, after)
		}
	case *ImportType:
		walk(n.Argument, before, after)
		if n.Qualifier != nil {
			walk(n.Qualifier, before, after)
		}
		walkArrayPtr(n.TypeArgs, before, after)

	// Type members
	case *PropertySignature:
		walk(n.Name, before, after)
		if n.Type != nil {
			walk(n.Type, before, after)
		}
	case *MethodSignature:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
	case *CallSignature:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}
	case *ConstructSignature:
		walkArrayPtr(n.TypeParams, before, after)
		walkArray(n.Params, before, after)
		if n.ReturnType != nil {
			walk(n.ReturnType, before, after)
		}

	// Declarations and source file
	case *InterfaceDeclaration:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walkList(n.Heritage, before, after)
		walkArray(n.Members, before, after)
	case *TypeAliasDeclaration:
		walk(n.Name, before, after)
		walkArrayPtr(n.TypeParams, before, after)
		walk(n.Type, before, after)
	case *EnumMember:
		walk(n.Name, before, after)
		if n.Initializer != nil {
			walk(n.Initializer, before, after)
		}
	case *EnumDeclaration:
		walk(n.Name, before, after)
		walkArray(n.Members, before, after)
	case *ModuleDeclaration:
		if n.Name != nil {
			walk(n.Name, before, after)
		}
		if n.Body != nil {
			walk(n.Body, before, after)
		}
	case *ModuleBlock:
		walkArray(n.Statements, before, after)
	case *ImportSpecifier:
		walk(n.Name, before, after)
		if n.Alias != nil {
			walk(n.Alias, before, after)
		}
	case *ImportClause:
		if n.Default != nil {
			walk(n.Default, before, after)
		}
		if n.NamespaceName != nil {
			walk(n.NamespaceName, before, after)
		}
		walkArrayPtr(n.Named, before, after)
	case *ImportDeclaration:
		if n.Clause != nil {
			walk(n.Clause, before, after)
		}
		walk(n.ModuleSpec, before, after)
		walkArrayPtr(n.Attributes, before, after)
	case *ImportEqualsDeclaration:
		walk(n.Name, before, after)
		walk(n.ModuleRef, before, after)
	case *ExportSpecifier:
		walk(n.Name, before, after)
		if n.Alias != nil {
			walk(n.Alias, before, after)
		}
	case *ExportDeclaration:
		if n.Namespace != nil {
			walk(n.Namespace, before, after)
		}
		walkArrayPtr(n.Named, before, after)
		if n.ModuleSpec != nil {
			walk(n.ModuleSpec, before, after)
		}
	case *ExportAssignment:
		walk(n.Expr, before, after)
	case *SourceFile:
		walkArray(n.Statements, before, after)

	default:
		panic(fmt.Sprintf("ast: Walk: unexpected node type %T", n))
	}

	after(node)
}

type inspector struct {
	before func(Node) bool
	after  func(Node)
}

func (f *inspector) Before(node Node) bool {
	if f.before == nil {
		return true
	}
	return f.before(node)
}

func (f *inspector) After(node Node) {
	if f.after != nil {
		f.after(node)
	}
}
