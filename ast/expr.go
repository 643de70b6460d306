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

func (*BadExpr) exprNode()             {}
func (*Ident) exprNode()               {}
func (*PrivateIdent) exprNode()        {}
func (*BasicLit) exprNode()            {}
func (*NoSubstitutionTemplate) exprNode() {}
func (*TemplateExpr) exprNode()        {}
func (*TaggedTemplateExpr) exprNode()  {}
func (*RegexLit) exprNode()            {}
func (*ArrayLit) exprNode()            {}
func (*OmittedExpr) exprNode()         {}
func (*ObjectLit) exprNode()           {}
func (*SpreadElement) exprNode()       {}
func (*ParenExpr) exprNode()           {}
func (*FunctionExpr) exprNode()        {}
func (*ArrowFunction) exprNode()       {}
func (*ClassExpr) exprNode()           {}
func (*PrefixUnaryExpr) exprNode()     {}
func (*PostfixUnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()          {}
func (*ConditionalExpr) exprNode()     {}
func (*CallExpr) exprNode()            {}
func (*NewExpr) exprNode()             {}
func (*PropertyAccessExpr) exprNode()  {}
func (*ElementAccessExpr) exprNode()   {}
func (*NonNullExpr) exprNode()         {}
func (*AsExpr) exprNode()              {}
func (*SatisfiesExpr) exprNode()       {}
func (*TypeAssertionExpr) exprNode()   {}
func (*YieldExpr) exprNode()           {}
func (*AwaitExpr) exprNode()           {}
func (*ThisExpr) exprNode()            {}
func (*SuperExpr) exprNode()           {}
func (*JSXElement) exprNode()          {}
func (*JSXSelfClosingElement) exprNode() {}
func (*JSXFragment) exprNode()         {}

// BadExpr is a placeholder for an expression the parser could not
// make sense of. It always carries a comment-free span equal to the
// text it swallowed while trying to resynchronize.
type BadExpr struct {
	node
	From, To token.Pos
}

func (x *BadExpr) Pos() token.Pos { return x.From }
func (x *BadExpr) End() token.Pos { return x.To }

// Ident is a plain identifier reference or binding name.
type Ident struct {
	node
	NamePos token.Pos
	Name    string
}

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return x.NamePos.Add(len(x.Name)) }
func (x *Ident) bindingNameNode() {}
func (x *Ident) labelNode()       {}

// PrivateIdent is a class-private name, e.g. "#count".
type PrivateIdent struct {
	node
	NamePos token.Pos
	Name    string // includes the leading '#'
}

func (x *PrivateIdent) Pos() token.Pos { return x.NamePos }
func (x *PrivateIdent) End() token.Pos { return x.NamePos.Add(len(x.Name)) }
func (x *PrivateIdent) labelNode()     {}

// ThisExpr and SuperExpr are the `this` and `super` keyword
// expressions; they carry no data beyond their position.
type ThisExpr struct {
	node
	ThisPos token.Pos
}

func (x *ThisExpr) Pos() token.Pos { return x.ThisPos }
func (x *ThisExpr) End() token.Pos { return x.ThisPos.Add(len("this")) }

type SuperExpr struct {
	node
	SuperPos token.Pos
}

func (x *SuperExpr) Pos() token.Pos { return x.SuperPos }
func (x *SuperExpr) End() token.Pos { return x.SuperPos.Add(len("super")) }

// BasicLit is a numeric, BigInt, or string literal. Value holds the
// decoded value (see package literal for numbers; strings are decoded
// by the scanner directly); Raw preserves the exact source spelling so
// a printer can round-trip quote style and digit separators.
type BasicLit struct {
	node
	ValuePos token.Pos
	Kind     token.Token // token.NUMBER, token.BIGINT, or token.STRING
	Value    string
	Raw      string
}

func (x *BasicLit) Pos() token.Pos { return x.ValuePos }
func (x *BasicLit) End() token.Pos { return x.ValuePos.Add(len(x.Raw)) }
func (x *BasicLit) labelNode()     {}

// RegexLit is a regular-expression literal, kept distinct from
// BasicLit because it carries a pattern/flags split rather than a
// single decoded value.
type RegexLit struct {
	node
	ValuePos token.Pos
	Raw      string // full source text including slashes and flags
	Pattern  string
	Flags    string
}

func (x *RegexLit) Pos() token.Pos { return x.ValuePos }
func (x *RegexLit) End() token.Pos { return x.ValuePos.Add(len(x.Raw)) }

// NoSubstitutionTemplate is a template literal with no "${...}"
// substitutions, e.g. `hello`.
type NoSubstitutionTemplate struct {
	node
	ValuePos token.Pos
	Raw      string
	Cooked   string
}

func (x *NoSubstitutionTemplate) Pos() token.Pos { return x.ValuePos }
func (x *NoSubstitutionTemplate) End() token.Pos { return x.ValuePos.Add(len(x.Raw)) }

// TemplateSpan is one "${expr}literal" pair following a template
// head.
type TemplateSpan struct {
	node
	Expr    Expr
	Literal TemplateMiddleOrTail
}

func (s *TemplateSpan) Pos() token.Pos { return s.Expr.Pos() }
func (s *TemplateSpan) End() token.Pos { return s.Literal.End() }

// TemplateMiddleOrTail is the literal fragment between or after
// substitutions: "}...${" (middle) or "}...`" (tail).
type TemplateMiddleOrTail struct {
	node
	TokenPos token.Pos
	Raw      string
	Cooked   string
	IsTail   bool
}

func (t TemplateMiddleOrTail) Pos() token.Pos { return t.TokenPos }
func (t TemplateMiddleOrTail) End() token.Pos { return t.TokenPos.Add(len(t.Raw)) }

// TemplateExpr is a template literal containing at least one
// substitution: a TEMPLATE_HEAD followed by one or more TemplateSpans.
type TemplateExpr struct {
	node
	HeadPos token.Pos
	Raw     string // head's raw text, "...${"
	Cooked  string
	Spans   []*TemplateSpan
}

func (x *TemplateExpr) Pos() token.Pos { return x.HeadPos }
func (x *TemplateExpr) End() token.Pos {
	if n := len(x.Spans); n > 0 {
		return x.Spans[n-1].End()
	}
	return x.HeadPos.Add(len(x.Raw))
}

// TaggedTemplateExpr is `tag` applied to a template literal: tag`...`.
type TaggedTemplateExpr struct {
	node
	Tag      Expr
	TypeArgs *NodeArray[Type] // non-nil only for tag<T>`...`
	Template Expr             // *NoSubstitutionTemplate or *TemplateExpr
}

func (x *TaggedTemplateExpr) Pos() token.Pos { return x.Tag.Pos() }
func (x *TaggedTemplateExpr) End() token.Pos { return x.Template.End() }

// ArrayLit is an array literal; elements may include OmittedExpr for
// elisions ([1, , 3]) and SpreadElement for "...rest".
type ArrayLit struct {
	node
	LBracket token.Pos
	Elements NodeArray[Expr]
	RBracket token.Pos
}

func (x *ArrayLit) Pos() token.Pos { return x.LBracket }
func (x *ArrayLit) End() token.Pos { return x.RBracket.Add(1) }

// OmittedExpr represents an elided array element: the empty slot in
// [1, , 3].
type OmittedExpr struct {
	node
	AtPos token.Pos
}

func (x *OmittedExpr) Pos() token.Pos { return x.AtPos }
func (x *OmittedExpr) End() token.Pos { return x.AtPos }

// ObjectLit is an object literal; its properties are one of
// PropertyAssignment, ShorthandPropertyAssignment, MethodDeclaration,
// or SpreadAssignment.
type ObjectLit struct {
	node
	LBrace     token.Pos
	Properties NodeArray[ObjectLiteralElement]
	RBrace     token.Pos
}

func (x *ObjectLit) Pos() token.Pos { return x.LBrace }
func (x *ObjectLit) End() token.Pos { return x.RBrace.Add(1) }

// ObjectLiteralElement is implemented by every node that may appear as
// a member of an ObjectLit.
type ObjectLiteralElement interface {
	Node
	objectLiteralElementNode()
}

func (*PropertyAssignment) objectLiteralElementNode()          {}
func (*ShorthandPropertyAssignment) objectLiteralElementNode() {}
func (*SpreadAssignment) objectLiteralElementNode()            {}
func (*MethodDeclaration) objectLiteralElementNode()           {}
func (*GetAccessor) objectLiteralElementNode()                 {}
func (*SetAccessor) objectLiteralElementNode()                 {}

// PropertyName is any node valid as a property key: an identifier, a
// string or numeric literal, or a computed expression in brackets.
type PropertyName interface {
	Node
	propertyNameNode()
}

func (*Ident) propertyNameNode()         {}
func (*PrivateIdent) propertyNameNode()  {}
func (*BasicLit) propertyNameNode()      {}
func (*ComputedPropertyName) propertyNameNode() {}

// ComputedPropertyName is a property key written as `[expr]`.
type ComputedPropertyName struct {
	node
	LBracket token.Pos
	Expr     Expr
	RBracket token.Pos
}

func (x *ComputedPropertyName) Pos() token.Pos { return x.LBracket }
func (x *ComputedPropertyName) End() token.Pos { return x.RBracket.Add(1) }

// PropertyAssignment is "key: value" inside an object literal.
type PropertyAssignment struct {
	node
	Name  PropertyName
	Colon token.Pos
	Value Expr
}

func (x *PropertyAssignment) Pos() token.Pos { return x.Name.Pos() }
func (x *PropertyAssignment) End() token.Pos { return x.Value.End() }

// ShorthandPropertyAssignment is "{ x }" or "{ x = default }" (the
// latter only legal inside a destructuring pattern).
type ShorthandPropertyAssignment struct {
	node
	Name            *Ident
	EqualsToken     token.Pos
	ObjectAssignmentInitializer Expr // non-nil only with "= default"
}

func (x *ShorthandPropertyAssignment) Pos() token.Pos { return x.Name.Pos() }
func (x *ShorthandPropertyAssignment) End() token.Pos {
	if x.ObjectAssignmentInitializer != nil {
		return x.ObjectAssignmentInitializer.End()
	}
	return x.Name.End()
}

// SpreadAssignment is "...expr" inside an object literal.
type SpreadAssignment struct {
	node
	DotDotDot token.Pos
	Expr      Expr
}

func (x *SpreadAssignment) Pos() token.Pos { return x.DotDotDot }
func (x *SpreadAssignment) End() token.Pos { return x.Expr.End() }

// SpreadElement is "...expr" inside an array literal or a call's
// argument list.
type SpreadElement struct {
	node
	DotDotDot token.Pos
	Expr      Expr
}

func (x *SpreadElement) Pos() token.Pos { return x.DotDotDot }
func (x *SpreadElement) End() token.Pos { return x.Expr.End() }

// ParenExpr is a parenthesized expression, kept as its own node (not
// collapsed into its child) so position and comment information for
// the parentheses themselves is not lost.
type ParenExpr struct {
	node
	LParen token.Pos
	Expr   Expr
	RParen token.Pos
}

func (x *ParenExpr) Pos() token.Pos { return x.LParen }
func (x *ParenExpr) End() token.Pos { return x.RParen.Add(1) }

// PrefixUnaryExpr is "op operand" for ++, --, +, -, ~, !, typeof,
// void, and delete: all unary operators that precede their operand and
// do not need their own node shape.
type PrefixUnaryExpr struct {
	node
	OpPos   token.Pos
	Op      token.Token
	Operand Expr
}

func (x *PrefixUnaryExpr) Pos() token.Pos { return x.OpPos }
func (x *PrefixUnaryExpr) End() token.Pos { return x.Operand.End() }

// PostfixUnaryExpr is "operand op" for postfix ++ and --.
type PostfixUnaryExpr struct {
	node
	Operand Expr
	Op      token.Token
	OpEnd   token.Pos
}

func (x *PostfixUnaryExpr) Pos() token.Pos { return x.Operand.Pos() }
func (x *PostfixUnaryExpr) End() token.Pos { return x.OpEnd }

// BinaryExpr covers every left-operand/operator/right-operand
// expression: arithmetic, comparison, logical, bitwise, assignment,
// comma, `in`, `instanceof`.
type BinaryExpr struct {
	node
	X     Expr
	OpPos token.Pos
	Op    token.Token
	Y     Expr
}

func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }

// ConditionalExpr is "cond ? then : else".
type ConditionalExpr struct {
	node
	Cond      Expr
	Question  token.Pos
	Then      Expr
	Colon     token.Pos
	Else      Expr
}

func (x *ConditionalExpr) Pos() token.Pos { return x.Cond.Pos() }
func (x *ConditionalExpr) End() token.Pos { return x.Else.End() }

// CallExpr is "callee<TypeArgs>(Args)", optionally preceded by "?."
// for an optional call in a chain.
type CallExpr struct {
	node
	Callee       Expr
	QuestionDot  token.Pos // valid only when Optional is true
	Optional     bool
	TypeArgs     *NodeArray[Type]
	LParen       token.Pos
	Args         NodeArray[Expr]
	RParen       token.Pos
}

func (x *CallExpr) Pos() token.Pos { return x.Callee.Pos() }
func (x *CallExpr) End() token.Pos { return x.RParen.Add(1) }

// NewExpr is "new callee<TypeArgs>(Args)". Args is nil for "new Foo"
// without a following "(...)".
type NewExpr struct {
	node
	NewPos   token.Pos
	Callee   Expr
	TypeArgs *NodeArray[Type]
	LParen   token.Pos // invalid if Args == nil
	Args     *NodeArray[Expr]
	RParen   token.Pos
}

func (x *NewExpr) Pos() token.Pos { return x.NewPos }
func (x *NewExpr) End() token.Pos {
	if x.Args != nil {
		return x.RParen.Add(1)
	}
	return x.Callee.End()
}

// PropertyAccessExpr is "expr.name" or, with Optional set, "expr?.name".
type PropertyAccessExpr struct {
	node
	Expr        Expr
	QuestionDot token.Pos
	Optional    bool
	DotPos      token.Pos
	Name        *Ident
}

func (x *PropertyAccessExpr) Pos() token.Pos { return x.Expr.Pos() }
func (x *PropertyAccessExpr) End() token.Pos { return x.Name.End() }

// ElementAccessExpr is "expr[index]" or, with Optional set,
// "expr?.[index]".
type ElementAccessExpr struct {
	node
	Expr        Expr
	QuestionDot token.Pos
	Optional    bool
	LBracket    token.Pos
	Index       Expr
	RBracket    token.Pos
}

func (x *ElementAccessExpr) Pos() token.Pos { return x.Expr.Pos() }
func (x *ElementAccessExpr) End() token.Pos { return x.RBracket.Add(1) }

// NonNullExpr is "expr!", the non-null assertion operator.
type NonNullExpr struct {
	node
	Expr  Expr
	Bang  token.Pos
}

func (x *NonNullExpr) Pos() token.Pos { return x.Expr.Pos() }
func (x *NonNullExpr) End() token.Pos { return x.Bang.Add(1) }

// AsExpr is "expr as Type".
type AsExpr struct {
	node
	Expr Expr
	As   token.Pos
	Type Type
}

func (x *AsExpr) Pos() token.Pos { return x.Expr.Pos() }
func (x *AsExpr) End() token.Pos { return x.Type.End() }

// SatisfiesExpr is "expr satisfies Type".
type SatisfiesExpr struct {
	node
	Expr      Expr
	Satisfies token.Pos
	Type      Type
}

func (x *SatisfiesExpr) Pos() token.Pos { return x.Expr.Pos() }
func (x *SatisfiesExpr) End() token.Pos { return x.Type.End() }

// TypeAssertionExpr is the legacy "<Type>expr" cast form, only legal
// outside .tsx files.
type TypeAssertionExpr struct {
	node
	LAngle token.Pos
	Type   Type
	RAngle token.Pos
	Expr   Expr
}

func (x *TypeAssertionExpr) Pos() token.Pos { return x.LAngle }
func (x *TypeAssertionExpr) End() token.Pos { return x.Expr.End() }

// YieldExpr is "yield expr" or "yield* expr" inside a generator.
type YieldExpr struct {
	node
	YieldPos token.Pos
	Star     token.Pos // valid only when HasStar is true
	HasStar  bool
	Expr     Expr // nil for a bare "yield;"
}

func (x *YieldExpr) Pos() token.Pos { return x.YieldPos }
func (x *YieldExpr) End() token.Pos {
	if x.Expr != nil {
		return x.Expr.End()
	}
	if x.HasStar {
		return x.Star.Add(1)
	}
	return x.YieldPos.Add(len("yield"))
}

// AwaitExpr is "await expr" inside an async function.
type AwaitExpr struct {
	node
	AwaitPos token.Pos
	Expr     Expr
}

func (x *AwaitExpr) Pos() token.Pos { return x.AwaitPos }
func (x *AwaitExpr) End() token.Pos { return x.Expr.End() }
