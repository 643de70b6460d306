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

func (*BadType) typeNode()            {}
func (*KeywordType) typeNode()        {}
func (*TypeReference) typeNode()      {}
func (*UnionType) typeNode()          {}
func (*IntersectionType) typeNode()   {}
func (*ArrayType) typeNode()          {}
func (*TupleType) typeNode()          {}
func (*NamedTupleMember) typeNode()   {}
func (*OptionalType) typeNode()       {}
func (*RestType) typeNode()           {}
func (*FunctionType) typeNode()       {}
func (*ConstructorType) typeNode()    {}
func (*ConditionalType) typeNode()    {}
func (*InferType) typeNode()          {}
func (*MappedType) typeNode()         {}
func (*TypeLiteral) typeNode()        {}
func (*IndexedAccessType) typeNode()  {}
func (*TypeOperatorType) typeNode()   {}
func (*ParenthesizedType) typeNode()  {}
func (*LiteralType) typeNode()        {}
func (*TemplateLiteralType) typeNode() {}
func (*TypePredicate) typeNode()      {}
func (*ImportType) typeNode()         {}

// BadType is a placeholder for a type the parser could not parse.
type BadType struct {
	node
	From, To token.Pos
}

func (x *BadType) Pos() token.Pos { return x.From }
func (x *BadType) End() token.Pos { return x.To }

// KeywordType is one of the built-in type keywords: any, unknown,
// number, string, boolean, void, never, object, symbol, bigint,
// undefined, or null used in type position.
type KeywordType struct {
	node
	KeywordPos token.Pos
	Keyword    token.Token
}

func (x *KeywordType) Pos() token.Pos { return x.KeywordPos }
func (x *KeywordType) End() token.Pos { return x.KeywordPos.Add(len(x.Keyword.String())) }

// EntityName is a possibly-dotted name as it appears in a type
// position: "Foo" or "Foo.Bar.Baz".
type EntityName struct {
	node
	Qualifier *EntityName // nil for the leftmost segment
	Dot       token.Pos
	Name      *Ident
}

func (n *EntityName) Pos() token.Pos {
	if n.Qualifier != nil {
		return n.Qualifier.Pos()
	}
	return n.Name.Pos()
}
func (n *EntityName) End() token.Pos { return n.Name.End() }

// TypeReference is "Name<TypeArgs>".
type TypeReference struct {
	node
	Name     *EntityName
	TypeArgs *NodeArray[Type]
}

func (x *TypeReference) Pos() token.Pos { return x.Name.Pos() }
func (x *TypeReference) End() token.Pos {
	if x.TypeArgs != nil {
		return x.TypeArgs.End()
	}
	return x.Name.End()
}

// UnionType is "A | B | C".
type UnionType struct {
	node
	Types NodeArray[Type]
}

func (x *UnionType) Pos() token.Pos { return x.Types.Pos() }
func (x *UnionType) End() token.Pos { return x.Types.End() }

// IntersectionType is "A & B & C".
type IntersectionType struct {
	node
	Types NodeArray[Type]
}

func (x *IntersectionType) Pos() token.Pos { return x.Types.Pos() }
func (x *IntersectionType) End() token.Pos { return x.Types.End() }

// ArrayType is "ElementType[]".
type ArrayType struct {
	node
	Element  Type
	LBracket token.Pos
	RBracket token.Pos
}

func (x *ArrayType) Pos() token.Pos { return x.Element.Pos() }
func (x *ArrayType) End() token.Pos { return x.RBracket.Add(1) }

// TupleType is "[T1, T2, ...Rest]".
type TupleType struct {
	node
	LBracket token.Pos
	Elements NodeArray[Type]
	RBracket token.Pos
}

func (x *TupleType) Pos() token.Pos { return x.LBracket }
func (x *TupleType) End() token.Pos { return x.RBracket.Add(1) }

// NamedTupleMember is "label?: Type" or "label: ...Type" inside a
// tuple type.
type NamedTupleMember struct {
	node
	DotDotDot token.Pos
	Rest      bool
	Label     *Ident
	Question  token.Pos
	Optional  bool
	Type      Type
}

func (x *NamedTupleMember) Pos() token.Pos {
	if x.Rest {
		return x.DotDotDot
	}
	return x.Label.Pos()
}
func (x *NamedTupleMember) End() token.Pos { return x.Type.End() }

// OptionalType is "Type?" inside a tuple type.
type OptionalType struct {
	node
	Type     Type
	Question token.Pos
}

func (x *OptionalType) Pos() token.Pos { return x.Type.Pos() }
func (x *OptionalType) End() token.Pos { return x.Question.Add(1) }

// RestType is "...Type" inside a tuple type.
type RestType struct {
	node
	DotDotDot token.Pos
	Type      Type
}

func (x *RestType) Pos() token.Pos { return x.DotDotDot }
func (x *RestType) End() token.Pos { return x.Type.End() }

// FunctionType is "<T>(params) => Ret".
type FunctionType struct {
	node
	TypeParams *NodeArray[*TypeParameter]
	LParen     token.Pos
	Params     NodeArray[*Parameter]
	RParen     token.Pos
	Arrow      token.Pos
	ReturnType Type
}

func (x *FunctionType) Pos() token.Pos {
	if x.TypeParams != nil {
		return x.TypeParams.Pos()
	}
	return x.LParen
}
func (x *FunctionType) End() token.Pos { return x.ReturnType.End() }

// ConstructorType is "new <T>(params) => Ret".
type ConstructorType struct {
	node
	NewPos     token.Pos
	TypeParams *NodeArray[*TypeParameter]
	LParen     token.Pos
	Params     NodeArray[*Parameter]
	RParen     token.Pos
	Arrow      token.Pos
	ReturnType Type
}

func (x *ConstructorType) Pos() token.Pos { return x.NewPos }
func (x *ConstructorType) End() token.Pos { return x.ReturnType.End() }

// ConditionalType is "Check extends Extends ? True : False".
type ConditionalType struct {
	node
	Check    Type
	Extends  Type
	True     Type
	False    Type
}

func (x *ConditionalType) Pos() token.Pos { return x.Check.Pos() }
func (x *ConditionalType) End() token.Pos { return x.False.End() }

// InferType is "infer Name [extends Constraint]" inside a conditional
// type's Extends clause.
type InferType struct {
	node
	InferPos   token.Pos
	Name       *Ident
	Constraint Type
}

func (x *InferType) Pos() token.Pos { return x.InferPos }
func (x *InferType) End() token.Pos {
	if x.Constraint != nil {
		return x.Constraint.End()
	}
	return x.Name.End()
}

// MappedTypeModifier is the "+"/"-" prefix on "readonly" or "?" in a
// mapped type, e.g. "-readonly" or "+?".
type MappedTypeModifier int

const (
	ModifierNone MappedTypeModifier = iota
	ModifierPlus
	ModifierMinus
)

// MappedType is "{ [K in Keys]: Value }" with its optional readonly
// and optional modifiers and "as" name remapping clause.
type MappedType struct {
	node
	LBrace         token.Pos
	ReadonlyMod    MappedTypeModifier
	Readonly       bool
	TypeParam      *TypeParameter
	NameType       Type // the "as NameType" clause, nil if absent
	QuestionMod    MappedTypeModifier
	Optional       bool
	Type           Type
	RBrace         token.Pos
}

func (x *MappedType) Pos() token.Pos { return x.LBrace }
func (x *MappedType) End() token.Pos { return x.RBrace.Add(1) }

// TypeMember is implemented by the members of a TypeLiteral or an
// interface body: properties, methods, call/construct signatures, and
// index signatures.
type TypeMember interface {
	Node
	typeMemberNode()
}

func (*PropertySignature) typeMemberNode() {}
func (*MethodSignature) typeMemberNode()   {}
func (*CallSignature) typeMemberNode()     {}
func (*ConstructSignature) typeMemberNode() {}
func (*IndexSignature) typeMemberNode()    {}

// PropertySignature is "name?: Type;" in an interface or type literal.
type PropertySignature struct {
	node
	Modifiers []Modifier
	Name      PropertyName
	Question  token.Pos
	Optional  bool
	Type      Type
}

func (x *PropertySignature) Pos() token.Pos { return x.Name.Pos() }
func (x *PropertySignature) End() token.Pos {
	if x.Type != nil {
		return x.Type.End()
	}
	return x.Name.End()
}
func (x *PropertySignature) labelNode() {}

// MethodSignature is "name<T>(params): Ret;" in an interface or type
// literal.
type MethodSignature struct {
	node
	Name     PropertyName
	Question token.Pos
	Optional bool
	FunctionLikeHeader
}

func (x *MethodSignature) Pos() token.Pos { return x.Name.Pos() }
func (x *MethodSignature) End() token.Pos {
	if x.ReturnType != nil {
		return x.ReturnType.End()
	}
	return x.RParen.Add(1)
}

// CallSignature is "<T>(params): Ret;" with no name, in an interface
// or type literal.
type CallSignature struct {
	node
	FunctionLikeHeader
}

func (x *CallSignature) Pos() token.Pos {
	if x.TypeParams != nil {
		return x.TypeParams.Pos()
	}
	return x.LParen
}
func (x *CallSignature) End() token.Pos {
	if x.ReturnType != nil {
		return x.ReturnType.End()
	}
	return x.RParen.Add(1)
}

// ConstructSignature is "new <T>(params): Ret;".
type ConstructSignature struct {
	node
	NewPos token.Pos
	FunctionLikeHeader
}

func (x *ConstructSignature) Pos() token.Pos { return x.NewPos }
func (x *ConstructSignature) End() token.Pos {
	if x.ReturnType != nil {
		return x.ReturnType.End()
	}
	return x.RParen.Add(1)
}

// TypeLiteral is an inline "{ ...members }" used as a type.
type TypeLiteral struct {
	node
	LBrace  token.Pos
	Members NodeArray[TypeMember]
	RBrace  token.Pos
}

func (x *TypeLiteral) Pos() token.Pos { return x.LBrace }
func (x *TypeLiteral) End() token.Pos { return x.RBrace.Add(1) }

// IndexedAccessType is "T[K]".
type IndexedAccessType struct {
	node
	Object   Type
	LBracket token.Pos
	Index    Type
	RBracket token.Pos
}

func (x *IndexedAccessType) Pos() token.Pos { return x.Object.Pos() }
func (x *IndexedAccessType) End() token.Pos { return x.RBracket.Add(1) }

// TypeOperatorType is "keyof T", "unique T", "readonly T", or the type
// query "typeof x" in type position (distinct from the readonly
// modifier on a mapped type).
type TypeOperatorType struct {
	node
	OpPos token.Pos
	Op    token.Token // KEYOF, UNIQUE, READONLY, or TYPEOF
	Type  Type
}

func (x *TypeOperatorType) Pos() token.Pos { return x.OpPos }
func (x *TypeOperatorType) End() token.Pos { return x.Type.End() }

// ParenthesizedType is "(T)", kept distinct so printers can reproduce
// the parentheses a precedence-driven parse needed.
type ParenthesizedType struct {
	node
	LParen token.Pos
	Type   Type
	RParen token.Pos
}

func (x *ParenthesizedType) Pos() token.Pos { return x.LParen }
func (x *ParenthesizedType) End() token.Pos { return x.RParen.Add(1) }

// LiteralType is a literal value used as a type: a string, numeric,
// boolean, bigint, or (with Negative set) negated numeric literal.
type LiteralType struct {
	node
	Negative token.Pos
	IsNeg    bool
	Literal  Expr // *BasicLit, *Ident (true/false/null), or *NoSubstitutionTemplate
}

func (x *LiteralType) Pos() token.Pos {
	if x.IsNeg {
		return x.Negative
	}
	return x.Literal.Pos()
}
func (x *LiteralType) End() token.Pos { return x.Literal.End() }

// TemplateLiteralType is a template literal type:
// `prefix${Type}middle${Type}suffix`.
type TemplateLiteralType struct {
	node
	HeadPos token.Pos
	Head    string
	Spans   []*TemplateLiteralTypeSpan
}

func (x *TemplateLiteralType) Pos() token.Pos { return x.HeadPos }
func (x *TemplateLiteralType) End() token.Pos {
	if n := len(x.Spans); n > 0 {
		return x.Spans[n-1].End()
	}
	return x.HeadPos.Add(len(x.Head))
}

// TemplateLiteralTypeSpan is one "${Type}literal" pair in a template
// literal type.
type TemplateLiteralTypeSpan struct {
	node
	Type    Type
	Literal string
	LitEnd  token.Pos
}

func (s *TemplateLiteralTypeSpan) Pos() token.Pos { return s.Type.Pos() }
func (s *TemplateLiteralTypeSpan) End() token.Pos { return s.LitEnd }

// TypePredicate is "asserts x" , "asserts x is T", or "x is T" as a
// function's return-type annotation.
type TypePredicate struct {
	node
	AssertsPos token.Pos
	Asserts    bool
	ParamName  Node // *Ident or a *ThisExpr
	IsPos      token.Pos
	Type       Type // nil for a bare "asserts x"
}

func (x *TypePredicate) Pos() token.Pos {
	if x.Asserts {
		return x.AssertsPos
	}
	return x.ParamName.Pos()
}
func (x *TypePredicate) End() token.Pos {
	if x.Type != nil {
		return x.Type.End()
	}
	return x.ParamName.End()
}

// ImportType is "import(\"module\").Name<Args>", the type-position
// dynamic-import form used to reference a type without a static
// import declaration.
type ImportType struct {
	node
	ImportPos token.Pos
	Argument  Type // a LiteralType wrapping the module specifier string
	Qualifier *EntityName
	TypeArgs  *NodeArray[Type]
}

func (x *ImportType) Pos() token.Pos { return x.ImportPos }
func (x *ImportType) End() token.Pos {
	if x.TypeArgs != nil {
		return x.TypeArgs.End()
	}
	if x.Qualifier != nil {
		return x.Qualifier.End()
	}
	return x.Argument.End()
}
