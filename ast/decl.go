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

import (
	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/token"
)

// InterfaceDeclaration is "interface Name<T> extends Base { members }".
type InterfaceDeclaration struct {
	node
	Modifiers  []Modifier
	InterfacePos token.Pos
	Name       *Ident
	TypeParams *NodeArray[*TypeParameter]
	Heritage   []*HeritageClause
	LBrace     token.Pos
	Members    NodeArray[TypeMember]
	RBrace     token.Pos
}

func (x *InterfaceDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.InterfacePos
}
func (x *InterfaceDeclaration) End() token.Pos { return x.RBrace.Add(1) }

// TypeAliasDeclaration is "type Name<T> = Type;".
type TypeAliasDeclaration struct {
	node
	Modifiers   []Modifier
	TypePos     token.Pos
	Name        *Ident
	TypeParams  *NodeArray[*TypeParameter]
	EqualsToken token.Pos
	Type        Type
	Semicolon   token.Pos
}

func (x *TypeAliasDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.TypePos
}
func (x *TypeAliasDeclaration) End() token.Pos { return x.Semicolon }

// EnumMember is "Name = init" or "Name" inside an enum body.
type EnumMember struct {
	node
	Name        PropertyName
	EqualsToken token.Pos
	Initializer Expr
}

func (x *EnumMember) Pos() token.Pos { return x.Name.Pos() }
func (x *EnumMember) End() token.Pos {
	if x.Initializer != nil {
		return x.Initializer.End()
	}
	return x.Name.End()
}

// EnumDeclaration is "[const] enum Name { members }".
type EnumDeclaration struct {
	node
	Modifiers []Modifier
	EnumPos   token.Pos
	Name      *Ident
	LBrace    token.Pos
	Members   NodeArray[*EnumMember]
	RBrace    token.Pos
}

func (x *EnumDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.EnumPos
}
func (x *EnumDeclaration) End() token.Pos { return x.RBrace.Add(1) }

// ModuleName is the name of a module/namespace declaration: an
// identifier, a dotted identifier chain (namespace A.B.C), or a string
// literal (declare module "foo").
type ModuleName interface {
	Node
	moduleNameNode()
}

func (*Ident) moduleNameNode()     {}
func (*BasicLit) moduleNameNode()  {}

// ModuleDeclaration is "namespace Name { body }", "module Name {
// body }", or "declare module \"name\" { body }". Body is nil for an
// ambient module declaration with no body (rare, but legal after
// "declare module Name;" shorthand some codebases use for re-export
// shims).
type ModuleDeclaration struct {
	node
	Modifiers  []Modifier
	KeywordPos token.Pos
	Global     bool // true for "declare global { ... }"
	Name       ModuleName
	Body       *ModuleBlock
}

func (x *ModuleDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.KeywordPos
}
func (x *ModuleDeclaration) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	if x.Name != nil {
		return x.Name.End()
	}
	return x.KeywordPos
}

// ModuleBlock is the "{ ... }" body of a module/namespace declaration.
type ModuleBlock struct {
	node
	LBrace     token.Pos
	Statements NodeArray[Stmt]
	RBrace     token.Pos
}

func (x *ModuleBlock) Pos() token.Pos { return x.LBrace }
func (x *ModuleBlock) End() token.Pos { return x.RBrace.Add(1) }

// ImportSpecifier is one "Name" or "Name as Alias" entry of a named
// import clause.
type ImportSpecifier struct {
	node
	IsTypeOnly bool
	TypePos    token.Pos
	Name       *Ident
	AsPos      token.Pos
	Alias      *Ident // nil if there is no "as" clause
}

func (x *ImportSpecifier) Pos() token.Pos {
	if x.IsTypeOnly {
		return x.TypePos
	}
	return x.Name.Pos()
}
func (x *ImportSpecifier) End() token.Pos {
	if x.Alias != nil {
		return x.Alias.End()
	}
	return x.Name.End()
}

// ImportClause is the part of an import declaration between "import"
// and "from": "Default", "* as NS", "{ a, b as c }", or a combination
// of a default binding with one of the other two.
type ImportClause struct {
	node
	IsTypeOnly    bool
	TypePos       token.Pos
	Default       *Ident
	NamespacePos  token.Pos
	NamespaceName *Ident // non-nil for "* as NS"
	LBrace        token.Pos
	Named         *NodeArray[*ImportSpecifier]
	RBrace        token.Pos
}

func (x *ImportClause) Pos() token.Pos {
	if x.IsTypeOnly {
		return x.TypePos
	}
	if x.Default != nil {
		return x.Default.Pos()
	}
	if x.NamespaceName != nil {
		return x.NamespacePos
	}
	return x.LBrace
}
func (x *ImportClause) End() token.Pos {
	switch {
	case x.Named != nil:
		return x.RBrace.Add(1)
	case x.NamespaceName != nil:
		return x.NamespaceName.End()
	default:
		return x.Default.End()
	}
}

// ImportDeclaration is "import Clause from \"module\";" or a bare
// "import \"module\";" for its side effects.
type ImportDeclaration struct {
	node
	ImportPos  token.Pos
	Clause     *ImportClause // nil for a side-effect-only import
	FromPos    token.Pos
	ModuleSpec *BasicLit
	Attributes *NodeArray[*PropertyAssignment] // import attributes, if present
	Semicolon  token.Pos
}

func (x *ImportDeclaration) Pos() token.Pos { return x.ImportPos }
func (x *ImportDeclaration) End() token.Pos { return x.Semicolon }

// ImportEqualsDeclaration is "import Name = require(\"module\");" or
// "import Name = Qualified.Name;".
type ImportEqualsDeclaration struct {
	node
	Modifiers   []Modifier
	ImportPos   token.Pos
	Name        *Ident
	EqualsToken token.Pos
	ModuleRef   Node // *EntityName, or an Expr for "require(...)"
	Semicolon   token.Pos
}

func (x *ImportEqualsDeclaration) Pos() token.Pos {
	if len(x.Modifiers) > 0 {
		return x.Modifiers[0].Pos
	}
	return x.ImportPos
}
func (x *ImportEqualsDeclaration) End() token.Pos { return x.Semicolon }

// ExportSpecifier is one "Name" or "Name as Alias" entry of a named
// export clause.
type ExportSpecifier struct {
	node
	IsTypeOnly bool
	TypePos    token.Pos
	Name       *Ident
	AsPos      token.Pos
	Alias      *Ident
}

func (x *ExportSpecifier) Pos() token.Pos {
	if x.IsTypeOnly {
		return x.TypePos
	}
	return x.Name.Pos()
}
func (x *ExportSpecifier) End() token.Pos {
	if x.Alias != nil {
		return x.Alias.End()
	}
	return x.Name.End()
}

// ExportDeclaration covers every "export ..." form that is not a
// direct declaration export: "export { a, b as c } [from \"m\"];",
// "export * from \"m\";", and "export * as ns from \"m\";".
type ExportDeclaration struct {
	node
	ExportPos  token.Pos
	IsTypeOnly bool
	TypePos    token.Pos
	Star       token.Pos // valid when Named == nil (an "export *" form)
	AsPos      token.Pos
	Namespace  *Ident // non-nil for "export * as ns"
	LBrace     token.Pos
	Named      *NodeArray[*ExportSpecifier] // nil for "export *" forms
	RBrace     token.Pos
	FromPos    token.Pos
	ModuleSpec *BasicLit // nil if there is no "from" clause
	Semicolon  token.Pos
}

func (x *ExportDeclaration) Pos() token.Pos { return x.ExportPos }
func (x *ExportDeclaration) End() token.Pos { return x.Semicolon }

// ExportAssignment is "export = expr;" or "export default expr;".
type ExportAssignment struct {
	node
	ExportPos   token.Pos
	IsExportEquals bool
	EqualsToken token.Pos
	DefaultPos  token.Pos
	Expr        Expr
	Semicolon   token.Pos
}

func (x *ExportAssignment) Pos() token.Pos { return x.ExportPos }
func (x *ExportAssignment) End() token.Pos { return x.Semicolon }

// SourceFile is the root of a parsed file's AST.
type SourceFile struct {
	node
	FileName          string
	Text              []byte
	File              *token.File
	Statements        NodeArray[Stmt]
	EndOfFileTok      token.Pos
	IsDeclarationFile bool

	LanguageVersion ScriptTarget
	LanguageVariant LanguageVariant
	ScriptKind      ScriptKind
	Flags           NodeFlags

	IdentifierCount int
	NodeCount       int
	Identifiers     Identifiers

	CommentDirectives []CommentDirective

	// ExternalModuleIndicator is the node that makes this file an
	// external module (an import or export), as decided either by the
	// caller's set-external-module-indicator callback or, absent one,
	// by the parser's own scan of the top-level statement list. Nil
	// means the file is an ordinary script.
	ExternalModuleIndicator Node

	// ParseDiagnostics holds every diagnostic raised while parsing the
	// statement grammar; JSDocDiagnostics is reserved for a future
	// JSDoc comment parser and is always empty today.
	ParseDiagnostics diagnostic.List
	JSDocDiagnostics diagnostic.List
}

func (f *SourceFile) Pos() token.Pos { return f.File.Pos(0, 0) }
func (f *SourceFile) End() token.Pos { return f.EndOfFileTok }
