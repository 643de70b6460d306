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

package parser

// ContextFlags is a bitset of grammar-sensitive parser context: "are
// we inside a generator", "can 'in' appear in an unparenthesized
// expression", and similar facts the ECMAScript grammar threads
// through productions as [Yield], [Await], [In] parameters.
//
// Every flag except FIn is off in the common case; FIn is on by
// default (the parser seeds it) and cleared only in a for-loop head's
// init clause. A node parsed in the ordinary context therefore needs
// no extra bookkeeping; only nodes parsed in an unusual context
// (inside a generator, inside a for-loop head) pay for the distinction. Flags are carried as a plain
// function parameter through the recursive descent, not as parser
// fields: entering and leaving a production is then an ordinary Go
// call, with no save/restore bookkeeping required even across
// speculative parses.
type ContextFlags uint16

const (
	// FYield is set while parsing inside a generator function body; it
	// makes `yield` a keyword rather than an identifier and allows
	// YieldExpression.
	FYield ContextFlags = 1 << iota
	// FAwait is set while parsing inside an async function body; it
	// makes `await` a keyword rather than an identifier and allows
	// AwaitExpression.
	FAwait
	// FIn is cleared while parsing a for-loop head's init clause, where
	// a bare `in` would be ambiguous with the loop's own `in` keyword.
	FIn
	// FDisallowConditionalTypes is set while parsing the check/extends
	// operands of a conditional type, where an un-parenthesized nested
	// conditional type would be ambiguous.
	FDisallowConditionalTypes
	// FAmbient is set while parsing the body of a `declare` block: it
	// relaxes the requirement that function/method bodies be present.
	FAmbient
	// FDecoratorContext marks that a decorator's expression is being
	// parsed, where a bare CallExpression is allowed but a
	// comma-expression is not.
	FDecoratorContext
)

func (f ContextFlags) has(bit ContextFlags) bool { return f&bit != 0 }
func (f ContextFlags) with(bit ContextFlags, on bool) ContextFlags {
	if on {
		return f | bit
	}
	return f &^ bit
}

// ParsingContext names the list-parsing productions the parser can be
// in the middle of. isAtListTerminator takes one to decide, for that
// list kind, whether the token in hand closes the list, and String
// names the list kind in words. The names and
// grouping follow the TypeScript compiler's ParsingContext enum.
type ParsingContext int

const (
	SourceElements ParsingContext = iota
	BlockStatements
	SwitchClauses
	SwitchClauseStatements
	TypeMembers
	ClassMembers
	EnumMembers
	HeritageClauseElement
	VariableDeclarations
	ObjectBindingElements
	ArrayBindingElements
	ArgumentExpressions
	ObjectLiteralMembers
	JsxAttributes
	JsxChildren
	ArrayLiteralMembers
	Parameters
	RestProperties
	TypeParameters
	TypeArguments
	TupleElementTypes
	HeritageClauses
	ImportOrExportSpecifiers
)

func (c ParsingContext) String() string {
	switch c {
	case SourceElements:
		return "top-level declarations"
	case BlockStatements:
		return "statements"
	case SwitchClauses:
		return "case clauses"
	case SwitchClauseStatements:
		return "statements"
	case TypeMembers:
		return "type members"
	case ClassMembers:
		return "class members"
	case EnumMembers:
		return "enum members"
	case HeritageClauseElement:
		return "base types"
	case VariableDeclarations:
		return "variable declarations"
	case ObjectBindingElements:
		return "binding elements"
	case ArrayBindingElements:
		return "binding elements"
	case ArgumentExpressions:
		return "arguments"
	case ObjectLiteralMembers:
		return "properties"
	case JsxAttributes:
		return "JSX attributes"
	case JsxChildren:
		return "JSX children"
	case ArrayLiteralMembers:
		return "array elements"
	case Parameters:
		return "parameters"
	case RestProperties:
		return "properties"
	case TypeParameters:
		return "type parameters"
	case TypeArguments:
		return "type arguments"
	case TupleElementTypes:
		return "tuple element types"
	case HeritageClauses:
		return "heritage clauses"
	case ImportOrExportSpecifiers:
		return "import/export specifiers"
	default:
		return "list"
	}
}
