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

// ScriptTarget is the ECMAScript language version a file is parsed
// against. It currently only affects SourceFile.LanguageVersion
// bookkeeping; the grammar itself does not yet vary by target.
type ScriptTarget int

const (
	ES5 ScriptTarget = iota + 1
	ES2015
	ES2016
	ES2017
	ES2018
	ES2019
	ES2020
	ES2021
	ES2022
	ESNext
)

// Latest is the default target a caller gets when it doesn't specify
// one.
const Latest = ESNext

func (t ScriptTarget) String() string {
	switch t {
	case ES5:
		return "ES5"
	case ES2015:
		return "ES2015"
	case ES2016:
		return "ES2016"
	case ES2017:
		return "ES2017"
	case ES2018:
		return "ES2018"
	case ES2019:
		return "ES2019"
	case ES2020:
		return "ES2020"
	case ES2021:
		return "ES2021"
	case ES2022:
		return "ES2022"
	case ESNext:
		return "ESNext"
	}
	return "Unknown"
}

// ScriptKind classifies the file a SourceFile was built from: what
// sub-grammar and module semantics apply. Most callers never set this
// directly; it defaults to whatever the filename's extension implies.
type ScriptKind int

const (
	ScriptKindUnknown ScriptKind = iota
	ScriptKindJS
	ScriptKindJSX
	ScriptKindTS
	ScriptKindTSX
	ScriptKindExternal
	ScriptKindJSON
)

func (k ScriptKind) String() string {
	switch k {
	case ScriptKindJS:
		return "JS"
	case ScriptKindJSX:
		return "JSX"
	case ScriptKindTS:
		return "TS"
	case ScriptKindTSX:
		return "TSX"
	case ScriptKindExternal:
		return "External"
	case ScriptKindJSON:
		return "JSON"
	}
	return "Unknown"
}

// LanguageVariant says whether a file's grammar includes JSX element
// syntax. TSX and JSX script kinds imply LanguageVariantJSX; every
// other kind is LanguageVariantStandard.
type LanguageVariant int

const (
	LanguageVariantStandard LanguageVariant = iota
	LanguageVariantJSX
)

// NodeFlags records facts about a SourceFile discovered while parsing
// it, orthogonal to its script kind and target.
type NodeFlags uint32

const (
	// NodeFlagsContainsPossibleTopLevelAwait is set when the parser
	// sees an `await` expression at a depth that would be illegal
	// inside a non-module script but legal top-level await inside a
	// module. Whether it actually takes effect depends on the file
	// turning out to be an external module once parsing finishes.
	NodeFlagsContainsPossibleTopLevelAwait NodeFlags = 1 << iota
	// NodeFlagsExternalModule is set once the file is determined to
	// be an external module, either by a top-level import/export or
	// by the caller's ExternalModuleIndicator callback.
	NodeFlagsExternalModule
)

// Identifiers interns the spelling of every identifier encountered
// while parsing a file, so equal identifier strings across the file
// share one allocation. Looking a name up that was never interned
// just returns it unchanged.
type Identifiers map[string]string

// Intern returns the canonical instance of s if the table holds one,
// and s itself otherwise; it never adds s to the table.
func (t Identifiers) Intern(s string) string {
	if v, ok := t[s]; ok {
		return v
	}
	return s
}

// CommentDirectiveKind distinguishes the single-line comment
// directives the scanner recognizes while skipping trivia.
type CommentDirectiveKind int

const (
	// DirectiveExpectError marks a "// @ts-expect-error" comment: the
	// statement on the following line is expected to report an error.
	DirectiveExpectError CommentDirectiveKind = iota
	// DirectiveIgnore marks a "// @ts-ignore" comment: diagnostics on
	// the following line should be suppressed.
	DirectiveIgnore
)

// CommentDirective is one directive comment collected during a parse,
// along with the position of the comment itself.
type CommentDirective struct {
	Kind CommentDirectiveKind
	Pos  token.Pos
}
