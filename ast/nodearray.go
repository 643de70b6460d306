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

// NodeArray wraps an ordered list of child nodes together with the
// position information the parser captured around them: the span
// includes any delimiters (commas, a trailing comma) so a printer can
// reconstruct source exactly, and IsMissingList flags a list the
// parser synthesized empty after a parse error rather than one the
// source genuinely left empty.
type NodeArray[T Node] struct {
	Elements         []T
	ListPos          token.Pos
	ListEnd          token.Pos
	HasTrailingComma bool
	IsMissingList    bool
}

// Pos returns the position of the list's opening delimiter, or of its
// first element if no delimiter was captured.
func (a NodeArray[T]) Pos() token.Pos {
	if a.ListPos.IsValid() {
		return a.ListPos
	}
	if len(a.Elements) > 0 {
		return a.Elements[0].Pos()
	}
	return token.NoPos
}

// End returns the position just past the list's closing delimiter, or
// past its last element if no delimiter was captured.
func (a NodeArray[T]) End() token.Pos {
	if a.ListEnd.IsValid() {
		return a.ListEnd
	}
	if n := len(a.Elements); n > 0 {
		return a.Elements[n-1].End()
	}
	return token.NoPos
}

// Len reports the number of elements, for callers that would rather
// not reach into Elements directly.
func (a NodeArray[T]) Len() int { return len(a.Elements) }
