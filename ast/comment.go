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

// A Comment node represents a single line (//) or block (/* */)
// comment.
type Comment struct {
	Slash token.Pos // position of the comment's opening character
	Text  string    // comment text, including the delimiters
	Block bool      // true for /* */ comments, false for // comments
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return c.Slash.Add(len(c.Text)) }

// A CommentGroup is a run of comments with no other tokens and no
// blank line between them. JSDoc-style groups (those beginning with
// "/**") are marked Doc; a group that starts on the same source line
// as the end of the preceding node is marked Line rather than Lead.
type CommentGroup struct {
	List []*Comment // len(List) > 0
	Doc  bool
	Line bool
}

func (g *CommentGroup) Pos() token.Pos { return g.List[0].Pos() }
func (g *CommentGroup) End() token.Pos { return g.List[len(g.List)-1].End() }
