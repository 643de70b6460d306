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

import (
	"github.com/typeforge/tsparse/ast"
	"github.com/typeforge/tsparse/scanner"
	"github.com/typeforge/tsparse/token"
)

// speculationKind distinguishes the three ways a parse can be
// attempted and then possibly undone: a pure lookahead always
// rewinds, a tryParse commits only on success and otherwise undoes
// everything including any diagnostics raised along the way, and a
// reparse replays from a caller-supplied mark rather than the current
// position and, even on failure, keeps whatever diagnostics the
// attempt produced, since those describe a real problem with that span
// regardless of which interpretation ultimately wins.
type speculationKind int

const (
	speculationLookahead speculationKind = iota
	speculationTryParse
	speculationReparse
)

// mark is a full snapshot of everything speculative parsing needs to
// undo: the scanner's lexical state plus the handful of parser fields
// that change outside of ordinary node construction. Context flags are
// threaded as plain parameters (see flags.go) rather than stored here,
// so they never need to be part of a mark.
type mark struct {
	scan        scanner.Snapshot
	pos         token.Pos
	tok         token.Token
	lit         string
	raw         string
	leadComment *ast.CommentGroup
	errCount    int
	parseError  bool
}

func (p *parser) mark() mark {
	return mark{
		scan:        p.scanner.Save(),
		pos:         p.pos,
		tok:         p.tok,
		lit:         p.lit,
		raw:         p.raw,
		leadComment: p.leadComment,
		errCount:    len(p.errors),
		parseError:  p.parseErrorBeforeNextFinishedNode,
	}
}

// rewindTo repositions the scanner and one-token lookahead at m,
// without touching accumulated diagnostics. reset builds on this to
// additionally discard diagnostics raised since m.
func (p *parser) rewindTo(m mark) {
	p.scanner.Restore(m.scan)
	p.pos, p.tok, p.lit, p.raw = m.pos, m.tok, m.lit, m.raw
	p.leadComment = m.leadComment
	p.parseErrorBeforeNextFinishedNode = m.parseError
}

func (p *parser) reset(m mark) {
	p.rewindTo(m)
	p.errors = p.errors[:m.errCount]
}

// speculationHelper runs fn, optionally starting from a caller-
// supplied mark rather than the parser's current position, and
// decides what to undo once fn returns based on kind:
//
//   - speculationLookahead always fully restores, win or lose.
//   - speculationTryParse keeps everything on success; on failure it
//     fully restores, diagnostics included.
//   - speculationReparse keeps everything on success; on failure it
//     restores the scanner and token state but leaves diagnostics fn
//     raised in place.
func speculationHelper[T any](p *parser, kind speculationKind, from *mark, fn func() (T, bool)) (T, bool) {
	var m mark
	if from != nil {
		m = *from
	} else {
		m = p.mark()
	}
	p.rewindTo(m)
	result, ok := fn()
	switch {
	case kind == speculationLookahead:
		p.reset(m)
	case !ok && kind == speculationTryParse:
		p.reset(m)
	case !ok && kind == speculationReparse:
		p.rewindTo(m)
	}
	return result, ok
}

// lookAhead runs fn and always rewinds afterward, reporting whatever fn
// reported. It is how the parser answers "if I parsed this here, would
// it succeed" without committing to the parse either way -- the
// primitive behind arrow-function and type-vs-expression
// disambiguation.
func lookAhead[T any](p *parser, fn func() (T, bool)) (T, bool) {
	return speculationHelper(p, speculationLookahead, nil, fn)
}

// tryParse runs fn and keeps the result (advancing the parser past it)
// only if fn reports success; on failure it rewinds exactly as
// lookAhead does.
func tryParse[T any](p *parser, fn func() (T, bool)) (T, bool) {
	return speculationHelper(p, speculationTryParse, nil, fn)
}

// reparse re-interprets the span starting at from under a different
// set of context flags than it was originally parsed with, the way
// parseSourceFileBody revisits statements that may contain a top-level
// await once it knows the file is an external module. On failure it
// puts the scanner and token back where from left them, but any
// diagnostic fn raised while trying stays recorded: a failed
// reinterpretation attempt is still evidence something about that span
// is wrong.
func reparse[T any](p *parser, from mark, fn func() (T, bool)) (T, bool) {
	return speculationHelper(p, speculationReparse, &from, fn)
}

// lookAheadBool is the common case of lookAhead where the speculative
// parse itself is the success condition and there is no value to carry
// out, e.g. "does the token sequence from here look like a type
// annotation".
func lookAheadBool(p *parser, fn func() bool) bool {
	_, ok := lookAhead(p, func() (struct{}, bool) { return struct{}{}, fn() })
	return ok
}
