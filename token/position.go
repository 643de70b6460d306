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

package token

import (
	"cmp"
	"fmt"
	"sort"
	"sync"
)

// -----------------------------------------------------------------------------
// Positions

// Position describes an arbitrary and printable source position within a
// file, including offset, line, and column location.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several
// forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position: a file pointer plus a
// packed offset and relative-position nibble. Nodes store Pos values
// rather than full Position structs so that a parsed file with tens of
// thousands of tokens does not carry tens of thousands of Position
// structs at rest.
type Pos struct {
	file   *File
	offset int
}

// File returns the file that contains the printable position p, or nil
// if p carries no file (as with NoPos).
func (p Pos) File() *File {
	if p.index() == 0 {
		return nil
	}
	return p.file
}

// Line returns the position's line number, starting at 1.
func (p Pos) Line() int { return p.Position().Line }

// Column returns the position's column number counting in bytes,
// starting at 1.
func (p Pos) Column() int { return p.Position().Column }

// Filename returns the name of the file that this position belongs to.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Position unpacks the position information into a flat struct.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

func (p Pos) String() string { return p.Position().String() }

// Compare returns an integer comparing two positions: 0 if p == p2, -1
// if p < p2, and +1 if p > p2. NoPos compares larger than any valid
// position.
func (p Pos) Compare(p2 Pos) int {
	if p == p2 {
		return 0
	} else if p == NoPos {
		return +1
	} else if p2 == NoPos {
		return -1
	}
	if c := cmp.Compare(p.Filename(), p2.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), p2.Offset())
}

// Before reports whether p occurs strictly before q in the same file.
func (p Pos) Before(q Pos) bool { return p.Compare(q) < 0 }

// NoPos is the zero value for Pos. It carries no file or line
// information, and Pos.IsValid reports false for it. It is used for
// synthesized nodes that have no corresponding source text (missing
// nodes inserted during error recovery).
var NoPos = Pos{}

// RelPos indicates the relative position of a token to the token that
// precedes it: how much horizontal or vertical space separated them in
// the source. A printer reconstructing source from an AST uses this
// instead of re-deriving whitespace from absolute offsets.
type RelPos int

const (
	NoRelPos RelPos = iota
	Elided
	NoSpace
	Blank
	Newline
	NewSection

	relMask  = 0xf
	relShift = 4
)

func (p RelPos) Pos() Pos { return Pos{nil, int(p)} }

// HasRelPos reports whether p carries a relative position.
func (p Pos) HasRelPos() bool { return p.offset&relMask != 0 }

// Offset reports the byte offset relative to the file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.file.Offset(p)
}

// Add creates a new position relative to p, offset by n bytes.
func (p Pos) Add(n int) Pos { return Pos{p.file, p.offset + toPos(index(n))} }

// IsValid reports whether p carries any useful information: a
// printable file position and/or a relative position.
func (p Pos) IsValid() bool { return p != NoPos }

// IsNewline reports whether the relative position suggests a line
// break preceded this token.
func (p Pos) IsNewline() bool { return p.RelPos() >= Newline }

func (p Pos) WithRel(rel RelPos) Pos {
	return Pos{p.file, p.offset&^relMask | int(rel)}
}

func (p Pos) RelPos() RelPos { return RelPos(p.offset & relMask) }

func (p Pos) index() index { return index(p.offset) >> relShift }

func toPos(x index) int { return int(x) << relShift }

// -----------------------------------------------------------------------------
// File

// index represents a 1-based offset into the file so that the zero Pos
// can be distinguished from a Pos with a genuine zero offset.
type index int

// A File has a name, size, and line offset table. The scanner appends
// to the line table as it scans; the parser never mutates it.
type File struct {
	mutex sync.RWMutex
	name  string
	base  index
	size  index

	lines []index // offset of the first character of each line; lines[0] == 0
}

// NewFile returns a new file with the given name and size. base, kept
// for parity with go/token's API shape, is recorded and returned by
// Base but does not change the offsets of Pos values derived from this
// file; a negative base is stored as 1.
func NewFile(filename string, base, size int) *File {
	if base < 0 {
		base = 1
	}
	return &File{
		name:  filename,
		base:  index(base),
		size:  index(size),
		lines: []index{0},
	}
}

func (f *File) fixOffset(offset index) index {
	switch {
	case offset < 0:
		return 0
	case offset > f.size:
		return f.size
	default:
		return offset
	}
}

// Name returns the file name of f as passed to NewFile.
func (f *File) Name() string { return f.name }

// Base returns the base offset of f as passed to NewFile.
func (f *File) Base() int { return int(f.base) }

// Size returns the size of f as passed to NewFile.
func (f *File) Size() int { return int(f.size) }

// LineCount returns the number of lines scanned into f so far.
func (f *File) LineCount() int {
	f.mutex.RLock()
	n := len(f.lines)
	f.mutex.RUnlock()
	return n
}

// AddLine records the offset of a new line. The scanner calls this
// every time it consumes a '\n'. The offset is ignored
// if it does not strictly increase from the previous entry or falls
// outside the file.
func (f *File) AddLine(offset int) {
	x := index(offset)
	f.mutex.Lock()
	if i := len(f.lines); (i == 0 || f.lines[i-1] < x) && x < f.size {
		f.lines = append(f.lines, x)
	}
	f.mutex.Unlock()
}

// Lines returns the line offset table. Callers must not mutate the
// result.
func (f *File) Lines() []int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	lines := make([]int, len(f.lines))
	for i, l := range f.lines {
		lines[i] = int(l)
	}
	return lines
}

// Pos returns the Pos value for the given byte offset, combined with a
// relative position rel. The offset is clamped to [0, f.size].
func (f *File) Pos(offset int, rel RelPos) Pos {
	x := f.fixOffset(index(offset))
	return Pos{f, toPos(x+1) | int(rel)}
}

// Offset reports the byte offset of p within f.
func (f *File) Offset(p Pos) int {
	x := int(p.index()) - 1
	if x < 0 {
		return 0
	}
	return x
}

// Position translates p into a Position relative to f.
func (f *File) Position(p Pos) Position {
	return f.position(p.Offset())
}

// Line returns the 1-based line number of p within f.
func (f *File) Line(p Pos) int { return f.Position(p).Line }

func (f *File) position(offset int) (pos Position) {
	pos.Offset = offset
	pos.Filename = f.name
	pos.Line, pos.Column = f.unpack(offset)
	return pos
}

func (f *File) unpack(offset int) (line, column int) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if i := searchLines(f.lines, index(offset)); i >= 0 {
		line, column = i+1, offset-int(f.lines[i])+1
	}
	return
}

func searchLines(lines []index, x index) int {
	return sort.Search(len(lines), func(i int) bool { return lines[i] > x }) - 1
}

// LineStart returns the Pos of the first character on the given line
// (1-based).
func (f *File) LineStart(line int) Pos {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return Pos{f, toPos(f.lines[line-1] + 1)}
}
