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

// Package diagnostic defines the shared Diagnostic type produced by the
// scanner and parser, and a List that accumulates, sorts, and prints
// them.
package diagnostic

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/typeforge/tsparse/token"
)

// Category distinguishes a hard syntax error (parsing cannot continue
// without inserting a missing node) from advisory diagnostics the
// scanner or parser may still emit while otherwise making progress.
type Category int

const (
	Error Category = iota
	Warning
	Suggestion
	Message
)

func (c Category) String() string {
	switch c {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Suggestion:
		return "suggestion"
	case Message:
		return "message"
	}
	return "unknown"
}

// A Diagnostic is a single scanner or parser complaint: a position, a
// human-readable message, and the category under which it was raised.
// The position always points at the start of the offending token;
// callers that need an end position derive it from Length.
type Diagnostic struct {
	Pos      token.Pos
	Category Category
	Code     string // stable short code, e.g. "TS1005"; empty if none assigned
	Length   int    // length in bytes of the offending span, 0 if unknown
	format   string
	args     []interface{}
}

// Newf creates a Diagnostic at the given position with category Error.
func Newf(pos token.Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Pos: pos, Category: Error, format: format, args: args}
}

// NewCategoryf creates a Diagnostic at the given position and category.
func NewCategoryf(pos token.Pos, cat Category, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Pos: pos, Category: cat, format: format, args: args}
}

// Msg returns the unformatted message and its arguments, for callers
// that want to localize or otherwise post-process the text.
func (d *Diagnostic) Msg() (format string, args []interface{}) { return d.format, d.args }

func (d *Diagnostic) Error() string { return fmt.Sprintf(d.format, d.args...) }

// Position returns the primary position of the diagnostic.
func (d *Diagnostic) Position() token.Pos { return d.Pos }

// Handler is the callback signature the scanner and parser invoke for
// every diagnostic they raise directly (as opposed to accumulating
// into a List). Most callers pass (*List).Handle.
type Handler func(d *Diagnostic)

// A List accumulates Diagnostics in the order they were raised and
// provides sorting, deduplication, and printing.
type List []*Diagnostic

// Handle adapts a *List to the Handler signature, so it can be passed
// directly to scanner/parser constructors that expect one.
func (p *List) Handle(d *Diagnostic) { p.Add(d) }

// Add appends d to the list.
func (p *List) Add(d *Diagnostic) { *p = append(*p, d) }

// AddNewf is a convenience wrapper combining Newf and Add.
func (p *List) AddNewf(pos token.Pos, format string, args ...interface{}) {
	p.Add(Newf(pos, format, args...))
}

// Reset empties the list without discarding its backing array.
func (p *List) Reset() { *p = (*p)[:0] }

// Len, Less, and Swap satisfy sort.Interface ordering primarily by
// position and secondarily by message text.
func (p List) Len() int      { return len(p) }
func (p List) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p List) Less(i, j int) bool {
	if c := p[i].Pos.Compare(p[j].Pos); c != 0 {
		return c < 0
	}
	return p[i].Error() < p[j].Error()
}

// Sort orders the list by position, then by message.
func (p List) Sort() {
	slices.SortFunc(p, func(a, b *Diagnostic) int {
		if c := a.Pos.Compare(b.Pos); c != 0 {
			return c
		}
		return cmp.Compare(a.Error(), b.Error())
	})
}

// RemoveMultiples sorts the list and collapses diagnostics that share a
// position and category, keeping the first. The parser relies on this
// to avoid cascading complaints from a single missing token.
func (p *List) RemoveMultiples() {
	p.Sort()
	*p = slices.CompactFunc(*p, func(a, b *Diagnostic) bool {
		return a.Pos == b.Pos && a.Category == b.Category
	})
}

// HasErrors reports whether the list contains at least one diagnostic
// of category Error.
func (p List) HasErrors() bool {
	for _, d := range p {
		if d.Category == Error {
			return true
		}
	}
	return false
}

func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no diagnostics"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more diagnostics)", p[0].Error(), len(p)-1)
}

// Config controls how Print renders a List.
type Config struct {
	// Color enables ANSI severity coloring (github.com/fatih/color);
	// disabled by default so output stays diffable in CI logs.
	Color bool
}

// Print writes every diagnostic in p to w, one per line, in
// "file:line:column: category: message" form.
func Print(w io.Writer, p List, cfg *Config) {
	if cfg == nil {
		cfg = &Config{}
	}
	for _, d := range p {
		writeDiagnostic(w, d, cfg)
	}
}

func writeDiagnostic(w io.Writer, d *Diagnostic, cfg *Config) {
	label := d.Category.String()
	if cfg.Color {
		label = colorize(d.Category, label)
	}
	pos := d.Pos.Position().String()
	if d.Code != "" {
		fmt.Fprintf(w, "%s: %s %s: %s\n", pos, label, d.Code, d.Error())
		return
	}
	fmt.Fprintf(w, "%s: %s: %s\n", pos, label, d.Error())
}
