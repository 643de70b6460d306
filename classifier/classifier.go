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

// Package classifier holds the stateless rune-classification
// predicates shared by the scanner: whitespace, line terminators,
// identifier starts/parts, and digit classes. None of these functions
// touch scanner state; they exist so the scanner's hot loop reads as a
// sequence of named checks instead of inline rune arithmetic.
package classifier

import "unicode"

const (
	lineSeparator      rune = ' '
	paragraphSeparator rune = ' '
	nonBreakingSpace   rune = ' '
	byteOrderMark      rune = 0xFEFF
	zeroWidthNonJoiner rune = '‌'
	zeroWidthJoiner    rune = '‍'
)

// IsLineBreak reports whether r is one of the four ECMAScript line
// terminators. TypeScript treats \r, \n, U+2028, and U+2029 as line
// breaks for ASI and position-table purposes alike.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// IsWhiteSpace reports whether r is insignificant horizontal or
// vertical whitespace, including the line terminators.
func IsWhiteSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', nonBreakingSpace, byteOrderMark:
		return true
	}
	if IsLineBreak(r) {
		return true
	}
	return r > 127 && unicode.IsSpace(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsOctalDigit reports whether r is an ASCII octal digit.
func IsOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

// IsHexDigit reports whether r is a hexadecimal digit, case
// insensitive.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// HexValue returns the numeric value of a hex digit, or -1 if r is not
// one.
func HexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// IsIdentifierStart reports whether r may begin an identifier: ASCII
// letters, '$', '_', or any Unicode codepoint in the ID_Start
// category. TypeScript defers to the same table as JavaScript here.
func IsIdentifierStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '$', r == '_':
		return true
	case r < 128:
		return false
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

// IsIdentifierPart reports whether r may continue an identifier begun
// by IsIdentifierStart: everything IsIdentifierStart allows, plus
// digits, zero-width joiners, and combining marks.
func IsIdentifierPart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '$', r == '_':
		return true
	case r == zeroWidthNonJoiner, r == zeroWidthJoiner:
		return true
	case r < 128:
		return false
	}
	if IsIdentifierStart(r) {
		return true
	}
	return unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) || unicode.Is(unicode.Other_ID_Continue, r)
}

// IsShebangTrivia reports whether the two leading runes of text begin
// a '#!' shebang line, valid only at offset 0 of a source file.
func IsShebangTrivia(r0, r1 rune) bool { return r0 == '#' && r1 == '!' }
