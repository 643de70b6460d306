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

// Package literal normalizes the raw text the scanner hands back for
// numeric and BigInt literals into the value an evaluator would need,
// without requiring every caller to re-implement radix parsing and
// digit-separator stripping. String and template literals are already
// decoded to their cooked form by the scanner itself, so this package
// only concerns itself with numbers.
package literal

import (
	"math/big"
	"strconv"
	"strings"
)

// NumberKind classifies a numeric literal's written radix, mirroring
// the prefix the scanner recognized.
type NumberKind int

const (
	Decimal NumberKind = iota
	Hex
	Octal
	Binary
	// LegacyOctal is a leading '0' followed only by octal digits, with
	// no '0o' prefix (e.g. 0755).
	LegacyOctal
)

// Number is the normalized form of a scanned NUMBER or BIGINT token.
type Number struct {
	Kind     NumberKind
	IsBigInt bool
	// Float holds the value for ordinary (non-BigInt) literals.
	Float float64
	// Int holds the exact value for BigInt literals and for integral
	// literals that do not fit cleanly in a float64 mantissa.
	Int *big.Int
}

// ParseNumber converts the raw text of a NUMBER or BIGINT token (as
// returned by scanner.Scan) into a Number. raw may contain '_' digit
// separators and, for BigInt literals, a trailing 'n'; both are
// stripped before parsing.
func ParseNumber(raw string) (Number, error) {
	isBigInt := strings.HasSuffix(raw, "n")
	text := raw
	if isBigInt {
		text = raw[:len(raw)-1]
	}
	text = strings.ReplaceAll(text, "_", "")

	kind := Decimal
	base := 10
	digits := text
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		kind, base, digits = Hex, 16, text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		kind, base, digits = Binary, 2, text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		kind, base, digits = Octal, 8, text[2:]
	case isLegacyOctal(text):
		kind, base, digits = LegacyOctal, 8, text[1:]
	}

	if kind != Decimal || isBigInt {
		i := new(big.Int)
		if _, ok := i.SetString(digits, base); !ok {
			return Number{}, &strconv.NumError{Func: "ParseNumber", Num: raw, Err: strconv.ErrSyntax}
		}
		n := Number{Kind: kind, IsBigInt: isBigInt, Int: i}
		if !isBigInt {
			f := new(big.Float).SetInt(i)
			n.Float, _ = f.Float64()
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, err
	}
	return Number{Kind: Decimal, Float: f}, nil
}

// isLegacyOctal reports whether text is a bare leading zero followed
// only by octal digits, e.g. "0755", as opposed to plain "0" or a
// literal like "0.5" or "0.", which fall through to decimal.
func isLegacyOctal(text string) bool {
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	for i := 1; i < len(text); i++ {
		if text[i] < '0' || text[i] > '7' {
			return false
		}
	}
	return true
}

// String renders n back to a canonical decimal form, primarily useful
// for diagnostics and golden-file tests.
func (n Number) String() string {
	if n.IsBigInt {
		return n.Int.String() + "n"
	}
	if n.Int != nil {
		return n.Int.String()
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}
