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

package literal

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		raw  string
		kind NumberKind
		want float64
	}{
		{"123", Decimal, 123},
		{"0x1F", Hex, 31},
		{"0b101", Binary, 5},
		{"0o17", Octal, 15},
		{"0755", LegacyOctal, 493},
		{"0", Decimal, 0},
		{"1_000", Decimal, 1000},
		{"1.5e2", Decimal, 150},
	}
	for _, c := range cases {
		n, err := ParseNumber(c.raw)
		if err != nil {
			t.Fatalf("ParseNumber(%q) error = %v", c.raw, err)
		}
		if n.Kind != c.kind {
			t.Errorf("ParseNumber(%q).Kind = %v, want %v", c.raw, n.Kind, c.kind)
		}
		if n.Float != c.want {
			t.Errorf("ParseNumber(%q).Float = %v, want %v", c.raw, n.Float, c.want)
		}
	}
}

func TestParseNumberBigInt(t *testing.T) {
	n, err := ParseNumber("100n")
	if err != nil {
		t.Fatalf("ParseNumber() error = %v", err)
	}
	if !n.IsBigInt {
		t.Fatal("expected IsBigInt")
	}
	if n.Int == nil || n.Int.Int64() != 100 {
		t.Errorf("got %v, want 100", n.Int)
	}
}

func TestIsLegacyOctal(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"0755", true},
		{"07", true},
		{"0", false},
		{"08", false},
		{"0.5", false},
		{"123", false},
		{"0x1F", false},
	}
	for _, c := range cases {
		if got := isLegacyOctal(c.text); got != c.want {
			t.Errorf("isLegacyOctal(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
