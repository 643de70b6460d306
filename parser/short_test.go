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

// This file contains test cases for short valid and invalid programs.

package parser

import "testing"

var valids = []string{
	"",
	"\n",
	`let x = 1;`,
	`const x: number = 1, y = "a";`,
	`function f(a: number, b = 2, ...rest: number[]): number { return a + b; }`,
	`class Box<T> extends Base implements Iface { private x: T; constructor(x: T) { super(); this.x = x; } get value(): T { return this.x; } }`,
	`interface Shape { area(): number; readonly kind: string; }`,
	`type Pair<A, B = A> = [A, B];`,
	`enum Color { Red, Green, Blue = 5 }`,
	`namespace A.B.C { export const x = 1; }`,
	`import { a, b as c } from "mod"; export { a };`,
	`import def, * as ns from "mod";`,
	`export default function () {}`,
	`for (const x of xs) { console.log(x); }`,
	`for (let i = 0; i < 10; i++) {}`,
	`for (const k in obj) {}`,
	`while (true) { break; }`,
	`do { x++; } while (x < 10);`,
	`switch (x) { case 1: break; default: break; }`,
	`try { f(); } catch (e) { g(); } finally { h(); }`,
	`async function* gen() { yield await f(); }`,
	`const f = (a: number, b: number): number => a + b;`,
	`const obj = { a: 1, b, ...rest, [computed]: 2, m() { return 1; } };`,
	`const [a, , b = 1, ...c] = arr;`,
	`const { a, b: renamed, ...rest } = obj;`,
	"const s = `hello ${name}, you are ${age + 1} years old`;",
	`x as unknown as string;`,
	`type F = (a: number, b?: string) => void;`,
	`type Cond<T> = T extends string ? "s" : T extends number ? "n" : "other";`,
	`declare const x: number;`,
	`abstract class A { abstract m(): void; }`,
	`@decorator class A {}`,
	`label: for (;;) { continue label; }`,
}

func TestValid(t *testing.T) {
	for _, src := range valids {
		t.Run(src, func(t *testing.T) {
			_, err := ParseSourceFile("valid.ts", src, AllErrors)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestInvalidStillRecovers(t *testing.T) {
	// These are all malformed, but the parser should recover rather
	// than crash, and should still surface at least one diagnostic.
	invalids := []string{
		`let x = ;`,
		`function f( { return 1; }`,
		`class { }`,
		`if (x { }`,
		`const x: = 1;`,
	}
	for _, src := range invalids {
		t.Run(src, func(t *testing.T) {
			f, err := ParseSourceFile("invalid.ts", src, AllErrors)
			if f == nil {
				t.Fatal("ParseSourceFile() returned a nil file for recoverable input")
			}
			if err == nil {
				t.Error("expected at least one diagnostic")
			}
		})
	}
}
