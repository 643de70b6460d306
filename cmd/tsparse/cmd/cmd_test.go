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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := Root()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokenizeCmd(t *testing.T) {
	path := writeTempFile(t, "a.ts", `let x = 1;`)
	stdout, _, err := runRoot(t, "tokenize", path)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	for _, want := range []string{"let", "IDENT", `"x"`, "NUMBER"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("tokenize output missing %q:\n%s", want, stdout)
		}
	}
}

func TestParseCmdReportsNoErrorsOnValidInput(t *testing.T) {
	path := writeTempFile(t, "a.ts", `const x: number = 1;`)
	_, stderr, err := runRoot(t, "parse", path)
	if err != nil {
		t.Fatalf("parse failed on valid input: %v\n%s", err, stderr)
	}
}

func TestParseCmdReportsErrorsOnInvalidInput(t *testing.T) {
	path := writeTempFile(t, "a.ts", `let x = ;`)
	_, stderr, err := runRoot(t, "parse", path, "--no-color")
	if err == nil {
		t.Fatal("expected an error for invalid input")
	}
	if stderr == "" {
		t.Error("expected diagnostic output on stderr")
	}
}

func TestASTCmdText(t *testing.T) {
	path := writeTempFile(t, "a.ts", `let x = 1;`)
	stdout, _, err := runRoot(t, "ast", path)
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	if !strings.Contains(stdout, "SourceFile") {
		t.Errorf("expected the dump to mention SourceFile:\n%s", stdout)
	}
}

func TestASTCmdYAML(t *testing.T) {
	path := writeTempFile(t, "a.ts", `let x = 1;`)
	stdout, _, err := runRoot(t, "ast", path, "--format=yaml")
	if err != nil {
		t.Fatalf("ast --format=yaml failed: %v", err)
	}
	if !strings.Contains(stdout, "kind: SourceFile") {
		t.Errorf("expected YAML output to contain the root kind:\n%s", stdout)
	}
}

func TestASTCmdUnknownFormat(t *testing.T) {
	path := writeTempFile(t, "a.ts", `let x = 1;`)
	if _, _, err := runRoot(t, "ast", path, "--format=xml"); err == nil {
		t.Error("expected an error for an unsupported --format value")
	}
}
