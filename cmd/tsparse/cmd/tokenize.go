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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/scanner"
	"github.com/typeforge/tsparse/token"
)

func newTokenizeCmd() *cobra.Command {
	var jsx bool

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "print the token stream for a TypeScript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args[0], jsx)
		},
	}
	cmd.Flags().BoolVar(&jsx, "jsx", false, "scan the file in JSX mode")
	return cmd
}

func runTokenize(cmd *cobra.Command, filename string, jsx bool) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	file := token.NewFile(filename, -1, len(src))
	var diags diagnostic.List

	mode := scanner.ScanComments
	if jsx || strings.HasSuffix(filename, ".tsx") {
		mode |= scanner.JSX
	}

	var s scanner.Scanner
	s.Init(file, src, diags.Handle, mode)

	w := cmd.OutOrStdout()
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			fmt.Fprintf(w, "%-20s %-12s\n", pos, tok)
			break
		}
		if lit != "" {
			fmt.Fprintf(w, "%-20s %-12s %q\n", pos, tok, lit)
		} else {
			fmt.Fprintf(w, "%-20s %-12s\n", pos, tok)
		}
	}

	for _, d := range diags {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
	}
	if diags.HasErrors() {
		return diags
	}
	return nil
}
