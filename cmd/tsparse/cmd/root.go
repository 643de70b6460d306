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

// Package cmd implements the tsparse command line tool: tokenize,
// parse, and ast subcommands over the scanner and parser packages.
package cmd

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// warnLog is where subcommands print best-effort warnings that aren't
// themselves parse diagnostics (a skipped file, a YAML marshal
// failure); grounded on cmd/cue's own plain log.Printf texture rather
// than pulling in a structured logging library this CLI layer has no
// real need for.
var warnLog = log.New(os.Stderr, "", 0)

// Root builds the tsparse root command and wires in its subcommands.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "tsparse",
		Short:         "Tokenize and parse TypeScript source files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Bool("no-color", false, "disable colorized diagnostic output")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	}

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newASTCmd())
	return root
}
