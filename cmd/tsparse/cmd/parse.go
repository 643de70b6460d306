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

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/typeforge/tsparse/diagnostic"
	"github.com/typeforge/tsparse/parser"
)

func newParseCmd() *cobra.Command {
	var allErrors bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "parse one or more TypeScript files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, allErrors)
		},
	}
	cmd.Flags().BoolVar(&allErrors, "all-errors", false, "report every diagnostic, not just the first per line")
	return cmd
}

// parseSession correlates the diagnostics from one CLI invocation
// across however many files it was given, the way a CI log benefits
// from being able to grep a single run's output back together.
type parseSession struct {
	id uuid.UUID
}

func runParse(cmd *cobra.Command, files []string, allErrors bool) error {
	session := parseSession{id: uuid.New()}

	var opts []parser.Option
	if allErrors {
		opts = append(opts, parser.AllErrors)
	}

	errRed := color.New(color.FgRed).SprintFunc()
	warnYellow := color.New(color.FgYellow).SprintFunc()

	hadErrors := false
	for _, filename := range files {
		_, err := parser.ParseSourceFile(filename, nil, opts...)
		if err == nil {
			continue
		}
		list, ok := err.(diagnostic.List)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s: %v\n", session.id, filename, err)
			hadErrors = true
			continue
		}
		for _, d := range list {
			label := errRed("error")
			if d.Category == diagnostic.Warning {
				label = warnYellow("warning")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s: %s: %s\n", session.id, filename, label, d.Error())
		}
		hadErrors = true
	}
	if hadErrors {
		return fmt.Errorf("parse session %s reported errors", session.id)
	}
	return nil
}
