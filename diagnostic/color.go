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

package diagnostic

import "github.com/fatih/color"

var (
	errorColor      = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow, color.Bold)
	suggestionColor = color.New(color.FgCyan)
	messageColor    = color.New(color.FgWhite)
)

func colorize(cat Category, label string) string {
	switch cat {
	case Error:
		return errorColor.Sprint(label)
	case Warning:
		return warningColor.Sprint(label)
	case Suggestion:
		return suggestionColor.Sprint(label)
	default:
		return messageColor.Sprint(label)
	}
}
