// Copyright 2024 The javafmt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diffcolor renders a unified diff between a file's original and
// formatted text for "javafmt --diff" (SPEC_FULL.md 3). Colorization uses
// github.com/fatih/color, the package both arduino-language-server forks
// in the example pack use for terminal output.
package diffcolor

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	addColor    = color.New(color.FgGreen)
	removeColor = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
)

// Unified renders a minimal unified-diff-style report of before vs.
// after, line by line, prefixed with path. It is not a minimal-edit-
// script diff (no LCS alignment) - for a formatter, changed regions are
// usually small and localized, and a full Myers diff is more machinery
// than this CLI surface needs; differing lines are shown paired, which
// is what gofmt -d and google-java-format --dry-run both do for
// non-conflicting line-oriented changes.
func Unified(path string, before, after []byte) string {
	beforeLines := splitLines(string(before))
	afterLines := splitLines(string(after))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", hunkColor.Sprintf("--- %s", path))

	i, j := 0, 0
	for i < len(beforeLines) || j < len(afterLines) {
		switch {
		case i < len(beforeLines) && j < len(afterLines) && beforeLines[i] == afterLines[j]:
			i++
			j++
		case i < len(beforeLines) && (j >= len(afterLines) || !contains(afterLines[j:], beforeLines[i])):
			b.WriteString(removeColor.Sprintf("-%s", beforeLines[i]))
			b.WriteString("\n")
			i++
		default:
			b.WriteString(addColor.Sprintf("+%s", afterLines[j]))
			b.WriteString("\n")
			j++
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
