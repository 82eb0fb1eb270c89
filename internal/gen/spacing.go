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

package gen

import "github.com/speakeasy-api/javafmt/internal/syntax"

// tightBefore names anonymous token kinds that never take a leading
// space from emitChildrenSpaced's generic join.
var tightBefore = map[syntax.Kind]bool{
	"(": true, ")": true, "[": true, "]": true,
	",": true, ";": true, ".": true, "::": true,
	"*": true, "...": true,
	syntax.KindTypeArguments:     true,
	syntax.KindArgumentList:      true,
	syntax.KindAnnotationArgList: true,
}

// tightAfter names anonymous token kinds that never take a trailing
// space from emitChildrenSpaced's generic join.
var tightAfter = map[syntax.Kind]bool{
	"(": true, ".": true, "@": true, "[": true, "::": true,
}

func needsSpaceBetween(prev, next syntax.Node) bool {
	if tightBefore[next.Kind()] {
		return false
	}
	if tightAfter[prev.Kind()] {
		return false
	}
	return true
}

// emitChildrenSpaced emits every child of n, inserting a single Space
// between adjacent children unless the punctuation-adjacency rule
// above says they should be tight. It is the fallback join used for
// constructs whose grammar shape is mostly "keyword/name tokens in a
// fixed order" (modifiers, dotted names, wildcard bounds) where no
// wrapping decision is needed - constructs that DO need a wrap
// decision (argument lists, control-flow headers, binary expressions)
// get dedicated handlers instead.
func emitChildrenSpaced(c *Context, n syntax.Node) {
	children := n.Children()
	for i, child := range children {
		if i > 0 && needsSpaceBetween(children[i-1], child) {
			c.Space()
		}
		c.Emit(child)
	}
}
