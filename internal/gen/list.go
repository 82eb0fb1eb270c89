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

import (
	"github.com/speakeasy-api/javafmt/internal/ir"
	"github.com/speakeasy-api/javafmt/internal/syntax"
)

// emitDelimitedNodes prints open, then items separated by ", ", then
// close, wrapped in one group so internal/breaker chooses between:
//
//	open item, item, item close          (fits)
//	open
//	    item,
//	    item,
//	    item
//	close                                (doesn't fit)
//
// This single helper backs argument lists, parameter lists, annotation
// argument lists, type argument/parameter lists, and array initializers -
// every construct in spec.md 4 whose two renderings are the same
// tokens with different breakpoints, which is exactly what a breaker
// group expresses (see estimator.go's doc comment for the constructs
// that need a generation-time decision instead).
func emitDelimitedNodes(c *Context, open string, items []syntax.Node, close string) {
	c.Text(open)
	if len(items) == 0 {
		c.Text(close)
		return
	}
	gid := c.B.StartGroup()
	c.PushIndent(true)
	c.B.SoftNewline(ir.FlatEmpty)
	for i, item := range items {
		if i > 0 {
			c.Text(",")
			c.B.SoftNewline(ir.FlatSpace)
		}
		c.Emit(item)
	}
	c.PopIndent(true)
	c.B.SoftNewline(ir.FlatEmpty)
	c.B.FinishGroup(gid)
	c.Text(close)
}

// emitJoined prints items separated by sep with no group/indent of its
// own - for short, fixed sequences that never need to wrap on their
// own (e.g. modifiers, a single extends clause).
func emitJoined(c *Context, items []syntax.Node, sep string) {
	for i, item := range items {
		if i > 0 {
			c.Text(sep)
		}
		c.Emit(item)
	}
}

// emitDeclaratorList prints a field/local declaration's comma-joined
// variable_declarator list, breaking after each comma when the whole
// declaration doesn't fit (spec.md 4.2's multi-variable-declaration
// rule). A single declarator is emitted directly - no bracket, no
// leading/trailing soft newline, since there's no comma to break at
// and nothing to put on its own line.
func emitDeclaratorList(c *Context, items []syntax.Node) {
	if len(items) <= 1 {
		emitJoined(c, items, ", ")
		return
	}
	gid := c.B.StartGroup()
	c.PushIndent(true)
	for i, item := range items {
		if i > 0 {
			c.Text(",")
			c.B.SoftNewline(ir.FlatSpace)
		}
		c.Emit(item)
	}
	c.PopIndent(true)
	c.B.FinishGroup(gid)
}
