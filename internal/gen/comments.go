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

import "strings"

// emitLeadingComments drains every comment that lexically precedes n
// and emits it ahead of n's own handler. A run of comments separated
// from each other (or from n) by at least one blank source line keeps
// a single blank line in the output; anything past one blank line is
// clamped (SPEC_FULL.md 4, blank-line clamp open question).
func (c *Context) emitLeadingComments(n interface{ StartByte() uint32 }) {
	comments := c.Comments.drainBefore(n.StartByte())
	for i, cm := range comments {
		c.emitComment(cm)
		c.Newline()
		next := n.StartByte()
		if i+1 < len(comments) {
			next = comments[i+1].start
		}
		if c.BlankLineBefore(cm.end, next) {
			c.Newline()
		}
	}
}

// emitTrailingComment checks whether the next unconsumed comment
// starts on the same source line as endByte and, if so, consumes and
// attaches it as a same-line trailing comment instead of leaving it to
// attach as a leading comment on whatever follows. The statement/
// member-list loops (emitBlock, emitMemberBody, emitProgram) call this
// right after emitting each item.
func (c *Context) emitTrailingComment(endByte uint32) {
	if c.Comments == nil || c.Comments.pos >= len(c.Comments.comments) {
		return
	}
	next := c.Comments.comments[c.Comments.pos]
	if next.start < endByte || next.line != c.LineOf(endByte) {
		return
	}
	c.Comments.pos++
	c.Text(" ")
	c.emitComment(next)
}

// FlushRemainingComments emits any comments left unconsumed after the
// whole tree has been visited (comments after the final declaration).
func (c *Context) FlushRemainingComments() {
	for _, cm := range c.Comments.remaining() {
		c.emitComment(cm)
		c.Newline()
	}
}

func (c *Context) emitComment(cm comment) {
	text := cm.text
	if strings.HasPrefix(text, "//") {
		c.Text(strings.TrimRight(text, " \t"))
		return
	}
	if !c.Config.FormatJavadoc {
		// Leave block/Javadoc comments exactly as written; the
		// re-indentation below is opt-in.
		c.Text(text)
		return
	}
	// Block comments (including /** Javadoc */) are re-indented line by
	// line so continuation lines line up under the leading "/*". The
	// comment text itself is not reflowed or rewrapped.
	lines := strings.Split(text, "\n")
	c.Text(lines[0])
	for _, line := range lines[1:] {
		c.Newline()
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			c.Text(" " + trimmed)
		} else {
			c.Text(trimmed)
		}
	}
}
