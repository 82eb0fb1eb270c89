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

// Package ir defines the print-item intermediate representation the
// dispatcher/handlers in internal/gen emit, and that internal/breaker
// resolves into formatted text. The IR is a flat sequence; nesting is
// encoded purely by matching Start/Finish pairs, so it can be produced
// by a streaming traversal and consumed by a streaming resolver.
package ir

// Tag identifies the kind of a print Item.
type Tag int

const (
	// Text emits a literal string.
	Text Tag = iota
	// Space emits a single space. Two Spaces in a row are not
	// collapsed - each one is deliberate.
	Space
	// Newline forces a line break unconditionally.
	Newline
	// SoftNewline is a break point: it becomes a Newline if the
	// enclosing group doesn't fit on one line, otherwise it resolves to
	// Flat (a space) or Empty, depending on Item.Flat.
	SoftNewline
	// StartIndent pushes one indent level (width from Config).
	StartIndent
	// FinishIndent pops one indent level.
	FinishIndent
	// StartGroup opens a conditional-break scope: every SoftNewline
	// inside the group breaks together, or none do.
	StartGroup
	// FinishGroup closes the group opened by the matching StartGroup.
	FinishGroup
	// ConditionalReference names the group GroupID at a point in the
	// sequence without itself being emitted as text. internal/breaker
	// renders it as nothing and takes no decision from it; no handler in
	// internal/gen emits one.
	ConditionalReference
)

// FlatResolution controls what a SoftNewline resolves to when its
// enclosing group fits on one line (does not break).
type FlatResolution int

const (
	// FlatSpace resolves an unbroken SoftNewline to a single space.
	FlatSpace FlatResolution = iota
	// FlatEmpty resolves an unbroken SoftNewline to nothing.
	FlatEmpty
)

// GroupID names a StartGroup/FinishGroup pair so a later
// ConditionalReference can ask whether that specific group broke.
type GroupID int

// Item is one element of the print-item sequence.
type Item struct {
	Tag     Tag
	Text    string         // valid when Tag == Text
	Flat    FlatResolution // valid when Tag == SoftNewline
	GroupID GroupID        // valid when Tag is StartGroup, FinishGroup, or ConditionalReference
	// Continuation marks a StartIndent as a continuation indent (2x
	// base width) rather than a plain one-level indent. See spec.md
	// 3 (FormattingContext.continuation) and 4.2-4.4 throughout.
	Continuation bool
}

// Doc is the full print-item sequence produced for one syntax tree.
type Doc []Item

// Builder accumulates a Doc. Handlers share one Builder (reached via
// gen.Context) across the whole traversal; it never allocates a new
// slice per node.
type Builder struct {
	items   Doc
	nextID  GroupID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the accumulated Doc. The Builder remains usable
// afterward (Build does not reset it) so tests can snapshot mid-way.
func (b *Builder) Build() Doc { return b.items }

// Text appends a literal-text item.
func (b *Builder) Text(s string) {
	if s == "" {
		return
	}
	b.items = append(b.items, Item{Tag: Text, Text: s})
}

// Space appends a single non-collapsible space.
func (b *Builder) Space() {
	b.items = append(b.items, Item{Tag: Space})
}

// Newline appends a hard line break.
func (b *Builder) Newline() {
	b.items = append(b.items, Item{Tag: Newline})
}

// SoftNewline appends a conditional break point that resolves to flat
// when its enclosing group fits.
func (b *Builder) SoftNewline(flat FlatResolution) {
	b.items = append(b.items, Item{Tag: SoftNewline, Flat: flat})
}

// StartIndent pushes one indent level.
func (b *Builder) StartIndent(continuation bool) {
	b.items = append(b.items, Item{Tag: StartIndent, Continuation: continuation})
}

// FinishIndent pops one indent level. Callers must pair every
// StartIndent with exactly one FinishIndent, LIFO (spec.md 3 invariant).
func (b *Builder) FinishIndent() {
	b.items = append(b.items, Item{Tag: FinishIndent})
}

// StartGroup opens a new conditional-break scope and returns its ID so
// the caller can later query it via ConditionalReference.
func (b *Builder) StartGroup() GroupID {
	id := b.nextID
	b.nextID++
	b.items = append(b.items, Item{Tag: StartGroup, GroupID: id})
	return id
}

// FinishGroup closes the group opened with id.
func (b *Builder) FinishGroup(id GroupID) {
	b.items = append(b.items, Item{Tag: FinishGroup, GroupID: id})
}

// ConditionalReference records a reference to group id. It never
// produces output text; internal/breaker skips it when rendering.
func (b *Builder) ConditionalReference(id GroupID) {
	b.items = append(b.items, Item{Tag: ConditionalReference, GroupID: id})
}

// Mark returns the current length of the accumulated Doc, so a caller
// can later compute how many items a sub-traversal appended, or pass it
// to InsertGroupAt to re-wrap a just-emitted range in a group.
func (b *Builder) Mark() int { return len(b.items) }

// InsertGroupAt wraps the half-open range [start, len(items)) — already
// emitted — in a new group, inserting StartGroup at start and appending
// FinishGroup at the end. Used when the decision to group a fragment is
// only known after emitting it (e.g. "was this chain long enough to
// need a group").
func (b *Builder) InsertGroupAt(start int) GroupID {
	id := b.nextID
	b.nextID++
	head := append(Doc{}, b.items[:start]...)
	head = append(head, Item{Tag: StartGroup, GroupID: id})
	head = append(head, b.items[start:]...)
	head = append(head, Item{Tag: FinishGroup, GroupID: id})
	b.items = head
	return id
}
