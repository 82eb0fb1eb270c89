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

// Package syntax adapts the external Java grammar (tree-sitter, via
// github.com/smacker/go-tree-sitter and its java subgrammar) to the typed
// node shape the rest of javafmt depends on: a Kind tag, a byte span, and
// ordered/named child navigation. No other package imports the sitter
// types directly.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrParse is returned (wrapped) when the grammar reports one or more
// error nodes in the parsed tree. Callers of Parse should treat this the
// way spec.md 7 requires: leave the input unchanged, no error surfaced
// past the public API.
var ErrParse = fmt.Errorf("syntax: parse error")

// Tree is a parsed Java source file.
type Tree struct {
	source []byte
	raw    *sitter.Tree
	root   Node
}

// Parse parses source as Java and returns the resulting Tree. If the
// grammar could not fully recognize source, the returned error wraps
// ErrParse; the tree itself (possibly containing ERROR nodes) is still
// returned so callers that want to inspect the failure can.
func Parse(ctx context.Context, source []byte) (*Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	raw, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	t := &Tree{source: source, raw: raw}
	t.root = Node{tree: t, raw: raw.RootNode()}

	if t.root.raw.HasError() {
		return t, fmt.Errorf("%w: grammar reported an error node", ErrParse)
	}
	return t, nil
}

// Root returns the program-level root node.
func (t *Tree) Root() Node { return t.root }

// Source returns the full, immutable input text the tree was built from.
func (t *Tree) Source() []byte { return t.source }

// Close releases the resources tree-sitter allocated for the parse.
func (t *Tree) Close() {
	if t.raw != nil {
		t.raw.Close()
	}
}

// Node is a single syntax-tree node: a kind, a byte range into the
// source, and child navigation. The zero Node is invalid; check
// IsValid() before using one obtained via lookup methods that may fail
// to find a match.
type Node struct {
	tree *Tree
	raw  *sitter.Node
}

// IsValid reports whether n refers to an actual node (as opposed to a
// "not found" result from a lookup method).
func (n Node) IsValid() bool { return n.raw != nil }

// Kind returns the node's type tag.
func (n Node) Kind() Kind {
	if n.raw == nil {
		return ""
	}
	return Kind(n.raw.Type())
}

// StartByte returns the node's starting byte offset into the source.
func (n Node) StartByte() uint32 {
	if n.raw == nil {
		return 0
	}
	return n.raw.StartByte()
}

// EndByte returns the node's ending (exclusive) byte offset.
func (n Node) EndByte() uint32 {
	if n.raw == nil {
		return 0
	}
	return n.raw.EndByte()
}

// Text returns the exact source substring the node spans. Used both by
// ordinary handlers (for literal token text) and by the verbatim
// fallback (spec.md 4.1).
func (n Node) Text() string {
	if n.raw == nil || n.tree == nil {
		return ""
	}
	return string(n.tree.source[n.raw.StartByte():n.raw.EndByte()])
}

// IsNamed reports whether the node is a named grammar production, as
// opposed to an anonymous punctuation/keyword token.
func (n Node) IsNamed() bool { return n.raw != nil && n.raw.IsNamed() }

// IsError reports whether this specific node is a grammar ERROR node.
func (n Node) IsError() bool { return n.raw != nil && n.raw.IsError() }

// ChildCount returns the number of children, named and anonymous.
func (n Node) ChildCount() int {
	if n.raw == nil {
		return 0
	}
	return int(n.raw.ChildCount())
}

// Child returns the i'th child (named and anonymous both count), or the
// zero Node if out of range.
func (n Node) Child(i int) Node {
	if n.raw == nil || i < 0 || i >= int(n.raw.ChildCount()) {
		return Node{}
	}
	return Node{tree: n.tree, raw: n.raw.Child(i)}
}

// Children returns every child, named and anonymous, in source order.
func (n Node) Children() []Node {
	if n.raw == nil {
		return nil
	}
	count := int(n.raw.ChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Node{tree: n.tree, raw: n.raw.Child(i)})
	}
	return out
}

// NamedChildren returns only the named (grammar-production) children, in
// source order, skipping anonymous punctuation/keyword tokens.
func (n Node) NamedChildren() []Node {
	if n.raw == nil {
		return nil
	}
	count := int(n.raw.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Node{tree: n.tree, raw: n.raw.NamedChild(i)})
	}
	return out
}

// ChildByFieldName returns the child reachable via the given grammar
// field name (e.g. "type", "name", "body"), or the zero Node if the
// field is absent on this node.
func (n Node) ChildByFieldName(name string) Node {
	if n.raw == nil {
		return Node{}
	}
	c := n.raw.ChildByFieldName(name)
	if c == nil {
		return Node{}
	}
	return Node{tree: n.tree, raw: c}
}

// ChildrenOfKind returns every direct child whose Kind equals k, in
// source order.
func (n Node) ChildrenOfKind(k Kind) []Node {
	var out []Node
	for _, c := range n.Children() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child whose Kind equals k,
// or the zero Node if none match.
func (n Node) FirstChildOfKind(k Kind) Node {
	for _, c := range n.Children() {
		if c.Kind() == k {
			return c
		}
	}
	return Node{}
}

// FirstChildOfAny returns the first direct child whose Kind is any of
// ks, or the zero Node if none match. Mirrors the teacher parser's
// node.OneOf(...) combinator (jadep/lang/java/parser/parser.go).
func (n Node) FirstChildOfAny(ks ...Kind) Node {
	set := make(map[Kind]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	for _, c := range n.Children() {
		if set[c.Kind()] {
			return c
		}
	}
	return Node{}
}

// Equal reports whether n and o refer to the same underlying node.
func (n Node) Equal(o Node) bool { return n.raw == o.raw }
