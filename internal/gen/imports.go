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
	"sort"
	"strings"

	"github.com/speakeasy-api/javafmt/internal/syntax"
)

// importGroup is one of the four buckets imports sort into (spec.md 8,
// invariant 6): java.*, javax.*, everything else, then static imports.
// Declaration order of the constants is output order.
type importGroup int

const (
	groupJava importGroup = iota
	groupJavax
	groupOther
	groupStatic
)

type importEntry struct {
	group   importGroup
	static  bool
	sortKey string
}

// importPath returns an import declaration's dotted path with the
// leading "import"/"static" keywords and trailing ";" stripped - e.g.
// "java.util.List" or "org.junit.Assert.*". Read from the node's raw
// text rather than field navigation since the path itself isn't a
// single named child in the grammar (it's a run of identifier/"."/"*"
// tokens).
func importPath(n syntax.Node) string {
	text := strings.TrimSpace(n.Text())
	text = strings.TrimSuffix(text, ";")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "import")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "static")
	return strings.TrimSpace(text)
}

func classifyImport(n syntax.Node) importEntry {
	static := n.FirstChildOfKind(syntax.Kind("static")).IsValid()
	path := importPath(n)

	group := groupOther
	switch {
	case static:
		group = groupStatic
	case strings.HasPrefix(path, "java."):
		group = groupJava
	case strings.HasPrefix(path, "javax."):
		group = groupJavax
	}
	return importEntry{group: group, static: static, sortKey: path}
}

// sortImports groups a contiguous run of import declarations into the
// spec's four buckets, each sorted ascending by path, dropping empty
// buckets. java.lang.* entries are kept, never stripped.
func sortImports(imports []syntax.Node) [][]importEntry {
	entries := make([]importEntry, len(imports))
	for i, n := range imports {
		entries[i] = classifyImport(n)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].group != entries[j].group {
			return entries[i].group < entries[j].group
		}
		return entries[i].sortKey < entries[j].sortKey
	})

	var groups [][]importEntry
	for _, e := range entries {
		if len(groups) == 0 || groups[len(groups)-1][0].group != e.group {
			groups = append(groups, nil)
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], e)
	}
	return groups
}

func emitSortedImport(c *Context, e importEntry) {
	c.Text("import")
	c.Space()
	if e.static {
		c.Text("static")
		c.Space()
	}
	c.Text(e.sortKey)
	c.Text(";")
}

// emitImportBlock prints a contiguous run of import declarations,
// regrouped and resorted rather than in source order. Because the
// declarations are reordered, comments lexically inside the block
// cannot be attached to any single import the way they'd attach to an
// unreordered sibling - they're drained as one leading block ahead of
// the sorted list instead of per-import (a deliberate simplification;
// see DESIGN.md).
func emitImportBlock(c *Context, imports []syntax.Node, havePrev bool, prevEnd uint32) {
	if havePrev {
		c.Newline()
		if c.BlankLineBefore(prevEnd, imports[0].StartByte()) {
			c.Newline()
		}
	}
	for _, cm := range c.Comments.drainBefore(imports[len(imports)-1].EndByte()) {
		c.emitComment(cm)
		c.Newline()
	}

	for gi, group := range sortImports(imports) {
		if gi > 0 {
			c.Newline()
			c.Newline()
		}
		for ei, e := range group {
			if ei > 0 {
				c.Newline()
			}
			emitSortedImport(c, e)
		}
	}
}
