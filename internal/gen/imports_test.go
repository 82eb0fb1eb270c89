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
	"context"
	"testing"

	"github.com/speakeasy-api/javafmt/internal/syntax"
)

func parseImports(t *testing.T, source string) []syntax.Node {
	t.Helper()
	tree, err := syntax.Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	t.Cleanup(tree.Close)

	var out []syntax.Node
	for _, ch := range tree.Root().NamedChildren() {
		if ch.Kind() == syntax.KindImportDeclaration {
			out = append(out, ch)
		}
	}
	return out
}

func TestClassifyImportBuckets(t *testing.T) {
	source := `package p;
import com.foo.Bar;
import java.util.List;
import javax.annotation.Nullable;
import static org.junit.Assert.assertTrue;
`
	imports := parseImports(t, source)
	if len(imports) != 4 {
		t.Fatalf("got %d import declarations, want 4", len(imports))
	}

	wantGroup := []importGroup{groupOther, groupJava, groupJavax, groupStatic}
	wantStatic := []bool{false, false, false, true}
	wantPath := []string{"com.foo.Bar", "java.util.List", "javax.annotation.Nullable", "static org.junit.Assert.assertTrue"}

	for i, n := range imports {
		e := classifyImport(n)
		if e.group != wantGroup[i] {
			t.Errorf("import %d group = %v, want %v", i, e.group, wantGroup[i])
		}
		if e.static != wantStatic[i] {
			t.Errorf("import %d static = %v, want %v", i, e.static, wantStatic[i])
		}
		gotPath := e.sortKey
		if e.static {
			gotPath = "static " + gotPath
		}
		if gotPath != wantPath[i] {
			t.Errorf("import %d path = %q, want %q", i, gotPath, wantPath[i])
		}
	}
}

func TestSortImportsGroupsAndOrders(t *testing.T) {
	source := `package p;
import com.foo.Bar;
import java.util.List;
import java.util.ArrayList;
import javax.annotation.Nullable;
import static org.junit.Assert.assertTrue;
`
	imports := parseImports(t, source)
	groups := sortImports(imports)

	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4 (java, javax, other, static): %+v", len(groups), groups)
	}

	wantGroupOrder := []importGroup{groupJava, groupJavax, groupOther, groupStatic}
	for i, g := range groups {
		if g[0].group != wantGroupOrder[i] {
			t.Errorf("group %d = %v, want %v", i, g[0].group, wantGroupOrder[i])
		}
	}

	javaGroup := groups[0]
	if len(javaGroup) != 2 {
		t.Fatalf("java group has %d entries, want 2", len(javaGroup))
	}
	if javaGroup[0].sortKey != "java.util.ArrayList" || javaGroup[1].sortKey != "java.util.List" {
		t.Errorf("java group not sorted ascending: %+v", javaGroup)
	}
}

func TestSortImportsDropsEmptyBuckets(t *testing.T) {
	source := `package p;
import com.foo.Bar;
import com.foo.Baz;
`
	imports := parseImports(t, source)
	groups := sortImports(imports)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 (no java/javax/static present): %+v", len(groups), groups)
	}
	if groups[0][0].group != groupOther {
		t.Errorf("only group = %v, want groupOther", groups[0][0].group)
	}
}

func TestClassifyImportKeepsJavaLang(t *testing.T) {
	source := `package p;
import java.lang.reflect.Method;
`
	imports := parseImports(t, source)
	e := classifyImport(imports[0])
	if e.group != groupJava {
		t.Errorf("java.lang import group = %v, want groupJava", e.group)
	}
	if e.sortKey != "java.lang.reflect.Method" {
		t.Errorf("sortKey = %q, want java.lang.reflect.Method (not stripped)", e.sortKey)
	}
}
