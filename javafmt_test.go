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

package javafmt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/speakeasy-api/javafmt/config"
)

func mustFormat(t *testing.T, source string, cfg *config.Config) string {
	t.Helper()
	out, err := Format(context.Background(), []byte(source), cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return string(out)
}

// TestFormatParseFailureLeavesInputUnchanged covers spec.md 7: a source
// the grammar cannot parse is returned byte-for-byte, with no error.
func TestFormatParseFailureLeavesInputUnchanged(t *testing.T) {
	source := []byte("this is not valid java {{{ at all")
	out, err := Format(context.Background(), source, nil)
	if err != nil {
		t.Fatalf("Format() error = %v, want nil even on parse failure", err)
	}
	if !bytes.Equal(out, source) {
		t.Errorf("Format() = %q, want input returned unchanged: %q", out, source)
	}
}

func TestFormatNilConfigUsesDefaults(t *testing.T) {
	source := "class A {}"
	out, err := Format(context.Background(), []byte(source), nil)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if len(out) == 0 {
		t.Errorf("Format() returned empty output for valid input")
	}
}

// TestFormatIdempotent covers spec.md 8's idempotence invariant across a
// handful of representative inputs: re-formatting already-formatted
// output must be a no-op.
func TestFormatIdempotent(t *testing.T) {
	cfg := config.NewConfig()
	samples := []string{
		`public class H { public static void main(String[] a) { System.out.println("hi"); } }`,
		`class C { void m() { if (a) { x(); } else if (b) { y(); } else { z(); } } }`,
		`class C { boolean f(boolean a, boolean b, boolean c, boolean d) { return a && b && c && d; } }`,
		`import java.util.ArrayList; import java.util.List; import com.foo.Bar; import static org.junit.Assert.assertTrue;
class C {}`,
		`class C { void m(java.util.List<Integer> list) { list.forEach(x -> System.out.println(x)); } }`,
		`class C<T> { private final T value; C(T value) { this.value = value; } }`,
		`interface I { void m(); }`,
		`enum Color { RED, GREEN, BLUE }`,
		`record Point(int x, int y) {}`,
		`@interface Marker {}`,
	}

	for _, src := range samples {
		first := mustFormat(t, src, cfg)
		second := mustFormat(t, first, cfg)
		if first != second {
			t.Errorf("Format not idempotent for %q:\nfirst:\n%s\nsecond:\n%s", src, first, second)
		}
	}
}

// TestFormatImportSort covers spec.md 8's import-group invariant and the
// S3 scenario: java.*, javax.*, other, static, each ascending, blank
// line between non-empty groups.
func TestFormatImportSort(t *testing.T) {
	source := `import java.util.ArrayList;
import java.util.List;
import com.foo.Bar;
import static org.junit.Assert.assertTrue;

class C {}
`
	out := mustFormat(t, source, config.NewConfig())

	idxOther := strings.Index(out, "import com.foo.Bar;")
	idxJavaArrayList := strings.Index(out, "import java.util.ArrayList;")
	idxJavaList := strings.Index(out, "import java.util.List;")
	idxStatic := strings.Index(out, "import static org.junit.Assert.assertTrue;")

	if idxOther < 0 || idxJavaArrayList < 0 || idxJavaList < 0 || idxStatic < 0 {
		t.Fatalf("formatted output missing an expected import:\n%s", out)
	}
	if !(idxJavaArrayList < idxJavaList && idxJavaList < idxOther && idxOther < idxStatic) {
		t.Errorf("imports out of order, want java < other < static:\n%s", out)
	}
}

func TestFormatKeepsJavaLangImports(t *testing.T) {
	source := `import java.lang.reflect.Method;
class C {}
`
	out := mustFormat(t, source, config.NewConfig())
	if !strings.Contains(out, "import java.lang.reflect.Method;") {
		t.Errorf("java.lang.* import was stripped, want it retained:\n%s", out)
	}
}

func TestIsFormattedTrueForStableOutput(t *testing.T) {
	cfg := config.NewConfig()
	source := mustFormat(t, "class C {}", cfg)
	ok, err := IsFormatted(context.Background(), []byte(source), cfg)
	if err != nil {
		t.Fatalf("IsFormatted() error = %v", err)
	}
	if !ok {
		t.Errorf("IsFormatted() = false for already-formatted input")
	}
}

func TestIsFormattedFalseForRawInput(t *testing.T) {
	cfg := config.NewConfig()
	ok, err := IsFormatted(context.Background(), []byte("class   C   {    }"), cfg)
	if err != nil {
		t.Fatalf("IsFormatted() error = %v", err)
	}
	if ok {
		t.Errorf("IsFormatted() = true for obviously-unformatted input")
	}
}

func TestFormatGoogleStyleNarrowerWidth(t *testing.T) {
	cfg := config.NewConfig()
	cfg.ApplyStyle(config.StyleGoogle)
	out := mustFormat(t, "class C {}", cfg)
	if len(out) == 0 {
		t.Errorf("Format() with google style returned empty output")
	}
}

// TestFormatBinaryExpressionBreaksOperatorLeading covers spec.md 4.4 and
// scenario S5: a broken binary expression puts the operator at the start
// of the continuation line, not trailing the line it breaks from.
func TestFormatBinaryExpressionBreaksOperatorLeading(t *testing.T) {
	cfg := config.NewConfig()
	cfg.LineWidth = 40
	source := `class C {
  boolean f() {
    return firstCondition && secondCondition;
  }
}`
	out := mustFormat(t, source, cfg)

	if strings.Contains(out, "&&\n") {
		t.Errorf("operator trails the break, want it leading the continuation line:\n%s", out)
	}
	if !strings.Contains(out, "\n") || !strings.Contains(out, "&& secondCondition") {
		t.Errorf("want a broken line starting with \"&& secondCondition\":\n%s", out)
	}
}

// TestFormatEqualPrecedenceChainBreaksAsOneGroup covers spec.md 4.4's
// "operators of equal precedence at the same level break together" rule
// and scenario S5 ("all && break together"): when a chain of same-
// precedence operators doesn't fit, every operator moves to a leading
// position - never a partial break with some operators left inline.
func TestFormatEqualPrecedenceChainBreaksAsOneGroup(t *testing.T) {
	cfg := config.NewConfig()
	cfg.LineWidth = 40
	source := `class C {
  boolean f() {
    return firstCondition && secondCondition && thirdCondition && fourthCondition;
  }
}`
	out := mustFormat(t, source, cfg)

	wantOperators := 3
	gotOperators := strings.Count(out, "&&")
	if gotOperators != wantOperators {
		t.Fatalf("got %d \"&&\" occurrences, want %d:\n%s", gotOperators, wantOperators, out)
	}
	if strings.Count(out, "&& secondCondition") != 1 ||
		strings.Count(out, "&& thirdCondition") != 1 ||
		strings.Count(out, "&& fourthCondition") != 1 {
		t.Errorf("expected every operand to lead with its own \"&&\", got mixed/partial break:\n%s", out)
	}
	if strings.Contains(out, "&&\n") {
		t.Errorf("found a trailing operator, want every operator leading its continuation line:\n%s", out)
	}
}

// TestFormatMultiDeclaratorBreaksAfterComma covers spec.md 4.2: a
// multi-variable declaration that doesn't fit on one line breaks after
// each comma.
func TestFormatMultiDeclaratorBreaksAfterComma(t *testing.T) {
	cfg := config.NewConfig()
	cfg.LineWidth = 30
	source := `class C {
  int firstVariable, secondVariable, thirdVariable;
}`
	out := mustFormat(t, source, cfg)

	if !strings.Contains(out, ",\n") {
		t.Errorf("want the declarator list to break after a comma:\n%s", out)
	}
	for _, want := range []string{"firstVariable", "secondVariable", "thirdVariable"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted output missing declarator %q:\n%s", want, out)
		}
	}
}

// TestFormatSingleDeclaratorNeverBreaks covers the no-op path of
// emitDeclaratorList: a single declarator has no comma to break at, so
// it must never introduce a spurious line break even under a narrow
// width.
func TestFormatSingleDeclaratorNeverBreaks(t *testing.T) {
	cfg := config.NewConfig()
	cfg.LineWidth = 10
	source := `class C {
  int aVeryLongVariableNameThatWouldOtherwiseWrap;
}`
	out := mustFormat(t, source, cfg)
	if !strings.Contains(out, "int aVeryLongVariableNameThatWouldOtherwiseWrap;") {
		t.Errorf("single declarator should stay on one line, got:\n%s", out)
	}
}
