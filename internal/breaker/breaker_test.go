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

package breaker

import (
	"testing"

	"github.com/speakeasy-api/javafmt/internal/ir"
)

func defaultOpts() Options {
	return Options{LineWidth: 20, IndentWidth: 4, Newline: "\n"}
}

func TestRenderGroupFitsFlat(t *testing.T) {
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("foo(")
	b.SoftNewline(ir.FlatEmpty)
	b.Text("a")
	b.Text(",")
	b.SoftNewline(ir.FlatSpace)
	b.Text("b")
	b.SoftNewline(ir.FlatEmpty)
	b.Text(")")
	b.FinishGroup(id)

	got := Render(b.Build(), defaultOpts())
	want := "foo(a, b)"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderGroupBreaksWhenTooWide(t *testing.T) {
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("someLongCall(")
	b.StartIndent(false)
	b.SoftNewline(ir.FlatEmpty)
	b.Text("argumentOne")
	b.Text(",")
	b.SoftNewline(ir.FlatSpace)
	b.Text("argumentTwo")
	b.FinishIndent()
	b.SoftNewline(ir.FlatEmpty)
	b.Text(")")
	b.FinishGroup(id)

	got := Render(b.Build(), defaultOpts())
	want := "someLongCall(\n    argumentOne,\n    argumentTwo\n)"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderHardNewlineForcesBreak(t *testing.T) {
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("a")
	b.Newline()
	b.Text("b")
	b.FinishGroup(id)

	got := Render(b.Build(), defaultOpts())
	want := "a\nb"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderNestedIndentAccumulates(t *testing.T) {
	b := ir.NewBuilder()
	b.Text("a")
	b.StartIndent(false)
	b.Newline()
	b.Text("b")
	b.StartIndent(false)
	b.Newline()
	b.Text("c")
	b.FinishIndent()
	b.FinishIndent()

	got := Render(b.Build(), defaultOpts())
	want := "a\n    b\n        c"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderContinuationIndentIsDouble(t *testing.T) {
	b := ir.NewBuilder()
	b.Text("a")
	b.StartIndent(true)
	b.Newline()
	b.Text("b")
	b.FinishIndent()

	got := Render(b.Build(), defaultOpts())
	want := "a\n        b"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderUseTabs(t *testing.T) {
	b := ir.NewBuilder()
	b.Text("a")
	b.StartIndent(false)
	b.Newline()
	b.Text("b")
	b.FinishIndent()

	opts := defaultOpts()
	opts.UseTabs = true
	got := Render(b.Build(), opts)
	want := "a\n\tb"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestGroupBrokeReportsDecision(t *testing.T) {
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("thisIsDefinitelyWiderThanTwentyColumns")
	b.FinishGroup(id)
	doc := b.Build()

	if !GroupBroke(doc, defaultOpts(), id) {
		t.Errorf("GroupBroke() = false, want true for an over-width group")
	}
}

func TestGroupBrokeFalseWhenFits(t *testing.T) {
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("short")
	b.FinishGroup(id)
	doc := b.Build()

	if GroupBroke(doc, defaultOpts(), id) {
		t.Errorf("GroupBroke() = true, want false for a short group")
	}
}

func TestRenderOuterGroupBrokenInnerGroupStillFitsFlat(t *testing.T) {
	b := ir.NewBuilder()
	outer := b.StartGroup()
	b.Text("outerCallWithLongName(")
	b.StartIndent(false)
	b.SoftNewline(ir.FlatEmpty)
	inner := b.StartGroup()
	b.Text("inner(")
	b.SoftNewline(ir.FlatEmpty)
	b.Text("x")
	b.SoftNewline(ir.FlatEmpty)
	b.Text(")")
	b.FinishGroup(inner)
	b.FinishIndent()
	b.SoftNewline(ir.FlatEmpty)
	b.Text(")")
	b.FinishGroup(outer)

	got := Render(b.Build(), defaultOpts())
	want := "outerCallWithLongName(\n    inner(x)\n)"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	// Rendering the same Doc twice must produce identical output - the
	// renderer must not carry state across Render calls.
	b := ir.NewBuilder()
	id := b.StartGroup()
	b.Text("foo(")
	b.SoftNewline(ir.FlatEmpty)
	b.Text("a")
	b.SoftNewline(ir.FlatEmpty)
	b.Text(")")
	b.FinishGroup(id)
	doc := b.Build()

	first := Render(doc, defaultOpts())
	second := Render(doc, defaultOpts())
	if first != second {
		t.Errorf("Render() not idempotent: %q != %q", first, second)
	}
}

func TestRenderUnbalancedGroupDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Render panicked on unbalanced doc: %v", r)
		}
	}()
	doc := ir.Doc{
		{Tag: ir.StartGroup, GroupID: 0},
		{Tag: ir.Text, Text: "a"},
	}
	Render(doc, defaultOpts())
}
