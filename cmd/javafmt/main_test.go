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

package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/speakeasy-api/javafmt/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s) error = %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func TestCollectJavaFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	writeFile(t, path, "class Foo {}")

	got, err := collectJavaFiles([]string{path})
	if err != nil {
		t.Fatalf("collectJavaFiles() error = %v", err)
	}
	if len(got) != 1 || got[0] != path {
		t.Errorf("collectJavaFiles() = %v, want [%s]", got, path)
	}
}

func TestCollectJavaFilesWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "A.java")
	b := filepath.Join(dir, "sub", "B.java")
	notJava := filepath.Join(dir, "README.md")
	writeFile(t, a, "class A {}")
	writeFile(t, b, "class B {}")
	writeFile(t, notJava, "not java")

	got, err := collectJavaFiles([]string{dir})
	if err != nil {
		t.Fatalf("collectJavaFiles() error = %v", err)
	}
	sort.Strings(got)

	want := []string{a, b}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("collectJavaFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collectJavaFiles()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCollectJavaFilesMissingPath(t *testing.T) {
	_, err := collectJavaFiles([]string{"/nonexistent/path/Foo.java"})
	if err == nil {
		t.Errorf("collectJavaFiles() with a missing path returned no error")
	}
}

func TestFormatFileReportsChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	writeFile(t, path, "class   Foo   {   }")

	res := formatFile(context.Background(), config.NewConfig(), path)
	if res.err != nil {
		t.Fatalf("formatFile() error = %v", res.err)
	}
	if !res.changed {
		t.Errorf("formatFile() changed = false, want true for unformatted input")
	}
}

func TestFormatFileMissing(t *testing.T) {
	res := formatFile(context.Background(), config.NewConfig(), filepath.Join(t.TempDir(), "nope.java"))
	if res.err == nil {
		t.Errorf("formatFile() on a missing file returned no error")
	}
}

func TestEmitCheckModeUnchangedReturnsNoError(t *testing.T) {
	if err := emit(modeCheck, false, fileResult{path: "Foo.java", changed: false}); err != nil {
		t.Errorf("emit(modeCheck) with no change returned error: %v", err)
	}
}
