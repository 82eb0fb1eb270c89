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

package vlog

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestVGatesOnLevel(t *testing.T) {
	orig := Level
	defer func() { Level = orig }()

	Level = 0
	if bool(V(1)) {
		t.Errorf("V(1) = true at Level 0, want false")
	}
	if !bool(V(0)) {
		t.Errorf("V(0) = false at Level 0, want true")
	}

	Level = 2
	if !bool(V(1)) {
		t.Errorf("V(1) = false at Level 2, want true")
	}
}

func TestPrintfOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Verbose(false).Printf("should not appear: %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Printf on a false Verbose wrote output: %q", buf.String())
	}

	Verbose(true).Printf("should appear: %d", 2)
	if !bytes.Contains(buf.Bytes(), []byte("should appear: 2")) {
		t.Errorf("Printf on a true Verbose did not write expected output: %q", buf.String())
	}
}
