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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaultsToPalantir(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, StylePalantir, c.Style)
	assert.Equal(t, 120, c.LineWidth)
	assert.Equal(t, 4, c.IndentWidth)
	assert.False(t, c.UseTabs)
	assert.Equal(t, NewLineLF, c.NewLineKind)
	assert.False(t, c.FormatJavadoc)
	assert.True(t, c.InlineLambdas)
}

func TestApplyStyleGoogle(t *testing.T) {
	c := NewConfig()
	c.ApplyStyle(StyleGoogle)
	assert.Equal(t, StyleGoogle, c.Style)
	assert.Equal(t, 100, c.LineWidth)
	assert.Equal(t, 2, c.IndentWidth)
}

func TestStyleSetRejectsUnknown(t *testing.T) {
	var s Style
	require.NoError(t, s.Set("Google"))
	assert.Equal(t, StyleGoogle, s)

	err := s.Set("bogus")
	assert.Error(t, err)
}

func TestNewLineKindLiteral(t *testing.T) {
	assert.Equal(t, "\n", NewLineLF.Literal())
	assert.Equal(t, "\r\n", NewLineCRLF.Literal())
}

func TestPreScanStyleAppliesBeforeRegisterFlags(t *testing.T) {
	c := NewConfig()
	args := []string{"--style=google", "--line-width=80"}
	c.PreScanStyle(args)
	assert.Equal(t, StyleGoogle, c.Style)
	assert.Equal(t, 100, c.LineWidth, "PreScanStyle alone should not have parsed --line-width yet")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	assert.Equal(t, 80, c.LineWidth, "explicit --line-width should override the google preset")
}

func TestPreScanStyleSpaceForm(t *testing.T) {
	c := NewConfig()
	c.PreScanStyle([]string{"--style", "google"})
	assert.Equal(t, StyleGoogle, c.Style)
}

func TestRegisterFlagsDefaultsToCurrentValues(t *testing.T) {
	c := NewConfig()
	c.LineWidth = 77
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, 77, c.LineWidth)
}

func TestLoadAppliesYAMLOverPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "javafmt.yaml")
	content := []byte("style: google\nlineWidth: 88\nuseTabs: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StyleGoogle, c.Style)
	assert.Equal(t, 88, c.LineWidth)
	assert.True(t, c.UseTabs)
	assert.Equal(t, 2, c.IndentWidth, "indentWidth absent from file keeps the google preset's default")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
