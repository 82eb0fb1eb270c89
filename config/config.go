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

// Package config holds javafmt's resolved configuration (spec.md 6) and
// the CLI-flag/YAML-file wiring around it. The Flags/Config/NewConfig/
// RegisterFlags shape mirrors MacroPower-x's magicschema and log
// packages: a Flags struct names the CLI flags, a Config struct holds
// resolved values, and RegisterFlags binds one to a *pflag.FlagSet.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// Style selects a formatting preset. Choosing a Style sets the defaults
// of every other option; explicit flags or YAML fields override them
// afterward (spec.md 6). Style implements pflag.Value so it can be
// bound directly to a flag with flags.Var.
type Style string

const (
	StylePalantir Style = "palantir"
	StyleGoogle   Style = "google"
)

func (s *Style) String() string { return string(*s) }
func (s *Style) Type() string   { return "style" }
func (s *Style) Set(v string) error {
	switch Style(strings.ToLower(v)) {
	case StylePalantir, StyleGoogle:
		*s = Style(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("must be one of: palantir, google")
	}
}

// NewLineKind selects the emitted line terminator. It also implements
// pflag.Value.
type NewLineKind string

const (
	NewLineLF     NewLineKind = "lf"
	NewLineCRLF   NewLineKind = "crlf"
	NewLineSystem NewLineKind = "system"
)

func (k *NewLineKind) String() string { return string(*k) }
func (k *NewLineKind) Type() string   { return "newline" }
func (k *NewLineKind) Set(v string) error {
	switch NewLineKind(strings.ToLower(v)) {
	case NewLineLF, NewLineCRLF, NewLineSystem:
		*k = NewLineKind(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("must be one of: lf, crlf, system")
	}
}

// Literal returns the actual terminator bytes for k.
func (k NewLineKind) Literal() string {
	switch k {
	case NewLineCRLF:
		return "\r\n"
	case NewLineSystem:
		if os.PathSeparator == '\\' {
			return "\r\n"
		}
		return "\n"
	default:
		return "\n"
	}
}

// Config is the fully-resolved set of options from spec.md 6.
type Config struct {
	Style                Style
	LineWidth            int
	IndentWidth          int
	UseTabs              bool
	NewLineKind          NewLineKind
	FormatJavadoc        bool
	MethodChainThreshold int
	InlineLambdas        bool

	Flags Flags
}

// Flags names the CLI flags RegisterFlags binds Config's fields to,
// customizable the way MacroPower-x's Flags structs are (so embedding
// binaries can rename flags without forking the package).
type Flags struct {
	Style                string
	LineWidth            string
	IndentWidth          string
	UseTabs              string
	NewLineKind          string
	FormatJavadoc        string
	MethodChainThreshold string
	InlineLambdas        string
}

// defaultFlags returns the flag names javafmt's own CLI uses.
func defaultFlags() Flags {
	return Flags{
		Style:                "style",
		LineWidth:            "line-width",
		IndentWidth:          "indent-width",
		UseTabs:              "use-tabs",
		NewLineKind:          "newline",
		FormatJavadoc:        "format-javadoc",
		MethodChainThreshold: "method-chain-threshold",
		InlineLambdas:        "inline-lambdas",
	}
}

// NewConfig returns a Config defaulted to the palantir preset, with
// javafmt's default CLI flag names attached.
func NewConfig() *Config {
	c := &Config{Flags: defaultFlags()}
	c.ApplyStyle(StylePalantir)
	return c
}

// ApplyStyle resets every option to style's defaults.
func (c *Config) ApplyStyle(style Style) {
	switch style {
	case StyleGoogle:
		c.Style = StyleGoogle
		c.LineWidth = 100
		c.IndentWidth = 2
	default:
		c.Style = StylePalantir
		c.LineWidth = 120
		c.IndentWidth = 4
	}
	c.UseTabs = false
	c.NewLineKind = NewLineLF
	c.FormatJavadoc = false
	c.MethodChainThreshold = 80
	c.InlineLambdas = true
}

// PreScanStyle inspects args for an explicit --<style-flag> (or its
// shorthand "=value" form) ahead of full flag parsing, and applies that
// style's defaults before the real *pflag.FlagSet is built. This is
// what lets "--style=google --line-width=80" layer an explicit
// line-width on top of the google preset instead of the preset
// clobbering it after the fact: RegisterFlags always captures c's
// *current* values as flag defaults, so the style must be resolved
// first.
func (c *Config) PreScanStyle(args []string) {
	flagName := "--" + c.Flags.Style
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, flagName+"="); ok {
			c.ApplyStyle(Style(strings.ToLower(v)))
			return
		}
		if a == flagName && i+1 < len(args) {
			c.ApplyStyle(Style(strings.ToLower(args[i+1])))
			return
		}
	}
}

// RegisterFlags adds javafmt's configuration flags to flags, defaulting
// to c's current values. Call PreScanStyle first if args may contain an
// explicit --style override.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.Var(&c.Style, c.Flags.Style, "formatting preset, one of: palantir, google")
	flags.IntVar(&c.LineWidth, c.Flags.LineWidth, c.LineWidth, "maximum target column")
	flags.IntVar(&c.IndentWidth, c.Flags.IndentWidth, c.IndentWidth, "spaces per indent level")
	flags.BoolVar(&c.UseTabs, c.Flags.UseTabs, c.UseTabs, "emit a tab per indent level instead of spaces")
	flags.Var(&c.NewLineKind, c.Flags.NewLineKind, "line terminator, one of: lf, crlf, system")
	flags.BoolVar(&c.FormatJavadoc, c.Flags.FormatJavadoc, c.FormatJavadoc,
		"re-indent continuation lines of block and javadoc comments (comment text is not reflowed)")
	flags.IntVar(&c.MethodChainThreshold, c.Flags.MethodChainThreshold, c.MethodChainThreshold,
		"column at which method chains break per-dot")
	flags.BoolVar(&c.InlineLambdas, c.Flags.InlineLambdas, c.InlineLambdas,
		"has no effect on output: lambda bodies always keep their source form (expression or block)")
}

// Load reads a YAML configuration file and applies it on top of the
// palantir preset (or the file's own "style" field, if set, applied
// first). Fields absent from the file keep the preset's defaults. Uses
// github.com/goccy/go-yaml, the serializer MacroPower-x uses for its
// own config-shaped data.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw struct {
		Style                *string `yaml:"style"`
		LineWidth            *int    `yaml:"lineWidth"`
		IndentWidth          *int    `yaml:"indentWidth"`
		UseTabs              *bool   `yaml:"useTabs"`
		NewLineKind          *string `yaml:"newLineKind"`
		FormatJavadoc        *bool   `yaml:"formatJavadoc"`
		MethodChainThreshold *int    `yaml:"methodChainThreshold"`
		InlineLambdas        *bool   `yaml:"inlineLambdas"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	c := NewConfig()
	if raw.Style != nil {
		c.ApplyStyle(Style(strings.ToLower(*raw.Style)))
	}
	if raw.LineWidth != nil {
		c.LineWidth = *raw.LineWidth
	}
	if raw.IndentWidth != nil {
		c.IndentWidth = *raw.IndentWidth
	}
	if raw.UseTabs != nil {
		c.UseTabs = *raw.UseTabs
	}
	if raw.NewLineKind != nil {
		c.NewLineKind = NewLineKind(strings.ToLower(*raw.NewLineKind))
	}
	if raw.FormatJavadoc != nil {
		c.FormatJavadoc = *raw.FormatJavadoc
	}
	if raw.MethodChainThreshold != nil {
		c.MethodChainThreshold = *raw.MethodChainThreshold
	}
	if raw.InlineLambdas != nil {
		c.InlineLambdas = *raw.InlineLambdas
	}
	return c, nil
}
