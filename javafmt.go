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

// Package javafmt formats Java source into a single opinionated style
// (120-column, 4-space by default): parse with the external grammar in
// internal/syntax, generate a print-item document with internal/gen,
// and resolve it to text with internal/breaker. Format is the package's
// only entry point most callers need; cmd/javafmt wraps it for the CLI.
package javafmt

import (
	"bytes"
	"context"

	"github.com/speakeasy-api/javafmt/config"
	"github.com/speakeasy-api/javafmt/internal/breaker"
	"github.com/speakeasy-api/javafmt/internal/gen"
	"github.com/speakeasy-api/javafmt/internal/syntax"
	"github.com/speakeasy-api/javafmt/internal/vlog"
)

// Format reformats source. If source fails to parse as Java, Format
// returns source unchanged with a nil error - a parse failure is never
// surfaced across this boundary, only ever "left as found" (spec.md
// 7). Callers that want to know why can check internal/vlog output at
// V(1); the sentinel wrapped internally is syntax.ErrParse. cfg may be
// nil, in which case config.NewConfig's defaults apply.
func Format(ctx context.Context, source []byte, cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	tree, err := syntax.Parse(ctx, source)
	if err != nil {
		if tree != nil {
			tree.Close()
		}
		vlog.V(1).Printf("javafmt: %v, leaving input unchanged", err)
		return append([]byte(nil), source...), nil
	}
	defer tree.Close()

	doc := gen.Generate(source, tree.Root(), cfg)
	out := breaker.Render(doc, breaker.Options{
		LineWidth:   cfg.LineWidth,
		IndentWidth: cfg.IndentWidth,
		UseTabs:     cfg.UseTabs,
		Newline:     cfg.NewLineKind.Literal(),
	})
	return []byte(out), nil
}

// IsFormatted reports whether source is already exactly as Format
// would render it, comparing byte-for-byte.
func IsFormatted(ctx context.Context, source []byte, cfg *config.Config) (bool, error) {
	formatted, err := Format(ctx, source, cfg)
	if err != nil {
		return false, err
	}
	return bytes.Equal(source, formatted), nil
}
