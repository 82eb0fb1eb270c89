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

// The javafmt command formats Java source files in place, checks
// whether they are already formatted, or prints a diff of what would
// change.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/speakeasy-api/javafmt"
	"github.com/speakeasy-api/javafmt/config"
	"github.com/speakeasy-api/javafmt/internal/clog"
	"github.com/speakeasy-api/javafmt/internal/diffcolor"
	"github.com/speakeasy-api/javafmt/internal/future"
)

type runMode int

const (
	modeWrite runMode = iota
	modeCheck
	modeDiff
	modeStdout
)

func main() {
	cfg := config.NewConfig()
	logCfg := clog.NewConfig()

	var check, diff, list, stdout bool

	rootCmd := &cobra.Command{
		Use:   "javafmt [flags] <path>...",
		Short: "Format Java source files",
		Long: `javafmt reformats Java source into a single opinionated style. Pass one
or more files or directories; directories are walked recursively for
*.java files. With no arguments, javafmt reads a single file from
stdin and writes the formatted result to stdout.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modeWrite
			switch {
			case check:
				mode = modeCheck
			case diff:
				mode = modeDiff
			case stdout || len(args) == 0:
				mode = modeStdout
			}
			return run(cmd.Context(), cfg, logCfg, mode, list, args)
		},
	}

	cfg.PreScanStyle(os.Args[1:])
	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&check, "check", false, "report files that are not formatted, without writing them")
	rootCmd.Flags().BoolVar(&diff, "diff", false, "print a diff of what would change, without writing it")
	rootCmd.Flags().BoolVar(&list, "list", false, "print the names of files that would change")
	rootCmd.Flags().BoolVar(&stdout, "stdout", false, "write the formatted result to stdout instead of in place")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "javafmt: %v\n", err)
		os.Exit(1)
	}
}

type fileResult struct {
	path      string
	changed   bool
	err       error
	formatted []byte
	original  []byte
	elapsed   time.Duration
}

func run(ctx context.Context, cfg *config.Config, logCfg *clog.Config, mode runMode, list bool, args []string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}
	logger := slog.New(handler)

	if len(args) == 0 {
		return runStdin(ctx, cfg)
	}

	paths, err := collectJavaFiles(args)
	if err != nil {
		return err
	}

	// Each file is formatted by an independent future; no synchronization
	// is needed beyond waiting on each one (javafmt.Format has no shared
	// state across calls).
	futures := make([]*future.Value, len(paths))
	for i, p := range paths {
		p := p
		futures[i] = future.New(func() interface{} {
			return formatFile(ctx, cfg, p)
		})
	}

	anyChanged := false
	anyErr := false
	for _, f := range futures {
		res := f.Get().(fileResult)
		logger.Info("format",
			"path", res.path,
			"changed", res.changed,
			"duration", res.elapsed,
		)
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "javafmt: %s: %v\n", res.path, res.err)
			anyErr = true
			continue
		}
		if res.changed {
			anyChanged = true
		}
		if err := emit(mode, list, res); err != nil {
			fmt.Fprintf(os.Stderr, "javafmt: %s: %v\n", res.path, err)
			anyErr = true
		}
	}

	if anyErr {
		return fmt.Errorf("one or more files failed to format")
	}
	if mode == modeCheck && anyChanged {
		return fmt.Errorf("one or more files are not formatted")
	}
	return nil
}

func formatFile(ctx context.Context, cfg *config.Config, path string) fileResult {
	start := time.Now()
	original, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: errors.Wrap(err, "reading file"), elapsed: time.Since(start)}
	}
	formatted, err := javafmt.Format(ctx, original, cfg)
	if err != nil {
		return fileResult{path: path, err: err, elapsed: time.Since(start)}
	}
	return fileResult{
		path:      path,
		changed:   string(original) != string(formatted),
		formatted: formatted,
		original:  original,
		elapsed:   time.Since(start),
	}
}

func emit(mode runMode, list bool, res fileResult) error {
	switch mode {
	case modeCheck:
		if res.changed {
			fmt.Println(res.path)
		}
		return nil
	case modeDiff:
		if res.changed {
			fmt.Print(diffcolor.Unified(res.path, res.original, res.formatted))
		}
		return nil
	case modeStdout:
		_, err := os.Stdout.Write(res.formatted)
		return err
	default: // modeWrite
		if list && res.changed {
			fmt.Println(res.path)
		}
		if !res.changed {
			return nil
		}
		info, err := os.Stat(res.path)
		perm := os.FileMode(0o644)
		if err == nil {
			perm = info.Mode()
		}
		if err := os.WriteFile(res.path, res.formatted, perm); err != nil {
			return errors.Wrapf(err, "writing %s", res.path)
		}
		return nil
	}
}

func runStdin(ctx context.Context, cfg *config.Config) error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return errors.Wrap(err, "reading stdin")
	}
	formatted, err := javafmt.Format(ctx, source, cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(formatted)
	return err
}

// collectJavaFiles expands args (files or directories) into a flat list
// of *.java file paths, walking directories recursively.
func collectJavaFiles(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", a)
		}
		if !info.IsDir() {
			out = append(out, a)
			continue
		}
		err = filepath.Walk(a, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if strings.HasSuffix(p, ".java") {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", a)
		}
	}
	return out, nil
}
