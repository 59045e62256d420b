package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/cobol/batch"
	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/format"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	var outputFormat string
	var outDir string
	var includePositions bool
	var includeAll bool
	var workers int

	cmd := &cobra.Command{
		Use:          "parse <file|dir>...",
		Short:        "Parse COBOL sources and dump their syntax trees",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}

			files, err := batch.Collect(args, settings.AllExtensions())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no COBOL sources in %v", args)
			}

			var filter format.Filter
			if !includeAll {
				filter = func(tok *data.Token) bool {
					return grammar.IsProgramText(tok) && !grammar.IsSeparator(tok)
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			run := batch.New(workers, options(settings, "")...).Run(ctx, files)
			for _, res := range run.Results {
				if res.Err != nil {
					report(res, nil)
					continue
				}
				report(res, cobol.Check(res.Tree, settings.MaxWordLength))

				opts := format.Options{Filter: filter, Positions: includePositions, File: res.Path}
				if outDir == "" {
					if err := encode(outputFormat, os.Stdout, opts, res); err != nil {
						return err
					}
					fmt.Println()
					continue
				}
				if err := writeTarget(targetPath(outDir, args, res.Path, "."+outputFormat), outputFormat, opts, res); err != nil {
					return err
				}
			}

			if failed := run.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d files failed to parse", len(failed), len(run.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "xml", "output format (xml, json)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write one file per source into this directory, mirroring the source tree")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include token positions in output")
	cmd.Flags().BoolVar(&includeAll, "all", false, "include separators, comments and text outside the program area")
	cmd.Flags().IntVarP(&workers, "jobs", "j", 0, "number of files parsed at once (default: one per CPU)")

	return cmd
}

// report prints the outcome of parsing one file to stderr.
func report(res *batch.Result, warnings []cobol.Warning) {
	errs := 0
	if res.Err != nil {
		errs = 1
	}
	fmt.Fprintf(os.Stderr, "%s: %s, %d errors, %d warnings (%s)\n", res.Path, res.Status, errs, len(warnings), res.Duration())
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", res.Err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  warning: %s:%v\n", res.Path, w)
	}
}

func encode(name string, w io.Writer, opts format.Options, res *batch.Result) error {
	enc, ok := format.New(name, w, opts)
	if !ok {
		return fmt.Errorf("unknown format: %s", name)
	}
	if err := enc.Encode(res.Tree); err != nil {
		return fmt.Errorf("encode %s: %w", res.Path, err)
	}
	return nil
}

func writeTarget(path, name string, opts format.Options, res *batch.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := encode(name, f, opts, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// targetPath maps a source file to its output file below outDir. Files
// found inside one of the directories named in roots keep their path
// relative to it; files named directly go to the top of outDir. The
// source extension is replaced by ext.
func targetPath(outDir string, roots []string, file, ext string) string {
	rel := filepath.Base(file)
	for _, root := range roots {
		r, err := filepath.Rel(root, file)
		if err != nil || r == "." || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			continue
		}
		rel = r
		break
	}
	return filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+ext)
}
