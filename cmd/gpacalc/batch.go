package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

func batchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Evaluate many results files matched by glob patterns",
		Long: `Batch evaluates every results file matched by the given glob patterns
and prints one report per file. Patterns support recursive wildcards,
e.g. "results/**/*.csv". Files that fail to parse are reported and the
remaining files are still evaluated; the command exits non-zero if any
file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.OutOrStdout(), args, opts)
		},
	}
}

// resolveResultFiles expands glob patterns to a sorted, de-duplicated
// list of regular files. Recursive wildcards (**) are supported.
func resolveResultFiles(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no results files match %v", patterns)
	}
	return files, nil
}

func runBatch(w io.Writer, patterns []string, opts *rootOptions) error {
	engine, renderer, err := newEvaluator(opts)
	if err != nil {
		return err
	}

	files, err := resolveResultFiles(patterns)
	if err != nil {
		return err
	}
	slog.Info("Evaluating transcripts", "count", len(files))

	failed := 0
	for i, path := range files {
		rep, err := evaluateFile(path, engine)
		if err != nil {
			slog.Error("Evaluation failed", "file", path, "error", err)
			failed++
			continue
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := renderer.Render(w, path, rep); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(files))
	}
	return nil
}
