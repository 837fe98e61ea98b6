// Package main provides the gpacalc binary entry point.
// Gpacalc reads a plain-text file of course results, computes the GPA on
// a 4.0 scale, flags courses for retake, and projects the GPA under
// retake scenarios.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wkdkavishka/gpa-calculator/config"
	"github.com/wkdkavishka/gpa-calculator/gpa"
	"github.com/wkdkavishka/gpa-calculator/report"
	"github.com/wkdkavishka/gpa-calculator/transcript"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "gpacalc"
)

// rootOptions holds the persistent flag values shared by all commands.
type rootOptions struct {
	configPath string
	format     string
	logLevel   string
}

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gpacalc <results-file>",
		Short: "GPA calculator and retake advisor",
		Long: `Gpacalc reads a course results file and reports your GPA.

Each line of the results file holds one record: COURSE_CODE,CREDITS,GRADE
(for example SCS1201,3,B-). The report shows the current GPA, courses that
must be retaken, courses recommended for retake, and the projected GPA
after each retake scenario, assuming a retaken course earns an A.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "Output format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(batchCmd(opts))
	cmd.AddCommand(watchCmd(opts))

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// newEvaluator loads configuration and materializes the engine and
// renderer for the current invocation.
func newEvaluator(opts *rootOptions) (*gpa.Engine, report.Renderer, error) {
	cfg, err := config.NewLoader(slog.Default()).Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	table, err := cfg.PointTable()
	if err != nil {
		return nil, nil, err
	}
	policy, err := cfg.RetakePolicy()
	if err != nil {
		return nil, nil, err
	}
	engine, err := gpa.NewEngine(table, policy)
	if err != nil {
		return nil, nil, err
	}

	formatName := cfg.Output.Format
	if opts.format != "" {
		formatName = opts.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return nil, nil, err
	}
	renderer, err := report.NewRenderer(format, cfg.OutputPrecision())
	if err != nil {
		return nil, nil, err
	}

	return engine, renderer, nil
}

// evaluateFile reads, parses, and evaluates a single results file.
func evaluateFile(path string, engine *gpa.Engine) (*gpa.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	tr, err := transcript.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rep, err := engine.Evaluate(tr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rep, nil
}

func runReport(w io.Writer, path string, opts *rootOptions) error {
	engine, renderer, err := newEvaluator(opts)
	if err != nil {
		return err
	}

	rep, err := evaluateFile(path, engine)
	if err != nil {
		return err
	}

	return renderer.Render(w, path, rep)
}
