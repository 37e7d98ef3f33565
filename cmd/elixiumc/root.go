package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xfumihiro/elixium-core/pkg/config"
	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/parser"
	"github.com/xfumihiro/elixium-core/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "elixiumc",
	Short: "Elixium contract instrumenter",
	Long: `Elixiumc prepares Elixium smart contracts for metered execution.

It reads contract trees in ESTree JSON and runs two passes over them:
  - Sanitization renames user identifiers out of runtime-reserved names
  - Instrumentation inserts a gamma metering call ahead of every costed
    computation

The instrumented tree carries its own cost schedule, so execution cannot
proceed without paying gamma.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configured file, or the defaults when no file was
// given. Environment overrides apply either way.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		cfg := config.Default()
		return cfg, nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// newLogger builds the structured logger for one command invocation.
// Logs go to stderr so command output on stdout stays machine-readable.
func newLogger(cfg *config.Config) *slog.Logger {
	lc := cfg.Logging
	if verbose {
		lc.Level = "debug"
	}
	return logging.NewWithWriter(lc, os.Stderr)
}

// readTree decodes an ESTree JSON tree from the given path, or stdin when
// the path is "-" or empty.
func readTree(cfg *config.Config, path string) (*ast.Node, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open contract tree: %w", err)
		}
		defer f.Close()
		r = f
	}
	dec := parser.NewTreeDecoder().WithMaxBytes(cfg.Limits.MaxSourceBytes)
	return dec.Decode(r)
}

// writeTree encodes a tree as ESTree JSON to the given path, or stdout when
// the path is "-" or empty.
func writeTree(path string, root *ast.Node) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return ast.Encode(w, root)
}
