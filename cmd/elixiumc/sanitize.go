package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xfumihiro/elixium-core/pkg/contract/sanitize"
)

var sanitizeFlags struct {
	in  string
	out string
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Run only the identifier-sanitization pass",
	Long: `Rename user-supplied identifiers so contract code cannot shadow
runtime-reserved names.

Contract lifecycle names and accesses rooted at the host namespace are left
untouched. The output tree is not instrumented; run the instrument command
for a deployable tree.

Examples:
  elixiumc sanitize --in contract.json --out sanitized.json`,
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().StringVar(&sanitizeFlags.in, "in", "", "contract tree file (default: stdin)")
	sanitizeCmd.Flags().StringVar(&sanitizeFlags.out, "out", "", "output file (default: stdout)")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root, err := readTree(cfg, sanitizeFlags.in)
	if err != nil {
		return err
	}

	clean, err := sanitize.NewPass().
		WithPrefix(cfg.Sanitizer.Prefix).
		WithHostNamespace(cfg.Sanitizer.HostNamespace).
		WithExclusions(cfg.Sanitizer.Exclusions...).
		WithLimits(cfg.TreeLimits()).
		Sanitize(root)
	if err != nil {
		return err
	}

	return writeTree(sanitizeFlags.out, clean)
}
