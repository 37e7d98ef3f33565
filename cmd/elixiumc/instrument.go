package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xfumihiro/elixium-core/pkg/pipeline"
)

var instrumentFlags struct {
	in  string
	out string
}

var instrumentCmd = &cobra.Command{
	Use:   "instrument",
	Short: "Sanitize and instrument a contract tree",
	Long: `Run the full contract-preparation sequence over an ESTree JSON tree.

The tree is sanitized first, then a gamma metering call is inserted ahead
of every costed statement. The deployable tree is written as ESTree JSON;
the static gamma schedule is reported on stderr.

Examples:
  # Instrument a contract file
  elixiumc instrument --in contract.json --out deployable.json

  # Read from stdin, write to stdout
  cat contract.json | elixiumc instrument`,
	RunE: runInstrument,
}

func init() {
	rootCmd.AddCommand(instrumentCmd)

	instrumentCmd.Flags().StringVar(&instrumentFlags.in, "in", "", "contract tree file (default: stdin)")
	instrumentCmd.Flags().StringVar(&instrumentFlags.out, "out", "", "output file (default: stdout)")
}

func runInstrument(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	root, err := readTree(cfg, instrumentFlags.in)
	if err != nil {
		return err
	}

	pl := pipeline.New(cfg, nil).WithLogger(logger)

	if cfg.Audit.Enabled {
		store, err := openAuditStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		pl = pl.WithAuditStore(store)
	}

	res, err := pl.CompileTree(cmd.Context(), root)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		logger.Warn("cost evaluation fallback", "kind", d.Kind, "message", d.Message)
	}

	if err := writeTree(instrumentFlags.out, res.Tree); err != nil {
		return err
	}

	logger.Info("contract instrumented",
		"job_id", res.JobID,
		"static_gamma", uint64(res.StaticGamma),
		"charges", res.Charges,
		"tree_nodes", res.NodeCount)
	return nil
}
