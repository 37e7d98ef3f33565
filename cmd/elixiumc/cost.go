package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xfumihiro/elixium-core/pkg/contract/gamma"
)

var costFlags struct {
	in     string
	strict bool
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Report the static gamma schedule of a contract tree",
	Long: `Compute per-statement gamma costs without rewriting the tree.

Each top-level statement is priced by the cost model and the total static
schedule is printed. Node kinds with no cost rule are reported as
diagnostics; pass --strict to reject them instead.

Examples:
  # Price a contract file
  elixiumc cost --in contract.json

  # Reject contracts containing unpriced node kinds
  elixiumc cost --in contract.json --strict`,
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)

	costCmd.Flags().StringVar(&costFlags.in, "in", "", "contract tree file (default: stdin)")
	costCmd.Flags().BoolVar(&costFlags.strict, "strict", false, "reject node kinds with no cost rule")
}

func runCost(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root, err := readTree(cfg, costFlags.in)
	if err != nil {
		return err
	}

	eval := gamma.NewEvaluator().WithStrictKinds(costFlags.strict || cfg.Evaluator.StrictKinds)

	var total gamma.Cost
	out := cmd.OutOrStdout()
	for i, stmt := range root.Body {
		cost, err := eval.Cost(stmt)
		if err != nil {
			return err
		}
		total += cost
		fmt.Fprintf(out, "statement %d (%s): %d gamma\n", i, stmt.Type, cost)
	}
	fmt.Fprintf(out, "total static gamma: %d\n", total)

	for _, d := range eval.Diagnostics() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d.Message)
	}
	return nil
}
