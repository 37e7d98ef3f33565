package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xfumihiro/elixium-core/pkg/audit"
	"github.com/xfumihiro/elixium-core/pkg/config"
)

var auditFlags struct {
	limit  int
	maxAge time.Duration
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the instrumentation audit trail",
	Long: `Query the audit records written by the instrument command.

The audit backend comes from the configuration file; only the sqlite
backend persists across invocations.

Examples:
  # List recent compilations
  elixiumc audit list --config config.yaml

  # Show one compilation
  elixiumc audit get <job-id> --config config.yaml

  # Delete records older than the retention age
  elixiumc audit prune --max-age 2160h --config config.yaml`,
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit records",
	RunE:  runAuditList,
}

var auditGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Show one audit record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditGet,
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete audit records older than the retention age",
	RunE:  runAuditPrune,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditListCmd, auditGetCmd, auditPruneCmd)

	auditListCmd.Flags().IntVar(&auditFlags.limit, "limit", 20, "maximum records to list")
	auditPruneCmd.Flags().DurationVar(&auditFlags.maxAge, "max-age", 0, "retention age (default: from config)")
}

// openAuditStore builds the audit store the configuration selects.
func openAuditStore(cfg *config.Config) (audit.Store, error) {
	switch cfg.Audit.Backend {
	case "sqlite":
		return audit.NewSQLiteStore(cfg.Audit.DBPath)
	case "memory", "":
		return audit.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown audit backend %q", cfg.Audit.Backend)
	}
}

func runAuditList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := openAuditStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List(cmd.Context(), auditFlags.limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rec := range recs {
		fmt.Fprintf(out, "%s  %s  gamma=%d charges=%d nodes=%d\n",
			rec.CreatedAt.Format(time.RFC3339), rec.ID,
			rec.StaticGamma, rec.Charges, rec.TreeNodes)
	}
	fmt.Fprintf(out, "%d record(s)\n", len(recs))
	return nil
}

func runAuditGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := openAuditStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Job ID:       %s\n", rec.ID)
	fmt.Fprintf(out, "Source Hash:  %s\n", rec.SourceHash)
	fmt.Fprintf(out, "Tree Nodes:   %d\n", rec.TreeNodes)
	fmt.Fprintf(out, "Static Gamma: %d\n", rec.StaticGamma)
	fmt.Fprintf(out, "Charges:      %d\n", rec.Charges)
	fmt.Fprintf(out, "Diagnostics:  %d\n", rec.Diagnostics)
	fmt.Fprintf(out, "Duration:     %s\n", rec.Duration)
	fmt.Fprintf(out, "Created At:   %s\n", rec.CreatedAt.Format(time.RFC3339))
	return nil
}

func runAuditPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := openAuditStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	maxAge := auditFlags.maxAge
	if maxAge <= 0 {
		maxAge = cfg.Audit.Retention.MaxAge
	}

	retention := audit.NewRetention(store, cfg.Audit.Retention.Schedule, maxAge, newLogger(cfg))
	deleted, err := retention.Prune(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pruned %d record(s)\n", deleted)
	return nil
}
