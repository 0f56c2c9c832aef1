package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexdb/internal/adapter/postgres"
	"github.com/heartmarshall/lexdb/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/lexdb/internal/app/loader"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var allowIncomplete bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load the index and export it to PostgreSQL",
		Long: `Load the resource files and replace the lex_* tables with the result in one
transaction. Run 'lexdb migrate up' first. An incomplete load is refused
unless --allow-incomplete is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			idx, report := loader.New(logger, cfg.Lexicon).Load()
			if !report.Complete && !allowIncomplete {
				return fmt.Errorf("load %s is incomplete; rerun with --allow-incomplete to export anyway", report.RunID)
			}

			ctx, cancel := context.WithTimeout(contextOrBackground(cmd.Context()), timeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			run, err := lexicon.NewExporter(pool, logger).Export(ctx, idx, report.RunID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		},
	}

	cmd.Flags().BoolVar(&allowIncomplete, "allow-incomplete", false, "Export even when some files were missing or failed")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Overall export timeout")

	return cmd
}
