package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexdb/internal/adapter/postgres"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect the database schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(contextOrBackground(cmd.Context()), timeout)
			defer cancel()

			out := cmd.OutOrStdout()
			return postgres.WithMigrator(ctx, cfg.Database.DSN, func(p *goose.Provider) error {
				switch direction {
				case "down":
					res, err := p.Down(ctx)
					if err != nil {
						return fmt.Errorf("goose down: %w", err)
					}
					printResults(out, []*goose.MigrationResult{res})
				case "status":
					statuses, err := p.Status(ctx)
					if err != nil {
						return fmt.Errorf("goose status: %w", err)
					}
					return printStatus(out, statuses)
				default:
					res, err := p.Up(ctx)
					if err != nil {
						return fmt.Errorf("goose up: %w", err)
					}
					printResults(out, res)
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Migration timeout")

	return cmd
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no migrations to apply")
		return
	}
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		fmt.Fprintf(w, "%s %d %s (%s)\n", r.Direction, r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
}

func printStatus(w io.Writer, statuses []*goose.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
