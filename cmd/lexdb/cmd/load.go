package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexdb/internal/app/loader"
)

func newLoadCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the resource files and print the load report",
		Long: `Load every resource file into a fresh index and print a per-file report:
lines parsed, skipped and failed, anomalies and missing files.

With --strict the command fails when any file is missing or has problems.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadConfig()
			if err != nil {
				return err
			}

			_, report := loader.New(logger, cfg.Lexicon).Load()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else if err := printReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if strict && report.HasErrors() {
				return fmt.Errorf("load %s finished with errors", report.RunID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any file is missing or has problems")

	return cmd
}

func printReport(w io.Writer, r loader.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s (%s)\n\n", r.RunID, r.Duration.Round(time.Millisecond))
	fmt.Fprintln(tw, "PHASE\tKEY\tPARSED\tSKIPPED\tFAILED\tANOMALIES\tSTATUS")
	for _, f := range r.Files {
		status := "ok"
		switch {
		case f.Missing():
			status = "missing"
		case f.Err != nil:
			status = "error: " + f.Error
		case f.Stats.HasIssues():
			status = "issues"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			f.Phase, f.Key, f.Stats.Parsed, f.Stats.Skipped, f.Stats.Failed, f.Stats.Anomalies, status)
	}
	for _, g := range r.UnusableGrammars {
		fmt.Fprintf(tw, "\nunusable grammar: %s", g)
	}

	t := r.Totals()
	fmt.Fprintf(tw, "\ncomplete: %t  parsed: %d  failed: %d  anomalies: %d\n", r.Complete, t.Parsed, t.Failed, t.Anomalies)
	return tw.Flush()
}
