// Package cmd provides the CLI commands for lexdb.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexdb/internal/app"
	"github.com/heartmarshall/lexdb/internal/config"
)

// rootOptions holds the persistent flags. --base-dir and --log-level are
// applied as environment variables before the config is read, so they
// outrank both YAML and env.
type rootOptions struct {
	configPath string
	baseDir    string
	logLevel   string
}

// NewRootCmd creates the root command for the lexdb CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lexdb",
		Short: "WordNet and SUMO mapping loader and lookup server",
		Long: `lexdb reads the WordNet-SUMO mapping files, exception lists, sense index,
word frequencies, stopwords and sentiment lexicon into one cross-referenced
in-memory index. It can report on a load, serve lookups over HTTP and
export the index to PostgreSQL.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("lexdb version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config YAML (overrides CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&opts.baseDir, "base-dir", "", "Directory holding the resource files (overrides lexicon.base_dir)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newLoadCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig applies the persistent flags and reads the application config.
func (o *rootOptions) loadConfig() (*config.Config, *slog.Logger, error) {
	for env, val := range map[string]string{
		"LEXICON_BASE_DIR": o.baseDir,
		"LOG_LEVEL":        o.logLevel,
	} {
		if val == "" {
			continue
		}
		if err := os.Setenv(env, val); err != nil {
			return nil, nil, fmt.Errorf("set %s: %w", env, err)
		}
	}

	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadPath(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
