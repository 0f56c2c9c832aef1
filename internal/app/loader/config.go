package loader

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds lexicon load settings.
type Config struct {
	BaseDir          string `yaml:"base_dir"            env:"LEXICON_BASE_DIR"`
	MaxIssuesPerFile int    `yaml:"max_issues_per_file" env:"LEXICON_MAX_ISSUES"     env-default:"100"`
	SkipSentiment    bool   `yaml:"skip_sentiment"      env:"LEXICON_SKIP_SENTIMENT"`
}

// LoadConfig reads load configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("loader config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("loader config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("loader config: read env: %w", err)
	}

	return &cfg, nil
}
