package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a modkit run.
// Values are populated from .modkit.yaml, MODKIT_* env vars, and CLI flags.
// The GitHub token is read from GITHUB_TOKEN.
type Config struct {
	Org          string   `mapstructure:"org"`
	Branch       string   `mapstructure:"branch"`
	GitPath      string   `mapstructure:"git_path"`
	GhPath       string   `mapstructure:"gh_path"`
	APIBaseURL   string   `mapstructure:"api_base_url"`
	GitHubToken  string   `mapstructure:"github_token"`
	ModulePrefix string   `mapstructure:"module_prefix"`
	TemplatesDir string   `mapstructure:"templates_dir"`
	Denylist     []string `mapstructure:"denylist"`
	Verbose      bool     `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("org", "League-Java")
	viper.SetDefault("branch", "master")
	viper.SetDefault("git_path", "git")
	viper.SetDefault("gh_path", "gh")
	viper.SetDefault("api_base_url", "https://api.github.com")
	viper.SetDefault("module_prefix", "Module")
	viper.SetDefault("templates_dir", ".")
	viper.SetDefault("denylist", []string{"LeagueToken"})
	viper.SetDefault("verbose", false)

	if err := viper.BindEnv("github_token", "GITHUB_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("binding GITHUB_TOKEN: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
