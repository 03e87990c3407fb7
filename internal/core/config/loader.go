package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
)

func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := validateVersion(&cfg); err != nil {
		return nil, err
	}
	if err := validateAnalysis(&cfg); err != nil {
		return nil, err
	}
	if err := validateExclude(&cfg); err != nil {
		return nil, err
	}
	if err := validateHistory(&cfg); err != nil {
		return nil, err
	}
	if err := validateTracing(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Project.Key) == "" {
		cfg.Project.Key = "default"
	}
	if cfg.Analysis.Workers == 0 {
		cfg.Analysis.Workers = 4
	}
	if cfg.Analysis.Burst == 0 {
		cfg.Analysis.Burst = 1
	}
	if cfg.History.Enabled && strings.TrimSpace(cfg.History.Path) == "" {
		cfg.History.Path = "data/history.db"
	}
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	return nil
}

func validateAnalysis(cfg *Config) error {
	if cfg.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1, got %d", cfg.Analysis.Workers)
	}
	if cfg.Analysis.ModuleRate < 0 {
		return fmt.Errorf("analysis.module_rate must not be negative")
	}
	if cfg.Analysis.Burst < 1 {
		return fmt.Errorf("analysis.burst must be at least 1, got %d", cfg.Analysis.Burst)
	}
	return nil
}

func validateExclude(cfg *Config) error {
	for _, pattern := range cfg.Exclude.Modules {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude.modules pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func validateHistory(cfg *Config) error {
	if cfg.History.Enabled && strings.TrimSpace(cfg.History.Path) == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return nil
}

func validateTracing(cfg *Config) error {
	if cfg.Tracing.Enabled && strings.TrimSpace(cfg.Tracing.Endpoint) == "" {
		return fmt.Errorf("tracing.endpoint is required when tracing is enabled")
	}
	return nil
}

// CompileExcludes turns the exclude patterns into matchers. Load validates
// the patterns, so compilation here only fails on hand-built configs.
func (c *Config) CompileExcludes() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Exclude.Modules))
	for _, pattern := range c.Exclude.Modules {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude.modules pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
