// Package config loads defaults for doctool commands.
//
// Precedence, lowest to highest: built-in defaults, DOCTOOL_* environment
// variables, the YAML config file, command-line flags (applied by cmd).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"doctool/internal/report"
	"doctool/internal/toc"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".doctool.yaml"

// Config holds the per-command defaults.
type Config struct {
	TOC    TOCConfig    `yaml:"toc"`
	Report ReportConfig `yaml:"report"`
}

// TOCConfig mirrors the toc command flags.
type TOCConfig struct {
	Codebase bool `yaml:"codebase"`
	AllowH1  bool `yaml:"allow_h1"`
	MaxLevel int  `yaml:"max_level"`
}

// ReportConfig mirrors the report command flags.
type ReportConfig struct {
	BranchFile string `yaml:"branch_file"`
}

// Load builds the config from defaults, environment and the YAML file at
// path (DefaultPath when empty). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		TOC: TOCConfig{
			Codebase: envBool("DOCTOOL_CODEBASE", false),
			AllowH1:  envBool("DOCTOOL_ALLOW_H1", false),
			MaxLevel: envInt("DOCTOOL_MAX_LEVEL", toc.DefaultMaxLevel),
		},
		Report: ReportConfig{
			BranchFile: envOr("DOCTOOL_BRANCH_FILE", report.DefaultBranchFile),
		},
	}

	if path == "" {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
