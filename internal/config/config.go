// Package config resolves tool settings from defaults, an optional yaml
// file and MDINDEX_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename probed when none is given.
const DefaultFile = "mdindex.yaml"

type Config struct {
	// Dir is the directory to scan.
	Dir string `yaml:"dir"`

	// IndexFilename is the output document, regenerated in full on every
	// run and excluded from scanning.
	IndexFilename string `yaml:"index_filename"`

	// Extensions lists eligible source extensions, with leading dot.
	Extensions []string `yaml:"extensions"`

	// Exclude lists extra filenames to skip besides the index itself.
	Exclude []string `yaml:"exclude"`

	// OutlineLimit caps outline entries shown per detail section.
	OutlineLimit int `yaml:"outline_limit"`

	// WriteEmpty writes a placeholder index when no documents are found
	// instead of skipping the run.
	WriteEmpty bool `yaml:"write_empty"`
}

func Default() Config {
	return Config{
		Dir:           ".",
		IndexFilename: "init.md",
		Extensions:    []string{".md", ".markdown"},
		OutlineLimit:  10,
	}
}

// Load resolves the effective configuration. A .env file is applied to the
// environment first, then path (or DefaultFile, if present) is read as
// yaml, then MDINDEX_* variables override individual fields. A missing
// DefaultFile is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case explicit:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("MDINDEX_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("MDINDEX_INDEX_FILENAME"); v != "" {
		cfg.IndexFilename = v
	}
	cfg.OutlineLimit = envInt("MDINDEX_OUTLINE_LIMIT", cfg.OutlineLimit)

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("scan directory must not be empty")
	}
	if c.IndexFilename == "" {
		return fmt.Errorf("index filename must not be empty")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one source extension is required")
	}
	if c.OutlineLimit <= 0 {
		return fmt.Errorf("outline limit must be positive, got %d", c.OutlineLimit)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
