package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WorktreesConfig holds worktree lifecycle settings
type WorktreesConfig struct {
	Dir       string   `toml:"dir" json:"dir"`             // base directory relative to the repo root
	Protected []string `toml:"protected" json:"protected"` // branches that must never get a managed worktree
}

// SpecsConfig holds feature scaffolding settings
type SpecsConfig struct {
	Dir      string `toml:"dir" json:"dir"`           // spec directory relative to the repo root
	Template string `toml:"template" json:"template"` // spec template relative to the repo root
	Padding  int    `toml:"padding" json:"padding"`   // digits in the feature number prefix
}

// Config holds the sw configuration for one repository
type Config struct {
	Worktrees WorktreesConfig `toml:"worktrees" json:"worktrees"`
	Specs     SpecsConfig     `toml:"specs" json:"specs"`
}

// DefaultWorktreeDir is where managed worktrees live, relative to the repo root
const DefaultWorktreeDir = ".worktrees"

// DefaultSpecsDir is where feature specs live, relative to the repo root
const DefaultSpecsDir = "specs"

// DefaultTemplate is the spec template copied into new features
const DefaultTemplate = "templates/spec-template.md"

// DefaultPadding is the digit count of feature number prefixes (001, 002, ...)
const DefaultPadding = 3

// Default returns the default configuration
func Default() Config {
	return Config{
		Worktrees: WorktreesConfig{
			Dir:       DefaultWorktreeDir,
			Protected: []string{"main", "master"},
		},
		Specs: SpecsConfig{
			Dir:      DefaultSpecsDir,
			Template: DefaultTemplate,
			Padding:  DefaultPadding,
		},
	}
}

// Path returns the config file path for the repository at repoRoot.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, ".spectrena", "config.toml")
}

// Load reads the config for the repository at repoRoot.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(repoRoot string) (Config, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := validateRelativePath(c.Worktrees.Dir, "worktrees.dir"); err != nil {
		return err
	}
	if err := validateRelativePath(c.Specs.Dir, "specs.dir"); err != nil {
		return err
	}
	if c.Specs.Template != "" {
		if err := validateRelativePath(c.Specs.Template, "specs.template"); err != nil {
			return err
		}
	}
	if c.Specs.Padding < 1 || c.Specs.Padding > 6 {
		return fmt.Errorf("specs.padding must be between 1 and 6, got: %d", c.Specs.Padding)
	}
	return nil
}

// validateRelativePath checks that the path stays inside the repository.
// Absolute paths and paths escaping via .. would make the managed base
// directory ambiguous, so both are rejected.
func validateRelativePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", fieldName)
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("%s must be relative to the repo root, got: %q", fieldName, path)
	}
	clean := filepath.Clean(path)
	if clean == ".." || len(clean) >= 3 && clean[:3] == ".."+string(filepath.Separator) {
		return fmt.Errorf("%s must not escape the repo root, got: %q", fieldName, path)
	}
	return nil
}

const defaultConfig = `# sw configuration
# This file is optional; every setting has a default.

[worktrees]
# Base directory for managed worktrees, relative to the repo root.
# dir = ".worktrees"

# Branches that must never get a managed worktree.
# protected = ["main", "master"]

[specs]
# Directory for feature specs, relative to the repo root.
# dir = "specs"

# Template copied into new spec files.
# template = "templates/spec-template.md"

# Digits in the feature number prefix (3 -> 001, 002, ...).
# padding = 3
`

// Init creates a default config file for the repository at repoRoot.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(repoRoot string, force bool) (string, error) {
	path := Path(repoRoot)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
