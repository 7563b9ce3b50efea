package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Worktrees.Dir != DefaultWorktreeDir {
		t.Errorf("expected worktrees.dir %q, got %q", DefaultWorktreeDir, cfg.Worktrees.Dir)
	}
	if len(cfg.Worktrees.Protected) != 2 {
		t.Errorf("expected 2 protected branches, got %v", cfg.Worktrees.Protected)
	}
	if cfg.Specs.Padding != DefaultPadding {
		t.Errorf("expected specs.padding %d, got %d", DefaultPadding, cfg.Specs.Padding)
	}
}

func TestLoadNonexistent(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load without config file = %v, want nil", err)
	}
	if cfg.Worktrees.Dir != DefaultWorktreeDir {
		t.Errorf("expected default worktrees.dir, got %q", cfg.Worktrees.Dir)
	}
}

func TestLoad(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, `
[worktrees]
dir = "wt"
protected = ["main", "master", "release"]

[specs]
dir = "features"
padding = 4
`)

	cfg, err := Load(repo)
	if err != nil {
		t.Fatalf("Load = %v, want nil", err)
	}
	if cfg.Worktrees.Dir != "wt" {
		t.Errorf("worktrees.dir = %q, want %q", cfg.Worktrees.Dir, "wt")
	}
	if len(cfg.Worktrees.Protected) != 3 {
		t.Errorf("protected = %v, want 3 entries", cfg.Worktrees.Protected)
	}
	if cfg.Specs.Dir != "features" {
		t.Errorf("specs.dir = %q, want %q", cfg.Specs.Dir, "features")
	}
	if cfg.Specs.Padding != 4 {
		t.Errorf("specs.padding = %d, want 4", cfg.Specs.Padding)
	}
}

func TestLoadPartial(t *testing.T) {
	// Settings that aren't overridden keep their defaults.
	repo := t.TempDir()
	writeConfig(t, repo, `
[specs]
template = "docs/spec-template.md"
`)

	cfg, err := Load(repo)
	if err != nil {
		t.Fatalf("Load = %v, want nil", err)
	}
	if cfg.Worktrees.Dir != DefaultWorktreeDir {
		t.Errorf("worktrees.dir = %q, want default %q", cfg.Worktrees.Dir, DefaultWorktreeDir)
	}
	if cfg.Specs.Template != "docs/spec-template.md" {
		t.Errorf("specs.template = %q, want %q", cfg.Specs.Template, "docs/spec-template.md")
	}
	if cfg.Specs.Padding != DefaultPadding {
		t.Errorf("specs.padding = %d, want default %d", cfg.Specs.Padding, DefaultPadding)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed toml",
			content: "[worktrees\ndir = wt",
			errMsg:  "failed to parse",
		},
		{
			name:    "absolute worktree dir",
			content: "[worktrees]\ndir = \"/tmp/wt\"",
			errMsg:  "must be relative",
		},
		{
			name:    "escaping specs dir",
			content: "[specs]\ndir = \"../specs\"",
			errMsg:  "must not escape",
		},
		{
			name:    "zero padding",
			content: "[specs]\npadding = 0",
			errMsg:  "padding must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := t.TempDir()
			writeConfig(t, repo, tt.content)

			_, err := Load(repo)
			if err == nil {
				t.Fatal("Load = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Load error = %q, want substring %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		t.Fatalf("encode = %v, want nil", err)
	}

	var decoded Config
	if err := toml.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("decode = %v, want nil", err)
	}
	if !reflect.DeepEqual(decoded, Default()) {
		t.Errorf("round trip changed the config:\n got %+v\nwant %+v", decoded, Default())
	}
}

func TestInit(t *testing.T) {
	repo := t.TempDir()

	path, err := Init(repo, false)
	if err != nil {
		t.Fatalf("Init = %v, want nil", err)
	}
	if path != Path(repo) {
		t.Errorf("Init path = %q, want %q", path, Path(repo))
	}

	// The generated file must load cleanly (defaults are commented out).
	cfg, err := Load(repo)
	if err != nil {
		t.Fatalf("Load after Init = %v, want nil", err)
	}
	if cfg.Worktrees.Dir != DefaultWorktreeDir {
		t.Errorf("worktrees.dir = %q, want default %q", cfg.Worktrees.Dir, DefaultWorktreeDir)
	}

	// Second init without force refuses to clobber.
	if _, err := Init(repo, false); err == nil {
		t.Error("Init over existing file = nil, want error")
	}
	if _, err := Init(repo, true); err != nil {
		t.Errorf("Init with force = %v, want nil", err)
	}
}

func writeConfig(t *testing.T, repoRoot, content string) {
	t.Helper()
	dir := filepath.Join(repoRoot, ".spectrena")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
