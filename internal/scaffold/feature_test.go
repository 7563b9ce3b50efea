package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spectrena/sw/internal/config"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"simple", "user auth", "user-auth"},
		{"mixed case and punctuation", "Add OAuth2 Login Flow!", "add-oauth2-login-flow"},
		{"collapses separators", "fix --- the   bug", "fix-the-bug"},
		{"truncates long descriptions", "support exporting reports as encrypted pdf files", "support-exporting-reports-as"},
		{"strips leading and trailing", "  (experimental) search  ", "experimental-search"},
		{"nothing usable", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.description); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestNextNumber(t *testing.T) {
	t.Parallel()

	specsDir := t.TempDir()
	for _, dir := range []string{"001-auth", "002-api", "not-a-feature"} {
		if err := os.MkdirAll(filepath.Join(specsDir, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name     string
		branches []string
		want     string
	}{
		{"specs dir wins", []string{"main"}, "003"},
		{"branch wins over specs dir", []string{"main", "005-search"}, "006"},
		{"non-feature branches ignored", []string{"main", "feature/old"}, "003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NextNumber(specsDir, tt.branches, 3); got != tt.want {
				t.Errorf("NextNumber = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextNumberEmpty(t *testing.T) {
	t.Parallel()

	if got := NextNumber(filepath.Join(t.TempDir(), "missing"), nil, 3); got != "001" {
		t.Errorf("NextNumber with nothing allocated = %q, want %q", got, "001")
	}
}

func TestNextNumberPadding(t *testing.T) {
	t.Parallel()

	if got := NextNumber(t.TempDir(), []string{"0041-x"}, 4); got != "0042" {
		t.Errorf("NextNumber = %q, want %q", got, "0042")
	}
}

func TestFeaturePaths(t *testing.T) {
	t.Parallel()

	paths, err := FeaturePaths("/r", "007-login-flow", config.Default())
	if err != nil {
		t.Fatalf("FeaturePaths = %v, want nil", err)
	}

	featureDir := filepath.Join("/r", "specs", "007-login-flow")
	if paths.FeatureDir != featureDir {
		t.Errorf("FeatureDir = %q, want %q", paths.FeatureDir, featureDir)
	}
	if paths.FeatureSpec != filepath.Join(featureDir, "spec.md") {
		t.Errorf("FeatureSpec = %q, want spec.md under the feature dir", paths.FeatureSpec)
	}
	if paths.ContractsDir != filepath.Join(featureDir, "contracts") {
		t.Errorf("ContractsDir = %q, want contracts under the feature dir", paths.ContractsDir)
	}
}

func TestFeaturePathsNonFeatureBranch(t *testing.T) {
	t.Parallel()

	for _, branch := range []string{"main", "feature/login", "01-short", "(detached)"} {
		if _, err := FeaturePaths("/r", branch, config.Default()); err == nil {
			t.Errorf("FeaturePaths(%q) = nil, want error", branch)
		}
	}
}

func TestSeedSpecFromTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	template := filepath.Join(dir, "template.md")
	dest := filepath.Join(dir, "spec.md")
	if err := os.WriteFile(template, []byte("# Feature Spec\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := seedSpec(template, dest); err != nil {
		t.Fatalf("seedSpec = %v, want nil", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Feature Spec\n" {
		t.Errorf("spec content = %q, want template content", data)
	}
}

func TestSeedSpecWithoutTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dest := filepath.Join(dir, "spec.md")

	if err := seedSpec(filepath.Join(dir, "missing.md"), dest); err != nil {
		t.Fatalf("seedSpec = %v, want nil", err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("expected an empty placeholder file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("placeholder size = %d, want 0", info.Size())
	}
}
