package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spectrena/sw/internal/config"
	"github.com/spectrena/sw/internal/git"
)

// Feature describes a newly scaffolded feature. Field names follow the
// key-value output contract consumed by agent tooling.
type Feature struct {
	Branch   string `json:"BRANCH_NAME"`
	SpecFile string `json:"SPEC_FILE"`
	Number   string `json:"FEATURE_NUM"`
}

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	numberPrefix = regexp.MustCompile(`^([0-9]+)-`)
)

// maxSlugWords caps how much of the description ends up in the branch name.
const maxSlugWords = 4

// Slugify turns a free-form description into a branch slug: lowercase
// alphanumerics joined by single hyphens, at most maxSlugWords words.
// "Add OAuth2 Login Flow!" becomes "add-oauth2-login-flow".
func Slugify(description string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(description), "-")
	slug = strings.Trim(slug, "-")

	words := strings.Split(slug, "-")
	if len(words) > maxSlugWords {
		words = words[:maxSlugWords]
	}
	return strings.Join(words, "-")
}

// NextNumber allocates the next feature number: one past the highest
// NNN- prefix found in the specs directory or in branches, zero-padded
// to the configured width.
func NextNumber(specsDir string, branches []string, padding int) string {
	highest := 0

	if entries, err := os.ReadDir(specsDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				highest = max(highest, numberOf(entry.Name()))
			}
		}
	}
	for _, branch := range branches {
		highest = max(highest, numberOf(branch))
	}

	return fmt.Sprintf("%0*d", padding, highest+1)
}

func numberOf(name string) int {
	m := numberPrefix.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// CreateFeature scaffolds a new feature from a description: allocates the
// number, creates and checks out the branch, creates the spec directory
// and seeds spec.md from the template (an empty placeholder when no
// template exists).
func CreateFeature(ctx context.Context, repoRoot, description string, cfg config.Config) (Feature, error) {
	if strings.TrimSpace(description) == "" {
		return Feature{}, fmt.Errorf("feature description is required")
	}
	slug := Slugify(description)
	if slug == "" {
		return Feature{}, fmt.Errorf("description %q contains no usable words", description)
	}

	specsDir := filepath.Join(repoRoot, cfg.Specs.Dir)
	if err := os.MkdirAll(specsDir, 0o755); err != nil {
		return Feature{}, fmt.Errorf("failed to create %s: %w", cfg.Specs.Dir, err)
	}

	branches, err := git.LocalBranches(ctx, repoRoot)
	if err != nil {
		return Feature{}, err
	}

	number := NextNumber(specsDir, branches, cfg.Specs.Padding)
	branch := number + "-" + slug

	if err := git.CreateBranch(ctx, repoRoot, branch); err != nil {
		return Feature{}, err
	}

	featureDir := filepath.Join(specsDir, branch)
	if err := os.MkdirAll(featureDir, 0o755); err != nil {
		return Feature{}, fmt.Errorf("failed to create feature directory: %w", err)
	}

	specFile := filepath.Join(featureDir, "spec.md")
	if err := seedSpec(filepath.Join(repoRoot, cfg.Specs.Template), specFile); err != nil {
		return Feature{}, err
	}

	return Feature{Branch: branch, SpecFile: specFile, Number: number}, nil
}

// seedSpec copies the template into destination, or touches an empty file
// when the template is missing.
func seedSpec(templatePath, destination string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read template: %w", err)
		}
		data = nil
	}
	if err := os.WriteFile(destination, data, 0o644); err != nil {
		return fmt.Errorf("failed to write spec file: %w", err)
	}
	return nil
}
