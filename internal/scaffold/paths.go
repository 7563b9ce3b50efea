package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spectrena/sw/internal/config"
)

// Paths are the standard file locations for one feature, keyed the way
// agent tooling expects them.
type Paths struct {
	RepoRoot      string `json:"REPO_ROOT"`
	CurrentBranch string `json:"CURRENT_BRANCH"`
	FeatureDir    string `json:"FEATURE_DIR"`
	FeatureSpec   string `json:"FEATURE_SPEC"`
	ImplPlan      string `json:"IMPL_PLAN"`
	Tasks         string `json:"TASKS"`
	Research      string `json:"RESEARCH"`
	DataModel     string `json:"DATA_MODEL"`
	Quickstart    string `json:"QUICKSTART"`
	ContractsDir  string `json:"CONTRACTS_DIR"`
}

// IsFeatureBranch reports whether branch follows the NNN-slug convention
// at the configured number width.
func IsFeatureBranch(branch string, padding int) bool {
	pattern := regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}-`, padding))
	return pattern.MatchString(branch)
}

// FeaturePaths resolves the standard paths for branch. Fails when branch
// doesn't follow the feature naming convention, since the paths would
// point nowhere meaningful.
func FeaturePaths(repoRoot, branch string, cfg config.Config) (Paths, error) {
	if !IsFeatureBranch(branch, cfg.Specs.Padding) {
		return Paths{}, fmt.Errorf("not on a feature branch: %q (expected e.g. 001-feature-name)", branch)
	}

	featureDir := filepath.Join(repoRoot, cfg.Specs.Dir, branch)
	return Paths{
		RepoRoot:      repoRoot,
		CurrentBranch: branch,
		FeatureDir:    featureDir,
		FeatureSpec:   filepath.Join(featureDir, "spec.md"),
		ImplPlan:      filepath.Join(featureDir, "plan.md"),
		Tasks:         filepath.Join(featureDir, "tasks.md"),
		Research:      filepath.Join(featureDir, "research.md"),
		DataModel:     filepath.Join(featureDir, "data-model.md"),
		Quickstart:    filepath.Join(featureDir, "quickstart.md"),
		ContractsDir:  filepath.Join(featureDir, "contracts"),
	}, nil
}
