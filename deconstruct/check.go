package deconstruct

import (
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/teranos/autodeconstruct/errors"
)

// CheckResult holds the result of comparing a fresh artifact with the one on disk.
type CheckResult struct {
	Path     string
	UpToDate bool
	// Diff is a unified diff from the file on disk to the fresh artifact
	Diff string
}

// CompareArtifact compares generated text with the artifact at path.
// A missing file is treated as an empty artifact, so a pass that produces no
// units is up to date when nothing was written.
func CompareArtifact(path, generated string) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	result := &CheckResult{
		Path:     path,
		UpToDate: string(existing) == generated,
	}
	if result.UpToDate {
		return result, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(generated),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render diff")
	}
	result.Diff = diff
	return result, nil
}
