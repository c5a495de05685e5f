package deconstruct

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/teranos/autodeconstruct/errors"
)

// File system permissions for generated output
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// WriteArtifact writes the result's artifact into dir and reports whether the
// file changed. Identical content is left untouched; an empty artifact removes
// a previously generated file.
func WriteArtifact(dir string, r *Result) (string, bool, error) {
	path := filepath.Join(dir, r.ArtifactName)

	existing, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return path, false, errors.Wrapf(err, "failed to read %s", path)
	}

	if !r.HasArtifact() {
		if !exists {
			return path, false, nil
		}
		if err := os.Remove(path); err != nil {
			return path, false, errors.Wrapf(err, "failed to remove stale %s", path)
		}
		return path, true, nil
	}

	if exists && bytes.Equal(existing, []byte(r.Artifact)) {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return path, false, errors.Wrap(err, "failed to create output directory")
	}
	if err := os.WriteFile(path, []byte(r.Artifact), DefaultFilePermissions); err != nil {
		return path, false, errors.Wrapf(err, "failed to write %s", path)
	}
	return path, true, nil
}
