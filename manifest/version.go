package manifest

import (
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/autodeconstruct/errors"
)

// DefaultVersion is assumed when a manifest does not state its schema version.
const DefaultVersion = "1.0"

// SupportedVersions is the range of manifest schema versions this build reads.
const SupportedVersions = ">= 1.0, < 2.0"

var supported = mustConstraint(SupportedVersions)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// checkVersion reports whether a manifest schema version can be read.
func checkVersion(version string) error {
	if version == "" {
		version = DefaultVersion
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, errors.ErrInvalidManifest), "invalid manifest version %q", version)
	}

	if !supported.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedVersion, "manifest version %s", v),
			"this build reads manifest versions %s", SupportedVersions,
		)
	}
	return nil
}
