// Package errors provides error handling for autodeconstruct.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints printed by the CLI
//
// Usage:
//
//	// Wrap with context
//	if err := load(path); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'autodeconstruct generate' to update")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Use these with errors.Is() and wrap them with errors.Wrap()
// to add context while preserving the type.
var (
	// ErrInvalidManifest indicates a declaration manifest is malformed
	ErrInvalidManifest = New("invalid declaration manifest")

	// ErrUnsupportedVersion indicates a manifest schema version this build cannot read
	ErrUnsupportedVersion = New("unsupported manifest version")

	// ErrUnknownType indicates a reference to a type that is not declared
	ErrUnknownType = New("unknown type")

	// ErrInheritanceCycle indicates a type inherits from itself
	ErrInheritanceCycle = New("inheritance cycle")

	// ErrStaleArtifact indicates the artifact on disk differs from a fresh generation
	ErrStaleArtifact = New("generated artifact is out of date")
)

// IsInvalidManifestError checks if an error is or wraps ErrInvalidManifest
func IsInvalidManifestError(err error) bool {
	return err != nil && Is(err, ErrInvalidManifest)
}

// IsStaleArtifactError checks if an error is or wraps ErrStaleArtifact
func IsStaleArtifactError(err error) bool {
	return err != nil && Is(err, ErrStaleArtifact)
}

// NewInvalidManifestError creates an invalid-manifest error with a formatted message
func NewInvalidManifestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidManifest, Newf(format, args...).Error())
}
