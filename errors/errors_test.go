package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrUnknownType, "base %q of %q", "TestSpace.Missing", "TestSpace.Test")

	assert.True(t, Is(err, ErrUnknownType))
	assert.False(t, Is(err, ErrInheritanceCycle))
	assert.Contains(t, err.Error(), "TestSpace.Missing")
	assert.Contains(t, err.Error(), "unknown type")
}

func TestNewInvalidManifestError(t *testing.T) {
	err := NewInvalidManifestError("declaration %d: missing name", 3)

	require.Error(t, err)
	assert.True(t, IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), "declaration 3: missing name")
	assert.False(t, IsInvalidManifestError(New("other")))
	assert.False(t, IsInvalidManifestError(nil))
}

func TestIsStaleArtifactError(t *testing.T) {
	err := WithHint(Wrap(ErrStaleArtifact, "AutoDeconstruct.g.cs"), "run generate")

	assert.True(t, IsStaleArtifactError(err))
	assert.False(t, IsStaleArtifactError(nil))

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "run generate", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	err := Wrap(ErrInvalidManifest, "decls.yaml")
	fmt.Println(err)
	// Output: decls.yaml: invalid declaration manifest
}
