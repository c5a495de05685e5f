package deconstruct

import "github.com/teranos/autodeconstruct/decl"

// DefaultArtifactName is the name of the synthesized source artifact.
const DefaultArtifactName = "AutoDeconstruct.g.cs"

// PropertyInfo is one accessible property of a type, resolved through inheritance.
type PropertyInfo struct {
	Name          string
	Type          decl.TypeRef
	Accessibility decl.Accessibility
	DeclaringType string
}

// OutParameter pairs a generated out-parameter name with the property it reads.
type OutParameter struct {
	Name     string
	Property PropertyInfo
}

// Unit is the fully resolved model handed to the emitter for one type.
type Unit struct {
	Type       *decl.TypeDeclaration
	Properties []PropertyInfo
	SelfName   string
	Outs       []OutParameter

	// Accessibility is the effective accessibility of the type, narrowed by
	// its containing types: public or internal
	Accessibility decl.Accessibility

	// Container is the extension class name, unique per namespace and accessibility
	Container string
}

// SkipReason explains why a type produced no unit.
type SkipReason string

const (
	SkipNoProperties        SkipReason = "no-accessible-properties"
	SkipExistingDeconstruct SkipReason = "existing-deconstruct"
)

// Skip records a type that was dropped after scanning.
type Skip struct {
	Type   string
	Reason SkipReason
}

// Diagnostic is a message reported to the host alongside the artifact.
// Passes currently report none; skipped types go to Result.Skipped.
type Diagnostic struct {
	ID      string
	Type    string
	Message string
}

// CacheStats counts cache outcomes for one pass.
type CacheStats struct {
	Hits   int
	Misses int
}

// Result is the output of one pass.
type Result struct {
	PassID string

	// ArtifactName and Artifact are the single synthesized source. Artifact is
	// empty when no unit survived.
	ArtifactName string
	Artifact     string

	// Units in discovery order
	Units []Unit

	// Skipped candidates in discovery order; never reported as diagnostics
	Skipped []Skip

	// Diagnostics is always empty in current behavior
	Diagnostics []Diagnostic

	Candidates int
	Cache      CacheStats
}

// HasArtifact reports whether the pass produced any source text.
func (r *Result) HasArtifact() bool {
	return r != nil && r.Artifact != ""
}
