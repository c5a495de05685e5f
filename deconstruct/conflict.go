package deconstruct

import (
	"strings"

	"github.com/teranos/autodeconstruct/decl"
)

const deconstructMethod = "Deconstruct"

// Signature is the part of a Deconstruct declaration that decides signature identity:
// the parameter count and which parameters are out. Return and parameter types do not count.
type Signature struct {
	Out []bool
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.Out)
}

// AllOut reports whether every parameter is an out parameter.
func (s Signature) AllOut() bool {
	for _, out := range s.Out {
		if !out {
			return false
		}
	}
	return true
}

// String renders the signature as "(out, in, out)" for logs and cache keys.
func (s Signature) String() string {
	parts := make([]string, len(s.Out))
	for i, out := range s.Out {
		if out {
			parts[i] = "out"
		} else {
			parts[i] = "in"
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ExistingSignatures returns the signatures of the type's own instance Deconstruct methods.
// Inherited and static declarations are not included.
func ExistingSignatures(t *decl.TypeDeclaration) []Signature {
	var signatures []Signature
	for _, m := range t.Members() {
		if m.Kind != decl.MemberMethod || m.Static || m.Name != deconstructMethod {
			continue
		}
		sig := Signature{Out: make([]bool, len(m.Parameters))}
		for i, p := range m.Parameters {
			sig.Out[i] = p.Modifier == decl.ModifierOut
		}
		signatures = append(signatures, sig)
	}
	return signatures
}

// Conflicts reports whether a generated Deconstruct with arity out parameters would
// duplicate one of the existing signatures.
func Conflicts(existing []Signature, arity int) bool {
	for _, sig := range existing {
		if sig.Arity() == arity && sig.AllOut() {
			return true
		}
	}
	return false
}
