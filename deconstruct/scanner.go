package deconstruct

import "github.com/teranos/autodeconstruct/decl"

// Scan shortlists the candidate types of a graph in discovery order.
//
// This is a cheap structural filter: no inheritance lookup, no accessor
// resolution beyond what the syntax states. Fragments of one type collapse
// into a single candidate because the graph is keyed by identity.
func Scan(g *decl.Graph) []*decl.TypeDeclaration {
	var candidates []*decl.TypeDeclaration
	for _, t := range g.Types() {
		if isCandidate(g, t) {
			candidates = append(candidates, t)
		}
	}
	return candidates
}

func isCandidate(g *decl.Graph, t *decl.TypeDeclaration) bool {
	if t.External || t.Generic {
		return false
	}
	if !t.Kind.IsReferenceKind() && !t.Kind.IsValueKind() {
		return false
	}
	if _, ok := EffectiveAccessibility(g, t); !ok {
		return false
	}

	for _, fragment := range t.Fragments {
		for _, m := range fragment.Members {
			if looksLikeReadableProperty(m) {
				return true
			}
		}
	}
	return false
}

// EffectiveAccessibility returns the accessibility a namespace-level extension
// container sees for t: public only when t and every containing type are
// public, internal otherwise. ok is false when the type cannot be named from
// its namespace: some level is private or protected, a containing type is
// generic, or a containing type is missing from the graph.
func EffectiveAccessibility(g *decl.Graph, t *decl.TypeDeclaration) (decl.Accessibility, bool) {
	effective, ok := levelAccessibility(t.Accessibility, t.Nested())
	if !ok {
		return decl.AccessUnspecified, false
	}

	for i, name := range t.ContainingTypes {
		outer, found := g.Lookup(decl.QualifiedName(t.Namespace, t.ContainingTypes[:i], name))
		if !found || outer.Generic {
			return decl.AccessUnspecified, false
		}
		access, ok := levelAccessibility(outer.Accessibility, i > 0)
		if !ok {
			return decl.AccessUnspecified, false
		}
		if access == decl.AccessInternal {
			effective = decl.AccessInternal
		}
	}
	return effective, true
}

// levelAccessibility normalizes one declaration level to public or internal.
// The default is internal at the top level and private when nested.
func levelAccessibility(a decl.Accessibility, nested bool) (decl.Accessibility, bool) {
	switch a {
	case decl.AccessPublic, decl.AccessInternal:
		return a, true
	case decl.AccessUnspecified:
		if nested {
			return decl.AccessUnspecified, false
		}
		return decl.AccessInternal, true
	default:
		return decl.AccessUnspecified, false
	}
}

// looksLikeReadableProperty reports whether a member is a property with a publicly readable getter.
func looksLikeReadableProperty(m decl.Member) bool {
	if m.Kind != decl.MemberProperty || m.Accessibility != decl.AccessPublic || m.Getter == nil {
		return false
	}
	return m.Getter.Accessibility == decl.AccessUnspecified || m.Getter.Accessibility == decl.AccessPublic
}
