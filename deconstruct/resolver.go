package deconstruct

import (
	"strings"

	"github.com/teranos/autodeconstruct/decl"
)

// Resolve returns the ordered accessible properties of a type.
//
// Ordering: the type's own properties in merged-fragment declaration order,
// then the nearest ancestor's, then farther ancestors'. A name already present
// keeps its first (most derived) entry.
func Resolve(g *decl.Graph, t *decl.TypeDeclaration) []PropertyInfo {
	return resolveChain(g, t, make(map[string]bool))
}

func resolveChain(g *decl.Graph, t *decl.TypeDeclaration, visited map[string]bool) []PropertyInfo {
	visited[t.Identity] = true
	properties := ownProperties(t)

	base, ok := baseOf(g, t)
	if !ok || visited[base.Identity] {
		return properties
	}

	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		seen[p.Name] = true
	}
	for _, p := range resolveChain(g, base, visited) {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		properties = append(properties, p)
	}
	return properties
}

// ownProperties merges the fragments' accessible instance properties, first declaration of a name wins.
func ownProperties(t *decl.TypeDeclaration) []PropertyInfo {
	var properties []PropertyInfo
	seen := make(map[string]bool)

	for _, m := range t.Members() {
		if m.Static || !looksLikeReadableProperty(m) || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		properties = append(properties, PropertyInfo{
			Name:          m.Name,
			Type:          m.Type,
			Accessibility: decl.AccessPublic,
			DeclaringType: t.Identity,
		})
	}
	return properties
}

// baseOf returns the declared base type unless it is absent, the root type, or unknown to the graph.
func baseOf(g *decl.Graph, t *decl.TypeDeclaration) (*decl.TypeDeclaration, bool) {
	name := normalizeIdentity(t.Base)
	if name == "" || name == normalizeIdentity(g.Root()) {
		return nil, false
	}
	return g.Lookup(name)
}

func normalizeIdentity(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "global::")
}
