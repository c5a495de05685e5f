package manifest

import (
	"strings"

	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/errors"
)

// Validate checks the properties of a program that span fragments and types:
// fragments of one type agree on kind and base, every type has a kind, every
// containing type is declared, every base names a declared type or the root,
// and inheritance is acyclic.
func Validate(p *decl.Program) error {
	if err := checkFragments(p); err != nil {
		return err
	}

	g := decl.NewGraph(p)
	root := normalize(g.Root())

	for _, t := range g.Types() {
		if t.Kind == "" {
			return errors.NewInvalidManifestError("%s: no fragment declares a kind", t.Identity)
		}

		for i, name := range t.ContainingTypes {
			outer := decl.QualifiedName(t.Namespace, t.ContainingTypes[:i], name)
			if _, ok := g.Lookup(outer); !ok {
				return errors.WithHint(
					errors.Mark(errors.Wrapf(errors.ErrUnknownType, "%s: containing type %s", t.Identity, outer), errors.ErrInvalidManifest),
					"declare every containing type of a nested type",
				)
			}
		}

		base := normalize(t.Base)
		if base == "" || base == root {
			continue
		}
		if _, ok := g.Lookup(base); !ok {
			return errors.WithHint(
				errors.Mark(errors.Wrapf(errors.ErrUnknownType, "%s: base type %s", t.Identity, base), errors.ErrInvalidManifest),
				"declare the base type, with external: true if it comes from a referenced assembly",
			)
		}
	}

	for _, t := range g.Types() {
		if err := checkChain(g, t, root); err != nil {
			return err
		}
	}
	return nil
}

// checkFragments rejects partial fragments that disagree on kind or base.
func checkFragments(p *decl.Program) error {
	kinds := make(map[string]decl.Kind)
	bases := make(map[string]string)

	for _, d := range p.Declarations {
		id := d.Identity()
		if d.Kind != "" {
			if k, ok := kinds[id]; ok && k != d.Kind {
				return errors.NewInvalidManifestError("%s: fragments declare kinds %q and %q", id, k, d.Kind)
			}
			kinds[id] = d.Kind
		}
		if base := normalize(d.Base); base != "" {
			if b, ok := bases[id]; ok && b != base {
				return errors.NewInvalidManifestError("%s: fragments declare bases %s and %s", id, b, base)
			}
			bases[id] = base
		}
	}
	return nil
}

// checkChain walks the base chain of t and fails if it revisits a type.
func checkChain(g *decl.Graph, t *decl.TypeDeclaration, root string) error {
	visited := map[string]bool{t.Identity: true}
	path := []string{t.Identity}

	for current := t; ; {
		base := normalize(current.Base)
		if base == "" || base == root {
			return nil
		}
		next, ok := g.Lookup(base)
		if !ok {
			return nil
		}
		path = append(path, next.Identity)
		if visited[next.Identity] {
			return errors.Mark(
				errors.Wrapf(errors.ErrInheritanceCycle, "%s", strings.Join(path, " -> ")),
				errors.ErrInvalidManifest,
			)
		}
		visited[next.Identity] = true
		current = next
	}
}

func normalize(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "global::")
}
