package decl

// DefaultRootType is the universal root type of the host's type system.
const DefaultRootType = "System.Object"

// Program is the complete set of declarations for one program state.
type Program struct {
	// Declarations in host discovery order. Fragments of a partial type appear
	// as separate entries with the same identity.
	Declarations []Declaration

	// RootType is the identity of the universal root type. Empty means DefaultRootType.
	RootType string
}

// Root returns the root-type sentinel for the program.
func (p *Program) Root() string {
	if p == nil || p.RootType == "" {
		return DefaultRootType
	}
	return p.RootType
}

// TypeDeclaration is the logical type formed by merging all fragments with the same identity.
type TypeDeclaration struct {
	Identity        string
	Name            string
	Namespace       string
	ContainingTypes []string
	Kind            Kind
	Accessibility   Accessibility
	Base            string
	External        bool
	Generic         bool

	// Fragments in discovery order
	Fragments []Declaration
}

// Nested reports whether the type is declared inside another type.
func (t *TypeDeclaration) Nested() bool {
	return len(t.ContainingTypes) > 0
}

// Members returns the members of all fragments, fragment by fragment, in declaration order.
func (t *TypeDeclaration) Members() []Member {
	var members []Member
	for _, fragment := range t.Fragments {
		members = append(members, fragment.Members...)
	}
	return members
}

// Graph indexes the merged types of a program.
type Graph struct {
	root  string
	order []string
	types map[string]*TypeDeclaration
}

// NewGraph merges the program's fragments into logical types.
//
// Kind, accessibility and base come from the first fragment that declares them,
// the same way a partial declaration only needs to state them once.
func NewGraph(p *Program) *Graph {
	g := &Graph{
		root:  p.Root(),
		types: make(map[string]*TypeDeclaration),
	}

	for _, d := range p.Declarations {
		id := d.Identity()
		t, ok := g.types[id]
		if !ok {
			t = &TypeDeclaration{
				Identity:        id,
				Name:            d.Name,
				Namespace:       d.Namespace,
				ContainingTypes: d.ContainingTypes,
				External:        true,
			}
			g.types[id] = t
			g.order = append(g.order, id)
		}

		if t.Kind == "" {
			t.Kind = d.Kind
		}
		if t.Accessibility == AccessUnspecified {
			t.Accessibility = d.Accessibility
		}
		if t.Base == "" {
			t.Base = d.Base
		}
		if len(d.TypeParameters) > 0 {
			t.Generic = true
		}
		// A type is external only if every fragment is
		t.External = t.External && d.External
		t.Fragments = append(t.Fragments, d)
	}

	return g
}

// Root returns the root-type sentinel.
func (g *Graph) Root() string {
	return g.root
}

// Lookup returns the merged type for an identity.
func (g *Graph) Lookup(identity string) (*TypeDeclaration, bool) {
	t, ok := g.types[identity]
	return t, ok
}

// Types returns the merged types in discovery order.
func (g *Graph) Types() []*TypeDeclaration {
	out := make([]*TypeDeclaration, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.types[id])
	}
	return out
}

// Len returns the number of distinct types.
func (g *Graph) Len() int {
	return len(g.order)
}
