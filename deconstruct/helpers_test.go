package deconstruct

import (
	"strings"

	"github.com/teranos/autodeconstruct/decl"
)

// =============================================================================
// Declaration builders
// =============================================================================

func property(name, display string, nullable bool) decl.Member {
	return decl.Member{
		Kind:          decl.MemberProperty,
		Name:          name,
		Accessibility: decl.AccessPublic,
		Type:          decl.TypeRef{Display: display, Nullable: nullable},
		Getter:        &decl.Accessor{},
		Setter:        &decl.Accessor{},
	}
}

func privateProperty(name, display string) decl.Member {
	m := property(name, display, false)
	m.Accessibility = decl.AccessPrivate
	return m
}

func method(name string, params ...decl.Parameter) decl.Member {
	return decl.Member{
		Kind:          decl.MemberMethod,
		Name:          name,
		Accessibility: decl.AccessPublic,
		Parameters:    params,
		ReturnType:    decl.TypeRef{Display: "void"},
	}
}

func outParam(name, display string) decl.Parameter {
	return decl.Parameter{Name: name, Type: decl.TypeRef{Display: display}, Modifier: decl.ModifierOut}
}

func plainParam(name, display string) decl.Parameter {
	return decl.Parameter{Name: name, Type: decl.TypeRef{Display: display}}
}

func declaration(kind decl.Kind, name string, members ...decl.Member) decl.Declaration {
	return decl.Declaration{
		Name:          name,
		Namespace:     "TestSpace",
		Kind:          kind,
		Accessibility: decl.AccessPublic,
		Members:       members,
	}
}

func class(name string, members ...decl.Member) decl.Declaration {
	return declaration(decl.KindClass, name, members...)
}

func structure(name string, members ...decl.Member) decl.Declaration {
	return declaration(decl.KindStruct, name, members...)
}

func derived(base string, d decl.Declaration) decl.Declaration {
	d.Base = base
	return d
}

// nested places d inside the given containing types.
func nested(d decl.Declaration, containing ...string) decl.Declaration {
	d.ContainingTypes = containing
	return d
}

func withAccess(d decl.Declaration, access decl.Accessibility) decl.Declaration {
	d.Accessibility = access
	return d
}

func program(decls ...decl.Declaration) *decl.Program {
	return &decl.Program{Declarations: decls}
}

func graphOf(decls ...decl.Declaration) *decl.Graph {
	return decl.NewGraph(program(decls...))
}

// =============================================================================
// Expected text builders
// =============================================================================

// artifact builds the expected artifact text from lines.
func artifact(lines ...string) string {
	return "#nullable enable\n\n" + block(lines...)
}

// block joins lines with newlines and terminates the last one.
func block(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// names extracts out-parameter names in order.
func names(outs []OutParameter) []string {
	result := make([]string, len(outs))
	for i, out := range outs {
		result[i] = out.Name
	}
	return result
}

// propertyNames extracts property names in order.
func propertyNames(properties []PropertyInfo) []string {
	result := make([]string, len(properties))
	for i, p := range properties {
		result[i] = p.Name
	}
	return result
}
