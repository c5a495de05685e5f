package deconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/autodeconstruct/decl"
)

func identities(types []*decl.TypeDeclaration) []string {
	ids := make([]string, len(types))
	for i, t := range types {
		ids[i] = t.Identity
	}
	return ids
}

func TestScan(t *testing.T) {
	getterOnlyPrivate := property("Id", "int", false)
	getterOnlyPrivate.Getter = &decl.Accessor{Accessibility: decl.AccessPrivate}

	writeOnly := property("Id", "int", false)
	writeOnly.Getter = nil

	generic := class("Box", property("Value", "T", false))
	generic.TypeParameters = []string{"T"}

	external := class("Remote", property("Id", "int", false))
	external.External = true

	privateNested := class("Inner", property("Id", "int", false))
	privateNested.ContainingTypes = []string{"Outer"}
	privateNested.Accessibility = decl.AccessPrivate

	publicNested := class("Visible", property("Id", "int", false))
	publicNested.ContainingTypes = []string{"Outer"}

	internalTop := class("Hidden", property("Id", "int", false))
	internalTop.Accessibility = decl.AccessUnspecified

	outer := class("Outer")

	privateOuter := class("Outer")
	privateOuter.Accessibility = decl.AccessPrivate
	privateOuter.ContainingTypes = []string{"Top"}

	genericOuter := class("Outer")
	genericOuter.TypeParameters = []string{"T"}

	deepNested := class("Visible", property("Id", "int", false))
	deepNested.ContainingTypes = []string{"Top", "Outer"}

	tests := []struct {
		name  string
		decls []decl.Declaration
		want  []string
	}{
		{
			name:  "class with public property",
			decls: []decl.Declaration{class("Test", property("Id", "int", false))},
			want:  []string{"TestSpace.Test"},
		},
		{
			name:  "struct with public property",
			decls: []decl.Declaration{structure("Test", property("Id", "int", false))},
			want:  []string{"TestSpace.Test"},
		},
		{
			name:  "interface is never a candidate",
			decls: []decl.Declaration{declaration(decl.KindInterface, "ITest", property("Id", "int", false))},
			want:  nil,
		},
		{
			name:  "only private properties",
			decls: []decl.Declaration{class("Test", privateProperty("Id", "int"))},
			want:  nil,
		},
		{
			name:  "private getter",
			decls: []decl.Declaration{class("Test", getterOnlyPrivate)},
			want:  nil,
		},
		{
			name:  "write-only property",
			decls: []decl.Declaration{class("Test", writeOnly)},
			want:  nil,
		},
		{
			name:  "methods only",
			decls: []decl.Declaration{class("Test", method("Run"))},
			want:  nil,
		},
		{
			name:  "generic declaration",
			decls: []decl.Declaration{generic},
			want:  nil,
		},
		{
			name:  "external declaration",
			decls: []decl.Declaration{external},
			want:  nil,
		},
		{
			name:  "private nested type",
			decls: []decl.Declaration{privateNested},
			want:  nil,
		},
		{
			name:  "public nested type",
			decls: []decl.Declaration{outer, publicNested},
			want:  []string{"TestSpace.Outer.Visible"},
		},
		{
			name:  "nested type with undeclared containing type",
			decls: []decl.Declaration{publicNested},
			want:  nil,
		},
		{
			name:  "nested in generic type",
			decls: []decl.Declaration{genericOuter, publicNested},
			want:  nil,
		},
		{
			name:  "nested in private type",
			decls: []decl.Declaration{class("Top"), privateOuter, deepNested},
			want:  nil,
		},
		{
			name:  "top-level type defaults to internal",
			decls: []decl.Declaration{internalTop},
			want:  []string{"TestSpace.Hidden"},
		},
		{
			name: "fragments collapse to one candidate",
			decls: []decl.Declaration{
				class("Test", privateProperty("Secret", "int")),
				class("Other", property("Id", "int", false)),
				class("Test", property("Name", "string", true)),
			},
			want: []string{"TestSpace.Test", "TestSpace.Other"},
		},
		{
			name: "derived type without own properties is not shortlisted",
			decls: []decl.Declaration{
				class("Base", property("Id", "int", false)),
				derived("TestSpace.Base", class("Derived")),
			},
			want: []string{"TestSpace.Base"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(graphOf(tt.decls...))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, identities(got))
		})
	}
}

func TestEffectiveAccessibility(t *testing.T) {
	nestedIn := func(access decl.Accessibility, containing ...string) decl.Declaration {
		d := class("Inner", property("Id", "int", false))
		d.Accessibility = access
		d.ContainingTypes = containing
		return d
	}

	tests := []struct {
		name   string
		decls  []decl.Declaration
		target string
		want   decl.Accessibility
		ok     bool
	}{
		{
			name:   "public top-level",
			decls:  []decl.Declaration{class("Test")},
			target: "TestSpace.Test",
			want:   decl.AccessPublic,
			ok:     true,
		},
		{
			name:   "unspecified top-level is internal",
			decls:  []decl.Declaration{withAccess(class("Test"), decl.AccessUnspecified)},
			target: "TestSpace.Test",
			want:   decl.AccessInternal,
			ok:     true,
		},
		{
			name:   "public in public",
			decls:  []decl.Declaration{class("Outer"), nestedIn(decl.AccessPublic, "Outer")},
			target: "TestSpace.Outer.Inner",
			want:   decl.AccessPublic,
			ok:     true,
		},
		{
			name:   "public in internal narrows to internal",
			decls:  []decl.Declaration{withAccess(class("Outer"), decl.AccessInternal), nestedIn(decl.AccessPublic, "Outer")},
			target: "TestSpace.Outer.Inner",
			want:   decl.AccessInternal,
			ok:     true,
		},
		{
			name:   "public in unspecified top-level narrows to internal",
			decls:  []decl.Declaration{withAccess(class("Outer"), decl.AccessUnspecified), nestedIn(decl.AccessPublic, "Outer")},
			target: "TestSpace.Outer.Inner",
			want:   decl.AccessInternal,
			ok:     true,
		},
		{
			name: "unspecified middle level is private",
			decls: []decl.Declaration{
				class("Top"),
				nested(withAccess(class("Outer"), decl.AccessUnspecified), "Top"),
				nestedIn(decl.AccessPublic, "Top", "Outer"),
			},
			target: "TestSpace.Top.Outer.Inner",
			ok:     false,
		},
		{
			name: "protected containing type",
			decls: []decl.Declaration{
				class("Top"),
				nested(withAccess(class("Outer"), decl.AccessProtected), "Top"),
				nestedIn(decl.AccessPublic, "Top", "Outer"),
			},
			target: "TestSpace.Top.Outer.Inner",
			ok:     false,
		},
		{
			name:   "unspecified nested is private",
			decls:  []decl.Declaration{class("Outer"), nestedIn(decl.AccessUnspecified, "Outer")},
			target: "TestSpace.Outer.Inner",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphOf(tt.decls...)
			typ, found := g.Lookup(tt.target)
			require.True(t, found)
			got, ok := EffectiveAccessibility(g, typ)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
