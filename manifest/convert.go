package manifest

import (
	"strings"
	"unicode"

	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/errors"
)

const (
	accessorGet  = "get"
	accessorSet  = "set"
	accessorInit = "init"
)

// toDeclaration converts one fragment. Field-level checks happen here; checks
// that need the whole program live in Validate.
func toDeclaration(spec TypeSpec) (decl.Declaration, error) {
	d := decl.Declaration{
		Name:            spec.Name,
		Namespace:       spec.Namespace,
		ContainingTypes: spec.Containing,
		Kind:            decl.Kind(spec.Kind),
		Accessibility:   decl.Accessibility(spec.Access),
		Base:            spec.Base,
		TypeParameters:  spec.TypeParameters,
		External:        spec.External,
	}

	if !isIdentifier(d.Name) {
		return d, errors.NewInvalidManifestError("type name %q is not an identifier", spec.Name)
	}
	if d.Namespace != "" && !isQualifiedName(d.Namespace) {
		return d, errors.NewInvalidManifestError("%s: namespace %q is not a qualified name", d.Name, d.Namespace)
	}
	for _, c := range d.ContainingTypes {
		if !isIdentifier(c) {
			return d, errors.NewInvalidManifestError("%s: containing type %q is not an identifier", d.Name, c)
		}
	}

	id := d.Identity()
	if d.Kind != "" && !d.Kind.Valid() {
		return d, errors.NewInvalidManifestError("%s: unknown kind %q", id, spec.Kind)
	}
	if !d.Accessibility.Valid() {
		return d, errors.NewInvalidManifestError("%s: unknown accessibility %q", id, spec.Access)
	}

	if len(spec.Positional) > 0 {
		if d.Kind != decl.KindRecord && d.Kind != decl.KindRecordStruct {
			return d, errors.NewInvalidManifestError("%s: positional parameters require a record kind, got %q", id, spec.Kind)
		}
	}

	var members []decl.Member
	for _, ms := range spec.Members {
		m, err := toMember(ms)
		if err != nil {
			return d, errors.Wrapf(err, "%s", id)
		}
		members = append(members, m)
	}

	if len(spec.Positional) > 0 {
		expanded, err := expandPositional(spec.Positional, members)
		if err != nil {
			return d, errors.Wrapf(err, "%s", id)
		}
		members = expanded
	}

	d.Members = members
	return d, nil
}

// expandPositional adds what the compiler synthesizes for a positional record:
// one public get/init property per parameter, unless a member with that name is
// declared explicitly, followed by the declared members and a Deconstruct with
// one out parameter per positional parameter.
func expandPositional(params []ParameterSpec, declared []decl.Member) ([]decl.Member, error) {
	explicit := make(map[string]bool, len(declared))
	for _, m := range declared {
		explicit[m.Name] = true
	}

	var members []decl.Member
	deconstruct := decl.Member{
		Kind:          decl.MemberMethod,
		Name:          "Deconstruct",
		Accessibility: decl.AccessPublic,
		ReturnType:    decl.TypeRef{Display: "void"},
	}

	for _, ps := range params {
		p, err := toParameter(ps)
		if err != nil {
			return nil, err
		}
		if p.Modifier != decl.ModifierNone {
			return nil, errors.NewInvalidManifestError("positional parameter %s cannot have modifier %q", p.Name, p.Modifier)
		}

		if !explicit[p.Name] {
			members = append(members, decl.Member{
				Kind:          decl.MemberProperty,
				Name:          p.Name,
				Accessibility: decl.AccessPublic,
				Type:          p.Type,
				Getter:        &decl.Accessor{},
				Setter:        &decl.Accessor{},
			})
		}

		deconstruct.Parameters = append(deconstruct.Parameters, decl.Parameter{
			Name:     p.Name,
			Type:     p.Type,
			Modifier: decl.ModifierOut,
		})
	}

	members = append(members, declared...)
	return append(members, deconstruct), nil
}

func toMember(spec MemberSpec) (decl.Member, error) {
	m := decl.Member{
		Kind:          decl.MemberKind(spec.Kind),
		Name:          spec.Name,
		Static:        spec.Static,
		Accessibility: decl.Accessibility(spec.Access),
	}

	if !m.Kind.Valid() {
		return m, errors.NewInvalidManifestError("member %q: unknown kind %q", spec.Name, spec.Kind)
	}
	if !isIdentifier(m.Name) {
		return m, errors.NewInvalidManifestError("member name %q is not an identifier", spec.Name)
	}
	if !m.Accessibility.Valid() {
		return m, errors.NewInvalidManifestError("member %s: unknown accessibility %q", m.Name, spec.Access)
	}

	switch m.Kind {
	case decl.MemberMethod:
		m.ReturnType = decl.TypeRef{Display: "void"}
		if spec.Type != "" {
			m.ReturnType = parseTypeRef(spec.Type)
		}
		for _, ps := range spec.Parameters {
			p, err := toParameter(ps)
			if err != nil {
				return m, errors.Wrapf(err, "member %s", m.Name)
			}
			m.Parameters = append(m.Parameters, p)
		}
	case decl.MemberProperty:
		if spec.Type == "" {
			return m, errors.NewInvalidManifestError("property %s has no type", m.Name)
		}
		m.Type = parseTypeRef(spec.Type)
		if err := applyAccessors(&m, spec.Accessors); err != nil {
			return m, err
		}
	default:
		m.Type = parseTypeRef(spec.Type)
	}

	return m, nil
}

func toParameter(spec ParameterSpec) (decl.Parameter, error) {
	p := decl.Parameter{
		Name:     spec.Name,
		Type:     parseTypeRef(spec.Type),
		Modifier: decl.Modifier(spec.Modifier),
	}
	if !isIdentifier(p.Name) {
		return p, errors.NewInvalidManifestError("parameter name %q is not an identifier", spec.Name)
	}
	if spec.Type == "" {
		return p, errors.NewInvalidManifestError("parameter %s has no type", p.Name)
	}
	if !p.Modifier.Valid() {
		return p, errors.NewInvalidManifestError("parameter %s: unknown modifier %q", p.Name, spec.Modifier)
	}
	return p, nil
}

// applyAccessors parses "[accessibility] get|set|init" entries into the member's accessors.
// No entries means a get-only property.
func applyAccessors(m *decl.Member, accessors []string) error {
	if len(accessors) == 0 {
		m.Getter = &decl.Accessor{}
		return nil
	}
	for _, raw := range accessors {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			return errors.NewInvalidManifestError("property %s: empty accessor", m.Name)
		}

		keyword := fields[len(fields)-1]
		access := decl.Accessibility(strings.Join(fields[:len(fields)-1], " "))
		if !access.Valid() {
			return errors.NewInvalidManifestError("property %s: unknown accessor accessibility %q", m.Name, access)
		}

		accessor := &decl.Accessor{Accessibility: access}
		switch keyword {
		case accessorGet:
			if m.Getter != nil {
				return errors.NewInvalidManifestError("property %s: duplicate get accessor", m.Name)
			}
			m.Getter = accessor
		case accessorSet, accessorInit:
			if m.Setter != nil {
				return errors.NewInvalidManifestError("property %s: duplicate set/init accessor", m.Name)
			}
			m.Setter = accessor
		default:
			return errors.NewInvalidManifestError("property %s: unknown accessor %q", m.Name, raw)
		}
	}
	return nil
}

// parseTypeRef splits a trailing nullable annotation: "string?" -> {string, true}.
func parseTypeRef(s string) decl.TypeRef {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "?") {
		return decl.TypeRef{Display: strings.TrimSuffix(s, "?"), Nullable: true}
	}
	return decl.TypeRef{Display: s}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func isQualifiedName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}
