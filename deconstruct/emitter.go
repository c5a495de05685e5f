package deconstruct

import (
	"fmt"
	"strings"

	"github.com/teranos/autodeconstruct/decl"
)

// artifactHeader opens every non-empty artifact.
const artifactHeader = "#nullable enable\n\n"

// nullGuard fails fast when a reference-kind receiver is null.
const nullGuard = "global::System.ArgumentNullException.ThrowIfNull(%s);"

// EmitUnit renders the extension container and Deconstruct method for one unit.
// Each block carries its own namespace scope; scopes are never shared between units.
func EmitUnit(u Unit) string {
	var sb strings.Builder

	indent := ""
	if u.Type.Namespace != "" {
		sb.WriteString(fmt.Sprintf("namespace %s\n{\n", u.Type.Namespace))
		indent = "\t"
	}
	line := func(depth int, text string) {
		sb.WriteString(indent)
		sb.WriteString(strings.Repeat("\t", depth))
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	access := emittedAccessibility(u)
	self := verbatim(u.SelfName)

	container := u.Container
	if container == "" {
		container = ContainerName(u.Type)
	}

	line(0, fmt.Sprintf("%s static partial class %s", access, container))
	line(0, "{")
	line(1, fmt.Sprintf("%s static void Deconstruct(this %s %s%s)", access, receiverType(u.Type), self, outParameterList(u.Outs)))
	line(1, "{")

	if u.Type.Kind.IsReferenceKind() {
		line(2, fmt.Sprintf(nullGuard, self))
	}

	if len(u.Outs) == 1 {
		out := u.Outs[0]
		line(2, fmt.Sprintf("%s = %s;", verbatim(out.Name), propertyRead(self, out.Property)))
	} else {
		targets := make([]string, len(u.Outs))
		reads := make([]string, len(u.Outs))
		for i, out := range u.Outs {
			targets[i] = verbatim(out.Name)
			reads[i] = propertyRead(self, out.Property)
		}
		// Tuple assignment: all reads happen before any write
		line(2, fmt.Sprintf("(%s) =", strings.Join(targets, ", ")))
		line(3, fmt.Sprintf("(%s);", strings.Join(reads, ", ")))
	}

	line(1, "}")
	line(0, "}")

	if u.Type.Namespace != "" {
		sb.WriteString("}\n")
	}

	return sb.String()
}

// AssembleArtifact joins unit blocks, in order, into the artifact text.
// No blocks yields an empty artifact.
func AssembleArtifact(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(artifactHeader)
	for _, block := range blocks {
		sb.WriteString(block)
	}
	return sb.String()
}

func outParameterList(outs []OutParameter) string {
	var sb strings.Builder
	for _, out := range outs {
		sb.WriteString(fmt.Sprintf(", out %s %s", out.Property.Type.String(), verbatim(out.Name)))
	}
	return sb.String()
}

func receiverType(t *decl.TypeDeclaration) string {
	return "global::" + t.Identity
}

// ContainerName names the extension class of a type. Nested types are
// qualified by their containing types so that same-named nested types in one
// namespace get separate containers: Outer.Inner -> Outer_InnerExtensions.
func ContainerName(t *decl.TypeDeclaration) string {
	if !t.Nested() {
		return t.Name + "Extensions"
	}
	return strings.Join(t.ContainingTypes, "_") + "_" + t.Name + "Extensions"
}

// emittedAccessibility uses the unit's effective accessibility, falling back
// to the type's own when the unit was built without one.
func emittedAccessibility(u Unit) string {
	access := u.Accessibility
	if access == decl.AccessUnspecified {
		access = u.Type.Accessibility
	}
	if access == decl.AccessPublic {
		return "public"
	}
	return "internal"
}

// propertyRead renders "@self.Name"; member names that are reserved words need the verbatim marker.
func propertyRead(self string, p PropertyInfo) string {
	name := p.Name
	if reservedWords[name] {
		name = verbatim(name)
	}
	return self + "." + name
}

var reservedWords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}
