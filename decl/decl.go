// Package decl describes the declarations a host compiler exports for code synthesis.
//
// Every value in this package is a snapshot: the engine reads it, never mutates
// it, and derives a fresh model from it on each pass. The host owns the
// spelling of types (TypeRef.Display) so the engine never has to understand the
// host's type system beyond what is modelled here.
package decl

import "strings"

// Kind is the declaration kind of a type.
type Kind string

const (
	KindClass        Kind = "class"
	KindStruct       Kind = "struct"
	KindRecord       Kind = "record"
	KindRecordStruct Kind = "record struct"
	KindInterface    Kind = "interface"
	KindEnum         Kind = "enum"
)

// IsValueKind reports whether instances of the kind are copied by value.
func (k Kind) IsValueKind() bool {
	return k == KindStruct || k == KindRecordStruct
}

// IsReferenceKind reports whether instances of the kind can be a null reference.
func (k Kind) IsReferenceKind() bool {
	return k == KindClass || k == KindRecord
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindClass, KindStruct, KindRecord, KindRecordStruct, KindInterface, KindEnum:
		return true
	}
	return false
}

// Accessibility is the declared visibility of a type, member or accessor.
// The zero value means "not declared", which for accessors means "same as the member".
type Accessibility string

const (
	AccessUnspecified       Accessibility = ""
	AccessPublic            Accessibility = "public"
	AccessInternal          Accessibility = "internal"
	AccessProtected         Accessibility = "protected"
	AccessProtectedInternal Accessibility = "protected internal"
	AccessPrivateProtected  Accessibility = "private protected"
	AccessPrivate           Accessibility = "private"
)

// Valid reports whether a is one of the known accessibilities.
func (a Accessibility) Valid() bool {
	switch a {
	case AccessUnspecified, AccessPublic, AccessInternal, AccessProtected,
		AccessProtectedInternal, AccessPrivateProtected, AccessPrivate:
		return true
	}
	return false
}

// MemberKind distinguishes the members the engine cares about.
type MemberKind string

const (
	MemberProperty MemberKind = "property"
	MemberMethod   MemberKind = "method"
	MemberField    MemberKind = "field"
	MemberEvent    MemberKind = "event"
)

// Valid reports whether k is one of the known member kinds.
func (k MemberKind) Valid() bool {
	switch k {
	case MemberProperty, MemberMethod, MemberField, MemberEvent:
		return true
	}
	return false
}

// Modifier is a parameter passing modifier.
type Modifier string

const (
	ModifierNone   Modifier = ""
	ModifierRef    Modifier = "ref"
	ModifierOut    Modifier = "out"
	ModifierIn     Modifier = "in"
	ModifierParams Modifier = "params"
)

// Valid reports whether m is one of the known modifiers.
func (m Modifier) Valid() bool {
	switch m {
	case ModifierNone, ModifierRef, ModifierOut, ModifierIn, ModifierParams:
		return true
	}
	return false
}

// TypeRef is a host-rendered type reference.
type TypeRef struct {
	// Display is the fully-qualified spelling, e.g. "global::System.Guid" or "int"
	Display string
	// Nullable marks a nullable annotation ("string?")
	Nullable bool
}

// String renders the reference as it appears in a parameter list.
func (t TypeRef) String() string {
	if t.Nullable {
		return t.Display + "?"
	}
	return t.Display
}

// Accessor is a property get/set/init accessor.
type Accessor struct {
	// Accessibility narrows the property's accessibility; unspecified inherits it
	Accessibility Accessibility
}

// Parameter is a method parameter.
type Parameter struct {
	Name     string
	Type     TypeRef
	Modifier Modifier
}

// Member is a member declared inside one declaration fragment.
type Member struct {
	Kind          MemberKind
	Name          string
	Static        bool
	Accessibility Accessibility

	// Type is the property/field type
	Type TypeRef

	// Getter and Setter are nil when the accessor is absent
	Getter *Accessor
	Setter *Accessor

	// Parameters and ReturnType describe methods
	Parameters []Parameter
	ReturnType TypeRef
}

// Declaration is one syntactic type declaration. Partial types are reported as
// several declarations sharing the same identity.
type Declaration struct {
	Name            string
	Namespace       string
	ContainingTypes []string
	Kind            Kind
	Accessibility   Accessibility

	// Base is the fully-qualified name of the declared base type, if any
	Base string

	TypeParameters []string
	Members        []Member

	// External marks metadata-only declarations from referenced assemblies.
	// They take part in inheritance lookups but never get generated code.
	External bool
}

// Identity returns the fully-qualified name that identifies the type, e.g. "TestSpace.Outer.Test".
func (d Declaration) Identity() string {
	return QualifiedName(d.Namespace, d.ContainingTypes, d.Name)
}

// QualifiedName joins namespace, containing types and name with dots.
func QualifiedName(namespace string, containing []string, name string) string {
	parts := make([]string, 0, len(containing)+2)
	if namespace != "" {
		parts = append(parts, namespace)
	}
	parts = append(parts, containing...)
	parts = append(parts, name)
	return strings.Join(parts, ".")
}
