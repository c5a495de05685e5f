package deconstruct

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// selfBaseName is the receiver parameter name before collision handling.
const selfBaseName = "self"

// Sanitize assigns the receiver name and the out-parameter names for an ordered property list.
//
// Out names are the property names with the first character lower-cased. If two
// properties lower to the same name, the later one takes the smallest free
// numeric suffix. The receiver is "self" unless an out name already took it, in
// which case it becomes "self1", "self2", ...; out names never move for it.
func Sanitize(properties []PropertyInfo) (string, []OutParameter) {
	natural := make([]string, len(properties))
	taken := make(map[string]bool, len(properties)+1)
	duplicate := make([]bool, len(properties))

	for i, p := range properties {
		natural[i] = parameterName(p.Name)
		if taken[natural[i]] {
			duplicate[i] = true
			continue
		}
		taken[natural[i]] = true
	}

	outs := make([]OutParameter, len(properties))
	for i, p := range properties {
		name := natural[i]
		if duplicate[i] {
			name = uniqueName(name, taken)
			taken[name] = true
		}
		outs[i] = OutParameter{Name: name, Property: p}
	}

	return uniqueName(selfBaseName, taken), outs
}

// parameterName lower-cases only the first character: "Id" -> "id", "URL" -> "uRL".
func parameterName(property string) string {
	r, size := utf8.DecodeRuneInString(property)
	if r == utf8.RuneError {
		return property
	}
	return string(unicode.ToLower(r)) + property[size:]
}

// uniqueName returns base, or base with the smallest positive suffix not in taken.
func uniqueName(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// verbatim renders an identifier with the host's verbatim marker, so reserved
// words never need special handling.
func verbatim(name string) string {
	return "@" + name
}
