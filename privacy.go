package introspect

import "strings"

// isPrivate reports whether a name signals non-public intent: a single
// leading underscore. Dunder names are handled separately.
func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_") && !isReserved(name)
}

// isReserved reports whether a name is runtime machinery, bounded by
// double underscores on both sides. Reserved names are excluded from
// every query regardless of the include-privates flag.
func isReserved(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// keep applies the privacy policy to one member name.
func keep(name string, includePrivates bool) bool {
	if isReserved(name) {
		return false
	}
	if isPrivate(name) {
		return includePrivates
	}
	return true
}
