// File: metaopt/guard.go
package metaopt

import "strings"

// reservedNames are runtime-supplied namespace keys the protected-member
// guard always accepts.
var reservedNames = map[string]struct{}{
	MetaKey:        {},
	moduleKey:      {},
	"__qualname__": {},
	"__doc__":      {},
}

// EnsureProtected rejects any namespace key that does not start with the
// protected prefix "_", except reserved runtime names and the explicit
// allowlist. The first violation aborts class construction with a
// *NamingConventionError suggesting the corrected name.
func EnsureProtected(d *Descriptor, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	for _, key := range d.Namespace.Keys() {
		if strings.HasPrefix(key, privatePrefix) {
			continue
		}
		if _, reserved := reservedNames[key]; reserved {
			continue
		}
		if _, ok := allowedSet[key]; ok {
			continue
		}
		return &NamingConventionError{Class: d.Name, Member: key}
	}
	return nil
}
