// File: metaopt/helper.go
package metaopt

// isValidOptionName checks if a meta option name is usable as a key: the
// placeholder "_", or a bare identifier of ASCII letters, digits,
// underscores, and dashes.
func isValidOptionName(s string) bool {
	if s == placeholderName {
		return true
	}
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
