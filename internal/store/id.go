package store

import "path/filepath"

// CreateID derives a palette id from a file path by kebab-casing the
// filename stem: camelCase and snake_case both collapse to kebab-case,
// non-alphanumeric characters become a single '-', and a trailing '-' is
// trimmed. Ported character-by-character from
// original_source/core/src/palette/io.rs's create_id to match spec.md
// section 6 and the id-idempotence testable property exactly.
func CreateID(path string) string {
	base := filepath.Base(path)
	stem := base[:len(base)-len(filepath.Ext(base))]

	out := make([]byte, 0, len(stem)+4)
	prevWasLower := false

	isUpper := func(c byte) bool { return c >= 'A' && c <= 'Z' }
	isLower := func(c byte) bool { return c >= 'a' && c <= 'z' }
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }

	for i := 0; i < len(stem); i++ {
		c := stem[i]
		switch {
		case isUpper(c):
			if prevWasLower {
				out = append(out, '-')
			}
			out = append(out, c-'A'+'a')
			prevWasLower = false
		case isLower(c) || isDigit(c):
			out = append(out, c)
			prevWasLower = isLower(c)
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
			prevWasLower = false
		}
	}

	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
