package utils

import (
	"strings"
	"unicode"
)

// NormalizeTag lower-cases and trims name, keeps only letters, digits and
// hyphens and cuts the result to maxLen runes. The transformation is lossy.
func NormalizeTag(name string, maxLen int) string {
	name = strings.TrimSpace(strings.ToLower(name))

	var b strings.Builder
	count := 0
	for _, r := range name {
		if count == maxLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			count++
		}
	}
	return b.String()
}

// NormalizeTags normalizes every name, drops the ones left empty and keeps at
// most limit entries (limit <= 0 keeps all).
func NormalizeTags(names []string, maxLen, limit int) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if limit > 0 && len(out) == limit {
			break
		}
		if tag := NormalizeTag(name, maxLen); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
