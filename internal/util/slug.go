package util

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases, strips non-alphanumerics and collapses separators.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// JobSlug appends a short random suffix so job slugs are globally unique
// without a lookup.
func JobSlug(title string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	base := Slugify(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
