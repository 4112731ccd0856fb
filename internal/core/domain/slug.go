package domain

import "strings"

// Slugify derives a URL-safe slug from a title or name: lowercase, every
// run of non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens trimmed. Deterministic and idempotent.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
