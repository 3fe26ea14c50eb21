// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import "strings"

const separator = '-'

// Make derives a slug from a title: lower-cased, with every run of
// non-alphanumeric characters collapsed into a single '-' and leading or
// trailing separators stripped. The transform is deterministic and
// idempotent: Make(Make(s)) == Make(s). No uniqueness is enforced; distinct
// titles may normalize to the same slug, and a title with no alphanumeric
// characters yields an empty slug.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte(separator)
			}
			pendingSep = false
			b.WriteRune(r)

			continue
		}
		pendingSep = true
	}

	return b.String()
}
