package shared

import (
	"strings"

	"github.com/google/uuid"
)

// Slugify derives a URL-safe key from a display name: lower-case, every run
// of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
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

// NewShortCode derives a generated identifier from a display name by
// appending a random 6-character suffix to its slug. Unlike a slug it is
// not human-editable and needs no uniqueness pre-check at generation time.
func NewShortCode(name string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	base := Slugify(name)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
