package validation

import (
	"regexp"
	"strings"
)

// Matches either an entity this sanitizer itself produces, or a single
// character that needs escaping. Listing the entities first keeps the
// ampersands inside them from being escaped again, which is what makes
// SanitizeString idempotent.
var escapable = regexp.MustCompile(`&(?:amp|lt|gt|quot|#39);|[&<>"']`)

var htmlEntities = map[string]string{
	"&": "&amp;",
	"<": "&lt;",
	">": "&gt;",
	`"`: "&quot;",
	"'": "&#39;",
}

// SanitizeString escapes raw for safe embedding in generated markup and
// trims surrounding whitespace. Internal whitespace and non-ASCII text
// pass through untouched. Running it over its own output changes
// nothing, so repeated sanitation never double-escapes.
func SanitizeString(raw string) string {
	escaped := escapable.ReplaceAllStringFunc(raw, func(m string) string {
		if entity, ok := htmlEntities[m]; ok {
			return entity
		}
		return m // already an entity
	})
	return strings.TrimSpace(escaped)
}
