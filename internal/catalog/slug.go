package catalog

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify returns a URL-safe page identifier for a product name.
// Empty input falls back to "product" so every row gets a page.
func Slugify(text string) string {
	if text == "" {
		return "product"
	}

	cleaned := slugStrip.ReplaceAllString(strings.ToLower(text), "")
	collapsed := slugCollapse.ReplaceAllString(cleaned, "-")
	slug := strings.Trim(collapsed, "-")
	if slug == "" {
		return "product"
	}
	return slug
}
