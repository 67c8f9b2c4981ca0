package service

import (
	"path"
	"strings"
)

// PageExtension is the suffix appended to a variant slug to form its page URL.
const PageExtension = ".html"

// VariantSelection is the chosen option of a product's variant control:
// the variant's SKU, its decimal-formatted price, and the slug of its page.
type VariantSelection struct {
	SKU   string
	Price string
	Slug  string
}

// VariantChange is the set of updates a variant selection produces. Each
// field is independent: a consumer missing the corresponding surface simply
// ignores that field.
type VariantChange struct {
	// SKULabel is the display text for the SKU line, e.g. "SKU: nb-a5-01".
	SKULabel string

	// PendingSKU and PendingPrice replace the cart control's pending
	// purchase attributes, overwriting prior values.
	PendingSKU   string
	PendingPrice string

	// RedirectTo is the relative page to navigate to, empty when the
	// selection belongs to the current page.
	RedirectTo string
}

// CurrentPageSlug derives the page identifier from a location path: the
// final path segment with any page-source extension stripped.
// "/shop/products/floral-notebook.html" -> "floral-notebook".
func CurrentPageSlug(location string) string {
	base := path.Base(strings.TrimSuffix(location, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// ResolveVariantChange computes the updates for a selection change on the
// page identified by location.
//
// A change event with no selected option (nil) produces no updates at all.
// Navigation happens only when the selected variant lives on a different
// page: a non-empty slug differing from the current page identifier
// redirects to slug + PageExtension, same-origin relative, nothing carried
// over.
func ResolveVariantChange(sel *VariantSelection, location string) VariantChange {
	if sel == nil {
		return VariantChange{}
	}

	change := VariantChange{
		SKULabel:     "SKU: " + sel.SKU,
		PendingSKU:   sel.SKU,
		PendingPrice: sel.Price,
	}

	if sel.Slug != "" && sel.Slug != CurrentPageSlug(location) {
		change.RedirectTo = sel.Slug + PageExtension
	}

	return change
}
