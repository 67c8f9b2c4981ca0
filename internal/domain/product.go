package domain

import "context"

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// StockStatus represents the availability of a variant.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// AvailabilityLabel renders the shopper-facing availability line.
func (s StockStatus) AvailabilityLabel() string {
	switch s {
	case StockInStock:
		return "Availability: In stock"
	case StockLowStock:
		return "Availability: Low stock"
	case StockOutOfStock:
		return "Availability: Out of stock"
	default:
		return "Availability: Unknown"
	}
}

// Product is one sellable paper product. Each variant of a product is a
// purchasable configuration with its own SKU, price, and page slug.
type Product struct {
	ID          string
	Name        string
	Slug        string
	ProductType string
	Description string
	Currency    string

	// Images in display order; the first is the primary display image.
	Images []ProductImage

	Variants []Variant

	Stock StockStatus
}

// Variant is a purchasable configuration of a product (e.g. size/color),
// each with its own SKU, price, and optionally its own page.
type Variant struct {
	SKU string

	// Name is the shopper-facing option label, e.g. "a5 | floral".
	Name string

	Price Money

	// DiscountPrice is the sale price, zero when not discounted.
	DiscountPrice Money

	// Slug is the URL-safe identifier of the variant's own page. Selecting a
	// variant whose slug differs from the current page navigates there.
	Slug string
}

// ProductImage is one gallery image of a product.
type ProductImage struct {
	URL       string
	AltText   string
	SortOrder int
}

// ProductListItem is the lightweight shape for catalog listings.
type ProductListItem struct {
	ID          string
	Name        string
	Slug        string
	ProductType string
	Stock       StockStatus
	PrimaryURL  string
	FromPrice   Money
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog provides read access to the product catalog.
type Catalog interface {
	// ListProducts returns all products, insertion-ordered.
	ListProducts(ctx context.Context) ([]ProductListItem, error)

	// GetProductDetail returns the full product for a page slug.
	// Returns an ENOTFOUND domain error when no product has that slug.
	GetProductDetail(ctx context.Context, slug string) (*Product, error)

	// ListProductTypes returns the distinct product types, sorted.
	ListProductTypes(ctx context.Context) ([]string, error)
}
