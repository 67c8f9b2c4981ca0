package domain

import "context"

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

// ErrMissingVariantSelection indicates an add-to-cart attempt before a
// variant (SKU and price) has been resolved.
var ErrMissingVariantSelection = &Error{Code: EINVALID, Message: "Please select a product variant first"}

// CartService provides business logic for the shopper's cart.
//
// The cart is a single blob owned by the shopper (cookie-persisted), read and
// rewritten whole on every mutation. Two concurrent writers are unguarded:
// last write wins. Acceptable for a client-held cart; do not reuse this
// contract for a shared server-side cart.
type CartService interface {
	// AddItem merges a pending selection into the cart: an existing line with
	// the same SKU has its quantity incremented, otherwise a new line is
	// appended. Returns the updated cart.
	AddItem(ctx context.Context, sku, price string) (Cart, error)

	// Get returns the current cart. A missing or unreadable blob is an empty
	// cart, never an error.
	Get(ctx context.Context) (Cart, error)

	// Summary returns the cart with item count and decimal subtotal.
	Summary(ctx context.Context) (CartSummary, error)
}

// CartLine is one line item in the cart. Lines are keyed by SKU: the cart
// holds at most one line per distinct SKU.
//
// Price is kept as the decimal-formatted string captured when the line was
// first added; later adds of the same SKU do not refresh it.
type CartLine struct {
	SKU      string `json:"sku"`
	Price    string `json:"price"`
	Quantity int    `json:"qty"`
}

// Cart is an insertion-ordered sequence of lines.
type Cart struct {
	Lines []CartLine
}

// Find returns the index of the line with the given SKU, or -1.
func (c Cart) Find(sku string) int {
	for i, line := range c.Lines {
		if line.SKU == sku {
			return i
		}
	}
	return -1
}

// CartSummary aggregates the cart with calculated totals.
type CartSummary struct {
	Cart      Cart
	ItemCount int
	Subtotal  Money
}
