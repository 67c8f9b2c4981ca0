// Package page wires one product page's interactive components together.
// Bindings name the structural roles the page exposes; any absent role
// silently disables only the feature that needs it, so a page missing its
// gallery or variant control still works for everything else.
package page

import (
	"context"

	"github.com/maitighar/kagaj/internal/domain"
	"github.com/maitighar/kagaj/internal/gallery"
	"github.com/maitighar/kagaj/internal/service"
)

// Bindings is the one-time resolution of the page's named elements.
// Zero values mean the element is absent.
type Bindings struct {
	// Location is the page's own path, used to derive its slug.
	Location string

	// MainImageSource is the primary display image.
	MainImageSource string

	// Thumbnails are the clickable gallery thumbnails.
	Thumbnails []gallery.Thumbnail

	// VariantOptions are the selectable variants, each carrying its SKU,
	// price, and page slug.
	VariantOptions []service.VariantSelection

	// HasCartControl reports whether the page has a purchase-action control
	// to carry pending SKU/price values.
	HasCartControl bool

	// HasSKULabel reports whether the page has a SKU display element.
	HasSKULabel bool

	// HasCarousel reports whether the thumbnail strip and both of its
	// directional controls are present.
	HasCarousel bool

	// CarouselItemWidths and CarouselViewport are the strip measurements
	// taken at initialization.
	CarouselItemWidths []int
	CarouselViewport   int
}

// Page is an initialized product page. Component fields are nil when the
// corresponding binding was absent.
type Page struct {
	Gallery  *gallery.Gallery
	Lightbox *gallery.Lightbox
	Carousel *gallery.Carousel
	Keyboard *gallery.Keyboard

	cart     domain.CartService
	location string
	variants []service.VariantSelection

	hasCartControl bool
	hasSKULabel    bool

	skuLabel     string
	pendingSKU   string
	pendingPrice string
}

// New resolves the bindings and wires each component exactly once.
// Components are independent of one another; only the binding resolution
// has to happen first.
func New(b Bindings, cart domain.CartService) *Page {
	p := &Page{
		cart:           cart,
		location:       b.Location,
		variants:       b.VariantOptions,
		hasCartControl: b.HasCartControl,
		hasSKULabel:    b.HasSKULabel,
		Keyboard:       gallery.NewKeyboard(),
	}

	if b.MainImageSource != "" || len(b.Thumbnails) > 0 {
		p.Gallery = gallery.New(b.MainImageSource, b.Thumbnails)
	}

	// Without a main image the lightbox is inert, so it only exists when
	// the gallery does.
	if p.Gallery != nil {
		p.Lightbox = gallery.NewLightbox(p.Gallery, p.Keyboard)
	}

	if b.HasCarousel {
		p.Carousel = gallery.NewCarousel(b.CarouselItemWidths, b.CarouselViewport)
	}

	return p
}

// SelectThumbnail forwards a thumbnail click to the gallery.
// No-op when the page has no gallery.
func (p *Page) SelectThumbnail(id string) {
	if p.Gallery == nil {
		return
	}
	p.Gallery.Select(id)
}

// SelectVariant handles a change event on the variant control. The index is
// the position of the now-selected option; an out-of-range index models a
// change event with nothing actually selected and performs no updates.
func (p *Page) SelectVariant(index int) service.VariantChange {
	if index < 0 || index >= len(p.variants) {
		return service.VariantChange{}
	}

	sel := p.variants[index]
	change := service.ResolveVariantChange(&sel, p.location)

	if p.hasSKULabel {
		p.skuLabel = change.SKULabel
	}
	if p.hasCartControl {
		p.pendingSKU = change.PendingSKU
		p.pendingPrice = change.PendingPrice
	}

	return change
}

// AddToCart submits the cart control's pending purchase attributes.
// A page without a cart control, or with no variant applied yet, fails with
// the missing-selection error and leaves the cart untouched.
func (p *Page) AddToCart(ctx context.Context) (domain.Cart, error) {
	if p.cart == nil {
		return domain.Cart{}, domain.ErrMissingVariantSelection
	}
	return p.cart.AddItem(ctx, p.pendingSKU, p.pendingPrice)
}

// SKULabel returns the SKU display text, empty when the page has no SKU
// label element or no variant has been applied.
func (p *Page) SKULabel() string {
	return p.skuLabel
}

// PendingSKU and PendingPrice expose the cart control's current purchase
// attributes.
func (p *Page) PendingSKU() string   { return p.pendingSKU }
func (p *Page) PendingPrice() string { return p.pendingPrice }
