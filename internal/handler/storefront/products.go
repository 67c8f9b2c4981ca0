// Package storefront holds the shopper-facing HTTP handlers.
package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/maitighar/kagaj/internal/domain"
	"github.com/maitighar/kagaj/internal/gallery"
	"github.com/maitighar/kagaj/internal/handler"
	"github.com/maitighar/kagaj/internal/middleware"
	"github.com/maitighar/kagaj/internal/page"
	"github.com/maitighar/kagaj/internal/service"
)

// ProductBasePath is where product pages live; variant navigation resolves
// its <slug>.html targets against this.
const ProductBasePath = "/shop/products/"

// CatalogHandler serves the product listing and product detail pages.
type CatalogHandler struct {
	catalog  domain.Catalog
	renderer *handler.Renderer
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog domain.Catalog, renderer *handler.Renderer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, renderer: renderer}
}

// List handles GET /shop
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	types, err := h.catalog.ListProductTypes(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("failed to list product types", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	h.renderer.RenderHTTP(w, "products", map[string]any{
		"Products": products,
		"Types":    types,
	})
}

// Detail handles GET /shop/products/{page}. The page segment may carry the
// static-site .html suffix; both forms resolve to the same product.
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := service.CurrentPageSlug(r.PathValue("page"))
	product, err := h.catalog.GetProductDetail(ctx, slug)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		middleware.GetLogger(ctx).Error("failed to load product", "slug", slug, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	p := newProductPage(product)
	// Pre-select the variant the page belongs to, so the SKU line and the
	// cart control start populated the same way the shipped page does.
	p.SelectVariant(variantIndexForSlug(product, slug))

	h.renderer.RenderHTTP(w, "product", map[string]any{
		"Product":      product,
		"Thumbnails":   thumbnailsFor(product),
		"MainImage":    mainImageFor(product),
		"SKULabel":     p.SKULabel(),
		"PendingSKU":   p.PendingSKU(),
		"PendingPrice": p.PendingPrice(),
		"Availability": product.Stock.AvailabilityLabel(),
	})
}

// SelectVariant handles GET /shop/products/{page}/variant?sku=...
// It resolves a variant-control change event: a variant living on another
// page answers with a 303 to that page, anything else answers with the
// updated SKU label and pending purchase attributes.
func (h *CatalogHandler) SelectVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageSegment := r.PathValue("page")
	slug := service.CurrentPageSlug(pageSegment)
	product, err := h.catalog.GetProductDetail(ctx, slug)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		middleware.GetLogger(ctx).Error("failed to load product", "slug", slug, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	sel := selectionForSKU(product, r.URL.Query().Get("sku"))
	change := service.ResolveVariantChange(sel, pageSegment)

	if change.RedirectTo != "" {
		http.Redirect(w, r, ProductBasePath+change.RedirectTo, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"sku_label":     change.SKULabel,
		"pending_sku":   change.PendingSKU,
		"pending_price": change.PendingPrice,
	})
}

// newProductPage wires the interaction model for a product detail page.
func newProductPage(product *domain.Product) *page.Page {
	return page.New(page.Bindings{
		Location:        ProductBasePath + product.Slug,
		MainImageSource: mainImageFor(product),
		Thumbnails:      thumbnailsFor(product),
		VariantOptions:  selectionsFor(product),
		HasCartControl:  true,
		HasSKULabel:     true,
	}, nil)
}

func mainImageFor(product *domain.Product) string {
	if len(product.Images) == 0 {
		return ""
	}
	return product.Images[0].URL
}

func thumbnailsFor(product *domain.Product) []gallery.Thumbnail {
	thumbs := make([]gallery.Thumbnail, 0, len(product.Images))
	for _, img := range product.Images {
		thumbs = append(thumbs, gallery.Thumbnail{ID: img.URL, Source: img.URL})
	}
	return thumbs
}

func selectionsFor(product *domain.Product) []service.VariantSelection {
	selections := make([]service.VariantSelection, 0, len(product.Variants))
	for _, v := range product.Variants {
		selections = append(selections, service.VariantSelection{
			SKU:   v.SKU,
			Price: v.Price.Plain(),
			Slug:  v.Slug,
		})
	}
	return selections
}

func selectionForSKU(product *domain.Product, sku string) *service.VariantSelection {
	if sku == "" {
		return nil
	}
	for _, sel := range selectionsFor(product) {
		if sel.SKU == sku {
			return &sel
		}
	}
	return nil
}

func variantIndexForSlug(product *domain.Product, slug string) int {
	for i, v := range product.Variants {
		if v.Slug == slug {
			return i
		}
	}
	if len(product.Variants) > 0 {
		return 0
	}
	return -1
}
