package storefront

import (
	"fmt"
	"net/http"

	"github.com/maitighar/kagaj/internal/cartstore"
	"github.com/maitighar/kagaj/internal/cookie"
	"github.com/maitighar/kagaj/internal/domain"
	"github.com/maitighar/kagaj/internal/handler"
	"github.com/maitighar/kagaj/internal/middleware"
	"github.com/maitighar/kagaj/internal/service"
)

// CartHandler handles the shopper's cart. The cart lives in the shopper's
// cookie, so a fresh service is bound to every request's cookie surface.
type CartHandler struct {
	cookieCfg *cookie.Config
	renderer  *handler.Renderer
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cookieCfg *cookie.Config, renderer *handler.Renderer) *CartHandler {
	return &CartHandler{cookieCfg: cookieCfg, renderer: renderer}
}

// Add handles POST /cart/add. The form carries the cart control's pending
// purchase attributes; missing either one is the shopper-visible
// missing-selection failure and leaves the stored cart untouched.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	carts := h.service(w, r)
	cart, err := carts.AddItem(ctx, r.FormValue("sku"), r.FormValue("price"))
	if err != nil {
		if domain.IsCode(err, domain.EINVALID) {
			http.Error(w, domain.ErrorMessage(err), http.StatusBadRequest)
			return
		}
		middleware.GetLogger(ctx).Error("failed to add cart item", "error", err)
		http.Error(w, "Failed to add item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Added to cart (%d lines)\n", len(cart.Lines))
}

// Clear handles POST /cart/clear, discarding the stored cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cookieCfg.Clear(w, cartstore.Key)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service(w, r).Summary(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("failed to load cart", "error", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	h.renderer.RenderHTTP(w, "cart", map[string]any{
		"Summary": summary,
	})
}

func (h *CartHandler) service(w http.ResponseWriter, r *http.Request) domain.CartService {
	return service.NewCartService(cartstore.NewCookie(w, r, h.cookieCfg))
}
