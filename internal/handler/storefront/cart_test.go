package storefront

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/maitighar/kagaj/internal/cookie"
)

func postAdd(t *testing.T, h *CartHandler, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	h.Add(w, req)
	return w
}

func TestCartHandler_Add(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	w := postAdd(t, h, url.Values{"sku": {"nb-a5-01"}, "price": {"450.00"}}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Added to cart (1 lines)") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "cart" {
		t.Fatalf("expected a cart cookie, got %v", cookies)
	}
}

func TestCartHandler_Add_MergesAcrossRequests(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	first := postAdd(t, h, url.Values{"sku": {"nb-a5-01"}, "price": {"450.00"}}, nil)
	second := postAdd(t, h, url.Values{"sku": {"nb-a5-01"}, "price": {"450.00"}}, first.Result().Cookies())

	if second.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", second.Code)
	}
	if !strings.Contains(second.Body.String(), "Added to cart (1 lines)") {
		t.Errorf("merged add must not grow the line count: %s", second.Body.String())
	}
}

func TestCartHandler_Add_MissingSelection(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing sku", url.Values{"price": {"450.00"}}},
		{"missing price", url.Values{"sku": {"nb-a5-01"}}},
		{"empty form", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAdd(t, h, tt.form, nil)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Please select a product variant first") {
				t.Errorf("expected the shopper-facing message, got: %s", w.Body.String())
			}
			if len(w.Result().Cookies()) != 0 {
				t.Error("failed add must not rewrite the cart cookie")
			}
		})
	}
}

func TestCartHandler_Clear(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	added := postAdd(t, h, url.Values{"sku": {"nb-a5-01"}, "price": {"450.00"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
	for _, ck := range added.Result().Cookies() {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()

	h.Clear(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/cart" {
		t.Errorf("redirect location = %q", got)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "cart" {
		t.Fatalf("expected an expiring cart cookie, got %v", cookies)
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("cart cookie max-age = %d, want negative to expire it", cookies[0].MaxAge)
	}
}

func TestCartHandler_View(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	added := postAdd(t, h, url.Values{"sku": {"nb-a5-01"}, "price": {"450.00"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	for _, ck := range added.Result().Cookies() {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()

	h.View(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "nb-a5-01") {
		t.Error("expected the cart line in the page")
	}
	if !strings.Contains(body, "1 items") {
		t.Error("expected the item count in the page")
	}
}

func TestCartHandler_View_Empty(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()

	h.View(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Your cart is empty.") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCartHandler_View_TamperedCookieRecovers(t *testing.T) {
	h := NewCartHandler(cookie.NewConfig("", false), testRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cart", Value: "garbage"})
	w := httptest.NewRecorder()

	h.View(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Your cart is empty.") {
		t.Error("tampered cookie must render as an empty cart")
	}
}
