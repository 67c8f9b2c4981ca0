package cartstore

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/maitighar/kagaj/internal/cookie"
)

// Cart cookies outlive a session so the cart survives page loads; they live
// until the shopper clears the cart or the browser storage is wiped.
const cookieMaxAge = 180 * 24 * time.Hour

// Cookie is a per-request Store backed by the shopper's "cart" cookie.
// The blob is base64url-encoded since raw JSON is not a valid cookie value.
//
// This keeps cart ownership on the client: the server never holds cart state
// between requests, and simultaneous writes from two tabs resolve to
// whichever response is applied last.
type Cookie struct {
	w   http.ResponseWriter
	r   *http.Request
	cfg *cookie.Config
}

// NewCookie creates a Store bound to one request/response pair.
func NewCookie(w http.ResponseWriter, r *http.Request, cfg *cookie.Config) *Cookie {
	return &Cookie{w: w, r: r, cfg: cfg}
}

func (c *Cookie) Load(_ context.Context) ([]byte, error) {
	value := cookie.Get(c.r, Key)
	if value == "" {
		return nil, nil
	}

	blob, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		// Tampered or truncated cookie: recover silently with an empty cart.
		return nil, nil
	}

	return blob, nil
}

func (c *Cookie) Save(_ context.Context, blob []byte) error {
	c.cfg.Set(c.w, Key, base64.RawURLEncoding.EncodeToString(blob), cookieMaxAge)
	return nil
}
