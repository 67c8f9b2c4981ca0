// Package cookie provides the cookie helpers used by the storefront.
// The cart blob and any future shopper-scoped state go through this package
// so that domain scoping and security flags stay consistent.
package cookie

import (
	"net/http"
	"time"
)

// Config holds cookie configuration shared by all storefront cookies.
type Config struct {
	// Domain scopes the cookie; empty means host-only.
	Domain string

	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(domain string, secure bool) *Config {
	return &Config{Domain: domain, Secure: secure}
}

// Set writes a cookie with the storefront defaults:
//   - Path: "/" (available on all pages)
//   - HttpOnly: true (server-managed state)
//   - SameSite: Lax (sent on top-level navigations)
//   - Secure: from config
func (c *Config) Set(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires a cookie immediately.
func (c *Config) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns the value of the named cookie, or empty string if absent.
func Get(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
