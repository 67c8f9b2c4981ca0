// Package middleware provides the HTTP middleware used by the storefront.
package middleware

// contextKey is a private type for request context keys.
type contextKey string
