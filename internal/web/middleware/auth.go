// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// SessionCookie is the name of the authenticated-session cookie.
const SessionCookie = "importgen_session"

// SessionAuth returns middleware that requires a live session cookie.
// Browser page requests are redirected to the login page; API requests
// get a 401 JSON body.
func SessionAuth(valid func(token string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err == nil && valid(cookie.Value) {
				next.ServeHTTP(w, r)
				return
			}

			if wantsJSON(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required","code":"AUTH002"}`))
				return
			}

			http.Redirect(w, r, "/login", http.StatusSeeOther)
		})
	}
}

// SecretMatches compares a submitted password against the configured
// shared secret in constant time.
func SecretMatches(submitted, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(secret)) == 1
}

// wantsJSON reports whether the client should receive a JSON error
// instead of a redirect.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
