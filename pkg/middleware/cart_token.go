package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

const cartCookieName = "ew_cart"

// CartToken guarantees every request carries an opaque cart token cookie.
// The token is the only key into the carts collection; no account needed.
func CartToken() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(cartCookieName)
		if err == nil && cookie.Value != "" {
			e.Set("CartToken", cookie.Value)
			return e.Next()
		}

		token := newCartToken()
		http.SetCookie(e.Response, &http.Cookie{
			Name:     cartCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 365,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		e.Set("CartToken", token)
		return e.Next()
	}
}

func newCartToken() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// CartTokenFrom extracts the token stored by CartToken.
func CartTokenFrom(e *core.RequestEvent) string {
	if v, ok := e.Get("CartToken").(string); ok {
		return v
	}
	return ""
}
