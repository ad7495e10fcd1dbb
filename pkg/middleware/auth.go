package middleware

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RequireAdmin middleware ensures the user is an authenticated superuser.
func RequireAdmin(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie("pb_auth")
		if err != nil || cookie.Value == "" {
			return rejectAdmin(e)
		}
		record, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
		if err != nil || record == nil || !record.IsSuperuser() {
			return rejectAdmin(e)
		}
		e.Auth = record
		return e.Next()
	}
}

// rejectAdmin answers an unauthenticated admin request. API callers get a
// 401 they can act on; page requests go to the PocketBase dashboard, which
// hosts the superuser login form.
func rejectAdmin(e *core.RequestEvent) error {
	if strings.HasPrefix(e.Request.URL.Path, "/api/") {
		return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Admin authentication required"})
	}
	return e.Redirect(http.StatusSeeOther, "/_/")
}
