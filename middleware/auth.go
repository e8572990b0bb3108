package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/alistairstead/ueberauth-shopify/userctx"
)

// RequireAuth ensures the request belongs to a signed-in shop.
// If not authenticated, redirects to /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		uid, ok := sess.Get("uid").(string)
		if !ok || uid == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Add the shop UID to the request context for handlers
		ctx := userctx.SetUID(r.Context(), uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
