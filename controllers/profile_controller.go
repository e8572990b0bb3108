package controllers

import (
	"fmt"
	"html"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/alistairstead/ueberauth-shopify/userctx"
)

// ProfileController renders the signed-in shop pages
type ProfileController struct{}

// NewProfileController creates a new profile controller
func NewProfileController() *ProfileController {
	return &ProfileController{}
}

// Index handles GET /
func (c *ProfileController) Index(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if uid, ok := sess.Get("uid").(string); ok && uid != "" {
		fmt.Fprintf(w, "<h1>Signed in as %s</h1><p><a href=\"/profile\">Profile</a> | <a href=\"/logout\">Log out</a></p>", html.EscapeString(uid))
		return
	}
	fmt.Fprint(w, "<h1>Shopify OAuth example</h1><p><a href=\"/login\">Sign in with Shopify</a></p>")
}

// Show handles GET /profile
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	uid := userctx.GetUID(r.Context())
	name, _ := sess.Get("shop_name").(string)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<h1>%s</h1><p>UID: %s</p><p><a href=\"/logout\">Log out</a></p>",
		html.EscapeString(name), html.EscapeString(uid))
}
