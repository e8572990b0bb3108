package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/alistairstead/ueberauth-shopify/authenticator"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login initiates the authentication process
func (ac *AuthController) Login(provider authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := authenticator.GenerateState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		// Forward scope overrides from the query, pinning our state
		params := r.URL.Query()
		params.Set("state", state)

		authURL, err := authenticator.HandleRequest(provider, params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Redirect to the Shopify authorize page
		http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from Shopify
func (ac *AuthController) Callback(provider authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		// Verify state before touching the network
		storedState, _ := sess.Get("state").(string)
		if err := authenticator.VerifyState(storedState, r.URL.Query().Get("state")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sess.Delete("state")

		// Exchange the code and fetch the shop profile
		result, err := authenticator.HandleCallback(r.Context(), provider, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), statusForKind(authenticator.KindOf(err)))
			return
		}

		sess.Set("uid", result.Info.UID)
		sess.Set("shop_name", displayName(result.Info))
		sess.Set("access_token", result.Credentials.Token)

		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	}
}

// Logout clears the signed-in session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("uid")
	sess.Delete("shop_name")
	sess.Delete("access_token")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// displayName picks a human-readable label for the signed-in shop
func displayName(info authenticator.Info) string {
	if info.Name != "" {
		return info.Name
	}
	if info.Email != "" {
		return info.Email
	}
	return info.UID
}

// statusForKind translates a failure kind into an HTTP status
func statusForKind(kind authenticator.Kind) int {
	switch kind {
	case authenticator.KindMissingCode, authenticator.KindInvalidState:
		return http.StatusBadRequest
	case authenticator.KindOAuth, authenticator.KindUnauthorized:
		return http.StatusUnauthorized
	case authenticator.KindConfig:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
