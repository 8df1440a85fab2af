package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	logger            zerolog.Logger
	signedInRedirect  string
	signedOutRedirect string
}

func newAuthHandler(signedInRedirect, signedOutRedirect string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		logger:            logger,
		signedInRedirect:  signedInRedirect,
		signedOutRedirect: signedOutRedirect,
	}
}

// callback lands the browser after the provider's redirect-based login flow
// and routes it by session presence: signed-in users to their dashboard,
// everyone else back to the login page.
func (h authHandler) callback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hasSession(r) {
			http.Redirect(w, r, h.signedInRedirect, http.StatusTemporaryRedirect)
			return
		}
		http.Redirect(w, r, h.signedOutRedirect, http.StatusTemporaryRedirect)
	}
}

// hasSession reports whether the request carries a session token, either in
// the provider's redirect fragment (surfaced as a query parameter) or as a
// session cookie.
func hasSession(r *http.Request) bool {
	if r.URL.Query().Get("access_token") != "" {
		return true
	}
	if cookie, err := r.Cookie("sb-access-token"); err == nil && cookie.Value != "" {
		return true
	}
	return false
}
