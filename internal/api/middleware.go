package api

import (
	"net/http"
	"strings"

	"recruitdesk/internal/auth"
)

// requireAuth verifies the Bearer token and attaches the principal to the
// request context before calling next.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		principal, err := a.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	}
}

// principal returns the authenticated identity; requireAuth guarantees it
// is present on protected routes.
func principal(r *http.Request) *auth.Principal {
	p, _ := auth.PrincipalFrom(r.Context())
	return p
}
