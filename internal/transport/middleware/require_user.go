package middleware

import (
	"net/http"

	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// RequireUser rejects requests that carry no authenticated user. Auth
// resolves the bearer token; this guard turns anonymous access into a 401
// before the handler runs.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
