package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/anindyaputri/dress-shop/application/auth"
	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware evaluates the route guard for every request. A bearer token
// is resolved against the session cache when present; an invalid or missing
// token simply means "no session" and only matters on guarded routes.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			var (
				userID     uint64
				role       string
				hasSession bool
			)
			if token := bearerToken(r); token != "" {
				if id, rl, err := authApp.ValidateToken(r.Context(), token); err == nil {
					userID, role, hasSession = id, rl, true
				}
			}

			req := RequirementsForRoute(r.Method, path)
			switch GuardDecision(false, hasSession, role, req, path) {
			case GuardRedirectLogin:
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			case GuardRedirectHome:
				if req.RequireAdmin {
					writeError(w, errors.SetCustomError(constant.ErrForbidden))
					return
				}
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			if hasSession {
				ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
				ctx = context.WithValue(ctx, constant.RoleKey, role)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
