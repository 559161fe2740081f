package middleware

import (
	"net/http"
	"slices"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

const (
	RoleOwner   = "owner"
	RoleManager = "manager"
)

// RequireRole only lets through tokens whose role claim is one of roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInsufficientAccess)
				return
			}

			role, ok := claims["role"].(string)
			if !ok || !slices.Contains(roles, role) {
				response.HandleError(w, auth.ErrInsufficientAccess)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(RoleManager, RoleOwner)(next)
}
