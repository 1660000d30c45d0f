package middlewares

import (
	"log"
	"net/http"

	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/unrolled/render"
)

// AdminMiddleware gates catalog mutations. It runs after AuthMiddleware and
// rejects any principal whose role is not admin.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := helpers.PrincipalFromContext(r.Context())
			if !ok {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
				return
			}

			if !helpers.HasRole(principal, models.RoleAdmin) {
				log.Printf("AdminMiddleware: user %s attempted %s %s without admin role", principal.UserID, r.Method, r.URL.Path)
				_ = rnd.JSON(w, http.StatusForbidden, map[string]string{"error": "Admin role required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
