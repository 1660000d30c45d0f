package middlewares

import (
	"net/http"
	"strings"

	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/utils/token"
	"github.com/unrolled/render"
)

// AuthMiddleware verifies the bearer token and stores the resulting Principal
// in the request context before any handler runs.
func AuthMiddleware(maker *token.Maker, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header || tokenString == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header must be a bearer token"})
				return
			}

			principal, err := maker.Verify(tokenString)
			if err != nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(helpers.WithPrincipal(r.Context(), principal)))
		})
	}
}
