package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "vanrental/internal/errors"
)

// AdminAuthMiddleware guards the /admin subrouter. It expects a Bearer
// token issued by the admin login endpoint, signed HS256 with JWT_SECRET.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, apperrors.Unauthorized("Missing or invalid authorization header"))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			writeError(w, apperrors.System("Server misconfigured"))
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			writeError(w, apperrors.Unauthorized("Invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.StatusOf(err))
	json.NewEncoder(w).Encode(map[string]string{"detail": err.Error()})
}
