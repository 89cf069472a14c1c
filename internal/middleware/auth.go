package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"aero-club/tower/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token on the CRUD surface and stores
// the caller's claims in the request context. The inbound-text webhook is
// registered outside this middleware since the messaging provider cannot
// carry club credentials.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			mapClaims, ok := token.Claims.(*jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized. Invalid claims", http.StatusUnauthorized)
				return
			}

			sub, _ := (*mapClaims)["sub"].(string)
			name, _ := (*mapClaims)["name"].(string)
			if sub == "" {
				http.Error(w, "Unauthorized. Missing subject", http.StatusUnauthorized)
				return
			}

			claims := &auth.JWTClaims{Subject: sub, Name: name}
			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthSecret resolves the HMAC secret used for the CRUD bearer tokens.
func AuthSecret() []byte {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-do-not-use"
	}
	return []byte(secret)
}
