package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"merchant-payment-api/services/auth"
	"merchant-payment-api/utils"
)

type contextKey string

const MerchantContextKey contextKey = "merchant"

// AuthMiddleware guards merchant-facing endpoints with a bearer JWT.
func AuthMiddleware(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("Missing Authorization header from %s", r.RemoteAddr)
				utils.SendErrorResponse(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("Invalid Authorization header format from %s", r.RemoteAddr)
				utils.SendErrorResponse(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("Token validation failed from %s: %v", r.RemoteAddr, err)

				var message string
				switch err {
				case auth.ErrTokenExpired:
					message = "Token expired"
				case auth.ErrInvalidToken:
					message = "Invalid token"
				default:
					message = "Authentication failed"
				}

				utils.SendErrorResponse(w, http.StatusUnauthorized, message)
				return
			}

			ctx := context.WithValue(r.Context(), MerchantContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MerchantFromContext extracts the authenticated merchant claims, or nil.
func MerchantFromContext(ctx context.Context) *auth.Claims {
	claims, ok := ctx.Value(MerchantContextKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
