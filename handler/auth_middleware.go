package handler

import (
	"context"
	"go-stream-api/common"
	"go-stream-api/model"
	"go-stream-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey   contextKey = "userID"
	UsernameKey contextKey = "username"
)

const accessTokenCookie = "access_token"

// AuthMiddleware is the access guard: it verifies the access token on each
// protected request and attaches the claims-derived identity to the request
// context. Access tokens are self-contained, so no store lookup happens here;
// only refresh actions touch persistent state.
func AuthMiddleware(codec *service.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				common.NewUnauthorizedError("Missing access token", nil).Send(w)
				return
			}

			claims, err := codec.Verify(tokenString, model.TokenKindAccess)
			if err != nil {
				// One envelope for every verification failure; the caller
				// learns nothing about why the token was rejected.
				common.NewUnauthorizedError("Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the access token from the Authorization header, falling
// back to the session cookie for browser clients.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) == 2 && strings.ToLower(headerParts[0]) == "bearer" {
			return headerParts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
