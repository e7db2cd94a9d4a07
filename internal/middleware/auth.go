package middleware

import (
	"net/http"

	"resto-be/internal/auth"
	"resto-be/internal/logger"
	"resto-be/internal/utils"

	"go.uber.org/zap"
)

// Auth attaches the caller's claims to the request context. Requests without
// a token pass through anonymously. A token that fails verification is
// rejected with 401. With an empty secret the middleware is a no-op.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseJWT(secret, tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Info("rejected access token", zap.Error(err))
				utils.WriteJSONError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.Subject, claims.Role)
			ctx = logger.WithFields(ctx, zap.String("user_id", claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
