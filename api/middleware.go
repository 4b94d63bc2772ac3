package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/raushankrgupta/ayush-ai/utils"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "user_id"

var errNoUser = errors.New("no authenticated user in context")

// GetUserIDFromContext returns the id of the authenticated user.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", errNoUser
	}
	return userID, nil
}

// WithUserID returns a context carrying an authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// CORS Middleware
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+utils.RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a valid bearer token.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		if h.tokens == nil {
			h.logger.Error("token issuer not configured")
			utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		userID, err := h.tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			h.logger.Debug("rejected token", zap.Error(err), zap.String("path", r.URL.Path))
			utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
