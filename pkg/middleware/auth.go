package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenVerifier maps a bearer token to the user it was issued to.
// Token issuance lives outside this service.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, ok bool)
}

// StaticTokens is a TokenVerifier backed by a fixed table of token to user ID.
type StaticTokens map[string]string

// ParseStaticTokens reads "token:user,token2:user2".
func ParseStaticTokens(raw string) (StaticTokens, error) {
	tokens := StaticTokens{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, user, ok := strings.Cut(pair, ":")
		token, user = strings.TrimSpace(token), strings.TrimSpace(user)
		if !ok || token == "" || user == "" {
			return nil, fmt.Errorf("invalid auth token entry %q, expected token:user", pair)
		}
		tokens[token] = user
	}
	return tokens, nil
}

// Verify implements TokenVerifier.
func (s StaticTokens) Verify(_ context.Context, token string) (string, bool) {
	user, ok := s[token]
	return user, ok
}

// Users returns the distinct users the tokens belong to, sorted.
func (s StaticTokens) Users() []string {
	users := make([]string, 0, len(s))
	for _, user := range s {
		if !slices.Contains(users, user) {
			users = append(users, user)
		}
	}
	slices.Sort(users)
	return users
}

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the caller's user ID in the request context. Browsers cannot set headers
// on a WebSocket handshake, so an access_token query parameter is accepted as well.
func BearerAuth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}
			userID, ok := verifier.Verify(r.Context(), token)
			if !ok {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, _ := strings.Cut(header, " ")
		if !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(r.URL.Query().Get("access_token"))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
