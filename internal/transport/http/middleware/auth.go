package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/movie-notes-api/internal/domain"
	jwtinfra "github.com/movie-notes-api/internal/infrastructure/jwt"
	"github.com/movie-notes-api/internal/transport/http/metrics"
)

type contextKey string

const claimsKey contextKey = "claims"

// maxTokenBody bounds how much of a request body is read looking for a token.
const maxTokenBody = 1 << 20

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*jwtinfra.Claims, error)
}

// AuthObserver is told the outcome of every gate decision. May be nil.
type AuthObserver interface {
	ObserveAuth(outcome string)
}

// Auth returns middleware that requires a valid token and injects its claims
// into the request context. The token is taken from "Authorization: Bearer"
// or, failing that, from a "token" field in a JSON body.
func Auth(verifier TokenVerifier, obs AuthObserver) func(http.Handler) http.Handler {
	observe := func(outcome string) {
		if obs != nil {
			obs.ObserveAuth(outcome)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				tokenStr = bodyToken(r)
			}
			if tokenStr == "" {
				observe(metrics.AuthMissing)
				writeJSONError(w, r, http.StatusUnauthorized, "Token required")
				return
			}
			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					observe(metrics.AuthExpired)
				} else {
					observe(metrics.AuthInvalid)
				}
				slog.Debug("token verification failed", "err", err)
				writeJSONError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			observe(metrics.AuthOK)
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// bodyToken peeks at the body for a "token" field and restores the body so
// the handler can decode it again.
func bodyToken(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	orig := r.Body
	b, err := io.ReadAll(io.LimitReader(orig, maxTokenBody))
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(b), orig), Closer: orig}
	if err != nil || len(b) == 0 {
		return ""
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Token)
}

type replayBody struct {
	io.Reader
	io.Closer
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *jwtinfra.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*jwtinfra.Claims)
	return c, ok && c != nil
}
