package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/movie-notes-api/internal/domain"
	"github.com/movie-notes-api/internal/transport/http/middleware"
)

// writeServiceError maps a service error to its HTTP status. Unknown user on
// signin is a 400, not a 404, to keep the client contract.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeError(w, r, statusFor(de.Kind), de.Message)
		return
	}
	slog.Error("request failed", "path", r.URL.Path, "err", err)
	writeJSON(w, r, http.StatusInternalServerError, MessageEnvelope{Message: "Server error", Details: err.Error()})
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrValidation),
		errors.Is(kind, domain.ErrConflict),
		errors.Is(kind, domain.ErrNotFound),
		errors.Is(kind, domain.ErrCredentials):
		return http.StatusBadRequest
	case errors.Is(kind, domain.ErrUnauthorized),
		errors.Is(kind, domain.ErrTokenInvalid),
		errors.Is(kind, domain.ErrTokenExpired):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// decodeBody reads a JSON body into v. An empty body leaves v zero-valued so
// presence checks report the missing fields.
func decodeBody(r *http.Request, v interface{}) bool {
	err := render.DecodeJSON(r.Body, v)
	return err == nil || errors.Is(err, io.EOF)
}

// ownerID returns the authenticated user id placed by middleware.Auth.
func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "Token required")
		return "", false
	}
	return claims.ID, true
}
