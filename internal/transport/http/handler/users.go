package handler

import (
	"net/http"
	"strconv"

	"github.com/movie-notes-api/internal/application/session"
	"github.com/movie-notes-api/internal/application/user"
	"github.com/movie-notes-api/internal/domain"
)

// UserHandler handles signup, signin and the user listing.
type UserHandler struct {
	users    user.Service
	sessions session.Service
}

func NewUserHandler(users user.Service, sessions session.Service) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.users.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, SignupEnvelope{Message: msgSuccess, User: u})
}

func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req domain.SigninRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.sessions.Signin(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, SigninEnvelope{Message: msgSuccess, Token: token})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := h.users.List(r.Context(), parsePage(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, UsersPageEnvelope{
		Message:    msgSuccess,
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Users:      p.Users,
	})
}

// parsePage reads ?page=N; absent, non-numeric or non-positive means 1.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
