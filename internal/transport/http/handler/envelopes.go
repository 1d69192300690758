package handler

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/movie-notes-api/internal/domain"
)

const msgSuccess = "success"

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SignupEnvelope wraps the created user; the password hash never serializes.
type SignupEnvelope struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// SigninEnvelope wraps the issued bearer token.
type SigninEnvelope struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UsersPageEnvelope wraps one page of the user listing.
type UsersPageEnvelope struct {
	Message    string        `json:"message"`
	Total      int           `json:"Total"`
	Page       int           `json:"Page"`
	TotalPages int           `json:"TotalPages"`
	Users      []domain.User `json:"Users"`
}

type FavoriteEnvelope struct {
	Message  string           `json:"message"`
	Favorite *domain.Favorite `json:"favorite"`
}

type FavoritesEnvelope struct {
	Message   string            `json:"message"`
	Favorites []domain.Favorite `json:"Favorites"`
}

type NoteEnvelope struct {
	Message string       `json:"message"`
	Note    *domain.Note `json:"note"`
}

type NotesEnvelope struct {
	Message string        `json:"message"`
	Notes   []domain.Note `json:"Notes"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, MessageEnvelope{Message: msg})
}
