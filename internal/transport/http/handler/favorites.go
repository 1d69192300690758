package handler

import (
	"net/http"

	"github.com/movie-notes-api/internal/application/favorite"
	"github.com/movie-notes-api/internal/domain"
)

// FavoriteHandler handles the caller's favorite movies.
type FavoriteHandler struct {
	svc favorite.Service
}

func NewFavoriteHandler(svc favorite.Service) *FavoriteHandler { return &FavoriteHandler{svc: svc} }

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req domain.AddFavoriteRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	f, err := h.svc.Add(r.Context(), uid, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, FavoriteEnvelope{Message: msgSuccess, Favorite: f})
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	favs, err := h.svc.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, FavoritesEnvelope{Message: msgSuccess, Favorites: favs})
}
