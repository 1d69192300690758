package handler

import (
	"net/http"

	"github.com/movie-notes-api/internal/application/note"
	"github.com/movie-notes-api/internal/domain"
)

// NoteHandler handles the caller's notes.
type NoteHandler struct {
	svc note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler { return &NoteHandler{svc: svc} }

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req domain.AddNoteRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	n, err := h.svc.Add(r.Context(), uid, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, NoteEnvelope{Message: msgSuccess, Note: n})
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	notes, err := h.svc.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, NotesEnvelope{Message: msgSuccess, Notes: notes})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req domain.DeleteNoteRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.Delete(r.Context(), uid, req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, MessageEnvelope{Message: msgSuccess})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req domain.UpdateNoteRequest
	if !decodeBody(r, &req) {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.Update(r.Context(), uid, req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, MessageEnvelope{Message: msgSuccess})
}
