package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isharehowlabs/yahudim.app/internal/note/model"
	"github.com/isharehowlabs/yahudim.app/internal/note/service"
	"github.com/isharehowlabs/yahudim.app/pkg/httputil"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Service.List(r.Context())
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to fetch notes")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to fetch note")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req model.NoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.Create(r.Context(), req)
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to create note")
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req model.NoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to update note")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.RespondServiceError(w, err, "Failed to delete note")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, model.DeleteResponse{Message: "Note deleted"})
}
