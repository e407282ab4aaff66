package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isharehowlabs/yahudim.app/internal/question/model"
	"github.com/isharehowlabs/yahudim.app/internal/question/service"
	"github.com/isharehowlabs/yahudim.app/pkg/httputil"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(service *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: service}
}

// GetQuestions handles GET /api/qanda/questions
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.Service.List(r.Context())
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to fetch questions")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, questions)
}

// CreateQuestion handles POST /api/qanda/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQuestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question, err := h.Service.Create(r.Context(), req)
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to create question")
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, question)
}

// UpdateQuestion handles PUT /api/qanda/questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateQuestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question, err := h.Service.MarkRead(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httputil.RespondServiceError(w, err, "Failed to update question")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /api/qanda/questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.RespondServiceError(w, err, "Failed to delete question")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, model.DeleteResponse{Message: "Question deleted"})
}
