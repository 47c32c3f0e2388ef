package interfaces

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/application"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type QuestionServiceInterface interface {
	ListQuestions(ctx context.Context, page int) (*application.QuestionPage, error)
	CreateQuestion(ctx context.Context, input domain.NewQuestion) (domain.Question, int, error)
	DeleteQuestion(ctx context.Context, questionID int) error
	SearchQuestions(ctx context.Context, term string, page int) ([]domain.Question, int, error)
}

type QuestionHandler struct {
	service      QuestionServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewQuestionHandler(
	service QuestionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *QuestionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &QuestionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetQuestions handles GET /questions?page=n.
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page := application.ParsePage(r.URL.Query().Get("page"))

	result, err := h.service.ListQuestions(r.Context(), page)
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.Total,
		"categories":      domain.CategoryMap(result.Categories),
		"currentCategory": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{questionID}. Unknown ids are 422.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		handleServiceError(w, r, h.respondError, triviaErrors.NewValidationError("invalid question id"), http.StatusUnprocessableEntity)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusUnprocessableEntity)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": questionID,
	})
}

// CreateQuestion handles POST /questions.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeBody(r.Body, &req); err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusUnprocessableEntity)
		return
	}

	question, total, err := h.service.CreateQuestion(r.Context(), domain.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty.Value,
		Category:   req.Category.Value,
	})
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusUnprocessableEntity)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"created":        question.ID,
		"totalQuestions": total,
	})
}

// SearchQuestions handles POST /questions/search. totalQuestions counts every
// question, not only the matches.
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r.Body, &req); err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	page := application.ParsePage(r.URL.Query().Get("page"))
	questions, total, err := h.service.SearchQuestions(r.Context(), req.SearchTerm, page)
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"questions":      questions,
		"totalQuestions": total,
	})
}
