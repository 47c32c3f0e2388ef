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

type CategoryServiceInterface interface {
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
}

type CategoryQuestionsServiceInterface interface {
	QuestionsByCategory(ctx context.Context, categoryID, page int) (*application.CategoryQuestions, error)
}

type CategoryHandler struct {
	service         CategoryServiceInterface
	questionService CategoryQuestionsServiceInterface
	respondJSON     respondJSONFunc
	respondError    respondErrorFunc
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	questionService CategoryQuestionsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || questionService == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:         service,
		questionService: questionService,
		respondJSON:     respondJSON,
		respondError:    respondError,
	}
}

// GetCategories handles GET /categories.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": domain.CategoryMap(categories),
	})
}

// GetCategoryQuestions handles GET /categories/{categoryID}/questions.
func (h *CategoryHandler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		handleServiceError(w, r, h.respondError, triviaErrors.ErrCategoryNotFound, http.StatusNotFound)
		return
	}

	page := application.ParsePage(r.URL.Query().Get("page"))
	result, err := h.questionService.QuestionsByCategory(r.Context(), categoryID, page)
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"category":       result.Category.Type,
		"questions":      result.Questions,
		"totalQuestions": result.Total,
	})
}
