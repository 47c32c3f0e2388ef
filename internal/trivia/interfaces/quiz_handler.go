package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type QuizServiceInterface interface {
	NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error)
}

type QuizHandler struct {
	service      QuizServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewQuizHandler(
	service QuizServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *QuizHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &QuizHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// PlayQuiz handles POST /quizzes. Both quiz_category (with an id) and
// previous_questions must be present; category id 0 means every category.
func (h *QuizHandler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeBody(r.Body, &req); err != nil {
		handleServiceError(w, r, h.respondError, triviaErrors.ErrBadRequest, http.StatusNotFound)
		return
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil || req.QuizCategory.ID.Value == nil {
		handleServiceError(w, r, h.respondError, triviaErrors.ErrBadRequest, http.StatusNotFound)
		return
	}

	question, err := h.service.NextQuestion(r.Context(), *req.QuizCategory.ID.Value, *req.PreviousQuestions)
	if err != nil {
		handleServiceError(w, r, h.respondError, err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": question,
	})
}
