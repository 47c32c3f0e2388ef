package domain

import (
	"context"
	"strings"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionFilter narrows FindAll. Zero values mean "no filter".
type QuestionFilter struct {
	CategoryID int
	SearchTerm string
}

type QuestionRepository interface {
	FindAll(ctx context.Context, filter QuestionFilter) ([]Question, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, question Question) (Question, error)
	Delete(ctx context.Context, questionID int) error
}

// NewQuestion carries the raw fields of a create request. Pointers distinguish
// "not sent" from a zero value.
type NewQuestion struct {
	Question   string
	Answer     string
	Difficulty *int
	Category   *int
}

func (q NewQuestion) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.NewValidationError("question is required")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return errors.NewValidationError("answer is required")
	}
	if q.Difficulty == nil {
		return errors.NewValidationError("difficulty is required")
	}
	if q.Category == nil {
		return errors.NewValidationError("category is required")
	}
	return nil
}

func (q NewQuestion) ToQuestion() Question {
	question := Question{
		Question: q.Question,
		Answer:   q.Answer,
	}
	if q.Difficulty != nil {
		question.Difficulty = *q.Difficulty
	}
	if q.Category != nil {
		question.Category = *q.Category
	}
	return question
}
