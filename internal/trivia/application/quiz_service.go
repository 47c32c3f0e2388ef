package application

import (
	"context"
	"fmt"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
)

// AllCategories is the quiz category id meaning "draw from every category".
const AllCategories = 0

type QuizService struct {
	repo     domain.QuestionRepository
	selector *Selector
}

func NewQuizService(repo domain.QuestionRepository, selector *Selector) *QuizService {
	if selector == nil {
		selector = NewSelector()
	}
	return &QuizService{repo: repo, selector: selector}
}

// NextQuestion returns a random question from the category that is not in
// previous, or nil once the category's pool is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	filter := domain.QuestionFilter{}
	if categoryID != AllCategories {
		filter.CategoryID = categoryID
	}

	pool, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	question, ok := s.selector.Next(pool, seen)
	if !ok {
		return nil, nil
	}
	return question, nil
}
