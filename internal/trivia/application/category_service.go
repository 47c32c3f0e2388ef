package application

import (
	"context"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories returns ErrNoCategories when the store holds none.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, triviaErrors.ErrNoCategories
	}
	return categories, nil
}
