package infrastructure

import (
	"context"
	"errors"
	"strings"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

// MockQuestionRepository is an in-memory QuestionRepository for service tests.
// Setting Fail makes every call return a StorageError.
type MockQuestionRepository struct {
	Questions []domain.Question
	Fail      bool
	nextID    int
}

var errMockStorage = errors.New("mock storage failure")

func (m *MockQuestionRepository) FindAll(_ context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	if m.Fail {
		return nil, triviaErrors.NewStorageError("list questions", errMockStorage)
	}
	var result []domain.Question
	for _, q := range m.Questions {
		if filter.CategoryID != 0 && q.Category != filter.CategoryID {
			continue
		}
		if filter.SearchTerm != "" && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		result = append(result, q)
	}
	return result, nil
}

func (m *MockQuestionRepository) Count(_ context.Context) (int, error) {
	if m.Fail {
		return 0, triviaErrors.NewStorageError("count questions", errMockStorage)
	}
	return len(m.Questions), nil
}

func (m *MockQuestionRepository) Create(_ context.Context, question domain.Question) (domain.Question, error) {
	if m.Fail {
		return domain.Question{}, triviaErrors.NewStorageError("insert question", errMockStorage)
	}
	for _, q := range m.Questions {
		if q.ID > m.nextID {
			m.nextID = q.ID
		}
	}
	m.nextID++
	question.ID = m.nextID
	m.Questions = append(m.Questions, question)
	return question, nil
}

func (m *MockQuestionRepository) Delete(_ context.Context, questionID int) error {
	if m.Fail {
		return triviaErrors.NewStorageError("delete question", errMockStorage)
	}
	for i, q := range m.Questions {
		if q.ID == questionID {
			m.Questions = append(m.Questions[:i], m.Questions[i+1:]...)
			return nil
		}
	}
	return triviaErrors.ErrQuestionNotFound
}

type MockCategoryRepository struct {
	Categories []domain.Category
	Fail       bool
}

func (m *MockCategoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	if m.Fail {
		return nil, triviaErrors.NewStorageError("list categories", errMockStorage)
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, categoryID int) (*domain.Category, error) {
	if m.Fail {
		return nil, triviaErrors.NewStorageError("get category", errMockStorage)
	}
	for _, c := range m.Categories {
		if c.ID == categoryID {
			category := c
			return &category, nil
		}
	}
	return nil, triviaErrors.ErrCategoryNotFound
}
