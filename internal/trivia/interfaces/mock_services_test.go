package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/TriviaAPI/internal/response"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/application"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

var (
	respondJSON  = response.JSON
	respondError = response.Error
)

var errDatabase = triviaErrors.NewStorageError("query", errors.New("database error"))

type MockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *MockCategoryService) GetAllCategories(_ context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type MockQuestionService struct {
	page       *application.QuestionPage
	byCategory *application.CategoryQuestions
	created    domain.Question
	total      int
	found      []domain.Question
	err        error

	lastPage       int
	lastCategoryID int
	lastInput      domain.NewQuestion
	lastTerm       string
	deletedID      int
}

func (m *MockQuestionService) ListQuestions(_ context.Context, page int) (*application.QuestionPage, error) {
	m.lastPage = page
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *MockQuestionService) CreateQuestion(_ context.Context, input domain.NewQuestion) (domain.Question, int, error) {
	m.lastInput = input
	if err := input.Validate(); err != nil {
		return domain.Question{}, 0, err
	}
	if m.err != nil {
		return domain.Question{}, 0, m.err
	}
	return m.created, m.total, nil
}

func (m *MockQuestionService) DeleteQuestion(_ context.Context, questionID int) error {
	m.deletedID = questionID
	return m.err
}

func (m *MockQuestionService) SearchQuestions(_ context.Context, term string, page int) ([]domain.Question, int, error) {
	m.lastTerm = term
	m.lastPage = page
	if term == "" {
		return nil, 0, triviaErrors.NewValidationError("searchTerm is required")
	}
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.found, m.total, nil
}

func (m *MockQuestionService) QuestionsByCategory(_ context.Context, categoryID, page int) (*application.CategoryQuestions, error) {
	m.lastCategoryID = categoryID
	m.lastPage = page
	if m.err != nil {
		return nil, m.err
	}
	return m.byCategory, nil
}

type MockQuizService struct {
	question *domain.Question
	err      error

	lastCategoryID int
	lastPrevious   []int
}

func (m *MockQuizService) NextQuestion(_ context.Context, categoryID int, previous []int) (*domain.Question, error) {
	m.lastCategoryID = categoryID
	m.lastPrevious = previous
	if m.err != nil {
		return nil, m.err
	}
	return m.question, nil
}
