package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type QuestionPage struct {
	Questions  []domain.Question
	Total      int
	Categories []domain.Category
}

type CategoryQuestions struct {
	Category  domain.Category
	Questions []domain.Question
	Total     int
}

type QuestionService struct {
	repo         domain.QuestionRepository
	categoryRepo domain.CategoryRepository
}

func NewQuestionService(repo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuestionService {
	return &QuestionService{repo: repo, categoryRepo: categoryRepo}
}

// ListQuestions returns one page of all questions together with every category.
// An empty page, including one past the end, is ErrNoQuestions.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.repo.FindAll(ctx, domain.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	current := Paginate(questions, page, QuestionsPerPage)

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if len(current) == 0 {
		return nil, triviaErrors.ErrNoQuestions
	}

	return &QuestionPage{
		Questions:  current,
		Total:      len(questions),
		Categories: categories,
	}, nil
}

// CreateQuestion validates and stores a question, returning it with the new
// total question count.
func (s *QuestionService) CreateQuestion(ctx context.Context, input domain.NewQuestion) (domain.Question, int, error) {
	if err := input.Validate(); err != nil {
		return domain.Question{}, 0, err
	}

	question, err := s.repo.Create(ctx, input.ToQuestion())
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("create question: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("count questions: %w", err)
	}
	return question, total, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID int) error {
	if err := s.repo.Delete(ctx, questionID); err != nil {
		return fmt.Errorf("delete question %d: %w", questionID, err)
	}
	return nil
}

// SearchQuestions matches term case-insensitively against question text. The
// returned total counts every stored question, not only the matches.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) ([]domain.Question, int, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, triviaErrors.NewValidationError("searchTerm is required")
	}

	matches, err := s.repo.FindAll(ctx, domain.QuestionFilter{SearchTerm: term})
	if err != nil {
		return nil, 0, fmt.Errorf("search questions: %w", err)
	}
	if len(matches) == 0 {
		return nil, 0, triviaErrors.ErrNoQuestions
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	return Paginate(matches, page, QuestionsPerPage), total, nil
}

// QuestionsByCategory returns a page of the category's questions. Unknown
// categories and categories without questions are both reported as not found.
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID, page int) (*CategoryQuestions, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}

	questions, err := s.repo.FindAll(ctx, domain.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, triviaErrors.ErrNoQuestions
	}

	return &CategoryQuestions{
		Category:  *category,
		Questions: Paginate(questions, page, QuestionsPerPage),
		Total:     len(questions),
	}, nil
}
