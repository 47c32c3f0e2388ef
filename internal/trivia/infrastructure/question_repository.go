package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

// QuestionRepository sticks to SQL understood by both PostgreSQL and SQLite.
type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) FindAll(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	query := "SELECT id, question, answer, category, difficulty FROM questions"
	var conditions []string
	var args []interface{}

	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, "category = $1")
	}
	if filter.SearchTerm != "" {
		args = append(args, "%"+escapeLike(filter.SearchTerm)+"%")
		conditions = append(conditions, fmt.Sprintf(`LOWER(question) LIKE LOWER($%d) ESCAPE '\'`, len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, triviaErrors.NewStorageError("list questions", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, triviaErrors.NewStorageError("scan question", err)
		}
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, triviaErrors.NewStorageError("list questions", err)
	}

	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes LIKE treat the term as a literal substring.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, triviaErrors.NewStorageError("count questions", err)
	}
	return count, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
        VALUES ($1, $2, $3, $4) RETURNING id`,
		question.Question, question.Answer, question.Category, question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return domain.Question{}, triviaErrors.NewStorageError("insert question", err)
	}
	return question, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, questionID int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = $1", questionID)
	if err != nil {
		return triviaErrors.NewStorageError("delete question", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return triviaErrors.NewStorageError("delete question", err)
	}
	if affected == 0 {
		return triviaErrors.ErrQuestionNotFound
	}
	return nil
}
