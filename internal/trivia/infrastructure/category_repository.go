package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, triviaErrors.NewStorageError("list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, triviaErrors.NewStorageError("scan category", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, triviaErrors.NewStorageError("list categories", err)
	}

	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = $1", categoryID).
		Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, triviaErrors.ErrCategoryNotFound
		}
		return nil, triviaErrors.NewStorageError("get category", err)
	}
	return &category, nil
}
