package domain

import "context"

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, categoryID int) (*Category, error)
}

// CategoryMap turns an ordered category list into the id -> type object the frontend expects.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Type
	}
	return m
}
