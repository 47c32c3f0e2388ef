package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sebuszqo/TriviaAPI/internal/config"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		type TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS questions (
		id SERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL,
		difficulty INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL,
		difficulty INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
}

// EnsureSchema creates the categories and questions tables when they are missing.
// Category is referenced by questions.category by convention only.
func (s *DBService) EnsureSchema(ctx context.Context) error {
	statements := postgresSchema
	if s.Driver == config.DriverSQLite {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not apply schema: %w", err)
		}
	}
	return nil
}

type seedQuestion struct {
	question   string
	answer     string
	category   int
	difficulty int
}

var seedCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

var seedQuestions = []seedQuestion{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{"Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{"Which Dutch graphic artist-initials M C was a creator of optical illusions?", "Escher", 2, 1},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
}

// Seed inserts the canonical categories and a starter question set into empty tables.
func (s *DBService) Seed(ctx context.Context) error {
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("could not count categories: %w", err)
	}
	if count > 0 {
		slog.Debug("Categories already present, skipping seed", "count", count)
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for i, categoryType := range seedCategories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (id, type) VALUES ($1, $2)`, i+1, categoryType); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not seed category %s: %w", categoryType, err)
		}
	}
	for _, q := range seedQuestions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4)`,
			q.question, q.answer, q.category, q.difficulty,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not seed question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if s.Driver == config.DriverPostgres {
		// explicit ids above leave the serial sequence behind
		if _, err := s.DB.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT MAX(id) FROM categories))`); err != nil {
			return fmt.Errorf("could not reset category sequence: %w", err)
		}
	}

	slog.Info("Seeded database", "categories", len(seedCategories), "questions", len(seedQuestions))
	return nil
}
