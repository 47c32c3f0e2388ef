package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sebuszqo/TriviaAPI/internal/config"
	_ "modernc.org/sqlite"
)

// DBService represents a service that interacts with a database.
type DBService struct {
	DB     *sql.DB
	Driver string
}

// NewDBService opens the database described by the configuration.
func NewDBService(cfg *config.Config) (*DBService, error) {
	return Open(cfg.DBDriver, cfg.DBConnectionString)
}

// Open establishes a connection using one of the registered drivers ("pgx" or "sqlite")
// and pings it before returning.
func Open(driver, connStr string) (*DBService, error) {
	if connStr == "" {
		return nil, fmt.Errorf("missing connection string for driver %s", driver)
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	switch driver {
	case config.DriverSQLite:
		// sqlite serialises writers; a single connection also keeps in-memory databases alive
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	return &DBService{DB: db, Driver: driver}, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	err := s.DB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	dbStats := s.DB.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["driver"] = s.Driver
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	return stats
}

// Close closes the database connection.
func (s *DBService) Close() error {
	slog.Info("Closing database connection", "driver", s.Driver)
	return s.DB.Close()
}
