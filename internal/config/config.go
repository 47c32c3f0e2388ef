package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port               int
	DBDriver           string
	DBConnectionString string
	LogLevel           slog.Level
	SeedData           bool
}

// Load reads the .env file (if any) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("Error loading .env file, continuing with system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests don't touch the real environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:     8080,
		DBDriver: DriverPostgres,
		LogLevel: slog.LevelInfo,
	}

	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if driver := strings.ToLower(getenv("DB_DRIVER")); driver != "" {
		switch driver {
		case DriverPostgres, "postgres":
			cfg.DBDriver = DriverPostgres
		case DriverSQLite:
			cfg.DBDriver = DriverSQLite
		default:
			return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
		}
	}

	cfg.DBConnectionString = getenv("DB_CONNECTION_STRING")
	if cfg.DBConnectionString == "" {
		if cfg.DBDriver == DriverPostgres {
			return nil, errors.New("missing DB_CONNECTION_STRING in environment variables")
		}
		cfg.DBConnectionString = "file:trivia.db"
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
	}

	if seed := getenv("SEED_DATA"); seed != "" {
		b, err := strconv.ParseBool(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DATA %q", seed)
		}
		cfg.SeedData = b
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
