package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DB_CONNECTION_STRING": "postgres://localhost/trivia",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnv_PostgresRequiresConnectionString(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{}))
	assert.Error(t, err)
}

func TestFromEnv_SQLiteDefaultsFile(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DB_DRIVER": "sqlite",
		"PORT":      "9000",
		"LOG_LEVEL": "debug",
		"SEED_DATA": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:trivia.db", cfg.DBConnectionString)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.SeedData)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	base := map[string]string{"DB_DRIVER": "sqlite"}

	cases := map[string]string{
		"PORT":      "not-a-port",
		"DB_DRIVER": "mysql",
		"LOG_LEVEL": "loud",
		"SEED_DATA": "maybe",
	}
	for key, value := range cases {
		env := map[string]string{}
		for k, v := range base {
			env[k] = v
		}
		env[key] = value

		_, err := FromEnv(envOf(env))
		assert.Error(t, err, key)
	}
}
