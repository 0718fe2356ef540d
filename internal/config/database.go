package config

import (
	"sync"

	"github.com/hafidzramadhan/talent-match/internal/logger"
	"github.com/hafidzramadhan/talent-match/internal/secrets"
)

type DBConfig struct {
	// URL is the full Postgres connection string (Supabase connection URI).
	URL string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

// LoadDBConfig resolves the database connection string. The process cannot do
// anything useful without it, so a missing value is fatal.
func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		url, err := secrets.Resolve("DATABASE_URL")
		if err != nil {
			logger.L().WithError(err).Fatal("DATABASE_URL is required")
		}
		dbConfig = &DBConfig{URL: url}
	})
	return dbConfig
}
