package config

import (
	"os"
	"strings"
)

const (
	DBTypeNone     = ""
	DBTypePostgres = "postgres"
	DBTypeSQLite   = "sqlite"

	defaultDatabaseURL = "host=localhost user=mapgen password=mapgen dbname=mapgen sslmode=disable"
	defaultDBFile      = "maps.db"
)

// Config holds the ambient settings read from the environment.
// None of them change the generated map or its output path.
type Config struct {
	DBType      string
	DatabaseURL string
	DBFile      string
	PublishURL  string
}

// Load reads Config from the environment
func Load() *Config {
	cfg := &Config{
		DBType:      DBTypeNone,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBFile:      os.Getenv("DB_FILE"),
		PublishURL:  os.Getenv("MAP_PUBLISH_URL"),
	}

	switch strings.ToLower(os.Getenv("DB_TYPE")) {
	case DBTypePostgres:
		cfg.DBType = DBTypePostgres
	case DBTypeSQLite:
		cfg.DBType = DBTypeSQLite
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	if cfg.DBFile == "" {
		cfg.DBFile = defaultDBFile
	}

	return cfg
}
