package config

import (
	"fmt"
	"os"
)

type PostgresConfig struct {
	DatabaseURL string
}

func GetPostgresConfig() (*PostgresConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return &PostgresConfig{
		DatabaseURL: databaseURL,
	}, nil
}
