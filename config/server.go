package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port       string
	ScratchDir string
	// JwksURL enables JWT auth on the admin routes when set.
	JwksURL string
	// ProviderTimeout bounds every synthesis backend call.
	ProviderTimeout time.Duration
	WorkerPoolSize  int
}

func GetServerConfig() *ServerConfig {
	timeout := 60 * time.Second
	if raw := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	poolSize := 120
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			poolSize = parsed
		}
	}

	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		ScratchDir:      getEnvOrDefault("SCRATCH_DIR", os.TempDir()),
		JwksURL:         os.Getenv("JWKS_URL"),
		ProviderTimeout: timeout,
		WorkerPoolSize:  poolSize,
	}
}

func getEnvOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
