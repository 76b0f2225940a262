package config

type PollyConfig struct {
	Engine       string
	OutputFormat string
}

// GetPollyConfig never fails: Polly rides on the shared AWS session, so both
// fields just have overridable defaults.
func GetPollyConfig() *PollyConfig {
	return &PollyConfig{
		Engine:       getEnvOrDefault("POLLY_ENGINE", "neural"),
		OutputFormat: getEnvOrDefault("POLLY_OUTPUT_FORMAT", "mp3"),
	}
}
