package config

import (
	"fmt"
	"os"
)

// PlayHTConfig holds the static half of every PlayHT request: endpoint,
// credentials and the synthesis defaults baked into the payload.
type PlayHTConfig struct {
	ApiUrl       string
	UserID       string
	Secret       string
	VoiceEngine  string
	OutputFormat string
	Speed        float64
}

func GetPlayHTConfig() (*PlayHTConfig, error) {
	apiUrl := os.Getenv("PLAYHT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("PLAYHT_API_URL must be set")
	}
	userID := os.Getenv("PLAYHT_USER_ID")
	if userID == "" {
		return nil, fmt.Errorf("PLAYHT_USER_ID must be set")
	}
	secret := os.Getenv("PLAYHT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("PLAYHT_SECRET_KEY must be set")
	}

	return &PlayHTConfig{
		ApiUrl:       apiUrl,
		UserID:       userID,
		Secret:       secret,
		VoiceEngine:  getEnvOrDefault("PLAYHT_VOICE_ENGINE", "PlayHT2.0"),
		OutputFormat: getEnvOrDefault("PLAYHT_OUTPUT_FORMAT", "mp3"),
		Speed:        1,
	}, nil
}
