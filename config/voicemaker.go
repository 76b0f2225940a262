package config

import (
	"fmt"
	"os"
)

type VoicemakerConfig struct {
	ApiUrl       string
	Token        string
	VoiceEngine  string
	OutputFormat string
	MasterSpeed  string
	SampleRate   string
}

func GetVoicemakerConfig() (*VoicemakerConfig, error) {
	apiUrl := os.Getenv("VOICEMAKER_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("VOICEMAKER_API_URL must be set")
	}
	token := os.Getenv("VOICEMAKER_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("VOICEMAKER_TOKEN must be set")
	}

	return &VoicemakerConfig{
		ApiUrl:       apiUrl,
		Token:        token,
		VoiceEngine:  getEnvOrDefault("VOICEMAKER_VOICE_ENGINE", "neural"),
		OutputFormat: getEnvOrDefault("VOICEMAKER_OUTPUT_FORMAT", "mp3"),
		MasterSpeed:  getEnvOrDefault("VOICEMAKER_MASTER_SPEED", "0"),
		SampleRate:   getEnvOrDefault("VOICEMAKER_SAMPLE_RATE", "48000"),
	}, nil
}
