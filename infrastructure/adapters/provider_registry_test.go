package adapters

import (
	"testing"
	"time"

	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesByPlatform(t *testing.T) {
	playHT := NewPlayHTProvider(newTestFetcher(PlatformPlayHT, time.Second), &config.PlayHTConfig{})
	voicemaker := NewVoicemakerProvider(newTestFetcher(PlatformVoicemaker, time.Second), &config.VoicemakerConfig{})
	registry := NewProviderRegistry(playHT, voicemaker)

	provider, err := registry.Resolve(PlatformVoicemaker)
	require.NoError(t, err)
	assert.Equal(t, PlatformVoicemaker, provider.Platform())

	provider, err = registry.Resolve(PlatformPlayHT)
	require.NoError(t, err)
	assert.Equal(t, PlatformPlayHT, provider.Platform())
}

func TestRegistryRejectsUnknownPlatform(t *testing.T) {
	registry := NewProviderRegistry()

	_, err := registry.Resolve("elevenlabs")
	var unsupportedErr *domain.UnsupportedPlatformError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "elevenlabs", unsupportedErr.Platform)
}
