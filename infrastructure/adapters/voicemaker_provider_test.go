package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoicemakerSynthesis(t *testing.T) {
	audio := []byte("vm-mp3-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "neural", payload["Engine"])
		assert.Equal(t, "mp3", payload["OutputFormat"])
		assert.Equal(t, "0", payload["MasterSpeed"])
		assert.Equal(t, "48000", payload["SampleRate"])
		assert.Equal(t, "ai3-es-ES-Lucia", payload["VoiceId"])
		assert.Equal(t, "es-ES", payload["LanguageCode"])
		assert.Equal(t, "Hola mundo.", payload["Text"])
		assert.Equal(t, "stream", payload["ResponseType"])

		w.Write(audio)
	}))
	defer server.Close()

	provider := NewVoicemakerProvider(newTestFetcher(PlatformVoicemaker, 5*time.Second), &config.VoicemakerConfig{
		ApiUrl:       server.URL,
		Token:        "token-1",
		VoiceEngine:  "neural",
		OutputFormat: "mp3",
		MasterSpeed:  "0",
		SampleRate:   "48000",
	})

	voice := testVoiceProfile(PlatformVoicemaker)
	voice.VoiceCode = "ai3-es-ES-Lucia"

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", voice)
	require.NoError(t, err)

	got, err := provider.ExecuteRequest(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

// Per-voice metadata rides along verbatim and wins over the payload defaults.
func TestVoicemakerMetadataOverridesDefaults(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	provider := NewVoicemakerProvider(newTestFetcher(PlatformVoicemaker, 5*time.Second), &config.VoicemakerConfig{
		ApiUrl:      server.URL,
		Token:       "token-1",
		MasterSpeed: "0",
	})

	voice := testVoiceProfile(PlatformVoicemaker)
	voice.Metadata = map[string]any{
		"MasterSpeed": "-10",
		"Effect":      "breathing",
	}

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", voice)
	require.NoError(t, err)
	_, err = provider.ExecuteRequest(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "-10", payload["MasterSpeed"])
	assert.Equal(t, "breathing", payload["Effect"])
}

func TestVoicemakerBackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exhausted"))
	}))
	defer server.Close()

	provider := NewVoicemakerProvider(newTestFetcher(PlatformVoicemaker, 5*time.Second), &config.VoicemakerConfig{
		ApiUrl: server.URL,
		Token:  "token-1",
	})

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", testVoiceProfile(PlatformVoicemaker))
	require.NoError(t, err)

	_, err = provider.ExecuteRequest(context.Background(), req)
	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, PlatformVoicemaker, providerErr.Platform)
	assert.Equal(t, http.StatusTooManyRequests, providerErr.StatusCode)
	assert.Equal(t, "quota exhausted", providerErr.Message)
}
