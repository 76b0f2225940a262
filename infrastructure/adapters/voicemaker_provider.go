package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
)

const PlatformVoicemaker = "voicemaker"

type voicemakerProvider struct {
	ContentFetcher
	cfg *config.VoicemakerConfig
}

func NewVoicemakerProvider(contentFetcher ContentFetcher, cfg *config.VoicemakerConfig) outbound.SynthesisProviderPort {
	return &voicemakerProvider{
		ContentFetcher: contentFetcher,
		cfg:            cfg,
	}
}

func (v *voicemakerProvider) Platform() string { return PlatformVoicemaker }

// BuildRequest assembles the Voicemaker payload. The voice profile's
// free-form metadata is merged in verbatim, overriding defaults key by key,
// which is how per-voice effects and pauses are configured upstream.
func (v *voicemakerProvider) BuildRequest(ctx context.Context, text string, voice domain.VoiceProfile) (outbound.ProviderRequest, error) {
	payload := map[string]any{
		"Engine":       v.cfg.VoiceEngine,
		"OutputFormat": v.cfg.OutputFormat,
		"MasterSpeed":  v.cfg.MasterSpeed,
		"SampleRate":   v.cfg.SampleRate,
		"VoiceId":      voice.VoiceCode,
		"LanguageCode": voice.Language,
		"Text":         text,
		"ResponseType": "stream",
	}
	for key, value := range voice.Metadata {
		payload[key] = value
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("voicemaker: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("voicemaker: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.cfg.Token)

	return req, nil
}

func (v *voicemakerProvider) ExecuteRequest(_ context.Context, req outbound.ProviderRequest) ([]byte, error) {
	httpReq, ok := req.(*http.Request)
	if !ok {
		return nil, fmt.Errorf("voicemaker: unexpected request descriptor %T", req)
	}
	return v.FetchContent(httpReq)
}
