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

const PlatformPlayHT = "playht"

// PlayHTPayload is the wire body for the PlayHT streaming endpoint. The
// synthesis defaults come from static configuration; only text and voice
// vary per call.
type PlayHTPayload struct {
	VoiceEngine  string  `json:"voice_engine"`
	OutputFormat string  `json:"output_format"`
	Speed        float64 `json:"speed"`
	Text         string  `json:"text"`
	Voice        string  `json:"voice"`
}

type playHTProvider struct {
	ContentFetcher
	cfg *config.PlayHTConfig
}

func NewPlayHTProvider(contentFetcher ContentFetcher, cfg *config.PlayHTConfig) outbound.SynthesisProviderPort {
	return &playHTProvider{
		ContentFetcher: contentFetcher,
		cfg:            cfg,
	}
}

func (p *playHTProvider) Platform() string { return PlatformPlayHT }

func (p *playHTProvider) BuildRequest(ctx context.Context, text string, voice domain.VoiceProfile) (outbound.ProviderRequest, error) {
	payload := PlayHTPayload{
		VoiceEngine:  p.cfg.VoiceEngine,
		OutputFormat: p.cfg.OutputFormat,
		Speed:        p.cfg.Speed,
		Text:         text,
		Voice:        voice.VoiceCode,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("playht: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("playht: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-USER-ID", p.cfg.UserID)
	req.Header.Set("AUTHORIZATION", p.cfg.Secret)
	req.Header.Set("accept", "audio/mpeg")

	return req, nil
}

func (p *playHTProvider) ExecuteRequest(_ context.Context, req outbound.ProviderRequest) ([]byte, error) {
	httpReq, ok := req.(*http.Request)
	if !ok {
		return nil, fmt.Errorf("playht: unexpected request descriptor %T", req)
	}
	return p.FetchContent(httpReq)
}
