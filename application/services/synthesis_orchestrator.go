package services

import (
	"context"
	"strings"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
	"golang.org/x/sync/singleflight"
)

type synthesisOrchestrator struct {
	logger    outbound.LoggerPort
	providers outbound.ProviderRegistryPort
	cache     *CacheIndex
	registrar *ArtifactRegistrar
	flight    singleflight.Group
}

func NewSynthesisOrchestrator(logger outbound.LoggerPort, providers outbound.ProviderRegistryPort,
	cache *CacheIndex, registrar *ArtifactRegistrar) inbound.SynthesizerPort {
	return &synthesisOrchestrator{
		logger:    logger,
		providers: providers,
		cache:     cache,
		registrar: registrar,
	}
}

// Synthesize runs the per-request pipeline: normalize, fingerprint, cache
// lookup, and on a miss one provider call followed by the registration tail.
// A failed synthesis never becomes a cache hit.
func (s *synthesisOrchestrator) Synthesize(ctx context.Context, request domain.SynthesisRequest, voice domain.VoiceProfile) (string, error) {
	if strings.TrimSpace(request.ReadText) == "" {
		return "", &domain.ValidationError{Field: "read", Reason: "must not be blank"}
	}
	if strings.TrimSpace(request.Text) == "" {
		return "", &domain.ValidationError{Field: "text", Reason: "must not be blank"}
	}

	normalized := NormalizeText(request.ReadText)
	fingerprint := Fingerprint(normalized, voice)

	if url, ok := s.cache.Lookup(fingerprint); ok {
		s.logger.DebugWithFields("cache hit", map[string]interface{}{
			"fingerprint": fingerprint,
			"voice_id":    voice.ID,
		})
		return url, nil
	}

	// The miss branch runs single-flighted per fingerprint: concurrent
	// identical requests wait on the one in-flight synthesis instead of
	// paying the provider twice.
	result, err, _ := s.flight.Do(fingerprint, func() (interface{}, error) {
		if url, ok := s.cache.Lookup(fingerprint); ok {
			return url, nil
		}
		return s.synthesizeMiss(ctx, request, voice, normalized, fingerprint)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *synthesisOrchestrator) synthesizeMiss(ctx context.Context, request domain.SynthesisRequest,
	voice domain.VoiceProfile, normalized string, fingerprint string) (string, error) {
	provider, err := s.providers.Resolve(voice.Platform)
	if err != nil {
		return "", err
	}

	providerReq, err := provider.BuildRequest(ctx, normalized, voice)
	if err != nil {
		return "", err
	}

	audio, err := provider.ExecuteRequest(ctx, providerReq)
	if err != nil {
		s.logger.ErrorWithFields(err, "provider synthesis failed", map[string]interface{}{
			"platform":    voice.Platform,
			"voice_id":    voice.ID,
			"fingerprint": fingerprint,
		})
		return "", err
	}

	url, err := s.registrar.Register(ctx, RegisterArtifactParams{
		Fingerprint:    fingerprint,
		OriginalText:   request.Text,
		NormalizedText: normalized,
		VoiceID:        voice.ID,
		Audio:          audio,
	})
	if err != nil {
		return "", err
	}

	s.logger.InfoWithFields("synthesized new artifact", map[string]interface{}{
		"platform":    voice.Platform,
		"voice_id":    voice.ID,
		"fingerprint": fingerprint,
		"url":         url,
	})
	return url, nil
}
