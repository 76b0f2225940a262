package adapters

import (
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

// providerRegistry maps a voice profile's platform tag to the provider that
// owns it. The map is built once at wiring time and read-only afterwards.
type providerRegistry struct {
	providers map[string]outbound.SynthesisProviderPort
}

func NewProviderRegistry(providers ...outbound.SynthesisProviderPort) outbound.ProviderRegistryPort {
	byPlatform := make(map[string]outbound.SynthesisProviderPort, len(providers))
	for _, provider := range providers {
		byPlatform[provider.Platform()] = provider
	}
	return &providerRegistry{providers: byPlatform}
}

func (r *providerRegistry) Resolve(platform string) (outbound.SynthesisProviderPort, error) {
	provider, ok := r.providers[platform]
	if !ok {
		return nil, &domain.UnsupportedPlatformError{Platform: platform}
	}
	return provider, nil
}
