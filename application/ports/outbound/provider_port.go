package outbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// ProviderRequest is a provider-native request descriptor produced by
// BuildRequest. Each provider only understands descriptors it built itself;
// the orchestrator treats the value as opaque.
type ProviderRequest any

// SynthesisProviderPort is the capability every backend synthesis platform
// exposes: assemble a provider-native request from static configuration plus
// the per-call text and voice, then execute it and return raw audio bytes.
//
// A non-success response surfaces as *domain.ProviderError carrying the
// backend's raw error text. There is no retry at this layer.
type SynthesisProviderPort interface {
	Platform() string
	BuildRequest(ctx context.Context, text string, voice domain.VoiceProfile) (ProviderRequest, error)
	ExecuteRequest(ctx context.Context, req ProviderRequest) ([]byte, error)
}

// ProviderRegistryPort dispatches a voice profile's platform tag to the
// provider that owns it.
type ProviderRegistryPort interface {
	Resolve(platform string) (SynthesisProviderPort, error)
}
