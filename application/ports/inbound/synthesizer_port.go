package inbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// SynthesizerPort is the core entry point: convert text to speech with the
// given voice, reusing a previously generated artifact when one exists.
// The returned string is the artifact's durable location URL.
type SynthesizerPort interface {
	Synthesize(ctx context.Context, request domain.SynthesisRequest, voice domain.VoiceProfile) (string, error)
}
